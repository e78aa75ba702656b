package repository

import (
	"hotel-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User       UserRepository
	Session    SessionRepository
	Enrollment EnrollmentRepository
	Ticket     TicketRepository
	Hotel      HotelRepository
	Room       RoomRepository
	Booking    BookingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:       NewUserRepository(db, log),
		Session:    NewSessionRepository(db, log),
		Enrollment: NewEnrollmentRepository(db, log),
		Ticket:     NewTicketRepository(db, log),
		Hotel:      NewHotelRepository(db, log),
		Room:       NewRoomRepository(db, log),
		Booking:    NewBookingRepository(db, log),
	}
}
