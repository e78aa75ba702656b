package usecase

import (
	"context"
	"errors"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"

	"go.uber.org/zap"
)

type BookingService interface {
	GetBooking(ctx context.Context, userID int64) (*response.GetBookingResponse, error)
	CreateBooking(ctx context.Context, userID int64, req *request.BookingRequest) (*response.BookingIDResponse, error)
	UpdateBooking(ctx context.Context, userID, bookingID int64, req *request.BookingRequest) (*response.BookingIDResponse, error)
}

type bookingService struct {
	repo *repository.Repository // grouping all booking-related repos
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) GetBooking(ctx context.Context, userID int64) (*response.GetBookingResponse, error) {
	booking, room, err := s.repo.Booking.FindWithRoomByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get booking",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if booking == nil {
		return nil, NewRejection(RejectionBookingNotFound)
	}

	return &response.GetBookingResponse{
		ID:   booking.ID,
		Room: response.RoomToResponse(room),
	}, nil
}

// CreateBooking reads the facts in dependency order, runs the eligibility
// rules, and performs the single store write only on an allow decision.
func (s *bookingService) CreateBooking(ctx context.Context, userID int64, req *request.BookingRequest) (*response.BookingIDResponse, error) {
	enrollment, err := s.repo.Enrollment.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch enrollment: %w", err)
	}

	// Ticket fetch requires an enrollment id
	var ticket *entity.Ticket
	if enrollment != nil {
		ticket, err = s.repo.Ticket.FindByEnrollmentID(ctx, enrollment.ID)
		if err != nil {
			return nil, fmt.Errorf("fetch ticket: %w", err)
		}
	}

	room, err := s.repo.Room.FindByID(ctx, req.RoomID)
	if err != nil {
		return nil, fmt.Errorf("fetch room: %w", err)
	}

	// Occupancy is meaningless without a room
	occupancy := 0
	if room != nil {
		occupancy, err = s.repo.Booking.CountByRoomID(ctx, room.ID)
		if err != nil {
			return nil, fmt.Errorf("count occupancy: %w", err)
		}
	}

	if decision := CheckCreateEligibility(enrollment, ticket, room, occupancy); !decision.Allowed {
		s.log.Info("Booking creation rejected",
			zap.Int64("user_id", userID),
			zap.Int64("room_id", req.RoomID),
			zap.String("reason", string(decision.Reason)),
		)
		return nil, NewRejection(decision.Reason)
	}

	bookingID, err := s.repo.Booking.Create(ctx, userID, req.RoomID)
	if err != nil {
		// The locked recount can still lose the race the pure check passed
		if errors.Is(err, repository.ErrRoomFull) {
			return nil, NewRejection(RejectionRoomAtCapacity)
		}
		if errors.Is(err, repository.ErrRoomNotFound) {
			return nil, NewRejection(RejectionRoomNotFound)
		}
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("room_id", req.RoomID),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.Int64("booking_id", bookingID),
		zap.Int64("user_id", userID),
		zap.Int64("room_id", req.RoomID),
	)

	return &response.BookingIDResponse{BookingID: bookingID}, nil
}

// UpdateBooking moves an existing booking to another room. Only the room
// changes; ownership is checked, never transferred.
func (s *bookingService) UpdateBooking(ctx context.Context, userID, bookingID int64, req *request.BookingRequest) (*response.BookingIDResponse, error) {
	room, err := s.repo.Room.FindByID(ctx, req.RoomID)
	if err != nil {
		return nil, fmt.Errorf("fetch room: %w", err)
	}

	// Occupancy excludes the booking being moved
	occupancy := 0
	if room != nil {
		occupancy, err = s.repo.Booking.CountByRoomIDExcluding(ctx, room.ID, bookingID)
		if err != nil {
			return nil, fmt.Errorf("count occupancy: %w", err)
		}
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("fetch booking: %w", err)
	}

	if decision := CheckUpdateEligibility(room, occupancy, booking, userID); !decision.Allowed {
		s.log.Info("Booking update rejected",
			zap.Int64("user_id", userID),
			zap.Int64("booking_id", bookingID),
			zap.Int64("room_id", req.RoomID),
			zap.String("reason", string(decision.Reason)),
		)
		return nil, NewRejection(decision.Reason)
	}

	movedID, err := s.repo.Booking.Move(ctx, bookingID, req.RoomID)
	if err != nil {
		if errors.Is(err, repository.ErrRoomFull) {
			return nil, NewRejection(RejectionRoomAtCapacity)
		}
		if errors.Is(err, repository.ErrRoomNotFound) {
			return nil, NewRejection(RejectionRoomNotFound)
		}
		s.log.Error("Failed to move booking",
			zap.Error(err),
			zap.Int64("booking_id", bookingID),
			zap.Int64("room_id", req.RoomID),
		)
		return nil, fmt.Errorf("move booking: %w", err)
	}

	s.log.Info("Booking moved",
		zap.Int64("booking_id", movedID),
		zap.Int64("user_id", userID),
		zap.Int64("room_id", req.RoomID),
	)

	return &response.BookingIDResponse{BookingID: movedID}, nil
}
