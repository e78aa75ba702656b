package repository

import (
	"context"
	"fmt"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Booking, error)
	FindWithRoomByUserID(ctx context.Context, userID int64) (*entity.Booking, *entity.Room, error)
	CountByRoomID(ctx context.Context, roomID int64) (int, error)
	CountByRoomIDExcluding(ctx context.Context, roomID, bookingID int64) (int, error)

	// Capacity-safe writes. Both lock the target room row, recount occupancy
	// inside the transaction, and return ErrRoomFull when the recount hits
	// capacity or ErrRoomNotFound when the room is gone.
	Create(ctx context.Context, userID, roomID int64) (int64, error)
	Move(ctx context.Context, bookingID, roomID int64) (int64, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) FindByID(ctx context.Context, id int64) (*entity.Booking, error) {
	query := `
		SELECT id, user_id, room_id, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.RoomID,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.Int64("booking_id", id),
		)
		return nil, fmt.Errorf("find booking by ID %d: %w", id, err)
	}

	return &booking, nil
}

// FindWithRoomByUserID returns the user's current booking joined with its room
func (r *bookingRepository) FindWithRoomByUserID(ctx context.Context, userID int64) (*entity.Booking, *entity.Room, error) {
	query := `
		SELECT b.id, b.user_id, b.room_id, b.created_at, b.updated_at,
		       rm.id, rm.name, rm.capacity, rm.hotel_id, rm.created_at, rm.updated_at
		FROM bookings b
		JOIN rooms rm ON rm.id = b.room_id
		WHERE b.user_id = $1
		ORDER BY b.id
		LIMIT 1
	`

	var booking entity.Booking
	var room entity.Room
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.RoomID,
		&booking.CreatedAt,
		&booking.UpdatedAt,
		&room.ID,
		&room.Name,
		&room.Capacity,
		&room.HotelID,
		&room.CreatedAt,
		&room.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by user ID",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, nil, fmt.Errorf("find booking by user ID %d: %w", userID, err)
	}

	return &booking, &room, nil
}

func (r *bookingRepository) CountByRoomID(ctx context.Context, roomID int64) (int, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE room_id = $1`

	var count int
	err := r.db.QueryRow(ctx, query, roomID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by room ID",
			zap.Error(err),
			zap.Int64("room_id", roomID),
		)
		return 0, fmt.Errorf("count bookings by room ID %d: %w", roomID, err)
	}

	return count, nil
}

func (r *bookingRepository) CountByRoomIDExcluding(ctx context.Context, roomID, bookingID int64) (int, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE room_id = $1 AND id <> $2`

	var count int
	err := r.db.QueryRow(ctx, query, roomID, bookingID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by room ID",
			zap.Error(err),
			zap.Int64("room_id", roomID),
			zap.Int64("excluded_booking_id", bookingID),
		)
		return 0, fmt.Errorf("count bookings by room ID %d: %w", roomID, err)
	}

	return count, nil
}

// Create inserts a booking after re-verifying capacity under a room row lock.
//
// Two concurrent creates against the last free slot would both pass a plain
// read-then-write occupancy check. SELECT ... FOR UPDATE serialises them on the
// room row, so the second one recounts after the first commit and fails with
// ErrRoomFull.
func (r *bookingRepository) Create(ctx context.Context, userID, roomID int64) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	capacity, err := lockRoom(ctx, tx, roomID)
	if err != nil {
		return 0, err
	}

	var occupancy int
	err = tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM bookings WHERE room_id = $1`,
		roomID,
	).Scan(&occupancy)
	if err != nil {
		return 0, fmt.Errorf("count room occupancy: %w", err)
	}

	if occupancy >= capacity {
		err = ErrRoomFull
		return 0, err
	}

	now := time.Now()
	var bookingID int64
	err = tx.QueryRow(ctx,
		`INSERT INTO bookings (user_id, room_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		userID, roomID, now, now,
	).Scan(&bookingID)
	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("room_id", roomID),
		)
		return 0, fmt.Errorf("create booking for user %d: %w", userID, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}

	return bookingID, nil
}

// Move changes a booking's room under the same room row lock as Create. The
// occupancy recount excludes the booking being moved.
func (r *bookingRepository) Move(ctx context.Context, bookingID, roomID int64) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	capacity, err := lockRoom(ctx, tx, roomID)
	if err != nil {
		return 0, err
	}

	var occupancy int
	err = tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM bookings WHERE room_id = $1 AND id <> $2`,
		roomID, bookingID,
	).Scan(&occupancy)
	if err != nil {
		return 0, fmt.Errorf("count room occupancy: %w", err)
	}

	if occupancy >= capacity {
		err = ErrRoomFull
		return 0, err
	}

	result, err := tx.Exec(ctx,
		`UPDATE bookings SET room_id = $2, updated_at = NOW() WHERE id = $1`,
		bookingID, roomID,
	)
	if err != nil {
		r.log.Error("Failed to move booking",
			zap.Error(err),
			zap.Int64("booking_id", bookingID),
			zap.Int64("room_id", roomID),
		)
		return 0, fmt.Errorf("move booking %d: %w", bookingID, err)
	}

	if result.RowsAffected() == 0 {
		err = fmt.Errorf("booking %d not found", bookingID)
		return 0, err
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}

	return bookingID, nil
}

// lockRoom acquires an exclusive row lock on the room and returns its capacity
func lockRoom(ctx context.Context, tx pgx.Tx, roomID int64) (int, error) {
	var capacity int
	err := tx.QueryRow(ctx,
		`SELECT capacity FROM rooms WHERE id = $1 FOR UPDATE`,
		roomID,
	).Scan(&capacity)
	if err == pgx.ErrNoRows {
		return 0, ErrRoomNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("lock room row %d: %w", roomID, err)
	}
	return capacity, nil
}
