package entity

// Booking assigns one user to one room. RoomID is the only mutable field.
type Booking struct {
	Base
	UserID int64 `db:"user_id"`
	RoomID int64 `db:"room_id"`
}
