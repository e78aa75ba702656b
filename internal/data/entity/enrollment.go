package entity

// Enrollment is a user's registration for the event, prerequisite to a ticket
type Enrollment struct {
	Base
	UserID int64  `db:"user_id"`
	Name   string `db:"name"`
}
