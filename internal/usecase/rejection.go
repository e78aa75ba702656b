package usecase

import (
	"errors"
)

// Rejection is the closed set of expected domain outcomes that stop a booking
// operation. Distinct from infrastructure failures, which stay ordinary errors.
type Rejection string

const (
	RejectionMissingEnrollment Rejection = "missing_enrollment"
	RejectionMissingTicket     Rejection = "missing_ticket"
	RejectionTicketNotPaid     Rejection = "ticket_not_paid"
	RejectionTicketIneligible  Rejection = "ticket_ineligible"
	RejectionRoomNotFound      Rejection = "room_not_found"
	RejectionRoomAtCapacity    Rejection = "room_at_capacity"
	RejectionNoExistingBooking Rejection = "no_existing_booking"
	RejectionNotOwner          Rejection = "not_owner"

	// Read-path and supplemental outcomes, outside the eligibility rules
	RejectionBookingNotFound Rejection = "booking_not_found"
	RejectionHotelNotFound   Rejection = "hotel_not_found"
)

var rejectionMessages = map[Rejection]string{
	RejectionMissingEnrollment: "user has no enrollment",
	RejectionMissingTicket:     "user has no ticket",
	RejectionTicketNotPaid:     "ticket is not paid",
	RejectionTicketIneligible:  "ticket does not include hotel lodging",
	RejectionRoomNotFound:      "room not found",
	RejectionRoomAtCapacity:    "room is at capacity",
	RejectionNoExistingBooking: "booking not found",
	RejectionNotOwner:          "booking belongs to another user",
	RejectionBookingNotFound:   "user has no booking",
	RejectionHotelNotFound:     "hotel not found",
}

// Message returns the human-readable form of the rejection
func (r Rejection) Message() string {
	if msg, ok := rejectionMessages[r]; ok {
		return msg
	}
	return string(r)
}

// RejectionError carries a Rejection through the service layer as a typed
// error, so handlers can map it to a status code exhaustively.
type RejectionError struct {
	Reason Rejection
}

func (e *RejectionError) Error() string {
	return e.Reason.Message()
}

func NewRejection(reason Rejection) error {
	return &RejectionError{Reason: reason}
}

// AsRejection unwraps a RejectionError if err carries one
func AsRejection(err error) (*RejectionError, bool) {
	var rejection *RejectionError
	if errors.As(err, &rejection) {
		return rejection, true
	}
	return nil, false
}
