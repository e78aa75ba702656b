package usecase

import (
	"hotel-booking/internal/data/entity"
)

// Decision is the outcome of an eligibility check. When Allowed is false,
// Reason names the first rule that failed.
type Decision struct {
	Allowed bool
	Reason  Rejection
}

func Allow() Decision {
	return Decision{Allowed: true}
}

func Reject(reason Rejection) Decision {
	return Decision{Reason: reason}
}

// CheckHotelAccess applies the ticket-side booking rules: the user must be
// enrolled and hold a paid, in-person, hotel-inclusive ticket. Shared by
// booking creation and the hotel listing.
func CheckHotelAccess(enrollment *entity.Enrollment, ticket *entity.Ticket) Decision {
	if enrollment == nil {
		return Reject(RejectionMissingEnrollment)
	}
	if ticket == nil {
		return Reject(RejectionMissingTicket)
	}
	if ticket.Status != entity.TicketStatusPaid {
		return Reject(RejectionTicketNotPaid)
	}
	if ticket.Type.IsRemote || !ticket.Type.IncludesHotel {
		return Reject(RejectionTicketIneligible)
	}
	return Allow()
}

// CheckCreateEligibility decides whether a booking may be created. Pure over
// already-fetched facts; rules are ordered and the first failure wins.
// occupancy is the count of bookings already assigned to the target room.
func CheckCreateEligibility(enrollment *entity.Enrollment, ticket *entity.Ticket, room *entity.Room, occupancy int) Decision {
	if decision := CheckHotelAccess(enrollment, ticket); !decision.Allowed {
		return decision
	}
	if room == nil {
		return Reject(RejectionRoomNotFound)
	}
	if occupancy >= room.Capacity {
		return Reject(RejectionRoomAtCapacity)
	}
	return Allow()
}

// CheckUpdateEligibility decides whether a booking may be moved to another
// room. occupancyExcludingSelf must not count the booking being moved.
func CheckUpdateEligibility(room *entity.Room, occupancyExcludingSelf int, booking *entity.Booking, userID int64) Decision {
	if room == nil {
		return Reject(RejectionRoomNotFound)
	}
	if occupancyExcludingSelf >= room.Capacity {
		return Reject(RejectionRoomAtCapacity)
	}
	if booking == nil {
		return Reject(RejectionNoExistingBooking)
	}
	if booking.UserID != userID {
		return Reject(RejectionNotOwner)
	}
	return Allow()
}
