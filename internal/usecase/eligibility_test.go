package usecase

import (
	"testing"

	"hotel-booking/internal/data/entity"
)

func paidHotelTicket() *entity.Ticket {
	return &entity.Ticket{
		Base:         entity.Base{ID: 1},
		EnrollmentID: 1,
		Status:       entity.TicketStatusPaid,
		Type: entity.TicketType{
			Base:          entity.Base{ID: 1},
			IsRemote:      false,
			IncludesHotel: true,
		},
	}
}

func TestCheckCreateEligibility(t *testing.T) {
	enrollment := &entity.Enrollment{Base: entity.Base{ID: 1}, UserID: 1}
	room := &entity.Room{Base: entity.Base{ID: 1}, Capacity: 3}

	tests := []struct {
		name       string
		enrollment *entity.Enrollment
		ticket     *entity.Ticket
		room       *entity.Room
		occupancy  int
		allowed    bool
		reason     Rejection
	}{
		{
			name:    "no enrollment",
			reason:  RejectionMissingEnrollment,
			room:    room,
			ticket:  paidHotelTicket(),
		},
		{
			name:       "no ticket",
			enrollment: enrollment,
			room:       room,
			reason:     RejectionMissingTicket,
		},
		{
			name:       "ticket reserved not paid",
			enrollment: enrollment,
			ticket: func() *entity.Ticket {
				ticket := paidHotelTicket()
				ticket.Status = entity.TicketStatusReserved
				return ticket
			}(),
			room:   room,
			reason: RejectionTicketNotPaid,
		},
		{
			name:       "remote ticket",
			enrollment: enrollment,
			ticket: func() *entity.Ticket {
				ticket := paidHotelTicket()
				ticket.Type.IsRemote = true
				return ticket
			}(),
			room:   room,
			reason: RejectionTicketIneligible,
		},
		{
			name:       "ticket without hotel",
			enrollment: enrollment,
			ticket: func() *entity.Ticket {
				ticket := paidHotelTicket()
				ticket.Type.IncludesHotel = false
				return ticket
			}(),
			room:   room,
			reason: RejectionTicketIneligible,
		},
		{
			name:       "room absent",
			enrollment: enrollment,
			ticket:     paidHotelTicket(),
			reason:     RejectionRoomNotFound,
		},
		{
			name:       "room at capacity",
			enrollment: enrollment,
			ticket:     paidHotelTicket(),
			room:       room,
			occupancy:  3,
			reason:     RejectionRoomAtCapacity,
		},
		{
			name:       "room over capacity",
			enrollment: enrollment,
			ticket:     paidHotelTicket(),
			room:       room,
			occupancy:  4,
			reason:     RejectionRoomAtCapacity,
		},
		{
			name:       "one slot left",
			enrollment: enrollment,
			ticket:     paidHotelTicket(),
			room:       room,
			occupancy:  2,
			allowed:    true,
		},
		{
			name:       "empty room",
			enrollment: enrollment,
			ticket:     paidHotelTicket(),
			room:       room,
			occupancy:  0,
			allowed:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := CheckCreateEligibility(tt.enrollment, tt.ticket, tt.room, tt.occupancy)
			if decision.Allowed != tt.allowed {
				t.Fatalf("Allowed = %v, want %v", decision.Allowed, tt.allowed)
			}
			if !tt.allowed && decision.Reason != tt.reason {
				t.Fatalf("Reason = %q, want %q", decision.Reason, tt.reason)
			}
		})
	}
}

// The first failing rule determines the reason: with both enrollment and
// ticket absent, the caller must observe MissingEnrollment.
func TestCheckCreateEligibility_Precedence(t *testing.T) {
	decision := CheckCreateEligibility(nil, nil, nil, 0)
	if decision.Allowed {
		t.Fatal("expected rejection")
	}
	if decision.Reason != RejectionMissingEnrollment {
		t.Fatalf("Reason = %q, want %q", decision.Reason, RejectionMissingEnrollment)
	}
}

// Identical inputs always yield the identical decision
func TestCheckCreateEligibility_Pure(t *testing.T) {
	enrollment := &entity.Enrollment{Base: entity.Base{ID: 1}, UserID: 1}
	ticket := paidHotelTicket()
	room := &entity.Room{Base: entity.Base{ID: 1}, Capacity: 2}

	first := CheckCreateEligibility(enrollment, ticket, room, 1)
	for i := 0; i < 100; i++ {
		if got := CheckCreateEligibility(enrollment, ticket, room, 1); got != first {
			t.Fatalf("decision changed between calls: %+v vs %+v", got, first)
		}
	}
}

func TestCheckUpdateEligibility(t *testing.T) {
	room := &entity.Room{Base: entity.Base{ID: 2}, Capacity: 2}
	booking := &entity.Booking{Base: entity.Base{ID: 10}, UserID: 1, RoomID: 1}

	tests := []struct {
		name      string
		room      *entity.Room
		occupancy int
		booking   *entity.Booking
		userID    int64
		allowed   bool
		reason    Rejection
	}{
		{
			name:    "room absent",
			booking: booking,
			userID:  1,
			reason:  RejectionRoomNotFound,
		},
		{
			name:      "room at capacity",
			room:      room,
			occupancy: 2,
			booking:   booking,
			userID:    1,
			reason:    RejectionRoomAtCapacity,
		},
		{
			name:   "booking absent",
			room:   room,
			userID: 1,
			reason: RejectionNoExistingBooking,
		},
		{
			name:    "booking owned by someone else",
			room:    room,
			booking: booking,
			userID:  2,
			reason:  RejectionNotOwner,
		},
		{
			name:      "allowed",
			room:      room,
			occupancy: 1,
			booking:   booking,
			userID:    1,
			allowed:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := CheckUpdateEligibility(tt.room, tt.occupancy, tt.booking, tt.userID)
			if decision.Allowed != tt.allowed {
				t.Fatalf("Allowed = %v, want %v", decision.Allowed, tt.allowed)
			}
			if !tt.allowed && decision.Reason != tt.reason {
				t.Fatalf("Reason = %q, want %q", decision.Reason, tt.reason)
			}
		})
	}
}

// Room checks come before the booking lookup, so a full room rejects even
// when the booking id is bogus
func TestCheckUpdateEligibility_Precedence(t *testing.T) {
	room := &entity.Room{Base: entity.Base{ID: 2}, Capacity: 1}

	decision := CheckUpdateEligibility(room, 1, nil, 1)
	if decision.Reason != RejectionRoomAtCapacity {
		t.Fatalf("Reason = %q, want %q", decision.Reason, RejectionRoomAtCapacity)
	}
}

func TestCheckHotelAccess(t *testing.T) {
	enrollment := &entity.Enrollment{Base: entity.Base{ID: 1}, UserID: 1}

	if decision := CheckHotelAccess(enrollment, paidHotelTicket()); !decision.Allowed {
		t.Fatalf("expected allow, got %q", decision.Reason)
	}
	if decision := CheckHotelAccess(nil, paidHotelTicket()); decision.Reason != RejectionMissingEnrollment {
		t.Fatalf("Reason = %q, want %q", decision.Reason, RejectionMissingEnrollment)
	}
}
