package entity

type TicketStatus string

const (
	TicketStatusReserved TicketStatus = "RESERVED"
	TicketStatusPaid     TicketStatus = "PAID"
)

type TicketType struct {
	Base
	Name          string  `db:"name"`
	Price         float64 `db:"price"`
	IsRemote      bool    `db:"is_remote"`
	IncludesHotel bool    `db:"includes_hotel"`
}

type Ticket struct {
	Base
	EnrollmentID int64        `db:"enrollment_id"`
	TicketTypeID int64        `db:"ticket_type_id"`
	Status       TicketStatus `db:"status"`

	Type TicketType
}
