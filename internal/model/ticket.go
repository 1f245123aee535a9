package model

import "time"

// Ticket status values as stored in the tickets.status column.
const (
	TicketStatusReserved = "RESERVED"
	TicketStatusPaid     = "PAID"
)

// TicketType classifies a ticket: whether the event is attended
// remotely and whether lodging is included in the price.  Only
// paid, in-person, hotel-inclusive tickets may book rooms.
//
// Fields:
//  ID            – primary key identifier.
//  Name          – human readable label (e.g. "In person + hotel").
//  PriceCents    – ticket price in cents.
//  IsRemote      – true when the ticket is for remote attendance.
//  IncludesHotel – true when lodging is part of the ticket.
//  CreatedAt     – creation timestamp.
//  UpdatedAt     – last update timestamp.
type TicketType struct {
	ID            uint64    // ticket_types.id
	Name          string    // ticket_types.name
	PriceCents    uint32    // ticket_types.price_cents
	IsRemote      bool      // ticket_types.is_remote
	IncludesHotel bool      // ticket_types.includes_hotel
	CreatedAt     time.Time // ticket_types.created_at
	UpdatedAt     time.Time // ticket_types.updated_at
}

// Ticket is the proof of registration for an enrollment.  Its status
// starts as RESERVED and becomes PAID once payment is confirmed.
// The repository layer always loads a ticket together with its type
// so eligibility can be decided without a second query.
//
// Fields:
//  ID           – primary key identifier.
//  EnrollmentID – owning enrollment (unique).
//  TicketTypeID – reference to the ticket's type.
//  Status       – RESERVED or PAID.
//  Type         – joined ticket type row.
//  CreatedAt    – creation timestamp.
//  UpdatedAt    – last update timestamp.
type Ticket struct {
	ID           uint64     // tickets.id
	EnrollmentID uint64     // tickets.enrollment_id
	TicketTypeID uint64     // tickets.ticket_type_id
	Status       string     // tickets.status
	Type         TicketType // joined from ticket_types
	CreatedAt    time.Time  // tickets.created_at
	UpdatedAt    time.Time  // tickets.updated_at
}

// CanBook reports whether this ticket entitles its holder to reserve
// a hotel room: the ticket must be paid, for in-person attendance and
// include lodging.
func (t Ticket) CanBook() bool {
	return t.Status == TicketStatusPaid && !t.Type.IsRemote && t.Type.IncludesHotel
}
