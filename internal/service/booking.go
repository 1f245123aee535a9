package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/iliyamo/hotel-room-reservation/internal/model"
	"github.com/iliyamo/hotel-room-reservation/internal/repository"
)

// EnrollmentStore is the slice of the enrollment repository the
// booking rules need.
type EnrollmentStore interface {
	GetByUserID(ctx context.Context, userID uint64) (*model.Enrollment, error)
}

// TicketStore loads a ticket (joined with its type) by enrollment.
type TicketStore interface {
	GetByEnrollmentID(ctx context.Context, enrollmentID uint64) (*model.Ticket, error)
}

// BookingStore is the booking ledger.  CreateWithCapacity and
// MoveToRoom are expected to enforce the room-capacity invariant
// atomically and to report ErrRoomNotFound / ErrRoomFull.
type BookingStore interface {
	GetByUserID(ctx context.Context, userID uint64) (*model.Booking, error)
	CreateWithCapacity(ctx context.Context, userID, roomID uint64) (uint64, error)
	MoveToRoom(ctx context.Context, bookingID, roomID uint64) error
}

// Booking exposes the three room-reservation operations to the
// transport layer.
type Booking interface {
	Create(ctx context.Context, userID, roomID uint64) (uint64, error)
	Update(ctx context.Context, userID uint64, rawBookingID string, roomID uint64) (uint64, error)
	Get(ctx context.Context, userID uint64) (*model.Booking, error)
}

// BookingService validates and executes room reservations.  Every
// mutation runs the eligibility chain first (enrollment, then ticket,
// then the paid/in-person/hotel-inclusive predicate) and aborts at
// the first failure; the capacity check and the ledger mutation are
// delegated to the store as one atomic step, so a rejected request
// leaves no partial state behind.
type BookingService struct {
	enrollments EnrollmentStore
	tickets     TicketStore
	bookings    BookingStore
}

func NewBookingService(enrollments EnrollmentStore, tickets TicketStore, bookings BookingStore) *BookingService {
	return &BookingService{enrollments: enrollments, tickets: tickets, bookings: bookings}
}

// Create reserves a room for the user and returns the new booking id.
// Failure modes, in evaluation order: ErrEnrollmentNotFound /
// ErrTicketNotFound when the user never enrolled or holds no ticket,
// ErrPaymentRequired when the ticket is unpaid, remote or without
// lodging, ErrAlreadyBooked when the user already has a booking,
// ErrRoomNotFound / ErrRoomFull from the ledger.
func (s *BookingService) Create(ctx context.Context, userID, roomID uint64) (uint64, error) {
	if err := checkEligibility(ctx, s.enrollments, s.tickets, userID); err != nil {
		return 0, err
	}
	_, err := s.bookings.GetByUserID(ctx, userID)
	switch {
	case err == nil:
		return 0, ErrAlreadyBooked
	case !errors.Is(err, repository.ErrBookingNotFound):
		return 0, err
	}
	return s.bookings.CreateWithCapacity(ctx, userID, roomID)
}

// Update moves the caller's booking to a different room.  The raw
// booking id from the path must parse as a non-negative number
// (ErrInvalidBookingID, checked before any store read) and must match
// the id of the booking the caller actually owns (ErrForbidden, also
// raised when the caller has no booking at all).  Eligibility and the
// new room's capacity are then checked exactly as on create.
func (s *BookingService) Update(ctx context.Context, userID uint64, rawBookingID string, roomID uint64) (uint64, error) {
	bookingID, err := strconv.ParseInt(rawBookingID, 10, 64)
	if err != nil || bookingID < 0 {
		return 0, ErrInvalidBookingID
	}

	current, err := s.bookings.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return 0, ErrForbidden
		}
		return 0, err
	}
	if current.ID != uint64(bookingID) {
		return 0, ErrForbidden
	}

	if err := checkEligibility(ctx, s.enrollments, s.tickets, userID); err != nil {
		return 0, err
	}
	if err := s.bookings.MoveToRoom(ctx, current.ID, roomID); err != nil {
		return 0, err
	}
	return current.ID, nil
}

// Get returns the caller's booking with its room attributes, or
// ErrBookingNotFound.
func (s *BookingService) Get(ctx context.Context, userID uint64) (*model.Booking, error) {
	return s.bookings.GetByUserID(ctx, userID)
}

// checkEligibility walks enrollment -> ticket -> ticket predicate and
// returns the first failure unchanged.  Shared by the booking and
// hotel gates, which enforce identical rules.
func checkEligibility(ctx context.Context, enrollments EnrollmentStore, tickets TicketStore, userID uint64) error {
	enrollment, err := enrollments.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	ticket, err := tickets.GetByEnrollmentID(ctx, enrollment.ID)
	if err != nil {
		return err
	}
	if !ticket.CanBook() {
		return ErrPaymentRequired
	}
	return nil
}
