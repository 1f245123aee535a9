// Package service contains the business rules that sit between the
// HTTP handlers and the repositories: booking eligibility, the
// one-booking-per-user rule and hotel browsing gates.  Failures are
// reported through the sentinel errors below plus the storage
// sentinels from the repository package, which propagate verbatim.
// Handlers translate the full set into HTTP statuses with errors.Is,
// keeping input-validation failures, authorization failures and
// payment failures distinguishable at the transport boundary.
package service

import "errors"

// ErrPaymentRequired is returned when the user holds a ticket that
// does not entitle them to book: unpaid, remote, or without lodging.
// Handlers should translate this into an HTTP 402 response.
var ErrPaymentRequired = errors.New("ticket does not grant hotel booking")

// ErrForbidden is returned when a user tries to update a booking they
// do not own, or to update without having booked at all.  Handlers
// should translate this into an HTTP 403 response.
var ErrForbidden = errors.New("forbidden")

// ErrAlreadyBooked is returned when a user who already owns a booking
// tries to create a second one.  Room changes go through update.
var ErrAlreadyBooked = errors.New("user already has a booking")

// ErrInvalidBookingID is returned when the booking id supplied on an
// update is not a non-negative number.  Raised before any storage
// read.  Handlers should translate this into an HTTP 400 response.
var ErrInvalidBookingID = errors.New("invalid booking id")

// ErrInvalidHotelID is returned when a hotel id path parameter is not
// a non-negative number.  Handlers should translate this into an
// HTTP 400 response.
var ErrInvalidHotelID = errors.New("invalid hotel id")
