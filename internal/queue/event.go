// Package queue defines booking events exchanged over the message broker
// plus the publisher and the audit-log consumer for them.
package queue

import (
	"time"

	"github.com/google/uuid"
)

// Event kinds carried in BookingEvent.Kind.
const (
	BookingCreated     = "booking.created"
	BookingRoomChanged = "booking.room_changed"
)

// BookingEvent is published whenever a booking is created or moved to a
// different room. It carries enough information for downstream consumers
// to log or notify without querying the primary database.
type BookingEvent struct {
	EventID    string `json:"event_id"`
	Kind       string `json:"kind"`
	BookingID  uint64 `json:"booking_id"`
	UserID     uint64 `json:"user_id"`
	RoomID     uint64 `json:"room_id"`
	OccurredAt string `json:"occurred_at"`
}

// NewBookingEvent builds an event with a fresh UUID and a UTC timestamp.
func NewBookingEvent(kind string, bookingID, userID, roomID uint64) BookingEvent {
	return BookingEvent{
		EventID:    uuid.NewString(),
		Kind:       kind,
		BookingID:  bookingID,
		UserID:     userID,
		RoomID:     roomID,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
}
