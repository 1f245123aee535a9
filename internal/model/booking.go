package model

import "time"

// Booking associates one user with one room for the duration of the
// event.  A user owns at most one booking; changing rooms mutates the
// existing row instead of inserting a second one.  Bookings are never
// deleted, so the number of rows referencing a room is the room's
// occupancy.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – booking owner (unique).
//  RoomID    – reserved room.
//  Room      – joined room row, populated on the read path.
//  CreatedAt – creation timestamp.
//  UpdatedAt – refreshed whenever the room reference changes.
type Booking struct {
	ID        uint64    // bookings.id
	UserID    uint64    // bookings.user_id
	RoomID    uint64    // bookings.room_id
	Room      Room      // joined from rooms
	CreatedAt time.Time // bookings.created_at
	UpdatedAt time.Time // bookings.updated_at
}
