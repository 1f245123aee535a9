package model

import "time"

// Hotel groups bookable rooms under a single property.
//
// Fields:
//  ID        – primary key identifier.
//  Name      – hotel name.
//  Image     – URL of the hotel's cover image.
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type Hotel struct {
	ID        uint64    // hotels.id
	Name      string    // hotels.name
	Image     string    // hotels.image
	CreatedAt time.Time // hotels.created_at
	UpdatedAt time.Time // hotels.updated_at
}

// Room is a bookable unit inside a hotel.  Capacity is the total
// number of guests the room accommodates; occupancy is never stored
// on the row but always derived by counting active bookings, so the
// capacity figure cannot drift when a booking mutation fails halfway.
//
// Fields:
//  ID        – primary key identifier.
//  HotelID   – owning hotel.
//  Name      – room label (e.g. "1203").
//  Capacity  – total bookable slots, non-negative.
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type Room struct {
	ID        uint64    // rooms.id
	HotelID   uint64    // rooms.hotel_id
	Name      string    // rooms.name
	Capacity  uint32    // rooms.capacity
	CreatedAt time.Time // rooms.created_at
	UpdatedAt time.Time // rooms.updated_at
}
