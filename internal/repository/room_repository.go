package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/hotel-room-reservation/internal/model"
)

// ErrRoomNotFound is returned when a room lookup fails.
var ErrRoomNotFound = errors.New("room not found")

// RoomRepo provides read access to rooms.  Occupancy is never stored
// on the room row; RoomWithOccupancy derives it from the bookings
// table so listings cannot disagree with the ledger.
type RoomRepo struct {
	db *sql.DB
}

func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{db: db} }

// RoomWithOccupancy pairs a room with the number of active bookings
// referencing it.  Used by the hotel detail endpoint so clients can
// show remaining slots per room.
type RoomWithOccupancy struct {
	model.Room
	BookedCount uint32
}

// GetByID retrieves a room by its ID.  Returns ErrRoomNotFound when
// no row is found.
func (r *RoomRepo) GetByID(ctx context.Context, id uint64) (*model.Room, error) {
	const q = `SELECT id, hotel_id, name, capacity, created_at, updated_at FROM rooms WHERE id = ?`
	var rm model.Room
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&rm.ID, &rm.HotelID, &rm.Name, &rm.Capacity, &rm.CreatedAt, &rm.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &rm, nil
}

// ListByHotel returns all rooms of a hotel together with their booked
// counts, ordered by room id.
func (r *RoomRepo) ListByHotel(ctx context.Context, hotelID uint64) ([]RoomWithOccupancy, error) {
	const q = `SELECT ro.id, ro.hotel_id, ro.name, ro.capacity, ro.created_at, ro.updated_at,
	                  COUNT(b.id)
	           FROM rooms ro
	           LEFT JOIN bookings b ON b.room_id = ro.id
	           WHERE ro.hotel_id = ?
	           GROUP BY ro.id
	           ORDER BY ro.id`
	rows, err := r.db.QueryContext(ctx, q, hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]RoomWithOccupancy, 0)
	for rows.Next() {
		var ro RoomWithOccupancy
		if err := rows.Scan(&ro.ID, &ro.HotelID, &ro.Name, &ro.Capacity,
			&ro.CreatedAt, &ro.UpdatedAt, &ro.BookedCount); err != nil {
			return nil, err
		}
		out = append(out, ro)
	}
	return out, rows.Err()
}
