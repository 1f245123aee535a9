package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/hotel-room-reservation/internal/model"
)

// ErrBookingNotFound is returned when a user has no booking.
var ErrBookingNotFound = errors.New("booking not found")

// BookingRepo owns the bookings table and the room-capacity invariant
// that goes with it: the number of bookings referencing a room must
// never exceed the room's capacity.  Mutations therefore run inside a
// transaction that locks the target room row, so two concurrent
// requests for the last slot serialize instead of both passing the
// capacity check.  Occupancy is always derived by counting bookings;
// there is no separate remaining-slots counter to drift.
type BookingRepo struct {
	db *sql.DB
}

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// GetByUserID returns the caller's booking joined with its room, or
// ErrBookingNotFound.  Lookup is keyed by user because a user owns at
// most one booking.
func (r *BookingRepo) GetByUserID(ctx context.Context, userID uint64) (*model.Booking, error) {
	const q = `SELECT b.id, b.user_id, b.room_id, b.created_at, b.updated_at,
	                  ro.id, ro.hotel_id, ro.name, ro.capacity, ro.created_at, ro.updated_at
	           FROM bookings b
	           JOIN rooms ro ON ro.id = b.room_id
	           WHERE b.user_id = ? LIMIT 1`
	var bk model.Booking
	err := r.db.QueryRowContext(ctx, q, userID).Scan(
		&bk.ID, &bk.UserID, &bk.RoomID, &bk.CreatedAt, &bk.UpdatedAt,
		&bk.Room.ID, &bk.Room.HotelID, &bk.Room.Name, &bk.Room.Capacity,
		&bk.Room.CreatedAt, &bk.Room.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &bk, nil
}

// CountByRoom returns the number of active bookings referencing a room.
func (r *BookingRepo) CountByRoom(ctx context.Context, roomID uint64) (uint32, error) {
	var n uint32
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM bookings WHERE room_id = ?", roomID).Scan(&n)
	return n, err
}

// CreateWithCapacity inserts a booking for the user in the given room,
// enforcing the capacity invariant atomically.  The room row is locked
// FOR UPDATE for the duration of the transaction; the occupancy count
// and the insert happen under that lock, so a failed check leaves the
// ledger untouched and a passed check cannot be raced past capacity.
// Returns the new booking id, ErrRoomNotFound when the room id does
// not resolve, or ErrRoomFull when every slot is taken.
func (r *BookingRepo) CreateWithCapacity(ctx context.Context, userID, roomID uint64) (uint64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	capacity, err := lockRoomCapacity(ctx, tx, roomID)
	if err != nil {
		return 0, err
	}
	var occupied uint32
	if err := tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM bookings WHERE room_id = ?", roomID).Scan(&occupied); err != nil {
		return 0, err
	}
	if occupied >= capacity {
		return 0, ErrRoomFull
	}

	res, err := tx.ExecContext(ctx,
		"INSERT INTO bookings (user_id, room_id) VALUES (?, ?)", userID, roomID)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	committed = true
	return uint64(id), nil
}

// MoveToRoom reassigns an existing booking to a new room under the
// same capacity discipline as CreateWithCapacity.  The occupancy count
// excludes the booking being moved, so re-selecting the current room
// is a no-op rather than a capacity failure.  No counter needs to be
// released on the old room: its occupancy drops the moment the row's
// room_id changes.
func (r *BookingRepo) MoveToRoom(ctx context.Context, bookingID, roomID uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	capacity, err := lockRoomCapacity(ctx, tx, roomID)
	if err != nil {
		return err
	}
	var occupied uint32
	if err := tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM bookings WHERE room_id = ? AND id <> ?",
		roomID, bookingID).Scan(&occupied); err != nil {
		return err
	}
	if occupied >= capacity {
		return ErrRoomFull
	}

	res, err := tx.ExecContext(ctx,
		"UPDATE bookings SET room_id = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		roomID, bookingID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// The caller resolved the booking moments ago; losing it here
		// means it was deleted out of band.
		var exists bool
		if err := tx.QueryRowContext(ctx,
			"SELECT EXISTS(SELECT 1 FROM bookings WHERE id = ?)", bookingID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return ErrBookingNotFound
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// lockRoomCapacity reads a room's capacity under a FOR UPDATE lock so
// concurrent booking mutations on the same room serialize.
func lockRoomCapacity(ctx context.Context, tx *sql.Tx, roomID uint64) (uint32, error) {
	var capacity uint32
	err := tx.QueryRowContext(ctx,
		"SELECT capacity FROM rooms WHERE id = ? FOR UPDATE", roomID).Scan(&capacity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrRoomNotFound
		}
		return 0, err
	}
	return capacity, nil
}
