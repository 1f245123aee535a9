package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/hotel-room-reservation/internal/model"
)

// ErrEnrollmentNotFound is returned when a user has no enrollment.
var ErrEnrollmentNotFound = errors.New("enrollment not found")

// EnrollmentRepo provides access to the enrollments table.  Every
// user owns at most one enrollment (unique key on user_id), so all
// lookups are keyed by user.
type EnrollmentRepo struct {
	db *sql.DB
}

func NewEnrollmentRepo(db *sql.DB) *EnrollmentRepo { return &EnrollmentRepo{db: db} }

// GetByUserID returns the enrollment owned by the given user, or
// ErrEnrollmentNotFound when the user never enrolled.
func (r *EnrollmentRepo) GetByUserID(ctx context.Context, userID uint64) (*model.Enrollment, error) {
	const q = `SELECT id, user_id, name, document, created_at, updated_at
	           FROM enrollments WHERE user_id = ? LIMIT 1`
	var e model.Enrollment
	err := r.db.QueryRowContext(ctx, q, userID).Scan(
		&e.ID, &e.UserID, &e.Name, &e.Document, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEnrollmentNotFound
		}
		return nil, err
	}
	return &e, nil
}

// Upsert creates the user's enrollment or updates its attendee data
// in place.  The enrollment ID is populated on the passed record.
func (r *EnrollmentRepo) Upsert(ctx context.Context, e *model.Enrollment) error {
	const q = `INSERT INTO enrollments (user_id, name, document)
	           VALUES (?, ?, ?)
	           ON DUPLICATE KEY UPDATE name = VALUES(name), document = VALUES(document),
	                                   updated_at = CURRENT_TIMESTAMP`
	if _, err := r.db.ExecContext(ctx, q, e.UserID, e.Name, e.Document); err != nil {
		return err
	}
	// Read the row back so ID and timestamps reflect what is stored.
	const sel = `SELECT id, user_id, name, document, created_at, updated_at
	             FROM enrollments WHERE user_id = ? LIMIT 1`
	return r.db.QueryRowContext(ctx, sel, e.UserID).Scan(
		&e.ID, &e.UserID, &e.Name, &e.Document, &e.CreatedAt, &e.UpdatedAt)
}
