package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/hotel-room-reservation/internal/model"
)

// ErrTicketNotFound is returned when an enrollment has no ticket or a
// ticket lookup by id fails.
var ErrTicketNotFound = errors.New("ticket not found")

// ErrTicketTypeNotFound is returned when a ticket references an
// unknown ticket type id.
var ErrTicketTypeNotFound = errors.New("ticket type not found")

// TicketRepo provides access to tickets and ticket types.  Tickets are
// always loaded together with their type so callers can evaluate
// booking eligibility without a second round trip.
type TicketRepo struct {
	db *sql.DB
}

func NewTicketRepo(db *sql.DB) *TicketRepo { return &TicketRepo{db: db} }

const ticketColumns = `t.id, t.enrollment_id, t.ticket_type_id, t.status, t.created_at, t.updated_at,
                       tt.id, tt.name, tt.price_cents, tt.is_remote, tt.includes_hotel, tt.created_at, tt.updated_at`

func scanTicket(row *sql.Row) (*model.Ticket, error) {
	var t model.Ticket
	err := row.Scan(
		&t.ID, &t.EnrollmentID, &t.TicketTypeID, &t.Status, &t.CreatedAt, &t.UpdatedAt,
		&t.Type.ID, &t.Type.Name, &t.Type.PriceCents, &t.Type.IsRemote, &t.Type.IncludesHotel,
		&t.Type.CreatedAt, &t.Type.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	return &t, nil
}

// GetByEnrollmentID returns the ticket belonging to an enrollment,
// joined with its type, or ErrTicketNotFound.
func (r *TicketRepo) GetByEnrollmentID(ctx context.Context, enrollmentID uint64) (*model.Ticket, error) {
	const q = `SELECT ` + ticketColumns + `
	           FROM tickets t
	           JOIN ticket_types tt ON tt.id = t.ticket_type_id
	           WHERE t.enrollment_id = ? LIMIT 1`
	return scanTicket(r.db.QueryRowContext(ctx, q, enrollmentID))
}

// GetByID returns a ticket by primary key, joined with its type.
func (r *TicketRepo) GetByID(ctx context.Context, id uint64) (*model.Ticket, error) {
	const q = `SELECT ` + ticketColumns + `
	           FROM tickets t
	           JOIN ticket_types tt ON tt.id = t.ticket_type_id
	           WHERE t.id = ? LIMIT 1`
	return scanTicket(r.db.QueryRowContext(ctx, q, id))
}

// ListTypes returns all purchasable ticket types ordered by id.
func (r *TicketRepo) ListTypes(ctx context.Context) ([]model.TicketType, error) {
	const q = `SELECT id, name, price_cents, is_remote, includes_hotel, created_at, updated_at
	           FROM ticket_types ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.TicketType, 0)
	for rows.Next() {
		var tt model.TicketType
		if err := rows.Scan(&tt.ID, &tt.Name, &tt.PriceCents, &tt.IsRemote, &tt.IncludesHotel,
			&tt.CreatedAt, &tt.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, tt)
	}
	return out, rows.Err()
}

// Create inserts a RESERVED ticket for the enrollment and returns the
// stored row.  A foreign key failure on the type id surfaces as
// ErrTicketTypeNotFound; a duplicate enrollment raises the driver's
// unique-key error untouched since callers check for an existing
// ticket first.
func (r *TicketRepo) Create(ctx context.Context, enrollmentID, ticketTypeID uint64) (*model.Ticket, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM ticket_types WHERE id = ?)", ticketTypeID).Scan(&exists); err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrTicketTypeNotFound
	}
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO tickets (enrollment_id, ticket_type_id, status) VALUES (?,?,?)",
		enrollmentID, ticketTypeID, model.TicketStatusReserved)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, uint64(id))
}

// MarkPaid flips a ticket's status to PAID.  Returns ErrTicketNotFound
// when the id does not resolve to a row.
func (r *TicketRepo) MarkPaid(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE tickets SET status=?, updated_at=CURRENT_TIMESTAMP WHERE id=?",
		model.TicketStatusPaid, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Re-check existence: affected can be 0 for an already-paid row.
		var exists bool
		if err := r.db.QueryRowContext(ctx,
			"SELECT EXISTS(SELECT 1 FROM tickets WHERE id = ?)", id).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return ErrTicketNotFound
		}
	}
	return nil
}
