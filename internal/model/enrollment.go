package model

import "time"

// Enrollment is a user's registration record for the event.  Owning
// an enrollment is a prerequisite for holding a ticket and therefore
// for any booking activity.  Each user has at most one enrollment.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – owning user (unique).
//  Name      – attendee full name.
//  Document  – national identity document number.
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type Enrollment struct {
	ID        uint64    // enrollments.id
	UserID    uint64    // enrollments.user_id
	Name      string    // enrollments.name
	Document  string    // enrollments.document
	CreatedAt time.Time // enrollments.created_at
	UpdatedAt time.Time // enrollments.updated_at
}
