package model

import (
	"database/sql"
	"time"
)

// User represents an application account as stored in the `users` table.
// Token carries the single live session token; NULL means logged out.
// VerificationToken stays set until the account verification step clears it.
type User struct {
	ID                uint64         // users.id
	Name              string         // users.name
	Email             string         // users.email
	PasswordHash      string         // users.password_hash
	Newsletter        bool           // users.newsletter
	Token             sql.NullString // users.token (current session, NULL = logged out)
	Avatar            string         // users.avatar
	VerificationToken sql.NullString // users.verification_token
	Verified          bool           // users.verified
	CreatedAt         time.Time      // users.created_at
	UpdatedAt         time.Time      // users.updated_at
}
