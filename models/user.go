package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Name is the unique user name acting as the login key.
	Name string `json:"name"`

	// Email is the e-mail address supplied at registration.
	Email string `json:"email"`

	// Password carries the plaintext password on inbound register/login
	// requests only. It is hashed before persistence and never written back
	// out: the field is cleared by the service layer as soon as the hash is
	// computed.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	// Used for auditing and lifecycle management.
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
