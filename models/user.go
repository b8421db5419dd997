package models

import "time"

// User represents an account of the remote auth service.
// PasswordHash never leaves the server.
type User struct {
	// UserID is the opaque identifier handed to clients as the JWT subject.
	UserID string `json:"user_id"`

	// Email is the unique login of the user.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the email/password pair accepted by the sign-up and
// sign-in endpoints.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
