// Package entity defines the domain entities for the users feature.
package entity

import "time"

// User represents a registered account in the system.
// It contains authentication credentials and metadata for user management.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// FirstName is the user's given name.
	FirstName string `gorm:"size:255;not null"`

	// LastName is the user's family name.
	LastName string `gorm:"size:255;not null"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the user's password.
	// This never stores the plaintext.
	Password string `gorm:"size:255;not null"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
