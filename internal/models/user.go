package models

import (
	"time"
)

// User represents a user account. PasswordHash and Email are private
// fields and must never be serialized on the article read path; only
// PublicUser is attached to article responses.
type User struct {
	ID              string    `json:"id" db:"id"`
	Email           string    `json:"email" db:"email"`
	FirstName       *string   `json:"firstName" db:"first_name"`
	LastName        *string   `json:"lastName" db:"last_name"`
	ProfileImageURL *string   `json:"profileImageUrl" db:"profile_image_url"`
	PasswordHash    string    `json:"-" db:"password_hash"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`
}

// PublicUser is the redacted subset of a user safe to expose in article
// responses.
type PublicUser struct {
	ID              string  `json:"id"`
	FirstName       *string `json:"firstName"`
	LastName        *string `json:"lastName"`
	ProfileImageURL *string `json:"profileImageUrl"`
}

// Public returns the redacted projection of the user.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:              u.ID,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		ProfileImageURL: u.ProfileImageURL,
	}
}

// LoginRequest is the payload for establishing a session
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
