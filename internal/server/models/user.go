package models

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/contactdesk/internal/common"
)

// User is a registered account. PasswordHash never leaves the server; use
// Public for anything written to a client.
type User struct {
	ID           string    `bson:"_id"`
	Email        string    `bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	PBD          bool      `bson:"pbd"`
	CreatedAt    time.Time `bson:"created_at"`
}

// PublicUser is the client-facing view of a User.
type PublicUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	PBD       bool      `json:"pbd"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		PBD:       u.PBD,
		CreatedAt: u.CreatedAt,
	}
}

// ValidateCredentials checks that both email and password are present.
// Only the first missing field is reported.
func ValidateCredentials(email, password string) error {
	if strings.TrimSpace(email) == "" {
		return common.NewValidationError("email can not be undefined")
	}
	if password == "" {
		return common.NewValidationError("password can not be undefined")
	}
	return nil
}
