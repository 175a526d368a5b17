package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an admin-panel account. The site is designed around a single
// admin editor, but accounts are stored normally so a second editor can be
// added without schema changes.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize the hash
	DisplayName  string    `json:"display_name"`
	TOTPSecret   *string   `json:"-"` // Nullable; set during 2FA setup
	TOTPEnabled  bool      `json:"totp_enabled"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Needs2FASetup returns true if the user has not completed 2FA enrollment.
// The admin must set up 2FA on first login.
func (u *User) Needs2FASetup() bool {
	return !u.TOTPEnabled
}
