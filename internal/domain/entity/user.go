package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered identity. Username and email are globally unique.
// Enabled stays false until the email OTP has been verified, and OTP is nil
// when no code is outstanding.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	Email        string
	MobilePhone  string
	Enabled      bool
	Role         Role
	OTP          *OneTimePassword
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Authorities derives the user's authority set from its role.
func (u *User) Authorities() Authorities {
	return AuthoritiesFor(u.Role)
}

// IssueOTP replaces any outstanding OTP.
func (u *User) IssueOTP(otp *OneTimePassword) {
	u.OTP = otp
}

// ClearOTP consumes the outstanding OTP.
func (u *User) ClearOTP() {
	u.OTP = nil
}

// Enable marks the account as verified and consumes its OTP.
func (u *User) Enable() {
	u.Enabled = true
	u.ClearOTP()
}
