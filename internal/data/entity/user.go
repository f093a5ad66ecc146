package entity

import "time"

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// User is the persisted identity record. PasswordHash and the pending
// verification fields never leave the data layer in responses; the code and
// its expiry are set while the account is unverified and cleared exactly once
// when it is consumed.
type User struct {
	Base
	Email                 string     `db:"email"`
	Username              string     `db:"username"`
	FullName              string     `db:"full_name"`
	PasswordHash          string     `db:"password"`
	Role                  UserRole   `db:"role"`
	Avatar                *string    `db:"avatar"`
	IsVerified            bool       `db:"is_verified"`
	VerificationCode      *string    `db:"verification_code"`
	VerificationExpiresAt *time.Time `db:"verification_expires_at"`
}
