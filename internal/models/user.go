package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID         uuid.UUID  `db:"id"`
	Name       string     `db:"name"`
	Email      string     `db:"email"`
	Password   string     `db:"password"`
	Country    string     `db:"country"`
	Income     string     `db:"income"`
	OTP        string     `db:"otp"`
	OTPExpires *time.Time `db:"otp_expires"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
}
