package models

import "time"

type User struct {
	ID             uint64
	Email          string    `json:"email"`
	Password       []byte    `json:"-"`
	EmailConfirmed bool      `json:"email_confirmed" db:"email_confirmed"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
