package model

import "time"

// User is a registered account. The password hash never leaves the server:
// it is excluded from JSON serialization entirely.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
