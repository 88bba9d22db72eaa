package domain

import "time"

// User represents a registered user
type User struct {
	ID           int64
	Name         string
	Email        string
	Phone        string
	PasswordHash string

	CreatedAt time.Time
}
