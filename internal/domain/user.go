package domain

import "time"

// User represents a staff account that manages the visitor registry
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         string
	IsStaff      bool
	CreatedAt    time.Time
}
