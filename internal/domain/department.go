package domain

import "time"

// Department represents an organizational unit a visitor can be assigned to
type Department struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time
}
