package domain

import "time"

// LogAction represents an auditable visitor lifecycle event
type LogAction string

const (
	ActionRegistered  LogAction = "registered"
	ActionVerified    LogAction = "verified"
	ActionCheckedOut  LogAction = "checked_out"
	ActionCancelled   LogAction = "cancelled"
	ActionRescheduled LogAction = "rescheduled"
	ActionEmailResent LogAction = "email_resent"
	ActionExpired     LogAction = "expired"
	ActionDeleted     LogAction = "deleted"
)

// VisitorLog represents one audit trail entry for a visitor
type VisitorLog struct {
	ID        int64
	VisitorID string
	Action    LogAction
	Notes     string
	CreatedAt time.Time
}
