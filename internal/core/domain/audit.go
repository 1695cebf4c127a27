package domain

import "time"

// Audit actions recorded for authentication activity.
const (
	AuditLogin   = "login"
	AuditRefresh = "refresh"
	AuditLogout  = "logout"
)

// AuthEvent is a single authentication audit record. Events are enqueued by
// the auth service and persisted asynchronously.
type AuthEvent struct {
	UserName   string
	Action     string
	Success    bool
	OccurredAt time.Time
}
