package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventStaffRegistered EventType = "staff_registered"
	EventLoginSucceeded  EventType = "login_succeeded"
	EventLoginFailed     EventType = "login_failed"
	EventTokenRefreshed  EventType = "token_refreshed"
)

// Event represents an auth audit event emitted by services. It carries
// the account id and email only; password material never enters events.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	AccountID string    `json:"account_id,omitempty"`
	Email     string    `json:"email,omitempty"`
	Reason    string    `json:"reason,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
