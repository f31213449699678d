package domain

import "fmt"

// Status is the lifecycle state of a campaign. The set is closed: every
// status stored or transmitted must be one of the constants below.
type Status string

const (
	StatusDraft   Status = "draft"
	StatusPending Status = "pending"
	StatusActive  Status = "active"
	StatusPaused  Status = "paused"
	StatusStopped Status = "stopped"
	StatusFailed  Status = "failed"
)

// ParseStatus converts a raw string into a Status. Unknown values are
// rejected so arbitrary strings never enter the state machine.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusDraft, StatusPending, StatusActive, StatusPaused, StatusStopped, StatusFailed:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown campaign status %q", s)
}

// Valid reports whether s is a member of the status enum.
func (s Status) Valid() bool {
	_, err := ParseStatus(string(s))
	return err == nil
}

// Transient reports whether the status is expected to resolve on its own
// via external confirmation rather than a user action. Only pending
// qualifies; a poller should be armed while a campaign is transient.
func (s Status) Transient() bool {
	return s == StatusPending
}

// Terminal reports whether no further transition may leave the status.
func (s Status) Terminal() bool {
	return s == StatusStopped
}

// transitions is the full table of permitted status changes. Stopped is
// absent as a source: it is absorbing.
var transitions = map[Status][]Status{
	StatusDraft:   {StatusPending},
	StatusPending: {StatusActive, StatusFailed},
	StatusActive:  {StatusPaused, StatusStopped},
	StatusPaused:  {StatusActive, StatusStopped},
	StatusFailed:  {StatusPending},
}

// CanTransition reports whether the move from s to target is permitted.
func (s Status) CanTransition(target Status) bool {
	for _, t := range transitions[s] {
		if t == target {
			return true
		}
	}
	return false
}
