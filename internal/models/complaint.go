package models

import "time"

const (
	StatusSubmitted  = "Submitted"
	StatusAccepted   = "Accepted"
	StatusInProgress = "In Progress"
	StatusDeclined   = "Declined"
)

// Complaint is a station-submitted issue report tracked through a small
// status lifecycle. UpdatedAt is nil until the first status change.
type Complaint struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Issue     string     `json:"issue"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func ValidStatus(status string) bool {
	switch status {
	case StatusSubmitted, StatusAccepted, StatusInProgress, StatusDeclined:
		return true
	}
	return false
}
