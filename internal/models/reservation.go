package models

import "time"

const (
	MinGuestsCount = 1
	MaxGuestsCount = 10
)

type Reservation struct {
	ID          int       `json:"id"`
	EventID     int       `json:"event_id"`
	UserID      int       `json:"user_id"`
	GuestsCount int       `json:"guests_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ValidGuestsCount reports whether n is within the per-reservation bounds.
func ValidGuestsCount(n int) bool {
	return n >= MinGuestsCount && n <= MaxGuestsCount
}

// TotalAttendees counts the guests plus the reservation holder.
func (r *Reservation) TotalAttendees() int {
	return r.GuestsCount + 1
}
