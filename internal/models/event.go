package models

import "time"

// MaxCapacity is the total number of guests one event can hold, summed
// across all of its reservations.
const MaxCapacity = 50

type EventStatus string

const (
	StatusUpcoming EventStatus = "upcoming"
	StatusOngoing  EventStatus = "ongoing"
	StatusPast     EventStatus = "past"
)

type Event struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	EventTypeID int       `json:"event_type_id"`
	LocationID  int       `json:"location_id"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	UserID      int       `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func (e *Event) IsUpcoming(now time.Time) bool {
	return !e.StartsAt.Before(now)
}

func (e *Event) IsOngoing(now time.Time) bool {
	return !e.StartsAt.After(now) && !e.EndsAt.Before(now)
}

func (e *Event) IsPast(now time.Time) bool {
	return e.EndsAt.Before(now)
}

// Status reports exactly one of upcoming, ongoing or past. Upcoming is
// checked first: an event whose start equals now is upcoming, not ongoing.
func (e *Event) Status(now time.Time) EventStatus {
	switch {
	case e.IsUpcoming(now):
		return StatusUpcoming
	case e.IsOngoing(now):
		return StatusOngoing
	default:
		return StatusPast
	}
}

// CanBeModified reports whether reservations for the event may still be
// created, resized or cancelled. The gate is a strictly future start: an
// event starting right now already rejects reservation changes.
func (e *Event) CanBeModified(now time.Time) bool {
	return e.StartsAt.After(now)
}

// HasEnded reports whether the event's end timestamp is already in the past.
func (e *Event) HasEnded(now time.Time) bool {
	return e.EndsAt.Before(now)
}

// AvailableSpots returns the remaining guest capacity given the number of
// guests already booked. Never negative, even if booked exceeds capacity.
func (e *Event) AvailableSpots(booked int) int {
	if booked >= MaxCapacity {
		return 0
	}
	return MaxCapacity - booked
}

func (e *Event) IsFullyBooked(booked int) bool {
	return booked >= MaxCapacity
}

// Fits reports whether requested guests fit on top of the guests already
// booked. When resizing a reservation, booked must exclude its current
// guest count.
func (e *Event) Fits(booked, requested int) bool {
	return booked+requested <= MaxCapacity
}
