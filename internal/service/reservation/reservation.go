// Package reservation implements the reservation engine: creating, resizing
// and cancelling capacity-limited reservations under the event lifecycle
// rules.
package reservation

import (
	"errors"
	"fmt"
	"time"

	"eventhub/internal/models"
	"eventhub/internal/storage"
)

var (
	ErrEventNotFound       = errors.New("event not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrAlreadyReserved     = errors.New("user already has a reservation for this event")
	ErrEventEnded          = errors.New("event has already ended")
	ErrEventStarted        = errors.New("event has already started")
	ErrEventFull           = errors.New("not enough available spots")
	ErrInvalidGuestsCount  = errors.New("guests count must be between 1 and 10")
	ErrForbidden           = errors.New("not allowed to manage this reservation")
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Storage
type Storage interface {
	GetEvent(id int) (*models.Event, error)
	GetUser(id int) (*models.User, error)
	GetReservation(id int) (*models.Reservation, error)
	SumGuestCounts(eventID int) (int, error)
	ReservationExists(eventID, userID int) (bool, error)
	CreateReservation(eventID, userID, guestsCount int) (int, error)
	UpdateReservationGuests(id, guestsCount int) error
	DeleteReservation(id int) error
	GetUserReservations(userID int) ([]models.Reservation, error)
	GetEventReservations(eventID int) ([]models.Reservation, error)
}

// Details is a reservation with its event and holder attached for
// presentation.
type Details struct {
	Reservation models.Reservation `json:"reservation"`
	Event       *models.Event      `json:"event,omitempty"`
	User        *models.User       `json:"user,omitempty"`
}

type Service struct {
	storage Storage
	now     func() time.Time
}

// New constructs the reservation engine. The now func supplies the current
// time for all lifecycle checks; pass nil to use time.Now.
func New(storage Storage, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}

	return &Service{storage: storage, now: now}
}

// Create reserves spots on an event for a user. One reservation per user
// per event; the event must not have ended yet; the guests must fit within
// the remaining capacity.
func (s *Service) Create(eventID, userID, guestsCount int) (*Details, error) {
	const op = "service.reservation.Create"

	event, err := s.storage.GetEvent(eventID)
	if err != nil {
		if errors.Is(err, storage.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	exists, err := s.storage.ReservationExists(eventID, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if exists {
		return nil, ErrAlreadyReserved
	}

	if event.HasEnded(s.now()) {
		return nil, ErrEventEnded
	}

	if !models.ValidGuestsCount(guestsCount) {
		return nil, ErrInvalidGuestsCount
	}

	booked, err := s.storage.SumGuestCounts(eventID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !event.Fits(booked, guestsCount) {
		return nil, ErrEventFull
	}

	id, err := s.storage.CreateReservation(eventID, userID, guestsCount)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user, err := s.storage.GetUser(userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Details{
		Reservation: models.Reservation{
			ID:          id,
			EventID:     eventID,
			UserID:      userID,
			GuestsCount: guestsCount,
			CreatedAt:   s.now(),
			UpdatedAt:   s.now(),
		},
		Event: event,
		User:  user,
	}, nil
}

// Update changes the guest count of a reservation. Only the owner or an
// admin may do so, and only while the event has not started. Setting the
// current value again succeeds without touching storage; the returned flag
// reports whether anything changed.
func (s *Service) Update(reservationID, guestsCount, actorID int) (*models.Reservation, bool, error) {
	const op = "service.reservation.Update"

	reservation, actor, event, err := s.loadForMutation(op, reservationID, actorID)
	if err != nil {
		return nil, false, err
	}

	if !actor.CanManageReservation(reservation) {
		return nil, false, ErrForbidden
	}

	if !event.CanBeModified(s.now()) {
		return nil, false, ErrEventStarted
	}

	if !models.ValidGuestsCount(guestsCount) {
		return nil, false, ErrInvalidGuestsCount
	}

	if guestsCount == reservation.GuestsCount {
		return reservation, false, nil
	}

	booked, err := s.storage.SumGuestCounts(reservation.EventID)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}
	if !event.Fits(booked-reservation.GuestsCount, guestsCount) {
		return nil, false, ErrEventFull
	}

	if err = s.storage.UpdateReservationGuests(reservationID, guestsCount); err != nil {
		if errors.Is(err, storage.ErrReservationNotFound) {
			return nil, false, ErrReservationNotFound
		}
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}

	reservation.GuestsCount = guestsCount

	return reservation, true, nil
}

// Cancel deletes a reservation. Same ownership gate as Update, and only
// while the event has not started.
func (s *Service) Cancel(reservationID, actorID int) error {
	const op = "service.reservation.Cancel"

	reservation, actor, event, err := s.loadForMutation(op, reservationID, actorID)
	if err != nil {
		return err
	}

	if !actor.CanManageReservation(reservation) {
		return ErrForbidden
	}

	if !event.CanBeModified(s.now()) {
		return ErrEventStarted
	}

	if err = s.storage.DeleteReservation(reservationID); err != nil {
		if errors.Is(err, storage.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// HasUserReserved reports whether the user already holds a reservation for
// the event.
func (s *Service) HasUserReserved(eventID, userID int) (bool, error) {
	const op = "service.reservation.HasUserReserved"

	if _, err := s.storage.GetEvent(eventID); err != nil {
		if errors.Is(err, storage.ErrEventNotFound) {
			return false, ErrEventNotFound
		}
		return false, fmt.Errorf("%s: %w", op, err)
	}

	exists, err := s.storage.ReservationExists(eventID, userID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return exists, nil
}

// ListForUser returns the user's reservations, newest first.
func (s *Service) ListForUser(userID int) ([]models.Reservation, error) {
	const op = "service.reservation.ListForUser"

	reservations, err := s.storage.GetUserReservations(userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return reservations, nil
}

// ListForEvent returns the event's reservations, newest first. Only the
// owning organizer or an admin may list them.
func (s *Service) ListForEvent(eventID, actorID int) ([]models.Reservation, error) {
	const op = "service.reservation.ListForEvent"

	event, err := s.storage.GetEvent(eventID)
	if err != nil {
		if errors.Is(err, storage.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	actor, err := s.storage.GetUser(actorID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, ErrForbidden
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !actor.CanViewEventReservations(event) {
		return nil, ErrForbidden
	}

	reservations, err := s.storage.GetEventReservations(eventID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return reservations, nil
}

func (s *Service) loadForMutation(op string, reservationID, actorID int) (*models.Reservation, *models.User, *models.Event, error) {
	reservation, err := s.storage.GetReservation(reservationID)
	if err != nil {
		if errors.Is(err, storage.ErrReservationNotFound) {
			return nil, nil, nil, ErrReservationNotFound
		}
		return nil, nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	actor, err := s.storage.GetUser(actorID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, nil, nil, ErrForbidden
		}
		return nil, nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	event, err := s.storage.GetEvent(reservation.EventID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return reservation, actor, event, nil
}
