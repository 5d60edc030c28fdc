// Package event implements event CRUD with ownership checks, derived
// status, availability and cover image handling.
package event

import (
	"errors"
	"fmt"
	"time"

	"eventhub/internal/models"
	"eventhub/internal/storage"
)

var (
	ErrEventNotFound     = errors.New("event not found")
	ErrLocationNotFound  = errors.New("location not found")
	ErrEventTypeNotFound = errors.New("event type not found")
	ErrImageNotFound     = errors.New("image not found")
	ErrForbidden         = errors.New("not allowed to manage this event")
	ErrInvalidTimeRange  = errors.New("event must end after it starts")
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Storage
type Storage interface {
	CreateEvent(event *models.Event) (int, error)
	GetEvent(id int) (*models.Event, error)
	UpdateEvent(event *models.Event) error
	DeleteEvent(id int) error
	GetAllEvents() ([]models.Event, error)
	SumGuestCounts(eventID int) (int, error)
	GetUser(id int) (*models.User, error)
	AddUserRole(userID int, role models.Role) error
	GetLocation(id int) (*models.Location, error)
	GetEventType(id int) (*models.EventType, error)
	AddImage(eventID int, url string, isCover bool) (int, error)
	SetCoverImage(eventID, imageID int) error
	GetEventImages(eventID int) ([]models.Image, error)
}

// Info is an event with its derived status and remaining capacity.
type Info struct {
	models.Event
	Status         models.EventStatus `json:"status"`
	AvailableSpots int                `json:"available_spots"`
	Images         []models.Image     `json:"images,omitempty"`
}

type Input struct {
	Title       string
	Description string
	EventTypeID int
	LocationID  int
	StartsAt    time.Time
	EndsAt      time.Time
	ImageURL    string
}

type Service struct {
	storage Storage
	now     func() time.Time
}

func New(storage Storage, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}

	return &Service{storage: storage, now: now}
}

// Create stores a new event owned by the actor. An actor holding neither
// the admin nor the organizer role is promoted to organizer on first
// create.
func (s *Service) Create(in Input, actorID int) (*Info, error) {
	const op = "service.event.Create"

	if !in.EndsAt.After(in.StartsAt) {
		return nil, ErrInvalidTimeRange
	}

	if err := s.checkReferences(op, in); err != nil {
		return nil, err
	}

	actor, err := s.storage.GetUser(actorID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !actor.HasRole(models.RoleAdmin) && !actor.HasRole(models.RoleOrganizer) {
		if err = s.storage.AddUserRole(actorID, models.RoleOrganizer); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	event := &models.Event{
		Title:       in.Title,
		Description: in.Description,
		EventTypeID: in.EventTypeID,
		LocationID:  in.LocationID,
		StartsAt:    in.StartsAt,
		EndsAt:      in.EndsAt,
		UserID:      actorID,
	}

	id, err := s.storage.CreateEvent(event)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	event.ID = id

	if in.ImageURL != "" {
		if _, err = s.storage.AddImage(id, in.ImageURL, true); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	return s.info(op, event)
}

// Get returns the event with derived status, available spots and images.
func (s *Service) Get(id int) (*Info, error) {
	const op = "service.event.Get"

	event, err := s.storage.GetEvent(id)
	if err != nil {
		if errors.Is(err, storage.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	info, err := s.info(op, event)
	if err != nil {
		return nil, err
	}

	images, err := s.storage.GetEventImages(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	info.Images = images

	return info, nil
}

// List returns events ordered by start time. Status, event type and
// location filters are optional; zero values disable them.
func (s *Service) List(status models.EventStatus, eventTypeID, locationID int) ([]Info, error) {
	const op = "service.event.List"

	events, err := s.storage.GetAllEvents()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := s.now()

	infos := make([]Info, 0, len(events))
	for i := range events {
		event := &events[i]

		if status != "" && event.Status(now) != status {
			continue
		}
		if eventTypeID != 0 && event.EventTypeID != eventTypeID {
			continue
		}
		if locationID != 0 && event.LocationID != locationID {
			continue
		}

		booked, err := s.storage.SumGuestCounts(event.ID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		infos = append(infos, Info{
			Event:          *event,
			Status:         event.Status(now),
			AvailableSpots: event.AvailableSpots(booked),
		})
	}

	return infos, nil
}

// Update modifies an event. Admins may update any event; organizers only
// their own.
func (s *Service) Update(id int, in Input, actorID int) (*Info, error) {
	const op = "service.event.Update"

	event, actor, err := s.loadForMutation(op, id, actorID)
	if err != nil {
		return nil, err
	}

	if !actor.CanManageEvent(event) {
		return nil, ErrForbidden
	}

	if !in.EndsAt.After(in.StartsAt) {
		return nil, ErrInvalidTimeRange
	}

	if err = s.checkReferences(op, in); err != nil {
		return nil, err
	}

	event.Title = in.Title
	event.Description = in.Description
	event.EventTypeID = in.EventTypeID
	event.LocationID = in.LocationID
	event.StartsAt = in.StartsAt
	event.EndsAt = in.EndsAt

	if err = s.storage.UpdateEvent(event); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if in.ImageURL != "" {
		if _, err = s.storage.AddImage(id, in.ImageURL, false); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	return s.info(op, event)
}

// Delete removes an event together with its reservations and images. Same
// ownership gate as Update.
func (s *Service) Delete(id, actorID int) error {
	const op = "service.event.Delete"

	event, actor, err := s.loadForMutation(op, id, actorID)
	if err != nil {
		return err
	}

	if !actor.CanManageEvent(event) {
		return ErrForbidden
	}

	if err = s.storage.DeleteEvent(id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// SetCoverImage marks one of the event's images as its cover. Same
// ownership gate as Update.
func (s *Service) SetCoverImage(eventID, imageID, actorID int) error {
	const op = "service.event.SetCoverImage"

	event, actor, err := s.loadForMutation(op, eventID, actorID)
	if err != nil {
		return err
	}

	if !actor.CanManageEvent(event) {
		return ErrForbidden
	}

	if err = s.storage.SetCoverImage(eventID, imageID); err != nil {
		if errors.Is(err, storage.ErrImageNotFound) {
			return ErrImageNotFound
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Service) checkReferences(op string, in Input) error {
	if _, err := s.storage.GetLocation(in.LocationID); err != nil {
		if errors.Is(err, storage.ErrLocationNotFound) {
			return ErrLocationNotFound
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.storage.GetEventType(in.EventTypeID); err != nil {
		if errors.Is(err, storage.ErrEventTypeNotFound) {
			return ErrEventTypeNotFound
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Service) loadForMutation(op string, eventID, actorID int) (*models.Event, *models.User, error) {
	event, err := s.storage.GetEvent(eventID)
	if err != nil {
		if errors.Is(err, storage.ErrEventNotFound) {
			return nil, nil, ErrEventNotFound
		}
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	actor, err := s.storage.GetUser(actorID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, nil, ErrForbidden
		}
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return event, actor, nil
}

func (s *Service) info(op string, event *models.Event) (*Info, error) {
	booked, err := s.storage.SumGuestCounts(event.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := s.now()

	return &Info{
		Event:          *event,
		Status:         event.Status(now),
		AvailableSpots: event.AvailableSpots(booked),
	}, nil
}
