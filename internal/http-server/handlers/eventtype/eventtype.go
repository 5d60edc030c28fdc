// Package eventtype serves the event type catalog.
package eventtype

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"eventhub/internal/http-server/middleware/auth"
	"eventhub/internal/lib/api/response"
	"eventhub/internal/lib/logger/sl"
	"eventhub/internal/models"
	dbstore "eventhub/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type CreateRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

type CreateResponse struct {
	response.Response
	EventType *models.EventType `json:"data,omitempty"`
}

type ListResponse struct {
	response.Response
	EventTypes []models.EventType `json:"data"`
}

type GetResponse struct {
	response.Response
	EventType *models.EventType `json:"data,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Storage
type Storage interface {
	CreateEventType(name string) (int, error)
	GetEventType(id int) (*models.EventType, error)
	GetAllEventTypes() ([]models.EventType, error)
}

// NewCreate adds an event type. Admin only.
func NewCreate(log *slog.Logger, storage Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.eventtype.NewCreate"

		log = log.With(slog.String("op", op))

		actor, ok := auth.ActorFromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authorization required"))
			return
		}

		if !actor.IsAdmin() {
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("only admins may add event types"))
			return
		}

		var req CreateRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		id, err := storage.CreateEventType(req.Name)
		if err != nil {
			log.Error("failed to create event type", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create event type"))
			return
		}

		log.Info("event type created", slog.Int("event_type_id", id))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, CreateResponse{
			Response:  response.OK(),
			EventType: &models.EventType{ID: id, Name: req.Name},
		})
	}
}

// NewGet returns one event type by id.
func NewGet(log *slog.Logger, storage Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.eventtype.NewGet"

		log = log.With(slog.String("op", op))

		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event type id format"))
			return
		}

		eventType, err := storage.GetEventType(id)
		if err != nil {
			if errors.Is(err, dbstore.ErrEventTypeNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event type not found"))
				return
			}

			log.Error("failed to get event type", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get event type"))
			return
		}

		render.JSON(w, r, GetResponse{
			Response:  response.OK(),
			EventType: eventType,
		})
	}
}

// NewList returns all event types.
func NewList(log *slog.Logger, storage Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.eventtype.NewList"

		log = log.With(slog.String("op", op))

		types, err := storage.GetAllEventTypes()
		if err != nil {
			log.Error("failed to list event types", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list event types"))
			return
		}

		render.JSON(w, r, ListResponse{
			Response:   response.OK(),
			EventTypes: types,
		})
	}
}
