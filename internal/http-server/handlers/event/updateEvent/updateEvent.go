package updateEvent

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"eventhub/internal/http-server/middleware/auth"
	"eventhub/internal/lib/api/response"
	"eventhub/internal/lib/logger/sl"
	"eventhub/internal/service/event"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	Title       string    `json:"title" validate:"required,max=255"`
	Description string    `json:"description"`
	EventTypeID int       `json:"event_type_id" validate:"required"`
	LocationID  int       `json:"location_id" validate:"required"`
	StartsAt    time.Time `json:"starts_at" validate:"required"`
	EndsAt      time.Time `json:"ends_at" validate:"required"`
	ImageURL    string    `json:"image_url,omitempty" validate:"omitempty,url"`
}

type Response struct {
	response.Response
	Event *event.Info `json:"data,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventUpdater
type EventUpdater interface {
	Update(id int, in event.Input, actorID int) (*event.Info, error)
}

func New(log *slog.Logger, events EventUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.updateEvent.New"

		log = log.With(slog.String("op", op))

		actor, ok := auth.ActorFromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authorization required"))
			return
		}

		eventID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		var req Request

		err = render.DecodeJSON(r.Body, &req)
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

		info, err := events.Update(eventID, event.Input{
			Title:       req.Title,
			Description: req.Description,
			EventTypeID: req.EventTypeID,
			LocationID:  req.LocationID,
			StartsAt:    req.StartsAt,
			EndsAt:      req.EndsAt,
			ImageURL:    req.ImageURL,
		}, actor.ID)
		if err != nil {
			log.Error("failed to update event", sl.Err(err))

			switch {
			case errors.Is(err, event.ErrEventNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			case errors.Is(err, event.ErrForbidden):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("you are not allowed to manage this event"))
			case errors.Is(err, event.ErrInvalidTimeRange):
				render.Status(r, http.StatusUnprocessableEntity)
				render.JSON(w, r, response.Error("event must end after it starts"))
			case errors.Is(err, event.ErrLocationNotFound):
				render.Status(r, http.StatusUnprocessableEntity)
				render.JSON(w, r, response.Error("location not found"))
			case errors.Is(err, event.ErrEventTypeNotFound):
				render.Status(r, http.StatusUnprocessableEntity)
				render.JSON(w, r, response.Error("event type not found"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to update event"))
			}
			return
		}

		log.Info("event updated", slog.Int("event_id", eventID))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Event:    info,
		})
	}
}
