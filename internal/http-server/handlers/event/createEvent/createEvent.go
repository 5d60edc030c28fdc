package createEvent

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"eventhub/internal/http-server/middleware/auth"
	"eventhub/internal/lib/api/response"
	"eventhub/internal/lib/logger/sl"
	"eventhub/internal/service/event"

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	Create(in event.Input, actorID int) (*event.Info, error)
}

func New(log *slog.Logger, events EventCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log = log.With(slog.String("op", op))

		actor, ok := auth.ActorFromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authorization required"))
			return
		}

		var req Request

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		info, err := events.Create(event.Input{
			Title:       req.Title,
			Description: req.Description,
			EventTypeID: req.EventTypeID,
			LocationID:  req.LocationID,
			StartsAt:    req.StartsAt,
			EndsAt:      req.EndsAt,
			ImageURL:    req.ImageURL,
		}, actor.ID)
		if err != nil {
			log.Error("failed to create event", sl.Err(err))

			switch {
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
				render.JSON(w, r, response.Error("failed to create event"))
			}
			return
		}

		log.Info("event created",
			slog.Int("event_id", info.ID),
			slog.Int("user_id", actor.ID),
		)

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{
			Response: response.OK(),
			Event:    info,
		})
	}
}
