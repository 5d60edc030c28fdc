package setCoverImage

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"eventhub/internal/http-server/middleware/auth"
	"eventhub/internal/lib/api/response"
	"eventhub/internal/lib/logger/sl"
	"eventhub/internal/service/event"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	ImageID int `json:"image_id" validate:"required"`
}

type Response struct {
	response.Response
	Message string `json:"message,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CoverImageSetter
type CoverImageSetter interface {
	SetCoverImage(eventID, imageID, actorID int) error
}

func New(log *slog.Logger, events CoverImageSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.setCoverImage.New"

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

		if err = events.SetCoverImage(eventID, req.ImageID, actor.ID); err != nil {
			log.Error("failed to set cover image", sl.Err(err))

			switch {
			case errors.Is(err, event.ErrEventNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			case errors.Is(err, event.ErrImageNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("image not found"))
			case errors.Is(err, event.ErrForbidden):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("you are not allowed to manage this event"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to set cover image"))
			}
			return
		}

		log.Info("cover image set",
			slog.Int("event_id", eventID),
			slog.Int("image_id", req.ImageID),
		)

		render.JSON(w, r, Response{
			Response: response.OK(),
			Message:  "cover image set",
		})
	}
}
