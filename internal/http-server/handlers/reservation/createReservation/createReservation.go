package createReservation

import (
	"errors"
	"log/slog"
	"net/http"

	"eventhub/internal/http-server/middleware/auth"
	"eventhub/internal/lib/api/response"
	"eventhub/internal/lib/logger/sl"
	"eventhub/internal/service/reservation"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	EventID     int `json:"event_id" validate:"required"`
	GuestsCount int `json:"guests_count" validate:"required,min=1,max=10"`
}

type Response struct {
	response.Response
	Reservation *reservation.Details `json:"data,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ReservationCreator
type ReservationCreator interface {
	Create(eventID, userID, guestsCount int) (*reservation.Details, error)
}

func New(log *slog.Logger, reservations ReservationCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.reservation.createReservation.New"

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

		details, err := reservations.Create(req.EventID, actor.ID, req.GuestsCount)
		if err != nil {
			log.Error("failed to create reservation", sl.Err(err))

			switch {
			case errors.Is(err, reservation.ErrEventNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			case errors.Is(err, reservation.ErrAlreadyReserved):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("you already have a reservation for this event"))
			case errors.Is(err, reservation.ErrEventEnded):
				render.Status(r, http.StatusUnprocessableEntity)
				render.JSON(w, r, response.Error("event has already ended"))
			case errors.Is(err, reservation.ErrEventFull):
				render.Status(r, http.StatusUnprocessableEntity)
				render.JSON(w, r, response.Error("not enough available spots"))
			case errors.Is(err, reservation.ErrInvalidGuestsCount):
				render.Status(r, http.StatusUnprocessableEntity)
				render.JSON(w, r, response.Error("guests count must be between 1 and 10"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to create reservation"))
			}
			return
		}

		log.Info("reservation created",
			slog.Int("reservation_id", details.Reservation.ID),
			slog.Int("event_id", req.EventID),
			slog.Int("user_id", actor.ID),
		)

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{
			Response:    response.OK(),
			Reservation: details,
		})
	}
}
