package updateReservation

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"eventhub/internal/http-server/middleware/auth"
	"eventhub/internal/lib/api/response"
	"eventhub/internal/lib/logger/sl"
	"eventhub/internal/models"
	"eventhub/internal/service/reservation"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	GuestsCount int `json:"guests_count" validate:"required,min=1,max=10"`
}

type Response struct {
	response.Response
	Message     string              `json:"message,omitempty"`
	Reservation *models.Reservation `json:"data,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ReservationUpdater
type ReservationUpdater interface {
	Update(reservationID, guestsCount, actorID int) (*models.Reservation, bool, error)
}

func New(log *slog.Logger, reservations ReservationUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.reservation.updateReservation.New"

		log = log.With(slog.String("op", op))

		actor, ok := auth.ActorFromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authorization required"))
			return
		}

		reservationID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			log.Error("invalid reservation id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid reservation id format"))
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

		updated, changed, err := reservations.Update(reservationID, req.GuestsCount, actor.ID)
		if err != nil {
			log.Error("failed to update reservation", sl.Err(err))

			switch {
			case errors.Is(err, reservation.ErrReservationNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("reservation not found"))
			case errors.Is(err, reservation.ErrForbidden):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("you are not allowed to update this reservation"))
			case errors.Is(err, reservation.ErrEventStarted):
				render.Status(r, http.StatusUnprocessableEntity)
				render.JSON(w, r, response.Error("event has already started"))
			case errors.Is(err, reservation.ErrEventFull):
				render.Status(r, http.StatusUnprocessableEntity)
				render.JSON(w, r, response.Error("not enough available spots"))
			case errors.Is(err, reservation.ErrInvalidGuestsCount):
				render.Status(r, http.StatusUnprocessableEntity)
				render.JSON(w, r, response.Error("guests count must be between 1 and 10"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to update reservation"))
			}
			return
		}

		message := "reservation updated"
		if !changed {
			message = "no change: guests count is already set"
		}

		log.Info("reservation update handled",
			slog.Int("reservation_id", reservationID),
			slog.Bool("changed", changed),
		)

		render.JSON(w, r, Response{
			Response:    response.OK(),
			Message:     message,
			Reservation: updated,
		})
	}
}
