package cancelReservation

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"eventhub/internal/http-server/middleware/auth"
	"eventhub/internal/lib/api/response"
	"eventhub/internal/lib/logger/sl"
	"eventhub/internal/service/reservation"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	Message string `json:"message,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ReservationCanceller
type ReservationCanceller interface {
	Cancel(reservationID, actorID int) error
}

func New(log *slog.Logger, reservations ReservationCanceller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.reservation.cancelReservation.New"

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

		if err = reservations.Cancel(reservationID, actor.ID); err != nil {
			log.Error("failed to cancel reservation", sl.Err(err))

			switch {
			case errors.Is(err, reservation.ErrReservationNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("reservation not found"))
			case errors.Is(err, reservation.ErrForbidden):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("you are not allowed to cancel this reservation"))
			case errors.Is(err, reservation.ErrEventStarted):
				render.Status(r, http.StatusUnprocessableEntity)
				render.JSON(w, r, response.Error("event has already started"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to cancel reservation"))
			}
			return
		}

		log.Info("reservation cancelled",
			slog.Int("reservation_id", reservationID),
			slog.Int("user_id", actor.ID),
		)

		render.JSON(w, r, Response{
			Response: response.OK(),
			Message:  "reservation cancelled",
		})
	}
}
