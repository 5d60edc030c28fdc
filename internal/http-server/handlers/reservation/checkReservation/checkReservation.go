package checkReservation

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
	Reserved bool `json:"reserved"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ReservationChecker
type ReservationChecker interface {
	HasUserReserved(eventID, userID int) (bool, error)
}

func New(log *slog.Logger, reservations ReservationChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.reservation.checkReservation.New"

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

		reserved, err := reservations.HasUserReserved(eventID, actor.ID)
		if err != nil {
			log.Error("failed to check reservation", sl.Err(err))

			if errors.Is(err, reservation.ErrEventNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to check reservation"))
			return
		}

		render.JSON(w, r, Response{
			Response: response.OK(),
			Reserved: reserved,
		})
	}
}
