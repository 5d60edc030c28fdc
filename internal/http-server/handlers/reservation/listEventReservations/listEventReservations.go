package listEventReservations

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
)

type Response struct {
	response.Response
	Reservations []models.Reservation `json:"data"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventReservationLister
type EventReservationLister interface {
	ListForEvent(eventID, actorID int) ([]models.Reservation, error)
}

func New(log *slog.Logger, reservations EventReservationLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.reservation.listEventReservations.New"

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

		list, err := reservations.ListForEvent(eventID, actor.ID)
		if err != nil {
			log.Error("failed to list event reservations", sl.Err(err))

			switch {
			case errors.Is(err, reservation.ErrEventNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			case errors.Is(err, reservation.ErrForbidden):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("you are not allowed to view reservations for this event"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to list event reservations"))
			}
			return
		}

		log.Info("event reservations listed",
			slog.Int("event_id", eventID),
			slog.Int("count", len(list)),
		)

		render.JSON(w, r, Response{
			Response:     response.OK(),
			Reservations: list,
		})
	}
}
