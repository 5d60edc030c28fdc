package getMyReservations

import (
	"log/slog"
	"net/http"

	"eventhub/internal/http-server/middleware/auth"
	"eventhub/internal/lib/api/response"
	"eventhub/internal/lib/logger/sl"
	"eventhub/internal/models"

	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	Reservations []models.Reservation `json:"data"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserReservationLister
type UserReservationLister interface {
	ListForUser(userID int) ([]models.Reservation, error)
}

func New(log *slog.Logger, reservations UserReservationLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.reservation.getMyReservations.New"

		log = log.With(slog.String("op", op))

		actor, ok := auth.ActorFromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authorization required"))
			return
		}

		list, err := reservations.ListForUser(actor.ID)
		if err != nil {
			log.Error("failed to list reservations", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list reservations"))
			return
		}

		log.Info("reservations listed",
			slog.Int("user_id", actor.ID),
			slog.Int("count", len(list)),
		)

		render.JSON(w, r, Response{
			Response:     response.OK(),
			Reservations: list,
		})
	}
}
