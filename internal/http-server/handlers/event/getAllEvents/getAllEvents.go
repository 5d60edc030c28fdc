package getAllEvents

import (
	"log/slog"
	"net/http"
	"strconv"

	"eventhub/internal/lib/api/response"
	"eventhub/internal/lib/logger/sl"
	"eventhub/internal/models"
	"eventhub/internal/service/event"

	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	Events []event.Info `json:"data"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventLister
type EventLister interface {
	List(status models.EventStatus, eventTypeID, locationID int) ([]event.Info, error)
}

func New(log *slog.Logger, events EventLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getAllEvents.New"

		log = log.With(slog.String("op", op))

		status := models.EventStatus(r.URL.Query().Get("status"))
		switch status {
		case "", models.StatusUpcoming, models.StatusOngoing, models.StatusPast:
		default:
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("status must be one of: upcoming, ongoing, past"))
			return
		}

		eventTypeID, err := queryInt(r, "event_type_id")
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event_type_id format"))
			return
		}

		locationID, err := queryInt(r, "location_id")
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid location_id format"))
			return
		}

		list, err := events.List(status, eventTypeID, locationID)
		if err != nil {
			log.Error("failed to list events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list events"))
			return
		}

		log.Info("events listed", slog.Int("count", len(list)))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Events:   list,
		})
	}
}

func queryInt(r *http.Request, key string) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
