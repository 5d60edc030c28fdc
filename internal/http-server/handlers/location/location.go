// Package location serves the location catalog used when creating events.
package location

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"eventhub/internal/http-server/middleware/auth"
	"eventhub/internal/lib/api/response"
	"eventhub/internal/lib/logger/sl"
	"eventhub/internal/models"
	dbstore "eventhub/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type CreateRequest struct {
	Name      string  `json:"name" validate:"required,max=255"`
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

type CreateResponse struct {
	response.Response
	Location *models.Location `json:"data,omitempty"`
}

type ListResponse struct {
	response.Response
	Locations []models.Location `json:"data"`
}

type GetResponse struct {
	response.Response
	Location *models.Location `json:"data,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Storage
type Storage interface {
	CreateLocation(location *models.Location) (int, error)
	GetLocation(id int) (*models.Location, error)
	GetAllLocations() ([]models.Location, error)
}

// NewCreate adds a location to the catalog. Admin only.
func NewCreate(log *slog.Logger, storage Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.location.NewCreate"

		log = log.With(slog.String("op", op))

		actor, ok := auth.ActorFromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authorization required"))
			return
		}

		if !actor.IsAdmin() {
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("only admins may add locations"))
			return
		}

		var req CreateRequest

		err := render.DecodeJSON(r.Body, &req)
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

		location := &models.Location{
			Name:      req.Name,
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
		}

		id, err := storage.CreateLocation(location)
		if err != nil {
			log.Error("failed to create location", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create location"))
			return
		}
		location.ID = id

		log.Info("location created", slog.Int("location_id", id))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, CreateResponse{
			Response: response.OK(),
			Location: location,
		})
	}
}

// NewGet returns one location by id.
func NewGet(log *slog.Logger, storage Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.location.NewGet"

		log = log.With(slog.String("op", op))

		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid location id format"))
			return
		}

		loc, err := storage.GetLocation(id)
		if err != nil {
			if errors.Is(err, dbstore.ErrLocationNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("location not found"))
				return
			}

			log.Error("failed to get location", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get location"))
			return
		}

		render.JSON(w, r, GetResponse{
			Response: response.OK(),
			Location: loc,
		})
	}
}

// NewList returns all locations.
func NewList(log *slog.Logger, storage Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.location.NewList"

		log = log.With(slog.String("op", op))

		locations, err := storage.GetAllLocations()
		if err != nil {
			log.Error("failed to list locations", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list locations"))
			return
		}

		render.JSON(w, r, ListResponse{
			Response:  response.OK(),
			Locations: locations,
		})
	}
}
