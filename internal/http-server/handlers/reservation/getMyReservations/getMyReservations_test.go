package getMyReservations_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"eventhub/internal/http-server/handlers/reservation/getMyReservations"
	"eventhub/internal/http-server/handlers/reservation/getMyReservations/mocks"
	"eventhub/internal/http-server/middleware/auth"
	"eventhub/internal/lib/logger/handlers/slogdiscard"
	"eventhub/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestGetMyReservationsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	t.Run("returns own reservations", func(t *testing.T) {
		t.Parallel()

		mockLister := mocks.NewUserReservationLister(t)
		mockLister.On("ListForUser", 42).Return([]models.Reservation{
			{ID: 102, EventID: 2, UserID: 42, GuestsCount: 4},
			{ID: 101, EventID: 1, UserID: 42, GuestsCount: 2},
		}, nil)

		handler := getMyReservations.New(logger, mockLister)

		req := httptest.NewRequest(http.MethodGet, "/reservations", nil)
		req = req.WithContext(auth.WithActor(req.Context(), auth.Actor{
			ID:    42,
			Roles: []models.Role{models.RoleGuest},
		}))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"id":102`)
		assert.Contains(t, rr.Body.String(), `"id":101`)
	})

	t.Run("internal error", func(t *testing.T) {
		t.Parallel()

		mockLister := mocks.NewUserReservationLister(t)
		mockLister.On("ListForUser", 42).Return(nil, assert.AnError)

		handler := getMyReservations.New(logger, mockLister)

		req := httptest.NewRequest(http.MethodGet, "/reservations", nil)
		req = req.WithContext(auth.WithActor(req.Context(), auth.Actor{ID: 42}))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})

	t.Run("without actor", func(t *testing.T) {
		t.Parallel()

		handler := getMyReservations.New(logger, mocks.NewUserReservationLister(t))

		req := httptest.NewRequest(http.MethodGet, "/reservations", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
