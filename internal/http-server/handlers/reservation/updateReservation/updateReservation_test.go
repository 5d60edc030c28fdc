package updateReservation_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventhub/internal/http-server/handlers/reservation/updateReservation"
	"eventhub/internal/http-server/handlers/reservation/updateReservation/mocks"
	"eventhub/internal/http-server/middleware/auth"
	"eventhub/internal/lib/logger/handlers/slogdiscard"
	"eventhub/internal/models"
	"eventhub/internal/service/reservation"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateReservationHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		url            string
		requestBody    string
		mockSetup      func(m *mocks.ReservationUpdater)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			url:         "/reservations/101",
			requestBody: `{"guests_count": 7}`,
			mockSetup: func(m *mocks.ReservationUpdater) {
				m.On("Update", 101, 7, 42).Return(&models.Reservation{
					ID: 101, EventID: 1, UserID: 42, GuestsCount: 7,
				}, true, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"message":"reservation updated"`)
				assert.Contains(t, body, `"guests_count":7`)
			},
		},
		{
			name:        "No-op update",
			url:         "/reservations/101",
			requestBody: `{"guests_count": 7}`,
			mockSetup: func(m *mocks.ReservationUpdater) {
				m.On("Update", 101, 7, 42).Return(&models.Reservation{
					ID: 101, EventID: 1, UserID: 42, GuestsCount: 7,
				}, false, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, "no change")
			},
		},
		{
			name:           "Invalid reservation id",
			url:            "/reservations/abc",
			requestBody:    `{"guests_count": 7}`,
			mockSetup:      func(m *mocks.ReservationUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid reservation id format"}`,
		},
		{
			name:           "Guests count above bounds",
			url:            "/reservations/101",
			requestBody:    `{"guests_count": 11}`,
			mockSetup:      func(m *mocks.ReservationUpdater) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "GuestsCount")
			},
		},
		{
			name:        "Reservation not found",
			url:         "/reservations/999",
			requestBody: `{"guests_count": 7}`,
			mockSetup: func(m *mocks.ReservationUpdater) {
				m.On("Update", 999, 7, 42).Return(nil, false, reservation.ErrReservationNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"reservation not found"}`,
		},
		{
			name:        "Forbidden for other user",
			url:         "/reservations/101",
			requestBody: `{"guests_count": 7}`,
			mockSetup: func(m *mocks.ReservationUpdater) {
				m.On("Update", 101, 7, 42).Return(nil, false, reservation.ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"you are not allowed to update this reservation"}`,
		},
		{
			name:        "Event already started",
			url:         "/reservations/101",
			requestBody: `{"guests_count": 7}`,
			mockSetup: func(m *mocks.ReservationUpdater) {
				m.On("Update", 101, 7, 42).Return(nil, false, reservation.ErrEventStarted)
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"status":"Error","error":"event has already started"}`,
		},
		{
			name:        "Not enough spots",
			url:         "/reservations/101",
			requestBody: `{"guests_count": 9}`,
			mockSetup: func(m *mocks.ReservationUpdater) {
				m.On("Update", 101, 9, 42).Return(nil, false, reservation.ErrEventFull)
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"status":"Error","error":"not enough available spots"}`,
		},
		{
			name:        "Internal error",
			url:         "/reservations/101",
			requestBody: `{"guests_count": 7}`,
			mockSetup: func(m *mocks.ReservationUpdater) {
				m.On("Update", 101, 7, 42).Return(nil, false, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to update reservation"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockUpdater := mocks.NewReservationUpdater(t)
			tc.mockSetup(mockUpdater)

			router := chi.NewRouter()
			router.Put("/reservations/{id}", updateReservation.New(logger, mockUpdater))

			req, err := http.NewRequest(http.MethodPut, tc.url, bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			req = req.WithContext(auth.WithActor(req.Context(), auth.Actor{
				ID:    42,
				Roles: []models.Role{models.RoleGuest},
			}))

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}

func TestUpdateReservationWithoutActor(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()
	router.Put("/reservations/{id}", updateReservation.New(
		slogdiscard.NewDiscardLogger(),
		mocks.NewReservationUpdater(t),
	))

	req := httptest.NewRequest(http.MethodPut, "/reservations/101", bytes.NewBufferString(`{"guests_count":3}`))
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
