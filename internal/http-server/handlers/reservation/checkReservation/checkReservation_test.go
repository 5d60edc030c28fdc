package checkReservation_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"eventhub/internal/http-server/handlers/reservation/checkReservation"
	"eventhub/internal/http-server/handlers/reservation/checkReservation/mocks"
	"eventhub/internal/http-server/middleware/auth"
	"eventhub/internal/lib/logger/handlers/slogdiscard"
	"eventhub/internal/models"
	"eventhub/internal/service/reservation"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckReservationHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		url            string
		mockSetup      func(m *mocks.ReservationChecker)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Reserved",
			url:  "/events/1/reservation-status",
			mockSetup: func(m *mocks.ReservationChecker) {
				m.On("HasUserReserved", 1, 42).Return(true, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","reserved":true}`,
		},
		{
			name: "Not reserved",
			url:  "/events/1/reservation-status",
			mockSetup: func(m *mocks.ReservationChecker) {
				m.On("HasUserReserved", 1, 42).Return(false, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","reserved":false}`,
		},
		{
			name:           "Invalid event id",
			url:            "/events/abc/reservation-status",
			mockSetup:      func(m *mocks.ReservationChecker) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid event id format"}`,
		},
		{
			name: "Event not found",
			url:  "/events/99/reservation-status",
			mockSetup: func(m *mocks.ReservationChecker) {
				m.On("HasUserReserved", 99, 42).Return(false, reservation.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event not found"}`,
		},
		{
			name: "Internal error",
			url:  "/events/1/reservation-status",
			mockSetup: func(m *mocks.ReservationChecker) {
				m.On("HasUserReserved", 1, 42).Return(false, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to check reservation"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockChecker := mocks.NewReservationChecker(t)
			tc.mockSetup(mockChecker)

			router := chi.NewRouter()
			router.Get("/events/{id}/reservation-status", checkReservation.New(logger, mockChecker))

			req, err := http.NewRequest(http.MethodGet, tc.url, nil)
			require.NoError(t, err)

			req = req.WithContext(auth.WithActor(req.Context(), auth.Actor{
				ID:    42,
				Roles: []models.Role{models.RoleGuest},
			}))

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
