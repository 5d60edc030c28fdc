package listEventReservations_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"eventhub/internal/http-server/handlers/reservation/listEventReservations"
	"eventhub/internal/http-server/handlers/reservation/listEventReservations/mocks"
	"eventhub/internal/http-server/middleware/auth"
	"eventhub/internal/lib/logger/handlers/slogdiscard"
	"eventhub/internal/models"
	"eventhub/internal/service/reservation"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListEventReservationsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		url            string
		mockSetup      func(m *mocks.EventReservationLister)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Success",
			url:  "/events/1/reservations",
			mockSetup: func(m *mocks.EventReservationLister) {
				m.On("ListForEvent", 1, 42).Return([]models.Reservation{
					{ID: 101, EventID: 1, UserID: 7, GuestsCount: 3},
					{ID: 100, EventID: 1, UserID: 8, GuestsCount: 2},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"id":101`)
				assert.Contains(t, body, `"id":100`)
			},
		},
		{
			name: "Empty list",
			url:  "/events/1/reservations",
			mockSetup: func(m *mocks.EventReservationLister) {
				m.On("ListForEvent", 1, 42).Return([]models.Reservation{}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"data":[]`)
			},
		},
		{
			name:           "Invalid event id",
			url:            "/events/abc/reservations",
			mockSetup:      func(m *mocks.EventReservationLister) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid event id format"}`,
		},
		{
			name: "Event not found",
			url:  "/events/99/reservations",
			mockSetup: func(m *mocks.EventReservationLister) {
				m.On("ListForEvent", 99, 42).Return(nil, reservation.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event not found"}`,
		},
		{
			name: "Forbidden for non-owner",
			url:  "/events/1/reservations",
			mockSetup: func(m *mocks.EventReservationLister) {
				m.On("ListForEvent", 1, 42).Return(nil, reservation.ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"you are not allowed to view reservations for this event"}`,
		},
		{
			name: "Internal error",
			url:  "/events/1/reservations",
			mockSetup: func(m *mocks.EventReservationLister) {
				m.On("ListForEvent", 1, 42).Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to list event reservations"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockLister := mocks.NewEventReservationLister(t)
			tc.mockSetup(mockLister)

			router := chi.NewRouter()
			router.Get("/events/{id}/reservations", listEventReservations.New(logger, mockLister))

			req, err := http.NewRequest(http.MethodGet, tc.url, nil)
			require.NoError(t, err)

			req = req.WithContext(auth.WithActor(req.Context(), auth.Actor{
				ID:    42,
				Roles: []models.Role{models.RoleOrganizer},
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
