package getEventInfo_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventhub/internal/http-server/handlers/event/getEventInfo"
	"eventhub/internal/http-server/handlers/event/getEventInfo/mocks"
	"eventhub/internal/lib/logger/handlers/slogdiscard"
	"eventhub/internal/models"
	"eventhub/internal/service/event"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEventInfoHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		url            string
		mockSetup      func(m *mocks.EventGetter)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Success",
			url:  "/events/10",
			mockSetup: func(m *mocks.EventGetter) {
				m.On("Get", 10).Return(&event.Info{
					Event: models.Event{
						ID:       10,
						Title:    "Go Meetup",
						StartsAt: time.Date(2025, 7, 1, 18, 0, 0, 0, time.UTC),
						EndsAt:   time.Date(2025, 7, 1, 21, 0, 0, 0, time.UTC),
					},
					Status:         models.StatusUpcoming,
					AvailableSpots: 37,
					Images: []models.Image{
						{ID: 1, EventID: 10, URL: "https://img.example.com/1.jpg", IsCover: true},
					},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"title":"Go Meetup"`)
				assert.Contains(t, body, `"available_spots":37`)
				assert.Contains(t, body, `"is_cover":true`)
			},
		},
		{
			name:           "Invalid event id",
			url:            "/events/abc",
			mockSetup:      func(m *mocks.EventGetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid event id format"}`,
		},
		{
			name: "Event not found",
			url:  "/events/99",
			mockSetup: func(m *mocks.EventGetter) {
				m.On("Get", 99).Return(nil, event.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event not found"}`,
		},
		{
			name: "Internal error",
			url:  "/events/10",
			mockSetup: func(m *mocks.EventGetter) {
				m.On("Get", 10).Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get event"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewEventGetter(t)
			tc.mockSetup(mockGetter)

			router := chi.NewRouter()
			router.Get("/events/{id}", getEventInfo.New(logger, mockGetter))

			req, err := http.NewRequest(http.MethodGet, tc.url, nil)
			require.NoError(t, err)

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
