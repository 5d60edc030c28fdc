package eventtype_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventhub/internal/http-server/handlers/eventtype"
	"eventhub/internal/http-server/handlers/eventtype/mocks"
	"eventhub/internal/http-server/middleware/auth"
	"eventhub/internal/lib/logger/handlers/slogdiscard"
	"eventhub/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCreateEventType(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	t.Run("admin creates event type", func(t *testing.T) {
		t.Parallel()

		mockStorage := mocks.NewStorage(t)
		mockStorage.On("CreateEventType", "Conference").Return(3, nil)

		handler := eventtype.NewCreate(logger, mockStorage)

		req := httptest.NewRequest(http.MethodPost, "/event-types",
			bytes.NewBufferString(`{"name": "Conference"}`))
		req = req.WithContext(auth.WithActor(req.Context(), auth.Actor{
			ID:    1,
			Roles: []models.Role{models.RoleAdmin},
		}))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, rr.Body.String(), `"id":3`)
		assert.Contains(t, rr.Body.String(), `"name":"Conference"`)
	})

	t.Run("guest is rejected", func(t *testing.T) {
		t.Parallel()

		handler := eventtype.NewCreate(logger, mocks.NewStorage(t))

		req := httptest.NewRequest(http.MethodPost, "/event-types",
			bytes.NewBufferString(`{"name": "Conference"}`))
		req = req.WithContext(auth.WithActor(req.Context(), auth.Actor{
			ID:    2,
			Roles: []models.Role{models.RoleGuest},
		}))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestListEventTypes(t *testing.T) {
	t.Parallel()

	mockStorage := mocks.NewStorage(t)
	mockStorage.On("GetAllEventTypes").Return([]models.EventType{
		{ID: 1, Name: "Conference"},
		{ID: 2, Name: "Meetup"},
	}, nil)

	handler := eventtype.NewList(slogdiscard.NewDiscardLogger(), mockStorage)

	req := httptest.NewRequest(http.MethodGet, "/event-types", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"name":"Meetup"`)
}
