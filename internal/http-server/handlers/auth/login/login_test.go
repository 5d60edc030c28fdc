package login_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventhub/internal/http-server/handlers/auth/login"
	"eventhub/internal/http-server/handlers/auth/login/mocks"
	"eventhub/internal/lib/logger/handlers/slogdiscard"
	"eventhub/internal/models"
	"eventhub/internal/service/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.UserAuthenticator)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			requestBody: `{"email": "alice@example.com", "password": "secret123"}`,
			mockSetup: func(m *mocks.UserAuthenticator) {
				m.On("Login", "alice@example.com", "secret123").Return("some.jwt.token", &models.User{
					ID:    1,
					Name:  "Alice",
					Email: "alice@example.com",
					Roles: []models.Role{models.RoleGuest},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"token":"some.jwt.token"`)
				assert.NotContains(t, body, "password")
			},
		},
		{
			name:           "Missing password",
			requestBody:    `{"email": "alice@example.com"}`,
			mockSetup:      func(m *mocks.UserAuthenticator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Password")
			},
		},
		{
			name:        "Wrong credentials",
			requestBody: `{"email": "alice@example.com", "password": "wrong"}`,
			mockSetup: func(m *mocks.UserAuthenticator) {
				m.On("Login", "alice@example.com", "wrong").Return("", nil, auth.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"invalid email or password"}`,
		},
		{
			name:        "Internal error",
			requestBody: `{"email": "alice@example.com", "password": "secret123"}`,
			mockSetup: func(m *mocks.UserAuthenticator) {
				m.On("Login", "alice@example.com", "secret123").Return("", nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to log in"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockAuthenticator := mocks.NewUserAuthenticator(t)
			tc.mockSetup(mockAuthenticator)

			handler := login.New(logger, mockAuthenticator)

			req, err := http.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
