package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventhub/internal/http-server/middleware/auth"
	"eventhub/internal/lib/jwt"
	"eventhub/internal/lib/logger/handlers/slogdiscard"
	"eventhub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func TestAuthMiddleware(t *testing.T) {
	t.Parallel()

	user := &models.User{ID: 42, Email: "alice@example.com", Roles: []models.Role{models.RoleGuest}}
	token, err := jwt.NewToken(user, secret, time.Hour)
	require.NoError(t, err)

	testCases := []struct {
		name           string
		header         string
		expectedStatus int
		expectActor    bool
	}{
		{
			name:           "valid token",
			header:         "Bearer " + token,
			expectedStatus: http.StatusOK,
			expectActor:    true,
		},
		{
			name:           "missing header",
			header:         "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "not a bearer scheme",
			header:         "Basic abc",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "garbage token",
			header:         "Bearer not.a.token",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var gotActor auth.Actor
			var sawActor bool

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotActor, sawActor = auth.ActorFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			handler := auth.New(slogdiscard.NewDiscardLogger(), secret)(next)

			req := httptest.NewRequest(http.MethodGet, "/reservations", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectActor {
				require.True(t, sawActor)
				assert.Equal(t, 42, gotActor.ID)
				assert.Equal(t, []models.Role{models.RoleGuest}, gotActor.Roles)
			}
		})
	}
}

func TestExpiredToken(t *testing.T) {
	t.Parallel()

	user := &models.User{ID: 42, Email: "alice@example.com"}
	token, err := jwt.NewToken(user, secret, -time.Minute)
	require.NoError(t, err)

	handler := auth.New(slogdiscard.NewDiscardLogger(), secret)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not be reached")
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/reservations", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
