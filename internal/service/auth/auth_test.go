package auth_test

import (
	"testing"
	"time"

	"eventhub/internal/lib/jwt"
	"eventhub/internal/models"
	"eventhub/internal/service/auth"
	"eventhub/internal/service/auth/mocks"
	"eventhub/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const secret = "test-secret"

func TestRegister(t *testing.T) {
	t.Parallel()

	t.Run("guest by default", func(t *testing.T) {
		t.Parallel()

		st := mocks.NewStorage(t)
		st.On("CreateUser", "alice", "alice@example.com", mock.AnythingOfType("string"), []models.Role{models.RoleGuest}).
			Return(1, nil)

		svc := auth.New(st, secret, time.Hour)

		user, err := svc.Register("alice", "alice@example.com", "hunter22", false)
		require.NoError(t, err)

		assert.Equal(t, 1, user.ID)
		assert.Equal(t, []models.Role{models.RoleGuest}, user.Roles)
	})

	t.Run("organizer on request", func(t *testing.T) {
		t.Parallel()

		st := mocks.NewStorage(t)
		st.On("CreateUser", "bob", "bob@example.com", mock.AnythingOfType("string"), []models.Role{models.RoleOrganizer}).
			Return(2, nil)

		svc := auth.New(st, secret, time.Hour)

		user, err := svc.Register("bob", "bob@example.com", "hunter22", true)
		require.NoError(t, err)
		assert.Equal(t, []models.Role{models.RoleOrganizer}, user.Roles)
	})

	t.Run("duplicate email", func(t *testing.T) {
		t.Parallel()

		st := mocks.NewStorage(t)
		st.On("CreateUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(0, storage.ErrUserExists)

		svc := auth.New(st, secret, time.Hour)

		_, err := svc.Register("alice", "alice@example.com", "hunter22", false)
		assert.ErrorIs(t, err, auth.ErrUserExists)
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := &models.User{
		ID:           1,
		Name:         "alice",
		Email:        "alice@example.com",
		PasswordHash: string(hash),
		Roles:        []models.Role{models.RoleGuest},
	}

	t.Run("success returns a valid token", func(t *testing.T) {
		t.Parallel()

		st := mocks.NewStorage(t)
		st.On("GetUserByEmail", "alice@example.com").Return(stored, nil)

		svc := auth.New(st, secret, time.Hour)

		token, user, err := svc.Login("alice@example.com", "hunter22")
		require.NoError(t, err)
		assert.Equal(t, 1, user.ID)

		claims, err := jwt.ParseToken(token, secret)
		require.NoError(t, err)
		assert.Equal(t, 1, claims.UserID)
		assert.Equal(t, []models.Role{models.RoleGuest}, claims.Roles)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()

		st := mocks.NewStorage(t)
		st.On("GetUserByEmail", "alice@example.com").Return(stored, nil)

		svc := auth.New(st, secret, time.Hour)

		_, _, err := svc.Login("alice@example.com", "wrong")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		t.Parallel()

		st := mocks.NewStorage(t)
		st.On("GetUserByEmail", "nobody@example.com").Return(nil, storage.ErrUserNotFound)

		svc := auth.New(st, secret, time.Hour)

		_, _, err := svc.Login("nobody@example.com", "hunter22")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}
