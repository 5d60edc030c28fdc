// Package auth implements registration, login and token issuance.
package auth

import (
	"errors"
	"fmt"
	"time"

	"eventhub/internal/lib/jwt"
	"eventhub/internal/models"
	"eventhub/internal/storage"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Storage
type Storage interface {
	CreateUser(name, email, passwordHash string, roles []models.Role) (int, error)
	GetUserByEmail(email string) (*models.User, error)
}

type Service struct {
	storage  Storage
	secret   string
	tokenTTL time.Duration
}

func New(storage Storage, secret string, tokenTTL time.Duration) *Service {
	return &Service{storage: storage, secret: secret, tokenTTL: tokenTTL}
}

// Register creates a user with a bcrypt-hashed password. New users get the
// guest role, or organizer when they sign up as one.
func (s *Service) Register(name, email, password string, organizer bool) (*models.User, error) {
	const op = "service.auth.Register"

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	role := models.RoleGuest
	if organizer {
		role = models.RoleOrganizer
	}

	id, err := s.storage.CreateUser(name, email, string(hash), []models.Role{role})
	if err != nil {
		if errors.Is(err, storage.ErrUserExists) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.User{
		ID:    id,
		Name:  name,
		Email: email,
		Roles: []models.Role{role},
	}, nil
}

// Login verifies the credentials and returns a signed token for the user.
func (s *Service) Login(email, password string) (string, *models.User, error) {
	const op = "service.auth.Login"

	user, err := s.storage.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := jwt.NewToken(user, s.secret, s.tokenTTL)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}

	return token, user, nil
}
