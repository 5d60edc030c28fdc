package storage

import "errors"

var (
	ErrEventNotFound       = errors.New("event not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrUserExists          = errors.New("user already exists")
	ErrLocationNotFound    = errors.New("location not found")
	ErrEventTypeNotFound   = errors.New("event type not found")
	ErrImageNotFound       = errors.New("image not found")
)
