package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserCanManageEvent(t *testing.T) {
	t.Parallel()

	event := Event{ID: 1, UserID: 10}

	testCases := []struct {
		name     string
		user     User
		expected bool
	}{
		{
			name:     "admin manages any event",
			user:     User{ID: 99, Roles: []Role{RoleAdmin}},
			expected: true,
		},
		{
			name:     "owning organizer",
			user:     User{ID: 10, Roles: []Role{RoleOrganizer}},
			expected: true,
		},
		{
			name:     "organizer who does not own the event",
			user:     User{ID: 11, Roles: []Role{RoleOrganizer}},
			expected: false,
		},
		{
			name:     "owner without organizer role",
			user:     User{ID: 10, Roles: []Role{RoleGuest}},
			expected: false,
		},
		{
			name:     "guest",
			user:     User{ID: 12, Roles: []Role{RoleGuest}},
			expected: false,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, tc.user.CanManageEvent(&event))
		})
	}
}

func TestUserCanManageReservation(t *testing.T) {
	t.Parallel()

	reservation := Reservation{ID: 1, EventID: 1, UserID: 10}

	owner := User{ID: 10, Roles: []Role{RoleGuest}}
	assert.True(t, owner.CanManageReservation(&reservation))

	admin := User{ID: 99, Roles: []Role{RoleAdmin}}
	assert.True(t, admin.CanManageReservation(&reservation))

	other := User{ID: 11, Roles: []Role{RoleOrganizer}}
	assert.False(t, other.CanManageReservation(&reservation))
}

func TestUserCanViewEventReservations(t *testing.T) {
	t.Parallel()

	event := Event{ID: 1, UserID: 10}

	assert.True(t, (&User{ID: 10}).CanViewEventReservations(&event))
	assert.True(t, (&User{ID: 99, Roles: []Role{RoleAdmin}}).CanViewEventReservations(&event))
	assert.False(t, (&User{ID: 11, Roles: []Role{RoleGuest}}).CanViewEventReservations(&event))
}

func TestUserHasRole(t *testing.T) {
	t.Parallel()

	user := User{Roles: []Role{RoleGuest, RoleOrganizer}}

	assert.True(t, user.HasRole(RoleGuest))
	assert.True(t, user.HasRole(RoleOrganizer))
	assert.False(t, user.HasRole(RoleAdmin))
	assert.False(t, user.IsAdmin())
}

func TestValidGuestsCount(t *testing.T) {
	t.Parallel()

	assert.False(t, ValidGuestsCount(0))
	assert.True(t, ValidGuestsCount(1))
	assert.True(t, ValidGuestsCount(10))
	assert.False(t, ValidGuestsCount(11))
	assert.False(t, ValidGuestsCount(-3))
}
