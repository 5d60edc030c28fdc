package models

import "time"

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleOrganizer Role = "organizer"
	RoleGuest     Role = "guest"
)

type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Roles        []Role    `json:"roles"`
	CreatedAt    time.Time `json:"created_at"`
}

func (u *User) HasRole(role Role) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

func (u *User) IsAdmin() bool {
	return u.HasRole(RoleAdmin)
}

// CanManageEvent reports whether the user may update, delete or set a cover
// image for the event: admins always, organizers only for events they own.
func (u *User) CanManageEvent(event *Event) bool {
	if u.IsAdmin() {
		return true
	}
	return u.HasRole(RoleOrganizer) && u.ID == event.UserID
}

// CanManageReservation reports whether the user may resize or cancel the
// reservation: its owner, or an admin.
func (u *User) CanManageReservation(reservation *Reservation) bool {
	return u.ID == reservation.UserID || u.IsAdmin()
}

// CanViewEventReservations reports whether the user may list the event's
// reservations: the owning organizer, or an admin.
func (u *User) CanViewEventReservations(event *Event) bool {
	return u.ID == event.UserID || u.IsAdmin()
}
