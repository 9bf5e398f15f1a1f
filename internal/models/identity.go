package models

// Identity is the request-scoped caller identity: either an authenticated
// user or the anonymous guest. The guest is a value, never a database row.
type Identity struct {
	User *User
}

// Guest returns the anonymous identity.
func Guest() Identity {
	return Identity{}
}

// Authenticated wraps a persisted user in an Identity.
func Authenticated(u *User) Identity {
	return Identity{User: u}
}

// IsGuest reports whether the identity is anonymous.
func (i Identity) IsGuest() bool {
	return i.User == nil
}

// IsAdmin reports whether the identity is an authenticated admin.
func (i Identity) IsAdmin() bool {
	return i.User != nil && i.User.Admin
}

// UserID returns the authenticated user's id, or 0 for the guest.
func (i Identity) UserID() uint {
	if i.User == nil {
		return 0
	}
	return i.User.ID
}

// DisplayName returns the user's display name, or "Guest".
func (i Identity) DisplayName() string {
	if i.User == nil {
		return "Guest"
	}
	return i.User.Name
}
