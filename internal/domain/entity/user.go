// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// User is an administrator account. The platform has no self-registration:
// the only user is the administrator seeded at bootstrap, and the record is
// consulted solely during login.
type User struct {
	ID           string // Generated unique identifier; the seeded admin keeps the well-known id "admin-1".
	Username     string // Unique login name.
	PasswordHash string // bcrypt hash of the password. Never serialized to clients.
}

// Summary returns the client-safe view of the account.
func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Username: u.Username}
}

// UserSummary is the shape of a user exposed over the API: id and username,
// never the password hash.
type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}
