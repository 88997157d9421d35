package domain

import "strings"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User models an authenticated actor in the system. Roles is a
// space-separated list of role names, e.g. "admin user".
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
	Enabled  bool   `json:"enabled"`
	Roles    string `json:"roles"`
}

// RoleList splits the Roles field into individual role names.
func (u *User) RoleList() []string {
	return strings.Fields(u.Roles)
}

// HasRole reports whether the user carries the given role.
func (u *User) HasRole(role string) bool {
	for _, r := range u.RoleList() {
		if r == role {
			return true
		}
	}
	return false
}

// AuthContext carries the caller's identity for one request. It is always
// passed explicitly to service methods, never read from ambient state.
type AuthContext struct {
	UserID int
	Roles  []string
}

// HasRole reports whether the caller carries the given role.
func (a AuthContext) HasRole(role string) bool {
	for _, r := range a.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// CanAccessUser decides whether the caller may act on the user identified by
// targetID: admins always may, regular users only on themselves.
func CanAccessUser(auth AuthContext, targetID int) bool {
	if auth.HasRole(RoleAdmin) {
		return true
	}
	return auth.HasRole(RoleUser) && auth.UserID == targetID
}
