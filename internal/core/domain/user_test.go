package domain

import "testing"

func TestUser_RoleList(t *testing.T) {
	u := &User{Roles: "admin user"}
	roles := u.RoleList()
	if len(roles) != 2 || roles[0] != "admin" || roles[1] != "user" {
		t.Fatalf("unexpected roles: %v", roles)
	}
	if !u.HasRole(RoleAdmin) || !u.HasRole(RoleUser) {
		t.Fatalf("expected both roles present")
	}
	if u.HasRole("wizard") {
		t.Fatalf("unexpected role match")
	}
}

func TestCanAccessUser(t *testing.T) {
	tests := []struct {
		name     string
		auth     AuthContext
		targetID int
		want     bool
	}{
		{"admin may access any user", AuthContext{UserID: 1, Roles: []string{"admin", "user"}}, 42, true},
		{"user may access self", AuthContext{UserID: 2, Roles: []string{"user"}}, 2, true},
		{"user may not access others", AuthContext{UserID: 2, Roles: []string{"user"}}, 3, false},
		{"no roles means no access", AuthContext{UserID: 2}, 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanAccessUser(tt.auth, tt.targetID); got != tt.want {
				t.Fatalf("CanAccessUser() = %v, want %v", got, tt.want)
			}
		})
	}
}
