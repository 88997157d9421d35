package ports

import (
	"context"

	"github.com/masul-kr/artifact-keeper/internal/core/domain"
)

// CreateUserInput carries all data needed to create a new user.
type CreateUserInput struct {
	Username string
	Password string
	Enabled  bool
	Roles    string
}

// UpdateUserInput carries the proposed field overwrites for a user update.
// Which fields actually apply depends on the caller's roles.
type UpdateUserInput struct {
	Username string
	Enabled  bool
	Roles    string
}

// ChangePasswordInput carries the payload of a password rotation.
type ChangePasswordInput struct {
	OldPassword        string
	NewPassword        string
	ConfirmNewPassword string
}

// ListUsersResult is one page of users.
type ListUsersResult struct {
	Items      []*domain.User
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// UserService implements user CRUD, the role-gated update workflow and the
// password-change workflow.
type UserService interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	List(ctx context.Context, filter ListUsersFilter) (*ListUsersResult, error)
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	// Update applies the role-gated field overwrites: non-admin callers may
	// only change the username; admins may change username, enabled and roles,
	// and doing so invalidates the target's cached token.
	Update(ctx context.Context, auth domain.AuthContext, id int, in UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id int) error
	// ChangePassword rotates the user's password after verifying the old one,
	// the confirmation and the password policy, then invalidates the cached
	// token.
	ChangePassword(ctx context.Context, id int, in ChangePasswordInput) error
}
