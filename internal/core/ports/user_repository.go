package ports

import (
	"context"

	"github.com/masul-kr/artifact-keeper/internal/core/domain"
)

// ListUsersFilter carries pagination parameters for listing users.
type ListUsersFilter struct {
	Page  int // 1-based
	Limit int // capped at 100 by the service
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// Create assigns a new id to the user and persists it.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int) error
	// List returns a page of users ordered by id and the total count.
	List(ctx context.Context, filter ListUsersFilter) ([]*domain.User, int64, error)
}
