package ports

import (
	"context"

	"github.com/masul-kr/artifact-keeper/internal/core/domain"
)

// AuthService authenticates users and issues whitelisted JWTs.
type AuthService interface {
	// Login verifies the credentials, issues a signed token and records it in
	// the token cache under the user's whitelist key.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
