package ports

import (
	"context"
	"time"
)

// TokenCache stores the last issued token per user so that sessions can be
// force-invalidated before the token itself expires. At most one live entry
// exists per user (last-write-wins). Delete of a missing key is a no-op.
type TokenCache interface {
	Set(ctx context.Context, userID int, token string, ttl time.Duration) error
	Get(ctx context.Context, userID int) (string, error)
	Delete(ctx context.Context, userID int) error
	// IsWhitelisted reports whether the presented token is the one currently
	// cached for the user.
	IsWhitelisted(ctx context.Context, userID int, token string) (bool, error)
}
