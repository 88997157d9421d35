package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/masul-kr/artifact-keeper/internal/core/domain"
	"github.com/masul-kr/artifact-keeper/internal/core/ports"
)

// AuthService implements login with token whitelisting.
type AuthService struct {
	users     ports.UserRepository
	cache     ports.TokenCache
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, cache ports.TokenCache, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 2 * time.Hour
	}
	return &AuthService{users: users, cache: cache, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

// Login verifies the credentials and issues a signed token. The token is
// written to the whitelist cache with the same TTL, replacing any previous
// session for the user.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if domain.IsNotFound(err) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !user.Enabled {
		return "", nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	if err := s.cache.Set(ctx, user.ID, token, s.tokenTTL); err != nil {
		return "", nil, errors.Join(errors.New("whitelist token"), err)
	}

	s.logger.Info().Int("user_id", user.ID).Str("username", user.Username).Msg("user logged in")
	return token, user, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss":         "self",
		"sub":         user.Username,
		"userId":      user.ID,
		"authorities": user.Roles,
		"iat":         now.Unix(),
		"exp":         now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
