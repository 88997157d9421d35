package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/masul-kr/artifact-keeper/internal/core/domain"
)

func newTestAuthService() (*AuthService, *stubUserRepo, *stubTokenCache) {
	repo := newStubUserRepo()
	cache := newStubTokenCache()
	return NewAuthService(repo, cache, "secret", 2*time.Hour, testLogger()), repo, cache
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, repo, cache := newTestAuthService()
	user := newUserFixture(t, repo, "carol", "s3cret", "admin user")

	token, loggedIn, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if loggedIn == nil || loggedIn.ID != user.ID {
		t.Fatalf("unexpected user: %+v", loggedIn)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["authorities"] != "admin user" {
		t.Fatalf("unexpected authorities claim: %v", claims["authorities"])
	}
	if int(claims["userId"].(float64)) != user.ID {
		t.Fatalf("unexpected userId claim: %v", claims["userId"])
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		t.Fatalf("expiration claim: %v", err)
	}
	ttl := time.Until(exp.Time)
	if ttl < time.Hour+55*time.Minute || ttl > 2*time.Hour {
		t.Fatalf("expected roughly 2h expiry, got %v", ttl)
	}

	if ok, _ := cache.IsWhitelisted(context.Background(), user.ID, token); !ok {
		t.Fatalf("issued token must be whitelisted")
	}
}

func TestAuthService_Login_ReplacesPreviousToken(t *testing.T) {
	svc, repo, cache := newTestAuthService()
	user := newUserFixture(t, repo, "carol", "s3cret", "user")

	first, _, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("first login: %v", err)
	}
	second, _, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("second login: %v", err)
	}

	if ok, _ := cache.IsWhitelisted(context.Background(), user.ID, second); !ok {
		t.Fatalf("latest token must be whitelisted")
	}
	if first != second {
		if ok, _ := cache.IsWhitelisted(context.Background(), user.ID, first); ok {
			t.Fatalf("previous token must be superseded")
		}
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, repo, _ := newTestAuthService()
	newUserFixture(t, repo, "dave", "goodpass", "user")

	if _, _, err := svc.Login(context.Background(), "dave", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUsername(t *testing.T) {
	svc, _, _ := newTestAuthService()

	if _, _, err := svc.Login(context.Background(), "ghost", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_DisabledUser(t *testing.T) {
	svc, repo, _ := newTestAuthService()
	user := newUserFixture(t, repo, "frank", "s3cret", "user")
	user.Enabled = false
	if err := repo.Update(context.Background(), user); err != nil {
		t.Fatalf("disable user: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "frank", "s3cret"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for disabled user, got %v", err)
	}
}
