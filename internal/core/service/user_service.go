package service

import (
	"context"
	"unicode"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/masul-kr/artifact-keeper/internal/core/domain"
	"github.com/masul-kr/artifact-keeper/internal/core/ports"
)

const maxPageSize = 100

// UserService implements user CRUD, the role-gated update workflow and the
// password-change workflow.
type UserService struct {
	repo   ports.UserRepository
	cache  ports.TokenCache
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, cache ports.TokenCache, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, cache: cache, logger: logger}
}

func (s *UserService) FindByID(ctx context.Context, id int) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) List(ctx context.Context, filter ports.ListUsersFilter) (*ports.ListUsersResult, error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)

	users, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ports.ListUsersResult{
		Items:      users,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages(total, filter.Limit),
	}, nil
}

// Create hashes the password and persists the new user.
func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username: in.Username,
		Password: string(hash),
		Enabled:  in.Enabled,
		Roles:    in.Roles,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("user_id", created.ID).Str("username", created.Username).Msg("user created")
	return created, nil
}

// Update applies the role-gated field overwrites. Non-admin callers may only
// change the username; every other field in the payload is ignored. Admin
// callers may change username, enabled and roles, and the target's cached
// token is invalidated so the changes take effect immediately.
func (s *UserService) Update(ctx context.Context, auth domain.AuthContext, id int, in ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !auth.HasRole(domain.RoleAdmin) {
		user.Username = in.Username
	} else {
		user.Username = in.Username
		user.Enabled = in.Enabled
		user.Roles = in.Roles

		if err := s.cache.Delete(ctx, id); err != nil {
			return nil, err
		}
		s.logger.Info().Int("user_id", id).Msg("cached token invalidated after admin update")
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id int) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// ChangePassword rotates the user's password. The gates run strictly in
// order and short-circuit on the first failure: load, verify old password,
// confirmation match, policy check. Only then is the new hash persisted and
// the cached token deleted.
func (s *UserService) ChangePassword(ctx context.Context, id int, in ports.ChangePasswordInput) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.OldPassword)) != nil {
		return domain.ErrOldPasswordIncorrect
	}

	if in.NewPassword != in.ConfirmNewPassword {
		return domain.ErrPasswordMismatch
	}

	if !conformsToPasswordPolicy(in.NewPassword) {
		return domain.ErrPasswordPolicy
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hash)

	if err := s.repo.Update(ctx, user); err != nil {
		return err
	}

	// Every password change forces re-authentication on all sessions.
	if err := s.cache.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int("user_id", id).Msg("password changed")
	return nil
}

// conformsToPasswordPolicy checks the minimum complexity rule: at least eight
// characters with at least one digit, one lowercase and one uppercase letter.
func conformsToPasswordPolicy(password string) bool {
	if len(password) < 8 {
		return false
	}
	var hasDigit, hasLower, hasUpper bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		}
	}
	return hasDigit && hasLower && hasUpper
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}

func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
