package handler

import "github.com/masul-kr/artifact-keeper/internal/core/domain"

// --- Request / Response types ---

type createUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Enabled  bool   `json:"enabled"`
	Roles    string `json:"roles"    validate:"required"`
}

type updateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Enabled  bool   `json:"enabled"`
	Roles    string `json:"roles"`
}

type changePasswordRequest struct {
	OldPassword        string `json:"oldPassword"        validate:"required"`
	NewPassword        string `json:"newPassword"        validate:"required"`
	ConfirmNewPassword string `json:"confirmNewPassword" validate:"required"`
}

// userResponse never carries the password hash.
type userResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Enabled  bool   `json:"enabled"`
	Roles    string `json:"roles"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:       u.ID,
		Username: u.Username,
		Enabled:  u.Enabled,
		Roles:    u.Roles,
	}
}

type listUsersResponse struct {
	Items      []userResponse `json:"items"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"totalPages"`
}
