package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/masul-kr/artifact-keeper/internal/api/metrics"
	"github.com/masul-kr/artifact-keeper/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	UserInfo userResponse `json:"userInfo"`
	Token    string       `json:"token"`
}

// Login authenticates a user, whitelists the issued token and returns it.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  Result
// @Failure      400   {object}  Result
// @Failure      401   {object}  Result
// @Router       /api/v1/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	// Empty credentials fall through to the service, which rejects them as
	// invalid credentials rather than a validation error.
	token, user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return OK(c, "User Info and JSON Web Token", loginResponse{
		UserInfo: toUserResponse(user),
		Token:    token,
	})
}
