package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/masul-kr/artifact-keeper/internal/api/metrics"
	"github.com/masul-kr/artifact-keeper/internal/core/domain"
	"github.com/masul-kr/artifact-keeper/internal/core/ports"
)

// UserHandler handles HTTP requests for user operations.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// pathIntParam parses a numeric path parameter, rejecting garbage with 400.
func pathIntParam(c echo.Context, name string) (int, error) {
	value, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return value, nil
}

// pageParams reads page/limit query parameters, leaving normalisation of
// missing or out-of-range values to the service layer.
func pageParams(c echo.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	return page, limit
}

// FindByID handles GET /api/v1/users/:id.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  Result
// @Failure      404  {object}  Result
// @Router       /api/v1/users/{id} [get]
func (h *UserHandler) FindByID(c echo.Context) error {
	id, err := pathIntParam(c, "id")
	if err != nil {
		return err
	}

	user, err := h.service.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return OK(c, "Find Success", toUserResponse(user))
}

// List handles GET /api/v1/users.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number (1-based)"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {object}  Result
// @Router       /api/v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	page, limit := pageParams(c)

	result, err := h.service.List(c.Request().Context(), ports.ListUsersFilter{Page: page, Limit: limit})
	if err != nil {
		return err
	}

	items := make([]userResponse, 0, len(result.Items))
	for _, u := range result.Items {
		items = append(items, toUserResponse(u))
	}
	return OK(c, "Find all Success", listUsersResponse{
		Items:      items,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	})
}

// Create handles POST /api/v1/users.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "User details"
// @Success      200   {object}  Result
// @Failure      400   {object}  Result
// @Failure      409   {object}  Result
// @Router       /api/v1/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Create(c.Request().Context(), ports.CreateUserInput{
		Username: req.Username,
		Password: req.Password,
		Enabled:  req.Enabled,
		Roles:    req.Roles,
	})
	if err != nil {
		return err
	}
	return OK(c, "Add Success", toUserResponse(user))
}

// Update handles PUT /api/v1/users/:id. Non-admin callers may only change
// the username; admins may also change enabled and roles, which invalidates
// the target's cached token.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "User id"
// @Param        body  body      updateUserRequest  true  "Proposed field values"
// @Success      200   {object}  Result
// @Failure      404   {object}  Result
// @Router       /api/v1/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathIntParam(c, "id")
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	auth, err := authFromContext(c)
	if err != nil {
		return err
	}

	user, err := h.service.Update(c.Request().Context(), auth, id, ports.UpdateUserInput{
		Username: req.Username,
		Enabled:  req.Enabled,
		Roles:    req.Roles,
	})
	if err != nil {
		return err
	}
	if auth.HasRole(domain.RoleAdmin) {
		metrics.TokenInvalidationsTotal.WithLabelValues("admin_update").Inc()
	}
	return OK(c, "Update Success", toUserResponse(user))
}

// Delete handles DELETE /api/v1/users/:id.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  Result
// @Failure      404  {object}  Result
// @Router       /api/v1/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathIntParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return OK(c, "Delete Success", nil)
}

// ChangePassword handles PATCH /api/v1/users/:id/password.
//
// @Summary      Change a user's password
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                    true  "User id"
// @Param        body  body      changePasswordRequest  true  "Old and new passwords"
// @Success      200   {object}  Result
// @Failure      400   {object}  Result
// @Failure      401   {object}  Result
// @Failure      404   {object}  Result
// @Router       /api/v1/users/{id}/password [patch]
func (h *UserHandler) ChangePassword(c echo.Context) error {
	id, err := pathIntParam(c, "id")
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.ChangePassword(c.Request().Context(), id, ports.ChangePasswordInput{
		OldPassword:        req.OldPassword,
		NewPassword:        req.NewPassword,
		ConfirmNewPassword: req.ConfirmNewPassword,
	}); err != nil {
		metrics.PasswordChangesTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.PasswordChangesTotal.WithLabelValues("success").Inc()
	metrics.TokenInvalidationsTotal.WithLabelValues("password_change").Inc()
	return OK(c, "Change Password Success", nil)
}
