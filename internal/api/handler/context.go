package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/masul-kr/artifact-keeper/internal/core/domain"
)

// authFromContext extracts the caller identity injected by the Auth
// middleware. The resulting AuthContext is always passed to services as an
// explicit argument, never read from ambient state inside the core.
func authFromContext(c echo.Context) (domain.AuthContext, error) {
	userID, ok := c.Get("userId").(int)
	if !ok {
		return domain.AuthContext{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	authorities, _ := c.Get("authorities").(string)
	return domain.AuthContext{
		UserID: userID,
		Roles:  strings.Fields(authorities),
	}, nil
}
