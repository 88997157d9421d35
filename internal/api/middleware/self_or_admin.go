package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/masul-kr/artifact-keeper/internal/core/domain"
)

// SelfOrAdmin restricts a user-scoped route to admins and the user the path
// parameter names. Must run after Auth.
func SelfOrAdmin(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			targetID, err := strconv.Atoi(c.Param(param))
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid "+param)
			}

			userID, ok := c.Get("userId").(int)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			authorities, _ := c.Get("authorities").(string)

			auth := domain.AuthContext{
				UserID: userID,
				Roles:  strings.Fields(authorities),
			}
			if !domain.CanAccessUser(auth, targetID) {
				return echo.NewHTTPError(http.StatusForbidden, "No permission.")
			}
			return next(c)
		}
	}
}
