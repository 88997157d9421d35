package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/masul-kr/artifact-keeper/internal/core/ports"
)

const invalidTokenMessage = "The access token provided is expired, revoked, malformed, or invalid for other reasons."

// Auth validates the JWT, checks it against the token whitelist and injects
// claims into context. A structurally valid token that is no longer the
// cached one for its user is rejected: revocation wins over signature.
func Auth(jwtSecret string, cache ports.TokenCache) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, invalidTokenMessage)
			}

			rawUserID, ok := claims["userId"].(float64)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, invalidTokenMessage)
			}
			userID := int(rawUserID)

			whitelisted, err := cache.IsWhitelisted(c.Request().Context(), userID, parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "token verification failed")
			}
			if !whitelisted {
				return echo.NewHTTPError(http.StatusUnauthorized, invalidTokenMessage)
			}

			username, _ := claims["sub"].(string)
			authorities, _ := claims["authorities"].(string)

			c.Set("userId", userID)
			c.Set("username", username)
			c.Set("authorities", authorities)

			return next(c)
		}
	}
}
