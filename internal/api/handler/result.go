package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Result is the uniform response envelope returned by every endpoint.
// Code mirrors the HTTP status so clients can rely on either.
type Result struct {
	Flag    bool   `json:"flag"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// OK renders a successful envelope with HTTP 200.
func OK(c echo.Context, message string, data any) error {
	return c.JSON(http.StatusOK, Result{
		Flag:    true,
		Code:    http.StatusOK,
		Message: message,
		Data:    data,
	})
}

// Fail renders a failure envelope with the given HTTP status.
func Fail(c echo.Context, code int, message string) error {
	return c.JSON(code, Result{
		Flag:    false,
		Code:    code,
		Message: message,
	})
}
