package http

import (
	"errors"
	"net/http"

	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// envelope is the uniform response wrapper: {success, data, count} on the
// happy path, {success, error} on failures.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func respondData(c echo.Context, status int, data any) error {
	return c.JSON(status, envelope{Success: true, Data: data})
}

func respondList(c echo.Context, data any, count int) error {
	return c.JSON(http.StatusOK, envelope{Success: true, Data: data, Count: &count})
}

func respondMessage(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, envelope{Success: true, Message: message})
}

func respondError(c echo.Context, status int, message string) error {
	return c.JSON(status, envelope{Success: false, Error: message})
}

// respondDomainError maps the error taxonomy onto HTTP statuses: missing or
// unowned objects are 404, caller mistakes (bad references, illegal
// transitions, invalid values) are 400, and everything else — including an
// unreachable store — is an opaque 500.
func respondDomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return respondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrInvalidReference),
		errors.Is(err, errs.ErrIllegalTransition),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return respondError(c, http.StatusBadRequest, err.Error())
	default:
		return respondError(c, http.StatusInternalServerError, "Internal Server Error")
	}
}
