package http

import (
	"errors"
	"net/http"

	"cafe/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor translates a domain error into an HTTP status code.
// Unrecognized errors map to 500; the message is never exposed for those.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrForbidden),
		errors.Is(err, errs.ErrOwnershipMismatch):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrAlreadyCompleted),
		errors.Is(err, errs.ErrInsufficientInventory),
		errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the JSON error payload for a domain error.
func respondError(ctx echo.Context, err error) error {
	code := statusFor(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "Internal server error"
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: message,
	})
}
