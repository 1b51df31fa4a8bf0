package http

import (
	"cafe/internal/core/domain/model/identity"
	"cafe/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Identity headers set by the upstream authentication gateway.
// Values in them are trusted as-is.
const (
	headerUsername = "X-Username"
	headerRole     = "X-Role"
)

// caller is the authenticated identity of the current request.
type caller struct {
	username string
	role     identity.Role
}

// callerFromRequest reads the trusted identity headers and normalizes the
// role to the closed enum. Missing or unknown values fail the request before
// it reaches the core.
func callerFromRequest(ctx echo.Context) (caller, error) {
	username := ctx.Request().Header.Get(headerUsername)
	if username == "" {
		return caller{}, errs.NewValueIsRequiredError(headerUsername + " header")
	}

	role, err := identity.ParseRole(ctx.Request().Header.Get(headerRole))
	if err != nil {
		return caller{}, err
	}

	return caller{username: username, role: role}, nil
}
