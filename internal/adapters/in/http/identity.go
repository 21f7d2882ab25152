package http

import (
	"strconv"

	"shop/internal/core/domain/model/identity"
	"shop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Identity headers set by the authentication front. The service trusts them;
// authenticating the caller is outside its boundary.
const (
	HeaderUserID   = "X-User-Id"
	HeaderUserRole = "X-User-Role"
)

// actorFromRequest builds the caller's identity from the request headers.
// Returns an UnauthorizedError when either header is missing or malformed.
func actorFromRequest(ctx echo.Context) (identity.Actor, error) {
	rawID := ctx.Request().Header.Get(HeaderUserID)
	if rawID == "" {
		return identity.Actor{}, errs.NewUnauthorizedError("identify caller")
	}

	userID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return identity.Actor{}, errs.NewUnauthorizedErrorWithCause("identify caller", err)
	}

	role, err := identity.ParseRole(ctx.Request().Header.Get(HeaderUserRole))
	if err != nil {
		return identity.Actor{}, errs.NewUnauthorizedErrorWithCause("identify caller", err)
	}

	return identity.NewActor(userID, role)
}
