package http

import (
	"errors"
	"net/http"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/principal"
	"foodorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// PrincipalHeader carries the authenticated identity. Authentication itself
// happens upstream (gateway, session layer); this service only resolves the
// identity to a role and profile.
const PrincipalHeader = "X-Principal-ID"

const principalContextKey = "principal"

// resolvePrincipal resolves the X-Principal-ID header through the role
// directory and stores the principal on the request context. Requests
// without a resolvable principal never reach a handler.
func (s *Server) resolvePrincipal(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get(PrincipalHeader)
		if header == "" {
			return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: "Missing " + PrincipalHeader + " header",
			})
		}

		id, err := kernel.UUIDFromString(header)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: "Invalid principal id",
			})
		}

		resolved, err := s.directory.Resolve(ctx.Request().Context(), id)
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Unknown principal",
				})
			}
			return writeError(ctx, err)
		}

		ctx.Set(principalContextKey, resolved)
		return next(ctx)
	}
}

// actor returns the principal resolved by the middleware.
func actor(ctx echo.Context) *principal.Principal {
	resolved, _ := ctx.Get(principalContextKey).(*principal.Principal)
	return resolved
}
