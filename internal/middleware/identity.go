package middleware

// identity.go enforces the pre-validated user identity that upstream
// infrastructure forwards on every request. The gateway does not verify
// tokens; the header value is opaque and is rejected only when absent, before
// any downstream call is made.

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-booking-gateway/internal/model"
)

const identityKey = "username"

// RequireIdentity rejects requests missing the identity header with a 400 and
// stores the value in the request context for handlers.
func RequireIdentity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := c.Request().Header.Get(model.IdentityHeader)
			if user == "" {
				return c.JSON(http.StatusBadRequest, model.ErrorResponse{
					Message: "missing " + model.IdentityHeader + " header",
				})
			}
			c.Set(identityKey, user)
			return next(c)
		}
	}
}

// Username returns the identity stored by RequireIdentity, or "" when the
// middleware did not run.
func Username(c echo.Context) string {
	if v, ok := c.Get(identityKey).(string); ok {
		return v
	}
	return ""
}
