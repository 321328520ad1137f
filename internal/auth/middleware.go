package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"ratehub/internal/errors"
	"ratehub/internal/model"
)

// CurrentClaims extracts the authenticated caller's claims set by the
// echo-jwt middleware.
func CurrentClaims(c echo.Context) (*Claims, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, errors.Unauthenticated("please authenticate")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errors.Unauthenticated("please authenticate")
	}
	return claims, nil
}

// RequireRoles rejects callers whose role is not in the allowed set. It runs
// after the JWT middleware and before any handler logic.
func RequireRoles(roles ...model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := CurrentClaims(c)
			if err != nil {
				httpErr := errors.MapErrorToHTTP(err)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			for _, role := range roles {
				if claims.Role == role {
					return next(c)
				}
			}
			httpErr := errors.MapErrorToHTTP(errors.Forbidden("access denied"))
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		}
	}
}
