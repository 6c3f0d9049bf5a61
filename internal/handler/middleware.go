package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/locvowork/staff_attendance/internal/domain"
	"github.com/locvowork/staff_attendance/internal/logger"
	"github.com/locvowork/staff_attendance/internal/service/serviceutils"
)

const userContextKey = "user"

// TokenVerifier resolves a bearer token to its user
type TokenVerifier interface {
	VerifyToken(token string) (domain.User, error)
}

// RequireAuth rejects requests without a valid bearer token and stores the user on the context.
func RequireAuth(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(h, "Bearer ") {
				return serviceutils.ResponseError(c, http.StatusUnauthorized, "Missing bearer token", nil)
			}

			user, err := verifier.VerifyToken(strings.TrimPrefix(h, "Bearer "))
			if err != nil {
				return serviceutils.ResponseError(c, http.StatusUnauthorized, "Invalid token", err)
			}

			c.Set(userContextKey, user)
			ctx := logger.WithLogger(c.Request().Context(), map[string]interface{}{
				"user_id": user.ID,
				"role":    user.Role,
			})
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// RequireRole must run after RequireAuth.
func RequireRole(role domain.UserRole) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := currentUser(c)
			if err != nil {
				return serviceutils.ResponseError(c, http.StatusUnauthorized, "Not logged in", err)
			}
			if user.Role != role {
				return serviceutils.ResponseError(c, http.StatusForbidden, "Insufficient role", nil)
			}
			return next(c)
		}
	}
}

func currentUser(c echo.Context) (domain.User, error) {
	user, ok := c.Get(userContextKey).(domain.User)
	if !ok {
		return domain.User{}, errors.New("no user on request")
	}
	return user, nil
}
