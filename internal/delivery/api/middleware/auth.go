package middleware

import (
	"strings"

	deliverycontext "canteen/internal/delivery/context"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate rejects requests without a valid access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WrapMessage("authorization header is missing")
		}

		if err := m.authenticate(c, authHeader); err != nil {
			return err
		}

		return next(c)
	}
}

// OptionalAuthenticate lets anonymous requests through but still rejects a bad token.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return next(c)
		}

		if err := m.authenticate(c, authHeader); err != nil {
			return err
		}

		return next(c)
	}
}

func (m *AuthMiddleware) authenticate(c echo.Context, authHeader string) error {
	tokenString, ok := strings.CutPrefix(authHeader, bearerPrefix)
	if !ok || tokenString == "" {
		return domainerrors.ErrUnauthorized.WrapMessage("invalid token format, must be Bearer token")
	}

	claims, err := m.tokenSvc.ValidateToken(tokenString)
	if err != nil {
		return domainerrors.ErrUnauthorized.WrapMessage(err.Error())
	}

	if claims.UserID == "" {
		return domainerrors.ErrUnauthorized.WrapMessage("user id missing from token")
	}

	deliverycontext.SetUserID(c, claims.UserID)

	return nil
}

// GetUserID returns the authenticated user id set by the auth middleware.
func GetUserID(c echo.Context) (string, bool) {
	return deliverycontext.GetUserID(c)
}
