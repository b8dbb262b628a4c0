package middleware

import (
	stderrors "errors"

	"micron-manager/internal/errors"
	"micron-manager/internal/handlers"
	"micron-manager/internal/models"
	"micron-manager/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	// UserIDContextKey holds the authenticated user's id
	UserIDContextKey = "user_id"
)

// RequireAuth creates a middleware that requires a valid identity provider token
func RequireAuth(tokenService services.TokenVerifierInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			claims, err := tokenService.ValidateAccessToken(token)
			if err != nil {
				if stderrors.Is(err, services.ErrExpiredToken) {
					return handlers.SendError(c, errors.AuthExpiredToken)
				}
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			userID := claims.UserID
			if userID == "" {
				userID = claims.Subject
			}

			c.Set(handlers.ClaimsContextKey, claims)
			c.Set(UserIDContextKey, userID)

			return next(c)
		}
	}
}

// RequireCapability creates a middleware that requires the authenticated token
// to grant capability. It must run after RequireAuth.
func RequireCapability(capability, operation string, logger services.CustomerLoggerInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(handlers.ClaimsContextKey).(*models.IdentityClaims)
			if !ok || claims == nil {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			if !claims.Can(capability) {
				userID, _ := c.Get(UserIDContextKey).(string)
				logger.LogAuthorizationFailure(c.Request().Context(), operation, userID, capability)
				return handlers.SendError(c, errors.AuthInsufficientPermission)
			}

			return next(c)
		}
	}
}
