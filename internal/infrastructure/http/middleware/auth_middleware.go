package middleware

import (
	stdErrors "errors"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/agency-cms/errors"
	"github.com/johnquangdev/agency-cms/internal/usecase/auth"
	usecaseErrors "github.com/johnquangdev/agency-cms/internal/usecase/errors"
	"github.com/johnquangdev/agency-cms/pkg/jwt"
)

// ClaimsKey is the echo context key holding the caller's *jwt.Claims
const ClaimsKey = "claims"

// EchoAuth returns an Echo middleware that requires a valid admin access
// token in the Authorization header and stores its claims under ClaimsKey
func EchoAuth(authService auth.Service, logger *zap.Logger) echo.MiddlewareFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c)
			if token == "" {
				return reject(c, logger, errors.ErrUnauthenticated(), nil)
			}

			claims, err := authService.Authenticate(token)
			if err != nil {
				switch {
				case stdErrors.Is(err, usecaseErrors.ErrTokenExpired):
					return reject(c, logger, errors.ErrTokenExpired(), err)
				case stdErrors.Is(err, usecaseErrors.ErrUnauthorized):
					return reject(c, logger, errors.ErrForbidden("Admin role required"), err)
				default:
					return reject(c, logger, errors.ErrInvalidToken(), err)
				}
			}

			c.Set(ClaimsKey, claims)
			return next(c)
		}
	}
}

// GetClaims retrieves the claims set by EchoAuth
func GetClaims(c echo.Context) (*jwt.Claims, bool) {
	claims, ok := c.Get(ClaimsKey).(*jwt.Claims)
	return claims, ok
}

// extractToken reads "Authorization: Bearer <token>"
func extractToken(c echo.Context) string {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

func reject(c echo.Context, logger *zap.Logger, appErr errors.AppError, cause error) error {
	logger.Warn("http.auth.rejected",
		zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
		zap.String("path", c.Path()),
		zap.Any("app_code", appErr.Code),
		zap.NamedError("cause", cause),
	)
	return c.JSON(appErr.HTTPCode, map[string]interface{}{
		"code":    appErr.Code,
		"message": appErr.Message,
	})
}
