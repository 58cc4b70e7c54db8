// middleware/auth_middleware.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/builditdreamz/builditdreamz_backend/models"
)

// ClaimsContextKey is where AdminGuard stores the verified claims
const ClaimsContextKey = "claims"

// AdminGuard is the single authentication gate of the API. It admits a
// request only when it carries a valid admin token, either as a bearer
// header or, for websocket upgrades, as a token query parameter.
func AdminGuard(secret string, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := ParseJWT(secret, bearerToken(c))
			if err != nil || claims.UserType != UserTypeAdmin {
				logger.Info("unauthorized request",
					zap.String("path", c.Request().URL.Path),
					zap.String("remote_ip", c.RealIP()),
				)
				return c.JSON(http.StatusUnauthorized, models.Response{
					Status:  http.StatusUnauthorized,
					Message: "Unauthorized",
				})
			}

			c.Set(ClaimsContextKey, claims)
			return next(c)
		}
	}
}

func bearerToken(c echo.Context) string {
	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(auth[len("Bearer "):])
	}
	return c.QueryParam("token")
}
