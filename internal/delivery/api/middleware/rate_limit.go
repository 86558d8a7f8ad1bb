package middleware

import (
	"net/http"

	"directory/config"
	domainerrors "directory/internal/domain/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// NewMutationRateLimiter throttles listing mutations per authenticated user,
// falling back to the client address. Reads are never throttled.
func NewMutationRateLimiter(cfg *config.Config) echo.MiddlewareFunc {
	limits := cfg.RateLimit
	if limits == nil {
		limits = &config.RateLimitConfig{}
	}

	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(limits.RequestsPerSecond),
		Burst:     limits.Burst,
		ExpiresIn: limits.ExpiresIn,
	})

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Skipper: func(c echo.Context) bool {
			method := c.Request().Method

			return method == http.MethodGet || method == http.MethodHead || method == http.MethodOptions
		},
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			if userID, ok := GetUserID(c); ok {
				return "user:" + userID.String(), nil
			}

			return "ip:" + c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return domainerrors.ErrForbidden
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return domainerrors.ErrRateLimited
		},
	})
}
