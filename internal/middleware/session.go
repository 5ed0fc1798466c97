package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/octobees/barber-finder/api/internal/controller"
)

// Session resolves the browser session and its view state controller. The id
// comes from the X-Session-ID header or the session cookie and is minted when
// absent.
func Session(registry *controller.Registry) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid := strings.TrimSpace(c.Request().Header.Get(HeaderSessionID))
			if sid == "" {
				if cookie, err := c.Cookie(SessionCookieName); err == nil {
					sid = strings.TrimSpace(cookie.Value)
				}
			}
			if sid == "" {
				sid = uuid.NewString()
			}

			c.Set(ContextKeySessionID, sid)
			c.Set(ContextKeyController, registry.Get(sid))
			c.Response().Header().Set(HeaderSessionID, sid)
			c.SetCookie(&http.Cookie{
				Name:     SessionCookieName,
				Value:    sid,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})

			return next(c)
		}
	}
}

// SessionIDFromContext extracts the session identifier if available.
func SessionIDFromContext(c echo.Context) string {
	if val, ok := c.Get(ContextKeySessionID).(string); ok {
		return val
	}
	return ""
}

// ControllerFromContext returns the session controller stored by Session.
func ControllerFromContext(c echo.Context) *controller.Controller {
	if val, ok := c.Get(ContextKeyController).(*controller.Controller); ok {
		return val
	}
	return nil
}
