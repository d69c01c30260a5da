package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"atelier/internal/core/application/access"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	accessCodeHeader = "X-Access-Code"
	sessionHeader    = "X-Session-ID"
	sessionKey       = "session"
)

var errCredentialLookup = errors.New("credential lookup failed")

// requireManager admits requests carrying the manager secret.
func (s *Server) requireManager() echo.MiddlewareFunc {
	return s.keyAuth(func(key string, c echo.Context) (bool, error) {
		sess := access.NewSession(s.gate)
		if !sess.LoginManager(key) {
			return false, nil
		}
		c.Set(sessionKey, sess)
		return true, nil
	})
}

// requireWorkstation admits requests carrying a workstation access code and
// binds the request to that workstation.
func (s *Server) requireWorkstation() echo.MiddlewareFunc {
	return s.keyAuth(func(key string, c echo.Context) (bool, error) {
		sess := access.NewSession(s.gate)
		ok, err := sess.LoginWorkstation(c.Request().Context(), key)
		if err != nil {
			return false, fmt.Errorf("%w: %w", errCredentialLookup, err)
		}
		if !ok {
			return false, nil
		}
		c.Set(sessionKey, sess)
		return true, nil
	})
}

func (s *Server) keyAuth(validator middleware.KeyAuthValidator) echo.MiddlewareFunc {
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		KeyLookup: "header:" + accessCodeHeader,
		Validator: validator,
		ErrorHandler: func(err error, c echo.Context) error {
			if errors.Is(err, errCredentialLookup) {
				return s.failWith(c, err)
			}
			return s.fail(c, http.StatusUnauthorized, "Invalid access code")
		},
	})
}

func sessionFrom(c echo.Context) *access.Session {
	sess, _ := c.Get(sessionKey).(*access.Session)
	return sess
}

// requestLogger writes one structured line per request.
func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.RequestID != "" {
				attrs = append(attrs, slog.String("request_id", v.RequestID))
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
				logger.LogAttrs(context.Background(), slog.LevelError, "Request error", attrs...)
				return nil
			}
			logger.LogAttrs(context.Background(), slog.LevelInfo, "Request", attrs...)
			return nil
		},
	})
}
