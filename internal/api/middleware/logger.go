package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type LoggerConfig struct {
	Level          zerolog.Level
	LogRequestBody bool
}

// Logger returns a logger middleware with the default config.
func Logger() echo.MiddlewareFunc {
	return LoggerWithConfig(LoggerConfig{Level: zerolog.DebugLevel})
}

// LoggerWithConfig injects a request-scoped zerolog logger (carrying the
// request id) into the request context and logs request completion.
func LoggerWithConfig(config LoggerConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			id := req.Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = c.Response().Header().Get(echo.HeaderXRequestID)
			}

			l := log.With().
				Str("request_id", id).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Logger()

			req = req.WithContext(l.WithContext(req.Context()))
			c.SetRequest(req)

			start := time.Now()
			err := next(c)

			evt := l.WithLevel(config.Level).
				Int("status", c.Response().Status).
				Dur("duration", time.Since(start))

			if err != nil {
				evt = evt.Err(err)
			}

			evt.Msg("Handled request")

			return err
		}
	}
}
