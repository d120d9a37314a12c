package util

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// LogLevelFromString parses the given level, falling back to debug.
func LogLevelFromString(s string) zerolog.Level {
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.DebugLevel
	}

	return level
}

// LogFromContext returns the request-scoped logger injected by the logger
// middleware, or the default context logger when none was set.
func LogFromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// LogFromEchoContext returns the request-scoped logger of the given echo context.
func LogFromEchoContext(c echo.Context) *zerolog.Logger {
	return LogFromContext(c.Request().Context())
}
