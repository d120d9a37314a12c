package router

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github/chapool/go-faucet/internal/api/httperrors"
	"github/chapool/go-faucet/internal/types"
)

type HTTPErrorHandlerConfig struct {
	HideInternalServerErrorDetails bool
}

// HTTPErrorHandlerWithConfig renders every error as types.PublicHTTPError,
// the single-field JSON error body of this service.
func HTTPErrorHandlerWithConfig(config HTTPErrorHandlerConfig) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var code int
		var message string

		var httpError *httperrors.HTTPError
		var echoHTTPError *echo.HTTPError

		switch {
		case errors.As(err, &httpError):
			code = httpError.Code
			message = httpError.Message
		case errors.As(err, &echoHTTPError):
			code = echoHTTPError.Code

			if msg, ok := echoHTTPError.Message.(string); ok {
				message = msg
			} else {
				message = http.StatusText(code)
			}
		default:
			code = http.StatusInternalServerError
			message = err.Error()
		}

		if code == http.StatusInternalServerError && config.HideInternalServerErrorDetails {
			message = http.StatusText(http.StatusInternalServerError)
		}

		if c.Request().Method == http.MethodHead {
			if err := c.NoContent(code); err != nil {
				log.Warn().Err(err).Msg("Failed to write head error response")
			}
			return
		}

		if err := c.JSON(code, types.PublicHTTPError{Error: swag.String(message)}); err != nil {
			log.Warn().Err(err).Msg("Failed to write error response")
		}
	}
}
