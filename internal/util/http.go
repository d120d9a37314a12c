package util

import (
	"net/http"

	"github.com/go-openapi/runtime"
	"github.com/go-openapi/strfmt"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github/chapool/go-faucet/internal/api/httperrors"
)

// BindAndValidateBody binds the request body to the given payload and runs
// its swagger validation, converting validation failures into a 400 response.
func BindAndValidateBody(c echo.Context, v runtime.Validatable) error {
	binder, ok := c.Echo().Binder.(*echo.DefaultBinder)
	if !ok {
		return errors.New("echo binder is not a DefaultBinder")
	}

	if err := binder.BindBody(c, v); err != nil {
		LogFromEchoContext(c).Debug().Err(err).Msg("Failed to bind request body")
		return err
	}

	return validatePayload(c, v)
}

// ValidateAndReturn validates the response payload before writing it,
// guarding against handing out malformed responses.
func ValidateAndReturn(c echo.Context, code int, v runtime.Validatable) error {
	if err := v.Validate(strfmt.Default); err != nil {
		LogFromEchoContext(c).Error().Err(err).Msg("Response payload validation failed")
		return echo.ErrInternalServerError
	}

	return c.JSON(code, v)
}

func validatePayload(c echo.Context, v runtime.Validatable) error {
	if err := v.Validate(strfmt.Default); err != nil {
		LogFromEchoContext(c).Debug().Err(err).Msg("Payload validation failed")
		return httperrors.NewHTTPErrorWithInternal(http.StatusBadRequest, err.Error(), err)
	}

	return nil
}
