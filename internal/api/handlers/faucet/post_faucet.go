package faucet

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github/chapool/go-faucet/internal/api"
	"github/chapool/go-faucet/internal/api/httperrors"
	"github/chapool/go-faucet/internal/faucet"
	"github/chapool/go-faucet/internal/types"
	"github/chapool/go-faucet/internal/util"
)

func PostFaucetRoute(s *api.Server) *echo.Route {
	return s.Router.Root.POST("/faucet", postFaucetHandler(s))
}

// postFaucetHandler dispenses the configured amount to the posted address.
// Success broadcasts exactly one transaction; every failure is converted
// into a response here, nothing propagates past the handler.
func postFaucetHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostFaucetPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		result, err := s.Faucet.Dispense(ctx, swag.StringValue(body.Address))
		if err != nil {
			switch {
			case errors.Is(err, faucet.ErrInvalidAddress):
				return httperrors.ErrBadRequestInvalidAddress
			case errors.Is(err, faucet.ErrInsufficientBalance):
				return httperrors.ErrBadRequestInsufficientBalance
			case errors.Is(err, faucet.ErrReceiverAlreadyFunded):
				return httperrors.ErrBadRequestReceiverFunded
			default:
				log.Error().Err(err).Msg("Failed to dispense tokens")
				// the wrapped message carries the upstream error verbatim
				return httperrors.NewHTTPErrorWithInternal(http.StatusInternalServerError, err.Error(), err)
			}
		}

		return util.ValidateAndReturn(c, http.StatusOK, &types.FaucetResponse{
			TransactionHash: swag.String(result.TxHash.Hex()),
		})
	}
}
