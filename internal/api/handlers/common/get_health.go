package common

import (
	"net/http"

	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/chapool/go-faucet/internal/api"
	"github/chapool/go-faucet/internal/types"
	"github/chapool/go-faucet/internal/util"
)

func GetHealthRoute(s *api.Server) *echo.Route {
	return s.Router.Root.GET("/health", getHealthHandler(s))
}

// getHealthHandler is a pure liveness probe, it never touches the chain client.
func getHealthHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		timestamp := strfmt.DateTime(s.Clock.Now())

		return util.ValidateAndReturn(c, http.StatusOK, &types.GetHealthResponse{
			Status:    swag.String("healthy"),
			Timestamp: &timestamp,
		})
	}
}
