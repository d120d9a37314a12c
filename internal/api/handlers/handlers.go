package handlers

import (
	"github.com/labstack/echo/v4"
	"github/chapool/go-faucet/internal/api"
	"github/chapool/go-faucet/internal/api/handlers/common"
	"github/chapool/go-faucet/internal/api/handlers/faucet"
)

// AttachAllRoutes attaches all routes to their respective router groups.
func AttachAllRoutes(s *api.Server) {
	s.Router.Routes = []*echo.Route{
		common.GetHealthRoute(s),
		common.GetMetricsRoute(s),
		common.GetReadyRoute(s),
		faucet.PostFaucetRoute(s),
	}
}
