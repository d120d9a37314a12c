package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dropbox/godropbox/time2"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github/chapool/go-faucet/internal/config"
	"github/chapool/go-faucet/internal/faucet"
	"github/chapool/go-faucet/internal/faucet/chain"
	"github/chapool/go-faucet/internal/faucet/signer"
	"github/chapool/go-faucet/internal/metrics"
	"github/chapool/go-faucet/internal/util"
)

// FaucetService dispenses tokens to eligible recipients.
// Alias to faucet.Service for API access.
type FaucetService = faucet.Service

// SignerService is the operator wallet.
// Alias to signer.Service for API access.
type SignerService = signer.Service

// ChainClient is the RPC abstraction over the target node.
// Alias to chain.Client for API access.
type ChainClient = chain.Client

type Router struct {
	Routes     []*echo.Route
	Root       *echo.Group
	Management *echo.Group
}

// Server is a central struct keeping all the dependencies. Components are
// initialized by InitNewServer in dependency order; the Echo instance and
// the Router are attached afterwards by router.Init.
type Server struct {
	// -> initialized with router.Init(s) function
	Echo   *echo.Echo
	Router *Router

	Config  config.Server
	Clock   time2.Clock
	Metrics *metrics.Service
	Chain   ChainClient
	Signer  SignerService
	Faucet  FaucetService
}

func NewServer(config config.Server) *Server {
	s := &Server{
		Config: config,
	}

	return s
}

func (s *Server) Ready() bool {
	if err := util.IsStructInitialized(s); err != nil {
		log.Debug().Err(err).Msg("Server is not fully initialized")
		return false
	}

	return true
}

func (s *Server) Start() error {
	if !s.Ready() {
		return errors.New("server is not ready")
	}

	if err := s.Echo.Start(s.Config.Echo.ListenAddress()); err != nil {
		return fmt.Errorf("failed to start echo server: %w", err)
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) []error {
	log.Warn().Msg("Shutting down server")

	var errs []error

	if s.Chain != nil {
		log.Debug().Msg("Closing chain client")
		s.Chain.Close()
	}

	if s.Echo != nil {
		log.Debug().Msg("Shutting down echo server")

		if err := s.Echo.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Failed to shutdown echo server")
			errs = append(errs, err)
		}
	}

	return errs
}
