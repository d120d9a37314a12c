package api

import (
	"github.com/dropbox/godropbox/time2"
	"github.com/pkg/errors"
	"github/chapool/go-faucet/internal/config"
	"github/chapool/go-faucet/internal/faucet"
	"github/chapool/go-faucet/internal/faucet/chain"
	"github/chapool/go-faucet/internal/faucet/signer"
	"github/chapool/go-faucet/internal/metrics"
)

// InitNewServer initializes all server components from the given config in
// dependency order. Any error here is a startup error: callers are expected
// to abort the process.
func InitNewServer(cfg config.Server) (*Server, error) {
	s := NewServer(cfg)

	chainClient, err := chain.NewRPCClient(chain.ParseURLs(cfg.Faucet.RPCURL))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create RPC client")
	}

	signerService, err := signer.NewService(cfg.Faucet.PrivateKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load operator wallet")
	}

	params, err := faucet.ParamsFromConfig(cfg.Faucet)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse dispense parameters")
	}

	s.Clock = time2.DefaultClock
	s.Metrics = metrics.New()
	s.Chain = chainClient
	s.Signer = signerService
	s.Faucet = faucet.NewService(chainClient, signerService, params, s.Metrics)

	return s, nil
}
