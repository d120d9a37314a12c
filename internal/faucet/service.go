package faucet

import (
	"context"
	"math/big"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github/chapool/go-faucet/internal/faucet/chain"
	"github/chapool/go-faucet/internal/faucet/signer"
	"github/chapool/go-faucet/internal/metrics"
)

type service struct {
	chain   chain.Client
	signer  signer.Service
	params  Params
	metrics *metrics.Service
}

// NewService creates the dispense service.
//
//nolint:ireturn // Returning interface is intentional
func NewService(chainClient chain.Client, signerService signer.Service, params Params, metricsService *metrics.Service) Service {
	return &service{
		chain:   chainClient,
		signer:  signerService,
		params:  params,
		metrics: metricsService,
	}
}

// Dispense runs the full workflow: parse recipient, check operator funds,
// check recipient eligibility, fetch nonce and chain ID, sign, broadcast.
// The wrap messages of the 500-class failures are user-visible.
func (s *service) Dispense(ctx context.Context, address string) (*Result, error) {
	to, err := ParseChecksummedAddress(address)
	if err != nil {
		s.metrics.DispenseFailures.WithLabelValues(metrics.ReasonInvalidAddress).Inc()
		return nil, ErrInvalidAddress
	}

	from := s.signer.Address()

	operatorBalance, err := s.chain.BalanceAt(ctx, from)
	if err != nil {
		s.metrics.DispenseFailures.WithLabelValues(metrics.ReasonUpstream).Inc()
		return nil, errors.Wrap(err, "Failed to get balance")
	}

	if operatorBalance.Cmp(s.params.TokensPerRequest) < 0 {
		s.metrics.DispenseFailures.WithLabelValues(metrics.ReasonInsufficientBalance).Inc()
		return nil, ErrInsufficientBalance
	}

	receiverBalance, err := s.chain.BalanceAt(ctx, to)
	if err != nil {
		s.metrics.DispenseFailures.WithLabelValues(metrics.ReasonUpstream).Inc()
		return nil, errors.Wrap(err, "Failed to get balance")
	}

	// Only never-funded addresses qualify. This check races against
	// concurrent dispenses to the same recipient, see Service.Dispense.
	if receiverBalance.Sign() > 0 {
		s.metrics.DispenseFailures.WithLabelValues(metrics.ReasonAlreadyFunded).Inc()
		return nil, ErrReceiverAlreadyFunded
	}

	nonce, err := s.chain.PendingNonceAt(ctx, from)
	if err != nil {
		s.metrics.DispenseFailures.WithLabelValues(metrics.ReasonUpstream).Inc()
		return nil, errors.Wrap(err, "Failed to get nonce")
	}

	chainID, err := s.chain.ChainID(ctx)
	if err != nil {
		s.metrics.DispenseFailures.WithLabelValues(metrics.ReasonUpstream).Inc()
		return nil, errors.Wrap(err, "Failed to get chain ID")
	}

	// Fee cap and tip cap are both set to the configured gas price, there
	// is no separate tip on the target test networks.
	signedTx, err := s.signer.SignTransferTx(ctx, &signer.TransferTxRequest{
		ChainID:   chainID,
		Nonce:     nonce,
		To:        to,
		Value:     s.params.TokensPerRequest,
		GasLimit:  s.params.GasLimit,
		GasFeeCap: s.params.GasPrice,
		GasTipCap: s.params.GasPrice,
	})
	if err != nil {
		s.metrics.DispenseFailures.WithLabelValues(metrics.ReasonBuild).Inc()
		return nil, errors.Wrap(err, "Failed to build transaction")
	}

	if err := s.chain.SendTransaction(ctx, signedTx); err != nil {
		s.metrics.DispenseFailures.WithLabelValues(metrics.ReasonSubmit).Inc()
		return nil, errors.Wrap(err, "Failed to send transaction")
	}

	s.metrics.DispenseSuccess.Inc()
	s.metrics.DispensedWei.Add(weiToFloat(s.params.TokensPerRequest))

	log.Info().
		Str("amount", s.params.TokensPerRequest.String()).
		Str("to", to.Hex()).
		Str("tx_hash", signedTx.Hash().Hex()).
		Msg("Dispensed tokens")

	return &Result{
		TxHash:    signedTx.Hash(),
		Recipient: to,
		Amount:    s.params.TokensPerRequest,
		Nonce:     nonce,
	}, nil
}

// weiToFloat is lossy by nature, the counter is for dashboards only.
func weiToFloat(wei *big.Int) float64 {
	v, _ := new(big.Float).SetInt(wei).Float64()
	return v
}
