package faucet

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github/chapool/go-faucet/internal/config"
)

// Sentinel conditions of the dispense workflow. The API layer maps them to
// 400 responses; everything else is a 500 whose message is surfaced verbatim.
var (
	ErrInvalidAddress        = errors.New("invalid recipient address")
	ErrInsufficientBalance   = errors.New("operator balance below dispense amount")
	ErrReceiverAlreadyFunded = errors.New("receiver balance is not zero")
)

// Service dispenses the configured amount to eligible recipients.
type Service interface {
	// Dispense validates eligibility of the given checksummed address
	// against live chain state, then signs and broadcasts one value
	// transfer from the operator wallet. The eligibility check and the
	// broadcast are not atomic against the remote ledger; two concurrent
	// requests for the same recipient may both pass the zero-balance check.
	Dispense(ctx context.Context, address string) (*Result, error)
}

// Result describes one broadcasted dispense transaction.
type Result struct {
	TxHash    common.Hash
	Recipient common.Address
	Amount    *big.Int
	Nonce     uint64
}

const weiPerGwei = 1_000_000_000

// Params are the static dispense parameters, immutable after startup.
type Params struct {
	TokensPerRequest *big.Int
	GasPrice         *big.Int // wei
	GasLimit         uint64
}

// ParamsFromConfig parses the configured dispense parameters, converting the
// gas price from gwei to wei.
func ParamsFromConfig(cfg config.FaucetServer) (Params, error) {
	tokens, ok := new(big.Int).SetString(cfg.TokensPerRequest, 10)
	if !ok || tokens.Sign() < 0 {
		return Params{}, errors.Errorf("invalid tokens per request: %q", cfg.TokensPerRequest)
	}

	gasPrice := new(big.Int).Mul(new(big.Int).SetUint64(cfg.GasPriceGwei), big.NewInt(weiPerGwei))

	return Params{
		TokensPerRequest: tokens,
		GasPrice:         gasPrice,
		GasLimit:         cfg.GasLimit,
	}, nil
}
