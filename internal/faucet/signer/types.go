package signer

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Service is the operator wallet: it owns the signing key loaded at startup
// and signs plain value transfers with it. The key never leaves the process.
type Service interface {
	// Address returns the operator address derived from the signing key.
	Address() common.Address

	// SignTransferTx signs an EIP-1559 value transfer.
	SignTransferTx(ctx context.Context, req *TransferTxRequest) (*types.Transaction, error)
}

// TransferTxRequest describes one value transfer to sign.
type TransferTxRequest struct {
	ChainID   *big.Int
	Nonce     uint64
	To        common.Address
	Value     *big.Int
	GasLimit  uint64
	GasFeeCap *big.Int
	GasTipCap *big.Int
}
