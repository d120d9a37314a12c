package chain

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Client is the capability set the faucet needs from a chain node. The
// production implementation is RPCClient; tests substitute a mock.
type Client interface {
	// BalanceAt returns the balance of the address at the latest known block.
	BalanceAt(ctx context.Context, address common.Address) (*big.Int, error)

	// PendingNonceAt returns the pending nonce of the address.
	PendingNonceAt(ctx context.Context, address common.Address) (uint64, error)

	// ChainID returns the network chain identifier.
	ChainID(ctx context.Context) (*big.Int, error)

	// SendTransaction broadcasts the signed transaction.
	SendTransaction(ctx context.Context, tx *types.Transaction) error

	// Close releases the underlying connections.
	Close()
}
