package test

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github/chapool/go-faucet/internal/faucet/chain"
)

// ChainClientMock implements chain.Client against in-memory state. Error
// fields, when set, are returned by the corresponding call.
type ChainClientMock struct {
	mu       sync.Mutex
	balances map[common.Address]*big.Int
	nonces   map[common.Address]uint64
	chainID  *big.Int
	sent     []*types.Transaction
	calls    int

	BalanceErr error
	NonceErr   error
	ChainIDErr error
	SendErr    error
}

var _ chain.Client = (*ChainClientMock)(nil)

func NewChainClientMock() *ChainClientMock {
	return &ChainClientMock{
		balances: make(map[common.Address]*big.Int),
		nonces:   make(map[common.Address]uint64),
		chainID:  big.NewInt(31337),
	}
}

func (m *ChainClientMock) SetBalance(address common.Address, balance *big.Int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.balances[address] = new(big.Int).Set(balance)
}

func (m *ChainClientMock) SetNonce(address common.Address, nonce uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nonces[address] = nonce
}

func (m *ChainClientMock) SetChainID(chainID *big.Int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.chainID = new(big.Int).Set(chainID)
}

// SentTransactions returns all transactions broadcasted so far.
func (m *ChainClientMock) SentTransactions() []*types.Transaction {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*types.Transaction{}, m.sent...)
}

// Calls returns the total number of chain calls performed.
func (m *ChainClientMock) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *ChainClientMock) BalanceAt(_ context.Context, address common.Address) (*big.Int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++

	if m.BalanceErr != nil {
		return nil, m.BalanceErr
	}

	balance, ok := m.balances[address]
	if !ok {
		return big.NewInt(0), nil
	}

	return new(big.Int).Set(balance), nil
}

func (m *ChainClientMock) PendingNonceAt(_ context.Context, address common.Address) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++

	if m.NonceErr != nil {
		return 0, m.NonceErr
	}

	return m.nonces[address], nil
}

func (m *ChainClientMock) ChainID(_ context.Context) (*big.Int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++

	if m.ChainIDErr != nil {
		return nil, m.ChainIDErr
	}

	return new(big.Int).Set(m.chainID), nil
}

func (m *ChainClientMock) SendTransaction(_ context.Context, tx *types.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++

	if m.SendErr != nil {
		return m.SendErr
	}

	m.sent = append(m.sent, tx)

	return nil
}

func (m *ChainClientMock) Close() {}
