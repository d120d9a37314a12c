package faucet_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/go-faucet/internal/config"
	"github/chapool/go-faucet/internal/faucet"
	"github/chapool/go-faucet/internal/faucet/signer"
	"github/chapool/go-faucet/internal/metrics"
	"github/chapool/go-faucet/internal/test"
)

func defaultFaucetConfig() config.FaucetServer {
	return config.FaucetServer{
		RPCURL:           "http://localhost:8545",
		PrivateKey:       test.TestOperatorPrivateKey,
		TokensPerRequest: "1000000000000000000",
		GasPriceGwei:     1,
		GasLimit:         21000,
	}
}

func newTestService(t *testing.T, chainMock *test.ChainClientMock) faucet.Service {
	t.Helper()

	signerService, err := signer.NewService(test.TestOperatorPrivateKey)
	require.NoError(t, err)

	params, err := faucet.ParamsFromConfig(defaultFaucetConfig())
	require.NoError(t, err)

	return faucet.NewService(chainMock, signerService, params, metrics.New())
}

func TestDispense(t *testing.T) {
	chainMock := test.NewChainClientMock()
	operator := common.HexToAddress(test.TestOperatorAddress)
	chainMock.SetBalance(operator, test.Ether(10))
	chainMock.SetNonce(operator, test.TestOperatorNonce)
	chainMock.SetChainID(big.NewInt(5556))

	service := newTestService(t, chainMock)

	result, err := service.Dispense(context.Background(), test.TestRecipientAddress)
	require.NoError(t, err)

	sent := chainMock.SentTransactions()
	require.Len(t, sent, 1)

	tx := sent[0]
	assert.Equal(t, common.HexToAddress(test.TestRecipientAddress), *tx.To())
	assert.Zero(t, tx.Value().Cmp(big.NewInt(1000000000000000000)))
	assert.Equal(t, test.TestOperatorNonce, tx.Nonce())
	assert.Zero(t, tx.ChainId().Cmp(big.NewInt(5556)))
	assert.Equal(t, uint64(21000), tx.Gas())

	// fee cap and tip cap are both the configured 1 gwei
	assert.Zero(t, tx.GasFeeCap().Cmp(big.NewInt(1000000000)))
	assert.Zero(t, tx.GasTipCap().Cmp(big.NewInt(1000000000)))

	// the returned hash is the hash of the broadcasted transaction
	assert.Equal(t, tx.Hash(), result.TxHash)
	assert.Equal(t, test.TestOperatorNonce, result.Nonce)

	// the transaction was signed by the operator
	sender, err := types.Sender(types.LatestSignerForChainID(big.NewInt(5556)), tx)
	require.NoError(t, err)
	assert.Equal(t, operator, sender)
}

func TestDispenseInvalidAddressPerformsNoChainCalls(t *testing.T) {
	chainMock := test.NewChainClientMock()
	service := newTestService(t, chainMock)

	invalidAddresses := []string{
		"",
		"0x",
		"not-an-address",
		"70997970C51812dc3A010C7d01b50e0d17dc79C8",                  // missing prefix
		"0x70997970c51812dc3a010c7d01b50e0d17dc79c8",                // lowercase, checksum lost
		"0X70997970C51812DC3A010C7D01B50E0D17DC79C8",                // uppercase
		"0x70997970C51812dc3A010C7d01b50e0d17dc79",                  // too short
		"0x70997970C51812dc3A010C7d01b50e0d17dc79C8ab",              // too long
		"0x70997970c51812dc3A010C7d01b50e0d17dc79C8",                // single casing flip
		"0xZZ997970C51812dc3A010C7d01b50e0d17dc79C8",                // non-hex
	}

	for _, address := range invalidAddresses {
		_, err := service.Dispense(context.Background(), address)
		require.ErrorIs(t, err, faucet.ErrInvalidAddress, "address %q", address)
	}

	assert.Zero(t, chainMock.Calls())
	assert.Empty(t, chainMock.SentTransactions())
}

func TestDispenseInsufficientOperatorBalance(t *testing.T) {
	chainMock := test.NewChainClientMock()
	operator := common.HexToAddress(test.TestOperatorAddress)
	chainMock.SetBalance(operator, big.NewInt(0))

	// the recipient being funded must not matter, the operator is checked first
	chainMock.SetBalance(common.HexToAddress(test.TestRecipientAddress), big.NewInt(5))

	service := newTestService(t, chainMock)

	_, err := service.Dispense(context.Background(), test.TestRecipientAddress)
	require.ErrorIs(t, err, faucet.ErrInsufficientBalance)
	assert.Empty(t, chainMock.SentTransactions())
}

func TestDispenseReceiverAlreadyFunded(t *testing.T) {
	chainMock := test.NewChainClientMock()
	chainMock.SetBalance(common.HexToAddress(test.TestOperatorAddress), test.Ether(10))
	chainMock.SetBalance(common.HexToAddress(test.TestRecipientAddress), big.NewInt(5))

	service := newTestService(t, chainMock)

	_, err := service.Dispense(context.Background(), test.TestRecipientAddress)
	require.ErrorIs(t, err, faucet.ErrReceiverAlreadyFunded)
	assert.Empty(t, chainMock.SentTransactions())
}

func TestDispenseUpstreamErrors(t *testing.T) {
	chainMock := test.NewChainClientMock()
	chainMock.SetBalance(common.HexToAddress(test.TestOperatorAddress), test.Ether(10))
	chainMock.BalanceErr = errors.New("connection refused")

	service := newTestService(t, chainMock)

	_, err := service.Dispense(context.Background(), test.TestRecipientAddress)
	require.Error(t, err)
	assert.Equal(t, "Failed to get balance: connection refused", err.Error())
	assert.Empty(t, chainMock.SentTransactions())
}

func TestDispenseNonceError(t *testing.T) {
	chainMock := test.NewChainClientMock()
	chainMock.SetBalance(common.HexToAddress(test.TestOperatorAddress), test.Ether(10))
	chainMock.NonceErr = errors.New("boom")

	service := newTestService(t, chainMock)

	_, err := service.Dispense(context.Background(), test.TestRecipientAddress)
	require.Error(t, err)
	assert.Equal(t, "Failed to get nonce: boom", err.Error())
}

func TestDispenseChainIDError(t *testing.T) {
	chainMock := test.NewChainClientMock()
	chainMock.SetBalance(common.HexToAddress(test.TestOperatorAddress), test.Ether(10))
	chainMock.ChainIDErr = errors.New("boom")

	service := newTestService(t, chainMock)

	_, err := service.Dispense(context.Background(), test.TestRecipientAddress)
	require.Error(t, err)
	assert.Equal(t, "Failed to get chain ID: boom", err.Error())
}

func TestDispenseSendError(t *testing.T) {
	chainMock := test.NewChainClientMock()
	chainMock.SetBalance(common.HexToAddress(test.TestOperatorAddress), test.Ether(10))
	chainMock.SendErr = errors.New("nonce too low")

	service := newTestService(t, chainMock)

	_, err := service.Dispense(context.Background(), test.TestRecipientAddress)
	require.Error(t, err)
	assert.Equal(t, "Failed to send transaction: nonce too low", err.Error())
}

func TestDispenseExactOperatorBalanceQualifies(t *testing.T) {
	chainMock := test.NewChainClientMock()
	chainMock.SetBalance(common.HexToAddress(test.TestOperatorAddress), big.NewInt(1000000000000000000))

	service := newTestService(t, chainMock)

	_, err := service.Dispense(context.Background(), test.TestRecipientAddress)
	require.NoError(t, err)
	assert.Len(t, chainMock.SentTransactions(), 1)
}
