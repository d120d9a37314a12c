package test

import (
	"math/big"
	"testing"

	"github.com/dropbox/godropbox/time2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
	"github/chapool/go-faucet/internal/api"
	"github/chapool/go-faucet/internal/api/router"
	"github/chapool/go-faucet/internal/config"
	"github/chapool/go-faucet/internal/faucet"
	"github/chapool/go-faucet/internal/faucet/signer"
	"github/chapool/go-faucet/internal/metrics"
)

// Well-known anvil/hardhat dev accounts, safe to hardcode in tests.
const (
	TestOperatorPrivateKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	TestOperatorAddress    = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	TestRecipientAddress   = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
	TestRecipient2Address  = "0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC"
)

// TestOperatorNonce is the pending nonce the mock reports for the operator.
const TestOperatorNonce uint64 = 7

// DefaultTestServerConfig is the ENV-derived config with the operator key
// pinned to the well-known test account.
func DefaultTestServerConfig() config.Server {
	cfg := config.DefaultServiceConfigFromEnv()
	cfg.Faucet.PrivateKey = TestOperatorPrivateKey

	return cfg
}

// WithTestServer provides a fully initialized server whose chain client is a
// ChainClientMock: the operator holds 10 ether, recipients start at zero.
// Access the mock via s.Chain.(*test.ChainClientMock).
func WithTestServer(t *testing.T, closure func(s *api.Server)) {
	t.Helper()
	WithTestServerConfigurable(t, DefaultTestServerConfig(), closure)
}

// WithTestServerConfigurable is WithTestServer with a custom config.
func WithTestServerConfigurable(t *testing.T, cfg config.Server, closure func(s *api.Server)) {
	t.Helper()

	chainMock := NewChainClientMock()
	chainMock.SetBalance(common.HexToAddress(TestOperatorAddress), Ether(10))
	chainMock.SetNonce(common.HexToAddress(TestOperatorAddress), TestOperatorNonce)

	signerService, err := signer.NewService(cfg.Faucet.PrivateKey)
	require.NoError(t, err)

	params, err := faucet.ParamsFromConfig(cfg.Faucet)
	require.NoError(t, err)

	s := api.NewServer(cfg)
	s.Clock = time2.DefaultClock
	s.Metrics = metrics.New()
	s.Chain = chainMock
	s.Signer = signerService
	s.Faucet = faucet.NewService(chainMock, signerService, params, s.Metrics)

	router.Init(s)

	closure(s)
}

// Ether returns n ether in wei.
func Ether(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), big.NewInt(1e18))
}
