package faucet_test

import (
	"math/big"
	"net/http"
	"regexp"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/go-faucet/internal/api"
	"github/chapool/go-faucet/internal/test"
	"github/chapool/go-faucet/internal/types"
)

var txHashRegex = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)

func TestPostFaucetDispensesToZeroBalanceRecipient(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "POST", "/faucet", test.GenericPayload{
			"address": test.TestRecipientAddress,
		}, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.FaucetResponse
		test.ParseResponseBody(t, res, &response)
		require.NotNil(t, response.TransactionHash)
		assert.Regexp(t, txHashRegex, *response.TransactionHash)

		chainMock := s.Chain.(*test.ChainClientMock)
		sent := chainMock.SentTransactions()
		require.Len(t, sent, 1)
		assert.Equal(t, sent[0].Hash().Hex(), *response.TransactionHash)
		assert.Equal(t, common.HexToAddress(test.TestRecipientAddress), *sent[0].To())
		assert.Zero(t, sent[0].Value().Cmp(big.NewInt(1000000000000000000)))

		assert.InDelta(t, 1, testutil.ToFloat64(s.Metrics.DispenseSuccess), 0.001)
	})
}

func TestPostFaucetInvalidChecksum(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		// valid hex, checksum casing lost
		res := test.PerformRequest(t, s, "POST", "/faucet", test.GenericPayload{
			"address": "0x70997970c51812dc3a010c7d01b50e0d17dc79c8",
		}, nil)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)

		var response types.PublicHTTPError
		test.ParseResponseBody(t, res, &response)
		require.NotNil(t, response.Error)
		assert.Equal(t, "Invalid address", *response.Error)

		chainMock := s.Chain.(*test.ChainClientMock)
		assert.Zero(t, chainMock.Calls(), "invalid addresses must not hit the chain")
	})
}

func TestPostFaucetReceiverAlreadyFunded(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		chainMock := s.Chain.(*test.ChainClientMock)
		chainMock.SetBalance(common.HexToAddress(test.TestRecipientAddress), big.NewInt(5))

		res := test.PerformRequest(t, s, "POST", "/faucet", test.GenericPayload{
			"address": test.TestRecipientAddress,
		}, nil)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)

		var response types.PublicHTTPError
		test.ParseResponseBody(t, res, &response)
		require.NotNil(t, response.Error)
		assert.Equal(t, "Receiver already has a balance greater than 0", *response.Error)
		assert.Empty(t, chainMock.SentTransactions())
	})
}

func TestPostFaucetInsufficientOperatorBalance(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		chainMock := s.Chain.(*test.ChainClientMock)
		chainMock.SetBalance(common.HexToAddress(test.TestOperatorAddress), big.NewInt(0))

		res := test.PerformRequest(t, s, "POST", "/faucet", test.GenericPayload{
			"address": test.TestRecipientAddress,
		}, nil)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)

		var response types.PublicHTTPError
		test.ParseResponseBody(t, res, &response)
		require.NotNil(t, response.Error)
		assert.Equal(t, "Insufficient balance", *response.Error)
		assert.Empty(t, chainMock.SentTransactions())
	})
}

func TestPostFaucetUpstreamFailure(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		chainMock := s.Chain.(*test.ChainClientMock)
		chainMock.BalanceErr = errors.New("connection refused")

		res := test.PerformRequest(t, s, "POST", "/faucet", test.GenericPayload{
			"address": test.TestRecipientAddress,
		}, nil)
		require.Equal(t, http.StatusInternalServerError, res.Result().StatusCode)

		var response types.PublicHTTPError
		test.ParseResponseBody(t, res, &response)
		require.NotNil(t, response.Error)
		assert.Equal(t, "Failed to get balance: connection refused", *response.Error)
	})
}

func TestPostFaucetSubmissionFailure(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		chainMock := s.Chain.(*test.ChainClientMock)
		chainMock.SendErr = errors.New("nonce too low")

		res := test.PerformRequest(t, s, "POST", "/faucet", test.GenericPayload{
			"address": test.TestRecipientAddress,
		}, nil)
		require.Equal(t, http.StatusInternalServerError, res.Result().StatusCode)

		var response types.PublicHTTPError
		test.ParseResponseBody(t, res, &response)
		require.NotNil(t, response.Error)
		assert.Equal(t, "Failed to send transaction: nonce too low", *response.Error)
	})
}

func TestPostFaucetMissingAddress(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "POST", "/faucet", test.GenericPayload{}, nil)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)

		chainMock := s.Chain.(*test.ChainClientMock)
		assert.Zero(t, chainMock.Calls())
	})
}

func TestPostFaucetSecondDispenseAfterFundingIsRejected(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "POST", "/faucet", test.GenericPayload{
			"address": test.TestRecipient2Address,
		}, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		// simulate the first transfer landing on chain
		chainMock := s.Chain.(*test.ChainClientMock)
		chainMock.SetBalance(common.HexToAddress(test.TestRecipient2Address), big.NewInt(1000000000000000000))

		res = test.PerformRequest(t, s, "POST", "/faucet", test.GenericPayload{
			"address": test.TestRecipient2Address,
		}, nil)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)

		var response types.PublicHTTPError
		test.ParseResponseBody(t, res, &response)
		require.NotNil(t, response.Error)
		assert.Equal(t, "Receiver already has a balance greater than 0", *response.Error)
	})
}
