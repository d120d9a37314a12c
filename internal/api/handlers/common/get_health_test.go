package common_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/go-faucet/internal/api"
	"github/chapool/go-faucet/internal/test"
	"github/chapool/go-faucet/internal/types"
)

func TestGetHealth(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/health", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.GetHealthResponse
		test.ParseResponseBody(t, res, &response)
		require.NotNil(t, response.Status)
		require.NotNil(t, response.Timestamp)
		assert.Equal(t, "healthy", *response.Status)

		timestamp, err := time.Parse(time.RFC3339, response.Timestamp.String())
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now(), timestamp, time.Minute)
	})
}

func TestGetHealthIgnoresChainState(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		chainMock := s.Chain.(*test.ChainClientMock)
		chainMock.BalanceErr = errors.New("connection refused")
		chainMock.ChainIDErr = errors.New("connection refused")

		res := test.PerformRequest(t, s, "GET", "/health", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)
		assert.Zero(t, chainMock.Calls(), "liveness must not touch the chain")
	})
}
