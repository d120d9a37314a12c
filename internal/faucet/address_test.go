package faucet_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/go-faucet/internal/faucet"
	"github/chapool/go-faucet/internal/test"
)

func TestParseChecksummedAddress(t *testing.T) {
	address, err := faucet.ParseChecksummedAddress(test.TestRecipientAddress)
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(test.TestRecipientAddress), address)
}

func TestParseChecksummedAddressRejectsLowercase(t *testing.T) {
	_, err := faucet.ParseChecksummedAddress("0x70997970c51812dc3a010c7d01b50e0d17dc79c8")
	require.Error(t, err)
}

func TestParseChecksummedAddressRejectsMissingPrefix(t *testing.T) {
	_, err := faucet.ParseChecksummedAddress("70997970C51812dc3A010C7d01b50e0d17dc79C8")
	require.Error(t, err)
}

func TestParseChecksummedAddressRejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "0x", "0x1234", "0xZZ997970C51812dc3A010C7d01b50e0d17dc79C8"} {
		_, err := faucet.ParseChecksummedAddress(s)
		require.Error(t, err, "input %q", s)
	}
}

func TestParseChecksummedAddressRoundTripsItsOwnOutput(t *testing.T) {
	address := common.HexToAddress("0x000000000000000000000000000000000000dead")

	parsed, err := faucet.ParseChecksummedAddress(address.Hex())
	require.NoError(t, err)
	assert.Equal(t, address, parsed)
}
