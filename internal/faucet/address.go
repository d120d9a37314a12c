package faucet

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// ParseChecksummedAddress parses a strictly EIP-55 checksummed address.
// All-lowercase or all-uppercase inputs are rejected unless they happen to
// match their checksummed form.
func ParseChecksummedAddress(s string) (common.Address, error) {
	if !strings.HasPrefix(s, "0x") {
		return common.Address{}, errors.New("address must have a 0x prefix")
	}

	if !common.IsHexAddress(s) {
		return common.Address{}, errors.New("address is not a valid hex address")
	}

	address := common.HexToAddress(s)
	if address.Hex() != s {
		return common.Address{}, errors.New("address checksum mismatch")
	}

	return address, nil
}
