package signer

import (
	"crypto/ecdsa"
	"encoding/hex"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

const privateKeyLength = 32

type service struct {
	privateKey *ecdsa.PrivateKey
	address    common.Address
}

// NewService loads the operator wallet from a hex-encoded private key
// (optional 0x prefix, must decode to exactly 32 bytes).
//
//nolint:ireturn // Returning interface is intentional
func NewService(privateKeyHex string) (Service, error) {
	raw := strings.TrimPrefix(privateKeyHex, "0x")

	keyBytes, err := hex.DecodeString(raw)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode private key hex")
	}

	if len(keyBytes) != privateKeyLength {
		return nil, errors.Errorf("invalid private key length: got %d bytes, want %d", len(keyBytes), privateKeyLength)
	}

	privateKey, err := crypto.ToECDSA(keyBytes)
	if err != nil {
		return nil, errors.Wrap(err, "failed to convert private key to ECDSA")
	}

	publicKey, ok := privateKey.Public().(*ecdsa.PublicKey)
	if !ok {
		return nil, errors.New("failed to cast public key to ECDSA")
	}

	return &service{
		privateKey: privateKey,
		address:    crypto.PubkeyToAddress(*publicKey),
	}, nil
}

func (s *service) Address() common.Address {
	return s.address
}
