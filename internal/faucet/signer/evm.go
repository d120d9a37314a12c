package signer

import (
	"context"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
)

// SignTransferTx signs an EIP-1559 value transfer with the operator key.
func (s *service) SignTransferTx(_ context.Context, req *TransferTxRequest) (*types.Transaction, error) {
	if req.ChainID == nil {
		return nil, errors.New("chain ID is required")
	}

	to := req.To

	//nolint:varnamelen // tx is a common abbreviation for transaction
	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   req.ChainID,
		Nonce:     req.Nonce,
		GasTipCap: req.GasTipCap,
		GasFeeCap: req.GasFeeCap,
		Gas:       req.GasLimit,
		To:        &to,
		Value:     req.Value,
	})

	signedTx, err := types.SignTx(tx, types.NewLondonSigner(req.ChainID), s.privateKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign transaction")
	}

	return signedTx, nil
}
