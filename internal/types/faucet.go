package types

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
)

// PostFaucetPayload is the request body of POST /faucet.
type PostFaucetPayload struct {
	// recipient address (EIP-55 checksummed)
	// Required: true
	Address *string `json:"address"`
}

// Validate validates this post faucet payload
func (m *PostFaucetPayload) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("address", "body", m.Address); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}

	return nil
}

// FaucetResponse is the success body of POST /faucet.
type FaucetResponse struct {
	// hash of the broadcasted transaction
	// Required: true
	TransactionHash *string `json:"transaction_hash"`
}

// Validate validates this faucet response
func (m *FaucetResponse) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("transaction_hash", "body", m.TransactionHash); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}

	return nil
}
