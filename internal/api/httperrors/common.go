package httperrors

import (
	"net/http"
)

// The user-visible message texts are part of the HTTP contract, do not
// reword them without bumping API consumers.
var (
	ErrBadRequestInvalidAddress      = NewHTTPError(http.StatusBadRequest, "Invalid address")
	ErrBadRequestInsufficientBalance = NewHTTPError(http.StatusBadRequest, "Insufficient balance")
	ErrBadRequestReceiverFunded      = NewHTTPError(http.StatusBadRequest, "Receiver already has a balance greater than 0")
)
