package usecase

import "errors"

var (
	ErrQuoteRequestNotFound = errors.New("quote request not found")
	ErrPolicyNotFound       = errors.New("policy not found")
	ErrInvalidRequestID     = errors.New("invalid request id")
	ErrInvalidCustomerInfo  = errors.New("invalid customer info")
	ErrInvalidOptions       = errors.New("invalid insurance options")
	ErrInvalidQuote         = errors.New("invalid quote")
	ErrInvalidStatus        = errors.New("invalid request status")
)
