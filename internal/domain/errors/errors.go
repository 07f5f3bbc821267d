package errors

import "errors"

var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrRegistrationRejected = errors.New("registration rejected")
	ErrNotFound             = errors.New("not found")
	ErrPolicyRequest        = errors.New("upload policy request failed")
	ErrPaymentTerminal      = errors.New("payment status is terminal")
	ErrEmptyCart            = errors.New("cart is empty")
)
