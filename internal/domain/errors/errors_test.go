package errors

import (
	stdErrors "errors"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"invalid credentials", ErrInvalidCredentials},
		{"registration rejected", ErrRegistrationRejected},
		{"not found", ErrNotFound},
		{"policy request", ErrPolicyRequest},
		{"payment terminal", ErrPaymentTerminal},
		{"empty cart", ErrEmptyCart},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !stdErrors.Is(tc.err, tc.err) {
				t.Fatalf("expected error to match itself: %v", tc.err)
			}
		})
	}
}
