package woo

import (
	"fmt"

	"github.com/pkg/errors"
)

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// withStack records the caller's stack on err unless err already carries one.
func withStack(err error) error {
	if err == nil {
		return nil
	}
	var st stackTracer
	if errors.As(err, &st) {
		return err
	}
	return errors.WithStack(err)
}

// AuthenticationError means the webhook signature did not verify.
type AuthenticationError struct {
	Reason string
}

func (e *AuthenticationError) Error() string {
	return "authentication failed: " + e.Reason
}

// MalformedPayloadError means the body is neither the handshake nor a valid order.
type MalformedPayloadError struct {
	Reason string
	Err    error
}

func (e *MalformedPayloadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed payload: %s: %v", e.Reason, e.Err)
	}
	return "malformed payload: " + e.Reason
}

func (e *MalformedPayloadError) Unwrap() error {
	return e.Err
}

// ConfigurationError names a missing or invalid setting.
type ConfigurationError struct {
	Setting string
	Reason  string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Setting, e.Reason)
}

// InvalidLineItemError rejects one line of the order.
type InvalidLineItemError struct {
	Index    int
	Code     string
	Name     string
	Reason   string
	NotFound bool
}

func (e *InvalidLineItemError) Error() string {
	return fmt.Sprintf("invalid line item #%d (code=%q, name=%q): %s", e.Index+1, e.Code, e.Name, e.Reason)
}

// TotalsMismatchError means the assembled order does not add up to the WooCommerce totals.
type TotalsMismatchError struct {
	Field    string
	Expected string
	Got      string
}

func (e *TotalsMismatchError) Error() string {
	return fmt.Sprintf("%s mismatch: woocommerce %s, assembled %s", e.Field, e.Expected, e.Got)
}
