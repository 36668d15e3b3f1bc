package woo

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"regexp"
	"strings"
)

const (
	HEADER_EVENT     = "x-wc-webhook-event"
	HEADER_SIGNATURE = "x-wc-webhook-signature"
	HEADER_DELIVERY  = "x-wc-webhook-delivery-id"

	EVENT_CREATED = "created"
)

// the first delivery of a new webhook is a form body, not JSON
var handshakeBody = regexp.MustCompile(`^webhook_id=\d+$`)

// Payload is an authenticated, decoded webhook delivery.
type Payload struct {
	Event     string
	Handshake bool
	Order     *Order
	Raw       []byte
}

// IdempotencyKey identifies the order across repeated deliveries.
func (p *Payload) IdempotencyKey() string {
	if p == nil || p.Order == nil {
		return ""
	}
	return p.Order.Code()
}

type Validator struct {
	secret []byte
}

func NewValidator(secret string) *Validator {
	return &Validator{secret: []byte(secret)}
}

// Sign returns the base64 HMAC-SHA256 of body, as WooCommerce computes it.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// Verify checks the signature header against the raw body in constant time.
func (v *Validator) Verify(body []byte, signature string) error {
	if len(v.secret) == 0 {
		return &ConfigurationError{Setting: "Secret", Reason: "webhook secret is not set"}
	}
	signature = strings.TrimSpace(signature)
	if signature == "" {
		return &AuthenticationError{Reason: "missing " + HEADER_SIGNATURE + " header"}
	}
	got, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return &AuthenticationError{Reason: "signature is not base64"}
	}
	mac := hmac.New(sha256.New, v.secret)
	mac.Write(body)
	if !hmac.Equal(got, mac.Sum(nil)) {
		return &AuthenticationError{Reason: "signature mismatch"}
	}
	return nil
}

// Validate authenticates and decodes one delivery. An empty body yields
// (nil, nil) and must be ignored by the caller.
func (v *Validator) Validate(event, signature string, body []byte) (*Payload, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}
	if err := v.Verify(body, signature); err != nil {
		return nil, withStack(err)
	}

	payload := &Payload{Event: strings.TrimSpace(event), Raw: body}

	if !json.Valid(body) {
		if handshakeBody.Match(bytes.TrimSpace(body)) {
			payload.Handshake = true
			return payload, nil
		}
		return nil, withStack(&MalformedPayloadError{Reason: "body is not JSON"})
	}

	order := new(Order)
	if err := json.Unmarshal(body, order); err != nil {
		return nil, withStack(&MalformedPayloadError{Reason: "cannot decode order", Err: err})
	}
	payload.Order = order

	if payload.Event == EVENT_CREATED && IsHandledStatus(order.Status) {
		if err := order.Validate(); err != nil {
			return nil, withStack(err)
		}
	}
	return payload, nil
}
