package woo

import (
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatorSignature(t *testing.T) {
	Assert := assert.New(t)
	body, err := json.Marshal(sampleOrder("abc", STATUS_PROCESSING))
	require.NoError(t, err)
	v := NewValidator(testSecret)

	tests := []struct {
		name      string
		signature string
	}{
		{"missing", ""},
		{"not base64", "%%%"},
		{"wrong secret", Sign("other", body)},
	}
	for _, tt := range tests {
		t.Logf("Test signature: %s", tt.name)
		payload, err := v.Validate(EVENT_CREATED, tt.signature, body)
		Assert.Nil(payload)
		var authErr *AuthenticationError
		Assert.True(errors.As(err, &authErr), "%v", err)
	}

	payload, err := v.Validate(EVENT_CREATED, Sign(testSecret, body), body)
	require.NoError(t, err)
	Assert.Equal("abc", payload.IdempotencyKey())
	Assert.Equal(STATUS_PROCESSING, payload.Order.Status)
	Assert.Equal("85", payload.Order.LineItems[0].Subtotal.String())
}

func TestValidatorEmptySecret(t *testing.T) {
	body := []byte(`{"id": 1}`)
	_, err := NewValidator("").Validate(EVENT_CREATED, Sign("", body), body)
	var configErr *ConfigurationError
	assert.True(t, errors.As(err, &configErr))
}

func TestValidatorEmptyBody(t *testing.T) {
	payload, err := NewValidator(testSecret).Validate(EVENT_CREATED, "", []byte("  "))
	assert.NoError(t, err)
	assert.Nil(t, payload)
}

func TestValidatorHandshake(t *testing.T) {
	body := []byte("webhook_id=15")
	payload, err := NewValidator(testSecret).Validate("", Sign(testSecret, body), body)
	require.NoError(t, err)
	assert.True(t, payload.Handshake)
	assert.Nil(t, payload.Order)
}

func TestValidatorMalformed(t *testing.T) {
	for _, body := range [][]byte{
		[]byte("hello=world"),
		[]byte(`{"line_items": "nope"}`),
		[]byte(`{"total": "ten"}`),
	} {
		_, err := NewValidator(testSecret).Validate(EVENT_CREATED, Sign(testSecret, body), body)
		var malformedErr *MalformedPayloadError
		assert.True(t, errors.As(err, &malformedErr), "%s: %v", body, err)
	}
}

func TestValidatorRejectsInvalidOrder(t *testing.T) {
	order := sampleOrder("abc", STATUS_PENDING)
	order.Billing.Email = ""
	body, err := json.Marshal(order)
	require.NoError(t, err)
	_, err = NewValidator(testSecret).Validate(EVENT_CREATED, Sign(testSecret, body), body)
	var malformedErr *MalformedPayloadError
	assert.True(t, errors.As(err, &malformedErr))

	// ignored statuses are not validated
	order.Status = STATUS_COMPLETED
	body, err = json.Marshal(order)
	require.NoError(t, err)
	payload, err := NewValidator(testSecret).Validate(EVENT_CREATED, Sign(testSecret, body), body)
	assert.NoError(t, err)
	assert.NotNil(t, payload.Order)
}

func TestOrderValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(o *Order)
		reason string
	}{
		{"invalid email", func(o *Order) { o.Billing.Email = "john.example.com" }, "billing.email failed email"},
		{"empty email", func(o *Order) { o.Billing.Email = "" }, "billing.email is empty"},
		{"order key without code", func(o *Order) { o.OrderKey = "wc_order_" }, "order_key failed order_code"},
		{"currency", func(o *Order) { o.Currency = "G8P" }, "currency failed alpha"},
		{"date", func(o *Order) { o.DateCreated = "yesterday" }, `invalid date_created "yesterday"`},
		{"null line", func(o *Order) { o.LineItems = append(o.LineItems, nil) }, "line_items contains null"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := sampleOrder("v1", STATUS_PENDING)
			tt.modify(order)
			err := order.Validate()
			var malformedErr *MalformedPayloadError
			require.True(t, errors.As(err, &malformedErr), "%v", err)
			assert.Equal(t, tt.reason, malformedErr.Reason)
		})
	}

	assert.NoError(t, sampleOrder("v1", STATUS_PENDING).Validate())
}

func TestOrderValidateLineItems(t *testing.T) {
	order := sampleOrder("v2", STATUS_PENDING)
	order.LineItems = append(order.LineItems, &LineItem{ID: 2, Name: "Spoon", Quantity: NewNumber("1")})
	var lineErr *InvalidLineItemError
	require.True(t, errors.As(order.Validate(), &lineErr))
	assert.Equal(t, 1, lineErr.Index)
	assert.Equal(t, "neither sku nor product_id is set", lineErr.Reason)
	assert.False(t, lineErr.NotFound)

	order.LineItems[1].ProductID = 42
	assert.NoError(t, order.Validate())

	order.LineItems[0].Quantity = NewNumber("-1")
	require.True(t, errors.As(order.Validate(), &lineErr))
	assert.Equal(t, 0, lineErr.Index)
	assert.Equal(t, "MUG", lineErr.Code)
	assert.Equal(t, "quantity must be greater than zero, got -1", lineErr.Reason)
}

func TestNumberUnmarshal(t *testing.T) {
	var v struct {
		A Number `json:"a"`
		B Number `json:"b"`
		C Number `json:"c"`
		D Number `json:"d"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": "10.50", "b": 3, "c": "", "d": null}`), &v))
	assert.Equal(t, "10.5", v.A.String())
	assert.Equal(t, "3", v.B.String())
	assert.True(t, v.C.IsZero())
	assert.True(t, v.D.IsZero())
}

func TestOrderCode(t *testing.T) {
	assert.Equal(t, "xYz123", (&Order{OrderKey: "wc_order_xYz123"}).Code())
	assert.Equal(t, "plain", (&Order{OrderKey: "plain"}).Code())
	assert.Equal(t, "", (&Order{}).Code())
}
