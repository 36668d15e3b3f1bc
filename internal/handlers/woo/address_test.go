package woo

import (
	"context"
	"testing"

	"WooWithErp/internal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSameAddress(t *testing.T) {
	existing := &database.Address{Line1: "221B Baker Street", Pincode: "NW1 6XE", Country: "GB"}

	tests := []struct {
		name     string
		incoming database.Address
		same     bool
	}{
		{"abbreviated street", database.Address{Line1: "221b Baker St.", Pincode: "nw16xe", Country: "gb"}, true},
		{"other postcode", database.Address{Line1: "221B Baker Street", Pincode: "NW1 6XF", Country: "GB"}, false},
		{"other country", database.Address{Line1: "221B Baker Street", Pincode: "NW1 6XE", Country: "US"}, false},
		{"other street", database.Address{Line1: "10 Downing Street", Pincode: "NW1 6XE", Country: "GB"}, false},
		{"no line1", database.Address{Pincode: "SW1A 2AA", Country: "GB"}, true},
		{"no postcode", database.Address{Line1: "10 Downing Street", Country: "GB"}, true},
		{"no country", database.Address{Line1: "10 Downing Street", Pincode: "SW1A 2AA"}, true},
	}
	for _, tt := range tests {
		incoming := tt.incoming
		assert.Equal(t, tt.same, SameAddress(&incoming, existing), tt.name)
	}
}

func TestResolveCustomerAddresses(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	r := NewReconciler(store, testSettings())

	order := sampleOrder("a1", STATUS_PENDING)
	order.Shipping = Shipping{Address: Address{Address1: "1 High Street", Postcode: "OX1 1AA", Country: "GB"}}

	customer, err := r.ResolveCustomer(ctx, store.Queries, order)
	require.NoError(t, err)
	assert.Equal(t, "John Watson", customer.Name)
	assert.Equal(t, CUSTOMER_TYPE_INDIVIDUAL, customer.CustomerType)
	assert.Equal(t, "John Watson-Billing", customer.PrimaryAddress)

	billing, err := store.AddressesByCustomer(ctx, customer.Name, ADDRESS_TYPE_BILLING)
	require.NoError(t, err)
	require.Len(t, billing, 1)
	assert.True(t, billing[0].IsPrimary)
	assert.False(t, billing[0].IsShipping)
	assert.Equal(t, "GB", billing[0].Country)

	shipping, err := store.AddressesByCustomer(ctx, customer.Name, ADDRESS_TYPE_SHIPPING)
	require.NoError(t, err)
	require.Len(t, shipping, 1)
	assert.True(t, shipping[0].IsShipping)

	// a slightly different spelling updates the billing address in place
	order.Billing.Address1 = "221b Baker St."
	order.Billing.Email = "JOHN@example.com"
	customer, err = r.ResolveCustomer(ctx, store.Queries, order)
	require.NoError(t, err)
	assert.Equal(t, "John Watson", customer.Name)

	count, err := store.CountAddresses(ctx, customer.Name)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	got, err := store.GetAddress(ctx, "John Watson-Billing")
	require.NoError(t, err)
	assert.Equal(t, "221b Baker St.", got.Line1)

	// a new postcode is a new address
	order.Billing.Postcode = "NW1 6XF"
	_, err = r.ResolveCustomer(ctx, store.Queries, order)
	require.NoError(t, err)
	count, err = store.CountAddresses(ctx, customer.Name)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	contacts, err := store.CountContacts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, contacts)
}

func TestResolveCustomerCompany(t *testing.T) {
	store := openStore(t)
	r := NewReconciler(store, testSettings())

	order := sampleOrder("a2", STATUS_PENDING)
	order.Billing.Company = "Baker Street Irregulars"
	customer, err := r.ResolveCustomer(context.Background(), store.Queries, order)
	require.NoError(t, err)
	assert.Equal(t, "Baker Street Irregulars", customer.Name)
	assert.Equal(t, CUSTOMER_TYPE_COMPANY, customer.CustomerType)
	assert.Equal(t, "UK", customer.TaxCategory)
}
