package woo

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"WooWithErp/internal/database"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const testSecret = "wc-secret"

func testSettings() Settings {
	s := Settings{
		Secret:              testSecret,
		Company:             "Acme Ltd",
		CompanyCurrency:     "GBP",
		Warehouse:           "Stores - AL",
		ItemGroup:           "Products",
		AttributeKeyPrefix:  "attribute_pa_",
		TaxAccount:          "VAT - AL",
		FreightAccount:      "Freight - AL",
		CostCenter:          "Main - AL",
		CustomerTaxCategory: "UK",
		LeadSource:          "WooCommerce",
		PaymentTerms:        "Prepaid",
		DefaultCountry:      "GB",
		TaxTemplates:        map[string]string{"UK VAT 20%": "VAT 20 - AL"},
		ExchangeRates:       map[string]decimal.Decimal{"USD": decimal.RequireFromString("0.8")},
	}
	s.setDefaults()
	return s
}

func openStore(t *testing.T) *database.Store {
	t.Helper()
	store, err := database.Open(":memory:")
	require.NoError(t, err)
	store.SetClock(func() time.Time { return time.Date(2022, 2, 16, 10, 0, 0, 0, time.UTC) })
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func seedTemplate(t *testing.T, store *database.Store, code string, attributes ...string) {
	t.Helper()
	err := store.SaveTemplateItem(context.Background(), &database.Item{
		Code:             code,
		Name:             "Template " + code,
		ItemGroup:        "Products",
		StockUOM:         "Nos",
		SalesUOM:         "Nos",
		DefaultWarehouse: "Stores - AL",
		Company:          "Acme Ltd",
		Attributes:       attributes,
	})
	require.NoError(t, err)
}

func meta(key, value string) MetaData {
	raw, _ := json.Marshal(value)
	return MetaData{Key: key, Value: raw}
}

// sampleOrder adds up as: subtotal 85, item tax 10, shipping 5, total 100.
func sampleOrder(key, status string) *Order {
	return &Order{
		ID:            727,
		OrderKey:      "wc_order_" + key,
		Status:        status,
		Currency:      "GBP",
		DateCreated:   "2022-02-16T09:30:00",
		ShippingTotal: NewNumber("5"),
		ShippingTax:   NewNumber("0"),
		TotalTax:      NewNumber("10"),
		Total:         NewNumber("100"),
		PaymentMethod: "bacs",
		Billing: Billing{
			Address: Address{
				FirstName: "John",
				LastName:  "Watson",
				Address1:  "221B Baker Street",
				City:      "London",
				Postcode:  "NW1 6XE",
				Country:   "gb",
			},
			Email: "john@example.com",
			Phone: "+44 20 7224 3688",
		},
		LineItems: []*LineItem{
			{
				ID:       1,
				Name:     "Mug",
				Sku:      "MUG",
				Quantity: NewNumber("2"),
				Subtotal: NewNumber("85"),
				Total:    NewNumber("85"),
				TotalTax: NewNumber("10"),
			},
		},
	}
}

func signedPayload(t *testing.T, event string, order *Order) *Payload {
	t.Helper()
	body, err := json.Marshal(order)
	require.NoError(t, err)
	payload, err := NewValidator(testSecret).Validate(event, Sign(testSecret, body), body)
	require.NoError(t, err)
	return payload
}

type counts struct {
	contacts, customers, items, salesOrders, invoices int
}

func countDocuments(t *testing.T, store *database.Store) counts {
	t.Helper()
	ctx := context.Background()
	var c counts
	var err error
	c.contacts, err = store.CountContacts(ctx)
	require.NoError(t, err)
	c.customers, err = store.CountCustomers(ctx)
	require.NoError(t, err)
	c.items, err = store.CountItems(ctx)
	require.NoError(t, err)
	c.salesOrders, err = store.CountSalesOrders(ctx)
	require.NoError(t, err)
	c.invoices, err = store.CountSalesInvoices(ctx)
	require.NoError(t, err)
	return c
}
