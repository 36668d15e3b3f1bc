package woo

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"WooWithErp/internal/database"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessTotals(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	r := NewReconciler(store, testSettings())

	result, err := r.Process(ctx, signedPayload(t, EVENT_CREATED, sampleOrder("t1", STATUS_PENDING)))
	require.NoError(t, err)
	require.False(t, result.Skipped)

	so, err := store.GetSalesOrderByPONo(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "SO-WOO-00001", so.Name)
	assert.Equal(t, "100", so.GrandTotal.String())
	assert.Equal(t, "15", so.TotalTaxesAndCharges.String())
	assert.Equal(t, "85", so.NetTotal.String())
	assert.Equal(t, "2022-02-16", so.TransactionDate)
	assert.Equal(t, "2022-02-23", so.DeliveryDate)
	assert.Equal(t, "bacs", so.PaymentTermsTemplate)
	assert.Equal(t, "John Watson", so.Customer)
	assert.Equal(t, "John Watson-Billing", so.CustomerAddress)
	assert.Equal(t, "1", so.ConversionRate.String())

	require.Len(t, so.Items, 1)
	assert.Equal(t, "42.5", so.Items[0].Rate.String())
	assert.Equal(t, "Stores - AL", so.Items[0].Warehouse)

	require.Len(t, so.Taxes, 3)
	assert.Equal(t, DESCRIPTION_SALES_TAX, so.Taxes[0].Description)
	assert.Equal(t, "VAT - AL", so.Taxes[0].AccountHead)
	assert.Equal(t, "10", so.Taxes[0].TaxAmount.String())
	assert.Equal(t, DESCRIPTION_SHIPPING_CHARGE, so.Taxes[1].Description)
	assert.Equal(t, "Freight - AL", so.Taxes[1].AccountHead)
	assert.Equal(t, "5", so.Taxes[1].TaxAmount.String())
	assert.Equal(t, DESCRIPTION_SHIPPING_TAX, so.Taxes[2].Description)
	assert.Equal(t, "Main - AL", so.Taxes[2].CostCenter)
}

func TestProcessStatuses(t *testing.T) {
	tests := []struct {
		status           string
		docStatus        database.DocStatus
		orderStatus      string
		invoice          bool
		invoiceDocStatus database.DocStatus
		comment          bool
	}{
		{STATUS_PENDING, database.DocStatusDraft, database.SALES_ORDER_STATUS_DRAFT, false, 0, false},
		{STATUS_PROCESSING, database.DocStatusSubmitted, database.SALES_ORDER_STATUS_TO_BILL, true, database.DocStatusSubmitted, false},
		{STATUS_ON_HOLD, database.DocStatusSubmitted, database.SALES_ORDER_STATUS_ON_HOLD, true, database.DocStatusDraft, true},
		{STATUS_FAILED, database.DocStatusSubmitted, database.SALES_ORDER_STATUS_CLOSED, true, database.DocStatusDraft, true},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			store := openStore(t)
			ctx := context.Background()
			r := NewReconciler(store, testSettings())

			_, err := r.Process(ctx, signedPayload(t, EVENT_CREATED, sampleOrder("s1", tt.status)))
			require.NoError(t, err)

			so, err := store.GetSalesOrderByPONo(ctx, "s1")
			require.NoError(t, err)
			assert.Equal(t, tt.docStatus, so.DocStatus)
			assert.Equal(t, tt.orderStatus, so.Status)

			invoice, err := store.GetSalesInvoiceByPONo(ctx, "s1")
			if !tt.invoice {
				assert.True(t, database.IsNotFound(err))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.invoiceDocStatus, invoice.DocStatus)
				assert.Equal(t, so.Name, invoice.SalesOrder)
				assert.Equal(t, so.GrandTotal.String(), invoice.GrandTotal.String())
				assert.Len(t, invoice.Items, 1)
				assert.Len(t, invoice.Taxes, 3)
			}

			comments, err := store.Comments(ctx, database.DOCTYPE_SALES_ORDER, so.Name)
			require.NoError(t, err)
			if tt.comment {
				require.Len(t, comments, 1)
				assert.Equal(t, "Reason for state "+tt.orderStatus+": Woocommerce Order Status", comments[0].Content)
			} else {
				assert.Empty(t, comments)
			}
		})
	}
}

func TestProcessSkips(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	r := NewReconciler(store, testSettings())

	result, err := r.Process(ctx, nil)
	require.NoError(t, err)
	assert.True(t, result.Skipped)

	result, err = r.Process(ctx, &Payload{Handshake: true})
	require.NoError(t, err)
	assert.True(t, result.Skipped)

	result, err = r.Process(ctx, signedPayload(t, "updated", sampleOrder("k1", STATUS_PROCESSING)))
	require.NoError(t, err)
	assert.True(t, result.Skipped)

	result, err = r.Process(ctx, signedPayload(t, EVENT_CREATED, sampleOrder("k2", STATUS_COMPLETED)))
	require.NoError(t, err)
	assert.True(t, result.Skipped)

	assert.Equal(t, counts{}, countDocuments(t, store))
}

func TestProcessOutsourced(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	settings := testSettings()
	settings.OrdersOutsourced = true
	settings.Supplier = "Mugs Inc"
	settings.RFQEmailTemplate = "RFQ Mail"
	r := NewReconciler(store, settings)

	result, err := r.Process(ctx, signedPayload(t, EVENT_CREATED, sampleOrder("o1", STATUS_PROCESSING)))
	require.NoError(t, err)
	require.NotNil(t, result.MaterialRequest)
	require.NotNil(t, result.RequestForQuotation)

	mr, err := store.GetMaterialRequest(ctx, result.MaterialRequest.Name)
	require.NoError(t, err)
	assert.Equal(t, database.DocStatusSubmitted, mr.DocStatus)
	assert.Equal(t, "2022-02-23", mr.ScheduleDate)
	require.Len(t, mr.Items, 1)
	assert.Equal(t, "MUG", mr.Items[0].ItemCode)

	rfq, err := store.GetRequestForQuotationByNumber(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, database.DocStatusDraft, rfq.DocStatus)
	assert.Equal(t, []string{"Mugs Inc"}, rfq.Suppliers)
	assert.Equal(t, "RFQ Mail", rfq.EmailTemplate)
	assert.Equal(t, mr.Name, rfq.MaterialRequest)
	require.Len(t, rfq.Items, 1)
}

func TestProcessOutsourcedWithoutSupplier(t *testing.T) {
	store := openStore(t)
	settings := testSettings()
	settings.OrdersOutsourced = true
	r := NewReconciler(store, settings)

	_, err := r.Process(context.Background(), signedPayload(t, EVENT_CREATED, sampleOrder("o2", STATUS_PROCESSING)))
	var configErr *ConfigurationError
	require.True(t, errors.As(err, &configErr))
	assert.Equal(t, "Supplier", configErr.Setting)
	assert.Equal(t, counts{}, countDocuments(t, store))
}

func TestProcessRollsBack(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	r := NewReconciler(store, testSettings())

	// the customer is written before the line fails on its missing template
	order := sampleOrder("r1", STATUS_PROCESSING)
	order.LineItems[0].MetaData = []MetaData{meta("attribute_pa_size", "Large_10")}
	_, err := r.Process(ctx, signedPayload(t, EVENT_CREATED, order))
	var lineErr *InvalidLineItemError
	require.True(t, errors.As(err, &lineErr))
	assert.True(t, lineErr.NotFound)
	assert.Equal(t, counts{}, countDocuments(t, store))

	// totals that do not add up
	order = sampleOrder("r2", STATUS_PROCESSING)
	order.Total = NewNumber("101")
	_, err = r.Process(ctx, signedPayload(t, EVENT_CREATED, order))
	var totalsErr *TotalsMismatchError
	require.True(t, errors.As(err, &totalsErr))
	assert.Equal(t, "grand total", totalsErr.Field)
	assert.Equal(t, counts{}, countDocuments(t, store))
}

func TestProcessRejectsZeroQuantity(t *testing.T) {
	store := openStore(t)
	r := NewReconciler(store, testSettings())

	order := sampleOrder("z1", STATUS_PENDING)
	order.LineItems[0].Quantity = NewNumber("0")
	_, err := r.Process(context.Background(), &Payload{Event: EVENT_CREATED, Order: order})
	var lineErr *InvalidLineItemError
	require.True(t, errors.As(err, &lineErr))
	assert.False(t, lineErr.NotFound)
	assert.Equal(t, counts{}, countDocuments(t, store))
}

func TestProcessDuplicateDelivery(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	r := NewReconciler(store, testSettings())

	payload := signedPayload(t, EVENT_CREATED, sampleOrder("d1", STATUS_PROCESSING))
	first, err := r.Process(ctx, payload)
	require.NoError(t, err)
	before := countDocuments(t, store)

	second, err := r.Process(ctx, payload)
	require.NoError(t, err)
	assert.True(t, second.Skipped)
	assert.Equal(t, first.SalesOrder.Name, second.SalesOrder.Name)
	assert.Equal(t, before, countDocuments(t, store))
}

func TestProcessReusesContactByEmail(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	r := NewReconciler(store, testSettings())

	_, err := r.Process(ctx, signedPayload(t, EVENT_CREATED, sampleOrder("e1", STATUS_PENDING)))
	require.NoError(t, err)

	order := sampleOrder("e2", STATUS_PENDING)
	order.Billing.Email = "John@Example.com"
	_, err = r.Process(ctx, signedPayload(t, EVENT_CREATED, order))
	require.NoError(t, err)

	c := countDocuments(t, store)
	assert.Equal(t, 1, c.contacts)
	assert.Equal(t, 1, c.customers)
	assert.Equal(t, 1, c.items)
	assert.Equal(t, 2, c.salesOrders)
}

func TestProcessConcurrentDeliveries(t *testing.T) {
	store, err := database.Open(filepath.Join(t.TempDir(), "db.db"))
	require.NoError(t, err)
	store.SetClock(func() time.Time { return time.Date(2022, 2, 16, 10, 0, 0, 0, time.UTC) })
	t.Cleanup(func() { _ = store.Close() })
	r := NewReconciler(store, testSettings())

	const n = 8
	payloads := make([]*Payload, n)
	for i := range payloads {
		order := sampleOrder(fmt.Sprintf("c%d", i), STATUS_PENDING)
		if i%2 == 1 {
			order.Billing.Email = strings.ToUpper(order.Billing.Email)
		}
		payloads[i] = signedPayload(t, EVENT_CREATED, order)
	}

	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := range payloads {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = r.Process(context.Background(), payloads[i])
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		assert.NoError(t, err, "delivery %d", i)
	}
	c := countDocuments(t, store)
	assert.Equal(t, 1, c.contacts)
	assert.Equal(t, 1, c.customers)
	assert.Equal(t, 1, c.items)
	assert.Equal(t, n, c.salesOrders)
}

func TestProcessForeignCurrency(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	r := NewReconciler(store, testSettings())

	order := sampleOrder("c1", STATUS_PENDING)
	order.Currency = "usd"
	_, err := r.Process(ctx, signedPayload(t, EVENT_CREATED, order))
	require.NoError(t, err)
	so, err := store.GetSalesOrderByPONo(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "USD", so.Currency)
	assert.Equal(t, "0.8", so.ConversionRate.String())

	order = sampleOrder("c2", STATUS_PENDING)
	order.Currency = "EUR"
	_, err = r.Process(ctx, signedPayload(t, EVENT_CREATED, order))
	var configErr *ConfigurationError
	assert.True(t, errors.As(err, &configErr))
}
