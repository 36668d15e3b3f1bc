package woo

import (
	"context"
	"strings"

	"WooWithErp/internal/database"
	"WooWithErp/pkg/logging"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	CHARGE_TYPE_ACTUAL = "Actual"

	DESCRIPTION_SHIPPING_CHARGE = "Shipping Charge"
	DESCRIPTION_SHIPPING_TAX    = "Shipping Tax"
	DESCRIPTION_SALES_TAX       = "Sales Tax"
)

// totals are compared at the currency precision WooCommerce rounds to
const currencyPrecision = 2

// Assemble builds and stores the draft sales order for order.
func (r *Reconciler) Assemble(ctx context.Context, q *database.Queries, order *Order, raw []byte,
	customer *database.Customer, items []*database.Item) (*database.SalesOrder, error) {
	logger := logging.GetLogger()
	logger.Debug("Start Assemble")
	defer logger.Debug("End Assemble")

	created, err := order.CreatedDate()
	if err != nil {
		return nil, &MalformedPayloadError{Reason: "date_created", Err: err}
	}
	rate, err := r.settings.ConversionRate(order.Currency)
	if err != nil {
		return nil, err
	}

	transactionDate := created.Format(dateLayout)
	deliveryDate := created.AddDate(0, 0, r.settings.DeliveryAfterDays).Format(dateLayout)

	paymentTerms := strings.TrimSpace(order.PaymentMethod)
	if paymentTerms == "" {
		paymentTerms = r.settings.PaymentTerms
	}

	so := &database.SalesOrder{
		NamingSeries:         r.settings.SalesOrderSeries,
		Customer:             customer.Name,
		CustomerAddress:      customer.PrimaryAddress,
		ContactPerson:        customer.PrimaryContact,
		Company:              r.settings.Company,
		Currency:             strings.ToUpper(strings.TrimSpace(order.Currency)),
		ConversionRate:       rate,
		PONo:                 order.Code(),
		TransactionDate:      transactionDate,
		PODate:               transactionDate,
		DeliveryDate:         deliveryDate,
		CouponCode:           order.CouponCode(),
		DiscountAmount:       order.DiscountTotal.Decimal,
		PaymentTermsTemplate: paymentTerms,
		Source:               r.settings.LeadSource,
		TaxCategory:          customer.TaxCategory,
		DocStatus:            database.DocStatusDraft,
		Status:               database.SALES_ORDER_STATUS_DRAFT,
		OrderJSON:            string(raw),
	}

	if err := r.addSalesOrderItems(order, so, items); err != nil {
		return nil, err
	}
	if err := r.addTaxes(order, so); err != nil {
		return nil, err
	}
	computeTotals(so)
	if err := reconcileTotals(order, so); err != nil {
		return nil, err
	}

	so.Name, err = q.NextName(ctx, so.NamingSeries)
	if err != nil {
		return nil, errors.Wrap(err, "failed NextName")
	}
	if err := q.InsertSalesOrder(ctx, so); err != nil {
		return nil, errors.Wrapf(err, "failed InsertSalesOrder(%s)", so.PONo)
	}
	logger.Infof("Sales Order %s created for order %s", so.Name, so.PONo)
	return so, nil
}

func (r *Reconciler) addSalesOrderItems(order *Order, so *database.SalesOrder, items []*database.Item) error {
	byCode := make(map[string]*database.Item, len(items))
	for _, item := range items {
		byCode[item.Code] = item
	}

	for i, line := range order.LineItems {
		code := line.ItemCode
		if code == "" {
			code = line.CatalogCode()
		}
		item, ok := byCode[code]
		if !ok {
			return &InvalidLineItemError{Index: i, Code: code, Name: line.Name, Reason: "item was not resolved"}
		}

		qty := line.Quantity.Decimal
		if !qty.IsPositive() {
			return &InvalidLineItemError{Index: i, Code: code, Name: line.Name,
				Reason: "quantity must be greater than zero, got " + qty.String()}
		}

		so.Items = append(so.Items, &database.SalesOrderItem{
			ItemCode:        item.Code,
			ItemName:        item.Name,
			Qty:             qty,
			Rate:            line.Subtotal.Div(qty),
			Amount:          line.Subtotal.Decimal,
			DeliveryDate:    so.DeliveryDate,
			Warehouse:       item.DefaultWarehouse,
			ItemTaxTemplate: item.TaxTemplate,
			TaxAmount:       line.TotalTax.Decimal,
		})
	}
	return nil
}

// addTaxes books item taxes per tax template, then shipping and shipping tax.
func (r *Reconciler) addTaxes(order *Order, so *database.SalesOrder) error {
	var templates []string
	amounts := make(map[string]decimal.Decimal)
	for _, line := range so.Items {
		if line.TaxAmount.IsZero() {
			continue
		}
		if _, ok := amounts[line.ItemTaxTemplate]; !ok {
			templates = append(templates, line.ItemTaxTemplate)
		}
		amounts[line.ItemTaxTemplate] = amounts[line.ItemTaxTemplate].Add(line.TaxAmount)
	}

	for _, template := range templates {
		account, err := r.settings.TaxAccountFor(template)
		if err != nil {
			return err
		}
		description := template
		if description == "" {
			description = DESCRIPTION_SALES_TAX
		}
		r.addTaxDetails(so, amounts[template], description, account)
	}

	r.addTaxDetails(so, order.ShippingTotal.Decimal, DESCRIPTION_SHIPPING_CHARGE, r.settings.FreightAccount)
	r.addTaxDetails(so, order.ShippingTax.Decimal, DESCRIPTION_SHIPPING_TAX, r.settings.TaxAccount)
	return nil
}

func (r *Reconciler) addTaxDetails(so *database.SalesOrder, amount decimal.Decimal, description, account string) {
	so.Taxes = append(so.Taxes, &database.TaxCharge{
		ChargeType:  CHARGE_TYPE_ACTUAL,
		AccountHead: account,
		Description: description,
		TaxAmount:   amount,
		CostCenter:  r.settings.CostCenter,
	})
}

func computeTotals(so *database.SalesOrder) {
	qty, amount, taxes := decimal.Zero, decimal.Zero, decimal.Zero
	for _, line := range so.Items {
		qty = qty.Add(line.Qty)
		amount = amount.Add(line.Amount)
	}
	for _, tax := range so.Taxes {
		taxes = taxes.Add(tax.TaxAmount)
	}
	so.TotalQty = qty
	so.NetTotal = amount.Sub(so.DiscountAmount).Round(currencyPrecision)
	so.TotalTaxesAndCharges = taxes.Round(currencyPrecision)
	so.GrandTotal = so.NetTotal.Add(so.TotalTaxesAndCharges)
}

// reconcileTotals checks the assembled order against the WooCommerce totals:
// taxes and charges = total_tax + shipping_total, grand total = total.
func reconcileTotals(order *Order, so *database.SalesOrder) error {
	expectedTaxes := order.TotalTax.Add(order.ShippingTotal.Decimal).Round(currencyPrecision)
	if !so.TotalTaxesAndCharges.Equal(expectedTaxes) {
		return &TotalsMismatchError{Field: "total taxes and charges",
			Expected: expectedTaxes.StringFixed(currencyPrecision), Got: so.TotalTaxesAndCharges.StringFixed(currencyPrecision)}
	}
	expectedTotal := order.Total.Round(currencyPrecision)
	if !so.GrandTotal.Equal(expectedTotal) {
		return &TotalsMismatchError{Field: "grand total",
			Expected: expectedTotal.StringFixed(currencyPrecision), Got: so.GrandTotal.StringFixed(currencyPrecision)}
	}
	return nil
}
