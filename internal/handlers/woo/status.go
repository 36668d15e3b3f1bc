package woo

import (
	"context"
	"fmt"

	"WooWithErp/internal/database"
	"WooWithErp/pkg/logging"

	"github.com/pkg/errors"
)

// Transition is what a WooCommerce status does to a newly created sales order.
type Transition struct {
	Submit        bool
	SubmitInvoice bool
	// FinalStatus is applied after the downstream documents exist:
	// an on-hold or closed order accepts no new invoice or request.
	FinalStatus string
}

var transitions = map[string]Transition{
	STATUS_PENDING:    {},
	STATUS_PROCESSING: {Submit: true, SubmitInvoice: true},
	STATUS_ON_HOLD:    {Submit: true, FinalStatus: database.SALES_ORDER_STATUS_ON_HOLD},
	STATUS_FAILED:     {Submit: true, FinalStatus: database.SALES_ORDER_STATUS_CLOSED},
}

// IsHandledStatus reports whether a created order with status produces documents.
// cancelled, completed and refunded do not.
func IsHandledStatus(status string) bool {
	_, ok := transitions[status]
	return ok
}

// TransitionFor returns the transition of status and whether it is handled.
func TransitionFor(status string) (Transition, bool) {
	t, ok := transitions[status]
	return t, ok
}

// Outcome lists the downstream documents created by ReconcileStatus.
type Outcome struct {
	SalesInvoice        *database.SalesInvoice
	MaterialRequest     *database.MaterialRequest
	RequestForQuotation *database.RequestForQuotation
}

// ReconcileStatus moves so to the state matching the WooCommerce status and
// creates the invoice and, for outsourced orders, the request for quotation.
func (r *Reconciler) ReconcileStatus(ctx context.Context, q *database.Queries, order *Order, so *database.SalesOrder) (*Outcome, error) {
	logger := logging.GetLogger()
	logger.Debug("Start ReconcileStatus")
	defer logger.Debug("End ReconcileStatus")

	outcome := new(Outcome)
	t, ok := TransitionFor(order.Status)
	if !ok || !t.Submit {
		logger.Infof("Sales Order %s left as draft, status %q", so.Name, order.Status)
		return outcome, nil
	}

	so.DocStatus = database.DocStatusSubmitted
	so.Status = database.SALES_ORDER_STATUS_TO_BILL
	if err := q.UpdateSalesOrderStatus(ctx, so); err != nil {
		return nil, errors.Wrapf(err, "failed to submit %s", so.Name)
	}

	invoice, err := r.createSalesInvoice(ctx, q, so, t.SubmitInvoice)
	if err != nil {
		return nil, errors.Wrap(err, "failed createSalesInvoice")
	}
	outcome.SalesInvoice = invoice

	if r.settings.OrdersOutsourced {
		mr, rfq, err := r.createRFQ(ctx, q, so)
		if err != nil {
			return nil, errors.Wrap(err, "failed createRFQ")
		}
		outcome.MaterialRequest = mr
		outcome.RequestForQuotation = rfq
	}

	if t.FinalStatus != "" {
		if err := r.updateSalesOrderStatus(ctx, q, so, t.FinalStatus); err != nil {
			return nil, err
		}
	}
	return outcome, nil
}

func (r *Reconciler) updateSalesOrderStatus(ctx context.Context, q *database.Queries, so *database.SalesOrder, status string) error {
	err := q.InsertComment(ctx, &database.Comment{
		ReferenceDoctype: database.DOCTYPE_SALES_ORDER,
		ReferenceName:    so.Name,
		Content:          fmt.Sprintf("Reason for state %s: Woocommerce Order Status", status),
	})
	if err != nil {
		return err
	}
	so.Status = status
	if err := q.UpdateSalesOrderStatus(ctx, so); err != nil {
		return errors.Wrapf(err, "failed to set %s on %s", status, so.Name)
	}
	logging.GetLogger().Infof("Sales Order %s set to %s", so.Name, status)
	return nil
}

func (r *Reconciler) createSalesInvoice(ctx context.Context, q *database.Queries, so *database.SalesOrder, submit bool) (*database.SalesInvoice, error) {
	name, err := q.NextName(ctx, r.settings.SalesInvoiceSeries)
	if err != nil {
		return nil, err
	}

	invoice := &database.SalesInvoice{
		Name:                 name,
		SalesOrder:           so.Name,
		Customer:             so.Customer,
		PONo:                 so.PONo,
		Company:              so.Company,
		Currency:             so.Currency,
		ConversionRate:       so.ConversionRate,
		PostingDate:          so.TransactionDate,
		DiscountAmount:       so.DiscountAmount,
		NetTotal:             so.NetTotal,
		TotalTaxesAndCharges: so.TotalTaxesAndCharges,
		GrandTotal:           so.GrandTotal,
		DocStatus:            database.DocStatusDraft,
	}
	if submit {
		invoice.DocStatus = database.DocStatusSubmitted
	}
	for _, line := range so.Items {
		invoice.Items = append(invoice.Items, &database.SalesInvoiceItem{
			ItemCode:        line.ItemCode,
			ItemName:        line.ItemName,
			Qty:             line.Qty,
			Rate:            line.Rate,
			Amount:          line.Amount,
			ItemTaxTemplate: line.ItemTaxTemplate,
			SalesOrder:      so.Name,
		})
	}
	for _, tax := range so.Taxes {
		copied := *tax
		copied.ID = 0
		invoice.Taxes = append(invoice.Taxes, &copied)
	}

	if err := q.InsertSalesInvoice(ctx, invoice); err != nil {
		return nil, err
	}
	logging.GetLogger().Infof("Sales Invoice %s created for %s, docstatus %d", invoice.Name, so.Name, invoice.DocStatus)
	return invoice, nil
}

// createRFQ raises a submitted material request for the order and a draft
// request for quotation to the default supplier.
func (r *Reconciler) createRFQ(ctx context.Context, q *database.Queries, so *database.SalesOrder) (*database.MaterialRequest, *database.RequestForQuotation, error) {
	if r.settings.Supplier == "" {
		return nil, nil, &ConfigurationError{Setting: "Supplier", Reason: "a default supplier is required when orders are outsourced"}
	}

	transactionDate, err := parseDate(so.TransactionDate)
	if err != nil {
		return nil, nil, err
	}
	scheduleDate := transactionDate.AddDate(0, 0, r.settings.QuoteAfterDays).Format(dateLayout)

	mrName, err := q.NextName(ctx, r.settings.MaterialReqSeries)
	if err != nil {
		return nil, nil, err
	}
	mr := &database.MaterialRequest{
		Name:            mrName,
		SalesOrder:      so.Name,
		Company:         so.Company,
		TransactionDate: so.TransactionDate,
		ScheduleDate:    scheduleDate,
		DocStatus:       database.DocStatusSubmitted,
	}
	for _, line := range so.Items {
		mr.Items = append(mr.Items, &database.MaterialRequestItem{
			ItemCode:     line.ItemCode,
			Qty:          line.Qty,
			Warehouse:    line.Warehouse,
			ScheduleDate: scheduleDate,
		})
	}
	if err := q.InsertMaterialRequest(ctx, mr); err != nil {
		return nil, nil, err
	}

	rfqName, err := q.NextName(ctx, r.settings.RFQSeries)
	if err != nil {
		return nil, nil, err
	}
	rfq := &database.RequestForQuotation{
		Name:            rfqName,
		MaterialRequest: mr.Name,
		RFQNumber:       so.PONo,
		Company:         so.Company,
		EmailTemplate:   r.settings.RFQEmailTemplate,
		TransactionDate: mr.TransactionDate,
		ScheduleDate:    mr.ScheduleDate,
		DocStatus:       database.DocStatusDraft,
		Suppliers:       []string{r.settings.Supplier},
	}
	for _, line := range mr.Items {
		rfq.Items = append(rfq.Items, &database.RFQItem{
			ItemCode:        line.ItemCode,
			Qty:             line.Qty,
			Warehouse:       line.Warehouse,
			MaterialRequest: mr.Name,
		})
	}
	if err := q.InsertRequestForQuotation(ctx, rfq); err != nil {
		return nil, nil, err
	}
	logging.GetLogger().Infof("Request for Quotation %s created for %s", rfq.Name, so.Name)
	return mr, rfq, nil
}
