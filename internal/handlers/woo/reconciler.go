package woo

import (
	"context"

	"WooWithErp/internal/database"
	"WooWithErp/pkg/logging"

	"github.com/pkg/errors"
)

// Reconciler turns one created order into ERP documents.
type Reconciler struct {
	store    *database.Store
	settings Settings
}

func NewReconciler(store *database.Store, settings Settings) *Reconciler {
	return &Reconciler{store: store, settings: settings.Clone()}
}

// Result describes what Process did with a delivery.
type Result struct {
	Skipped    bool
	SkipReason string

	Customer            *database.Customer
	Items               []*database.Item
	SalesOrder          *database.SalesOrder
	SalesInvoice        *database.SalesInvoice
	MaterialRequest     *database.MaterialRequest
	RequestForQuotation *database.RequestForQuotation
}

func skipped(reason string) *Result {
	return &Result{Skipped: true, SkipReason: reason}
}

// Process runs the whole pipeline for payload in a single transaction:
// either every document of the order is stored or none is.
func (r *Reconciler) Process(ctx context.Context, payload *Payload) (*Result, error) {
	logger := logging.GetLogger()
	logger.Debug("Start Process")
	defer logger.Debug("End Process")

	switch {
	case payload == nil:
		return skipped("empty body"), nil
	case payload.Handshake:
		logger.Info("webhook handshake received")
		return skipped("handshake"), nil
	case payload.Order == nil:
		return skipped("no order"), nil
	case payload.Event != EVENT_CREATED:
		logger.Infof("event %q of order %s ignored", payload.Event, payload.IdempotencyKey())
		return skipped("event " + payload.Event), nil
	case !IsHandledStatus(payload.Order.Status):
		logger.Infof("status %q of order %s ignored", payload.Order.Status, payload.IdempotencyKey())
		return skipped("status " + payload.Order.Status), nil
	}

	if err := r.settings.Validate(); err != nil {
		return nil, withStack(err)
	}
	order := payload.Order
	if err := order.Validate(); err != nil {
		return nil, withStack(err)
	}

	result := new(Result)
	err := r.store.InTx(ctx, func(q *database.Queries) error {
		existing, err := q.GetSalesOrderByPONo(ctx, order.Code())
		if err == nil {
			logger.Infof("order %s already stored as %s", order.Code(), existing.Name)
			result.Skipped = true
			result.SkipReason = "duplicate delivery"
			result.SalesOrder = existing
			return nil
		}
		if !database.IsNotFound(err) {
			return errors.Wrap(err, "failed GetSalesOrderByPONo")
		}

		customer, err := r.ResolveCustomer(ctx, q, order)
		if err != nil {
			return err
		}
		result.Customer = customer

		items, err := r.ResolveItems(ctx, q, order)
		if err != nil {
			return err
		}
		result.Items = items

		so, err := r.Assemble(ctx, q, order, payload.Raw, customer, items)
		if err != nil {
			return err
		}
		result.SalesOrder = so

		outcome, err := r.ReconcileStatus(ctx, q, order, so)
		if err != nil {
			return err
		}
		result.SalesInvoice = outcome.SalesInvoice
		result.MaterialRequest = outcome.MaterialRequest
		result.RequestForQuotation = outcome.RequestForQuotation
		return nil
	})
	if err != nil {
		return nil, withStack(err)
	}
	return result, nil
}
