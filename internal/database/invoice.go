package database

import (
	"context"
)

func (q *Queries) InsertSalesInvoice(ctx context.Context, inv *SalesInvoice) error {
	inv.Created = q.stamp()
	err := q.exec(ctx, `INSERT INTO SalesInvoice (Name, SalesOrder, Customer, PONo, Company, Currency, ConversionRate, PostingDate,
		DiscountAmount, NetTotal, TotalTaxesAndCharges, GrandTotal, DocStatus, Created)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);`,
		inv.Name, inv.SalesOrder, inv.Customer, inv.PONo, inv.Company, inv.Currency, inv.ConversionRate, inv.PostingDate,
		inv.DiscountAmount, inv.NetTotal, inv.TotalTaxesAndCharges, inv.GrandTotal, inv.DocStatus, inv.Created)
	if err != nil {
		return err
	}

	for i, line := range inv.Items {
		line.Parent = inv.Name
		line.Idx = i + 1
		err := q.exec(ctx, `INSERT INTO SalesInvoiceItem (Parent, Idx, ItemCode, ItemName, Qty, Rate, Amount, ItemTaxTemplate, SalesOrder)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
			line.Parent, line.Idx, line.ItemCode, line.ItemName, line.Qty, line.Rate, line.Amount, line.ItemTaxTemplate, line.SalesOrder)
		if err != nil {
			return err
		}
	}
	return q.insertTaxes(ctx, DOCTYPE_SALES_INVOICE, inv.Name, inv.Taxes)
}

// GetSalesInvoiceByPONo finds the invoice raised for an external order code.
func (q *Queries) GetSalesInvoiceByPONo(ctx context.Context, poNo string) (*SalesInvoice, error) {
	inv := new(SalesInvoice)
	if err := q.get(ctx, inv, "SELECT * FROM SalesInvoice WHERE PONo=$1 ORDER BY Name LIMIT 1;", poNo); err != nil {
		return nil, err
	}
	if err := q.selectAll(ctx, &inv.Items, "SELECT * FROM SalesInvoiceItem WHERE Parent=$1 ORDER BY Idx;", inv.Name); err != nil {
		return nil, err
	}
	taxes, err := q.taxes(ctx, DOCTYPE_SALES_INVOICE, inv.Name)
	if err != nil {
		return nil, err
	}
	inv.Taxes = taxes
	return inv, nil
}

func (q *Queries) CountSalesInvoices(ctx context.Context) (int, error) {
	var count int
	err := q.get(ctx, &count, "SELECT COUNT(*) FROM SalesInvoice;")
	return count, err
}
