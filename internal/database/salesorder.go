package database

import (
	"context"
)

// InsertSalesOrder stores the header, its lines and its taxes and charges.
func (q *Queries) InsertSalesOrder(ctx context.Context, so *SalesOrder) error {
	so.Created = q.stamp()
	err := q.exec(ctx, `INSERT INTO SalesOrder (Name, NamingSeries, Customer, CustomerAddress, ContactPerson, Company, Currency,
		ConversionRate, PONo, TransactionDate, PODate, DeliveryDate, CouponCode, DiscountAmount, PaymentTermsTemplate, Source,
		TaxCategory, TotalQty, NetTotal, TotalTaxesAndCharges, GrandTotal, DocStatus, Status, OrderJSON, Created)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25);`,
		so.Name, so.NamingSeries, so.Customer, so.CustomerAddress, so.ContactPerson, so.Company, so.Currency,
		so.ConversionRate, so.PONo, so.TransactionDate, so.PODate, so.DeliveryDate, so.CouponCode, so.DiscountAmount,
		so.PaymentTermsTemplate, so.Source, so.TaxCategory, so.TotalQty, so.NetTotal, so.TotalTaxesAndCharges,
		so.GrandTotal, so.DocStatus, so.Status, so.OrderJSON, so.Created)
	if err != nil {
		return err
	}

	for i, line := range so.Items {
		line.Parent = so.Name
		line.Idx = i + 1
		err := q.exec(ctx, `INSERT INTO SalesOrderItem (Parent, Idx, ItemCode, ItemName, Qty, Rate, Amount, DeliveryDate,
			Warehouse, ItemTaxTemplate, TaxAmount) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`,
			line.Parent, line.Idx, line.ItemCode, line.ItemName, line.Qty, line.Rate, line.Amount, line.DeliveryDate,
			line.Warehouse, line.ItemTaxTemplate, line.TaxAmount)
		if err != nil {
			return err
		}
	}
	return q.insertTaxes(ctx, DOCTYPE_SALES_ORDER, so.Name, so.Taxes)
}

func (q *Queries) insertTaxes(ctx context.Context, parentType, parent string, taxes []*TaxCharge) error {
	for i, tax := range taxes {
		tax.ParentType = parentType
		tax.Parent = parent
		tax.Idx = i + 1
		err := q.exec(ctx, `INSERT INTO TaxCharge (ParentType, Parent, Idx, ChargeType, AccountHead, Description, TaxAmount, CostCenter)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
			tax.ParentType, tax.Parent, tax.Idx, tax.ChargeType, tax.AccountHead, tax.Description, tax.TaxAmount, tax.CostCenter)
		if err != nil {
			return err
		}
	}
	return nil
}

func (q *Queries) taxes(ctx context.Context, parentType, parent string) ([]*TaxCharge, error) {
	var taxes []*TaxCharge
	err := q.selectAll(ctx, &taxes, "SELECT * FROM TaxCharge WHERE ParentType=$1 AND Parent=$2 ORDER BY Idx;", parentType, parent)
	return taxes, err
}

func (q *Queries) GetSalesOrder(ctx context.Context, name string) (*SalesOrder, error) {
	so := new(SalesOrder)
	if err := q.get(ctx, so, "SELECT * FROM SalesOrder WHERE Name=$1;", name); err != nil {
		return nil, err
	}
	return so, q.loadSalesOrderChildren(ctx, so)
}

// GetSalesOrderByPONo finds the order imported for an external order code.
func (q *Queries) GetSalesOrderByPONo(ctx context.Context, poNo string) (*SalesOrder, error) {
	so := new(SalesOrder)
	if err := q.get(ctx, so, "SELECT * FROM SalesOrder WHERE PONo=$1;", poNo); err != nil {
		return nil, err
	}
	return so, q.loadSalesOrderChildren(ctx, so)
}

func (q *Queries) loadSalesOrderChildren(ctx context.Context, so *SalesOrder) error {
	if err := q.selectAll(ctx, &so.Items, "SELECT * FROM SalesOrderItem WHERE Parent=$1 ORDER BY Idx;", so.Name); err != nil {
		return err
	}
	taxes, err := q.taxes(ctx, DOCTYPE_SALES_ORDER, so.Name)
	if err != nil {
		return err
	}
	so.Taxes = taxes
	return nil
}

// UpdateSalesOrderStatus persists DocStatus and Status only; the rest of a
// submitted document is immutable.
func (q *Queries) UpdateSalesOrderStatus(ctx context.Context, so *SalesOrder) error {
	return q.exec(ctx, "UPDATE SalesOrder SET DocStatus=$1, Status=$2 WHERE Name=$3;", so.DocStatus, so.Status, so.Name)
}

func (q *Queries) CountSalesOrders(ctx context.Context) (int, error) {
	var count int
	err := q.get(ctx, &count, "SELECT COUNT(*) FROM SalesOrder;")
	return count, err
}

func (q *Queries) InsertComment(ctx context.Context, c *Comment) error {
	c.Created = q.stamp()
	return q.exec(ctx, "INSERT INTO Comment (ReferenceDoctype, ReferenceName, Content, Created) VALUES ($1, $2, $3, $4);",
		c.ReferenceDoctype, c.ReferenceName, c.Content, c.Created)
}

func (q *Queries) Comments(ctx context.Context, doctype, name string) ([]*Comment, error) {
	var comments []*Comment
	err := q.selectAll(ctx, &comments, "SELECT * FROM Comment WHERE ReferenceDoctype=$1 AND ReferenceName=$2 ORDER BY ID;", doctype, name)
	return comments, err
}
