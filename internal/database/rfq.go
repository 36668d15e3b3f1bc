package database

import (
	"context"
)

func (q *Queries) InsertMaterialRequest(ctx context.Context, mr *MaterialRequest) error {
	mr.Created = q.stamp()
	err := q.exec(ctx, `INSERT INTO MaterialRequest (Name, SalesOrder, Company, TransactionDate, ScheduleDate, DocStatus, Created)
		VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		mr.Name, mr.SalesOrder, mr.Company, mr.TransactionDate, mr.ScheduleDate, mr.DocStatus, mr.Created)
	if err != nil {
		return err
	}
	for i, line := range mr.Items {
		line.Parent = mr.Name
		line.Idx = i + 1
		err := q.exec(ctx, `INSERT INTO MaterialRequestItem (Parent, Idx, ItemCode, Qty, Warehouse, ScheduleDate)
			VALUES ($1, $2, $3, $4, $5, $6);`,
			line.Parent, line.Idx, line.ItemCode, line.Qty, line.Warehouse, line.ScheduleDate)
		if err != nil {
			return err
		}
	}
	return nil
}

func (q *Queries) InsertRequestForQuotation(ctx context.Context, rfq *RequestForQuotation) error {
	rfq.Created = q.stamp()
	err := q.exec(ctx, `INSERT INTO RequestForQuotation (Name, MaterialRequest, RFQNumber, Company, EmailTemplate, TransactionDate,
		ScheduleDate, DocStatus, Created) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
		rfq.Name, rfq.MaterialRequest, rfq.RFQNumber, rfq.Company, rfq.EmailTemplate, rfq.TransactionDate,
		rfq.ScheduleDate, rfq.DocStatus, rfq.Created)
	if err != nil {
		return err
	}
	for _, supplier := range rfq.Suppliers {
		if err := q.exec(ctx, "INSERT INTO RFQSupplier (Parent, Supplier) VALUES ($1, $2);", rfq.Name, supplier); err != nil {
			return err
		}
	}
	for i, line := range rfq.Items {
		line.Parent = rfq.Name
		line.Idx = i + 1
		err := q.exec(ctx, `INSERT INTO RFQItem (Parent, Idx, ItemCode, Qty, Warehouse, MaterialRequest)
			VALUES ($1, $2, $3, $4, $5, $6);`,
			line.Parent, line.Idx, line.ItemCode, line.Qty, line.Warehouse, line.MaterialRequest)
		if err != nil {
			return err
		}
	}
	return nil
}

// GetRequestForQuotationByNumber finds the RFQ raised for an external order code.
func (q *Queries) GetRequestForQuotationByNumber(ctx context.Context, rfqNumber string) (*RequestForQuotation, error) {
	rfq := new(RequestForQuotation)
	if err := q.get(ctx, rfq, "SELECT * FROM RequestForQuotation WHERE RFQNumber=$1 ORDER BY Name LIMIT 1;", rfqNumber); err != nil {
		return nil, err
	}
	if err := q.selectAll(ctx, &rfq.Suppliers, "SELECT Supplier FROM RFQSupplier WHERE Parent=$1 ORDER BY ID;", rfq.Name); err != nil {
		return nil, err
	}
	if err := q.selectAll(ctx, &rfq.Items, "SELECT * FROM RFQItem WHERE Parent=$1 ORDER BY Idx;", rfq.Name); err != nil {
		return nil, err
	}
	return rfq, nil
}

func (q *Queries) GetMaterialRequest(ctx context.Context, name string) (*MaterialRequest, error) {
	mr := new(MaterialRequest)
	if err := q.get(ctx, mr, "SELECT * FROM MaterialRequest WHERE Name=$1;", name); err != nil {
		return nil, err
	}
	if err := q.selectAll(ctx, &mr.Items, "SELECT * FROM MaterialRequestItem WHERE Parent=$1 ORDER BY Idx;", mr.Name); err != nil {
		return nil, err
	}
	return mr, nil
}
