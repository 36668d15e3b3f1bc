package database

import (
	"context"
)

// GetItem loads an item with its template attributes or variant values.
func (q *Queries) GetItem(ctx context.Context, code string) (*Item, error) {
	item := new(Item)
	if err := q.get(ctx, item, "SELECT * FROM Item WHERE Code=$1;", code); err != nil {
		return nil, err
	}
	if err := q.loadAttributes(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetTemplateItem loads code only if it is a template (has variants).
func (q *Queries) GetTemplateItem(ctx context.Context, code string) (*Item, error) {
	item := new(Item)
	if err := q.get(ctx, item, "SELECT * FROM Item WHERE Code=$1 AND HasVariants=1;", code); err != nil {
		return nil, err
	}
	if err := q.loadAttributes(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (q *Queries) loadAttributes(ctx context.Context, item *Item) error {
	if item.HasVariants {
		return q.selectAll(ctx, &item.Attributes, "SELECT Attribute FROM ItemAttribute WHERE Item=$1 ORDER BY ID;", item.Code)
	}
	if item.VariantOf != "" {
		return q.selectAll(ctx, &item.VariantAttributes,
			"SELECT * FROM ItemVariantAttribute WHERE Item=$1 ORDER BY Idx;", item.Code)
	}
	return nil
}

// InsertItem creates the item together with its attribute rows.
func (q *Queries) InsertItem(ctx context.Context, item *Item) error {
	item.Created = q.stamp()
	err := q.exec(ctx, `INSERT INTO Item (Code, Name, Description, ItemGroup, StockUOM, SalesUOM, IsStockItem, HasVariants,
		VariantOf, TaxTemplate, DefaultWarehouse, Company, Created)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);`,
		item.Code, item.Name, item.Description, item.ItemGroup, item.StockUOM, item.SalesUOM, item.IsStockItem,
		item.HasVariants, item.VariantOf, item.TaxTemplate, item.DefaultWarehouse, item.Company, item.Created)
	if err != nil {
		return err
	}

	for _, attribute := range item.Attributes {
		if err := q.exec(ctx, "INSERT INTO ItemAttribute (Item, Attribute) VALUES ($1, $2);", item.Code, attribute); err != nil {
			return err
		}
	}
	for i := range item.VariantAttributes {
		a := &item.VariantAttributes[i]
		a.Item = item.Code
		a.Idx = i + 1
		err := q.exec(ctx, `INSERT INTO ItemVariantAttribute (Item, VariantOf, Attribute, AttributeValue, Idx)
			VALUES ($1, $2, $3, $4, $5);`, a.Item, a.VariantOf, a.Attribute, a.AttributeValue, a.Idx)
		if err != nil {
			return err
		}
	}
	return nil
}

// SaveTemplateItem creates or replaces a template item and its attribute names.
func (q *Queries) SaveTemplateItem(ctx context.Context, item *Item) error {
	item.HasVariants = true
	if err := q.exec(ctx, "DELETE FROM ItemAttribute WHERE Item=$1;", item.Code); err != nil {
		return err
	}
	if err := q.exec(ctx, "DELETE FROM Item WHERE Code=$1;", item.Code); err != nil {
		return err
	}
	return q.InsertItem(ctx, item)
}

func (q *Queries) CountItems(ctx context.Context) (int, error) {
	var count int
	err := q.get(ctx, &count, "SELECT COUNT(*) FROM Item;")
	return count, err
}

func (q *Queries) SaveWarehouse(ctx context.Context, w *Warehouse) error {
	return q.exec(ctx, "INSERT OR REPLACE INTO Warehouse (Name, Company) VALUES ($1, $2);", w.Name, w.Company)
}

// DefaultWarehouse returns the company's "Stores" warehouse.
func (q *Queries) DefaultWarehouse(ctx context.Context, company string) (string, error) {
	var name string
	err := q.get(ctx, &name, "SELECT Name FROM Warehouse WHERE Company=$1 AND Name LIKE 'Stores%' ORDER BY Name LIMIT 1;", company)
	if err != nil {
		return "", err
	}
	return name, nil
}
