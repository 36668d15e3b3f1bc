package database

import (
	"context"
)

func (q *Queries) GetCustomer(ctx context.Context, name string) (*Customer, error) {
	c := new(Customer)
	if err := q.get(ctx, c, "SELECT * FROM Customer WHERE Name=$1;", name); err != nil {
		return nil, err
	}
	return c, nil
}

func (q *Queries) InsertCustomer(ctx context.Context, c *Customer) error {
	c.Modified = q.stamp()
	return q.exec(ctx, `INSERT INTO Customer (Name, CustomerName, CustomerType, TaxCategory, PrimaryContact, PrimaryAddress, Modified)
		VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		c.Name, c.CustomerName, c.CustomerType, c.TaxCategory, c.PrimaryContact, c.PrimaryAddress, c.Modified)
}

func (q *Queries) UpdateCustomer(ctx context.Context, c *Customer) error {
	c.Modified = q.stamp()
	return q.exec(ctx, `UPDATE Customer SET CustomerName=$1, CustomerType=$2, TaxCategory=$3, PrimaryContact=$4,
		PrimaryAddress=$5, Modified=$6 WHERE Name=$7;`,
		c.CustomerName, c.CustomerType, c.TaxCategory, c.PrimaryContact, c.PrimaryAddress, c.Modified, c.Name)
}

func (q *Queries) CountCustomers(ctx context.Context) (int, error) {
	var count int
	err := q.get(ctx, &count, "SELECT COUNT(*) FROM Customer;")
	return count, err
}
