package database

import (
	"context"
)

// AddressesByCustomer lists addresses of customer with the given type, by name.
func (q *Queries) AddressesByCustomer(ctx context.Context, customer, addressType string) ([]*Address, error) {
	var addresses []*Address
	err := q.selectAll(ctx, &addresses,
		"SELECT * FROM Address WHERE Customer=$1 AND AddressType=$2 ORDER BY Name;", customer, addressType)
	if err != nil {
		return nil, err
	}
	return addresses, nil
}

func (q *Queries) GetAddress(ctx context.Context, name string) (*Address, error) {
	a := new(Address)
	if err := q.get(ctx, a, "SELECT * FROM Address WHERE Name=$1;", name); err != nil {
		return nil, err
	}
	return a, nil
}

func (q *Queries) InsertAddress(ctx context.Context, a *Address) error {
	a.Modified = q.stamp()
	return q.exec(ctx, `INSERT INTO Address (Name, Title, AddressType, Line1, Line2, City, State, Pincode, Country,
		IsPrimary, IsShipping, Customer, Modified)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);`,
		a.Name, a.Title, a.AddressType, a.Line1, a.Line2, a.City, a.State, a.Pincode, a.Country,
		a.IsPrimary, a.IsShipping, a.Customer, a.Modified)
}

func (q *Queries) UpdateAddress(ctx context.Context, a *Address) error {
	a.Modified = q.stamp()
	return q.exec(ctx, `UPDATE Address SET Title=$1, AddressType=$2, Line1=$3, Line2=$4, City=$5, State=$6, Pincode=$7,
		Country=$8, IsPrimary=$9, IsShipping=$10, Customer=$11, Modified=$12 WHERE Name=$13;`,
		a.Title, a.AddressType, a.Line1, a.Line2, a.City, a.State, a.Pincode,
		a.Country, a.IsPrimary, a.IsShipping, a.Customer, a.Modified, a.Name)
}

// SetPrimaryAddress leaves name as the only primary address of customer.
func (q *Queries) SetPrimaryAddress(ctx context.Context, customer, name string) error {
	return q.exec(ctx, "UPDATE Address SET IsPrimary = (Name = $1) WHERE Customer=$2;", name, customer)
}

func (q *Queries) CountAddresses(ctx context.Context, customer string) (int, error) {
	var count int
	err := q.get(ctx, &count, "SELECT COUNT(*) FROM Address WHERE Customer=$1;", customer)
	return count, err
}
