package database

import (
	"context"
)

// ContactNameByEmail finds the contact owning email. Matching ignores case.
func (q *Queries) ContactNameByEmail(ctx context.Context, email string) (string, error) {
	var name string
	err := q.get(ctx, &name, "SELECT Contact FROM ContactEmail WHERE EmailID=$1 COLLATE NOCASE LIMIT 1;", email)
	if err != nil {
		return "", err
	}
	return name, nil
}

func (q *Queries) GetContact(ctx context.Context, name string) (*Contact, error) {
	c := new(Contact)
	if err := q.get(ctx, c, "SELECT * FROM Contact WHERE Name=$1;", name); err != nil {
		return nil, err
	}
	return c, nil
}

func (q *Queries) InsertContact(ctx context.Context, c *Contact) error {
	c.Modified = q.stamp()
	return q.exec(ctx, `INSERT INTO Contact (Name, FirstName, LastName, IsPrimaryContact, IsBillingContact, Modified)
		VALUES ($1, $2, $3, $4, $5, $6);`,
		c.Name, c.FirstName, c.LastName, c.IsPrimaryContact, c.IsBillingContact, c.Modified)
}

func (q *Queries) UpdateContact(ctx context.Context, c *Contact) error {
	c.Modified = q.stamp()
	return q.exec(ctx, `UPDATE Contact SET FirstName=$1, LastName=$2, IsPrimaryContact=$3, IsBillingContact=$4, Modified=$5
		WHERE Name=$6;`,
		c.FirstName, c.LastName, c.IsPrimaryContact, c.IsBillingContact, c.Modified, c.Name)
}

func (q *Queries) InsertContactEmail(ctx context.Context, e *ContactEmail) error {
	return q.exec(ctx, "INSERT INTO ContactEmail (Contact, EmailID, IsPrimary) VALUES ($1, $2, $3);",
		e.Contact, e.EmailID, e.IsPrimary)
}

func (q *Queries) ContactEmails(ctx context.Context, contact string) ([]*ContactEmail, error) {
	var emails []*ContactEmail
	if err := q.selectAll(ctx, &emails, "SELECT * FROM ContactEmail WHERE Contact=$1 ORDER BY ID;", contact); err != nil {
		return nil, err
	}
	return emails, nil
}

func (q *Queries) InsertContactPhone(ctx context.Context, p *ContactPhone) error {
	return q.exec(ctx, "INSERT INTO ContactPhone (Contact, Phone, IsPrimaryPhone) VALUES ($1, $2, $3);",
		p.Contact, p.Phone, p.IsPrimaryPhone)
}

func (q *Queries) ContactPhones(ctx context.Context, contact string) ([]*ContactPhone, error) {
	var phones []*ContactPhone
	if err := q.selectAll(ctx, &phones, "SELECT * FROM ContactPhone WHERE Contact=$1 ORDER BY ID;", contact); err != nil {
		return nil, err
	}
	return phones, nil
}

// LinkContact records that contact belongs to customer. Linking twice is a no-op.
func (q *Queries) LinkContact(ctx context.Context, contact, customer string) error {
	return q.exec(ctx, "INSERT OR IGNORE INTO ContactLink (Contact, Customer) VALUES ($1, $2);", contact, customer)
}

// CustomerNamesByContact lists customers linked to contact, oldest link first.
func (q *Queries) CustomerNamesByContact(ctx context.Context, contact string) ([]string, error) {
	var names []string
	if err := q.selectAll(ctx, &names, "SELECT Customer FROM ContactLink WHERE Contact=$1 ORDER BY ID;", contact); err != nil {
		return nil, err
	}
	return names, nil
}

func (q *Queries) CountContacts(ctx context.Context) (int, error) {
	var count int
	err := q.get(ctx, &count, "SELECT COUNT(*) FROM Contact;")
	return count, err
}
