package woo

import (
	"context"
	"strings"

	"WooWithErp/internal/database"
	"WooWithErp/pkg/logging"

	"github.com/pkg/errors"
)

const (
	CUSTOMER_TYPE_COMPANY    = "Company"
	CUSTOMER_TYPE_INDIVIDUAL = "Individual"
)

// ResolveCustomer gets or creates the contact, customer and addresses for
// the billing details of order.
func (r *Reconciler) ResolveCustomer(ctx context.Context, q *database.Queries, order *Order) (*database.Customer, error) {
	logger := logging.GetLogger()
	logger.Debug("Start ResolveCustomer")
	defer logger.Debug("End ResolveCustomer")

	contact, err := r.resolveContact(ctx, q, order)
	if err != nil {
		return nil, errors.Wrap(err, "failed resolveContact")
	}

	billing := order.Billing
	customerType := CUSTOMER_TYPE_INDIVIDUAL
	customerName := fullName(billing.FirstName, billing.LastName)
	if company := strings.TrimSpace(billing.Company); company != "" {
		customerType = CUSTOMER_TYPE_COMPANY
		customerName = company
	}
	if customerName == "" {
		customerName = strings.TrimSpace(billing.Email)
	}

	names, err := q.CustomerNamesByContact(ctx, contact.Name)
	if err != nil {
		return nil, err
	}

	var customer *database.Customer
	if len(names) > 0 {
		customer, err = q.GetCustomer(ctx, names[0])
		if err != nil {
			return nil, errors.Wrapf(err, "failed GetCustomer(%s)", names[0])
		}
		customer.CustomerName = customerName
		customer.CustomerType = customerType
		customer.TaxCategory = r.settings.CustomerTaxCategory
		customer.PrimaryContact = contact.Name
		logger.Infof("Customer %s found by contact %s", customer.Name, contact.Name)
	} else {
		name, err := q.UniqueName(ctx, database.TableCustomer, customerName)
		if err != nil {
			return nil, err
		}
		customer = &database.Customer{
			Name:           name,
			CustomerName:   customerName,
			CustomerType:   customerType,
			TaxCategory:    r.settings.CustomerTaxCategory,
			PrimaryContact: contact.Name,
		}
		if err := q.InsertCustomer(ctx, customer); err != nil {
			return nil, errors.Wrapf(err, "failed InsertCustomer(%s)", name)
		}
		if err := q.LinkContact(ctx, contact.Name, customer.Name); err != nil {
			return nil, err
		}
		logger.Infof("Customer %s created", customer.Name)
	}

	primary, err := r.resolveAddresses(ctx, q, order, customer)
	if err != nil {
		return nil, errors.Wrap(err, "failed resolveAddresses")
	}
	if primary != "" {
		customer.PrimaryAddress = primary
		if err := q.SetPrimaryAddress(ctx, customer.Name, primary); err != nil {
			return nil, err
		}
	}

	if err := q.UpdateCustomer(ctx, customer); err != nil {
		return nil, errors.Wrapf(err, "failed UpdateCustomer(%s)", customer.Name)
	}
	return customer, nil
}

// resolveContact finds the contact by billing email or creates it.
func (r *Reconciler) resolveContact(ctx context.Context, q *database.Queries, order *Order) (*database.Contact, error) {
	billing := order.Billing
	email := strings.TrimSpace(billing.Email)
	phone := strings.TrimSpace(billing.Phone)

	name, err := q.ContactNameByEmail(ctx, email)
	switch {
	case err == nil:
		contact, err := q.GetContact(ctx, name)
		if err != nil {
			return nil, err
		}
		contact.FirstName = strings.TrimSpace(billing.FirstName)
		contact.LastName = strings.TrimSpace(billing.LastName)
		contact.IsPrimaryContact = true
		contact.IsBillingContact = true
		if err := q.UpdateContact(ctx, contact); err != nil {
			return nil, err
		}
		if err := r.addPhone(ctx, q, contact.Name, phone); err != nil {
			return nil, err
		}
		return contact, nil

	case database.IsNotFound(err):
		base := fullName(billing.FirstName, billing.LastName)
		if base == "" {
			base = email
		}
		name, err := q.UniqueName(ctx, database.TableContact, base)
		if err != nil {
			return nil, err
		}
		contact := &database.Contact{
			Name:             name,
			FirstName:        strings.TrimSpace(billing.FirstName),
			LastName:         strings.TrimSpace(billing.LastName),
			IsPrimaryContact: true,
			IsBillingContact: true,
		}
		if err := q.InsertContact(ctx, contact); err != nil {
			return nil, err
		}
		if err := q.InsertContactEmail(ctx, &database.ContactEmail{Contact: name, EmailID: email, IsPrimary: true}); err != nil {
			return nil, err
		}
		if phone != "" {
			if err := q.InsertContactPhone(ctx, &database.ContactPhone{Contact: name, Phone: phone, IsPrimaryPhone: true}); err != nil {
				return nil, err
			}
		}
		logging.GetLogger().Infof("Contact %s created for %s", name, email)
		return contact, nil

	default:
		return nil, err
	}
}

func (r *Reconciler) addPhone(ctx context.Context, q *database.Queries, contact, phone string) error {
	if phone == "" {
		return nil
	}
	phones, err := q.ContactPhones(ctx, contact)
	if err != nil {
		return err
	}
	for _, p := range phones {
		if p.Phone == phone {
			return nil
		}
	}
	return q.InsertContactPhone(ctx, &database.ContactPhone{Contact: contact, Phone: phone, IsPrimaryPhone: len(phones) == 0})
}

func fullName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}
