package woo

import (
	"context"
	"strings"

	"WooWithErp/internal/database"
	"WooWithErp/pkg/logging"

	"github.com/pmezard/go-difflib/difflib"
)

const (
	ADDRESS_TYPE_BILLING  = "Billing"
	ADDRESS_TYPE_SHIPPING = "Shipping"
)

// addresses at or above this score are treated as the same address
const addressMatchThreshold = 0.8

// SameAddress compares first line, postcode and country. Any postcode or
// country difference is a mismatch. When the new address lacks one of the
// three fields the existing record is kept.
func SameAddress(incoming, existing *database.Address) bool {
	line1 := strings.ToLower(strings.TrimSpace(incoming.Line1))
	if line1 == "" || strings.TrimSpace(incoming.Pincode) == "" || strings.TrimSpace(incoming.Country) == "" {
		return true
	}

	score := similarity(line1, strings.ToLower(strings.TrimSpace(existing.Line1)))
	if compact(incoming.Pincode) != compact(existing.Pincode) {
		score = 0
	}
	if compact(incoming.Country) != compact(existing.Country) {
		score = 0
	}
	return score >= addressMatchThreshold
}

// similarity is difflib's ratio over the characters of a and b.
func similarity(a, b string) float64 {
	return difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, "")).Ratio()
}

func compact(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "")
}

// resolveAddresses creates or updates the billing and shipping addresses of
// customer and returns the name of the billing address ("" if none).
func (r *Reconciler) resolveAddresses(ctx context.Context, q *database.Queries, order *Order, customer *database.Customer) (string, error) {
	logger := logging.GetLogger()

	shippingBlank := strings.TrimSpace(order.Shipping.Address1) == ""
	blocks := []struct {
		addressType string
		address     Address
	}{
		{ADDRESS_TYPE_BILLING, order.Billing.Address},
		{ADDRESS_TYPE_SHIPPING, order.Shipping.Address},
	}

	var billing string
	for _, block := range blocks {
		if strings.TrimSpace(block.address.Address1) == "" {
			continue
		}

		data := &database.Address{
			Title:       customer.CustomerName,
			AddressType: block.addressType,
			Line1:       strings.TrimSpace(block.address.Address1),
			Line2:       strings.TrimSpace(block.address.Address2),
			City:        strings.TrimSpace(block.address.City),
			State:       strings.TrimSpace(block.address.State),
			Pincode:     strings.TrimSpace(block.address.Postcode),
			Country:     r.country(block.address.Country),
			IsPrimary:   block.addressType == ADDRESS_TYPE_BILLING,
			IsShipping:  block.addressType == ADDRESS_TYPE_SHIPPING || shippingBlank,
			Customer:    customer.Name,
		}

		existing, err := q.AddressesByCustomer(ctx, customer.Name, block.addressType)
		if err != nil {
			return "", err
		}

		matched := false
		for _, e := range existing {
			if SameAddress(data, e) {
				data.Name = e.Name
				if err := q.UpdateAddress(ctx, data); err != nil {
					return "", err
				}
				logger.Debugf("%s address %s updated", block.addressType, data.Name)
				matched = true
				break
			}
		}
		if !matched {
			name, err := q.UniqueName(ctx, database.TableAddress, customer.CustomerName+"-"+block.addressType)
			if err != nil {
				return "", err
			}
			data.Name = name
			if err := q.InsertAddress(ctx, data); err != nil {
				return "", err
			}
			logger.Debugf("%s address %s created", block.addressType, data.Name)
		}

		if block.addressType == ADDRESS_TYPE_BILLING {
			billing = data.Name
		}
	}
	return billing, nil
}

func (r *Reconciler) country(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return r.settings.DefaultCountry
	}
	return code
}
