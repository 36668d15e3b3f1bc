package woo

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	STATUS_PENDING    = "pending"
	STATUS_PROCESSING = "processing"
	STATUS_ON_HOLD    = "on-hold"
	STATUS_FAILED     = "failed"
	STATUS_CANCELLED  = "cancelled"
	STATUS_COMPLETED  = "completed"
	STATUS_REFUNDED   = "refunded"
)

const dateLayout = "2006-01-02"

// Number is a WooCommerce amount. The REST payload sends most of them as
// strings ("10.00"), some as bare numbers, and sometimes "".
type Number struct {
	decimal.Decimal
}

func (n *Number) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		n.Decimal = decimal.Zero
		return nil
	}
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unquoted)
	}
	if s == "" {
		n.Decimal = decimal.Zero
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return errors.Wrapf(err, "invalid amount %s", string(b))
	}
	n.Decimal = d
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(n.String())), nil
}

func NewNumber(s string) Number {
	return Number{decimal.RequireFromString(s)}
}

type Address struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Company   string `json:"company"`
	Address1  string `json:"address_1"`
	Address2  string `json:"address_2"`
	City      string `json:"city"`
	State     string `json:"state"`
	Postcode  string `json:"postcode"`
	Country   string `json:"country"`
}

type Billing struct {
	Address
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone"`
}

type Shipping struct {
	Address
	Phone string `json:"phone"`
}

type MetaData struct {
	ID    int             `json:"id"`
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

// StringValue returns the value of a string entry, or the raw JSON text otherwise.
func (m MetaData) StringValue() string {
	var s string
	if err := json.Unmarshal(m.Value, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(m.Value))
}

type LineItem struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	ProductID   int        `json:"product_id"`
	VariationID int        `json:"variation_id"`
	Quantity    Number     `json:"quantity" validate:"positive_amount"`
	TaxClass    string     `json:"tax_class"`
	Subtotal    Number     `json:"subtotal"`
	SubtotalTax Number     `json:"subtotal_tax"`
	Total       Number     `json:"total"`
	TotalTax    Number     `json:"total_tax"`
	Sku         string     `json:"sku" validate:"required_without=ProductID"`
	MetaData    []MetaData `json:"meta_data"`

	// ItemCode is the resolved catalog code, set by ResolveItems.
	ItemCode string `json:"-"`
}

// CatalogCode is the sku, or the product id when the product has no sku.
func (l *LineItem) CatalogCode() string {
	if code := strings.TrimSpace(l.Sku); code != "" {
		return code
	}
	if l.ProductID != 0 {
		return strconv.Itoa(l.ProductID)
	}
	return ""
}

type CouponLine struct {
	ID       int    `json:"id"`
	Code     string `json:"code"`
	Discount Number `json:"discount"`
}

type ShippingLine struct {
	ID          int    `json:"id"`
	MethodTitle string `json:"method_title"`
	MethodID    string `json:"method_id"`
	Total       Number `json:"total"`
	TotalTax    Number `json:"total_tax"`
}

// Order is the subset of the WooCommerce order resource this service consumes.
type Order struct {
	ID                 int            `json:"id"`
	ParentID           int            `json:"parent_id"`
	Number             string         `json:"number"`
	OrderKey           string         `json:"order_key" validate:"required,order_code"`
	Status             string         `json:"status"`
	Currency           string         `json:"currency" validate:"required,alpha"`
	DateCreated        string         `json:"date_created" validate:"required,woo_date"`
	DiscountTotal      Number         `json:"discount_total"`
	DiscountTax        Number         `json:"discount_tax"`
	ShippingTotal      Number         `json:"shipping_total"`
	ShippingTax        Number         `json:"shipping_tax"`
	CartTax            Number         `json:"cart_tax"`
	Total              Number         `json:"total"`
	TotalTax           Number         `json:"total_tax"`
	PricesIncludeTax   bool           `json:"prices_include_tax"`
	CustomerID         int            `json:"customer_id"`
	CustomerNote       string         `json:"customer_note"`
	PaymentMethod      string         `json:"payment_method"`
	PaymentMethodTitle string         `json:"payment_method_title"`
	Billing            Billing        `json:"billing"`
	Shipping           Shipping       `json:"shipping"`
	LineItems          []*LineItem    `json:"line_items" validate:"dive,required"`
	ShippingLines      []ShippingLine `json:"shipping_lines"`
	CouponLines        []CouponLine   `json:"coupon_lines"`
}

// Code is the order's correlation code: the part of order_key after its last underscore.
func (o *Order) Code() string {
	key := strings.TrimSpace(o.OrderKey)
	if i := strings.LastIndex(key, "_"); i >= 0 {
		return key[i+1:]
	}
	return key
}

// CreatedDate is the calendar day of date_created.
func (o *Order) CreatedDate() (time.Time, error) {
	t, err := parseDate(strings.SplitN(strings.TrimSpace(o.DateCreated), "T", 2)[0])
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid date_created %q", o.DateCreated)
	}
	return t, nil
}

func parseDate(day string) (time.Time, error) {
	return time.Parse(dateLayout, day)
}

// CouponCode is the code of the first coupon line, if any.
func (o *Order) CouponCode() string {
	if len(o.CouponLines) == 0 {
		return ""
	}
	return o.CouponLines[0].Code
}

// Validate rejects payloads that the pipeline cannot process, before any write.
func (o *Order) Validate() error {
	if err := orderValidate.Struct(o); err != nil {
		return validationError(o, err)
	}
	return nil
}
