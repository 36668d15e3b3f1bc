package database

import (
	"github.com/shopspring/decimal"
)

// DocStatus follows the usual ERP convention: 0 draft, 1 submitted, 2 cancelled.
type DocStatus int

const (
	DocStatusDraft     DocStatus = 0
	DocStatusSubmitted DocStatus = 1
	DocStatusCancelled DocStatus = 2
)

const (
	SALES_ORDER_STATUS_DRAFT   = "Draft"
	SALES_ORDER_STATUS_TO_BILL = "To Deliver and Bill"
	SALES_ORDER_STATUS_ON_HOLD = "On Hold"
	SALES_ORDER_STATUS_CLOSED  = "Closed"
)

const (
	DOCTYPE_SALES_ORDER   = "Sales Order"
	DOCTYPE_SALES_INVOICE = "Sales Invoice"
)

type Contact struct {
	Name             string `db:"Name"`
	FirstName        string `db:"FirstName"`
	LastName         string `db:"LastName"`
	IsPrimaryContact bool   `db:"IsPrimaryContact"`
	IsBillingContact bool   `db:"IsBillingContact"`
	Modified         string `db:"Modified"`
}

type ContactEmail struct {
	ID        int    `db:"ID"`
	Contact   string `db:"Contact"`
	EmailID   string `db:"EmailID"`
	IsPrimary bool   `db:"IsPrimary"`
}

type ContactPhone struct {
	ID             int    `db:"ID"`
	Contact        string `db:"Contact"`
	Phone          string `db:"Phone"`
	IsPrimaryPhone bool   `db:"IsPrimaryPhone"`
}

type Customer struct {
	Name           string `db:"Name"`
	CustomerName   string `db:"CustomerName"`
	CustomerType   string `db:"CustomerType"`
	TaxCategory    string `db:"TaxCategory"`
	PrimaryContact string `db:"PrimaryContact"`
	PrimaryAddress string `db:"PrimaryAddress"`
	Modified       string `db:"Modified"`
}

type Address struct {
	Name        string `db:"Name"`
	Title       string `db:"Title"`
	AddressType string `db:"AddressType"`
	Line1       string `db:"Line1"`
	Line2       string `db:"Line2"`
	City        string `db:"City"`
	State       string `db:"State"`
	Pincode     string `db:"Pincode"`
	Country     string `db:"Country"`
	IsPrimary   bool   `db:"IsPrimary"`
	IsShipping  bool   `db:"IsShipping"`
	Customer    string `db:"Customer"`
	Modified    string `db:"Modified"`
}

type Warehouse struct {
	Name    string `db:"Name"`
	Company string `db:"Company"`
}

type Item struct {
	Code             string `db:"Code"`
	Name             string `db:"Name"`
	Description      string `db:"Description"`
	ItemGroup        string `db:"ItemGroup"`
	StockUOM         string `db:"StockUOM"`
	SalesUOM         string `db:"SalesUOM"`
	IsStockItem      bool   `db:"IsStockItem"`
	HasVariants      bool   `db:"HasVariants"`
	VariantOf        string `db:"VariantOf"`
	TaxTemplate      string `db:"TaxTemplate"`
	DefaultWarehouse string `db:"DefaultWarehouse"`
	Company          string `db:"Company"`
	Created          string `db:"Created"`

	// Attributes holds the attribute names of a template item.
	Attributes []string `db:"-"`
	// VariantAttributes holds the resolved values of a variant.
	VariantAttributes []ItemVariantAttribute `db:"-"`
}

type ItemVariantAttribute struct {
	ID             int    `db:"ID"`
	Item           string `db:"Item"`
	VariantOf      string `db:"VariantOf"`
	Attribute      string `db:"Attribute"`
	AttributeValue string `db:"AttributeValue"`
	Idx            int    `db:"Idx"`
}

type SalesOrder struct {
	Name                 string          `db:"Name"`
	NamingSeries         string          `db:"NamingSeries"`
	Customer             string          `db:"Customer"`
	CustomerAddress      string          `db:"CustomerAddress"`
	ContactPerson        string          `db:"ContactPerson"`
	Company              string          `db:"Company"`
	Currency             string          `db:"Currency"`
	ConversionRate       decimal.Decimal `db:"ConversionRate"`
	PONo                 string          `db:"PONo"`
	TransactionDate      string          `db:"TransactionDate"`
	PODate               string          `db:"PODate"`
	DeliveryDate         string          `db:"DeliveryDate"`
	CouponCode           string          `db:"CouponCode"`
	DiscountAmount       decimal.Decimal `db:"DiscountAmount"`
	PaymentTermsTemplate string          `db:"PaymentTermsTemplate"`
	Source               string          `db:"Source"`
	TaxCategory          string          `db:"TaxCategory"`
	TotalQty             decimal.Decimal `db:"TotalQty"`
	NetTotal             decimal.Decimal `db:"NetTotal"`
	TotalTaxesAndCharges decimal.Decimal `db:"TotalTaxesAndCharges"`
	GrandTotal           decimal.Decimal `db:"GrandTotal"`
	DocStatus            DocStatus       `db:"DocStatus"`
	Status               string          `db:"Status"`
	OrderJSON            string          `db:"OrderJSON"`
	Created              string          `db:"Created"`

	Items []*SalesOrderItem `db:"-"`
	Taxes []*TaxCharge      `db:"-"`
}

type SalesOrderItem struct {
	ID              int             `db:"ID"`
	Parent          string          `db:"Parent"`
	Idx             int             `db:"Idx"`
	ItemCode        string          `db:"ItemCode"`
	ItemName        string          `db:"ItemName"`
	Qty             decimal.Decimal `db:"Qty"`
	Rate            decimal.Decimal `db:"Rate"`
	Amount          decimal.Decimal `db:"Amount"`
	DeliveryDate    string          `db:"DeliveryDate"`
	Warehouse       string          `db:"Warehouse"`
	ItemTaxTemplate string          `db:"ItemTaxTemplate"`
	TaxAmount       decimal.Decimal `db:"TaxAmount"`
}

// TaxCharge is a row of the taxes and charges table of a sales document.
type TaxCharge struct {
	ID          int             `db:"ID"`
	ParentType  string          `db:"ParentType"`
	Parent      string          `db:"Parent"`
	Idx         int             `db:"Idx"`
	ChargeType  string          `db:"ChargeType"`
	AccountHead string          `db:"AccountHead"`
	Description string          `db:"Description"`
	TaxAmount   decimal.Decimal `db:"TaxAmount"`
	CostCenter  string          `db:"CostCenter"`
}

type Comment struct {
	ID               int    `db:"ID"`
	ReferenceDoctype string `db:"ReferenceDoctype"`
	ReferenceName    string `db:"ReferenceName"`
	Content          string `db:"Content"`
	Created          string `db:"Created"`
}

type SalesInvoice struct {
	Name                 string          `db:"Name"`
	SalesOrder           string          `db:"SalesOrder"`
	Customer             string          `db:"Customer"`
	PONo                 string          `db:"PONo"`
	Company              string          `db:"Company"`
	Currency             string          `db:"Currency"`
	ConversionRate       decimal.Decimal `db:"ConversionRate"`
	PostingDate          string          `db:"PostingDate"`
	DiscountAmount       decimal.Decimal `db:"DiscountAmount"`
	NetTotal             decimal.Decimal `db:"NetTotal"`
	TotalTaxesAndCharges decimal.Decimal `db:"TotalTaxesAndCharges"`
	GrandTotal           decimal.Decimal `db:"GrandTotal"`
	DocStatus            DocStatus       `db:"DocStatus"`
	Created              string          `db:"Created"`

	Items []*SalesInvoiceItem `db:"-"`
	Taxes []*TaxCharge        `db:"-"`
}

type SalesInvoiceItem struct {
	ID              int             `db:"ID"`
	Parent          string          `db:"Parent"`
	Idx             int             `db:"Idx"`
	ItemCode        string          `db:"ItemCode"`
	ItemName        string          `db:"ItemName"`
	Qty             decimal.Decimal `db:"Qty"`
	Rate            decimal.Decimal `db:"Rate"`
	Amount          decimal.Decimal `db:"Amount"`
	ItemTaxTemplate string          `db:"ItemTaxTemplate"`
	SalesOrder      string          `db:"SalesOrder"`
}

type MaterialRequest struct {
	Name            string    `db:"Name"`
	SalesOrder      string    `db:"SalesOrder"`
	Company         string    `db:"Company"`
	TransactionDate string    `db:"TransactionDate"`
	ScheduleDate    string    `db:"ScheduleDate"`
	DocStatus       DocStatus `db:"DocStatus"`
	Created         string    `db:"Created"`

	Items []*MaterialRequestItem `db:"-"`
}

type MaterialRequestItem struct {
	ID           int             `db:"ID"`
	Parent       string          `db:"Parent"`
	Idx          int             `db:"Idx"`
	ItemCode     string          `db:"ItemCode"`
	Qty          decimal.Decimal `db:"Qty"`
	Warehouse    string          `db:"Warehouse"`
	ScheduleDate string          `db:"ScheduleDate"`
}

type RequestForQuotation struct {
	Name            string    `db:"Name"`
	MaterialRequest string    `db:"MaterialRequest"`
	RFQNumber       string    `db:"RFQNumber"`
	Company         string    `db:"Company"`
	EmailTemplate   string    `db:"EmailTemplate"`
	TransactionDate string    `db:"TransactionDate"`
	ScheduleDate    string    `db:"ScheduleDate"`
	DocStatus       DocStatus `db:"DocStatus"`
	Created         string    `db:"Created"`

	Suppliers []string   `db:"-"`
	Items     []*RFQItem `db:"-"`
}

type RFQItem struct {
	ID              int             `db:"ID"`
	Parent          string          `db:"Parent"`
	Idx             int             `db:"Idx"`
	ItemCode        string          `db:"ItemCode"`
	Qty             decimal.Decimal `db:"Qty"`
	Warehouse       string          `db:"Warehouse"`
	MaterialRequest string          `db:"MaterialRequest"`
}

type ErrorLog struct {
	ID      string `db:"ID"`
	Title   string `db:"Title"`
	Error   string `db:"Error"`
	Created string `db:"Created"`
}
