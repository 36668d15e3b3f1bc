package database

const DB_SCHEMA = `CREATE TABLE IF NOT EXISTS Version (
	ID integer PRIMARY KEY AUTOINCREMENT,
	Name text,
	Version integer
);

CREATE TABLE IF NOT EXISTS Series (
	Prefix text PRIMARY KEY,
	Current integer NOT NULL
);

CREATE TABLE IF NOT EXISTS Contact (
	Name text PRIMARY KEY,
	FirstName text NOT NULL DEFAULT '',
	LastName text NOT NULL DEFAULT '',
	IsPrimaryContact integer NOT NULL DEFAULT 0,
	IsBillingContact integer NOT NULL DEFAULT 0,
	Modified text NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS ContactEmail (
	ID integer PRIMARY KEY AUTOINCREMENT,
	Contact text NOT NULL,
	EmailID text NOT NULL COLLATE NOCASE UNIQUE,
	IsPrimary integer NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS ContactPhone (
	ID integer PRIMARY KEY AUTOINCREMENT,
	Contact text NOT NULL,
	Phone text NOT NULL,
	IsPrimaryPhone integer NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS ContactLink (
	ID integer PRIMARY KEY AUTOINCREMENT,
	Contact text NOT NULL,
	Customer text NOT NULL,
	UNIQUE (Contact, Customer)
);

CREATE TABLE IF NOT EXISTS Customer (
	Name text PRIMARY KEY,
	CustomerName text NOT NULL,
	CustomerType text NOT NULL,
	TaxCategory text NOT NULL DEFAULT '',
	PrimaryContact text NOT NULL DEFAULT '',
	PrimaryAddress text NOT NULL DEFAULT '',
	Modified text NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS Address (
	Name text PRIMARY KEY,
	Title text NOT NULL DEFAULT '',
	AddressType text NOT NULL,
	Line1 text NOT NULL DEFAULT '',
	Line2 text NOT NULL DEFAULT '',
	City text NOT NULL DEFAULT '',
	State text NOT NULL DEFAULT '',
	Pincode text NOT NULL DEFAULT '',
	Country text NOT NULL DEFAULT '',
	IsPrimary integer NOT NULL DEFAULT 0,
	IsShipping integer NOT NULL DEFAULT 0,
	Customer text NOT NULL,
	Modified text NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS AddressCustomer ON Address (Customer, AddressType);

CREATE TABLE IF NOT EXISTS Warehouse (
	Name text PRIMARY KEY,
	Company text NOT NULL
);

CREATE TABLE IF NOT EXISTS Item (
	Code text PRIMARY KEY,
	Name text NOT NULL,
	Description text NOT NULL DEFAULT '',
	ItemGroup text NOT NULL DEFAULT '',
	StockUOM text NOT NULL DEFAULT '',
	SalesUOM text NOT NULL DEFAULT '',
	IsStockItem integer NOT NULL DEFAULT 0,
	HasVariants integer NOT NULL DEFAULT 0,
	VariantOf text NOT NULL DEFAULT '',
	TaxTemplate text NOT NULL DEFAULT '',
	DefaultWarehouse text NOT NULL DEFAULT '',
	Company text NOT NULL DEFAULT '',
	Created text NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS ItemAttribute (
	ID integer PRIMARY KEY AUTOINCREMENT,
	Item text NOT NULL,
	Attribute text NOT NULL,
	UNIQUE (Item, Attribute)
);

CREATE TABLE IF NOT EXISTS ItemVariantAttribute (
	ID integer PRIMARY KEY AUTOINCREMENT,
	Item text NOT NULL,
	VariantOf text NOT NULL,
	Attribute text NOT NULL,
	AttributeValue text NOT NULL,
	Idx integer NOT NULL
);

CREATE TABLE IF NOT EXISTS SalesOrder (
	Name text PRIMARY KEY,
	NamingSeries text NOT NULL,
	Customer text NOT NULL,
	CustomerAddress text NOT NULL DEFAULT '',
	ContactPerson text NOT NULL DEFAULT '',
	Company text NOT NULL,
	Currency text NOT NULL,
	ConversionRate text NOT NULL,
	PONo text NOT NULL UNIQUE,
	TransactionDate text NOT NULL,
	PODate text NOT NULL,
	DeliveryDate text NOT NULL,
	CouponCode text NOT NULL DEFAULT '',
	DiscountAmount text NOT NULL,
	PaymentTermsTemplate text NOT NULL DEFAULT '',
	Source text NOT NULL DEFAULT '',
	TaxCategory text NOT NULL DEFAULT '',
	TotalQty text NOT NULL,
	NetTotal text NOT NULL,
	TotalTaxesAndCharges text NOT NULL,
	GrandTotal text NOT NULL,
	DocStatus integer NOT NULL DEFAULT 0,
	Status text NOT NULL,
	OrderJSON text NOT NULL DEFAULT '',
	Created text NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS SalesOrderItem (
	ID integer PRIMARY KEY AUTOINCREMENT,
	Parent text NOT NULL,
	Idx integer NOT NULL,
	ItemCode text NOT NULL,
	ItemName text NOT NULL,
	Qty text NOT NULL,
	Rate text NOT NULL,
	Amount text NOT NULL,
	DeliveryDate text NOT NULL,
	Warehouse text NOT NULL DEFAULT '',
	ItemTaxTemplate text NOT NULL DEFAULT '',
	TaxAmount text NOT NULL
);

CREATE TABLE IF NOT EXISTS TaxCharge (
	ID integer PRIMARY KEY AUTOINCREMENT,
	ParentType text NOT NULL,
	Parent text NOT NULL,
	Idx integer NOT NULL,
	ChargeType text NOT NULL,
	AccountHead text NOT NULL,
	Description text NOT NULL,
	TaxAmount text NOT NULL,
	CostCenter text NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS Comment (
	ID integer PRIMARY KEY AUTOINCREMENT,
	ReferenceDoctype text NOT NULL,
	ReferenceName text NOT NULL,
	Content text NOT NULL,
	Created text NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS SalesInvoice (
	Name text PRIMARY KEY,
	SalesOrder text NOT NULL,
	Customer text NOT NULL,
	PONo text NOT NULL,
	Company text NOT NULL,
	Currency text NOT NULL,
	ConversionRate text NOT NULL,
	PostingDate text NOT NULL,
	DiscountAmount text NOT NULL,
	NetTotal text NOT NULL,
	TotalTaxesAndCharges text NOT NULL,
	GrandTotal text NOT NULL,
	DocStatus integer NOT NULL DEFAULT 0,
	Created text NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS SalesInvoiceItem (
	ID integer PRIMARY KEY AUTOINCREMENT,
	Parent text NOT NULL,
	Idx integer NOT NULL,
	ItemCode text NOT NULL,
	ItemName text NOT NULL,
	Qty text NOT NULL,
	Rate text NOT NULL,
	Amount text NOT NULL,
	ItemTaxTemplate text NOT NULL DEFAULT '',
	SalesOrder text NOT NULL
);

CREATE TABLE IF NOT EXISTS MaterialRequest (
	Name text PRIMARY KEY,
	SalesOrder text NOT NULL,
	Company text NOT NULL,
	TransactionDate text NOT NULL,
	ScheduleDate text NOT NULL,
	DocStatus integer NOT NULL DEFAULT 0,
	Created text NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS MaterialRequestItem (
	ID integer PRIMARY KEY AUTOINCREMENT,
	Parent text NOT NULL,
	Idx integer NOT NULL,
	ItemCode text NOT NULL,
	Qty text NOT NULL,
	Warehouse text NOT NULL DEFAULT '',
	ScheduleDate text NOT NULL
);

CREATE TABLE IF NOT EXISTS RequestForQuotation (
	Name text PRIMARY KEY,
	MaterialRequest text NOT NULL,
	RFQNumber text NOT NULL,
	Company text NOT NULL,
	EmailTemplate text NOT NULL DEFAULT '',
	TransactionDate text NOT NULL,
	ScheduleDate text NOT NULL,
	DocStatus integer NOT NULL DEFAULT 0,
	Created text NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS RFQSupplier (
	ID integer PRIMARY KEY AUTOINCREMENT,
	Parent text NOT NULL,
	Supplier text NOT NULL
);

CREATE TABLE IF NOT EXISTS RFQItem (
	ID integer PRIMARY KEY AUTOINCREMENT,
	Parent text NOT NULL,
	Idx integer NOT NULL,
	ItemCode text NOT NULL,
	Qty text NOT NULL,
	Warehouse text NOT NULL DEFAULT '',
	MaterialRequest text NOT NULL
);

CREATE TABLE IF NOT EXISTS ErrorLog (
	ID text PRIMARY KEY,
	Title text NOT NULL,
	Error text NOT NULL,
	Created text NOT NULL
);
`
