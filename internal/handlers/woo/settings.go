package woo

import (
	"strings"

	"WooWithErp/internal/config"

	"github.com/shopspring/decimal"
)

const (
	defaultUOM                   = "Nos"
	defaultDeliveryAfterDays     = 7
	defaultQuoteAfterDays        = 7
	defaultSalesOrderSeries      = "SO-WOO-.#####"
	defaultSalesInvoiceSeries    = "SINV-WOO-.#####"
	defaultMaterialRequestSeries = "MAT-MR-WOO-.#####"
	defaultRFQSeries             = "PUR-RFQ-WOO-.#####"
)

// Settings is the immutable snapshot of the WooCommerce settings used by one
// webhook delivery.
type Settings struct {
	Secret              string
	Company             string
	CompanyCurrency     string
	Warehouse           string
	ItemGroup           string
	UOM                 string
	ItemTaxTemplate     string
	AttributeKeyPrefix  string
	DeliveryAfterDays   int
	QuoteAfterDays      int
	OrdersOutsourced    bool
	Supplier            string
	RFQEmailTemplate    string
	TaxAccount          string
	FreightAccount      string
	CostCenter          string
	SalesOrderSeries    string
	SalesInvoiceSeries  string
	MaterialReqSeries   string
	RFQSeries           string
	CustomerTaxCategory string
	LeadSource          string
	PaymentTerms        string
	DefaultCountry      string

	// TaxTemplates maps an item tax template to its account head.
	TaxTemplates map[string]string
	// ExchangeRates maps a currency to its rate into CompanyCurrency.
	ExchangeRates map[string]decimal.Decimal
}

// NewSettings copies the WOOCOMMERCE, TAXTEMPLATE and RATE sections of cfg.
func NewSettings(cfg *config.Config) (Settings, error) {
	w := cfg.WOOCOMMERCE
	s := Settings{
		Secret:              w.Secret,
		Company:             w.Company,
		CompanyCurrency:     strings.ToUpper(w.CompanyCurrency),
		Warehouse:           w.Warehouse,
		ItemGroup:           w.ItemGroup,
		UOM:                 w.UOM,
		ItemTaxTemplate:     w.ItemTaxTemplate,
		AttributeKeyPrefix:  w.AttributeKeyPrefix,
		DeliveryAfterDays:   w.DeliveryAfterDays,
		QuoteAfterDays:      w.QuoteAfterDays,
		OrdersOutsourced:    w.OrdersOutsourced,
		Supplier:            w.Supplier,
		RFQEmailTemplate:    w.RFQEmailTemplate,
		TaxAccount:          w.TaxAccount,
		FreightAccount:      w.FreightAccount,
		CostCenter:          w.CostCenter,
		SalesOrderSeries:    w.SalesOrderSeries,
		SalesInvoiceSeries:  w.SalesInvoiceSeries,
		MaterialReqSeries:   w.MaterialReqSeries,
		RFQSeries:           w.RFQSeries,
		CustomerTaxCategory: w.CustomerTaxCategory,
		LeadSource:          w.LeadSource,
		PaymentTerms:        w.PaymentTerms,
		DefaultCountry:      w.DefaultCountry,
		TaxTemplates:        make(map[string]string, len(cfg.TAXTEMPLATE)),
		ExchangeRates:       make(map[string]decimal.Decimal, len(cfg.RATE)),
	}

	for name, t := range cfg.TAXTEMPLATE {
		if t != nil {
			s.TaxTemplates[name] = t.Account
		}
	}
	for currency, r := range cfg.RATE {
		if r == nil {
			continue
		}
		rate, err := decimal.NewFromString(strings.TrimSpace(r.Value))
		if err != nil || !rate.IsPositive() {
			return Settings{}, &ConfigurationError{Setting: "RATE " + currency, Reason: "invalid conversion rate " + r.Value}
		}
		s.ExchangeRates[strings.ToUpper(currency)] = rate
	}

	s.setDefaults()
	return s, nil
}

func (s *Settings) setDefaults() {
	if s.UOM == "" {
		s.UOM = defaultUOM
	}
	if s.DeliveryAfterDays == 0 {
		s.DeliveryAfterDays = defaultDeliveryAfterDays
	}
	if s.QuoteAfterDays == 0 {
		s.QuoteAfterDays = defaultQuoteAfterDays
	}
	if s.SalesOrderSeries == "" {
		s.SalesOrderSeries = defaultSalesOrderSeries
	}
	if s.SalesInvoiceSeries == "" {
		s.SalesInvoiceSeries = defaultSalesInvoiceSeries
	}
	if s.MaterialReqSeries == "" {
		s.MaterialReqSeries = defaultMaterialRequestSeries
	}
	if s.RFQSeries == "" {
		s.RFQSeries = defaultRFQSeries
	}
}

// Validate checks the settings every created order needs.
func (s Settings) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"Company", s.Company},
		{"CompanyCurrency", s.CompanyCurrency},
		{"ItemGroup", s.ItemGroup},
		{"AttributeKeyPrefix", s.AttributeKeyPrefix},
		{"TaxAccount", s.TaxAccount},
		{"FreightAccount", s.FreightAccount},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &ConfigurationError{Setting: r.name, Reason: "is not set"}
		}
	}
	if s.OrdersOutsourced && strings.TrimSpace(s.Supplier) == "" {
		return &ConfigurationError{Setting: "Supplier", Reason: "a default supplier is required when orders are outsourced"}
	}
	return nil
}

// ConversionRate is the rate from currency into the company currency.
func (s Settings) ConversionRate(currency string) (decimal.Decimal, error) {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == s.CompanyCurrency {
		return decimal.NewFromInt(1), nil
	}
	rate, ok := s.ExchangeRates[currency]
	if !ok {
		return decimal.Decimal{}, &ConfigurationError{Setting: "RATE " + currency,
			Reason: "no conversion rate into " + s.CompanyCurrency}
	}
	return rate, nil
}

// TaxAccountFor is the account head item taxes of template are booked to.
func (s Settings) TaxAccountFor(template string) (string, error) {
	if template == "" {
		return s.TaxAccount, nil
	}
	account, ok := s.TaxTemplates[template]
	if !ok || account == "" {
		return "", &ConfigurationError{Setting: "TAXTEMPLATE " + template, Reason: "no account configured"}
	}
	return account, nil
}

// Clone returns a copy that shares no maps with s.
func (s Settings) Clone() Settings {
	c := s
	c.TaxTemplates = make(map[string]string, len(s.TaxTemplates))
	for k, v := range s.TaxTemplates {
		c.TaxTemplates[k] = v
	}
	c.ExchangeRates = make(map[string]decimal.Decimal, len(s.ExchangeRates))
	for k, v := range s.ExchangeRates {
		c.ExchangeRates[k] = v
	}
	return c
}
