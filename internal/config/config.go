package config

import (
	"github.com/pkg/errors"
	"gopkg.in/gcfg.v1"
)

const DefaultPath = "./config/config.ini"

type (
	Config struct {
		SERVICE struct {
			PORT         int
			ReadTimeout  int
			WriteTimeout int
			MaxBodyBytes int64
		}
		LOG struct {
			Debug int
			Dir   string
		}
		DBSQLITE struct {
			DB string
		}
		TELEGRAM struct {
			BotToken string
			ChatID   int64
			Debug    int
		}
		WOOCOMMERCE struct {
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
		}
		// TAXTEMPLATE "UK VAT 20%" -> account head the item tax is booked to.
		TAXTEMPLATE map[string]*struct {
			Account string
		}
		// RATE "USD" -> conversion rate into the company currency.
		RATE map[string]*struct {
			Value string
		}
	}
)

// Load reads the INI file at path.
func Load(path string) (*Config, error) {
	cfg := new(Config)
	if err := gcfg.ReadFileInto(cfg, path); err != nil {
		return nil, errors.Wrapf(err, "failed to parse gcfg data from %s", path)
	}
	cfg.setDefaults()
	return cfg, nil
}

// LoadString parses INI text; used by tests and for embedded defaults.
func LoadString(text string) (*Config, error) {
	cfg := new(Config)
	if err := gcfg.ReadStringInto(cfg, text); err != nil {
		return nil, errors.Wrap(err, "failed to parse gcfg data")
	}
	cfg.setDefaults()
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.SERVICE.PORT == 0 {
		c.SERVICE.PORT = 8080
	}
	if c.SERVICE.ReadTimeout == 0 {
		c.SERVICE.ReadTimeout = 30
	}
	if c.SERVICE.WriteTimeout == 0 {
		c.SERVICE.WriteTimeout = 60
	}
	if c.SERVICE.MaxBodyBytes == 0 {
		c.SERVICE.MaxBodyBytes = 4 << 20
	}
	if c.DBSQLITE.DB == "" {
		c.DBSQLITE.DB = "db.db"
	}
	if c.LOG.Dir == "" {
		c.LOG.Dir = "logs"
	}
}
