package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
[SERVICE]
PORT = 9090

[LOG]
Debug = 1

[WOOCOMMERCE]
Secret = s3cret
Company = Slife
CompanyCurrency = GBP
AttributeKeyPrefix = _uni_item_
OrdersOutsourced = true
Supplier = Acme Printing
DeliveryAfterDays = 5

[TAXTEMPLATE "UK VAT 20%"]
Account = VAT - SL

[RATE "USD"]
Value = 0.79
`

func TestLoadString(t *testing.T) {
	cfg, err := LoadString(sample)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.SERVICE.PORT)
	assert.Equal(t, 1, cfg.LOG.Debug)
	assert.Equal(t, "s3cret", cfg.WOOCOMMERCE.Secret)
	assert.Equal(t, "_uni_item_", cfg.WOOCOMMERCE.AttributeKeyPrefix)
	assert.True(t, cfg.WOOCOMMERCE.OrdersOutsourced)
	assert.Equal(t, 5, cfg.WOOCOMMERCE.DeliveryAfterDays)
	require.Contains(t, cfg.TAXTEMPLATE, "UK VAT 20%")
	assert.Equal(t, "VAT - SL", cfg.TAXTEMPLATE["UK VAT 20%"].Account)
	require.Contains(t, cfg.RATE, "USD")
	assert.Equal(t, "0.79", cfg.RATE["USD"].Value)

	// defaults
	assert.Equal(t, "db.db", cfg.DBSQLITE.DB)
	assert.Equal(t, int64(4<<20), cfg.SERVICE.MaxBodyBytes)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Slife", cfg.WOOCOMMERCE.Company)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.ini"))
	assert.Error(t, err)
}
