package woo

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogJSON = `{
  "warehouses": [{"name": "Stores - AL"}, {"name": "Finished Goods - AL", "company": "Acme Ltd"}],
  "templates": [
    {"code": "HAT", "name": "Hat", "tax_template": "UK VAT 20%", "attributes": ["size", "colour"]},
    {"code": "SCARF", "attributes": ["colour"]}
  ]
}`

func TestImportCatalog(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(catalogJSON), 0600))
	catalog, err := LoadCatalog(path)
	require.NoError(t, err)
	require.NoError(t, ImportCatalog(ctx, store, testSettings(), catalog))
	// importing twice replaces the templates
	require.NoError(t, ImportCatalog(ctx, store, testSettings(), catalog))

	hat, err := store.GetTemplateItem(ctx, "HAT")
	require.NoError(t, err)
	assert.Equal(t, "Hat", hat.Name)
	assert.Equal(t, "UK VAT 20%", hat.TaxTemplate)
	assert.ElementsMatch(t, []string{"size", "colour"}, hat.Attributes)

	scarf, err := store.GetTemplateItem(ctx, "SCARF")
	require.NoError(t, err)
	assert.Equal(t, "SCARF", scarf.Name)
	assert.Equal(t, "Products", scarf.ItemGroup)
	assert.Equal(t, "Stores - AL", scarf.DefaultWarehouse)

	warehouse, err := store.DefaultWarehouse(ctx, "Acme Ltd")
	require.NoError(t, err)
	assert.Equal(t, "Stores - AL", warehouse)

	count, err := store.CountItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestLoadCatalogErrors(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0600))
	_, err = LoadCatalog(path)
	assert.Error(t, err)
}
