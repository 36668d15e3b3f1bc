package woo

import (
	"context"
	"encoding/json"
	"os"
	"strings"

	"WooWithErp/internal/database"
	"WooWithErp/pkg/logging"

	"github.com/pkg/errors"
)

// CatalogTemplate is a template item with variants as listed in a catalog file.
type CatalogTemplate struct {
	Code             string   `json:"code"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	ItemGroup        string   `json:"item_group"`
	StockUOM         string   `json:"stock_uom"`
	TaxTemplate      string   `json:"tax_template"`
	DefaultWarehouse string   `json:"default_warehouse"`
	Company          string   `json:"company"`
	IsStockItem      bool     `json:"is_stock_item"`
	Attributes       []string `json:"attributes"`
}

type CatalogWarehouse struct {
	Name    string `json:"name"`
	Company string `json:"company"`
}

// Catalog is the master data the webhook expects to exist before orders arrive.
type Catalog struct {
	Warehouses []CatalogWarehouse `json:"warehouses"`
	Templates  []CatalogTemplate  `json:"templates"`
}

func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed os.ReadFile(%s)", path)
	}
	catalog := new(Catalog)
	if err := json.Unmarshal(data, catalog); err != nil {
		return nil, errors.Wrapf(err, "failed json.Unmarshal(%s)", path)
	}
	return catalog, nil
}

// ImportCatalog stores the warehouses and template items of catalog in one
// transaction. Missing fields fall back to settings.
func ImportCatalog(ctx context.Context, store *database.Store, settings Settings, catalog *Catalog) error {
	logger := logging.GetLogger()
	logger.Debug("Start ImportCatalog")
	defer logger.Debug("End ImportCatalog")

	return store.InTx(ctx, func(q *database.Queries) error {
		for _, w := range catalog.Warehouses {
			if strings.TrimSpace(w.Name) == "" {
				return errors.New("warehouse without name")
			}
			company := w.Company
			if company == "" {
				company = settings.Company
			}
			if err := q.SaveWarehouse(ctx, &database.Warehouse{Name: w.Name, Company: company}); err != nil {
				return errors.Wrapf(err, "failed SaveWarehouse(%s)", w.Name)
			}
		}

		for _, t := range catalog.Templates {
			code := strings.TrimSpace(t.Code)
			if code == "" {
				return errors.New("template without code")
			}
			item := &database.Item{
				Code:             code,
				Name:             firstNonEmpty(t.Name, code),
				ItemGroup:        firstNonEmpty(t.ItemGroup, settings.ItemGroup),
				StockUOM:         firstNonEmpty(t.StockUOM, settings.UOM),
				SalesUOM:         firstNonEmpty(t.StockUOM, settings.UOM),
				IsStockItem:      t.IsStockItem,
				TaxTemplate:      firstNonEmpty(t.TaxTemplate, settings.ItemTaxTemplate),
				DefaultWarehouse: firstNonEmpty(t.DefaultWarehouse, settings.Warehouse),
				Company:          firstNonEmpty(t.Company, settings.Company),
				Attributes:       t.Attributes,
			}
			item.Description = t.Description
			if item.Description == "" {
				item.Description = describe(item.Name)
			}
			if err := q.SaveTemplateItem(ctx, item); err != nil {
				return errors.Wrapf(err, "failed SaveTemplateItem(%s)", code)
			}
		}
		logger.Infof("catalog imported: %d warehouses, %d templates", len(catalog.Warehouses), len(catalog.Templates))
		return nil
	})
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
