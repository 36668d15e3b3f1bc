package woo

import (
	"context"
	"fmt"
	"html"
	"sort"
	"strconv"
	"strings"

	"WooWithErp/internal/database"
	"WooWithErp/pkg/logging"

	"github.com/pkg/errors"
)

type attributeKind int

const (
	attributeString attributeKind = iota
	attributeInt
	attributeFloat
)

// AttributeValue is the parsed suffix of an attribute meta value: an
// integer if it parses as one, else a float, else the text itself.
type AttributeValue struct {
	kind attributeKind
	i    int64
	f    float64
	s    string
}

func (v AttributeValue) String() string {
	switch v.kind {
	case attributeInt:
		return strconv.FormatInt(v.i, 10)
	case attributeFloat:
		s := strconv.FormatFloat(v.f, 'f', -1, 64)
		if !strings.ContainsAny(s, ".eEnN") {
			s += ".0"
		}
		return s
	default:
		return v.s
	}
}

// Attribute is one (attribute, value) pair of a variant.
type Attribute struct {
	Key   string
	Value AttributeValue
	Label string
	Raw   string
}

// ParseAttribute splits raw on its last underscore: the suffix is the value
// and the part before it the human readable label ("key:label"). Without
// an underscore the whole text serves as both.
func ParseAttribute(key, raw string) Attribute {
	human, value := raw, raw
	if i := strings.LastIndex(raw, "_"); i >= 0 {
		human, value = raw[:i], raw[i+1:]
	}

	a := Attribute{Key: key, Label: key + ":" + human, Raw: raw}
	if i, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64); err == nil {
		a.Value = AttributeValue{kind: attributeInt, i: i}
		return a
	}
	if f, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
		a.Value = AttributeValue{kind: attributeFloat, f: f}
		return a
	}
	a.Value = AttributeValue{kind: attributeString, s: value}
	return a
}

// VariantCode appends the attribute values, sorted by attribute key, to the template code.
func VariantCode(templateCode string, attributes []Attribute) string {
	code := templateCode
	for _, a := range sortedAttributes(attributes) {
		code += "-" + a.Value.String()
	}
	return code
}

// VariantName appends the attribute labels, sorted by attribute key, to the template name.
func VariantName(templateName string, attributes []Attribute) string {
	name := templateName
	for _, a := range sortedAttributes(attributes) {
		name += " " + a.Label
	}
	return name
}

func sortedAttributes(attributes []Attribute) []Attribute {
	sorted := make([]Attribute, len(attributes))
	copy(sorted, attributes)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Key < sorted[j].Key })
	return sorted
}

func describe(name string) string {
	return fmt.Sprintf("<div><p>%s</p></div>", html.EscapeString(name))
}

// ResolveItems gets or creates the catalog item of every line of order,
// in line order, and records the resolved code on each line.
func (r *Reconciler) ResolveItems(ctx context.Context, q *database.Queries, order *Order) ([]*database.Item, error) {
	logger := logging.GetLogger()
	logger.Debug("Start ResolveItems")
	defer logger.Debug("End ResolveItems")

	items := make([]*database.Item, 0, len(order.LineItems))
	for i, line := range order.LineItems {
		code := line.CatalogCode()
		if code == "" {
			return nil, &InvalidLineItemError{Index: i, Name: line.Name, Reason: "neither sku nor product_id is set"}
		}

		template, attributes, err := r.lineAttributes(ctx, q, i, line)
		if err != nil {
			return nil, err
		}

		var candidate *database.Item
		if template != nil {
			candidate = r.buildVariant(template, attributes)
		} else {
			candidate, err = r.buildPlainItem(ctx, q, code, line)
			if err != nil {
				return nil, err
			}
		}

		item, err := r.saveItem(ctx, q, candidate)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to save item %s", candidate.Code)
		}
		line.ItemCode = item.Code
		items = append(items, item)
	}
	return items, nil
}

// lineAttributes collects the prefixed meta entries of line that the
// template item knows about. The template is nil for a plain item.
func (r *Reconciler) lineAttributes(ctx context.Context, q *database.Queries, index int, line *LineItem) (*database.Item, []Attribute, error) {
	prefix := r.settings.AttributeKeyPrefix
	code := line.CatalogCode()

	var (
		template   *database.Item
		known      map[string]bool
		attributes []Attribute
		seen       = make(map[string]int)
	)
	for _, meta := range line.MetaData {
		if !strings.HasPrefix(meta.Key, prefix) {
			continue
		}
		if template == nil {
			t, err := q.GetTemplateItem(ctx, code)
			if database.IsNotFound(err) {
				return nil, nil, &InvalidLineItemError{Index: index, Code: code, Name: line.Name, NotFound: true,
					Reason: "no template item with variants for sku " + code}
			}
			if err != nil {
				return nil, nil, err
			}
			template = t
			known = make(map[string]bool, len(t.Attributes))
			for _, a := range t.Attributes {
				known[a] = true
			}
		}

		key := meta.Key[len(prefix):]
		if !known[key] {
			logging.GetLogger().Debugf("attribute %s is not an attribute of template %s, skipped", key, code)
			continue
		}
		attribute := ParseAttribute(key, meta.StringValue())
		// a repeated key keeps its last value
		if j, ok := seen[key]; ok {
			attributes[j] = attribute
			continue
		}
		seen[key] = len(attributes)
		attributes = append(attributes, attribute)
	}
	return template, attributes, nil
}

func (r *Reconciler) buildVariant(template *database.Item, attributes []Attribute) *database.Item {
	variant := &database.Item{
		Code:             VariantCode(template.Code, attributes),
		Name:             VariantName(template.Name, attributes),
		ItemGroup:        template.ItemGroup,
		StockUOM:         template.StockUOM,
		SalesUOM:         template.SalesUOM,
		IsStockItem:      template.IsStockItem,
		VariantOf:        template.Code,
		TaxTemplate:      template.TaxTemplate,
		DefaultWarehouse: template.DefaultWarehouse,
		Company:          template.Company,
	}
	variant.Description = describe(variant.Name)
	for _, a := range sortedAttributes(attributes) {
		variant.VariantAttributes = append(variant.VariantAttributes, database.ItemVariantAttribute{
			VariantOf:      template.Code,
			Attribute:      a.Key,
			AttributeValue: a.Value.String(),
		})
	}
	return variant
}

func (r *Reconciler) buildPlainItem(ctx context.Context, q *database.Queries, code string, line *LineItem) (*database.Item, error) {
	warehouse := r.settings.Warehouse
	if warehouse == "" {
		w, err := q.DefaultWarehouse(ctx, r.settings.Company)
		if err != nil && !database.IsNotFound(err) {
			return nil, err
		}
		warehouse = w
	}

	name := strings.TrimSpace(line.Name)
	if name == "" {
		name = code
	}
	return &database.Item{
		Code:             code,
		Name:             name,
		Description:      describe(name),
		ItemGroup:        r.settings.ItemGroup,
		StockUOM:         r.settings.UOM,
		SalesUOM:         r.settings.UOM,
		IsStockItem:      false,
		TaxTemplate:      r.settings.ItemTaxTemplate,
		DefaultWarehouse: warehouse,
		Company:          r.settings.Company,
	}, nil
}

// saveItem inserts candidate unless an item with its code already exists,
// in which case the stored item is returned unchanged.
func (r *Reconciler) saveItem(ctx context.Context, q *database.Queries, candidate *database.Item) (*database.Item, error) {
	existing, err := q.GetItem(ctx, candidate.Code)
	if err == nil {
		logging.GetLogger().Debugf("Item %s already exists", candidate.Code)
		return existing, nil
	}
	if !database.IsNotFound(err) {
		return nil, err
	}
	if err := q.InsertItem(ctx, candidate); err != nil {
		return nil, err
	}
	logging.GetLogger().Infof("Item %s created", candidate.Code)
	return candidate, nil
}
