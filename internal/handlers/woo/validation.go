package woo

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// orderValidate is shared by every delivery; validator caches struct metadata.
var orderValidate = newOrderValidate()

var lineItemIndex = regexp.MustCompile(`line_items\[(\d+)\]`)

func newOrderValidate() *validator.Validate {
	v := validator.New()

	// field namespaces use the JSON names: Order.line_items[0].quantity
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	// amounts are validated as their decimal text
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if n, ok := field.Interface().(Number); ok {
			return n.String()
		}
		return nil
	}, Number{})

	mustRegister(v, "positive_amount", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && d.IsPositive()
	})
	mustRegister(v, "order_code", func(fl validator.FieldLevel) bool {
		return (&Order{OrderKey: fl.Field().String()}).Code() != ""
	})
	mustRegister(v, "woo_date", func(fl validator.FieldLevel) bool {
		_, err := (&Order{DateCreated: fl.Field().String()}).CreatedDate()
		return err == nil
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// validationError turns the first failed rule into the typed error the
// handler maps to a status code.
func validationError(o *Order, err error) error {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return &MalformedPayloadError{Reason: "cannot validate order", Err: err}
	}
	fe := fieldErrors[0]
	namespace := strings.TrimPrefix(fe.Namespace(), "Order.")

	m := lineItemIndex.FindStringSubmatch(namespace)
	if m == nil {
		return &MalformedPayloadError{Reason: fieldReason(namespace, fe)}
	}

	index, _ := strconv.Atoi(m[1])
	if index >= len(o.LineItems) || o.LineItems[index] == nil {
		return &MalformedPayloadError{Reason: "line_items contains null"}
	}
	line := o.LineItems[index]
	switch fe.Field() {
	case "quantity":
		return &InvalidLineItemError{Index: index, Code: line.CatalogCode(), Name: line.Name,
			Reason: "quantity must be greater than zero, got " + line.Quantity.String()}
	case "sku":
		return &InvalidLineItemError{Index: index, Name: line.Name, Reason: "neither sku nor product_id is set"}
	default:
		return &InvalidLineItemError{Index: index, Code: line.CatalogCode(), Name: line.Name, Reason: fieldReason(namespace, fe)}
	}
}

func fieldReason(namespace string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return namespace + " is empty"
	case "woo_date":
		return fmt.Sprintf("invalid %s %q", namespace, fe.Value())
	default:
		return namespace + " failed " + fe.Tag()
	}
}
