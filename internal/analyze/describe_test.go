package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"record-mapper/convention"
	"record-mapper/internal/config"
	"record-mapper/internal/diagnostic"
	"record-mapper/schema"
)

func TestDescribe(t *testing.T) {
	graph := loadShop(t)

	order := graph.GetType(TypeID{PkgPath: shopPath, Name: "Order"})
	require.NotNil(t, order)

	r := Describe(order, Overrides{Convention: convention.CamelCase})

	var paths []string
	for _, f := range r.Fields {
		paths = append(paths, f.Path)
	}
	assert.Equal(t, []string{
		"Order.CreatedAt",
		"Order.UpdatedBy",
		"Order.OrderId",
		"Order.Status",
		"Order.Customer",
		"Order.Lines",
		"Order.Gift",
		"Order.Tags",
		"Order.Window",
		"Order.Timeout",
		"Order.Note",
		"Order.Retries",
		"Order.Customer.Name",
		"Order.Customer.Email",
		"Order.Lines[].Sku",
		"Order.Lines[].Quantity",
		"Order.Lines[].Price",
		"Order.Gift.Name",
		"Order.Gift.Email",
	}, paths)

	byPath := make(map[string]Field)
	for _, f := range r.Fields {
		byPath[f.Path] = f
	}

	tests := []struct {
		path     string
		kind     schema.TypeKind
		nullable bool
		required bool
		writeKey string
	}{
		{"Order.CreatedAt", schema.KindScalar, false, true, "createdAt"},
		{"Order.OrderId", schema.KindScalar, false, true, "orderId"},
		{"Order.Status", schema.KindEnum, false, true, "status"},
		{"Order.Customer", schema.KindNestedRecord, false, true, "customer"},
		{"Order.Lines", schema.KindList, false, false, "lines"},
		{"Order.Gift", schema.KindOptionalNestedRecord, true, false, "gift"},
		{"Order.Window", schema.KindArray, false, false, "window"},
		{"Order.Note", schema.KindScalar, true, false, "note"},
		{"Order.Retries", schema.KindScalar, false, false, "retries"},
		{"Order.Customer.Email", schema.KindOptionalScalar, true, false, "email"},
		{"Order.Lines[].Sku", schema.KindScalar, false, true, "sku_code"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			f, ok := byPath[tt.path]
			require.True(t, ok)
			assert.Equal(t, tt.kind, f.Kind)
			assert.Equal(t, tt.nullable, f.Nullable)
			assert.Equal(t, tt.required, f.Required)
			assert.Equal(t, tt.writeKey, f.WriteKey)
		})
	}

	assert.Equal(t, "3", byPath["Order.Retries"].Default)
	assert.Equal(t, []string{"OrderId", "orderId", "order-id", "orderid", "ORDER_ID"}, byPath["Order.OrderId"].ReadKeys)

	require.Len(t, r.Diagnostics.Errors, 1)
	assert.Equal(t, diagnostic.CodeUnsupportedType, r.Diagnostics.Errors[0].Code)
	assert.Equal(t, "Order.Meta", r.Diagnostics.Errors[0].FieldPath)
}

func TestDescribeSelfReference(t *testing.T) {
	graph := loadShop(t)

	category := graph.GetType(TypeID{PkgPath: shopPath, Name: "Category"})
	require.NotNil(t, category)

	r := Describe(category, Overrides{})
	require.Len(t, r.Fields, 3)
	assert.Equal(t, schema.KindOptionalNestedRecord, r.Fields[1].Kind)
	assert.Equal(t, schema.KindList, r.Fields[2].Kind)
	assert.True(t, r.Diagnostics.IsValid())
}

func TestSkeleton(t *testing.T) {
	graph := loadShop(t)

	f := Skeleton(graph, config.Defaults{Flavor: "graph", Convention: "camel"})
	assert.Equal(t, "1", f.Version)
	assert.Equal(t, "graph", f.Defaults.Flavor)

	var names []string
	for _, ct := range f.Types {
		names = append(names, ct.Name)
	}
	assert.Equal(t, []string{"shop.Audit", "shop.Category", "shop.Customer", "shop.Line", "shop.Order"}, names)

	line, ok := f.Lookup("shop.Line")
	require.True(t, ok)
	assert.Equal(t, "sku_code", line.Fields["Sku"].Alias)

	order, ok := f.Lookup("shop.Order")
	require.True(t, ok)
	assert.Equal(t, config.StringOrArray{"Secret", "Meta"}, order.Ignore)
	assert.True(t, order.Fields["Note"].Optional)
	assert.Equal(t, "3", order.Fields["Retries"].Default)
	assert.Contains(t, order.Fields, "CreatedAt", "promoted fields are listed")

	diags := CheckConfig(graph, f)
	assert.True(t, diags.IsValid(), diags.Error())
}

func TestCheckConfig(t *testing.T) {
	graph := loadShop(t)

	f := &config.File{
		Version: "1",
		Types: []config.Type{
			{
				Name:       "shop.Order",
				Convention: "camel",
				Fields: map[string]config.Field{
					"Tags": {Alias: "orderId"},
					"Tgas": {Optional: true},
				},
			},
			{Name: "shop.Ordr"},
			{Name: "Line"},
		},
	}

	diags := CheckConfig(graph, f)

	var codes []string
	for _, d := range diags.Errors {
		codes = append(codes, d.Code)
	}
	assert.Equal(t, []string{
		diagnostic.CodeDuplicateKey,
		diagnostic.CodeUnsupportedType,
		diagnostic.CodeUnknownField,
		diagnostic.CodeUnknownType,
	}, codes)

	assert.Contains(t, diags.Errors[2].Suggestions, "Tags")
	assert.Contains(t, diags.Errors[3].Suggestions, "shop.Order")
}
