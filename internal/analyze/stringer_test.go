package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypePath(t *testing.T) {
	p1 := NewTypePath("Order")
	assert.Equal(t, "Order", p1.String())

	p2 := p1.Field("Lines")
	assert.Equal(t, "Order.Lines", p2.String())

	p3 := p2.Slice()
	assert.Equal(t, "Order.Lines[]", p3.String())
	assert.Equal(t, "Order.Lines", p2.String(), "paths are immutable")

	assert.Equal(t, "Order.Lines[].Sku", p3.Field("Sku").String())
}

func TestTypeStringer_TypeString(t *testing.T) {
	graph := loadShop(t)
	stringer := NewTypeStringer()

	order := graph.GetType(TypeID{PkgPath: shopPath, Name: "Order"})
	require.NotNil(t, order)

	tests := map[string]string{
		"Audit":   "shop.Audit",
		"Status":  "shop.Status",
		"Lines":   "[]shop.Line",
		"Gift":    "*shop.Customer",
		"Tags":    "[]string",
		"Window":  "[2]int",
		"Timeout": "time.Duration",
		"Meta":    "map[string]string",
	}

	for field, want := range tests {
		assert.Equal(t, want, stringer.TypeString(fieldByName(t, order, field).Type), field)
	}

	assert.Equal(t, "<nil>", stringer.TypeString(nil))
}
