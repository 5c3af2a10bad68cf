package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shopPath = "record-mapper/internal/analyze/testdata/shop"

func loadShop(t *testing.T) *TypeGraph {
	t.Helper()

	graph, err := NewAnalyzer().LoadPackages("./testdata/shop")
	require.NoError(t, err)
	require.NotNil(t, graph)

	return graph
}

func fieldByName(t *testing.T, info *TypeInfo, name string) *FieldInfo {
	t.Helper()

	for i := range info.Fields {
		if info.Fields[i].Name == name {
			return &info.Fields[i]
		}
	}

	require.Failf(t, "field not found", "%s has no field %s", info.ID, name)
	return nil
}

func TestAnalyzer_LoadPackages(t *testing.T) {
	graph := loadShop(t)

	require.Contains(t, graph.Packages, shopPath)
	assert.Equal(t, "shop", graph.Packages[shopPath].Name)

	for _, name := range []string{"Order", "Customer", "Line", "Status", "Blob"} {
		assert.Contains(t, graph.Types, TypeID{PkgPath: shopPath, Name: name})
	}

	var structs []string
	for _, s := range graph.Structs(shopPath) {
		structs = append(structs, s.ID.Name)
	}
	assert.Equal(t, []string{"Audit", "Category", "Customer", "Line", "Order"}, structs)
}

func TestAnalyzer_Fields(t *testing.T) {
	a := NewAnalyzer()
	graph, err := a.LoadPackages("./testdata/shop")
	require.NoError(t, err)

	order, err := a.GetStruct(shopPath, "Order")
	require.NoError(t, err)
	assert.Same(t, graph.GetType(TypeID{PkgPath: shopPath, Name: "Order"}), order)

	_, err = a.GetStruct(shopPath, "Status")
	assert.ErrorContains(t, err, "is not a struct")

	_, err = a.GetStruct(shopPath, "Invoice")
	assert.ErrorContains(t, err, "not found")

	audit := fieldByName(t, order, "Audit")
	assert.True(t, audit.Embedded)

	lines := fieldByName(t, order, "Lines")
	assert.Equal(t, TypeKindSlice, lines.Type.Kind)
	assert.Equal(t, TypeKindStruct, lines.Type.ElemType.Kind)

	window := fieldByName(t, order, "Window")
	assert.Equal(t, TypeKindArray, window.Type.Kind)
	assert.Equal(t, int64(2), window.Type.Len)

	gift := fieldByName(t, order, "Gift")
	assert.Equal(t, TypeKindPointer, gift.Type.Kind)

	assert.Equal(t, TypeKindExternal, fieldByName(t, order, "Timeout").Type.Kind)
	assert.Equal(t, TypeKindUnknown, fieldByName(t, order, "Meta").Type.Kind)

	status := fieldByName(t, order, "Status")
	assert.Equal(t, TypeKindAlias, status.Type.Kind)
	assert.True(t, status.Type.Stringer)

	note := fieldByName(t, order, "Note")
	assert.True(t, note.HasTag("dict"))
	assert.True(t, note.DictTag().Optional)

	for _, f := range order.Fields {
		assert.NotEqual(t, "internal", f.Name)
	}

	blob := graph.GetType(TypeID{PkgPath: shopPath, Name: "Blob"})
	require.NotNil(t, blob)
	assert.True(t, blob.Underlying.IsBytes())
}

func TestTypeID_String(t *testing.T) {
	id := TypeID{PkgPath: "example.com/shop", Name: "Order"}
	assert.Equal(t, "example.com/shop.Order", id.String())
	assert.Equal(t, "shop.Order", QualifiedName(id))

	idNoPkg := TypeID{Name: "int"}
	assert.Equal(t, "int", idNoPkg.String())
}

func TestTypeKind_String(t *testing.T) {
	assert.Equal(t, "basic", TypeKindBasic.String())
	assert.Equal(t, "struct", TypeKindStruct.String())
	assert.Equal(t, "array", TypeKindArray.String())
	assert.Equal(t, "interface", TypeKindInterface.String())
	assert.Equal(t, "external", TypeKindExternal.String())
	assert.Equal(t, "unknown", TypeKindUnknown.String())
}
