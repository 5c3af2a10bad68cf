package diagnostic_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"record-mapper/internal/diagnostic"
)

func TestDiagnostics(t *testing.T) {
	var d diagnostic.Diagnostics
	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddInfo("note", "built", "Order", "")
	d.AddWarning(diagnostic.CodeBadTag, "unknown option", "Order", "Total")
	d.AddError(diagnostic.CodeDuplicateKey, `key "id" is used twice`, "Order", "ID")

	var other diagnostic.Diagnostics
	other.AddError(diagnostic.CodeNoConstructor, "no constructor", "Item", "")
	d.Merge(other)

	assert.True(t, d.HasErrors())
	require.Len(t, d.All(), 4)
	assert.Equal(t, diagnostic.DiagnosticError, d.All()[0].Severity)
	assert.Equal(t, diagnostic.DiagnosticInfo, d.All()[3].Severity)
	assert.EqualError(t, d.Error(), `[Order] ID: [duplicate-key] key "id" is used twice; [Item]: [no-constructor] no constructor`)
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "error", diagnostic.DiagnosticError.String())
	assert.Equal(t, "unknown", diagnostic.DiagnosticSeverity(42).String())
}

func ExampleDiagnostic_String() {
	d := diagnostic.Diagnostic{
		Code:        diagnostic.CodeBadTag,
		Message:     `unknown option "optinal"`,
		Type:        "Order",
		FieldPath:   "Note",
		Suggestions: []string{"optional"},
	}

	fmt.Println(d)
	// Output:
	// [Order] Note: [bad-tag] unknown option "optinal" (did you mean optional?)
}
