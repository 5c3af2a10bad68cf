package schema_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"record-mapper/schema"
)

func TestParseFieldTag(t *testing.T) {
	type tagged struct {
		Plain    int
		Alias    int `dict:"a"`
		Optional int `dict:",optional"`
		Default  int `dict:"d,optional,default=max(1, 2)"`
		Skipped  int `dict:"-"`
		JSON     int `json:"j,omitempty"`
		JSONSkip int `json:"-"`
		Both     int `dict:",optional" json:"b"`
		Unknown  int `dict:",required,optional"`
	}

	tests := []struct {
		field string
		want  schema.FieldTag
	}{
		{"Plain", schema.FieldTag{}},
		{"Alias", schema.FieldTag{Alias: "a"}},
		{"Optional", schema.FieldTag{Optional: true}},
		{"Default", schema.FieldTag{Alias: "d", Optional: true, DefaultExpr: "max(1, 2)", HasDefault: true}},
		{"Skipped", schema.FieldTag{Skip: true}},
		{"JSON", schema.FieldTag{Alias: "j"}},
		{"JSONSkip", schema.FieldTag{Skip: true}},
		{"Both", schema.FieldTag{Alias: "b", Optional: true}},
		{"Unknown", schema.FieldTag{Optional: true, Unknown: []string{"required"}}},
	}

	typ := reflect.TypeFor[tagged]()
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			sf, ok := typ.FieldByName(tt.field)
			assert.True(t, ok)
			assert.Equal(t, tt.want, schema.ParseFieldTag(sf))
		})
	}
}
