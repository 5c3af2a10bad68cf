package convention

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToCamel(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"WallOfChina", "wallOfChina"},
		{"wallOfChina", "wallOfChina"},
		{"NothingNew", "nothingNew"},
		{"ID", "id"},
		{"nothing_new", "nothingNew"},
		{"wall-of-china", "wallOfChina"},
		{"Wall Of China", "wallOfChina"},
		{"__x", "X"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToCamel(tt.input))
		})
	}
}

func TestToPascal(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"wallOfChina", "WallOfChina"},
		{"WallOfChina", "WallOfChina"},
		{"HTTPServer", "HttpServer"},
		{"ID", "Id"},
		{"A", "A"},
		{"nothing_new", "NothingNew"},
		{"nothing-new", "NothingNew"},
		{"x1", "X1"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToPascal(tt.input))
		})
	}
}

func TestToScreaming(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"WallOfChina", "WALL_OF_CHINA"},
		{"wallOfChina", "WALL_OF_CHINA"},
		{"wall of china", "WALL_OF_CHINA"},
		{"  padded  name ", "PADDED_NAME"},
		{"HTTPServer", "HTTPSERVER"},
		{"already_SCREAMING", "ALREADY_SCREAMING"},
		{"a__b", "A_B"},
		{"Item2Name", "ITEM2_NAME"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToScreaming(tt.input))
		})
	}
}

func TestToDash(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"WallOfChina", "wall-of-china"},
		{"NothingNew", "nothing-new"},
		{"wall_of__china", "wall-of-china"},
		{"Wall Of China", "wall-of-china"},
		{"HTTPServer", "httpserver"},
		{"_leading", "leading"},
		{"trailing--", "trailing"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToDash(tt.input))
		})
	}
}

func TestTransform(t *testing.T) {
	tests := []struct {
		convention Convention
		expected   string
	}{
		{AsIs, "WallOfChina"},
		{CamelCase, "wallOfChina"},
		{PascalCase, "WallOfChina"},
		{ScreamingCase, "WALL_OF_CHINA"},
		{DashCase, "wall-of-china"},
	}

	for _, tt := range tests {
		t.Run(tt.convention.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, Transform("WallOfChina", tt.convention))
			assert.Empty(t, Transform("", tt.convention))
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected Convention
	}{
		{"", AsIs},
		{"none", AsIs},
		{"camelCase", CamelCase},
		{"PascalCase", PascalCase},
		{"SCREAMING_CASE", ScreamingCase},
		{"dash_case", DashCase},
		{"dash-case", DashCase},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, c)
		})
	}

	_, err := Parse("snake")
	assert.Error(t, err)
}

func TestConventionText(t *testing.T) {
	for c := AsIs; int(c) < ConventionTotal; c++ {
		text, err := c.MarshalText()
		require.NoError(t, err)

		var back Convention
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, c, back)
	}
}
