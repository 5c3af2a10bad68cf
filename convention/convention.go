// Package convention converts identifiers between naming conventions used as
// container keys: camelCase, PascalCase, SCREAMING_CASE and dash-case.
//
// All transforms are pure and total: an empty input yields an empty output.
package convention

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Convention -output=convention_string.go

type Convention int

const (
	AsIs Convention = iota
	CamelCase
	PascalCase
	ScreamingCase
	DashCase

	// ConventionTotal is a constant that represents the total number of conventions defined
	ConventionTotal = int(iota)
)

var names = map[string]Convention{
	"":               AsIs,
	"none":           AsIs,
	"as-is":          AsIs,
	"asis":           AsIs,
	"camelcase":      CamelCase,
	"camel":          CamelCase,
	"pascalcase":     PascalCase,
	"pascal":         PascalCase,
	"screaming_case": ScreamingCase,
	"screaming":      ScreamingCase,
	"dash-case":      DashCase,
	"dash_case":      DashCase,
	"dash":           DashCase,
	"kebab-case":     DashCase,
}

// Parse resolves a convention name as it appears in configuration files.
// Matching is case-insensitive.
func Parse(s string) (Convention, error) {
	if c, ok := names[strings.ToLower(strings.TrimSpace(s))]; ok {
		return c, nil
	}

	return AsIs, fmt.Errorf("unknown naming convention %q", s)
}

// Name returns the canonical configuration spelling of the convention.
func (c Convention) Name() string {
	switch c {
	case CamelCase:
		return "camelCase"
	case PascalCase:
		return "PascalCase"
	case ScreamingCase:
		return "SCREAMING_CASE"
	case DashCase:
		return "dash-case"
	default:
		return "none"
	}
}

func (c Convention) MarshalText() ([]byte, error) {
	return []byte(c.Name()), nil
}

func (c *Convention) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}

	*c = parsed
	return nil
}

// Transform converts identifier into the requested convention.
func Transform(identifier string, c Convention) string {
	switch c {
	case CamelCase:
		return ToCamel(identifier)
	case PascalCase:
		return ToPascal(identifier)
	case ScreamingCase:
		return ToScreaming(identifier)
	case DashCase:
		return ToDash(identifier)
	default:
		return identifier
	}
}
