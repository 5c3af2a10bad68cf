package schema

import (
	"reflect"
	"strings"

	"record-mapper/utils"
)

// TagName is the struct tag read for field options:
//
//	Total int `dict:"total_cents,optional,default=0"`
//
// The first element is the alias. "optional" makes the field nullable,
// "default=" takes an expression up to the end of the tag. A field tagged
// "-" is skipped. Without a dict tag the json tag name is used as alias.
const TagName = "dict"

const (
	tagOptional = "optional"
	tagDefault  = "default"
)

var knownTagOptions = []string{tagOptional, tagDefault}

// FieldTag is a parsed dict tag.
type FieldTag struct {
	Alias       string
	Optional    bool
	Skip        bool
	DefaultExpr string
	HasDefault  bool
	Unknown     []string // unrecognized options
}

// ParseFieldTag reads the dict tag of sf, falling back to its json tag.
func ParseFieldTag(sf reflect.StructField) FieldTag {
	raw, ok := sf.Tag.Lookup(TagName)
	if !ok {
		return FieldTag{Alias: jsonTagName(sf), Skip: sf.Tag.Get("json") == "-"}
	}

	if raw == "-" {
		return FieldTag{Skip: true}
	}

	var tag FieldTag

	alias, rest, _ := strings.Cut(raw, ",")
	tag.Alias = strings.TrimSpace(alias)
	if tag.Alias == "" {
		tag.Alias = jsonTagName(sf)
	}

	for rest != "" {
		var opt string
		opt, rest, _ = strings.Cut(rest, ",")

		name, value := utils.Unpack2(strings.SplitN(opt, "=", 2))
		switch strings.TrimSpace(name) {
		case "":
		case tagOptional:
			tag.Optional = true
		case tagDefault:
			// the expression may contain commas, it runs to the end of the tag
			if rest != "" {
				value += "," + rest
				rest = ""
			}
			tag.DefaultExpr = strings.TrimSpace(value)
			tag.HasDefault = true
		default:
			tag.Unknown = append(tag.Unknown, strings.TrimSpace(name))
		}
	}

	return tag
}

func jsonTagName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "" || tag == "-" {
		return ""
	}

	name, _, _ := strings.Cut(tag, ",")
	return name
}
