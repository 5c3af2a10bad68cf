package primitive

import (
	"reflect"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
)

//go:generate go tool stringer -type=Variant -output=variant_string.go

// Variant is the closed set of runtime shapes a raw container value can take.
// Coercion switches on the variant instead of the open dynamic type.
type Variant int

const (
	VariantNull Variant = iota
	VariantString
	VariantInt
	VariantUint
	VariantFloat
	VariantBool
	VariantBytes
	VariantMap
	VariantSequence
	VariantTime
	VariantDuration
	VariantGraphDate
	VariantGraphOffsetTime
	VariantGraphLocalTime
	VariantGraphLocalDateTime
	VariantGraphDuration
	VariantOpaque

	// VariantTotal is a constant that represents the total number of variants defined
	VariantTotal = int(iota)
)

// Lookuper is satisfied by read-only containers that are not plain Go maps.
type Lookuper interface {
	Lookup(key string) (any, bool)
}

// VariantOf classifies a raw value.
// Exact Go types are matched first, then the underlying reflect kind so that
// named numeric types (enums, time.Month, ...) land in the numeric variants.
func VariantOf(raw any) Variant {
	switch raw.(type) {
	case nil:
		return VariantNull
	case string:
		return VariantString
	case bool:
		return VariantBool
	case []byte:
		return VariantBytes
	case time.Time:
		return VariantTime
	case time.Duration:
		return VariantDuration
	case dbtype.Date:
		return VariantGraphDate
	case dbtype.Time:
		return VariantGraphOffsetTime
	case dbtype.LocalTime:
		return VariantGraphLocalTime
	case dbtype.LocalDateTime:
		return VariantGraphLocalDateTime
	case dbtype.Duration:
		return VariantGraphDuration
	case Lookuper:
		if isNilRef(raw) {
			return VariantNull
		}
		return VariantMap
	}

	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return VariantInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return VariantUint
	case reflect.Float32, reflect.Float64:
		return VariantFloat
	case reflect.Bool:
		return VariantBool
	case reflect.String:
		return VariantString
	case reflect.Map:
		if rv.IsNil() {
			return VariantNull
		}
		if rv.Type().Key().Kind() == reflect.String {
			return VariantMap
		}
		return VariantOpaque
	case reflect.Slice:
		if rv.IsNil() {
			return VariantNull
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return VariantBytes
		}
		return VariantSequence
	case reflect.Array:
		return VariantSequence
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return VariantNull
		}
		return VariantOpaque
	default:
		return VariantOpaque
	}
}

// isNilRef reports a typed nil map or pointer, e.g. a nil container.Map.
func isNilRef(raw any) bool {
	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Map, reflect.Pointer:
		return rv.IsNil()
	default:
		return false
	}
}

// IsGraphTemporal reports whether the variant is one of the graph backend's temporal wire shapes.
func (v Variant) IsGraphTemporal() bool {
	switch v {
	case VariantGraphDate, VariantGraphOffsetTime, VariantGraphLocalTime,
		VariantGraphLocalDateTime, VariantGraphDuration:
		return true
	default:
		return false
	}
}
