package primitive_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"record-mapper/primitive"
)

type level int8

func TestConvert(t *testing.T) {
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	moment := time.Date(2024, 5, 17, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		raw  any
		to   reflect.Type
		cats primitive.CategoryEnum
		want any
	}{
		{"int64 to int32", int64(42), reflect.TypeFor[int32](), primitive.GenericCategories, int32(42)},
		{"int64 to named int8", int64(-3), reflect.TypeFor[level](), primitive.GraphCategories, level(-3)},
		{"float rounds half to even", 2.5, reflect.TypeFor[int](), primitive.GenericCategories, 2},
		{"float rounds half to even upwards", 3.5, reflect.TypeFor[int](), primitive.GenericCategories, 4},
		{"string to int", " 17 ", reflect.TypeFor[int](), primitive.GenericCategories, 17},
		{"string to float", "1.25", reflect.TypeFor[float64](), primitive.GenericCategories, 1.25},
		{"int to float", int64(7), reflect.TypeFor[float64](), primitive.GraphCategories, 7.0},
		{"yes to bool", "Yes", reflect.TypeFor[bool](), primitive.GenericCategories, true},
		{"off to bool", "off", reflect.TypeFor[bool](), primitive.GenericCategories, false},
		{"int to bool", 1, reflect.TypeFor[bool](), primitive.GenericCategories, true},
		{"bool to uint8", true, reflect.TypeFor[uint8](), primitive.GenericCategories, uint8(1)},
		{"int to string", 12, reflect.TypeFor[string](), primitive.GenericCategories, "12"},
		{"string to bytes", "abc", reflect.TypeFor[[]byte](), primitive.GenericCategories, []byte("abc")},
		{"string to time", "2024-05-17T10:30:00Z", reflect.TypeFor[time.Time](), primitive.GenericCategories, moment},
		{"unix seconds to time", moment.Unix(), reflect.TypeFor[time.Time](), primitive.GenericCategories, moment},
		{"string to duration", "2h45m", reflect.TypeFor[time.Duration](), primitive.GenericCategories, 2*time.Hour + 45*time.Minute},
		{"nanoseconds to duration", int64(1500), reflect.TypeFor[time.Duration](), primitive.GenericCategories, 1500 * time.Nanosecond},
		{"seconds to duration", 1.5, reflect.TypeFor[time.Duration](), primitive.GenericCategories, 1500 * time.Millisecond},
		{"string to uuid", id.String(), reflect.TypeFor[uuid.UUID](), primitive.GraphCategories, id},
		{"uuid as is", id, reflect.TypeFor[uuid.UUID](), primitive.CategoryNone, id},
		{"anything into interface", moment, reflect.TypeFor[any](), primitive.CategoryNone, moment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := primitive.Convert(tt.raw, tt.to, tt.cats)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Interface())
		})
	}
}

func TestConvertErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		to   reflect.Type
		cats primitive.CategoryEnum
		want error
	}{
		{"overflow int8", 300, reflect.TypeFor[int8](), primitive.GenericCategories, primitive.ErrOverflow},
		{"negative into unsigned", -1, reflect.TypeFor[uint](), primitive.GenericCategories, primitive.ErrOverflow},
		{"float overflow", 1e20, reflect.TypeFor[int64](), primitive.GenericCategories, primitive.ErrOverflow},
		{"string overflow", "70000", reflect.TypeFor[int16](), primitive.GenericCategories, primitive.ErrOverflow},
		{"not a number", "seven", reflect.TypeFor[int](), primitive.GenericCategories, primitive.ErrInvalidFormat},
		{"not a bool", "maybe", reflect.TypeFor[bool](), primitive.GenericCategories, primitive.ErrInvalidFormat},
		{"not a time", "yesterday", reflect.TypeFor[time.Time](), primitive.GenericCategories, primitive.ErrInvalidFormat},
		{"not a uuid", "xyz", reflect.TypeFor[uuid.UUID](), primitive.GenericCategories, primitive.ErrInvalidFormat},
		{"text to number in graph flavor", "17", reflect.TypeFor[int](), primitive.GraphCategories, primitive.ErrNotAllowed},
		{"struct is not a scalar", struct{}{}, reflect.TypeFor[int](), primitive.GenericCategories, primitive.ErrNotAllowed},
		{"nil", nil, reflect.TypeFor[int](), primitive.GenericCategories, primitive.ErrNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := primitive.Convert(tt.raw, tt.to, tt.cats)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestVariantOf(t *testing.T) {
	var nilSlice []int
	var nilMap map[string]any

	tests := []struct {
		raw  any
		want primitive.Variant
	}{
		{nil, primitive.VariantNull},
		{nilSlice, primitive.VariantNull},
		{"x", primitive.VariantString},
		{int64(1), primitive.VariantInt},
		{uint(1), primitive.VariantUint},
		{1.5, primitive.VariantFloat},
		{true, primitive.VariantBool},
		{[]byte("x"), primitive.VariantBytes},
		{map[string]any{}, primitive.VariantMap},
		{[]any{1}, primitive.VariantSequence},
		{[2]int{}, primitive.VariantSequence},
		{time.Now(), primitive.VariantTime},
		{time.Second, primitive.VariantDuration},
		{struct{}{}, primitive.VariantOpaque},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, primitive.VariantOf(tt.raw))
		})
	}

	assert.Equal(t, primitive.VariantNull, primitive.VariantOf(nilMap))

	var nilLookup lookupMap
	assert.Equal(t, primitive.VariantNull, primitive.VariantOf(nilLookup), "typed nil container")
	assert.Equal(t, primitive.VariantNull, primitive.VariantOf((*lookupPtr)(nil)))
	assert.Equal(t, primitive.VariantMap, primitive.VariantOf(lookupMap{}))
	assert.Equal(t, primitive.VariantMap, primitive.VariantOf(&lookupPtr{}))
}

type lookupMap map[string]any

func (m lookupMap) Lookup(key string) (any, bool) {
	v, ok := m[key]
	return v, ok
}

type lookupPtr struct{ m map[string]any }

func (p *lookupPtr) Lookup(key string) (any, bool) {
	v, ok := p.m[key]
	return v, ok
}
