package primitive

import (
	"encoding"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"record-mapper/utils"
)

var (
	ErrNotAllowed    = errors.New("conversion not allowed")
	ErrOverflow      = errors.New("value out of range")
	ErrInvalidFormat = errors.New("invalid format")
)

// Convert turns a raw scalar value into a value of the target type, using only
// the conversions enabled by allowed. The returned value is addressable-free
// and can be assigned to a field of type to.
func Convert(raw any, to reflect.Type, allowed CategoryEnum) (reflect.Value, error) {
	src := reflect.ValueOf(raw)
	if !src.IsValid() {
		return reflect.Value{}, fmt.Errorf("%w: nil into %v", ErrNotAllowed, to)
	}

	if src.Type() == to {
		return src, nil
	}

	toKind := FromReflectType(to)
	if toKind == KindInterface {
		if !src.Type().AssignableTo(to) {
			return reflect.Value{}, fmt.Errorf("%w: %v does not implement %v", ErrNotAllowed, src.Type(), to)
		}
		return src.Convert(to), nil
	}

	fromKind := FromReflectType(src.Type())
	if fromKind == 0 || toKind == 0 || !Allowed(fromKind, toKind, allowed) {
		return reflect.Value{}, fmt.Errorf("%w: %v into %v", ErrNotAllowed, src.Type(), to)
	}

	dst := reflect.New(to).Elem()

	var err error
	switch {
	case toKind.IsSigned():
		var v int64
		if v, err = toSigned(src, fromKind, toKind); err == nil {
			dst.SetInt(v)
		}
	case toKind.IsUnsigned():
		var v uint64
		if v, err = toUnsigned(src, fromKind, toKind); err == nil {
			dst.SetUint(v)
		}
	case toKind.IsFloat():
		var v float64
		if v, err = toFloat(src, fromKind, toKind); err == nil {
			dst.SetFloat(v)
		}
	case toKind == KindBool:
		var v bool
		if v, err = toBool(src, fromKind); err == nil {
			dst.SetBool(v)
		}
	case toKind == KindString:
		dst.SetString(toString(src, fromKind))
	case toKind == KindBytes:
		dst.SetBytes(toBytes(src, fromKind))
	case toKind == KindTime:
		var v time.Time
		if v, err = toTime(src, fromKind); err == nil {
			dst.Set(reflect.ValueOf(v))
		}
	case toKind == KindDuration:
		var v time.Duration
		if v, err = toDuration(src, fromKind); err == nil {
			dst.Set(reflect.ValueOf(v))
		}
	case toKind == KindText:
		err = dst.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText(toBytes(src, fromKind))
		if err != nil {
			err = fmt.Errorf("%w: %w", ErrInvalidFormat, err)
		}
	default:
		err = fmt.Errorf("%w: %v into %v", ErrNotAllowed, src.Type(), to)
	}

	if err != nil {
		return reflect.Value{}, err
	}

	return dst, nil
}

func signedBounds(kind KindEnum) (int64, int64) {
	bits := kind.Bits()
	return -1 << (bits - 1), 1<<(bits-1) - 1
}

func unsignedBound(kind KindEnum) uint64 {
	bits := kind.Bits()
	if bits == 64 {
		return math.MaxUint64
	}
	return 1<<bits - 1
}

func toSigned(src reflect.Value, from, to KindEnum) (int64, error) {
	lo, hi := signedBounds(to)

	switch {
	case from.IsSigned():
		v := src.Int()
		if !utils.IsInRange(lo, v, hi) {
			return 0, fmt.Errorf("%w: %d into %v", ErrOverflow, v, to)
		}
		return v, nil
	case from.IsUnsigned():
		v := src.Uint()
		if v > uint64(hi) {
			return 0, fmt.Errorf("%w: %d into %v", ErrOverflow, v, to)
		}
		return int64(v), nil
	case from.IsFloat():
		v := math.RoundToEven(src.Float())
		// float64(hi) rounds up to 2^63 for int64, so the upper bound is exclusive
		if math.IsNaN(v) || v < float64(lo) || v >= -float64(lo) {
			return 0, fmt.Errorf("%w: %v into %v", ErrOverflow, src.Float(), to)
		}
		return int64(v), nil
	case from == KindBool:
		if src.Bool() {
			return 1, nil
		}
		return 0, nil
	case from == KindString:
		v, err := strconv.ParseInt(strings.TrimSpace(src.String()), 10, to.Bits())
		return v, numError(err, src.String(), to)
	case from == KindTime:
		v := src.Interface().(time.Time).Unix()
		if !utils.IsInRange(lo, v, hi) {
			return 0, fmt.Errorf("%w: %d into %v", ErrOverflow, v, to)
		}
		return v, nil
	case from == KindDuration:
		v := int64(src.Interface().(time.Duration))
		if !utils.IsInRange(lo, v, hi) {
			return 0, fmt.Errorf("%w: %d into %v", ErrOverflow, v, to)
		}
		return v, nil
	}

	return 0, fmt.Errorf("%w: %v into %v", ErrNotAllowed, from, to)
}

func toUnsigned(src reflect.Value, from, to KindEnum) (uint64, error) {
	hi := unsignedBound(to)

	switch {
	case from.IsSigned():
		v := src.Int()
		if v < 0 || uint64(v) > hi {
			return 0, fmt.Errorf("%w: %d into %v", ErrOverflow, v, to)
		}
		return uint64(v), nil
	case from.IsUnsigned():
		v := src.Uint()
		if v > hi {
			return 0, fmt.Errorf("%w: %d into %v", ErrOverflow, v, to)
		}
		return v, nil
	case from.IsFloat():
		v := math.RoundToEven(src.Float())
		if math.IsNaN(v) || v < 0 || v >= float64(hi)+1 {
			return 0, fmt.Errorf("%w: %v into %v", ErrOverflow, src.Float(), to)
		}
		return uint64(v), nil
	case from == KindBool:
		if src.Bool() {
			return 1, nil
		}
		return 0, nil
	case from == KindString:
		v, err := strconv.ParseUint(strings.TrimSpace(src.String()), 10, to.Bits())
		return v, numError(err, src.String(), to)
	case from == KindTime:
		v := src.Interface().(time.Time).Unix()
		if v < 0 || uint64(v) > hi {
			return 0, fmt.Errorf("%w: %d into %v", ErrOverflow, v, to)
		}
		return uint64(v), nil
	case from == KindDuration:
		v := int64(src.Interface().(time.Duration))
		if v < 0 || uint64(v) > hi {
			return 0, fmt.Errorf("%w: %d into %v", ErrOverflow, v, to)
		}
		return uint64(v), nil
	}

	return 0, fmt.Errorf("%w: %v into %v", ErrNotAllowed, from, to)
}

func toFloat(src reflect.Value, from, to KindEnum) (float64, error) {
	var v float64

	switch {
	case from.IsSigned():
		v = float64(src.Int())
	case from.IsUnsigned():
		v = float64(src.Uint())
	case from.IsFloat():
		v = src.Float()
	case from == KindString:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(src.String()), to.Bits())
		if err != nil {
			return 0, numError(err, src.String(), to)
		}
		v = parsed
	case from == KindDuration:
		v = src.Interface().(time.Duration).Seconds()
	default:
		return 0, fmt.Errorf("%w: %v into %v", ErrNotAllowed, from, to)
	}

	if to == KindFloat32 && !math.IsInf(v, 0) && math.Abs(v) > math.MaxFloat32 {
		return 0, fmt.Errorf("%w: %v into %v", ErrOverflow, v, to)
	}

	return v, nil
}

func toBool(src reflect.Value, from KindEnum) (bool, error) {
	switch {
	case from == KindBool:
		return src.Bool(), nil
	case from.IsSigned():
		return src.Int() != 0, nil
	case from.IsUnsigned():
		return src.Uint() != 0, nil
	case from == KindString:
		return ParseBool(src.String())
	}

	return false, fmt.Errorf("%w: %v into %v", ErrNotAllowed, from, KindBool)
}

// ParseBool accepts yes/no, on/off, true/false and 1/0 in any letter case.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	}

	return false, fmt.Errorf("%w: %q is not a boolean", ErrInvalidFormat, s)
}

func toString(src reflect.Value, from KindEnum) string {
	switch {
	case from.IsSigned():
		return strconv.FormatInt(src.Int(), 10)
	case from.IsUnsigned():
		return strconv.FormatUint(src.Uint(), 10)
	case from.IsFloat():
		return strconv.FormatFloat(src.Float(), 'g', -1, from.Bits())
	case from == KindBool:
		return strconv.FormatBool(src.Bool())
	case from == KindBytes:
		return string(src.Bytes())
	case from == KindTime:
		return src.Interface().(time.Time).Format(time.RFC3339Nano)
	case from == KindDuration:
		return src.Interface().(time.Duration).String()
	}

	return src.String()
}

func toBytes(src reflect.Value, from KindEnum) []byte {
	if from == KindBytes {
		return append([]byte(nil), src.Bytes()...)
	}

	return []byte(src.String())
}

func toTime(src reflect.Value, from KindEnum) (time.Time, error) {
	switch {
	case from == KindTime:
		return src.Interface().(time.Time), nil
	case from == KindString:
		t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(src.String()))
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
		}
		return t, nil
	case from.IsSigned():
		return time.Unix(src.Int(), 0).UTC(), nil
	case from.IsUnsigned():
		v := src.Uint()
		if v > math.MaxInt64 {
			return time.Time{}, fmt.Errorf("%w: %d into %v", ErrOverflow, v, KindTime)
		}
		return time.Unix(int64(v), 0).UTC(), nil
	}

	return time.Time{}, fmt.Errorf("%w: %v into %v", ErrNotAllowed, from, KindTime)
}

func toDuration(src reflect.Value, from KindEnum) (time.Duration, error) {
	switch {
	case from == KindDuration:
		return src.Interface().(time.Duration), nil
	case from == KindString:
		d, err := time.ParseDuration(strings.TrimSpace(src.String()))
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
		}
		return d, nil
	case from.IsSigned():
		return time.Duration(src.Int()), nil
	case from.IsUnsigned():
		v := src.Uint()
		if v > math.MaxInt64 {
			return 0, fmt.Errorf("%w: %d into %v", ErrOverflow, v, KindDuration)
		}
		return time.Duration(v), nil
	case from.IsFloat():
		v := math.Round(src.Float() * float64(time.Second))
		if math.IsNaN(v) || v < math.MinInt64 || v >= math.MaxInt64 {
			return 0, fmt.Errorf("%w: %v into %v", ErrOverflow, src.Float(), KindDuration)
		}
		return time.Duration(v), nil
	}

	return 0, fmt.Errorf("%w: %v into %v", ErrNotAllowed, from, KindDuration)
}

func numError(err error, s string, to KindEnum) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, strconv.ErrRange) {
		return fmt.Errorf("%w: %q into %v", ErrOverflow, s, to)
	}

	return fmt.Errorf("%w: %q is not a %v", ErrInvalidFormat, s, to)
}
