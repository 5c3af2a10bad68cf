package codec

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"

	"record-mapper/primitive"
)

var (
	timeType     = reflect.TypeFor[time.Time]()
	durationType = reflect.TypeFor[time.Duration]()
)

var errCalendarMonths = errors.New("durations with months have no fixed length")

// graphTemporal converts the temporal values returned by the graph driver.
// Times of day become durations since midnight; every temporal shape can
// fill a time.Time field.
func graphTemporal(raw any, variant primitive.Variant, to reflect.Type) (reflect.Value, error) {
	switch to {
	case durationType:
		var d time.Duration
		switch variant {
		case primitive.VariantGraphOffsetTime:
			d = sinceMidnight(time.Time(raw.(dbtype.Time)))
		case primitive.VariantGraphLocalTime:
			d = sinceMidnight(time.Time(raw.(dbtype.LocalTime)))
		case primitive.VariantGraphDuration:
			v := raw.(dbtype.Duration)
			if v.Months != 0 {
				return reflect.Value{}, errCalendarMonths
			}
			d = time.Duration(v.Days)*24*time.Hour +
				time.Duration(v.Seconds)*time.Second +
				time.Duration(v.Nanos)
		default:
			return reflect.Value{}, fmt.Errorf("%w: %T into %v", primitive.ErrNotAllowed, raw, to)
		}
		return reflect.ValueOf(d), nil

	case timeType:
		var t time.Time
		switch v := raw.(type) {
		case dbtype.Date:
			t = time.Time(v)
		case dbtype.Time:
			t = time.Time(v)
		case dbtype.LocalTime:
			t = time.Time(v)
		case dbtype.LocalDateTime:
			t = time.Time(v)
		default:
			return reflect.Value{}, fmt.Errorf("%w: %T into %v", primitive.ErrNotAllowed, raw, to)
		}
		return reflect.ValueOf(t), nil
	}

	return reflect.Value{}, fmt.Errorf("%w: %T into %v", primitive.ErrNotAllowed, raw, to)
}

func sinceMidnight(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Nanosecond())
}
