package container

import (
	"reflect"
)

func reflectMap(raw any) (Source, bool) {
	rv := reflect.ValueOf(raw)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}

	converted := make(Map, rv.Len())
	for itr := rv.MapRange(); itr.Next(); {
		converted[itr.Key().String()] = itr.Value().Interface()
	}

	return converted, true
}
