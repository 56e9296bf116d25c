package store

import (
	"reflect"
)

// Fields converts the non-zero db-tagged fields of an update request into a
// sparse patch. Zero-valued fields are treated as absent, so an empty request
// leaves the stored row untouched. Explicit clears (setting a nullable column
// back to null) are expressed by putting a nil into the patch directly.
func Fields(data any) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	fields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		name := typ.Field(index).Tag.Get("db")
		if name == "" {
			continue
		}

		fields[name] = field.Interface()
	}

	return fields
}
