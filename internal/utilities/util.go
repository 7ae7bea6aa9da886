// Package utilities contain utility code that use across the package
package utilities

import (
	"reflect"
	"strconv"
)

// ErrorResponse type for swagger docs. The client reads the "message"
// key on every non-2xx response.
type ErrorResponse struct {
	Message string `json:"message"`
}

// MessageResponse type for swagger docs
type MessageResponse struct {
	Message string `json:"message"`
}

// ParseID parses a numeric entity id from a path or query segment.
// Anything that is not a positive-ish integer is a validation error.
func ParseID(raw string) (int, error) {
	return strconv.Atoi(raw)
}

// MergeNonEmpty help merge struct with non-empty field
func MergeNonEmpty(dst, src interface{}) {
	dv := reflect.ValueOf(dst).Elem()
	sv := reflect.ValueOf(src).Elem()

	for i := 0; i < sv.NumField(); i++ {
		sf := sv.Field(i)
		if !sf.IsZero() {
			df := dv.FieldByName(sv.Type().Field(i).Name)
			if df.IsValid() && df.CanSet() {
				df.Set(sf)
			}
		}
	}
}
