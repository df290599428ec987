// Package types contains types shared between packages.
package types

import (
	"reflect"

	"github.com/spf13/cast"
)

// ToStringSlicePreserveString converts v to a string slice.
// If v is a string, it will be wrapped in a slice rather than split into fields.
func ToStringSlicePreserveString(v any) []string {
	vv, _ := ToStringSlicePreserveStringE(v)
	return vv
}

// ToStringSlicePreserveStringE converts v to a string slice.
// If v is a string, it will be wrapped in a slice rather than split into fields.
func ToStringSlicePreserveStringE(v any) ([]string, error) {
	if v == nil {
		return nil, nil
	}
	if sds, ok := v.(string); ok {
		return []string{sds}, nil
	}
	return cast.ToStringSliceE(v)
}

// IsNil reports whether v is nil, including typed nil pointers and slices.
func IsNil(v any) bool {
	if v == nil {
		return true
	}

	value := reflect.ValueOf(v)
	switch value.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return value.IsNil()
	}

	return false
}
