package internal

import (
	"fmt"
	"math"
	"reflect"
)

// Stringify returns the text form of v, preferring fmt.Stringer. Nil values
// have no text form and are rejected.
func Stringify(v any) (string, error) {
	if v == nil {
		return "", fmt.Errorf("cannot convert nil to a string: %w", ErrInvalidArgument)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return "", fmt.Errorf("cannot convert nil %T to a string: %w", v, ErrInvalidArgument)
		}
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String(), nil
	}
	return fmt.Sprint(v), nil
}

// Floor truncates f toward negative infinity.
func Floor(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("cannot floor %v: %w", f, ErrInvalidArgument)
	}
	floored := math.Floor(f)
	// float64(math.MaxInt) rounds up to 2^63, so the upper bound is exclusive
	if floored < math.MinInt || floored >= math.MaxInt {
		return 0, fmt.Errorf("%v does not fit in an int: %w", f, ErrInvalidArgument)
	}
	return int(floored), nil
}
