package value

import (
	"github.com/mira-lang/mira/errors"
	"github.com/mira-lang/mira/ref"
)

// FromValue is the variant-capability conversion spec §4.2 calls out: a
// by-value, consuming cast from a Value to a host type T, labelled with the
// identifier (or synthetic probe name, e.g. "<if_cond>") that should appear
// in the resulting TypeError if the cast fails.
type FromValue[T any] func(v Value, ident string) (T, error)

// IntValue is the canonical FromValue adapter for int64.
func IntValue(v Value, ident string) (int64, error) {
	if n, ok := v.AsInt(); ok {
		return n, nil
	}
	return 0, errors.NewTypeError(ident, NameInt, v.TypeName())
}

// FloatValue is the canonical FromValue adapter for float64.
func FloatValue(v Value, ident string) (float64, error) {
	if f, ok := v.AsFloat(); ok {
		return f, nil
	}
	return 0, errors.NewTypeError(ident, NameFloat, v.TypeName())
}

// BoolValue is the canonical FromValue adapter for bool.
func BoolValue(v Value, ident string) (bool, error) {
	if b, ok := v.AsBool(); ok {
		return b, nil
	}
	return false, errors.NewTypeError(ident, NameBool, v.TypeName())
}

// StrValue is the canonical FromValue adapter for string.
func StrValue(v Value, ident string) (string, error) {
	if s, ok := v.AsStr(); ok {
		return s, nil
	}
	return "", errors.NewTypeError(ident, NameStr, v.TypeName())
}

// FnValue is the canonical FromValue adapter for a function reference.
func FnValue(v Value, ident string) (ref.FnRef, error) {
	if r, ok := v.AsFn(); ok {
		return r, nil
	}
	return 0, errors.NewTypeError(ident, NameFn, v.TypeName())
}

// AnyValue is the identity FromValue adapter, used by host functions that
// want the raw Value (e.g. type_of).
func AnyValue(v Value, _ string) (Value, error) {
	return v, nil
}
