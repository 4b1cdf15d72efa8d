// Package value implements the dynamically-typed value model: a tagged
// union of primitive values plus a function-reference variant, and the
// variant-capability mechanism host code uses to extract typed Go values
// out of it.
package value

import (
	"fmt"
	"strconv"

	"github.com/mira-lang/mira/ref"
)

// Kind tags the variant held by a Value.
type Kind uint8

const (
	// KindUnit is the absence-of-value marker.
	KindUnit Kind = iota
	KindInt
	KindFloat
	KindBool
	KindStr
	KindFn
)

// canonical type-name strings. Part of the wire contract: they appear in
// error messages and in the result of type_of. Do not change them.
const (
	NameUnit  = "unit"
	NameInt   = "int"
	NameFloat = "float"
	NameBool  = "bool"
	NameStr   = "str"
	NameFn    = "fn"
)

// sharedString is the heap-allocated, shared-ownership backing for Value's
// Str variant. Strings are never mutated in place, so a bare *string would
// already be safe to share, but wrapping it documents the invariant and
// gives future mutation helpers (e.g. interning) a single seam.
type sharedString struct {
	s string
}

// Value is the tagged union every expression in the language evaluates to.
//
// The zero Value is Unit. Numeric variants never implicitly convert into
// each other; equality across differing Kinds is a type error, not a
// silent false (see Eq).
type Value struct {
	kind Kind
	i    int64
	f    float64
	b    bool
	str  *sharedString
	fn   ref.FnRef
}

// Unit is the canonical absence-of-value.
var Unit = Value{kind: KindUnit}

// Int constructs an Int value.
func Int(v int64) Value { return Value{kind: KindInt, i: v} }

// Float constructs a Float value.
func Float(v float64) Value { return Value{kind: KindFloat, f: v} }

// Bool constructs a Bool value.
func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

// Str constructs a Str value from Go text. The backing storage is shared on
// every copy of the returned Value.
func Str(v string) Value { return Value{kind: KindStr, str: &sharedString{s: v}} }

// Fn constructs a function-reference value.
func Fn(r ref.FnRef) Value { return Value{kind: KindFn, fn: r} }

// Kind reports the variant tag held by v.
func (v Value) Kind() Kind { return v.kind }

// TypeName returns the canonical name for v's variant. Contractual: appears
// in error messages and in the type_of host function's result.
func (v Value) TypeName() string { return KindName(v.kind) }

// KindName returns the canonical name for a Kind.
func KindName(k Kind) string {
	switch k {
	case KindUnit:
		return NameUnit
	case KindInt:
		return NameInt
	case KindFloat:
		return NameFloat
	case KindBool:
		return NameBool
	case KindStr:
		return NameStr
	case KindFn:
		return NameFn
	default:
		return "<invalid>"
	}
}

// TyEq reports whether a and b share the same variant tag.
func TyEq(a, b Value) bool { return a.kind == b.kind }

// AsInt borrows the Int payload. ok is false if v is not an Int.
func (v Value) AsInt() (int64, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return v.i, true
}

// AsFloat borrows the Float payload. ok is false if v is not a Float.
func (v Value) AsFloat() (float64, bool) {
	if v.kind != KindFloat {
		return 0, false
	}
	return v.f, true
}

// AsBool borrows the Bool payload. ok is false if v is not a Bool.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// AsStr borrows the Str payload. ok is false if v is not a Str.
func (v Value) AsStr() (string, bool) {
	if v.kind != KindStr {
		return "", false
	}
	return v.str.s, true
}

// AsFn borrows the Fn payload. ok is false if v is not a Fn.
func (v Value) AsFn() (ref.FnRef, bool) {
	if v.kind != KindFn {
		return 0, false
	}
	return v.fn, true
}

// Eq compares two values structurally. Cross-variant comparisons return
// false here; the language's "cross-variant equality is a type error"
// invariant is enforced by the caller (evalEqOp checks TyEq first) rather
// than inside Eq itself.
func Eq(a, b Value) (bool, error) {
	if a.kind != b.kind {
		return false, nil
	}
	switch a.kind {
	case KindUnit:
		return true, nil
	case KindInt:
		return a.i == b.i, nil
	case KindFloat:
		return a.f == b.f, nil
	case KindBool:
		return a.b == b.b, nil
	case KindStr:
		return a.str.s == b.str.s, nil
	case KindFn:
		return a.fn == b.fn, nil
	default:
		return false, fmt.Errorf("value: unreachable kind %d", a.kind)
	}
}

// String renders v in its display form, used by host functions such as
// print/println.
func (v Value) String() string {
	switch v.kind {
	case KindUnit:
		return "()"
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindStr:
		return v.str.s
	case KindFn:
		return v.fn.String()
	default:
		return "<invalid>"
	}
}
