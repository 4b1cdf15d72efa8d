// Package hostfn implements the generic adapter that wraps a typed host
// callable into the uniform scope.NativeFn shape, with automatic argument
// count and type checking (spec §4.4).
//
// Go's type system has no variadic generic parameter pack, so there is no
// single generic function that covers every arity the way a macro or
// reflection-based binder would. This package spells out the ladder
// Bind0..Bind16 by hand, matching spec §4.4's "N up to at least 16" floor,
// and exposes BindRaw as the documented escape hatch for arities beyond
// that ladder, or for genuinely variadic host functions — BindRaw receives
// the full, unchecked argument vector directly, exactly as spec §4.4's
// "variadic (no-arity adapter)" clause describes.
package hostfn

import (
	"fmt"

	"github.com/mira-lang/mira/errors"
	"github.com/mira-lang/mira/scope"
	"github.com/mira-lang/mira/value"
)

func argIdent(name string, i int) string {
	return fmt.Sprintf("ExternalFn(%s) Arg#%d", name, i)
}

func checkArity(name string, want, got int) error {
	if want != got {
		return errors.NewArgumentError(name, want, got)
	}
	return nil
}

// BindRaw registers a variadic host hook with no arity or type checks
// injected; the hook receives the full evaluated argument vector as-is.
func BindRaw(hook func(args []value.Value) (value.Value, error)) scope.NativeFn {
	return scope.NativeFn(hook)
}

// Bind0 adapts a zero-argument host function.
func Bind0(name string, fn func() (value.Value, error)) scope.NativeFn {
	return func(args []value.Value) (value.Value, error) {
		if err := checkArity(name, 0, len(args)); err != nil {
			return value.Unit, err
		}
		return fn()
	}
}

// Bind1 adapts a one-argument host function.
func Bind1[T1 any](name string, a1 value.FromValue[T1], fn func(T1) (value.Value, error)) scope.NativeFn {
	return func(args []value.Value) (value.Value, error) {
		if err := checkArity(name, 1, len(args)); err != nil {
			return value.Unit, err
		}
		v1, err := a1(args[0], argIdent(name, 0))
		if err != nil {
			return value.Unit, err
		}
		return fn(v1)
	}
}

// Bind2 adapts a two-argument host function.
func Bind2[T1, T2 any](name string, a1 value.FromValue[T1], a2 value.FromValue[T2], fn func(T1, T2) (value.Value, error)) scope.NativeFn {
	return func(args []value.Value) (value.Value, error) {
		if err := checkArity(name, 2, len(args)); err != nil {
			return value.Unit, err
		}
		v1, err := a1(args[0], argIdent(name, 0))
		if err != nil {
			return value.Unit, err
		}
		v2, err := a2(args[1], argIdent(name, 1))
		if err != nil {
			return value.Unit, err
		}
		return fn(v1, v2)
	}
}

// Bind3 adapts a three-argument host function.
func Bind3[T1, T2, T3 any](name string, a1 value.FromValue[T1], a2 value.FromValue[T2], a3 value.FromValue[T3], fn func(T1, T2, T3) (value.Value, error)) scope.NativeFn {
	return func(args []value.Value) (value.Value, error) {
		if err := checkArity(name, 3, len(args)); err != nil {
			return value.Unit, err
		}
		v1, err := a1(args[0], argIdent(name, 0))
		if err != nil {
			return value.Unit, err
		}
		v2, err := a2(args[1], argIdent(name, 1))
		if err != nil {
			return value.Unit, err
		}
		v3, err := a3(args[2], argIdent(name, 2))
		if err != nil {
			return value.Unit, err
		}
		return fn(v1, v2, v3)
	}
}

// Bind4 adapts a four-argument host function.
func Bind4[T1, T2, T3, T4 any](name string, a1 value.FromValue[T1], a2 value.FromValue[T2], a3 value.FromValue[T3], a4 value.FromValue[T4], fn func(T1, T2, T3, T4) (value.Value, error)) scope.NativeFn {
	return func(args []value.Value) (value.Value, error) {
		if err := checkArity(name, 4, len(args)); err != nil {
			return value.Unit, err
		}
		v1, err := a1(args[0], argIdent(name, 0))
		if err != nil {
			return value.Unit, err
		}
		v2, err := a2(args[1], argIdent(name, 1))
		if err != nil {
			return value.Unit, err
		}
		v3, err := a3(args[2], argIdent(name, 2))
		if err != nil {
			return value.Unit, err
		}
		v4, err := a4(args[3], argIdent(name, 3))
		if err != nil {
			return value.Unit, err
		}
		return fn(v1, v2, v3, v4)
	}
}

// Bind5 adapts a five-argument host function.
func Bind5[T1, T2, T3, T4, T5 any](name string, a1 value.FromValue[T1], a2 value.FromValue[T2], a3 value.FromValue[T3], a4 value.FromValue[T4], a5 value.FromValue[T5], fn func(T1, T2, T3, T4, T5) (value.Value, error)) scope.NativeFn {
	return func(args []value.Value) (value.Value, error) {
		if err := checkArity(name, 5, len(args)); err != nil {
			return value.Unit, err
		}
		v1, err := a1(args[0], argIdent(name, 0))
		if err != nil {
			return value.Unit, err
		}
		v2, err := a2(args[1], argIdent(name, 1))
		if err != nil {
			return value.Unit, err
		}
		v3, err := a3(args[2], argIdent(name, 2))
		if err != nil {
			return value.Unit, err
		}
		v4, err := a4(args[3], argIdent(name, 3))
		if err != nil {
			return value.Unit, err
		}
		v5, err := a5(args[4], argIdent(name, 4))
		if err != nil {
			return value.Unit, err
		}
		return fn(v1, v2, v3, v4, v5)
	}
}

// Bind6 adapts a six-argument host function.
func Bind6[T1, T2, T3, T4, T5, T6 any](name string, a1 value.FromValue[T1], a2 value.FromValue[T2], a3 value.FromValue[T3], a4 value.FromValue[T4], a5 value.FromValue[T5], a6 value.FromValue[T6], fn func(T1, T2, T3, T4, T5, T6) (value.Value, error)) scope.NativeFn {
	return func(args []value.Value) (value.Value, error) {
		if err := checkArity(name, 6, len(args)); err != nil {
			return value.Unit, err
		}
		v1, err := a1(args[0], argIdent(name, 0))
		if err != nil {
			return value.Unit, err
		}
		v2, err := a2(args[1], argIdent(name, 1))
		if err != nil {
			return value.Unit, err
		}
		v3, err := a3(args[2], argIdent(name, 2))
		if err != nil {
			return value.Unit, err
		}
		v4, err := a4(args[3], argIdent(name, 3))
		if err != nil {
			return value.Unit, err
		}
		v5, err := a5(args[4], argIdent(name, 4))
		if err != nil {
			return value.Unit, err
		}
		v6, err := a6(args[5], argIdent(name, 5))
		if err != nil {
			return value.Unit, err
		}
		return fn(v1, v2, v3, v4, v5, v6)
	}
}

// Bind7 adapts a 7-argument host function.
func Bind7[T1, T2, T3, T4, T5, T6, T7 any](name string, a1 value.FromValue[T1], a2 value.FromValue[T2], a3 value.FromValue[T3], a4 value.FromValue[T4], a5 value.FromValue[T5], a6 value.FromValue[T6], a7 value.FromValue[T7], fn func(T1, T2, T3, T4, T5, T6, T7) (value.Value, error)) scope.NativeFn {
	return func(args []value.Value) (value.Value, error) {
		if err := checkArity(name, 7, len(args)); err != nil {
			return value.Unit, err
		}
		v1, err := a1(args[0], argIdent(name, 0))
		if err != nil {
			return value.Unit, err
		}
		v2, err := a2(args[1], argIdent(name, 1))
		if err != nil {
			return value.Unit, err
		}
		v3, err := a3(args[2], argIdent(name, 2))
		if err != nil {
			return value.Unit, err
		}
		v4, err := a4(args[3], argIdent(name, 3))
		if err != nil {
			return value.Unit, err
		}
		v5, err := a5(args[4], argIdent(name, 4))
		if err != nil {
			return value.Unit, err
		}
		v6, err := a6(args[5], argIdent(name, 5))
		if err != nil {
			return value.Unit, err
		}
		v7, err := a7(args[6], argIdent(name, 6))
		if err != nil {
			return value.Unit, err
		}
		return fn(v1, v2, v3, v4, v5, v6, v7)
	}
}

// Bind8 adapts an 8-argument host function.
func Bind8[T1, T2, T3, T4, T5, T6, T7, T8 any](name string, a1 value.FromValue[T1], a2 value.FromValue[T2], a3 value.FromValue[T3], a4 value.FromValue[T4], a5 value.FromValue[T5], a6 value.FromValue[T6], a7 value.FromValue[T7], a8 value.FromValue[T8], fn func(T1, T2, T3, T4, T5, T6, T7, T8) (value.Value, error)) scope.NativeFn {
	return func(args []value.Value) (value.Value, error) {
		if err := checkArity(name, 8, len(args)); err != nil {
			return value.Unit, err
		}
		v1, err := a1(args[0], argIdent(name, 0))
		if err != nil {
			return value.Unit, err
		}
		v2, err := a2(args[1], argIdent(name, 1))
		if err != nil {
			return value.Unit, err
		}
		v3, err := a3(args[2], argIdent(name, 2))
		if err != nil {
			return value.Unit, err
		}
		v4, err := a4(args[3], argIdent(name, 3))
		if err != nil {
			return value.Unit, err
		}
		v5, err := a5(args[4], argIdent(name, 4))
		if err != nil {
			return value.Unit, err
		}
		v6, err := a6(args[5], argIdent(name, 5))
		if err != nil {
			return value.Unit, err
		}
		v7, err := a7(args[6], argIdent(name, 6))
		if err != nil {
			return value.Unit, err
		}
		v8, err := a8(args[7], argIdent(name, 7))
		if err != nil {
			return value.Unit, err
		}
		return fn(v1, v2, v3, v4, v5, v6, v7, v8)
	}
}

// Bind9 adapts a 9-argument host function.
func Bind9[T1, T2, T3, T4, T5, T6, T7, T8, T9 any](name string, a1 value.FromValue[T1], a2 value.FromValue[T2], a3 value.FromValue[T3], a4 value.FromValue[T4], a5 value.FromValue[T5], a6 value.FromValue[T6], a7 value.FromValue[T7], a8 value.FromValue[T8], a9 value.FromValue[T9], fn func(T1, T2, T3, T4, T5, T6, T7, T8, T9) (value.Value, error)) scope.NativeFn {
	return func(args []value.Value) (value.Value, error) {
		if err := checkArity(name, 9, len(args)); err != nil {
			return value.Unit, err
		}
		v1, err := a1(args[0], argIdent(name, 0))
		if err != nil {
			return value.Unit, err
		}
		v2, err := a2(args[1], argIdent(name, 1))
		if err != nil {
			return value.Unit, err
		}
		v3, err := a3(args[2], argIdent(name, 2))
		if err != nil {
			return value.Unit, err
		}
		v4, err := a4(args[3], argIdent(name, 3))
		if err != nil {
			return value.Unit, err
		}
		v5, err := a5(args[4], argIdent(name, 4))
		if err != nil {
			return value.Unit, err
		}
		v6, err := a6(args[5], argIdent(name, 5))
		if err != nil {
			return value.Unit, err
		}
		v7, err := a7(args[6], argIdent(name, 6))
		if err != nil {
			return value.Unit, err
		}
		v8, err := a8(args[7], argIdent(name, 7))
		if err != nil {
			return value.Unit, err
		}
		v9, err := a9(args[8], argIdent(name, 8))
		if err != nil {
			return value.Unit, err
		}
		return fn(v1, v2, v3, v4, v5, v6, v7, v8, v9)
	}
}

// Bind10 adapts a 10-argument host function.
func Bind10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10 any](name string, a1 value.FromValue[T1], a2 value.FromValue[T2], a3 value.FromValue[T3], a4 value.FromValue[T4], a5 value.FromValue[T5], a6 value.FromValue[T6], a7 value.FromValue[T7], a8 value.FromValue[T8], a9 value.FromValue[T9], a10 value.FromValue[T10], fn func(T1, T2, T3, T4, T5, T6, T7, T8, T9, T10) (value.Value, error)) scope.NativeFn {
	return func(args []value.Value) (value.Value, error) {
		if err := checkArity(name, 10, len(args)); err != nil {
			return value.Unit, err
		}
		v1, err := a1(args[0], argIdent(name, 0))
		if err != nil {
			return value.Unit, err
		}
		v2, err := a2(args[1], argIdent(name, 1))
		if err != nil {
			return value.Unit, err
		}
		v3, err := a3(args[2], argIdent(name, 2))
		if err != nil {
			return value.Unit, err
		}
		v4, err := a4(args[3], argIdent(name, 3))
		if err != nil {
			return value.Unit, err
		}
		v5, err := a5(args[4], argIdent(name, 4))
		if err != nil {
			return value.Unit, err
		}
		v6, err := a6(args[5], argIdent(name, 5))
		if err != nil {
			return value.Unit, err
		}
		v7, err := a7(args[6], argIdent(name, 6))
		if err != nil {
			return value.Unit, err
		}
		v8, err := a8(args[7], argIdent(name, 7))
		if err != nil {
			return value.Unit, err
		}
		v9, err := a9(args[8], argIdent(name, 8))
		if err != nil {
			return value.Unit, err
		}
		v10, err := a10(args[9], argIdent(name, 9))
		if err != nil {
			return value.Unit, err
		}
		return fn(v1, v2, v3, v4, v5, v6, v7, v8, v9, v10)
	}
}

// Bind11 adapts an 11-argument host function.
func Bind11[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11 any](name string, a1 value.FromValue[T1], a2 value.FromValue[T2], a3 value.FromValue[T3], a4 value.FromValue[T4], a5 value.FromValue[T5], a6 value.FromValue[T6], a7 value.FromValue[T7], a8 value.FromValue[T8], a9 value.FromValue[T9], a10 value.FromValue[T10], a11 value.FromValue[T11], fn func(T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11) (value.Value, error)) scope.NativeFn {
	return func(args []value.Value) (value.Value, error) {
		if err := checkArity(name, 11, len(args)); err != nil {
			return value.Unit, err
		}
		v1, err := a1(args[0], argIdent(name, 0))
		if err != nil {
			return value.Unit, err
		}
		v2, err := a2(args[1], argIdent(name, 1))
		if err != nil {
			return value.Unit, err
		}
		v3, err := a3(args[2], argIdent(name, 2))
		if err != nil {
			return value.Unit, err
		}
		v4, err := a4(args[3], argIdent(name, 3))
		if err != nil {
			return value.Unit, err
		}
		v5, err := a5(args[4], argIdent(name, 4))
		if err != nil {
			return value.Unit, err
		}
		v6, err := a6(args[5], argIdent(name, 5))
		if err != nil {
			return value.Unit, err
		}
		v7, err := a7(args[6], argIdent(name, 6))
		if err != nil {
			return value.Unit, err
		}
		v8, err := a8(args[7], argIdent(name, 7))
		if err != nil {
			return value.Unit, err
		}
		v9, err := a9(args[8], argIdent(name, 8))
		if err != nil {
			return value.Unit, err
		}
		v10, err := a10(args[9], argIdent(name, 9))
		if err != nil {
			return value.Unit, err
		}
		v11, err := a11(args[10], argIdent(name, 10))
		if err != nil {
			return value.Unit, err
		}
		return fn(v1, v2, v3, v4, v5, v6, v7, v8, v9, v10, v11)
	}
}

// Bind12 adapts a 12-argument host function.
func Bind12[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12 any](name string, a1 value.FromValue[T1], a2 value.FromValue[T2], a3 value.FromValue[T3], a4 value.FromValue[T4], a5 value.FromValue[T5], a6 value.FromValue[T6], a7 value.FromValue[T7], a8 value.FromValue[T8], a9 value.FromValue[T9], a10 value.FromValue[T10], a11 value.FromValue[T11], a12 value.FromValue[T12], fn func(T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12) (value.Value, error)) scope.NativeFn {
	return func(args []value.Value) (value.Value, error) {
		if err := checkArity(name, 12, len(args)); err != nil {
			return value.Unit, err
		}
		v1, err := a1(args[0], argIdent(name, 0))
		if err != nil {
			return value.Unit, err
		}
		v2, err := a2(args[1], argIdent(name, 1))
		if err != nil {
			return value.Unit, err
		}
		v3, err := a3(args[2], argIdent(name, 2))
		if err != nil {
			return value.Unit, err
		}
		v4, err := a4(args[3], argIdent(name, 3))
		if err != nil {
			return value.Unit, err
		}
		v5, err := a5(args[4], argIdent(name, 4))
		if err != nil {
			return value.Unit, err
		}
		v6, err := a6(args[5], argIdent(name, 5))
		if err != nil {
			return value.Unit, err
		}
		v7, err := a7(args[6], argIdent(name, 6))
		if err != nil {
			return value.Unit, err
		}
		v8, err := a8(args[7], argIdent(name, 7))
		if err != nil {
			return value.Unit, err
		}
		v9, err := a9(args[8], argIdent(name, 8))
		if err != nil {
			return value.Unit, err
		}
		v10, err := a10(args[9], argIdent(name, 9))
		if err != nil {
			return value.Unit, err
		}
		v11, err := a11(args[10], argIdent(name, 10))
		if err != nil {
			return value.Unit, err
		}
		v12, err := a12(args[11], argIdent(name, 11))
		if err != nil {
			return value.Unit, err
		}
		return fn(v1, v2, v3, v4, v5, v6, v7, v8, v9, v10, v11, v12)
	}
}

// Bind13 adapts a 13-argument host function.
func Bind13[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13 any](name string, a1 value.FromValue[T1], a2 value.FromValue[T2], a3 value.FromValue[T3], a4 value.FromValue[T4], a5 value.FromValue[T5], a6 value.FromValue[T6], a7 value.FromValue[T7], a8 value.FromValue[T8], a9 value.FromValue[T9], a10 value.FromValue[T10], a11 value.FromValue[T11], a12 value.FromValue[T12], a13 value.FromValue[T13], fn func(T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13) (value.Value, error)) scope.NativeFn {
	return func(args []value.Value) (value.Value, error) {
		if err := checkArity(name, 13, len(args)); err != nil {
			return value.Unit, err
		}
		v1, err := a1(args[0], argIdent(name, 0))
		if err != nil {
			return value.Unit, err
		}
		v2, err := a2(args[1], argIdent(name, 1))
		if err != nil {
			return value.Unit, err
		}
		v3, err := a3(args[2], argIdent(name, 2))
		if err != nil {
			return value.Unit, err
		}
		v4, err := a4(args[3], argIdent(name, 3))
		if err != nil {
			return value.Unit, err
		}
		v5, err := a5(args[4], argIdent(name, 4))
		if err != nil {
			return value.Unit, err
		}
		v6, err := a6(args[5], argIdent(name, 5))
		if err != nil {
			return value.Unit, err
		}
		v7, err := a7(args[6], argIdent(name, 6))
		if err != nil {
			return value.Unit, err
		}
		v8, err := a8(args[7], argIdent(name, 7))
		if err != nil {
			return value.Unit, err
		}
		v9, err := a9(args[8], argIdent(name, 8))
		if err != nil {
			return value.Unit, err
		}
		v10, err := a10(args[9], argIdent(name, 9))
		if err != nil {
			return value.Unit, err
		}
		v11, err := a11(args[10], argIdent(name, 10))
		if err != nil {
			return value.Unit, err
		}
		v12, err := a12(args[11], argIdent(name, 11))
		if err != nil {
			return value.Unit, err
		}
		v13, err := a13(args[12], argIdent(name, 12))
		if err != nil {
			return value.Unit, err
		}
		return fn(v1, v2, v3, v4, v5, v6, v7, v8, v9, v10, v11, v12, v13)
	}
}

// Bind14 adapts a 14-argument host function.
func Bind14[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14 any](name string, a1 value.FromValue[T1], a2 value.FromValue[T2], a3 value.FromValue[T3], a4 value.FromValue[T4], a5 value.FromValue[T5], a6 value.FromValue[T6], a7 value.FromValue[T7], a8 value.FromValue[T8], a9 value.FromValue[T9], a10 value.FromValue[T10], a11 value.FromValue[T11], a12 value.FromValue[T12], a13 value.FromValue[T13], a14 value.FromValue[T14], fn func(T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14) (value.Value, error)) scope.NativeFn {
	return func(args []value.Value) (value.Value, error) {
		if err := checkArity(name, 14, len(args)); err != nil {
			return value.Unit, err
		}
		v1, err := a1(args[0], argIdent(name, 0))
		if err != nil {
			return value.Unit, err
		}
		v2, err := a2(args[1], argIdent(name, 1))
		if err != nil {
			return value.Unit, err
		}
		v3, err := a3(args[2], argIdent(name, 2))
		if err != nil {
			return value.Unit, err
		}
		v4, err := a4(args[3], argIdent(name, 3))
		if err != nil {
			return value.Unit, err
		}
		v5, err := a5(args[4], argIdent(name, 4))
		if err != nil {
			return value.Unit, err
		}
		v6, err := a6(args[5], argIdent(name, 5))
		if err != nil {
			return value.Unit, err
		}
		v7, err := a7(args[6], argIdent(name, 6))
		if err != nil {
			return value.Unit, err
		}
		v8, err := a8(args[7], argIdent(name, 7))
		if err != nil {
			return value.Unit, err
		}
		v9, err := a9(args[8], argIdent(name, 8))
		if err != nil {
			return value.Unit, err
		}
		v10, err := a10(args[9], argIdent(name, 9))
		if err != nil {
			return value.Unit, err
		}
		v11, err := a11(args[10], argIdent(name, 10))
		if err != nil {
			return value.Unit, err
		}
		v12, err := a12(args[11], argIdent(name, 11))
		if err != nil {
			return value.Unit, err
		}
		v13, err := a13(args[12], argIdent(name, 12))
		if err != nil {
			return value.Unit, err
		}
		v14, err := a14(args[13], argIdent(name, 13))
		if err != nil {
			return value.Unit, err
		}
		return fn(v1, v2, v3, v4, v5, v6, v7, v8, v9, v10, v11, v12, v13, v14)
	}
}

// Bind15 adapts a 15-argument host function.
func Bind15[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14, T15 any](name string, a1 value.FromValue[T1], a2 value.FromValue[T2], a3 value.FromValue[T3], a4 value.FromValue[T4], a5 value.FromValue[T5], a6 value.FromValue[T6], a7 value.FromValue[T7], a8 value.FromValue[T8], a9 value.FromValue[T9], a10 value.FromValue[T10], a11 value.FromValue[T11], a12 value.FromValue[T12], a13 value.FromValue[T13], a14 value.FromValue[T14], a15 value.FromValue[T15], fn func(T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14, T15) (value.Value, error)) scope.NativeFn {
	return func(args []value.Value) (value.Value, error) {
		if err := checkArity(name, 15, len(args)); err != nil {
			return value.Unit, err
		}
		v1, err := a1(args[0], argIdent(name, 0))
		if err != nil {
			return value.Unit, err
		}
		v2, err := a2(args[1], argIdent(name, 1))
		if err != nil {
			return value.Unit, err
		}
		v3, err := a3(args[2], argIdent(name, 2))
		if err != nil {
			return value.Unit, err
		}
		v4, err := a4(args[3], argIdent(name, 3))
		if err != nil {
			return value.Unit, err
		}
		v5, err := a5(args[4], argIdent(name, 4))
		if err != nil {
			return value.Unit, err
		}
		v6, err := a6(args[5], argIdent(name, 5))
		if err != nil {
			return value.Unit, err
		}
		v7, err := a7(args[6], argIdent(name, 6))
		if err != nil {
			return value.Unit, err
		}
		v8, err := a8(args[7], argIdent(name, 7))
		if err != nil {
			return value.Unit, err
		}
		v9, err := a9(args[8], argIdent(name, 8))
		if err != nil {
			return value.Unit, err
		}
		v10, err := a10(args[9], argIdent(name, 9))
		if err != nil {
			return value.Unit, err
		}
		v11, err := a11(args[10], argIdent(name, 10))
		if err != nil {
			return value.Unit, err
		}
		v12, err := a12(args[11], argIdent(name, 11))
		if err != nil {
			return value.Unit, err
		}
		v13, err := a13(args[12], argIdent(name, 12))
		if err != nil {
			return value.Unit, err
		}
		v14, err := a14(args[13], argIdent(name, 13))
		if err != nil {
			return value.Unit, err
		}
		v15, err := a15(args[14], argIdent(name, 14))
		if err != nil {
			return value.Unit, err
		}
		return fn(v1, v2, v3, v4, v5, v6, v7, v8, v9, v10, v11, v12, v13, v14, v15)
	}
}

// Bind16 adapts a 16-argument host function.
func Bind16[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14, T15, T16 any](name string, a1 value.FromValue[T1], a2 value.FromValue[T2], a3 value.FromValue[T3], a4 value.FromValue[T4], a5 value.FromValue[T5], a6 value.FromValue[T6], a7 value.FromValue[T7], a8 value.FromValue[T8], a9 value.FromValue[T9], a10 value.FromValue[T10], a11 value.FromValue[T11], a12 value.FromValue[T12], a13 value.FromValue[T13], a14 value.FromValue[T14], a15 value.FromValue[T15], a16 value.FromValue[T16], fn func(T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14, T15, T16) (value.Value, error)) scope.NativeFn {
	return func(args []value.Value) (value.Value, error) {
		if err := checkArity(name, 16, len(args)); err != nil {
			return value.Unit, err
		}
		v1, err := a1(args[0], argIdent(name, 0))
		if err != nil {
			return value.Unit, err
		}
		v2, err := a2(args[1], argIdent(name, 1))
		if err != nil {
			return value.Unit, err
		}
		v3, err := a3(args[2], argIdent(name, 2))
		if err != nil {
			return value.Unit, err
		}
		v4, err := a4(args[3], argIdent(name, 3))
		if err != nil {
			return value.Unit, err
		}
		v5, err := a5(args[4], argIdent(name, 4))
		if err != nil {
			return value.Unit, err
		}
		v6, err := a6(args[5], argIdent(name, 5))
		if err != nil {
			return value.Unit, err
		}
		v7, err := a7(args[6], argIdent(name, 6))
		if err != nil {
			return value.Unit, err
		}
		v8, err := a8(args[7], argIdent(name, 7))
		if err != nil {
			return value.Unit, err
		}
		v9, err := a9(args[8], argIdent(name, 8))
		if err != nil {
			return value.Unit, err
		}
		v10, err := a10(args[9], argIdent(name, 9))
		if err != nil {
			return value.Unit, err
		}
		v11, err := a11(args[10], argIdent(name, 10))
		if err != nil {
			return value.Unit, err
		}
		v12, err := a12(args[11], argIdent(name, 11))
		if err != nil {
			return value.Unit, err
		}
		v13, err := a13(args[12], argIdent(name, 12))
		if err != nil {
			return value.Unit, err
		}
		v14, err := a14(args[13], argIdent(name, 13))
		if err != nil {
			return value.Unit, err
		}
		v15, err := a15(args[14], argIdent(name, 14))
		if err != nil {
			return value.Unit, err
		}
		v16, err := a16(args[15], argIdent(name, 15))
		if err != nil {
			return value.Unit, err
		}
		return fn(v1, v2, v3, v4, v5, v6, v7, v8, v9, v10, v11, v12, v13, v14, v15, v16)
	}
}
