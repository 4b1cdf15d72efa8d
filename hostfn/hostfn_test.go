package hostfn

import (
	"testing"

	"github.com/mira-lang/mira/errors"
	"github.com/mira-lang/mira/value"
	"golang.org/x/xerrors"
)

func TestBind2Success(t *testing.T) {
	add := Bind2("add", value.IntValue, value.IntValue, func(a, b int64) (value.Value, error) {
		return value.Int(a + b), nil
	})
	result, err := add([]value.Value{value.Int(10), value.Int(32)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n, _ := result.AsInt(); n != 42 {
		t.Fatalf("got %d, want 42", n)
	}
}

func TestBind2ArityMismatch(t *testing.T) {
	add := Bind2("add", value.IntValue, value.IntValue, func(a, b int64) (value.Value, error) {
		return value.Int(a + b), nil
	})
	_, err := add([]value.Value{value.Int(10)})
	var ae *errors.ArgumentError
	if !xerrors.As(err, &ae) {
		t.Fatalf("expected ArgumentError, got %v", err)
	}
	if ae.Ident != "add" || ae.Expected != 2 || ae.Found != 1 {
		t.Fatalf("unexpected payload: %+v", ae)
	}
}

func TestBind2TypeMismatchLabelsArgIndex(t *testing.T) {
	add := Bind2("add", value.IntValue, value.IntValue, func(a, b int64) (value.Value, error) {
		return value.Int(a + b), nil
	})
	_, err := add([]value.Value{value.Int(10), value.Str("hi")})
	var te *errors.TypeError
	if !xerrors.As(err, &te) {
		t.Fatalf("expected TypeError, got %v", err)
	}
	if te.Ident != "ExternalFn(add) Arg#1" {
		t.Fatalf("unexpected ident: %q", te.Ident)
	}
	if te.Expected != value.NameInt || te.Found != value.NameStr {
		t.Fatalf("unexpected payload: %+v", te)
	}
}

func TestBind0(t *testing.T) {
	fn := Bind0("now42", func() (value.Value, error) { return value.Int(42), nil })
	result, err := fn(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n, _ := result.AsInt(); n != 42 {
		t.Fatalf("got %d, want 42", n)
	}
}

func TestBind16Success(t *testing.T) {
	sum16 := Bind16(
		"sum16",
		value.IntValue, value.IntValue, value.IntValue, value.IntValue,
		value.IntValue, value.IntValue, value.IntValue, value.IntValue,
		value.IntValue, value.IntValue, value.IntValue, value.IntValue,
		value.IntValue, value.IntValue, value.IntValue, value.IntValue,
		func(a, b, c, d, e, f, g, h, i, j, k, l, m, n, o, p int64) (value.Value, error) {
			return value.Int(a + b + c + d + e + f + g + h + i + j + k + l + m + n + o + p), nil
		},
	)
	args := make([]value.Value, 16)
	for i := range args {
		args[i] = value.Int(1)
	}
	result, err := sum16(args)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n, _ := result.AsInt(); n != 16 {
		t.Fatalf("got %d, want 16", n)
	}
}

func TestBind16ArityMismatch(t *testing.T) {
	sum16 := Bind16(
		"sum16",
		value.IntValue, value.IntValue, value.IntValue, value.IntValue,
		value.IntValue, value.IntValue, value.IntValue, value.IntValue,
		value.IntValue, value.IntValue, value.IntValue, value.IntValue,
		value.IntValue, value.IntValue, value.IntValue, value.IntValue,
		func(a, b, c, d, e, f, g, h, i, j, k, l, m, n, o, p int64) (value.Value, error) {
			return value.Int(0), nil
		},
	)
	_, err := sum16([]value.Value{value.Int(1)})
	var ae *errors.ArgumentError
	if !xerrors.As(err, &ae) {
		t.Fatalf("expected ArgumentError, got %v", err)
	}
	if ae.Expected != 16 || ae.Found != 1 {
		t.Fatalf("unexpected payload: %+v", ae)
	}
}

func TestBindRawReceivesFullVector(t *testing.T) {
	fn := BindRaw(func(args []value.Value) (value.Value, error) {
		return value.Int(int64(len(args))), nil
	})
	result, err := fn([]value.Value{value.Int(1), value.Int(2), value.Int(3)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n, _ := result.AsInt(); n != 3 {
		t.Fatalf("got %d, want 3", n)
	}
}
