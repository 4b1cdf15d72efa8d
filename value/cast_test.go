package value

import (
	"testing"

	"github.com/mira-lang/mira/errors"
	"golang.org/x/xerrors"
)

func TestIntValueSuccess(t *testing.T) {
	n, err := IntValue(Int(7), "x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 7 {
		t.Fatalf("got %d, want 7", n)
	}
}

func TestIntValueMismatchLabelsIdent(t *testing.T) {
	_, err := IntValue(Str("hi"), "<neg>")
	var te *errors.TypeError
	if !xerrors.As(err, &te) {
		t.Fatalf("expected TypeError, got %v", err)
	}
	if te.Ident != "<neg>" || te.Expected != NameInt || te.Found != NameStr {
		t.Fatalf("unexpected payload: %+v", te)
	}
}

func TestStrValueMismatch(t *testing.T) {
	_, err := StrValue(Int(1), "ExternalFn(add) Arg#1")
	var te *errors.TypeError
	if !xerrors.As(err, &te) {
		t.Fatalf("expected TypeError, got %v", err)
	}
	if te.Expected != NameStr || te.Found != NameInt {
		t.Fatalf("unexpected payload: %+v", te)
	}
}

func TestAnyValueIsIdentity(t *testing.T) {
	v := Bool(true)
	got, err := AnyValue(v, "ignored")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != v {
		t.Fatalf("expected identity passthrough")
	}
}
