package errors

import (
	"testing"

	"golang.org/x/xerrors"
)

func TestTypeErrorUnwraps(t *testing.T) {
	err := NewTypeError("<if_cond>", "bool", "int")
	var te *TypeError
	if !xerrors.As(err, &te) {
		t.Fatalf("expected TypeError in chain, got %v", err)
	}
	if te.Ident != "<if_cond>" || te.Expected != "bool" || te.Found != "int" {
		t.Fatalf("unexpected payload: %+v", te)
	}
}

func TestArgumentErrorUnwraps(t *testing.T) {
	err := NewArgumentError("add", 2, 1)
	var ae *ArgumentError
	if !xerrors.As(err, &ae) {
		t.Fatalf("expected ArgumentError in chain, got %v", err)
	}
	if ae.Expected != 2 || ae.Found != 1 {
		t.Fatalf("unexpected payload: %+v", ae)
	}
}

func TestIdentNotFoundUnwraps(t *testing.T) {
	err := NewIdentNotFound("x")
	var ie *IdentNotFoundError
	if !xerrors.As(err, &ie) {
		t.Fatalf("expected IdentNotFoundError in chain, got %v", err)
	}
	if ie.Name != "x" {
		t.Fatalf("unexpected name: %q", ie.Name)
	}
}

func TestDivisionByZeroUnwraps(t *testing.T) {
	err := NewDivisionByZero()
	var de *DivisionByZeroError
	if !xerrors.As(err, &de) {
		t.Fatalf("expected DivisionByZeroError in chain, got %v", err)
	}
}

func TestCommandErrorUnwrapsUnderlying(t *testing.T) {
	inner := xerrors.New("boom")
	err := NewCommandError("ls -la", inner)
	var ce *CommandError
	if !xerrors.As(err, &ce) {
		t.Fatalf("expected CommandError in chain, got %v", err)
	}
	if ce.Cmd != "ls -la" {
		t.Fatalf("unexpected cmd: %q", ce.Cmd)
	}
	if !xerrors.Is(err, inner) {
		t.Fatalf("expected inner error reachable via Is")
	}
}
