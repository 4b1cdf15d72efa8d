package value

import (
	"testing"

	"github.com/mira-lang/mira/ref"
)

func TestTypeNameCanonical(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{Unit, NameUnit},
		{Int(1), NameInt},
		{Float(1.5), NameFloat},
		{Bool(true), NameBool},
		{Str("hi"), NameStr},
		{Fn(ref.NewFn()), NameFn},
	}
	for _, c := range cases {
		if got := c.v.TypeName(); got != c.want {
			t.Errorf("TypeName() = %q, want %q", got, c.want)
		}
	}
}

func TestTyEq(t *testing.T) {
	if !TyEq(Int(1), Int(2)) {
		t.Errorf("expected same-kind values to be TyEq")
	}
	if TyEq(Int(1), Float(1)) {
		t.Errorf("expected differing-kind values to not be TyEq")
	}
}

func TestEqCrossVariantReturnsFalse(t *testing.T) {
	eq, err := Eq(Int(1), Bool(true))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if eq {
		t.Fatalf("expected cross-variant Eq to be false")
	}
}

func TestEqSameVariant(t *testing.T) {
	cases := []struct {
		a, b Value
		want bool
	}{
		{Int(1), Int(1), true},
		{Int(1), Int(2), false},
		{Float(1.5), Float(1.5), true},
		{Bool(true), Bool(false), false},
		{Str("a"), Str("a"), true},
		{Str("a"), Str("b"), false},
		{Unit, Unit, true},
	}
	for _, c := range cases {
		got, err := Eq(c.a, c.b)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != c.want {
			t.Errorf("Eq(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestStrSharesBackingStorage(t *testing.T) {
	a := Str("hello")
	b := a
	if a.str != b.str {
		t.Fatalf("copy of a Str value does not share its backing storage")
	}
	if av, _ := a.AsStr(); av != "hello" {
		t.Fatalf("unexpected value: %q", av)
	}
	if bv, _ := b.AsStr(); bv != "hello" {
		t.Fatalf("unexpected value: %q", bv)
	}
}

func TestAsAccessorsRejectWrongKind(t *testing.T) {
	if _, ok := Int(1).AsFloat(); ok {
		t.Errorf("AsFloat should fail on Int")
	}
	if _, ok := Str("x").AsBool(); ok {
		t.Errorf("AsBool should fail on Str")
	}
	if _, ok := Unit.AsFn(); ok {
		t.Errorf("AsFn should fail on Unit")
	}
}

func TestDisplayStrings(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{Int(42), "42"},
		{Bool(true), "true"},
		{Str("hi"), "hi"},
		{Unit, "()"},
	}
	for _, c := range cases {
		if got := c.v.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}
