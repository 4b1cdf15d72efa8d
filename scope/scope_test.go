package scope

import (
	"testing"

	"github.com/mira-lang/mira/ast"
	"github.com/mira-lang/mira/value"
)

func TestNewVarShadowingLastWriterWins(t *testing.T) {
	s := New("global", 0)
	s.NewVar("a", value.Int(1))
	s.NewVar("a", value.Int(2))
	v := s.Get("a")
	if v == nil {
		t.Fatalf("expected variable a to be found")
	}
	if got, _ := v.Value.AsInt(); got != 2 {
		t.Fatalf("got %d, want 2 (last writer wins)", got)
	}
}

func TestGetMissingReturnsNil(t *testing.T) {
	s := New("global", 0)
	if v := s.Get("nope"); v != nil {
		t.Fatalf("expected nil, got %+v", v)
	}
}

func TestRegisterNativeFnRoundTrip(t *testing.T) {
	s := New("global", 0)
	fr := s.RegisterNativeFn("double", func(args []value.Value) (value.Value, error) {
		n, _ := args[0].AsInt()
		return value.Int(n * 2), nil
	})
	c, err := s.GetFn(fr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Kind != CallableNative || c.Name != "double" {
		t.Fatalf("unexpected callable: %+v", c)
	}
	result, err := c.Hook([]value.Value{value.Int(21)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n, _ := result.AsInt(); n != 42 {
		t.Fatalf("got %d, want 42", n)
	}
}

func TestRegisterScriptFnBindsFnValueAndCallable(t *testing.T) {
	s := New("global", 0)
	def := &ast.FnDef{Name: "rec", Params: []string{"n"}}
	fr := s.RegisterScriptFn(def)

	v := s.Get("rec")
	if v == nil {
		t.Fatalf("expected variable rec to be defined")
	}
	gotRef, ok := v.Value.AsFn()
	if !ok || gotRef != fr {
		t.Fatalf("variable does not reference the registered callable")
	}
	c, err := s.GetFn(fr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Kind != CallableScript || c.Def != def {
		t.Fatalf("unexpected callable: %+v", c)
	}
}

func TestHashFnDefStableAndDiscriminating(t *testing.T) {
	a := &ast.FnDef{Name: "f", Params: []string{"x"}}
	b := &ast.FnDef{Name: "f", Params: []string{"x"}}
	c := &ast.FnDef{Name: "g", Params: []string{"x"}}

	if HashFnDef(a) != HashFnDef(b) {
		t.Fatalf("expected identical defs to hash equal")
	}
	if HashFnDef(a) == HashFnDef(c) {
		t.Fatalf("expected differing defs to hash differently")
	}
}

func TestClearErasesVarsAndFns(t *testing.T) {
	s := New("block", 1)
	s.NewVar("a", value.Int(1))
	fr := s.RegisterNativeFn("f", func(args []value.Value) (value.Value, error) { return value.Unit, nil })

	s.Clear("block", 2)

	if s.Get("a") != nil {
		t.Fatalf("expected vars cleared")
	}
	if _, ok := s.LookupFn(fr); ok {
		t.Fatalf("expected fns cleared")
	}
	if s.Depth != 2 {
		t.Fatalf("expected depth updated to 2, got %d", s.Depth)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := New("global", 0)
	s.NewVar("a", value.Int(1))
	fr := s.RegisterNativeFn("f", func(args []value.Value) (value.Value, error) { return value.Unit, nil })

	clone := s.Clone()
	clone.NewVar("b", value.Int(2))

	if s.Get("b") != nil {
		t.Fatalf("mutating clone must not affect original")
	}
	if _, err := clone.GetFn(fr); err != nil {
		t.Fatalf("clone should carry over registered fns: %v", err)
	}
}
