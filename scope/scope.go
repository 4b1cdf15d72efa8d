// Package scope implements one activation frame of the evaluator: the
// mapping from name to variable and from function reference to callable,
// plus the Callable sum type (script function vs. native function) spec
// §3/§4.3/§4.4 describe.
package scope

import (
	"hash/fnv"
	"io"
	"strconv"

	"github.com/mira-lang/mira/ast"
	"github.com/mira-lang/mira/errors"
	"github.com/mira-lang/mira/ref"
	"github.com/mira-lang/mira/value"
)

// Variable is a name + reference + current value record. The Ref is
// assigned at creation and stable for the variable's lifetime.
type Variable struct {
	Name  string
	Ref   ref.Ref
	Value value.Value
}

// NativeFn is a native callable hook: it receives already-evaluated
// arguments and returns a result or a RuntimeError.
type NativeFn func(args []value.Value) (value.Value, error)

// CallableKind tags the variant held by a Callable.
type CallableKind uint8

const (
	CallableScript CallableKind = iota
	CallableNative
)

// Callable is a script-defined function or a host-provided native
// function, stored under its FnRef inside the owning scope's fns map.
type Callable struct {
	Kind CallableKind

	// CallableScript
	Def  *ast.FnDef
	Hash uint64

	// CallableNative
	Name string
	Hook NativeFn
}

// HashFnDef computes the stable 64-bit content hash spec §4.3 requires for
// a script function's Callable identity.
func HashFnDef(def *ast.FnDef) uint64 {
	h := fnv.New64a()
	write := func(s string) {
		h.Write([]byte(s))
		h.Write([]byte{0})
	}
	write(def.Name)
	for _, p := range def.Params {
		write(p)
	}
	hashBlock(h, def.Body)
	return h.Sum64()
}

func hashBlock(h io.Writer, b ast.Block) {
	for _, item := range b {
		hashItem(h, item)
	}
}

// hashItem folds an Item's shape into the running hash. It does not need to
// be exhaustive in a semantically meaningful way beyond giving two textually
// distinct bodies a very high probability of differing hashes; it only
// backs Callable identity, not correctness.
func hashItem(h io.Writer, it ast.Item) {
	write := func(s string) { h.Write([]byte(s)) }
	write(string(rune(it.Kind)))
	write(it.Ident)
	if it.Expr != nil {
		hashExpr(h, *it.Expr)
	}
	if it.FnDef != nil {
		write(it.FnDef.Name)
		for _, p := range it.FnDef.Params {
			write(p)
		}
		hashBlock(h, it.FnDef.Body)
	}
	if it.If != nil {
		hashExpr(h, *it.If.Cond)
		hashBlock(h, it.If.Then)
		if it.If.Else != nil {
			hashBlock(h, *it.If.Else)
		}
	}
	if it.While != nil {
		hashExpr(h, *it.While.Expr)
		hashBlock(h, it.While.Block)
	}
	if it.For != nil {
		write(it.For.Ident)
		hashExpr(h, *it.For.Expr)
		hashBlock(h, it.For.Block)
	}
}

func hashExpr(h io.Writer, e ast.Expr) {
	write := func(s string) { h.Write([]byte(s)) }
	write(string(rune(e.Kind)))
	write(e.Ident)
	write(e.Cmd)
	if e.Literal != nil {
		write(string(rune(e.Literal.Kind)))
		write(strconv.FormatInt(e.Literal.Number, 10))
		write(strconv.FormatFloat(e.Literal.Float, 'g', -1, 64))
		write(strconv.FormatBool(e.Literal.Bool))
		write(e.Literal.String)
	}
	if e.FnCall != nil {
		write(e.FnCall.Ident)
		for _, a := range e.FnCall.Args {
			hashExpr(h, a)
		}
	}
	if e.BinOp != nil {
		write(string(rune(e.BinOp.Op)))
		hashExpr(h, e.BinOp.Left)
		hashExpr(h, e.BinOp.Right)
	}
	if e.UnOp != nil {
		write(string(rune(e.UnOp.Kind)))
		hashExpr(h, e.UnOp.Expr)
	}
	hashBlock(h, e.Block)
}

// Scope is one activation frame: a debug name, a nesting depth, an ordered
// collection of variables keyed by name (last-writer-wins within a scope),
// and a map from FnRef to Callable.
type Scope struct {
	Name  string
	Depth int

	vars []*Variable
	fns  map[ref.FnRef]*Callable
}

// New creates a scope at the given depth.
func New(name string, depth int) *Scope {
	return &Scope{Name: name, Depth: depth, fns: make(map[ref.FnRef]*Callable)}
}

// NewVar creates a fresh Ref, appends a variable under name, and returns
// the ref. A later Get by that name returns this variable until it is
// shadowed by a subsequent NewVar with the same name in this scope.
func (s *Scope) NewVar(name string, v value.Value) ref.Ref {
	r := ref.New()
	s.vars = append(s.vars, &Variable{Name: name, Ref: r, Value: v})
	return r
}

// RegisterScriptFn hashes def's content, mints a FnRef, installs a
// Value::Fn(ref) variable under the function's name, and stores the
// Callable under that FnRef.
func (s *Scope) RegisterScriptFn(def *ast.FnDef) ref.FnRef {
	fr := ref.NewFn()
	s.NewVar(def.Name, value.Fn(fr))
	s.fns[fr] = &Callable{Kind: CallableScript, Def: def, Hash: HashFnDef(def)}
	return fr
}

// RegisterNativeFn is the native-function symmetric of RegisterScriptFn.
func (s *Scope) RegisterNativeFn(name string, hook NativeFn) ref.FnRef {
	fr := ref.NewFn()
	s.NewVar(name, value.Fn(fr))
	s.fns[fr] = &Callable{Kind: CallableNative, Name: name, Hook: hook}
	return fr
}

// GetFn returns the callable registered under fr in this scope, or a
// NullRefError if this scope does not hold it (callers walk the scope
// stack themselves; see eval.Context).
func (s *Scope) GetFn(fr ref.FnRef) (*Callable, error) {
	if c, ok := s.fns[fr]; ok {
		return c, nil
	}
	return nil, errors.NewNullRefError(fr)
}

// LookupFn is like GetFn but reports presence instead of erroring, for
// callers that want to keep walking the scope stack on a miss.
func (s *Scope) LookupFn(fr ref.FnRef) (*Callable, bool) {
	c, ok := s.fns[fr]
	return c, ok
}

// Vars returns the scope's variables in insertion order. Callers must treat
// the result as read-only; it aliases the scope's backing slice.
func (s *Scope) Vars() []*Variable { return s.vars }

// Get returns the most recently inserted variable named name in this
// scope, or nil if none exists.
func (s *Scope) Get(name string) *Variable {
	for i := len(s.vars) - 1; i >= 0; i-- {
		if s.vars[i].Name == name {
			return s.vars[i]
		}
	}
	return nil
}

// Clear resets a pooled scope for reuse: all vars and fns are erased and a
// new debug name is set. It must never reset the global Ref counter.
func (s *Scope) Clear(newName string, depth int) {
	s.Name = newName
	s.Depth = depth
	s.vars = s.vars[:0]
	for k := range s.fns {
		delete(s.fns, k)
	}
}

// Clone produces an independent copy of s: same vars/fns by value, but a
// distinct backing scope object and fns map, so mutating the clone never
// affects s. Used by engine.RunAll to hand each concurrent program its own
// starting global scope without racing on a shared fns map.
func (s *Scope) Clone() *Scope {
	c := New(s.Name, s.Depth)
	c.vars = make([]*Variable, len(s.vars))
	for i, v := range s.vars {
		cp := *v
		c.vars[i] = &cp
	}
	for k, v := range s.fns {
		cp := *v
		c.fns[k] = &cp
	}
	return c
}
