// Package engine implements the builder/facade spec §2's C8 and §4.7
// describe: collect host-function registrations, then run a syntax tree (or
// source text, via an external parser) to completion against a fresh
// evaluator context.
package engine

import (
	"context"
	"sort"

	"github.com/mira-lang/mira/ast"
	"github.com/mira-lang/mira/errors"
	"github.com/mira-lang/mira/eval"
	"github.com/mira-lang/mira/scope"
	"github.com/mira-lang/mira/shell"
	"github.com/mira-lang/mira/value"
	"golang.org/x/sync/errgroup"
)

// Parser turns source text into a Tree (spec §1: "assume a parser produces
// an immutable syntax tree"; this module never implements one). Plugged in
// via WithParser by whatever host embeds this engine.
type Parser interface {
	Parse(src string) (ast.Tree, error)
}

// pendingFn is one deferred host-function registration, applied to the
// global scope by New.
type pendingFn struct {
	name string
	hook scope.NativeFn
}

// Engine is the immutable, built evaluator: a global scope already carrying
// every registered host function, ready to run any number of trees (or, via
// RunAll, many independent trees concurrently).
type Engine struct {
	global   *scope.Scope
	parser   Parser
	shell    eval.ShellRunner
	maxDepth int
}

// Option configures a Builder. Mirrors spec §6.2's with_fn/with_fn_raw verbs
// plus the ambient WithParser/WithShell/WithMaxDepth knobs SPEC_FULL.md adds.
type Option func(*Builder)

// Builder accumulates pending registrations before New returns a built
// Engine. Using a separate type from Engine keeps "still configuring" and
// "ready to run" statically distinct.
type Builder struct {
	pending  []pendingFn
	parser   Parser
	shell    eval.ShellRunner
	maxDepth int
}

// WithFn registers name as a type-checked, fixed-arity native function built
// with the hostfn binder (spec §6.2's with_fn). Use hostfn.Bind0..Bind16 to
// produce hook.
func WithFn(name string, hook scope.NativeFn) Option {
	return func(b *Builder) {
		b.pending = append(b.pending, pendingFn{name: name, hook: hook})
	}
}

// WithFnRaw registers name as a variadic native function receiving the full,
// unchecked argument vector (spec §6.2's with_fn_raw).
func WithFnRaw(name string, hook scope.NativeFn) Option {
	return WithFn(name, hook)
}

// WithParser installs the external parser Execute uses to turn source text
// into a Tree.
func WithParser(p Parser) Option {
	return func(b *Builder) { b.parser = p }
}

// WithShell installs the Exec hook. Without this option, Exec expressions run
// through the default shell.New() Runner.
func WithShell(r eval.ShellRunner) Option {
	return func(b *Builder) { b.shell = r }
}

// WithMaxDepth overrides eval.MaxDepth. Mostly useful for tests that want to
// exercise MaxRecursionExceeded without 16,384 stack frames.
func WithMaxDepth(n int) Option {
	return func(b *Builder) { b.maxDepth = n }
}

// New builds an Engine: a global scope seeded with every pending host
// function (spec §4.7 step 2), ready for Execute/Run/RunAll.
func New(opts ...Option) *Engine {
	b := &Builder{shell: shell.New()}
	for _, opt := range opts {
		opt(b)
	}

	global := scope.New("global", 0)
	for _, p := range b.pending {
		global.RegisterNativeFn(p.name, p.hook)
	}

	return &Engine{
		global:   global,
		parser:   b.parser,
		shell:    b.shell,
		maxDepth: b.maxDepth,
	}
}

// Execute parses src with the configured Parser and runs the result (spec
// §4.7). It fails with errors.ParseError if no Parser was configured or the
// parse itself fails.
func (e *Engine) Execute(src string) (value.Value, error) {
	if e.parser == nil {
		return value.Unit, errors.NewParseError(errNoParserConfigured)
	}
	tree, err := e.parser.Parse(src)
	if err != nil {
		return value.Unit, errors.NewParseError(err)
	}
	return e.Run(tree)
}

// Run hoists tree's top-level FnDefs into a fresh clone of the engine's
// global scope (spec §4.7 step 3), then evaluates every item in order (step
// 4). Each call gets its own scope-stack Context seeded from an independent
// clone, so concurrent Run/RunAll calls never race on one another's scopes.
func (e *Engine) Run(tree ast.Tree) (value.Value, error) {
	global := e.global.Clone()
	hoist(global, tree)

	ctx := eval.NewContext(global, e.shell, e.maxDepth)
	var result value.Value
	for i := range tree {
		v, err := ctx.EvalItem(&tree[i])
		if err != nil {
			return value.Unit, err
		}
		result = v
	}
	return result, nil
}

func hoist(global *scope.Scope, tree ast.Tree) {
	for i := range tree {
		if tree[i].Kind == ast.ItemFnDef {
			global.RegisterScriptFn(tree[i].FnDef)
		}
	}
}

// RunAll runs each of sources as an independent program concurrently (see
// SPEC_FULL.md's "Batch execution" supplement). Every program goes through
// Run, so it gets its own scope-stack Context seeded by a clone of the
// engine's global scope into which its own FnDefs are hoisted, and none of
// them race on a shared scope; the native-function table itself is
// immutable after New returns and is shared read-only. The first program to
// fail cancels the group's context derived from ctx: programs that have not
// started by then are skipped, programs already running finish, and RunAll
// returns that first error.
func (e *Engine) RunAll(ctx context.Context, sources []string) ([]value.Value, error) {
	results := make([]value.Value, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			v, err := e.Execute(src)
			if err != nil {
				return err
			}
			results[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

var errNoParserConfigured = parseConfigError{}

type parseConfigError struct{}

func (parseConfigError) Error() string { return "engine: no Parser configured (see WithParser)" }

// manualEntry is one row of the rendered function manual.
type manualEntry struct {
	name string
	kind string
}

// roster walks the global scope's registered callables and returns them
// sorted by name, for Manual's deterministic output.
func (e *Engine) roster() []manualEntry {
	var entries []manualEntry
	for _, v := range e.global.Vars() {
		fr, ok := v.Value.AsFn()
		if !ok {
			continue
		}
		callable, ok := e.global.LookupFn(fr)
		if !ok {
			continue
		}
		kind := "native"
		if callable.Kind == scope.CallableScript {
			kind = "script"
		}
		entries = append(entries, manualEntry{name: v.Name, kind: kind})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].name < entries[j].name })
	return entries
}
