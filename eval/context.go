// Package eval implements the tree-walking evaluator: the scope stack,
// depth counter, and recursion limit, plus the expression/statement/block
// evaluation entry points spec §4.5-§4.7 describe.
package eval

import (
	"github.com/mira-lang/mira/errors"
	"github.com/mira-lang/mira/ref"
	"github.com/mira-lang/mira/scope"
)

// MaxDepth is the recursion bound spec §4.5 fixes at 16,384.
const MaxDepth = 16384

// ShellRunner is the host hook Exec(cmd) calls: it runs a command string
// equivalent to `sh -c <cmd>` and returns its captured standard output.
// Implementations live outside this package (see the shell package for the
// default one); the evaluator only depends on this interface.
type ShellRunner interface {
	Run(cmd string) ([]byte, error)
}

// Context is the evaluator's mutable state: the scope stack (scopes[0] is
// global), the depth counter (index of the innermost active scope), and the
// recursion limit. Context is not safe for concurrent use by design (spec
// §5: single-threaded cooperative scheduling).
type Context struct {
	scopes   []*scope.Scope
	depth    int
	maxDepth int
	shell    ShellRunner
}

// NewContext builds a Context whose global scope is global and whose Exec
// hook is shell. maxDepth overrides MaxDepth when positive; zero or
// negative selects the spec default.
func NewContext(global *scope.Scope, shell ShellRunner, maxDepth int) *Context {
	if maxDepth <= 0 {
		maxDepth = MaxDepth
	}
	return &Context{
		scopes:   []*scope.Scope{global},
		depth:    0,
		maxDepth: maxDepth,
		shell:    shell,
	}
}

// Depth reports the index of the innermost active scope. Invariant I2:
// after a top-level Execute returns successfully, Depth() == 0.
func (c *Context) Depth() int { return c.depth }

// Global returns the global (depth-0) scope.
func (c *Context) Global() *scope.Scope { return c.scopes[0] }

func (c *Context) current() *scope.Scope { return c.scopes[c.depth] }

// pushScope enters a new activation frame, reusing a pooled scope slot at
// scopes[depth+1] when one already exists (spec §3: "an implementation may
// POOL scope slots... externally observable behavior must be identical to
// fresh allocation"). It does not check the recursion bound; callers that
// must enforce MaxDepth (function calls) do so before calling pushScope.
func (c *Context) pushScope(name string) {
	c.depth++
	if c.depth < len(c.scopes) {
		c.scopes[c.depth].Clear(name, c.depth)
	} else {
		c.scopes = append(c.scopes, scope.New(name, c.depth))
	}
}

// popScope leaves the innermost activation frame.
func (c *Context) popScope() {
	c.depth--
}

// willExceedMaxDepth reports whether pushing one more call frame would
// exceed the recursion bound.
func (c *Context) willExceedMaxDepth() bool {
	return c.depth+1 >= c.maxDepth
}

// resolveVar walks the scope stack from innermost to outermost looking for
// name, returning the variable and the depth it was found at.
func (c *Context) resolveVar(name string) (*scope.Variable, int) {
	for d := c.depth; d >= 0; d-- {
		if v := c.scopes[d].Get(name); v != nil {
			return v, d
		}
	}
	return nil, -1
}

// lookupCallable walks the scope stack from innermost to outermost looking
// for fr's Callable.
func (c *Context) lookupCallable(fr ref.FnRef) (*scope.Callable, error) {
	for d := c.depth; d >= 0; d-- {
		if callable, ok := c.scopes[d].LookupFn(fr); ok {
			return callable, nil
		}
	}
	return nil, errors.NewNullRefError(fr)
}
