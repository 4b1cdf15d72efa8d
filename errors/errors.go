// Package errors implements the evaluator's error taxonomy: Parse, Command,
// and the structured Runtime error family (IdentNotFound, TypeError,
// ArgumentError, NullRefError, MaxRecursionExceeded). All of it chains
// through golang.org/x/xerrors so callers can xerrors.As/Is their way down
// to the structured payload.
package errors

import (
	"fmt"

	"golang.org/x/xerrors"
)

// RuntimeError is implemented by every structured runtime error variant.
// It exists so evaluator code can type-switch on "is this a runtime
// error" without caring which one.
type RuntimeError interface {
	error
	runtimeError()
}

// IdentNotFoundError reports an unresolved identifier at any evaluation
// site (variable lookup, assignment target, function-call callee).
type IdentNotFoundError struct {
	Name string
}

func (e *IdentNotFoundError) Error() string {
	return fmt.Sprintf("identifier not found: %s", e.Name)
}
func (*IdentNotFoundError) runtimeError() {}

// NewIdentNotFound constructs an IdentNotFoundError.
func NewIdentNotFound(name string) error {
	return xerrors.Errorf("eval: %w", &IdentNotFoundError{Name: name})
}

// TypeError reports a variant mismatch on a cast, binary/unary operator, or
// condition. Ident is either a source identifier or a synthetic probe name
// such as "<if_cond>", "<neg>", "<left of (+)>".
type TypeError struct {
	Ident    string
	Expected string
	Found    string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: expected %s, found %s", e.Ident, e.Expected, e.Found)
}
func (*TypeError) runtimeError() {}

// NewTypeError constructs a TypeError, wrapped for the xerrors chain.
func NewTypeError(ident, expected, found string) error {
	return xerrors.Errorf("eval: %w", &TypeError{Ident: ident, Expected: expected, Found: found})
}

// ArgumentError reports an arity mismatch on a native or script call.
type ArgumentError struct {
	Ident    string
	Expected int
	Found    int
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: expected %d argument(s), found %d", e.Ident, e.Expected, e.Found)
}
func (*ArgumentError) runtimeError() {}

// NewArgumentError constructs an ArgumentError, wrapped for the xerrors chain.
func NewArgumentError(ident string, expected, found int) error {
	return xerrors.Errorf("eval: %w", &ArgumentError{Ident: ident, Expected: expected, Found: found})
}

// NullRefError reports that a callable or variable ref is not present in
// any reachable scope.
type NullRefError struct {
	Ref string
}

func (e *NullRefError) Error() string {
	return fmt.Sprintf("null reference: %s", e.Ref)
}
func (*NullRefError) runtimeError() {}

// NewNullRefError constructs a NullRefError, wrapped for the xerrors chain.
func NewNullRefError(ref fmt.Stringer) error {
	return xerrors.Errorf("eval: %w", &NullRefError{Ref: ref.String()})
}

// MaxRecursionExceededError reports that the evaluator's recursion depth
// bound would be exceeded by the next script-function call.
type MaxRecursionExceededError struct {
	MaxDepth int
}

func (e *MaxRecursionExceededError) Error() string {
	return fmt.Sprintf("max recursion depth exceeded (%d)", e.MaxDepth)
}
func (*MaxRecursionExceededError) runtimeError() {}

// NewMaxRecursionExceeded constructs a MaxRecursionExceededError, wrapped
// for the xerrors chain.
func NewMaxRecursionExceeded(maxDepth int) error {
	return xerrors.Errorf("eval: %w", &MaxRecursionExceededError{MaxDepth: maxDepth})
}

// DivisionByZeroError reports an integer division by zero.
// Spec §9 leaves this unspecified beyond "report a structured runtime
// error rather than abort"; this is that structured error.
type DivisionByZeroError struct{}

func (e *DivisionByZeroError) Error() string { return "integer division by zero" }
func (*DivisionByZeroError) runtimeError()   {}

// NewDivisionByZero constructs a DivisionByZeroError, wrapped for the
// xerrors chain.
func NewDivisionByZero() error {
	return xerrors.Errorf("eval: %w", &DivisionByZeroError{})
}

// UnsupportedConstructError reports a syntactically valid but unevaluable
// tree shape (currently: For loops, see spec §4.5/§9).
type UnsupportedConstructError struct {
	Construct string
}

func (e *UnsupportedConstructError) Error() string {
	return fmt.Sprintf("unsupported construct: %s", e.Construct)
}
func (*UnsupportedConstructError) runtimeError() {}

// NewUnsupportedConstruct constructs an UnsupportedConstructError.
func NewUnsupportedConstruct(construct string) error {
	return xerrors.Errorf("eval: %w", &UnsupportedConstructError{Construct: construct})
}

// CommandError reports a shell-hook failure: either a process-level I/O
// error or a decoding failure, per spec §6.3.
type CommandError struct {
	Cmd string
	Err error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %q: %v", e.Cmd, e.Err)
}

func (e *CommandError) Unwrap() error { return e.Err }

// NewCommandError constructs a CommandError, wrapped for the xerrors chain.
func NewCommandError(cmd string, err error) error {
	return xerrors.Errorf("exec: %w", &CommandError{Cmd: cmd, Err: err})
}

// ParseError wraps a parser-reported failure, carried through unchanged per
// spec §7.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return e.Err.Error() }
func (e *ParseError) Unwrap() error { return e.Err }

// NewParseError wraps a parser error.
func NewParseError(err error) error {
	return xerrors.Errorf("parse: %w", &ParseError{Err: err})
}
