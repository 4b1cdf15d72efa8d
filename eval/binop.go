package eval

import (
	"fmt"

	"github.com/mira-lang/mira/ast"
	"github.com/mira-lang/mira/errors"
	"github.com/mira-lang/mira/value"
)

func probeLabel(side string, op ast.BinOpKind) string {
	return fmt.Sprintf("<%s of (%s)>", side, op.String())
}

// evalBinOp implements spec §4.5's binary-operator dispatch. Both operands
// are always evaluated, left first; && and || are NOT short-circuited (see
// DESIGN.md's Open Question decision), so this also matches the arithmetic/
// comparison/equality paths' "evaluate both, then dispatch" shape exactly.
func (c *Context) evalBinOp(b *ast.BinOp) (value.Value, error) {
	left, err := c.EvalExpr(&b.Left)
	if err != nil {
		return value.Unit, err
	}
	right, err := c.EvalExpr(&b.Right)
	if err != nil {
		return value.Unit, err
	}

	switch b.Op {
	case ast.Add, ast.Sub, ast.Mul, ast.Div, ast.Lt, ast.Le, ast.Gt, ast.Ge:
		return evalNumericOp(b.Op, left, right)
	case ast.Eq, ast.Neq:
		return evalEqOp(b.Op, left, right)
	case ast.And, ast.Or:
		return evalBoolOp(b.Op, left, right)
	default:
		return value.Unit, fmt.Errorf("eval: unknown binary operator %d", b.Op)
	}
}

func evalNumericOp(op ast.BinOpKind, left, right value.Value) (value.Value, error) {
	if !value.TyEq(left, right) {
		return value.Unit, errors.NewTypeError(probeLabel("right", op), left.TypeName(), right.TypeName())
	}

	switch left.Kind() {
	case value.KindInt:
		l, _ := left.AsInt()
		r, _ := right.AsInt()
		return intOp(op, l, r)
	case value.KindFloat:
		l, _ := left.AsFloat()
		r, _ := right.AsFloat()
		return floatOp(op, l, r), nil
	default:
		// Bool, Str, Fn, Unit are invalid operands for arithmetic/ordering,
		// even when both sides share a tag.
		return value.Unit, errors.NewTypeError(probeLabel("right", op), left.TypeName(), right.TypeName())
	}
}

func intOp(op ast.BinOpKind, l, r int64) (value.Value, error) {
	switch op {
	case ast.Add:
		return value.Int(l + r), nil
	case ast.Sub:
		return value.Int(l - r), nil
	case ast.Mul:
		return value.Int(l * r), nil
	case ast.Div:
		if r == 0 {
			return value.Unit, errors.NewDivisionByZero()
		}
		return value.Int(l / r), nil
	case ast.Lt:
		return value.Bool(l < r), nil
	case ast.Le:
		return value.Bool(l <= r), nil
	case ast.Gt:
		return value.Bool(l > r), nil
	case ast.Ge:
		return value.Bool(l >= r), nil
	default:
		return value.Unit, fmt.Errorf("eval: unreachable int operator %d", op)
	}
}

func floatOp(op ast.BinOpKind, l, r float64) value.Value {
	switch op {
	case ast.Add:
		return value.Float(l + r)
	case ast.Sub:
		return value.Float(l - r)
	case ast.Mul:
		return value.Float(l * r)
	case ast.Div:
		return value.Float(l / r)
	case ast.Lt:
		return value.Bool(l < r)
	case ast.Le:
		return value.Bool(l <= r)
	case ast.Gt:
		return value.Bool(l > r)
	case ast.Ge:
		return value.Bool(l >= r)
	default:
		return value.Unit
	}
}

func evalEqOp(op ast.BinOpKind, left, right value.Value) (value.Value, error) {
	if !value.TyEq(left, right) {
		return value.Unit, errors.NewTypeError(probeLabel("right", op), left.TypeName(), right.TypeName())
	}
	eq, err := value.Eq(left, right)
	if err != nil {
		return value.Unit, err
	}
	if op == ast.Neq {
		eq = !eq
	}
	return value.Bool(eq), nil
}

func evalBoolOp(op ast.BinOpKind, left, right value.Value) (value.Value, error) {
	lb, err := value.BoolValue(left, probeLabel("left", op))
	if err != nil {
		return value.Unit, err
	}
	rb, err := value.BoolValue(right, probeLabel("right", op))
	if err != nil {
		return value.Unit, err
	}
	if op == ast.And {
		return value.Bool(lb && rb), nil
	}
	return value.Bool(lb || rb), nil
}
