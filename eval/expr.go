package eval

import (
	"fmt"

	"github.com/mira-lang/mira/ast"
	"github.com/mira-lang/mira/errors"
	"github.com/mira-lang/mira/shell"
	"github.com/mira-lang/mira/value"
)

// EvalExpr evaluates an expression node and returns its value (spec §4.5).
func (c *Context) EvalExpr(e *ast.Expr) (value.Value, error) {
	switch e.Kind {
	case ast.ExprUnit:
		return value.Unit, nil

	case ast.ExprLiteral:
		return literalToValue(e.Literal), nil

	case ast.ExprIdent:
		v, _ := c.resolveVar(e.Ident)
		if v == nil {
			return value.Unit, errors.NewIdentNotFound(e.Ident)
		}
		return v.Value, nil

	case ast.ExprBlock:
		return c.EvalBlock(e.Block)

	case ast.ExprFnCall:
		return c.evalFnCall(e.FnCall)

	case ast.ExprExec:
		return c.evalExec(e.Cmd)

	case ast.ExprUnOp:
		return c.evalUnOp(e.UnOp)

	case ast.ExprBinOp:
		return c.evalBinOp(e.BinOp)

	default:
		return value.Unit, fmt.Errorf("eval: unknown expression kind %d", e.Kind)
	}
}

func literalToValue(lit *ast.Literal) value.Value {
	switch lit.Kind {
	case ast.LitNumber:
		return value.Int(lit.Number)
	case ast.LitFloat:
		return value.Float(lit.Float)
	case ast.LitBool:
		return value.Bool(lit.Bool)
	case ast.LitString:
		return value.Str(lit.String)
	default:
		return value.Unit
	}
}

func (c *Context) evalUnOp(u *ast.UnOp) (value.Value, error) {
	operand, err := c.EvalExpr(&u.Expr)
	if err != nil {
		return value.Unit, err
	}
	switch u.Kind {
	case ast.Neg:
		n, err := value.IntValue(operand, "<neg>")
		if err != nil {
			return value.Unit, err
		}
		return value.Int(-n), nil
	case ast.Not:
		b, err := value.BoolValue(operand, "<not>")
		if err != nil {
			return value.Unit, err
		}
		return value.Bool(!b), nil
	default:
		return value.Unit, fmt.Errorf("eval: unknown unary operator %d", u.Kind)
	}
}

func (c *Context) evalExec(cmdText string) (value.Value, error) {
	if c.shell == nil {
		return value.Unit, errors.NewCommandError(cmdText, fmt.Errorf("no shell runner configured"))
	}
	out, err := c.shell.Run(cmdText)
	if err != nil {
		return value.Unit, errors.NewCommandError(cmdText, err)
	}
	return value.Str(shell.DecodeLossyUTF8(out)), nil
}
