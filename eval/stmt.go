package eval

import (
	"github.com/mira-lang/mira/ast"
	"github.com/mira-lang/mira/errors"
	"github.com/mira-lang/mira/value"
)

// EvalItem evaluates one top-level or block item (spec §4.5's Item
// semantics). It returns the evaluated value where one is meaningful
// (Expr items) and Unit otherwise.
func (c *Context) EvalItem(it *ast.Item) (value.Value, error) {
	switch it.Kind {
	case ast.ItemFnDef:
		// Definitions are hoisted before evaluation begins (spec §4.7);
		// encountering one here is a no-op.
		return value.Unit, nil

	case ast.ItemStmt:
		v, err := c.EvalExpr(it.Expr)
		if err != nil {
			return value.Unit, err
		}
		c.current().NewVar(it.Ident, v)
		return value.Unit, nil

	case ast.ItemAssign:
		v, err := c.EvalExpr(it.Expr)
		if err != nil {
			return value.Unit, err
		}
		target, _ := c.resolveVar(it.Ident)
		if target == nil {
			return value.Unit, errors.NewIdentNotFound(it.Ident)
		}
		target.Value = v
		return value.Unit, nil

	case ast.ItemExpr:
		return c.EvalExpr(it.Expr)

	case ast.ItemIf:
		return c.evalIf(it.If)

	case ast.ItemWhile:
		return c.evalWhile(it.While)

	case ast.ItemFor:
		return value.Unit, errors.NewUnsupportedConstruct("for")

	default:
		return value.Unit, errors.NewUnsupportedConstruct("unknown item")
	}
}

func (c *Context) evalIf(n *ast.IfItem) (value.Value, error) {
	cond, err := c.EvalExpr(n.Cond)
	if err != nil {
		return value.Unit, err
	}
	b, err := value.BoolValue(cond, "<if_cond>")
	if err != nil {
		return value.Unit, err
	}
	if b {
		return c.EvalBlock(n.Then)
	}
	if n.Else != nil {
		return c.EvalBlock(*n.Else)
	}
	return value.Unit, nil
}

func (c *Context) evalWhile(n *ast.WhileItem) (value.Value, error) {
	for {
		cond, err := c.EvalExpr(n.Expr)
		if err != nil {
			return value.Unit, err
		}
		b, err := value.BoolValue(cond, "<while_cond>")
		if err != nil {
			return value.Unit, err
		}
		if !b {
			return value.Unit, nil
		}
		if _, err := c.EvalBlock(n.Block); err != nil {
			return value.Unit, err
		}
	}
}
