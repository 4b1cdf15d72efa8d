package eval

import (
	"github.com/mira-lang/mira/ast"
	"github.com/mira-lang/mira/value"
)

// EvalBlock enters a fresh scope named "block", evaluates each item in
// order, pops the scope, and always returns Unit (spec §4.5). Inner `let`
// bindings are confined to the block.
func (c *Context) EvalBlock(b ast.Block) (value.Value, error) {
	c.pushScope("block")
	defer c.popScope()

	for i := range b {
		if _, err := c.EvalItem(&b[i]); err != nil {
			return value.Unit, err
		}
	}
	return value.Unit, nil
}
