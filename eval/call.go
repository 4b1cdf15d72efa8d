package eval

import (
	"github.com/mira-lang/mira/ast"
	"github.com/mira-lang/mira/errors"
	"github.com/mira-lang/mira/scope"
	"github.com/mira-lang/mira/value"
)

// evalFnCall implements the function-call protocol (spec §4.6).
func (c *Context) evalFnCall(call *ast.FnCall) (value.Value, error) {
	calleeVar, _ := c.resolveVar(call.Ident)
	if calleeVar == nil {
		return value.Unit, errors.NewIdentNotFound(call.Ident)
	}
	fr, ok := calleeVar.Value.AsFn()
	if !ok {
		return value.Unit, errors.NewTypeError(call.Ident, value.NameFn, calleeVar.Value.TypeName())
	}

	callable, err := c.lookupCallable(fr)
	if err != nil {
		return value.Unit, err
	}

	args := make([]value.Value, len(call.Args))
	for i := range call.Args {
		v, err := c.EvalExpr(&call.Args[i])
		if err != nil {
			return value.Unit, err
		}
		args[i] = v
	}

	switch callable.Kind {
	case scope.CallableNative:
		return callable.Hook(args)
	case scope.CallableScript:
		return c.callScript(callable, args)
	default:
		return value.Unit, errors.NewNullRefError(fr)
	}
}

func (c *Context) callScript(callable *scope.Callable, args []value.Value) (value.Value, error) {
	def := callable.Def
	if len(args) != len(def.Params) {
		return value.Unit, errors.NewArgumentError(def.Name, len(def.Params), len(args))
	}
	if c.willExceedMaxDepth() {
		return value.Unit, errors.NewMaxRecursionExceeded(c.maxDepth)
	}

	c.pushScope(def.Name)
	defer c.popScope()

	for i, param := range def.Params {
		c.current().NewVar(param, args[i])
	}
	for i := range def.Body {
		if _, err := c.EvalItem(&def.Body[i]); err != nil {
			return value.Unit, err
		}
	}
	return value.Unit, nil
}
