// Package stdlib provides the sample native functions spec §6.4 names for a
// demo driver: print, println, type_of, add, minus. They exist to exercise
// the hostfn binder against the boundary scenarios spec §8 describes (S1,
// S4, S5); a production embedder is free to register an entirely different
// set via engine.WithFn.
package stdlib

import (
	"fmt"
	"io"

	"github.com/mira-lang/mira/engine"
	"github.com/mira-lang/mira/hostfn"
	"github.com/mira-lang/mira/value"
)

// Options returns engine.Option values registering print, println, type_of,
// add, and minus against w (typically os.Stdout in a driver).
func Options(w io.Writer) []engine.Option {
	return []engine.Option{
		engine.WithFn("print", hostfn.Bind1("print", value.AnyValue, func(v value.Value) (value.Value, error) {
			fmt.Fprint(w, v.String())
			return value.Unit, nil
		})),
		engine.WithFn("println", hostfn.Bind1("println", value.AnyValue, func(v value.Value) (value.Value, error) {
			fmt.Fprintln(w, v.String())
			return value.Unit, nil
		})),
		engine.WithFn("type_of", hostfn.Bind1("type_of", value.AnyValue, func(v value.Value) (value.Value, error) {
			return value.Str(v.TypeName()), nil
		})),
		engine.WithFn("add", hostfn.Bind2("add", value.IntValue, value.IntValue, func(a, b int64) (value.Value, error) {
			return value.Int(a + b), nil
		})),
		engine.WithFn("minus", hostfn.Bind2("minus", value.IntValue, value.IntValue, func(a, b int64) (value.Value, error) {
			return value.Int(a - b), nil
		})),
	}
}
