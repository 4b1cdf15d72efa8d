package stdlib

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mira-lang/mira/ast"
	"github.com/mira-lang/mira/engine"
)

// treeParser lets tests feed a pre-built ast.Tree through engine.Execute
// without writing a real grammar-driven parser (out of scope per spec §1).
type treeParser struct{ tree ast.Tree }

func (p treeParser) Parse(string) (ast.Tree, error) { return p.tree, nil }

func numLit(n int64) ast.Expr {
	return ast.Expr{Kind: ast.ExprLiteral, Literal: &ast.Literal{Kind: ast.LitNumber, Number: n}}
}
func strLit(s string) ast.Expr {
	return ast.Expr{Kind: ast.ExprLiteral, Literal: &ast.Literal{Kind: ast.LitString, String: s}}
}
func ident(name string) ast.Expr { return ast.Expr{Kind: ast.ExprIdent, Ident: name} }
func call(name string, args ...ast.Expr) ast.Expr {
	return ast.Expr{Kind: ast.ExprFnCall, FnCall: &ast.FnCall{Ident: name, Args: args}}
}
func exprItem(e ast.Expr) ast.Item { return ast.Item{Kind: ast.ItemExpr, Expr: &e} }

func TestPrintWritesDisplayForm(t *testing.T) {
	var buf bytes.Buffer
	opts := Options(&buf)
	opts = append(opts, engine.WithParser(treeParser{tree: ast.Tree{
		exprItem(call("print", numLit(7))),
	}}))
	e := engine.New(opts...)
	if _, err := e.Execute(""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "7" {
		t.Fatalf("got %q, want %q", buf.String(), "7")
	}
}

func TestTypeOfReportsCanonicalName(t *testing.T) {
	var buf bytes.Buffer
	opts := Options(&buf)
	opts = append(opts, engine.WithParser(treeParser{tree: ast.Tree{
		exprItem(call("print", call("type_of", strLit("hi")))),
	}}))
	e := engine.New(opts...)
	if _, err := e.Execute(""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "str" {
		t.Fatalf("got %q, want %q", buf.String(), "str")
	}
}

func TestAddAndMinus(t *testing.T) {
	var buf bytes.Buffer
	opts := Options(&buf)
	opts = append(opts, engine.WithParser(treeParser{tree: ast.Tree{
		exprItem(call("println", call("add", numLit(10), numLit(32)))),
		exprItem(call("println", call("minus", numLit(10), numLit(32)))),
	}}))
	e := engine.New(opts...)
	if _, err := e.Execute(""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := strings.TrimSpace(buf.String())
	if got != "42\n-22" {
		t.Fatalf("got %q, want %q", got, "42\\n-22")
	}
}

func TestAddTypeMismatch(t *testing.T) {
	var buf bytes.Buffer
	opts := Options(&buf)
	opts = append(opts, engine.WithParser(treeParser{tree: ast.Tree{
		exprItem(call("print", call("add", numLit(10), strLit("hi")))),
	}}))
	e := engine.New(opts...)
	_, err := e.Execute("")
	if err == nil {
		t.Fatal("expected a type error")
	}
	if !strings.Contains(err.Error(), "ExternalFn(add) Arg#1") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestIdentStillReachesGlobalFnAfterClone(t *testing.T) {
	var buf bytes.Buffer
	opts := Options(&buf)
	opts = append(opts, engine.WithParser(treeParser{tree: ast.Tree{
		exprItem(call("print", call("type_of", ident("add")))),
	}}))
	e := engine.New(opts...)
	if _, err := e.Execute(""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "fn" {
		t.Fatalf("got %q, want %q", buf.String(), "fn")
	}
}
