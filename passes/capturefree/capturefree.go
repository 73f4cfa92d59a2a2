// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package capturefree defines an Analyzer that reports clos operations
// capturing local variables.
//
// # Analyzer capturefree
//
// capturefree: check that clos operations are capture-free
//
// A clos operation receives its whole environment through the State
// parameter. A function literal passed to New, NewMut, NewOnce, NewRef or
// NewRefMut, or converted to View, Mutate or Consume, that refers to a local
// variable of an enclosing function carries hidden state the closure type
// does not name. Package-level variables, constants, types and functions are
// not reported.
//
// With -allow-params, parameters of enclosing functions may be referenced.
package capturefree

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"code.hybscloud.com/clos/passes/internal/clostypes"
)

const Doc = `check that clos operations are capture-free

A clos operation must receive everything it reads through its State
parameter. Function literals used as operations must not refer to local
variables of enclosing functions.`

var Analyzer = &analysis.Analyzer{
	Name:     "capturefree",
	Doc:      Doc,
	URL:      "https://pkg.go.dev/code.hybscloud.com/clos/passes/capturefree",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

var allowParams bool

func init() {
	Analyzer.Flags.BoolVar(&allowParams, "allow-params", false, "allow operations to refer to parameters of enclosing functions")
}

func run(pass *analysis.Pass) (any, error) {
	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{(*ast.CallExpr)(nil)}
	inspect.WithStack(nodeFilter, func(n ast.Node, push bool, stack []ast.Node) bool {
		if !push {
			return true
		}
		call := n.(*ast.CallExpr)

		var lit *ast.FuncLit
		var what string
		if name := clostypes.Func(pass.TypesInfo, call); name != "" {
			idx, ok := clostypes.Constructors[name]
			if !ok || idx >= len(call.Args) {
				return true
			}
			lit, _ = ast.Unparen(call.Args[idx]).(*ast.FuncLit)
			what = "clos." + name
		} else if name := clostypes.Conversion(pass.TypesInfo, call); name != "" && len(call.Args) == 1 {
			lit, _ = ast.Unparen(call.Args[0]).(*ast.FuncLit)
			what = "clos." + name
		}
		if lit == nil {
			return true
		}

		for _, v := range freeVars(pass.TypesInfo, lit) {
			if allowParams && isParam(v, stack) {
				continue
			}
			pass.Reportf(v.pos, "operation passed to %s captures %s; pass it through the closure state", what, v.obj.Name())
		}
		return true
	})
	return nil, nil
}

type freeVar struct {
	obj *types.Var
	pos token.Pos
}

// freeVars returns the local variables referenced in lit but declared
// outside it, in order of first reference.
func freeVars(info *types.Info, lit *ast.FuncLit) []freeVar {
	var vars []freeVar
	seen := map[*types.Var]bool{}
	ast.Inspect(lit.Body, func(n ast.Node) bool {
		id, ok := n.(*ast.Ident)
		if !ok {
			return true
		}
		v, ok := info.Uses[id].(*types.Var)
		if !ok || v.IsField() || seen[v] {
			return true
		}
		if v.Pkg() == nil || v.Parent() == v.Pkg().Scope() || v.Parent() == types.Universe {
			return true
		}
		if lit.Pos() <= v.Pos() && v.Pos() < lit.End() {
			return true
		}
		seen[v] = true
		vars = append(vars, freeVar{obj: v, pos: id.Pos()})
		return true
	})
	return vars
}

// isParam reports whether v is a parameter or result of one of the
// functions enclosing the current node.
func isParam(v freeVar, stack []ast.Node) bool {
	for _, n := range stack {
		var ft *ast.FuncType
		var recv *ast.FieldList
		switch n := n.(type) {
		case *ast.FuncDecl:
			ft, recv = n.Type, n.Recv
		case *ast.FuncLit:
			ft = n.Type
		default:
			continue
		}
		if within(v.obj.Pos(), ft) || (recv != nil && within(v.obj.Pos(), recv)) {
			return true
		}
	}
	return false
}

func within(pos token.Pos, n ast.Node) bool {
	return n.Pos() <= pos && pos < n.End()
}
