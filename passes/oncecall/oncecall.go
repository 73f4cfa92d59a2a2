// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package oncecall defines an Analyzer that reports repeated calls of a
// clos.ClosureOnce.
//
// # Analyzer oncecall
//
// oncecall: check that a once closure is not called after it was consumed
//
// A *clos.ClosureOnce is consumed by CallOnce, TryCallOnce, Discard or one of
// the CallOnce0/2/3 helpers. A later CallOnce on the same variable panics at
// run time. The analyzer walks each function body in order and reports a
// CallOnce, or a CallOnce0/2/3 helper call, on a variable that an earlier
// statement already consumed on every path to it. Consumption before a
// branch carries into the branch; consumption inside a branch does not carry
// out of it. Assigning the variable again resets it.
//
// A CallOnce inside a loop body on a variable declared outside the loop is
// reported too, unless the loop assigns the variable or the statement list
// holding the call ends the loop with a return, break or goto from the call
// on.
import (
	"go/ast"
	"go/token"
	"go/types"
	"maps"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"code.hybscloud.com/clos/passes/internal/clostypes"
)

const Doc = `check that a once closure is not called after it was consumed

Calling CallOnce on a *clos.ClosureOnce that was already called or
discarded panics. oncecall reports such calls when the earlier consumption
dominates the later call, and calls repeated by a loop.`

var Analyzer = &analysis.Analyzer{
	Name:     "oncecall",
	Doc:      Doc,
	URL:      "https://pkg.go.dev/code.hybscloud.com/clos/passes/oncecall",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

var consumingMethods = map[string]bool{
	"CallOnce":    true,
	"TryCallOnce": true,
	"Discard":     true,
}

var consumingHelpers = map[string]bool{
	"CallOnce0": true,
	"CallOnce2": true,
	"CallOnce3": true,
}

func run(pass *analysis.Pass) (any, error) {
	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.FuncDecl)(nil),
		(*ast.FuncLit)(nil),
	}
	inspect.Preorder(nodeFilter, func(n ast.Node) {
		var body *ast.BlockStmt
		switch n := n.(type) {
		case *ast.FuncDecl:
			body = n.Body
		case *ast.FuncLit:
			body = n.Body
		}
		if body == nil {
			return
		}
		c := &checker{pass: pass}
		c.list(body.List, consumed{})
	})
	return nil, nil
}

// use is one consuming call of a once closure variable.
type use struct {
	v      *types.Var
	pos    token.Pos
	method string
}

func (u use) reported() bool {
	return u.method == "CallOnce" || consumingHelpers[u.method]
}

// consumed maps a variable to the call that consumed it.
type consumed map[*types.Var]token.Pos

// checker walks one function body. Function literals inside it are walked
// on their own.
type checker struct {
	pass  *analysis.Pass
	loops []ast.Stmt
	exits bool
}

func (c *checker) list(list []ast.Stmt, done consumed) {
	saved := c.exits
	for i, stmt := range list {
		c.exits = saved || exits(list[i:])
		c.stmt(stmt, done)
	}
	c.exits = saved
}

func (c *checker) stmt(stmt ast.Stmt, done consumed) {
	switch s := stmt.(type) {
	case *ast.BlockStmt:
		c.list(s.List, maps.Clone(done))
	case *ast.LabeledStmt:
		c.stmt(s.Stmt, done)
	case *ast.IfStmt:
		if s.Init != nil {
			c.stmt(s.Init, done)
		}
		c.expr(s.Cond, done)
		c.list(s.Body.List, maps.Clone(done))
		if s.Else != nil {
			c.stmt(s.Else, maps.Clone(done))
		}
	case *ast.ForStmt:
		if s.Init != nil {
			c.stmt(s.Init, done)
		}
		inner := maps.Clone(done)
		c.loop(s, func() {
			if s.Cond != nil {
				c.expr(s.Cond, inner)
			}
			c.list(s.Body.List, inner)
			if s.Post != nil {
				c.stmt(s.Post, inner)
			}
		})
	case *ast.RangeStmt:
		c.expr(s.X, done)
		c.loop(s, func() {
			c.list(s.Body.List, maps.Clone(done))
		})
	case *ast.SwitchStmt:
		if s.Init != nil {
			c.stmt(s.Init, done)
		}
		if s.Tag != nil {
			c.expr(s.Tag, done)
		}
		for _, cc := range s.Body.List {
			cc := cc.(*ast.CaseClause)
			inner := maps.Clone(done)
			for _, e := range cc.List {
				c.expr(e, inner)
			}
			c.list(cc.Body, inner)
		}
	case *ast.TypeSwitchStmt:
		if s.Init != nil {
			c.stmt(s.Init, done)
		}
		c.stmt(s.Assign, done)
		for _, cc := range s.Body.List {
			c.list(cc.(*ast.CaseClause).Body, maps.Clone(done))
		}
	case *ast.SelectStmt:
		for _, cc := range s.Body.List {
			cc := cc.(*ast.CommClause)
			inner := maps.Clone(done)
			if cc.Comm != nil {
				c.stmt(cc.Comm, inner)
			}
			c.list(cc.Body, inner)
		}
	default:
		c.expr(stmt, done)
		for _, v := range assigned(c.pass.TypesInfo, stmt) {
			delete(done, v)
		}
	}
}

func (c *checker) loop(s ast.Stmt, body func()) {
	saved := c.exits
	c.loops = append(c.loops, s)
	c.exits = false
	body()
	c.loops = c.loops[:len(c.loops)-1]
	c.exits = saved
}

// expr records the consuming calls in n, which holds no statement lists
// other than those of function literals.
func (c *checker) expr(n ast.Node, done consumed) {
	for _, u := range uses(c.pass.TypesInfo, n) {
		if prev, ok := done[u.v]; ok {
			if u.reported() {
				c.pass.Reportf(u.pos, "%s called on once closure %s already consumed at %v",
					u.method, u.v.Name(), c.pass.Fset.Position(prev))
			}
			continue
		}
		if u.reported() && !c.exits && c.repeats(u.v) {
			c.pass.Reportf(u.pos, "%s called on once closure %s in a loop that does not reassign it",
				u.method, u.v.Name())
		}
		done[u.v] = u.pos
	}
}

// repeats reports whether an enclosing loop runs more than once over the
// same value of v.
func (c *checker) repeats(v *types.Var) bool {
	for _, l := range c.loops {
		if l.Pos() <= v.Pos() && v.Pos() < l.End() {
			continue
		}
		if !assigns(c.pass.TypesInfo, l, v) {
			return true
		}
	}
	return false
}

// exits reports whether list holds a statement that leaves the enclosing
// loop or function.
func exits(list []ast.Stmt) bool {
	for _, stmt := range list {
		switch s := stmt.(type) {
		case *ast.ReturnStmt:
			return true
		case *ast.BranchStmt:
			if s.Tok == token.BREAK || s.Tok == token.GOTO {
				return true
			}
		}
	}
	return false
}

// uses returns the consuming calls in n in source order, without descending
// into function literals.
func uses(info *types.Info, n ast.Node) []use {
	var out []use
	ast.Inspect(n, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.FuncLit:
			return false
		case *ast.CallExpr:
			if u, ok := consumingCall(info, n); ok {
				out = append(out, u)
			}
		}
		return true
	})
	return out
}

func consumingCall(info *types.Info, call *ast.CallExpr) (use, bool) {
	if sel, ok := ast.Unparen(call.Fun).(*ast.SelectorExpr); ok && consumingMethods[sel.Sel.Name] {
		if v := onceVar(info, sel.X); v != nil {
			return use{v: v, pos: call.Pos(), method: sel.Sel.Name}, true
		}
	}
	if name := clostypes.Func(info, call); consumingHelpers[name] && len(call.Args) > 0 {
		if v := onceVar(info, call.Args[0]); v != nil {
			return use{v: v, pos: call.Pos(), method: name}, true
		}
	}
	return use{}, false
}

// onceVar returns the variable denoted by e if e is an identifier of type
// *clos.ClosureOnce.
func onceVar(info *types.Info, e ast.Expr) *types.Var {
	id, ok := ast.Unparen(e).(*ast.Ident)
	if !ok {
		return nil
	}
	v, ok := info.Uses[id].(*types.Var)
	if !ok || !clostypes.IsOnce(v.Type()) {
		return nil
	}
	return v
}

// assigned returns the once closure variables stmt assigns to.
func assigned(info *types.Info, stmt ast.Stmt) []*types.Var {
	as, ok := stmt.(*ast.AssignStmt)
	if !ok {
		return nil
	}
	var out []*types.Var
	for _, lhs := range as.Lhs {
		if v := onceVar(info, lhs); v != nil {
			out = append(out, v)
		}
	}
	return out
}

// assigns reports whether n assigns to v outside function literals.
func assigns(info *types.Info, n ast.Node, v *types.Var) bool {
	found := false
	ast.Inspect(n, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.FuncLit:
			return false
		case *ast.AssignStmt:
			for _, lhs := range n.Lhs {
				if id, ok := ast.Unparen(lhs).(*ast.Ident); ok && (info.Uses[id] == v || info.Defs[id] == v) {
					found = true
				}
			}
		}
		return !found
	})
	return found
}
