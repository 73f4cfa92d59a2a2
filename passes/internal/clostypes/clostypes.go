// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package clostypes recognizes clos declarations in type-checked code.
package clostypes

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/types/typeutil"
)

// Path is the import path of package clos.
const Path = "code.hybscloud.com/clos"

// Constructors maps each clos constructor to the index of its operation
// argument.
var Constructors = map[string]int{
	"New":       1,
	"NewMut":    1,
	"NewOnce":   1,
	"NewRef":    1,
	"NewRefMut": 1,
}

// OperationTypes are the named func types of clos operations.
var OperationTypes = map[string]bool{
	"View":    true,
	"Mutate":  true,
	"Consume": true,
}

// Func returns the name of the package-level clos function called by call,
// or "" if call does not call one.
func Func(info *types.Info, call *ast.CallExpr) string {
	fn, ok := typeutil.Callee(info, call).(*types.Func)
	if !ok || !inClos(fn) {
		return ""
	}
	if sig, ok := fn.Type().(*types.Signature); ok && sig.Recv() != nil {
		return ""
	}
	return fn.Name()
}

// Conversion returns the name of the clos operation type that call converts
// to, or "" if call is not such a conversion.
func Conversion(info *types.Info, call *ast.CallExpr) string {
	tv, ok := info.Types[call.Fun]
	if !ok || !tv.IsType() {
		return ""
	}
	n, ok := types.Unalias(tv.Type).(*types.Named)
	if !ok {
		return ""
	}
	obj := n.Origin().Obj()
	if !inClos(obj) || !OperationTypes[obj.Name()] {
		return ""
	}
	return obj.Name()
}

// IsOnce reports whether t is *clos.ClosureOnce[S, I, O].
func IsOnce(t types.Type) bool {
	p, ok := types.Unalias(t).(*types.Pointer)
	if !ok {
		return false
	}
	n, ok := types.Unalias(p.Elem()).(*types.Named)
	if !ok {
		return false
	}
	obj := n.Origin().Obj()
	return inClos(obj) && obj.Name() == "ClosureOnce"
}

func inClos(obj types.Object) bool {
	return obj != nil && obj.Pkg() != nil && obj.Pkg().Path() == Path
}
