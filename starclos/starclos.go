// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package starclos exposes clos closures to Starlark and Starlark callables
// as clos closures.
//
// A Starlark builtin is a closure over its Go environment. [Builtin] lets
// that environment be a clos State, so the builtin's state is typed and
// visible, and the same closure can be called from Go and from scripts.
package starclos

import (
	"fmt"

	"go.starlark.net/starlark"

	"code.hybscloud.com/clos"
)

// Args is the Input of a closure callable from Starlark.
type Args struct {
	Thread *starlark.Thread
	Args   starlark.Tuple
	Kwargs []starlark.Tuple
}

// Result is the Output of a closure callable from Starlark.
// A nil Value with a nil Err is None.
type Result struct {
	Value starlark.Value
	Err   error
}

// Value returns a successful Result.
func Value(v starlark.Value) Result {
	return Result{Value: v}
}

// Error returns a failed Result.
func Error(err error) Result {
	return Result{Err: err}
}

// Builtin returns a Starlark builtin named name that calls f.
// Errors are reported to Starlark prefixed with the builtin name.
func Builtin[F clos.FnMut[Args, Result]](name string, f F) *starlark.Builtin {
	return starlark.NewBuiltin(name, func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		r := f.CallMut(Args{Thread: thread, Args: args, Kwargs: kwargs})
		if r.Err != nil {
			return nil, fmt.Errorf("%s: %w", b.Name(), r.Err)
		}
		if r.Value == nil {
			return starlark.None, nil
		}
		return r.Value, nil
	})
}

// Target is the State of a closure that calls a Starlark callable.
type Target struct {
	Thread *starlark.Thread
	Fn     starlark.Callable
}

// Wrap returns a closure that calls fn on thread with positional arguments.
// A thread carried in Args takes precedence over the bound one.
func Wrap(thread *starlark.Thread, fn starlark.Callable) clos.Closure[Target, Args, Result] {
	return clos.New(Target{Thread: thread, Fn: fn}, invoke)
}

func invoke(t Target, in Args) Result {
	thread := t.Thread
	if in.Thread != nil {
		thread = in.Thread
	}
	v, err := starlark.Call(thread, t.Fn, in.Args, in.Kwargs)
	if err != nil {
		return Error(err)
	}
	return Value(v)
}
