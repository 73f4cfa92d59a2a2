// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package clos

import (
	"sync/atomic"
)

// ClosureOnce owns its State and consumes it when called.
// It can be called at most once; a second [ClosureOnce.CallOnce] panics and
// [ClosureOnce.TryCallOnce] reports false.
//
// Use it for State that must be torn down exactly once, such as a resource
// handle, or for a capture that is moved into the result. After the call the
// wrapper drops its reference to the State.
//
// ClosureOnce implements [FnOnce] only. The oncecall analyzer reports a second
// consuming call on the same variable at build time.
type ClosureOnce[S, I, O any] struct {
	used  atomic.Uintptr
	state S
	op    Consume[S, I, O]
}

// NewOnce binds op to a State that is handed over on the single call.
// Panics if op is nil.
func NewOnce[S, I, O any](state S, op Consume[S, I, O]) *ClosureOnce[S, I, O] {
	if op == nil {
		panic(nilOperation)
	}
	return &ClosureOnce[S, I, O]{state: state, op: op}
}

// CallOnce moves the State into the operation and invokes it.
// Panics if the closure has already been called or discarded.
func (c *ClosureOnce[S, I, O]) CallOnce(in I) O {
	if !c.used.CompareAndSwap(0, 1) {
		panic("clos: once closure called twice")
	}
	return c.op(c.take(), in)
}

// TryCallOnce attempts to invoke the closure.
// Returns (result, true) on success, or (zero, false) if already consumed.
func (c *ClosureOnce[S, I, O]) TryCallOnce(in I) (O, bool) {
	if !c.used.CompareAndSwap(0, 1) {
		var zero O
		return zero, false
	}
	return c.op(c.take(), in), true
}

// Discard consumes the closure without invoking it and hands the State back,
// so the caller can release it. Returns (zero, false) if already consumed.
func (c *ClosureOnce[S, I, O]) Discard() (S, bool) {
	if !c.used.CompareAndSwap(0, 1) {
		var zero S
		return zero, false
	}
	return c.take(), true
}

// Consumed reports whether the closure has been called or discarded.
func (c *ClosureOnce[S, I, O]) Consumed() bool {
	return c.used.Load() != 0
}

// Clone returns a fresh, unconsumed ClosureOnce over a duplicate of the
// State, made with clone or by assignment if clone is nil.
// Panics if c has already been consumed. Clone must not race with a call.
func (c *ClosureOnce[S, I, O]) Clone(clone func(S) S) *ClosureOnce[S, I, O] {
	if c.Consumed() {
		panic("clos: clone of consumed once closure")
	}
	s := c.state
	if clone != nil {
		s = clone(s)
	}
	return &ClosureOnce[S, I, O]{state: s, op: c.op}
}

// take moves the State out of c. Callers must hold the use guard.
func (c *ClosureOnce[S, I, O]) take() S {
	s := c.state
	var zero S
	c.state = zero
	return s
}
