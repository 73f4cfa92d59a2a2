// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package clos

// Closure owns its State and only reads it when called.
// It corresponds to a closure that refers to, but never changes, a private
// copy of its captured variables.
//
// Closure is a value type. Copying a Closure copies its State, so a State of
// value type gives each copy an independent snapshot.
//
// Passing a pointer as State compiles but turns the snapshot into a live
// view of the pointee. Use [ClosureRef] when a live view is intended, so the
// intent shows in the type.
type Closure[S, I, O any] struct {
	state S
	op    View[S, I, O]
}

// New binds op to an owned State.
// Panics if op is nil.
func New[S, I, O any](state S, op View[S, I, O]) Closure[S, I, O] {
	if op == nil {
		panic(nilOperation)
	}
	return Closure[S, I, O]{state: state, op: op}
}

// Call invokes the operation with a copy of the State.
func (c Closure[S, I, O]) Call(in I) O {
	return c.op(c.state, in)
}

// CallMut is Call. Closure never changes its State.
func (c Closure[S, I, O]) CallMut(in I) O {
	return c.op(c.state, in)
}

// CallOnce is Call. The receiver is a copy, so the Closure stays usable.
func (c Closure[S, I, O]) CallOnce(in I) O {
	return c.op(c.state, in)
}

// State returns a copy of the captured State.
func (c Closure[S, I, O]) State() S {
	return c.state
}

// ClosureMut owns its State and may change it when called.
// Successive calls observe the mutations of earlier calls; nothing is cached
// or reset between calls.
//
// ClosureMut is used through a pointer. Copying the struct forks the State;
// use [ClosureMut.Clone] to make that explicit. c.Clone(nil).CallMut(in)
// runs the operation on a copy and leaves c's State unchanged.
type ClosureMut[S, I, O any] struct {
	state S
	op    Mutate[S, I, O]
}

// NewMut binds op to an owned, mutable State.
// Panics if op is nil.
func NewMut[S, I, O any](state S, op Mutate[S, I, O]) *ClosureMut[S, I, O] {
	if op == nil {
		panic(nilOperation)
	}
	return &ClosureMut[S, I, O]{state: state, op: op}
}

// CallMut invokes the operation with exclusive access to the State.
func (c *ClosureMut[S, I, O]) CallMut(in I) O {
	return c.op(&c.state, in)
}

// CallOnce is CallMut.
func (c *ClosureMut[S, I, O]) CallOnce(in I) O {
	return c.op(&c.state, in)
}

// State returns a copy of the current State.
func (c *ClosureMut[S, I, O]) State() S {
	return c.state
}

// Clone returns an independent ClosureMut sharing the operation.
// The State is duplicated with clone, or by assignment if clone is nil.
func (c *ClosureMut[S, I, O]) Clone(clone func(S) S) *ClosureMut[S, I, O] {
	s := c.state
	if clone != nil {
		s = clone(s)
	}
	return &ClosureMut[S, I, O]{state: s, op: c.op}
}
