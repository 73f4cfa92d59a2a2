// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package clos

// Borrowed-state closures.
//
// ClosureRef and ClosureRefMut do not own their State. They keep a pointer to
// caller-owned storage and see every change made to it, instead of working on
// a private snapshot. The garbage collector keeps the referenced State alive;
// the remaining contract is on the caller:
//
//   - a ClosureRefMut must be the only path that changes the State while it
//     is in use, and calls must not overlap with other writers;
//   - neither wrapper adds synchronization. Sharing the State across
//     goroutines needs the caller's own locking.

// ClosureRef reads caller-owned State when called.
// Each call observes the State as it is at that moment.
type ClosureRef[S, I, O any] struct {
	ref *S
	op  View[S, I, O]
}

// NewRef binds op to the State behind ref.
// Panics if ref or op is nil.
func NewRef[S, I, O any](ref *S, op View[S, I, O]) ClosureRef[S, I, O] {
	if ref == nil {
		panic(nilReference)
	}
	if op == nil {
		panic(nilOperation)
	}
	return ClosureRef[S, I, O]{ref: ref, op: op}
}

// Call invokes the operation with the current value of the State.
func (c ClosureRef[S, I, O]) Call(in I) O {
	return c.op(*c.ref, in)
}

// CallMut is Call.
func (c ClosureRef[S, I, O]) CallMut(in I) O {
	return c.op(*c.ref, in)
}

// CallOnce is Call.
func (c ClosureRef[S, I, O]) CallOnce(in I) O {
	return c.op(*c.ref, in)
}

// Ref returns the borrowed State pointer.
func (c ClosureRef[S, I, O]) Ref() *S {
	return c.ref
}

// ClosureRefMut changes caller-owned State when called.
// The caller sees the mutations directly through its own variable.
type ClosureRefMut[S, I, O any] struct {
	ref *S
	op  Mutate[S, I, O]
}

// NewRefMut binds op to exclusive use of the State behind ref.
// Panics if ref or op is nil.
func NewRefMut[S, I, O any](ref *S, op Mutate[S, I, O]) *ClosureRefMut[S, I, O] {
	if ref == nil {
		panic(nilReference)
	}
	if op == nil {
		panic(nilOperation)
	}
	return &ClosureRefMut[S, I, O]{ref: ref, op: op}
}

// CallMut invokes the operation on the borrowed State.
func (c *ClosureRefMut[S, I, O]) CallMut(in I) O {
	return c.op(c.ref, in)
}

// CallOnce is CallMut.
func (c *ClosureRefMut[S, I, O]) CallOnce(in I) O {
	return c.op(c.ref, in)
}

// Ref returns the borrowed State pointer.
func (c *ClosureRefMut[S, I, O]) Ref() *S {
	return c.ref
}
