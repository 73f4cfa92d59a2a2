// Package clos is a minimal copy of the clos API surface used by the
// analyzer tests.
package clos

type Unit = struct{}

type View[S, I, O any] func(s S, in I) O

type Mutate[S, I, O any] func(s *S, in I) O

type Consume[S, I, O any] func(s S, in I) O

type Closure[S, I, O any] struct {
	state S
	op    View[S, I, O]
}

func New[S, I, O any](state S, op View[S, I, O]) Closure[S, I, O] {
	return Closure[S, I, O]{state: state, op: op}
}

func (c Closure[S, I, O]) Call(in I) O { return c.op(c.state, in) }

type ClosureMut[S, I, O any] struct {
	state S
	op    Mutate[S, I, O]
}

func NewMut[S, I, O any](state S, op Mutate[S, I, O]) *ClosureMut[S, I, O] {
	return &ClosureMut[S, I, O]{state: state, op: op}
}

type ClosureOnce[S, I, O any] struct {
	state S
	op    Consume[S, I, O]
}

func NewOnce[S, I, O any](state S, op Consume[S, I, O]) *ClosureOnce[S, I, O] {
	return &ClosureOnce[S, I, O]{state: state, op: op}
}

func (c *ClosureOnce[S, I, O]) CallOnce(in I) O { return c.op(c.state, in) }

func (c *ClosureOnce[S, I, O]) TryCallOnce(in I) (O, bool) { return c.op(c.state, in), true }

func (c *ClosureOnce[S, I, O]) Discard() (S, bool) { return c.state, true }

type ClosureRef[S, I, O any] struct {
	ref *S
	op  View[S, I, O]
}

func NewRef[S, I, O any](ref *S, op View[S, I, O]) ClosureRef[S, I, O] {
	return ClosureRef[S, I, O]{ref: ref, op: op}
}

type ClosureRefMut[S, I, O any] struct {
	ref *S
	op  Mutate[S, I, O]
}

func NewRefMut[S, I, O any](ref *S, op Mutate[S, I, O]) *ClosureRefMut[S, I, O] {
	return &ClosureRefMut[S, I, O]{ref: ref, op: op}
}

type FnOnce[I, O any] interface{ CallOnce(in I) O }

func CallOnce0[O any, F FnOnce[Unit, O]](f F) O { return f.CallOnce(Unit{}) }
