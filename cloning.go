// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package clos

// Cloning makes a once-callable repeatable by consuming a fresh clone on
// every call. The original is never called, so it stays available as the
// template for later clones.
type Cloning[I, O any, F FnOnce[I, O]] struct {
	f     F
	clone func(F) F
}

// Repeat wraps f so that each call consumes clone(f) instead of f.
// Panics if clone is nil.
func Repeat[I, O any, F FnOnce[I, O]](f F, clone func(F) F) Cloning[I, O, F] {
	if clone == nil {
		panic("clos: nil clone function")
	}
	return Cloning[I, O, F]{f: f, clone: clone}
}

// Reusable is Repeat for a [ClosureOnce]: each call consumes a clone of c
// whose State is duplicated with clone, or by assignment if clone is nil.
// c itself is never called.
func Reusable[S, I, O any](c *ClosureOnce[S, I, O], clone func(S) S) Cloning[I, O, *ClosureOnce[S, I, O]] {
	return Repeat[I, O](c, func(c *ClosureOnce[S, I, O]) *ClosureOnce[S, I, O] {
		return c.Clone(clone)
	})
}

// Call consumes a clone of the wrapped callable.
func (c Cloning[I, O, F]) Call(in I) O {
	return c.clone(c.f).CallOnce(in)
}

// CallMut is Call.
func (c Cloning[I, O, F]) CallMut(in I) O {
	return c.clone(c.f).CallOnce(in)
}

// CallOnce is Call.
func (c Cloning[I, O, F]) CallOnce(in I) O {
	return c.clone(c.f).CallOnce(in)
}
