// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package clos

import "iter"

// Combinators over call capabilities.
// All of them take the callable as a type parameter, so the composed value
// keeps the exact types of its parts and calls stay statically resolved.

// Chain feeds the output of F into G. It is nominal like the wrappers it
// composes: two chains of the same parts have the same type.
type Chain[I, M, O any, F FnMut[I, M], G FnMut[M, O]] struct {
	f F
	g G
}

// Then composes f and g into a Chain computing g(f(in)).
func Then[I, M, O any, F FnMut[I, M], G FnMut[M, O]](f F, g G) Chain[I, M, O, F, G] {
	return Chain[I, M, O, F, G]{f: f, g: g}
}

// CallMut calls f, then g with f's result.
// Mutable parts are shared with the Chain when they are pointers.
func (c Chain[I, M, O, F, G]) CallMut(in I) O {
	return c.g.CallMut(c.f.CallMut(in))
}

// CallOnce is CallMut.
func (c Chain[I, M, O, F, G]) CallOnce(in I) O {
	return c.g.CallMut(c.f.CallMut(in))
}

// Func returns f's CallMut as a plain function value, for APIs that expect
// func(I) O.
func Func[I, O any, F FnMut[I, O]](f F) func(I) O {
	return f.CallMut
}

// Each returns a sequence that calls f on every element of seq, in order,
// as the sequence is consumed.
func Each[I, O any, F FnMut[I, O]](f F, seq iter.Seq[I]) iter.Seq[O] {
	return func(yield func(O) bool) {
		for in := range seq {
			if !yield(f.CallMut(in)) {
				return
			}
		}
	}
}
