// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package clos

// Input records.
//
// A closure takes exactly one Input value. Zero arguments are passed as
// [Unit], one argument as itself, two and three arguments as [Pair] and
// [Triple]. The positional helpers below pack the record for the caller.
//
// The Output type parameter comes first so callers can write Call2[int](f, a, b)
// and leave the callable type to inference.

// Unit is the Input of a closure that takes no arguments.
type Unit = struct{}

// Pair holds two values.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// Triple holds three values.
type Triple[A, B, C any] struct {
	Fst A
	Snd B
	Thd C
}

// Args2 packs two arguments into a Pair.
func Args2[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{Fst: a, Snd: b}
}

// Args3 packs three arguments into a Triple.
func Args3[A, B, C any](a A, b B, c C) Triple[A, B, C] {
	return Triple[A, B, C]{Fst: a, Snd: b, Thd: c}
}

// Call0 calls a repeatable closure that takes no arguments.
func Call0[O any, F FnMut[Unit, O]](f F) O {
	return f.CallMut(Unit{})
}

// Call2 calls a repeatable closure with two positional arguments.
func Call2[O, A, B any, F FnMut[Pair[A, B], O]](f F, a A, b B) O {
	return f.CallMut(Pair[A, B]{Fst: a, Snd: b})
}

// Call3 calls a repeatable closure with three positional arguments.
func Call3[O, A, B, C any, F FnMut[Triple[A, B, C], O]](f F, a A, b B, c C) O {
	return f.CallMut(Triple[A, B, C]{Fst: a, Snd: b, Thd: c})
}

// CallOnce0 consumes a closure that takes no arguments.
func CallOnce0[O any, F FnOnce[Unit, O]](f F) O {
	return f.CallOnce(Unit{})
}

// CallOnce2 consumes a closure with two positional arguments.
func CallOnce2[O, A, B any, F FnOnce[Pair[A, B], O]](f F, a A, b B) O {
	return f.CallOnce(Pair[A, B]{Fst: a, Snd: b})
}

// CallOnce3 consumes a closure with three positional arguments.
func CallOnce3[O, A, B, C any, F FnOnce[Triple[A, B, C], O]](f F, a A, b B, c C) O {
	return f.CallOnce(Triple[A, B, C]{Fst: a, Snd: b, Thd: c})
}
