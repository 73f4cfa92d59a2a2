// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package clos

// Call capabilities.
//
// Go has no call-operator overloading, so a nominal type is made callable by
// a named method. The three interfaces form a ladder: everything callable
// repeatedly through shared access is also callable through exclusive access,
// and everything callable through exclusive access can be called once.
//
// Generic consumers should take the capability as a type parameter
// (F FnMut[I, O]) rather than as an interface value, so calls are resolved
// per instantiation and never go through an interface table.

// FnOnce is implemented by callables that can be invoked at least once.
// After CallOnce the callee may be unusable.
type FnOnce[I, O any] interface {
	CallOnce(in I) O
}

// FnMut is implemented by callables that can be invoked repeatedly and may
// change their own State between calls.
type FnMut[I, O any] interface {
	FnOnce[I, O]
	CallMut(in I) O
}

// Fn is implemented by callables that can be invoked repeatedly without
// changing their own State.
type Fn[I, O any] interface {
	FnMut[I, O]
	Call(in I) O
}

var (
	_ Fn[int, int]     = Closure[int, int, int]{}
	_ Fn[int, int]     = ClosureRef[int, int, int]{}
	_ FnMut[int, int]  = (*ClosureMut[int, int, int])(nil)
	_ FnMut[int, int]  = (*ClosureRefMut[int, int, int])(nil)
	_ FnOnce[int, int] = (*ClosureOnce[int, int, int])(nil)
	_ Fn[int, int]     = Cloning[int, int, *ClosureOnce[int, int, int]]{}
	_ FnMut[int, int]  = Chain[int, int, int, Closure[int, int, int], Closure[int, int, int]]{}
)
