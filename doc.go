// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package clos provides nameable closures in Go.
//
// A Go func literal has a type that names only its signature. Two closures
// with the same signature but different captured environments are the same
// type, and nothing in the type says what was captured or whether calling it
// changes anything. clos makes the environment explicit: a closure is a State
// value plus a capture-free operation that receives the State as its first
// parameter. The State type is part of the closure type, so a closure can be
// stored in a struct field, named in a signature, or used as a generic type
// argument by its exact type.
//
// # Design Philosophy
//
// clos provides:
//   - Five wrapper types, one per State ownership discipline
//   - A call-capability ladder ([FnOnce], [FnMut], [Fn]) in place of
//     call-operator overloading
//   - Static dispatch: wrappers are generic structs, never boxed into
//     interfaces or erased to any
//
// # Operations
//
// Operations are plain functions with the State passed explicitly. The
// operation type fixes the access mode, and each constructor accepts only
// the mode that matches its variant:
//
//   - [View]: func(S, I) O, read-only access to a copy of the State
//   - [Mutate]: func(*S, I) O, exclusive access to the State
//   - [Consume]: func(S, I) O, ownership of the State
//
// # Wrappers
//
//	variant          State          calls       operation
//	Closure          owned          repeatable  View
//	ClosureMut       owned, mutated repeatable  Mutate
//	ClosureOnce      owned, moved   once        Consume
//	ClosureRef       borrowed       repeatable  View
//	ClosureRefMut    borrowed, excl repeatable  Mutate
//
// Owned State:
//
//   - [New]: [Closure], reads a private snapshot
//   - [NewMut]: [ClosureMut], successive calls see earlier mutations
//   - [NewOnce]: [ClosureOnce], the single call takes the State
//
// Borrowed State:
//
//   - [NewRef]: [ClosureRef], reads caller-owned State at call time
//   - [NewRefMut]: [ClosureRefMut], changes caller-owned State
//
// Choosing an owned variant where a live view was intended compiles and
// silently works on a copy. Pick the Ref variants when the caller must see
// the changes, or when the closure must see the caller's changes.
//
// # Call Capabilities
//
//   - [FnOnce]: CallOnce, implemented by every wrapper
//   - [FnMut]: CallMut, implemented by every wrapper except [ClosureOnce]
//   - [Fn]: Call, implemented by [Closure], [ClosureRef] and [Cloning]
//
// # One-Shot Closures
//
// [ClosureOnce] is used through a pointer and guarded atomically:
//
//   - [ClosureOnce.CallOnce]: Invoke (panics on reuse)
//   - [ClosureOnce.TryCallOnce]: Non-panicking variant
//   - [ClosureOnce.Discard]: Drop without invoking, returning the State
//   - [ClosureOnce.Clone]: Fresh unconsumed copy
//
// [Repeat] and [Reusable] turn a cloneable once-callable into an [Fn] that
// consumes a clone per call.
//
// # Arity
//
// Every closure takes a single Input value:
//
//   - [Unit]: no arguments, called with [Call0] / [CallOnce0]
//   - [Pair]: two arguments, [Args2], [Call2] / [CallOnce2]
//   - [Triple]: three arguments, [Args3], [Call3] / [CallOnce3]
//
// # Combinators
//
//   - [Then]: Compose two callables into a [Chain]
//   - [Func]: Plain func(I) O view of a callable
//   - [Each]: Map an iter.Seq through a callable
//
// # Example
//
//	addState := clos.New(10, func(s int, i int) int { return i + s })
//	addState.Call(1) // 11
//	addState.Call(5) // 15
//
//	counter := clos.NewMut(0, func(s *int, _ clos.Unit) int {
//		*s++
//		return *s
//	})
//	clos.Call0[int](counter) // 1
//	clos.Call0[int](counter) // 2
//
// The capturefree and oncecall analyzers under passes/ report operations
// that capture variables and repeated calls of a [ClosureOnce]. cmd/closvet
// runs both.
package clos
