// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package clos

// Operation types.
//
// An operation is the body of a closure with its environment made explicit:
// the captured State arrives as the first parameter and the call arguments as
// the second. Operations must not capture variables of their own; everything
// they read flows through State. The capturefree analyzer checks this.
//
// The three types differ only in how the State is handed over. They are
// distinct named types so that a constructor only accepts the access mode
// that matches its variant.

// View is an operation with shared, read-only access to State.
// The State is passed by value; changes made by the operation to its copy are
// not observed by the wrapper. State types holding pointers, slices or maps
// still share their referents.
//
// The copy is made on every call, so its cost grows with the size of S. For
// large State prefer a pointer-typed S, or a [ClosureRef] over a small handle.
type View[S, I, O any] func(s S, in I) O

// Mutate is an operation with exclusive access to State.
// Mutations through the pointer persist across calls.
type Mutate[S, I, O any] func(s *S, in I) O

// Consume is an operation that takes ownership of State.
// The wrapper gives up its State before the operation runs.
type Consume[S, I, O any] func(s S, in I) O

const (
	nilOperation = "clos: nil operation"
	nilReference = "clos: nil state reference"
)
