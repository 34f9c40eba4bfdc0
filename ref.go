// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comb

import "reflect"

// Ref is an aliasing handle: a non-owning reference to an external object.
//
// Combinators capture their constituents and bound arguments by value, so a
// built combinator outlives its construction-time sources. Ref is the
// explicit opt-out: supplying ByRef(&x) as a receiver or argument makes the
// combinator operate on x itself, and the caller stays responsible for x's
// lifetime and for any cross-goroutine synchronization.
type Ref[T any] struct {
	p *T
}

// ByRef creates an aliasing handle to the object p points to.
// Panics if p is nil.
func ByRef[T any](p *T) Ref[T] {
	if p == nil {
		reject("ByRef: nil pointer")
	}
	return Ref[T]{p: p}
}

// Get returns the current value of the aliased object.
// Panics on a zero Ref.
func (r Ref[T]) Get() T {
	if r.p == nil {
		reject("Ref: zero handle")
	}
	return *r.p
}

// Set stores v into the aliased object.
// Panics on a zero Ref.
func (r Ref[T]) Set(v T) {
	if r.p == nil {
		reject("Ref: zero handle")
	}
	*r.p = v
}

// refValue is the type-erased view of a Ref used by receiver classification.
// Implemented only by Ref[T].
type refValue interface {
	refPointer() reflect.Value
}

var refValueType = reflect.TypeOf((*refValue)(nil)).Elem()

func (r Ref[T]) refPointer() reflect.Value {
	if r.p == nil {
		reject("Ref: zero handle")
	}
	return reflect.ValueOf(r.p)
}

// refTarget returns the pointer type a Ref struct type wraps.
// t must implement refValue.
func refTarget(t reflect.Type) reflect.Type {
	return t.Field(0).Type
}
