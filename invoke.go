// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comb

import (
	"reflect"
	"strings"
)

// reject panics with a descriptive message for authoring mistakes.
// Extracted as a noinline function so that call paths remain inlineable.
//
//go:noinline
func reject(msg string) {
	panic("comb: " + msg)
}

// signature is the argument shape of a callable when it is statically known.
type signature struct {
	in       []reflect.Type
	variadic bool
}

func signatureOf(t reflect.Type) *signature {
	in := make([]reflect.Type, t.NumIn())
	for i := range in {
		in[i] = t.In(i)
	}
	return &signature{in: in, variadic: t.IsVariadic()}
}

// param returns the parameter type for argument position i,
// unrolling the variadic tail.
func (s *signature) param(i int) reflect.Type {
	if s.variadic && i >= len(s.in)-1 {
		return s.in[len(s.in)-1].Elem()
	}
	return s.in[i]
}

// accepts reports whether a call with the given argument types satisfies s.
// A nil entry stands for an untyped nil argument.
func (s *signature) accepts(ts []reflect.Type) bool {
	fixed := len(s.in)
	if s.variadic {
		fixed--
		if len(ts) < fixed {
			return false
		}
	} else if len(ts) != fixed {
		return false
	}
	for i := 0; i < fixed; i++ {
		if !assignable(ts[i], s.in[i]) {
			return false
		}
	}
	if s.variadic {
		elem := s.in[len(s.in)-1].Elem()
		for _, t := range ts[fixed:] {
			if !assignable(t, elem) {
				return false
			}
		}
	}
	return true
}

// bindable reports whether ts is a valid argument prefix for s, i.e. whether
// some finite sequence of further arguments could complete a call.
func (s *signature) bindable(ts []reflect.Type) bool {
	if !s.variadic && len(ts) > len(s.in) {
		return false
	}
	for i, t := range ts {
		if !assignable(t, s.param(i)) {
			return false
		}
	}
	return true
}

// dropFront returns the shape remaining after the first k parameters
// are bound. k must be a bindable prefix length.
func (s *signature) dropFront(k int) *signature {
	if s.variadic && k >= len(s.in)-1 {
		return &signature{in: s.in[len(s.in)-1:], variadic: true}
	}
	return &signature{in: s.in[k:], variadic: s.variadic}
}

func (s *signature) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, t := range s.in {
		if i > 0 {
			b.WriteString(", ")
		}
		if s.variadic && i == len(s.in)-1 {
			b.WriteString("...")
			b.WriteString(t.Elem().String())
		} else {
			b.WriteString(t.String())
		}
	}
	b.WriteByte(')')
	return b.String()
}

func assignable(t, want reflect.Type) bool {
	if t == nil {
		switch want.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Slice,
			reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
			return true
		default:
			return false
		}
	}
	return t.AssignableTo(want)
}

// typesOf returns the concrete types of an argument pack.
// Untyped nils map to nil entries.
func typesOf(args []any) []reflect.Type {
	ts := make([]reflect.Type, len(args))
	for i, a := range args {
		if a != nil {
			ts[i] = reflect.TypeOf(a)
		}
	}
	return ts
}

func sigKey(ts []reflect.Type) string {
	var b strings.Builder
	for i, t := range ts {
		if i > 0 {
			b.WriteString(", ")
		}
		if t == nil {
			b.WriteString("<nil>")
		} else {
			b.WriteString(t.String())
		}
	}
	return b.String()
}

// Fn is a combinator: a callable built from other callables and bound values.
//
// An Fn owns independent copies of everything it was built from, so it
// outlives its construction-time sources; only values supplied through [Ref]
// alias external state. The zero Fn is not callable.
type Fn struct {
	name string
	sig  *signature               // argument shape when statically known
	out  reflect.Type             // result type when statically known
	test func([]reflect.Type) bool // acceptance for shape-polymorphic combinators
	bind func([]reflect.Type) bool // prefix bindability when sig is unknown
	call func([]any) any
}

// Call invokes the combinator with the given argument pack.
// Argument/parameter incompatibilities panic before the underlying
// callables run.
func (f Fn) Call(args ...any) any {
	if f.call == nil {
		reject("call of zero Fn")
	}
	return f.call(args)
}

// accepts reports whether a call with the given argument types would be
// dispatched. Shape-polymorphic combinators consult their own test;
// fully polymorphic ones accept everything.
func (f Fn) accepts(ts []reflect.Type) bool {
	if f.test != nil {
		return f.test(ts)
	}
	if f.sig != nil {
		return f.sig.accepts(ts)
	}
	return true
}

// prefixOK reports whether some finite extension of the argument prefix
// could satisfy f. Combinators carrying neither a static shape nor a
// bindability hook accept every prefix and defer rejection to the call.
func (f Fn) prefixOK(ts []reflect.Type) bool {
	if f.sig != nil {
		return f.accepts(ts) || f.sig.bindable(ts)
	}
	if f.bind != nil {
		return f.bind(ts)
	}
	return true
}

// lift classifies an arbitrary callable into an Fn.
// This is the single classification point all builders go through.
func lift(f any, site string) Fn {
	switch v := f.(type) {
	case Fn:
		if v.call == nil {
			reject(site + ": zero Fn is not a callable")
		}
		return v
	case Exclusion:
		reject(site + ": an excluded alternative is only meaningful inside FirstOf")
	case nil:
		reject(site + ": nil is not a callable")
	}
	rv := reflect.ValueOf(f)
	if rv.Kind() != reflect.Func {
		reject(site + ": " + rv.Type().String() + " is not a callable")
	}
	if rv.IsNil() {
		reject(site + ": nil is not a callable")
	}
	return liftFunc(rv)
}

// liftFunc wraps an ordinary Go function value.
// The argument pack is forwarded unchanged; no receiver adjustment applies.
func liftFunc(rv reflect.Value) Fn {
	t := rv.Type()
	if t.NumOut() > 1 {
		reject(t.String() + " returns more than one value")
	}
	sig := signatureOf(t)
	var out reflect.Type
	if t.NumOut() == 1 {
		out = t.Out(0)
	}
	return Fn{
		name: t.String(),
		sig:  sig,
		out:  out,
		call: func(args []any) any {
			if !sig.accepts(typesOf(args)) {
				reject(t.String() + " cannot accept arguments (" + sigKey(typesOf(args)) + ")")
			}
			return callFunc(rv, sig, args)
		},
	}
}

// callFunc performs the reflective call with a pooled scratch buffer.
func callFunc(rv reflect.Value, sig *signature, args []any) any {
	buf := acquireArgs()
	vals := (*buf)[:0]
	for i, a := range args {
		vals = append(vals, argValue(a, sig.param(i)))
	}
	out := rv.Call(vals)
	releaseArgs(buf, vals)
	if len(out) == 0 {
		return nil
	}
	return out[0].Interface()
}

// argValue converts one argument for a parameter slot.
// Assignability has already been established by the caller.
func argValue(a any, want reflect.Type) reflect.Value {
	if a == nil {
		return reflect.Zero(want)
	}
	return reflect.ValueOf(a)
}

// FnOf lifts any callable into an [Fn]: an existing Fn is returned as is,
// a bound accessor keeps its receiver dispatch, an ordinary function value
// is wrapped. Anything else panics.
func FnOf(f any) Fn {
	return lift(f, "FnOf")
}

// Invoke classifies f and invokes it with the argument pack.
//
// Bound accessors built by [MethodOf] and [FieldOf] take their receiver as
// the first argument, in any of the three receiver shapes: a value of the
// declaring type (or a value assignable to it, when the declaring type is an
// interface), a [Ref] aliasing handle wrapping such a value, or a pointer to
// such a value. Ordinary callables receive the pack unchanged.
func Invoke(f any, args ...any) any {
	return lift(f, "Invoke").call(args)
}

// Identity returns its single argument unchanged.
var Identity = Fn{
	name: "Identity",
	test: func(ts []reflect.Type) bool { return len(ts) == 1 },
	call: func(args []any) any {
		if len(args) != 1 {
			reject("Identity takes exactly one argument")
		}
		return args[0]
	},
}

// EmptyFn accepts any argument pack, does nothing, and yields no result.
var EmptyFn = Fn{
	name: "EmptyFn",
	test: func([]reflect.Type) bool { return true },
	call: func([]any) any { return nil },
}
