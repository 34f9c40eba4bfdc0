// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comb

import "reflect"

// Bound accessors: method- and field-style callables tied to a declaring
// type. Their first argument is the receiver, classified exactly one of
// three ways before the access runs:
//
//  1. a value assignable to the declaring type — accessed directly;
//  2. a [Ref] aliasing handle wrapping such a value — unwrapped first;
//  3. a pointer-like indirection to such a value — dereferenced first.
//
// A receiver matching none of the three is rejected. The tiers are checked
// in that order, which keeps them mutually exclusive for well-formed input.

// receiverAccepts reports whether a receiver of type t can be adjusted to
// the wanted receiver type.
func receiverAccepts(t, want reflect.Type) bool {
	if t == nil {
		return false
	}
	if assignable(t, want) {
		return true
	}
	if t.Implements(refValueType) && t.Kind() == reflect.Struct {
		pt := refTarget(t)
		return assignable(pt, want) || assignable(pt.Elem(), want)
	}
	if t.Kind() == reflect.Pointer && assignable(t.Elem(), want) {
		return true
	}
	return false
}

// adjustReceiver converts a receiver argument to the wanted receiver type,
// unwrapping aliasing handles and dereferencing pointers.
func adjustReceiver(arg any, want reflect.Type, site string) reflect.Value {
	if arg == nil {
		reject(site + ": nil receiver")
	}
	rv := reflect.ValueOf(arg)
	t := rv.Type()
	if assignable(t, want) {
		return rv
	}
	if ref, ok := arg.(refValue); ok {
		p := ref.refPointer()
		if assignable(p.Type(), want) {
			return p
		}
		if assignable(p.Type().Elem(), want) {
			return p.Elem()
		}
	} else if t.Kind() == reflect.Pointer && assignable(t.Elem(), want) {
		return rv.Elem()
	}
	reject(site + ": receiver type " + t.String() + " does not match " + want.String())
	return reflect.Value{}
}

// MethodOf builds a bound accessor for the named method of T.
//
// T may be a concrete type — the method is looked up on T's method set and
// then on *T's — or an interface type, in which case any receiver assignable
// to the interface dispatches through it. The accessor's first argument is
// the receiver in any of the three receiver shapes; remaining arguments are
// the method's own parameters. Unknown method names and methods with more
// than one result are rejected at construction.
//
// A method whose receiver is *T needs an addressable receiver: a pointer or
// a [Ref]; a plain value is rejected at dispatch.
func MethodOf[T any](name string) Fn {
	owner := reflect.TypeFor[T]()
	if owner.Kind() == reflect.Interface {
		return interfaceMethod(owner, name)
	}
	m, ok := owner.MethodByName(name)
	if !ok {
		m, ok = reflect.PointerTo(owner).MethodByName(name)
		if !ok {
			reject("MethodOf: type " + owner.String() + " has no method " + name)
		}
	}
	mt := m.Func.Type()
	if mt.NumOut() > 1 {
		reject("MethodOf: method " + name + " returns more than one value")
	}
	recv := mt.In(0) // T or *T
	tail := &signature{in: make([]reflect.Type, mt.NumIn()-1), variadic: mt.IsVariadic()}
	for i := range tail.in {
		tail.in[i] = mt.In(i + 1)
	}
	var out reflect.Type
	if mt.NumOut() == 1 {
		out = mt.Out(0)
	}
	site := "MethodOf(" + owner.String() + ", " + name + ")"
	fn := m.Func
	return Fn{
		name: site,
		out:  out,
		test: func(ts []reflect.Type) bool {
			return len(ts) > 0 && receiverAccepts(ts[0], recv) && tail.accepts(ts[1:])
		},
		bind: func(ts []reflect.Type) bool {
			if len(ts) == 0 {
				return true
			}
			return receiverAccepts(ts[0], recv) && tail.bindable(ts[1:])
		},
		call: func(args []any) any {
			if len(args) == 0 {
				reject(site + ": missing receiver")
			}
			r := adjustReceiver(args[0], recv, site)
			rest := args[1:]
			if !tail.accepts(typesOf(rest)) {
				reject(site + ": cannot accept arguments (" + sigKey(typesOf(rest)) + ")")
			}
			buf := acquireArgs()
			vals := append((*buf)[:0], r)
			for i, a := range rest {
				vals = append(vals, argValue(a, tail.param(i)))
			}
			res := fn.Call(vals)
			releaseArgs(buf, vals)
			if len(res) == 0 {
				return nil
			}
			return res[0].Interface()
		},
	}
}

// interfaceMethod dispatches through an interface's method set, covering
// the "declaring type or a subtype" receiver case.
func interfaceMethod(owner reflect.Type, name string) Fn {
	m, ok := owner.MethodByName(name)
	if !ok {
		reject("MethodOf: interface " + owner.String() + " has no method " + name)
	}
	mt := m.Type // receiverless
	if mt.NumOut() > 1 {
		reject("MethodOf: method " + name + " returns more than one value")
	}
	tail := signatureOf(mt)
	var out reflect.Type
	if mt.NumOut() == 1 {
		out = mt.Out(0)
	}
	site := "MethodOf(" + owner.String() + ", " + name + ")"
	return Fn{
		name: site,
		out:  out,
		test: func(ts []reflect.Type) bool {
			return len(ts) > 0 && receiverAccepts(ts[0], owner) && tail.accepts(ts[1:])
		},
		bind: func(ts []reflect.Type) bool {
			if len(ts) == 0 {
				return true
			}
			return receiverAccepts(ts[0], owner) && tail.bindable(ts[1:])
		},
		call: func(args []any) any {
			if len(args) == 0 {
				reject(site + ": missing receiver")
			}
			r := adjustReceiver(args[0], owner, site)
			method := r.MethodByName(name)
			if !method.IsValid() {
				reject(site + ": receiver type " + r.Type().String() + " does not implement " + name)
			}
			rest := args[1:]
			if !tail.accepts(typesOf(rest)) {
				reject(site + ": cannot accept arguments (" + sigKey(typesOf(rest)) + ")")
			}
			buf := acquireArgs()
			vals := (*buf)[:0]
			for i, a := range rest {
				vals = append(vals, argValue(a, tail.param(i)))
			}
			res := method.Call(vals)
			releaseArgs(buf, vals)
			if len(res) == 0 {
				return nil
			}
			return res[0].Interface()
		},
	}
}

// FieldOf builds a bound accessor for the named exported field of the
// struct type T. The accessor takes exactly one argument — the receiver in
// any of the three receiver shapes — and yields the field's value. Unknown
// and unexported field names are rejected at construction; a call with more
// than one argument is rejected before the access runs.
func FieldOf[T any](name string) Fn {
	owner := reflect.TypeFor[T]()
	if owner.Kind() != reflect.Struct {
		reject("FieldOf: " + owner.String() + " is not a struct type")
	}
	f, ok := owner.FieldByName(name)
	if !ok {
		reject("FieldOf: type " + owner.String() + " has no field " + name)
	}
	if f.PkgPath != "" {
		reject("FieldOf: field " + name + " of " + owner.String() + " is not exported")
	}
	site := "FieldOf(" + owner.String() + ", " + name + ")"
	index := f.Index
	return Fn{
		name: site,
		out:  f.Type,
		test: func(ts []reflect.Type) bool {
			return len(ts) == 1 && receiverAccepts(ts[0], owner)
		},
		bind: func(ts []reflect.Type) bool {
			if len(ts) == 0 {
				return true
			}
			return len(ts) == 1 && receiverAccepts(ts[0], owner)
		},
		call: func(args []any) any {
			if len(args) != 1 {
				reject(site + ": a data accessor takes exactly one argument")
			}
			r := adjustReceiver(args[0], owner, site)
			return r.FieldByIndex(index).Interface()
		},
	}
}
