// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comb

import "reflect"

var boolType = reflect.TypeFor[bool]()

// truth extracts the boolean result of a predicate call.
func truth(v any) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Bool {
		reject("predicate returned a non-bool value")
	}
	return rv.Bool()
}

// boolFold builds the governing callable the predicate combinators
// superpose under: a shape-polymorphic fold over boolean results.
func boolFold(name string, fold func(acc, b bool) bool, unit bool) Fn {
	return Fn{
		name: name,
		out:  boolType,
		test: func(ts []reflect.Type) bool {
			for _, t := range ts {
				if t == nil || t.Kind() != reflect.Bool {
					return false
				}
			}
			return len(ts) > 0
		},
		call: func(args []any) any {
			acc := unit
			for _, a := range args {
				acc = fold(acc, truth(a))
			}
			return acc
		},
	}
}

var (
	andAll = boolFold("andAll", func(acc, b bool) bool { return acc && b }, true)
	orAll  = boolFold("orAll", func(acc, b bool) bool { return acc || b }, false)
)

// Inverse builds the logical negation of the predicate p.
// Callables statically known not to return bool are rejected at construction.
func Inverse(p any) Fn {
	c := lift(p, "Inverse")
	if c.out != nil && c.out.Kind() != reflect.Bool {
		reject("Inverse: " + c.name + " does not return bool")
	}
	return Fn{
		name: "Inverse",
		sig:  c.sig,
		out:  boolType,
		test: c.test,
		call: func(args []any) any {
			return !truth(c.call(args))
		},
	}
}

// AllOf builds the logical AND of the predicates, each invoked with the
// same argument pack. Every predicate is always invoked — there is no
// short-circuiting — which is observable when predicates have side effects.
// At least one predicate is required.
func AllOf(preds ...any) Fn {
	f := Superpose(andAll, preds...)
	f.name = "AllOf"
	return f
}

// AnyOf builds the logical OR of the predicates, each invoked with the
// same argument pack. Every predicate is always invoked — there is no
// short-circuiting — which is observable when predicates have side effects.
// At least one predicate is required.
func AnyOf(preds ...any) Fn {
	f := Superpose(orAll, preds...)
	f.name = "AnyOf"
	return f
}

// NoneOf is [Inverse] applied to [AnyOf]: true when no predicate holds.
func NoneOf(preds ...any) Fn {
	f := Inverse(AnyOf(preds...))
	f.name = "NoneOf"
	return f
}
