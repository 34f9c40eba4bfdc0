// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comb

import "reflect"

// Superpose builds a combinator that invokes every secondary callable with
// the same argument pack, then invokes f with their results in order.
//
// The pack is handed to every g by shared read access and never mutated, so
// the arguments must be suppliable non-destructively to all of them. Each
// g's result flows into f as produced, without a forced copy. At least one
// secondary callable is required; mismatches between f and the secondary
// result types are rejected at construction when the shapes are statically
// known, otherwise at the first call.
func Superpose(f any, gs ...any) Fn {
	if len(gs) == 0 {
		reject("Superpose requires at least one secondary callable")
	}
	outer := lift(f, "Superpose")
	inner := make([]Fn, len(gs))
	outs := make([]reflect.Type, len(gs))
	known := true
	for i, g := range gs {
		inner[i] = lift(g, "Superpose")
		outs[i] = inner[i].out
		if outs[i] == nil {
			known = false
		}
	}
	if known && !outer.accepts(outs) {
		reject("Superpose: " + outer.name + " cannot accept the secondary result types (" + sigKey(outs) + ")")
	}
	// Intersect the arity ranges of every statically shaped secondary;
	// an empty intersection means no argument count can satisfy them all.
	var shape *signature
	lo, hi := 0, int(^uint(0)>>1)
	for _, g := range inner {
		if g.sig == nil {
			continue
		}
		if shape == nil {
			shape = g.sig
		}
		gLo, gHi := arityRange(g.sig)
		lo, hi = max(lo, gLo), min(hi, gHi)
	}
	if shape != nil && lo > hi {
		reject("Superpose: secondary callables cannot accept a common argument list")
	}
	return Fn{
		name: "Superpose",
		sig:  shape,
		out:  outer.out,
		test: func(ts []reflect.Type) bool {
			for _, g := range inner {
				if !g.accepts(ts) {
					return false
				}
			}
			return true
		},
		call: func(args []any) any {
			results := make([]any, len(inner))
			for i, g := range inner {
				results[i] = g.call(args)
			}
			return outer.call(results)
		},
	}
}

// arityRange is the closed interval of argument counts a shape accepts.
func arityRange(s *signature) (min, max int) {
	if s.variadic {
		return len(s.in) - 1, int(^uint(0) >> 1)
	}
	return len(s.in), len(s.in)
}

// Compose builds right-associative function composition:
// Compose(f, g, h) ≡ Compose(Compose(f, g), h), so on a call the rightmost
// callable receives the original arguments first and the leftmost is applied
// last to the fully reduced result.
//
// Each inner callable is the sole consumer of the values flowing into it, so
// the pack is forwarded exactly once. An outer callable and at least one
// inner callable are required; every inner stage must produce exactly one
// value, and each outer stage must accept its inner stage's result —
// violations are rejected at construction when the shapes are statically
// known, otherwise at the first call.
func Compose(fs ...any) Fn {
	if len(fs) < 2 {
		reject("Compose requires an outer callable and at least one inner callable")
	}
	out := compose2(lift(fs[0], "Compose"), lift(fs[1], "Compose"))
	for _, h := range fs[2:] {
		out = compose2(out, lift(h, "Compose"))
	}
	return out
}

func compose2(f, g Fn) Fn {
	if g.sig != nil && g.out == nil {
		reject("Compose: inner callable " + g.name + " returns no value")
	}
	if g.out != nil && !f.accepts([]reflect.Type{g.out}) {
		reject("Compose: " + f.name + " cannot accept result type " + g.out.String())
	}
	return Fn{
		name: "Compose",
		sig:  g.sig,
		out:  f.out,
		test: g.test,
		call: func(args []any) any {
			return f.call([]any{g.call(args)})
		},
	}
}
