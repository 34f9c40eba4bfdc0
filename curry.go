// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comb

import (
	"reflect"
	"strconv"
)

// Curry builds an incrementally applicable form of f.
//
// Each call of the returned combinator appends its arguments to the bound
// sequence. If the combined sequence satisfies f's parameter contract, f is
// applied to it and its result returned; otherwise the call yields a new
// [Fn] holding the longer sequence. Saturation works in a single call, across
// any number of partial calls with any split of argument counts, and an
// intermediate combinator can be reused for multiple independent trailing
// calls — the bound sequence is replayed, never consumed.
//
// A variadic f saturates as soon as its fixed parameters are bound;
// arguments beyond them in the saturating call flow into the variadic slot.
//
// An argument that makes the sequence permanently unsatisfiable — one that
// is not assignable to its parameter slot, or one past a non-variadic f's
// arity — is rejected at the call that binds it, never when f runs.
func Curry(f any) Fn {
	return curried(lift(f, "Curry"), nil)
}

func curried(target Fn, bound []any) Fn {
	ensurePrefix(target, typesOf(bound), "Curry")
	step := func(ts []reflect.Type) bool {
		all := make([]reflect.Type, 0, len(bound)+len(ts))
		all = append(all, typesOf(bound)...)
		all = append(all, ts...)
		return target.accepts(all) || target.prefixOK(all)
	}
	return Fn{
		name: "Curry",
		test: step,
		bind: step,
		call: func(args []any) any {
			seq := make([]any, 0, len(bound)+len(args))
			seq = append(seq, bound...)
			seq = append(seq, args...)
			if target.accepts(typesOf(seq)) {
				return target.call(seq)
			}
			return curried(target, seq)
		},
	}
}

// ensurePrefix rejects a bound-argument sequence no finite extension of
// which could satisfy the target. A statically shaped target names the
// offending argument; a bound accessor reports through its bindability
// hook; anything else defers to the call.
func ensurePrefix(target Fn, ts []reflect.Type, site string) {
	if target.sig != nil {
		checkPrefix(target.sig, ts, site)
		return
	}
	if !target.prefixOK(ts) {
		reject(site + ": bound arguments (" + sigKey(ts) + ") can never satisfy " + target.name)
	}
}

func checkPrefix(s *signature, ts []reflect.Type, site string) {
	if !s.variadic && len(ts) > len(s.in) {
		reject(site + ": too many bound arguments for " + s.String())
	}
	for i, t := range ts {
		if !assignable(t, s.param(i)) {
			got := "<nil>"
			if t != nil {
				got = t.String()
			}
			reject(site + ": bound argument " + strconv.Itoa(i) + " of type " + got +
				" can never satisfy parameter " + s.param(i).String())
		}
	}
}
