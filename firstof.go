// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comb

import "reflect"

// Exclusion is the marker wrapping an alternative of [FirstOf] that must be
// treated as non-matching even when its signature accepts the call.
// Build one with [Excluded]; it is not callable on its own.
type Exclusion struct {
	fn Fn
}

// Excluded marks an alternative as forcibly excluded. When the exclusion is
// the first alternative of a [FirstOf] that accepts a given argument-type
// signature, the whole dispatcher is rejected for that signature — even if a
// later, non-excluded alternative would also match.
func Excluded(f any) Exclusion {
	return Exclusion{fn: lift(f, "Excluded")}
}

type alternative struct {
	fn       Fn
	excluded bool
}

// FirstOf builds a dispatcher over an ordered list of alternatives.
//
// For each concrete argument-type signature the list is resolved once, left
// to right: the first alternative whose signature accepts the argument types
// is the matched alternative, and the resolution is memoized so later calls
// with the same signature dispatch directly. If the matched alternative
// carries the [Excluded] marker, or no alternative matches, the dispatcher
// is rejected for that signature.
//
// Acceptance uses Go assignability, so an earlier alternative with
// interface-typed parameters can silently shadow a later, more specific one.
func FirstOf(alts ...any) Fn {
	if len(alts) == 0 {
		reject("FirstOf requires at least one alternative")
	}
	list := make([]alternative, len(alts))
	for i, a := range alts {
		if ex, ok := a.(Exclusion); ok {
			list[i] = alternative{fn: ex.fn, excluded: true}
		} else {
			list[i] = alternative{fn: lift(a, "FirstOf")}
		}
	}
	// The library is synchronous and single-threaded, so a plain map
	// suffices for the per-signature resolution cache.
	resolved := make(map[string]int)
	return Fn{
		name: "FirstOf",
		out:  commonOut(list),
		test: func(ts []reflect.Type) bool {
			for _, alt := range list {
				if alt.fn.accepts(ts) {
					return !alt.excluded
				}
			}
			return false
		},
		call: func(args []any) any {
			ts := typesOf(args)
			key := sigKey(ts)
			if i, ok := resolved[key]; ok {
				return list[i].fn.call(args)
			}
			for i, alt := range list {
				if !alt.fn.accepts(ts) {
					continue
				}
				if alt.excluded {
					reject("FirstOf: the matched alternative is excluded for arguments (" + key + ")")
				}
				resolved[key] = i
				return list[i].fn.call(args)
			}
			reject("FirstOf: no alternative accepts arguments (" + key + ")")
			return nil
		},
	}
}

// commonOut is the shared result type of the non-excluded alternatives,
// or nil when they disagree or are unknown.
func commonOut(list []alternative) reflect.Type {
	var out reflect.Type
	for _, alt := range list {
		if alt.excluded {
			continue
		}
		if alt.fn.out == nil {
			return nil
		}
		if out == nil {
			out = alt.fn.out
		} else if out != alt.fn.out {
			return nil
		}
	}
	return out
}
