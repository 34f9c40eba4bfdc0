// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package comb provides a generic function-combination toolkit: ad-hoc
// functional pipelines over arbitrary callables without hand-written glue
// for every combination.
//
// The core type [Fn] represents a combinator — a callable built from other
// callables and bound values. All builders classify their inputs through a
// single invocation dispatcher and return Fn values exposing one uniform
// call contract: supply an argument pack, receive a result.
//
// # Design Philosophy
//
// comb provides:
//   - A single classification point for callable and receiver shapes
//   - Construction-time rejection of every incompatible combination
//   - Value-semantics ownership: combinators copy what they capture,
//     and aliasing is an explicit opt-in via [Ref]
//
// # Invocation Dispatch
//
// [Invoke] is the entry point every combinator calls through. Ordinary
// function values receive the argument pack unchanged. Bound accessors —
// built by [MethodOf] and [FieldOf] — take their receiver as the first
// argument and classify it exactly one of three ways before the access runs:
//
//   - a value assignable to the declaring type (for interface declaring
//     types this covers every implementation),
//   - a [Ref] aliasing handle wrapping such a value, unwrapped first,
//   - a pointer-like indirection to such a value, dereferenced first.
//
// A receiver matching none of the three, a data accessor given more than
// one argument, or a callable producing more than one result is rejected.
//
// # Rejection Model
//
// There are no error returns and no runtime error recovery anywhere in the
// package. Every failure mode is an authoring mistake — incompatible
// argument shapes at the dispatcher, mismatched stages in a composition, a
// curry target no argument sequence could satisfy, an alternative list with
// no match — and is rejected by panic before the wrapped callables run, at
// construction when the shapes are statically known and otherwise at the
// binding call, the earliest point a type-erased host can detect it.
//
// # Ownership
//
// Every combinator stores copies of its constituent callables and bound
// arguments, captured at construction, so it outlives its sources. [Ref] is
// the deliberate exception: ByRef(&x) supplies a non-owning handle, tying
// the combinator to x's lifetime and leaving synchronization to the caller.
// The library itself never locks; it is synchronous, single-threaded, and
// free of I/O and process-wide state.
//
// # Composition
//
//   - [Compose]: right-associative chaining — Compose(f, g, h).Call(x)
//     computes f(g(h(x)))
//   - [Superpose]: invoke several callables with the same argument pack and
//     feed their results, in order, to a governing callable
//   - [Identity], [EmptyFn]: the trivial combinators
//
// # Currying and Binding
//
//   - [Curry]: incremental partial application; each call appends arguments
//     until the target's parameter contract is satisfied, and intermediate
//     combinators replay their bound sequence so they are freely reusable
//   - [BindFront], [BindFirst]: prepend bound arguments ahead of each call
//   - [Flip]: swap the operands of a binary callable
//
// # Operator Adapters
//
// Point-free unary adapters over the binary operators, each capturing a
// fixed right-hand operand: [Plus], [Minus], [Times], [Divided], [Mod],
// [Equals], [Differs], [LessThan], [GreaterThan], [LessOrEqualTo],
// [GreaterOrEqualTo]; [Matches] composes [Equals] with a key extractor.
//
// # Predicate Combinators
//
//   - [Inverse]: logical negation
//   - [AllOf], [AnyOf]: conjunction and disjunction over predicates invoked
//     with the same argument pack — every predicate always runs; there is
//     no short-circuiting, which is observable for impure predicates
//   - [NoneOf]: [Inverse] of [AnyOf]
//
// # Alternative Dispatch
//
// [FirstOf] scans an ordered alternative list and dispatches to the first
// alternative whose signature accepts the argument types, resolving once
// per concrete argument-type signature. [Excluded] marks an alternative as
// forcibly non-matching: when the excluded alternative is the one that
// matches, the dispatcher is rejected for that signature even if a later
// alternative would also match. Beware that acceptance follows Go
// assignability — an earlier alternative with interface-typed parameters
// shadows later, more specific ones.
//
// # Degradations from the Compile-Time Ideal
//
// Go has no variadic generics and no constant evaluation of function
// values, so the heterogeneous builders resolve signatures with reflection
// at construction instead of at compile time, and combinators are ordinary
// runtime closures. Correctness is unaffected: every rejection still fires
// before the wrapped callables run, and the combinators allocate no hidden
// state beyond their captured copies. Go likewise has value semantics only:
// a combinator returns exactly what the wrapped callable returned, and
// reference-preserving returns are expressed through [Ref].
//
// # Example
//
//	shout := comb.Compose(comb.Plus("!"), strings.ToUpper)
//	shout.Call("comb") // "COMB!"
//
//	sum3 := func(x, y, z int) int { return x + y + z }
//	add3 := comb.Curry(sum3).Call(1, 2).(comb.Fn)
//	add3.Call(3) // 6
package comb
