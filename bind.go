// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comb

import (
	"cmp"
	"reflect"
)

// BindFront builds a combinator that prepends the bound arguments ahead of
// any future call's arguments before invoking f. Bound values are captured
// by copy at construction and passed through on every call. A bound prefix
// the target can never accept is rejected at construction.
func BindFront(f any, bound ...any) Fn {
	target := lift(f, "BindFront")
	ensurePrefix(target, typesOf(bound), "BindFront")
	var sig *signature
	if target.sig != nil {
		sig = target.sig.dropFront(len(bound))
	}
	return Fn{
		name: "BindFront",
		sig:  sig,
		out:  target.out,
		test: func(ts []reflect.Type) bool {
			all := make([]reflect.Type, 0, len(bound)+len(ts))
			all = append(all, typesOf(bound)...)
			all = append(all, ts...)
			return target.accepts(all)
		},
		bind: func(ts []reflect.Type) bool {
			all := make([]reflect.Type, 0, len(bound)+len(ts))
			all = append(all, typesOf(bound)...)
			all = append(all, ts...)
			return target.accepts(all) || target.prefixOK(all)
		},
		call: func(args []any) any {
			seq := make([]any, 0, len(bound)+len(args))
			seq = append(seq, bound...)
			seq = append(seq, args...)
			return target.call(seq)
		},
	}
}

// BindFirst is the single-bound-argument specialization of [BindFront].
func BindFirst(f any, arg any) Fn {
	return BindFront(f, arg)
}

// Flip swaps the operands of a binary callable:
// Flip(f).Call(x, y) invokes f with (y, x). Callables that are statically
// known not to be binary are rejected at construction.
func Flip(f any) Fn {
	target := lift(f, "Flip")
	var sig *signature
	if target.sig != nil {
		if len(target.sig.in) != 2 || target.sig.variadic {
			reject("Flip requires a binary callable, got " + target.sig.String())
		}
		sig = &signature{in: []reflect.Type{target.sig.in[1], target.sig.in[0]}}
	}
	return Fn{
		name: "Flip",
		sig:  sig,
		out:  target.out,
		test: func(ts []reflect.Type) bool {
			return len(ts) == 2 && target.accepts([]reflect.Type{ts[1], ts[0]})
		},
		call: func(args []any) any {
			if len(args) != 2 {
				reject("Flip: expected two arguments, got " + sigKey(typesOf(args)))
			}
			return target.call([]any{args[1], args[0]})
		},
	}
}

// Integer constrains the built-in integer types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Number constrains the built-in numeric types.
type Number interface {
	Integer | ~float32 | ~float64 | ~complex64 | ~complex128
}

// Addable constrains the types the + operator applies to.
type Addable interface {
	Number | ~string
}

// The operator adapters below capture a fixed right-hand operand and take
// the left-hand operand at call time, so they slot directly into point-free
// pipelines. Each is BindFirst composed with an operand flip over the
// underlying binary operation, with the fixed operand on the right.

// Plus builds a unary adapter computing x + rhs.
func Plus[T Addable](rhs T) Fn {
	return BindFirst(Flip(func(a, b T) T { return a + b }), rhs)
}

// Minus builds a unary adapter computing x - rhs.
func Minus[T Number](rhs T) Fn {
	return BindFirst(Flip(func(a, b T) T { return a - b }), rhs)
}

// Times builds a unary adapter computing x * rhs.
func Times[T Number](rhs T) Fn {
	return BindFirst(Flip(func(a, b T) T { return a * b }), rhs)
}

// Divided builds a unary adapter computing x / rhs.
func Divided[T Number](rhs T) Fn {
	return BindFirst(Flip(func(a, b T) T { return a / b }), rhs)
}

// Mod builds a unary adapter computing x % rhs.
func Mod[T Integer](rhs T) Fn {
	return BindFirst(Flip(func(a, b T) T { return a % b }), rhs)
}

// Equals builds a predicate testing x == key.
func Equals[T comparable](key T) Fn {
	return BindFirst(Flip(func(a, b T) bool { return a == b }), key)
}

// Differs builds a predicate testing x != key.
func Differs[T comparable](key T) Fn {
	return BindFirst(Flip(func(a, b T) bool { return a != b }), key)
}

// LessThan builds a predicate testing x < rhs.
func LessThan[T cmp.Ordered](rhs T) Fn {
	return BindFirst(Flip(func(a, b T) bool { return a < b }), rhs)
}

// GreaterThan builds a predicate testing x > rhs.
func GreaterThan[T cmp.Ordered](rhs T) Fn {
	return BindFirst(Flip(func(a, b T) bool { return a > b }), rhs)
}

// LessOrEqualTo builds a predicate testing x <= rhs.
func LessOrEqualTo[T cmp.Ordered](rhs T) Fn {
	return BindFirst(Flip(func(a, b T) bool { return a <= b }), rhs)
}

// GreaterOrEqualTo builds a predicate testing x >= rhs.
func GreaterOrEqualTo[T cmp.Ordered](rhs T) Fn {
	return BindFirst(Flip(func(a, b T) bool { return a >= b }), rhs)
}

// Matches builds a predicate testing whether the value extractor draws out
// of an incoming item equals the captured key. The key is captured by copy;
// the extractor may be any callable, including a [FieldOf] accessor.
func Matches[T comparable](key T, extractor any) Fn {
	return Compose(Equals(key), extractor)
}
