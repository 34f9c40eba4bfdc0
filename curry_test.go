// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comb_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/comb"
)

func sum3(x, y, z int) int { return x + y + z }

// asFn asserts a non-saturating curried call returned a new combinator.
func asFn(t *testing.T, v any) comb.Fn {
	t.Helper()
	fn, ok := v.(comb.Fn)
	require.True(t, ok, "expected an intermediate combinator, got %T", v)
	return fn
}

func TestCurrySaturation(t *testing.T) {
	c := comb.Curry(sum3)

	require.Equal(t, 6, c.Call(1, 2, 3))
	require.Equal(t, 6, asFn(t, c.Call(1, 2)).Call(3))
	require.Equal(t, 6, asFn(t, c.Call(1)).Call(2, 3))
	require.Equal(t, 6, asFn(t, asFn(t, c.Call(1)).Call(2)).Call(3))
}

func TestCurryIntermediateReuse(t *testing.T) {
	concat := func(prefix string, n int) string { return prefix + strconv.Itoa(n) }
	format := asFn(t, comb.Curry(concat).Call("~"))

	var result []string
	for _, n := range []int{1, 2, 3} {
		result = append(result, format.Call(n).(string))
	}

	assert.Equal(t, []string{"~1", "~2", "~3"}, result)
}

func TestCurryZeroArgumentStep(t *testing.T) {
	c := comb.Curry(sum3)

	// A step that adds nothing neither saturates nor loses progress.
	partial := asFn(t, asFn(t, c.Call(1)).Call())
	require.Equal(t, 6, partial.Call(2, 3))
}

func TestCurryVariadicTarget(t *testing.T) {
	sum := func(ns ...int) int {
		total := 0
		for _, n := range ns {
			total += n
		}
		return total
	}
	c := comb.Curry(sum)

	// A variadic target saturates as soon as its fixed parameters are bound.
	require.Equal(t, 0, c.Call())
	require.Equal(t, 6, comb.Curry(sum).Call(1, 2, 3))
}

func TestCurryPermanentMismatchRejectedAtBinding(t *testing.T) {
	c := comb.Curry(func(a, b int) int { return a + b })

	assert.Panics(t, func() { c.Call("x") })
	assert.Panics(t, func() { asFn(t, c.Call(1)).Call("x") })
}

func TestCurryRejectsOverlongSequence(t *testing.T) {
	c := comb.Curry(sum3)
	assert.Panics(t, func() { c.Call(1, 2, 3, 4) })
}

func TestCurryAliasedReceiverArgument(t *testing.T) {
	p := point{X: 10, Y: 1}
	raise := func(p *point, dy, dz int) int { return p.Y + dy + dz }

	bound := asFn(t, comb.Curry(raise).Call(&p))
	require.Equal(t, 4, bound.Call(1, 2))
	require.Equal(t, 6, bound.Call(2, 3))
}

func TestCurryMethodAccessor(t *testing.T) {
	p := point{X: 1, Y: 1}
	shift := comb.Curry(comb.MethodOf[point]("Shift"))

	require.Equal(t, 4, asFn(t, shift.Call(comb.ByRef(&p))).Call(1, 1))
	assert.Equal(t, point{X: 2, Y: 2}, p)
}

func TestCurryAccessorRejectsBadReceiverAtBinding(t *testing.T) {
	// An accessor target has no plain signature, but a receiver no
	// shape can satisfy is still rejected at the call that binds it.
	field := comb.Curry(comb.FieldOf[point]("X"))
	assert.Panics(t, func() { field.Call("not a receiver") })

	shift := comb.Curry(comb.MethodOf[point]("Shift"))
	assert.Panics(t, func() { shift.Call(point{}) })
}

func TestCurryAccessorRejectsBadTailAtBinding(t *testing.T) {
	p := point{X: 1, Y: 1}
	shift := asFn(t, comb.Curry(comb.MethodOf[point]("Shift")).Call(&p))

	assert.Panics(t, func() { shift.Call("x") })
}

func TestCurryRejectsNonCallable(t *testing.T) {
	assert.Panics(t, func() { comb.Curry(42) })
	assert.Panics(t, func() { comb.Curry(nil) })
}
