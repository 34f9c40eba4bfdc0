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

// firstIndex returns the index of the first value the predicate holds for,
// or -1.
func firstIndex(pred comb.Fn, nums []int) int {
	for i, n := range nums {
		if pred.Call(n).(bool) {
			return i
		}
	}
	return -1
}

func TestInverse(t *testing.T) {
	nums := []int{1, 2, 0, -1, 2}

	require.Equal(t, 2, firstIndex(comb.Inverse(isPositive), nums))
	require.Equal(t, true, comb.Inverse(isPositive).Call(-1))
}

func TestInverseRejectsNonPredicate(t *testing.T) {
	assert.Panics(t, func() { comb.Inverse(strconv.Itoa) })
}

func TestAllOfFirstMatch(t *testing.T) {
	nums := []int{-1, -2, 0, 1, 2, 3, 4}
	require.Equal(t, 4, firstIndex(comb.AllOf(isPositive, isEven), nums))
}

func TestAnyOfFirstMatch(t *testing.T) {
	nums := []int{-1, -2, 0, 1, 2, 3, 4}
	require.Equal(t, 1, firstIndex(comb.AnyOf(isPositive, isEven), nums))
}

func TestAllOfMatchesConjunction(t *testing.T) {
	p := comb.AllOf(isPositive, isEven)
	for _, x := range []int{-2, -1, 0, 1, 2, 3, 4} {
		require.Equal(t, isPositive(x) && isEven(x), p.Call(x), "x=%d", x)
	}
}

func TestAnyOfMatchesDisjunction(t *testing.T) {
	p := comb.AnyOf(isPositive, isEven)
	for _, x := range []int{-2, -1, 0, 1, 2, 3, 4} {
		require.Equal(t, isPositive(x) || isEven(x), p.Call(x), "x=%d", x)
	}
}

func TestNoneOf(t *testing.T) {
	p := comb.NoneOf(isPositive, isEven)

	require.Equal(t, true, p.Call(-1))
	require.Equal(t, false, p.Call(2))
	require.Equal(t, false, p.Call(-2))
}

func TestPredicateCombinatorsDoNotShortCircuit(t *testing.T) {
	// Every predicate always runs; observable for impure predicates.
	calls := 0
	counting := func(x int) bool {
		calls++
		return x > 100
	}
	never := func(int) bool { return false }
	always := func(int) bool { return true }

	comb.AllOf(never, counting).Call(5)
	require.Equal(t, 1, calls)

	comb.AnyOf(always, counting).Call(5)
	require.Equal(t, 2, calls)
}

func TestPredicateCombinatorsRejectNonPredicates(t *testing.T) {
	assert.Panics(t, func() { comb.AllOf(isPositive, strconv.Itoa) })
	assert.Panics(t, func() { comb.AnyOf(strconv.Itoa) })
}

func TestPredicateCombinatorsRequireOnePredicate(t *testing.T) {
	assert.Panics(t, func() { comb.AllOf() })
	assert.Panics(t, func() { comb.AnyOf() })
	assert.Panics(t, func() { comb.NoneOf() })
}
