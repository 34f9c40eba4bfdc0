// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/comb"
)

type first struct{}
type second struct{}
type third struct{}

func TestFirstOfBasics(t *testing.T) {
	f := comb.FirstOf(
		func(first) int { return 1 },
		func(second) int { return 2 },
		func(third) int { return 3 },
	)

	require.Equal(t, 1, f.Call(first{}))
	require.Equal(t, 2, f.Call(second{}))
	require.Equal(t, 3, f.Call(third{}))
}

func TestFirstOfFirstMatchWins(t *testing.T) {
	f := comb.FirstOf(
		func(int) string { return "f1" },
		func(int) string { return "f2" },
		func(int) string { return "f3" },
	)

	// Every alternative accepts an int; the first always wins,
	// including on calls after the signature has been resolved.
	for range 3 {
		require.Equal(t, "f1", f.Call(7))
	}
}

func TestFirstOfExcludedAlternative(t *testing.T) {
	f := comb.FirstOf(
		func(first) int { return 1 },
		comb.Excluded(func(second) int { return 2 }),
		func(third) int { return 3 },
	)

	require.Equal(t, 1, f.Call(first{}))
	require.Equal(t, 3, f.Call(third{}))
	assert.Panics(t, func() { f.Call(second{}) })
}

func TestFirstOfBroadAlternativeShadows(t *testing.T) {
	// An interface-typed earlier alternative matches first, even though a
	// later (here: excluded) alternative is more specific.
	f := comb.FirstOf(
		func(any) int { return 1 },
		comb.Excluded(func(int) int { return 2 }),
		func(third) int { return 3 },
	)

	require.Equal(t, 1, f.Call(7))
	require.Equal(t, 1, f.Call(third{}))
}

func TestFirstOfNoMatch(t *testing.T) {
	f := comb.FirstOf(
		func(first) int { return 1 },
		func(second) int { return 2 },
	)

	assert.Panics(t, func() { f.Call("unhandled") })
	assert.Panics(t, func() { f.Call(first{}, second{}) })
}

func TestFirstOfWithAccessorAlternative(t *testing.T) {
	f := comb.FirstOf(
		comb.FieldOf[point]("X"),
		func(s string) int { return len(s) },
	)

	p := point{X: 3, Y: 9}
	require.Equal(t, 3, f.Call(p))
	require.Equal(t, 3, f.Call(&p))
	require.Equal(t, 4, f.Call("abcd"))
}

func TestFirstOfRequiresAlternatives(t *testing.T) {
	assert.Panics(t, func() { comb.FirstOf() })
}

func TestExcludedOutsideFirstOfRejected(t *testing.T) {
	assert.Panics(t, func() { comb.Invoke(comb.Excluded(isPositive), 1) })
	assert.Panics(t, func() { comb.Compose(comb.Excluded(isPositive), isEven) })
}

func TestExcludedRequiresCallable(t *testing.T) {
	assert.Panics(t, func() { comb.Excluded("not callable") })
}
