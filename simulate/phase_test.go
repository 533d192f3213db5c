// SPDX-License-Identifier: MIT
package simulate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to Phase
		ok       bool
	}{
		{Uninitialized, Equilibrating, true},
		{Uninitialized, Running, true},
		{Equilibrating, Running, true},
		{Running, Done, true},
		{Running, Failed, true},
		{Uninitialized, Done, false},
		{Running, Equilibrating, false},
		{Done, Failed, false},
		{Failed, Running, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, CanTransition(tc.from, tc.to), "%s → %s", tc.from, tc.to)
	}
}

func TestMachine(t *testing.T) {
	m := &machine{}
	require.NoError(t, m.to(Equilibrating))
	require.ErrorIs(t, m.to(Done), ErrPhase)
	assert.Equal(t, Equilibrating, m.phase)
	require.NoError(t, m.to(Running))
	require.NoError(t, m.to(Done))
	require.ErrorIs(t, m.to(Failed), ErrPhase)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "equilibrating", Equilibrating.String())
	assert.Equal(t, "phase(9)", Phase(9).String())
}
