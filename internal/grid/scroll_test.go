package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStrategy(t *testing.T) {
	cases := map[string]Strategy{
		"eager":      Eager,
		"Eager":      Eager,
		"a":          Eager,
		"deferred":   Deferred,
		" DEFERRED ": Deferred,
		"B":          Deferred,
	}
	for in, want := range cases {
		got, err := ParseStrategy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseStrategy("lazy")
	require.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestDirectionStep(t *testing.T) {
	cases := []struct {
		d    Direction
		axis Axis
		step int
	}{
		{Up, AxisY, -1},
		{Down, AxisY, 1},
		{Left, AxisX, -1},
		{Right, AxisX, 1},
	}
	for _, tc := range cases {
		axis, step, err := tc.d.Step()
		require.NoError(t, err)
		assert.Equal(t, tc.axis, axis, tc.d.String())
		assert.Equal(t, tc.step, step, tc.d.String())
	}

	_, _, err := Direction(12).Step()
	require.ErrorIs(t, err, ErrUnknownDirection)
	assert.Equal(t, "Direction(12)", Direction(12).String())
}

func TestScrollPolicies(t *testing.T) {
	// states are taken after the cursor moved; viewport 3 over 6 items
	cases := []struct {
		name     string
		state    axisState
		step     int
		eager    bool
		deferred bool
	}{
		{"inside forward", axisState{cursor: 1, view: 0, viewport: 3, items: 6}, 1, true, false},
		{"past far edge", axisState{cursor: 3, view: 0, viewport: 3, items: 6}, 1, true, true},
		{"far end reached", axisState{cursor: 5, view: 3, viewport: 3, items: 6}, 1, false, false},
		{"inside backward", axisState{cursor: 3, view: 2, viewport: 3, items: 6}, -1, true, false},
		{"past near edge", axisState{cursor: 1, view: 2, viewport: 3, items: 6}, -1, true, true},
		{"origin reached", axisState{cursor: 0, view: 0, viewport: 3, items: 6}, -1, false, false},
		{"viewport is grid", axisState{cursor: 2, view: 0, viewport: 3, items: 3}, 1, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.eager, eagerScroll(tc.state, tc.step), "eager")
			assert.Equal(t, tc.deferred, deferredScroll(tc.state, tc.step), "deferred")
		})
	}
}

func TestPolicyForRejectsUnknown(t *testing.T) {
	_, err := policyFor(Strategy(-1))
	require.ErrorIs(t, err, ErrUnknownStrategy)
	_, err = policyFor(Strategy(2))
	require.ErrorIs(t, err, ErrUnknownStrategy)
}
