package anim_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/radial/anim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEasings_Endpoints verifies every easing maps 0→0 and 1→1.
func TestEasings_Endpoints(t *testing.T) {
	for name, e := range map[string]anim.Easing{
		"linear":      anim.Linear,
		"out-cubic":   anim.EaseOutCubic,
		"in-out-quad": anim.EaseInOutQuad,
	} {
		assert.InDelta(t, 0, e(0), 1e-12, "%s(0)", name)
		assert.InDelta(t, 1, e(1), 1e-12, "%s(1)", name)
	}
}

// TestEasings_Monotone verifies each easing is non-decreasing on [0,1],
// which keeps Driver.Progress monotone.
func TestEasings_Monotone(t *testing.T) {
	for name, e := range map[string]anim.Easing{
		"linear":      anim.Linear,
		"out-cubic":   anim.EaseOutCubic,
		"in-out-quad": anim.EaseInOutQuad,
	} {
		prev := e(0)
		for i := 1; i <= 100; i++ {
			cur := e(float64(i) / 100)
			assert.GreaterOrEqual(t, cur, prev, "%s must be monotone at step %d", name, i)
			prev = cur
		}
	}
}

// TestEasingByName verifies registry lookups, the empty-name default, and
// the ErrUnknownEasing sentinel.
func TestEasingByName(t *testing.T) {
	for _, name := range []string{"", anim.EasingLinear, anim.EasingOutCubic, anim.EasingInOutQuad} {
		e, err := anim.EasingByName(name)
		require.NoError(t, err, "name=%q", name)
		require.NotNil(t, e)
	}

	_, err := anim.EasingByName("bounce")
	assert.ErrorIs(t, err, anim.ErrUnknownEasing)
}

// TestClamp01 verifies the progress clamp at and beyond both bounds.
func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, anim.Clamp01(-0.5))
	assert.Equal(t, 0.25, anim.Clamp01(0.25))
	assert.Equal(t, 1.0, anim.Clamp01(1.5))
}

// TestDriver_ProgressLifecycle verifies the driver contract: 0 before
// start, 1 from start+duration onward, linear in between for Linear easing.
func TestDriver_ProgressLifecycle(t *testing.T) {
	start := time.Unix(1000, 0)
	d := anim.NewDriver(start, time.Second, anim.Linear)

	assert.Equal(t, 0.0, d.Progress(start.Add(-time.Minute)), "before start")
	assert.Equal(t, 0.0, d.Progress(start), "at start")
	assert.InDelta(t, 0.25, d.Progress(start.Add(250*time.Millisecond)), 1e-12)
	assert.InDelta(t, 0.5, d.Progress(start.Add(500*time.Millisecond)), 1e-12)
	assert.Equal(t, 1.0, d.Progress(start.Add(time.Second)), "at end")
	assert.Equal(t, 1.0, d.Progress(start.Add(time.Hour)), "long after end")
}

// TestDriver_Monotone verifies progress never decreases over a simulated
// 60 Hz tick sequence with a curved easing.
func TestDriver_Monotone(t *testing.T) {
	start := time.Unix(0, 0)
	d := anim.NewDriver(start, 800*time.Millisecond, anim.EaseInOutQuad)

	prev := -1.0
	for tick := 0; tick < 100; tick++ {
		now := start.Add(time.Duration(tick) * time.Second / 60)
		cur := d.Progress(now)
		assert.GreaterOrEqual(t, cur, prev, "tick %d", tick)
		assert.GreaterOrEqual(t, cur, 0.0)
		assert.LessOrEqual(t, cur, 1.0)
		prev = cur
	}
	assert.Equal(t, 1.0, prev, "sequence must finish at full progress")
}

// TestDriver_Defaults verifies the duration and easing fallbacks.
func TestDriver_Defaults(t *testing.T) {
	start := time.Unix(0, 0)
	d := anim.NewDriver(start, 0, nil)

	assert.False(t, d.Done(start.Add(anim.DefaultDuration/2)))
	assert.True(t, d.Done(start.Add(anim.DefaultDuration)))
	assert.InDelta(t, 0.5, d.Progress(start.Add(anim.DefaultDuration/2)), 1e-12, "nil easing defaults to Linear")
}
