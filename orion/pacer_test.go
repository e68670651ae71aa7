package orion

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runFrame(p *FramePacer, elapsed, target, maxFrameTime time.Duration) int {
	p.Begin(elapsed, maxFrameTime)

	var ticks int
	for p.Next(target) {
		ticks += 1
	}

	return ticks
}

func TestFramePacerScenarios(t *testing.T) {
	const target = 16 * time.Millisecond
	const maxFrameTime = 250 * time.Millisecond

	tests := []struct {
		name      string
		elapsed   time.Duration
		ticks     int
		leftover  time.Duration
		blendingF float64
	}{
		{"fifty milliseconds", 50 * time.Millisecond, 3, 2 * time.Millisecond, 0.125},
		{"clamped to max frame time", 400 * time.Millisecond, 15, 10 * time.Millisecond, 0.625},
		{"shorter than one tick", 10 * time.Millisecond, 0, 10 * time.Millisecond, 0.625},
		{"exactly one tick", 16 * time.Millisecond, 1, 0, 0},
		{"negative elapsed time", -5 * time.Millisecond, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p FramePacer

			ticks := runFrame(&p, tt.elapsed, target, maxFrameTime)

			assert.Equal(t, tt.ticks, ticks)
			assert.Equal(t, tt.ticks, p.Ticks())
			assert.Equal(t, tt.leftover, p.Accumulated())
			assert.InDelta(t, tt.blendingF, p.BlendingFactor(target), 1e-9)
		})
	}
}

func TestFramePacerConservesTime(t *testing.T) {
	const target = 16 * time.Millisecond
	const maxFrameTime = 100 * time.Millisecond

	rng := rand.New(rand.NewPCG(1, 2))

	var p FramePacer
	var totalTicks int
	var totalInput time.Duration

	for range 1000 {
		elapsed := time.Duration(rng.Int64N(int64(150 * time.Millisecond)))

		totalInput += min(elapsed, maxFrameTime)
		totalTicks += runFrame(&p, elapsed, target, maxFrameTime)

		require.GreaterOrEqual(t, p.Accumulated(), time.Duration(0))
		require.Less(t, p.Accumulated(), target)

		blendingFactor := p.BlendingFactor(target)
		require.GreaterOrEqual(t, blendingFactor, 0.0)
		require.Less(t, blendingFactor, 1.0)
	}

	assert.Equal(t, totalInput, time.Duration(totalTicks)*target+p.Accumulated())
}

func TestFramePacerClampsLikeMaxFrameTime(t *testing.T) {
	const target = 16 * time.Millisecond
	const maxFrameTime = 250 * time.Millisecond

	for _, extra := range []time.Duration{1, time.Millisecond, time.Second, time.Hour} {
		var clamped, exact FramePacer

		assert.Equal(t,
			runFrame(&exact, maxFrameTime, target, maxFrameTime),
			runFrame(&clamped, maxFrameTime+extra, target, maxFrameTime),
		)

		assert.Equal(t, exact.Accumulated(), clamped.Accumulated())
	}
}

func TestFramePacerKeepsLeftoverAcrossFrames(t *testing.T) {
	const target = 16 * time.Millisecond

	var p FramePacer

	// 10ms is not enough for a tick, but twice is
	assert.Equal(t, 0, runFrame(&p, 10*time.Millisecond, target, time.Second))
	assert.Equal(t, 1, runFrame(&p, 10*time.Millisecond, target, time.Second))
	assert.Equal(t, 4*time.Millisecond, p.Accumulated())
}

func TestFramePacerTargetChangeAppliesImmediately(t *testing.T) {
	var p FramePacer

	p.Begin(40*time.Millisecond, time.Second)

	require.True(t, p.Next(16*time.Millisecond))

	// 24ms left, not rescaled, consumed with the new target
	assert.True(t, p.Next(8*time.Millisecond))
	assert.True(t, p.Next(8*time.Millisecond))
	assert.True(t, p.Next(8*time.Millisecond))
	assert.False(t, p.Next(8*time.Millisecond))
	assert.Equal(t, time.Duration(0), p.Accumulated())
}

func TestFramePacerGuardsAgainstTinyTargets(t *testing.T) {
	p := FramePacer{MaxTicks: 10}

	ticks := runFrame(&p, 100*time.Millisecond, time.Microsecond, time.Second)

	assert.Equal(t, 10, ticks)
	assert.Less(t, p.Accumulated(), time.Microsecond)
}

func TestFramePacerZeroTarget(t *testing.T) {
	var p FramePacer

	p.Begin(10*time.Millisecond, time.Second)

	assert.False(t, p.Next(0))
	assert.Equal(t, 0.0, p.BlendingFactor(0))
}

func TestFramePacerReset(t *testing.T) {
	var p FramePacer

	runFrame(&p, 10*time.Millisecond, 16*time.Millisecond, time.Second)
	p.Reset()

	assert.Equal(t, time.Duration(0), p.Accumulated())
}
