package orion

import (
	"log/slog"
	"time"
)

// DefaultMaxTicksPerFrame bounds the number of updates per real frame
// if the FramePacer does not specify a limit.
const DefaultMaxTicksPerFrame = 1024

// FramePacer converts irregular real frame durations into a sequence of
// fixed size update ticks, see https://gafferongames.com/post/fix_your_timestep.
//
// A frame starts with Begin, followed by calls to Next until it returns
// false. The pacer never resets the leftover time between frames, so
// pacing does not drift over many frames.
type FramePacer struct {
	// MaxTicks limits the number of ticks per frame. Uses
	// DefaultMaxTicksPerFrame if zero.
	MaxTicks int

	accumulated time.Duration
	ticks       int
}

// Begin starts a new frame. The elapsed time is clamped to maxFrameTime
// and added to the accumulator. Returns the clamped duration.
func (p *FramePacer) Begin(elapsed, maxFrameTime time.Duration) time.Duration {
	elapsed = max(elapsed, 0)

	if maxFrameTime > 0 && elapsed > maxFrameTime {
		elapsed = maxFrameTime
	}

	p.accumulated += elapsed
	p.ticks = 0

	return elapsed
}

// Next consumes one tick of the given size from the accumulator and
// reports whether a tick is due. The target is read on every call,
// a new target applies immediately to the time already accumulated.
//
// The target must be positive.
func (p *FramePacer) Next(target time.Duration) bool {
	if target <= 0 || p.accumulated < target {
		return false
	}

	maxTicks := p.MaxTicks
	if maxTicks <= 0 {
		maxTicks = DefaultMaxTicksPerFrame
	}

	if p.ticks >= maxTicks {
		dropped := p.accumulated / target

		slog.Warn(
			"Too many updates in one frame, dropping pending ticks",
			slog.Int("ticks", p.ticks),
			slog.Int64("dropped", int64(dropped)),
			slog.Duration("target", target),
		)

		p.accumulated -= dropped * target
		return false
	}

	p.accumulated -= target
	p.ticks += 1

	return true
}

// Ticks returns the number of ticks consumed since the last call to Begin.
func (p *FramePacer) Ticks() int {
	return p.ticks
}

// Accumulated returns the time not yet consumed by a tick.
func (p *FramePacer) Accumulated() time.Duration {
	return p.accumulated
}

// BlendingFactor returns the progress into the next tick, a value in [0, 1)
// directly after all due ticks were consumed.
func (p *FramePacer) BlendingFactor(target time.Duration) float64 {
	if target <= 0 {
		return 0
	}

	return p.accumulated.Seconds() / target.Seconds()
}

func (p *FramePacer) Reset() {
	p.accumulated = 0
	p.ticks = 0
}
