package orion

import "time"

const (
	DefaultTargetFrameTime = time.Second / 60
	DefaultMaxFrameTime    = 250 * time.Millisecond
)

// Config holds the initial pacing configuration of the loop.
// Zero values are replaced by defaults.
type Config struct {
	// TargetFrameTime is the duration of one fixed update tick.
	TargetFrameTime time.Duration `yaml:"target_frame_time"`

	// MaxFrameTime is the longest real frame duration fed into
	// the accumulator. Longer frames are clamped to this value.
	MaxFrameTime time.Duration `yaml:"max_frame_time"`

	// MaxTicksPerFrame guards against a spiral of death with a
	// misconfigured TargetFrameTime.
	MaxTicksPerFrame int `yaml:"max_ticks_per_frame"`
}

func (c Config) withDefaults() Config {
	if c.TargetFrameTime <= 0 {
		c.TargetFrameTime = DefaultTargetFrameTime
	}

	if c.MaxFrameTime <= 0 {
		c.MaxFrameTime = DefaultMaxFrameTime
	}

	if c.MaxTicksPerFrame <= 0 {
		c.MaxTicksPerFrame = DefaultMaxTicksPerFrame
	}

	return c
}
