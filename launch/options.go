package launch

import (
	"fmt"
	"io"
	"os"

	"github.com/oliverbestmann/pixloop/orion"
	"gopkg.in/yaml.v3"
)

type Backend string

const (
	// BackendDesktop opens a glfw window and presents with webgpu.
	BackendDesktop Backend = "desktop"

	// BackendTerminal renders into the current terminal using tcell.
	BackendTerminal Backend = "terminal"
)

type Options struct {
	Window  WindowOptions `yaml:"window"`
	Buffer  BufferOptions `yaml:"buffer"`
	Loop    orion.Config  `yaml:"loop"`
	Backend Backend       `yaml:"backend"`
	Logging LoggingConfig `yaml:"logging"`

	// Profile writes a cpu profile to a temporary directory
	Profile bool `yaml:"profile"`
}

type WindowOptions struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Resizable bool   `yaml:"resizable"`
}

// BufferOptions configures the size of the pixel buffer. On the terminal
// a zero size means to use the size of the terminal.
type BufferOptions struct {
	Width  uint32 `yaml:"width"`
	Height uint32 `yaml:"height"`
}

func (opts Options) withDefaults() Options {
	if opts.Backend == "" {
		opts.Backend = BackendDesktop
	}

	if opts.Window.Title == "" {
		opts.Window.Title = "pixloop"
	}

	if opts.Window.Width == 0 {
		opts.Window.Width = 960
	}

	if opts.Window.Height == 0 {
		opts.Window.Height = 720
	}

	if opts.Backend == BackendDesktop {
		if opts.Buffer.Width == 0 {
			opts.Buffer.Width = 320
		}

		if opts.Buffer.Height == 0 {
			opts.Buffer.Height = 240
		}
	}

	return opts
}

// loggingConfig returns the logging config for the selected backend. The
// terminal backend owns stderr, so logs without a file are discarded there.
func (opts Options) loggingConfig() LoggingConfig {
	cfg := opts.Logging

	if opts.Backend == BackendTerminal && cfg.File == "" && cfg.Output == nil {
		cfg.Output = io.Discard
	}

	return cfg
}

// LoadOptions reads options from a yaml file. Values missing in the file
// keep the value given in defaults. Durations are written like "16ms".
func LoadOptions(path string, defaults Options) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return defaults, fmt.Errorf("read config: %w", err)
	}

	opts := defaults
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return defaults, fmt.Errorf("parse config %q: %w", path, err)
	}

	switch opts.Backend {
	case "", BackendDesktop, BackendTerminal:
	default:
		return defaults, fmt.Errorf("unknown backend %q", opts.Backend)
	}

	return opts, nil
}
