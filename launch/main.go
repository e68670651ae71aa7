package launch

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/oliverbestmann/pixloop/orion"
)

// ParseFlags applies the command line flags to the defaults. A config file
// given with -config is loaded first, -backend and -profile override it.
func ParseFlags(name string, args []string, defaults Options) (Options, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)

	configPath := flags.String("config", "", "path to a yaml config file")
	backend := flags.String("backend", "", "backend to use: desktop or terminal")
	profile := flags.Bool("profile", false, "record a cpu profile")
	logLevel := flags.String("log-level", "", "log level: debug, info, warn or error")

	if err := flags.Parse(args); err != nil {
		return defaults, err
	}

	opts := defaults

	if *configPath != "" {
		var err error
		if opts, err = LoadOptions(*configPath, defaults); err != nil {
			return defaults, err
		}
	}

	switch Backend(*backend) {
	case "":
	case BackendDesktop, BackendTerminal:
		opts.Backend = Backend(*backend)
	default:
		return defaults, fmt.Errorf("unknown backend %q", *backend)
	}

	if *profile {
		opts.Profile = true
	}

	if *logLevel != "" {
		opts.Logging.Level = *logLevel
	}

	return opts, nil
}

// Main parses the command line, sets up logging and runs the app. It exits
// the process with status 2 on invalid flags and 1 if the app failed.
func Main(name string, newApp func() orion.App, defaults Options) {
	opts, err := ParseFlags(name, os.Args[1:], defaults)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", name, err)
		os.Exit(2)
	}

	_, closeLog, err := SetupLogging(opts.loggingConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", name, err)
		os.Exit(2)
	}

	err = Run(newApp(), opts)

	if err != nil {
		slog.Error("Application failed", slog.String("error", err.Error()))
	}

	closeLog()

	if err != nil {
		os.Exit(1)
	}
}
