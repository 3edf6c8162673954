// Package main is the entry point for the difftext script runner.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"

	"github.com/dshills/difftext/internal/config"
	"github.com/dshills/difftext/internal/engine"
	"github.com/dshills/difftext/internal/script"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	configPath string
	styleName  string
	scriptPath string
	value      string
	debug      bool
	maxUndo    int
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	logger := logr.Discard()
	if opts.debug {
		logger = funcr.New(func(prefix, args string) {
			fmt.Fprintln(os.Stderr, prefix, args)
		}, funcr.Options{Verbosity: 1})
	}

	file, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load presets: %v\n", err)
		return 1
	}
	preset, err := file.Preset(opts.styleName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v (available: %v)\n", err, file.Names())
		return 1
	}
	if opts.value != "" {
		preset.Value = opts.value
	}

	editor, err := preset.Build(logger.WithName(opts.styleName),
		engine.WithLogger(logger),
		engine.WithMaxUndoEntries(opts.maxUndo))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to build style %q: %v\n", opts.styleName, err)
		return 1
	}

	var in io.Reader = os.Stdin
	if opts.scriptPath != "-" {
		f, err := os.Open(opts.scriptPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to open script: %v\n", err)
			return 1
		}
		defer f.Close()
		in = f
	}

	steps, err := script.Parse(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := script.Run(editor, steps, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.configPath, "config", "styles.toml", "Path to the preset file (TOML or YAML)")
	flag.StringVar(&opts.configPath, "c", "styles.toml", "Path to the preset file (shorthand)")
	flag.StringVar(&opts.styleName, "style", "", "Name of the preset to edit with")
	flag.StringVar(&opts.styleName, "s", "", "Name of the preset to edit with (shorthand)")
	flag.StringVar(&opts.scriptPath, "script", "-", "Path to the YAML edit script, - for stdin")
	flag.StringVar(&opts.value, "value", "", "Initial value, overriding the preset")
	flag.IntVar(&opts.maxUndo, "max-undo", engine.DefaultMaxUndoEntries, "Maximum undo entries")
	flag.BoolVar(&opts.debug, "debug", false, "Log autocorrections and cancellations to stderr")
	flag.BoolVar(&opts.debug, "d", false, "Log autocorrections and cancellations to stderr (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "difftext - replay edits against an as-you-type formatting style\n\n")
		fmt.Fprintf(os.Stderr, "Usage: difftext -style NAME [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  difftext -s price -script edits.yaml          Replay a script\n")
		fmt.Fprintf(os.Stderr, "  difftext -s phone -value 7912 < edits.yaml    Start from a value\n")
		fmt.Fprintf(os.Stderr, "  DIFFTEXT_PRICE_LOCALE=de difftext -s price -d Override a preset field\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("difftext %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if opts.styleName == "" {
		fmt.Fprintf(os.Stderr, "Error: -style is required\n")
		flag.Usage()
		os.Exit(2)
	}

	return opts
}
