package main

import (
	"flag"
	"io"
	"log/slog"
	"os"

	"github.com/funvibe/lispy/internal/config"
)

// options are the flags shared by every subcommand.
type options struct {
	configPath string
	scoping    string
	color      string
	transcript string
	tree       bool
	verbose    bool
}

func newFlagSet(name string, stderr io.Writer, opts *options) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "config file")
	fs.StringVar(&opts.scoping, "scoping", "", "closure scoping: lexical or dynamic")
	fs.StringVar(&opts.color, "color", "", "colour output: auto, always or never")
	fs.StringVar(&opts.transcript, "transcript", "", "sqlite transcript database")
	fs.BoolVar(&opts.tree, "tree", false, "print the surface tree of every input")
	fs.BoolVar(&opts.verbose, "v", false, "verbose logging")
	return fs
}

// loadConfig reads the config file, if any, and applies flag overrides.
func (o *options) loadConfig() (*config.Config, error) {
	path := o.configPath
	if path == "" {
		if wd, err := os.Getwd(); err == nil {
			path = config.Find(wd)
		}
	}

	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if o.scoping != "" {
		cfg.Scoping = config.Scoping(o.scoping)
	}
	if o.color != "" {
		cfg.Color = config.ColorMode(o.color)
	}
	if o.transcript != "" {
		cfg.Transcript = o.transcript
	}
	if o.tree {
		cfg.ShowTree = true
	}
	return cfg, cfg.Validate()
}

func (o *options) logger(stderr io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
}
