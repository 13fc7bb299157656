package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/funvibe/lispy/internal/diagnostics"
	"github.com/funvibe/lispy/internal/repl"
	"github.com/funvibe/lispy/internal/transcript"
)

func cmdRepl(args []string, stdin *os.File, stdout, stderr io.Writer) int {
	var opts options
	fs := newFlagSet(appName, stderr, &opts)
	expr := fs.String("e", "", "evaluate an expression and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	cfg, err := opts.loadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		return 2
	}

	session := repl.NewSession(cfg)
	logger := opts.logger(stderr)
	session.SetLogger(logger)

	if *expr != "" {
		val, err := session.Eval(*expr)
		if err != nil {
			diagnostics.Render(stderr, *expr, diagnostics.FromError(err), repl.UseColor(cfg.Color, os.Stderr))
			return 1
		}
		fmt.Fprintln(stdout, val.Inspect())
		return 0
	}

	loop := repl.NewLoop(session, stdout, stderr)
	loop.Color = repl.UseColor(cfg.Color, os.Stdout)

	if cfg.Transcript != "" {
		store, err := transcript.Open(cfg.Transcript)
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", appName, err)
			return 1
		}
		defer store.Close()
		rec, err := store.Begin(context.Background())
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", appName, err)
			return 1
		}
		logger.Debug("transcript session started", "id", rec.ID(), "path", cfg.Transcript)
		loop.Recorder = rec
	}

	if repl.IsInteractive(stdin) {
		fmt.Fprintf(stdout, "%s %s. Type %q or press Ctrl+D to leave.\n", appName, Version, "exit")
		err = loop.RunInteractive(cfg.HistoryPath())
	} else {
		loop.Prompt = ""
		err = loop.Run(stdin)
	}
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		return 1
	}
	return 0
}
