package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/funvibe/lispy/internal/transcript"
)

func cmdHistory(args []string, stdout, stderr io.Writer) int {
	var opts options
	fs := newFlagSet(appName+" history", stderr, &opts)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	cfg, err := opts.loadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		return 2
	}
	if cfg.Transcript == "" {
		fmt.Fprintf(stderr, "%s: no transcript configured (use -transcript or set transcript in the config file)\n", appName)
		return 2
	}

	store, err := transcript.Open(cfg.Transcript)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		return 1
	}
	defer store.Close()

	ctx := context.Background()
	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	defer tw.Flush()

	if fs.NArg() == 0 {
		sessions, err := store.Sessions(ctx)
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", appName, err)
			return 1
		}
		fmt.Fprintln(tw, "SESSION\tSTARTED\tINPUTS")
		for _, s := range sessions {
			fmt.Fprintf(tw, "%s\t%s\t%d\n", s.ID, s.StartedAt.Format(time.DateTime), s.Entries)
		}
		return 0
	}

	entries, err := store.Entries(ctx, fs.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		return 1
	}
	fmt.Fprintln(tw, "#\tINPUT\tRESULT")
	for _, e := range entries {
		result := e.Output
		if e.ErrorCode != "" {
			result = "[" + e.ErrorCode + "] " + result
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\n", e.Seq, e.Input, result)
	}
	return 0
}
