package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/funvibe/lispy/internal/config"
	"github.com/funvibe/lispy/internal/repl"
)

// cmdRun evaluates a source file one line at a time, exactly as the REPL
// would, and stops at the first failing line.
func cmdRun(args []string, stdout, stderr io.Writer) int {
	var opts options
	fs := newFlagSet(appName+" run", stderr, &opts)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintf(stderr, "usage: %s run [flags] <file%s>\n", appName, config.SourceFileExt)
		return 2
	}
	path := fs.Arg(0)

	cfg, err := opts.loadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		return 2
	}
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "%s: cannot read %s: %v\n", appName, path, err)
		return 1
	}

	session := repl.NewSession(cfg)
	session.SetLogger(opts.logger(stderr))
	loop := repl.NewLoop(session, stdout, stderr)
	loop.Prompt = ""
	loop.Color = false

	for _, line := range strings.Split(string(bytes.ReplaceAll(src, []byte("\r\n"), []byte("\n"))), "\n") {
		if loop.Handle(line) {
			break
		}
		if loop.Failures > 0 {
			return 1
		}
	}
	return 0
}
