package main

import (
	"fmt"
	"io"
	"os"
)

// Version can be set at build time using: -ldflags "-X main.Version=v1.2.3"
var Version = "dev"

const appName = "lispy"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin *os.File, stdout, stderr io.Writer) int {
	if len(args) > 0 {
		switch args[0] {
		case "run":
			return cmdRun(args[1:], stdout, stderr)
		case "history":
			return cmdHistory(args[1:], stdout, stderr)
		case "version":
			fmt.Fprintln(stdout, Version)
			return 0
		case "help", "-h", "-help", "--help":
			usage(stdout)
			return 0
		}
	}
	return cmdRepl(args, stdin, stdout, stderr)
}

func usage(w io.Writer) {
	fmt.Fprintf(w, `%s %s

Usage:
  %s [flags]                  Start the REPL (reads stdin when it is not a terminal)
  %s [flags] -e <expr>        Evaluate one expression and print the result
  %s run [flags] <file.lsp>   Evaluate a file line by line
  %s history [flags] [id]     List recorded sessions, or the inputs of one session
  %s version                  Print the version

Flags:
  -config <path>      Config file (default: ./lispy.yaml when present)
  -scoping <mode>     lexical | dynamic
  -color <mode>       auto | always | never
  -transcript <path>  Record inputs to a sqlite database
  -tree               Print the surface tree of every input
  -v                  Verbose logging to stderr
`, appName, Version, appName, appName, appName, appName, appName)
}
