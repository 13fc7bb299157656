package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	in, err := os.CreateTemp(t.TempDir(), "stdin")
	if err != nil {
		t.Fatal(err)
	}
	defer in.Close()
	if _, err := in.WriteString(stdin); err != nil {
		t.Fatal(err)
	}
	if _, err := in.Seek(0, 0); err != nil {
		t.Fatal(err)
	}

	var out, errOut bytes.Buffer
	code := run(args, in, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestVersion(t *testing.T) {
	code, out, _ := runCLI(t, "", "version")
	if code != 0 || out != Version+"\n" {
		t.Errorf("version: code=%d out=%q", code, out)
	}
}

func TestEvalFlag(t *testing.T) {
	code, out, errOut := runCLI(t, "", "-e", "(+ 1 (* 2 3))")
	if code != 0 || out != "7\n" || errOut != "" {
		t.Errorf("-e: code=%d out=%q err=%q", code, out, errOut)
	}

	code, out, errOut = runCLI(t, "", "-color", "never", "-e", "(car 1)")
	if code != 1 || out != "" {
		t.Errorf("-e failure: code=%d out=%q", code, out)
	}
	if !strings.HasPrefix(errOut, "invalid arguments: car expects a pair, got 1\n(car 1)\n") {
		t.Errorf("-e failure stderr = %q", errOut)
	}
}

func TestBadFlags(t *testing.T) {
	if code, _, errOut := runCLI(t, "", "-scoping", "static", "-e", "1"); code != 2 || !strings.Contains(errOut, "scoping") {
		t.Errorf("bad scoping: code=%d err=%q", code, errOut)
	}
	if code, _, _ := runCLI(t, "", "run"); code != 2 {
		t.Errorf("run without file: code=%d", code)
	}
	if code, _, _ := runCLI(t, "", "history"); code != 2 {
		t.Errorf("history without transcript: code=%d", code)
	}
}

func TestPipedREPL(t *testing.T) {
	code, out, errOut := runCLI(t, "(define x 2)\n(* x 21)\nq\n(cons x x)\n", "-color", "never")
	if code != 0 {
		t.Fatalf("code=%d err=%q", code, errOut)
	}
	if out != "()\n42\n(2 . 2)\n" {
		t.Errorf("stdout = %q", out)
	}
	if !strings.HasPrefix(errOut, "symbol not found: q\n") {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestRunFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.lsp")
	src := "(define sq (lambda (n) (* n n)))\r\n(sq 12)\n\n(sq true)\n(sq 2)\n"
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}

	code, out, errOut := runCLI(t, "", "run", path)
	if code != 1 {
		t.Errorf("code = %d, want 1", code)
	}
	if out != "()\n144\n" {
		t.Errorf("stdout = %q", out)
	}
	if !strings.HasPrefix(errOut, "invalid arguments: mul expects numbers, got true\n(sq true)\n^^^^^^^^^\n") {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestTranscriptHistory(t *testing.T) {
	db := filepath.Join(t.TempDir(), "history.db")

	code, out, errOut := runCLI(t, "(+ 1 2)\n(div 1 0)\n", "-color", "never", "-transcript", db)
	if code != 0 || out != "3\n" {
		t.Fatalf("repl: code=%d out=%q err=%q", code, out, errOut)
	}

	code, out, errOut = runCLI(t, "", "history", "-transcript", db)
	if code != 0 {
		t.Fatalf("history: code=%d err=%q", code, errOut)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "SESSION") {
		t.Fatalf("history output = %q", out)
	}
	fields := strings.Fields(lines[1])
	if fields[len(fields)-1] != "2" {
		t.Errorf("session row = %q, want 2 inputs", lines[1])
	}

	code, out, errOut = runCLI(t, "", "history", "-transcript", db, fields[0])
	if code != 0 {
		t.Fatalf("history id: code=%d err=%q", code, errOut)
	}
	if !strings.Contains(out, "(+ 1 2)") || !strings.Contains(out, "[R002] division by zero") {
		t.Errorf("entries output = %q", out)
	}
}
