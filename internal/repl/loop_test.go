package repl

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/funvibe/lispy/internal/config"
	"github.com/funvibe/lispy/internal/diagnostics"
	"github.com/funvibe/lispy/internal/transcript"
)

func newTestLoop(cfg *config.Config) (*Loop, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	loop := NewLoop(NewSession(cfg), &out, &errOut)
	loop.Prompt = ""
	return loop, &out, &errOut
}

func TestLoopRun(t *testing.T) {
	loop, out, errOut := newTestLoop(nil)
	input := strings.Join([]string{
		"(+ 1 2)",
		"",
		"(div 1 0)",
		"(define x 5)",
		"   ",
		"x",
		"exit",
		"99",
	}, "\n")

	if err := loop.Run(strings.NewReader(input)); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got, want := out.String(), "3\n()\n5\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
	if got, want := errOut.String(), "division by zero\n(div 1 0)\n^^^^^^^^^\n"; got != want {
		t.Errorf("stderr = %q, want %q", got, want)
	}
	if loop.Failures != 1 {
		t.Errorf("failures = %d, want 1", loop.Failures)
	}
}

func TestLoopDiagnostics(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"(a #)", "invalid char '#'\n(a #)\n   ^\n"},
		{"(1 2", "unexpected end of input\n(1 2\n    ^\n"},
		{"1 2 3", "expression starting at '2' is redundant\n1 2 3\n  ^^^\n"},
		{"(cons 1 q)", "symbol not found: q\n(cons 1 q)\n        ^\n"},
		{"(foo 1)", "car not applicable\n(foo 1)\n ^^^\n"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			loop, out, errOut := newTestLoop(nil)
			if loop.Handle(tt.input) {
				t.Fatal("Handle asked to exit")
			}
			if out.Len() != 0 {
				t.Errorf("unexpected stdout %q", out.String())
			}
			if errOut.String() != tt.want {
				t.Errorf("stderr = %q, want %q", errOut.String(), tt.want)
			}
		})
	}
}

func TestLoopPrompt(t *testing.T) {
	var out, errOut bytes.Buffer
	loop := NewLoop(NewSession(nil), &out, &errOut)
	if err := loop.Run(strings.NewReader("1\n")); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "> 1\n> \n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
}

func TestLoopShowTree(t *testing.T) {
	cfg := config.Default()
	cfg.ShowTree = true
	loop, out, _ := newTestLoop(cfg)
	loop.Handle("'a")
	if got, want := out.String(), "Quote @0-2\n  Symbol(a) @1-2\na\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
}

func TestLoopColor(t *testing.T) {
	loop, out, errOut := newTestLoop(nil)
	loop.Color = true
	loop.Handle("1")
	loop.Handle("q")
	if got, want := out.String(), "\x1b[94m1\x1b[0m\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
	if !strings.HasPrefix(errOut.String(), "\x1b[31msymbol not found: q\x1b[0m\n") {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestLoopRecordsTranscript(t *testing.T) {
	store, err := transcript.Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	rec, err := store.Begin(ctx)
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}

	loop, _, _ := newTestLoop(nil)
	loop.Recorder = rec
	if err := loop.Run(strings.NewReader("(cons 1 2)\n\n(car 1)\n")); err != nil {
		t.Fatal(err)
	}

	entries, err := store.Entries(ctx, rec.ID())
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("recorded %d entries, want 2", len(entries))
	}
	if e := entries[0]; e.Input != "(cons 1 2)" || e.Output != "(1 . 2)" || e.ErrorCode != "" {
		t.Errorf("entry 1 = %+v", e)
	}
	if e := entries[1]; e.Input != "(car 1)" || e.ErrorCode != string(diagnostics.ErrR001) {
		t.Errorf("entry 2 = %+v", e)
	}
}
