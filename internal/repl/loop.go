package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/funvibe/lispy/internal/config"
	"github.com/funvibe/lispy/internal/diagnostics"
	"github.com/funvibe/lispy/internal/evaluator"
	"github.com/funvibe/lispy/internal/pipeline"
	"github.com/funvibe/lispy/internal/prettyprinter"
	"github.com/funvibe/lispy/internal/transcript"
)

// Loop reads lines, evaluates each against the session and prints the
// value or a caret diagnostic. A failed line never ends the loop.
type Loop struct {
	Session *Session
	Out     io.Writer
	Err     io.Writer
	Prompt  string
	Color   bool

	// Recorder, when set, stores every input and its outcome.
	Recorder *transcript.Recorder
	Context  context.Context

	// Failures counts inputs that produced a diagnostic.
	Failures int
}

func NewLoop(s *Session, out, errOut io.Writer) *Loop {
	return &Loop{
		Session: s,
		Out:     out,
		Err:     errOut,
		Prompt:  s.Config.Prompt,
		Context: context.Background(),
	}
}

// Run reads in line by line until EOF or the exit command.
func (l *Loop) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for {
		if l.Prompt != "" {
			fmt.Fprint(l.Out, l.Prompt)
		}
		if !scanner.Scan() {
			if l.Prompt != "" {
				fmt.Fprintln(l.Out)
			}
			return scanner.Err()
		}
		if l.Handle(scanner.Text()) {
			return nil
		}
	}
}

// Handle evaluates one line. It reports true when the line asks the loop
// to stop.
func (l *Loop) Handle(line string) (exit bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == config.ExitCommand {
		return true
	}
	if trimmed == "" {
		return false
	}

	ctx := l.Session.Run(line)
	if l.Session.Config.ShowTree && ctx.AstRoot != nil {
		tp := prettyprinter.NewTreePrinter()
		ctx.AstRoot.Accept(tp)
		fmt.Fprint(l.Out, tp.String())
	}

	if ctx.Failed() {
		l.Failures++
		for _, d := range ctx.Errors {
			diagnostics.Render(l.Err, line, d, l.Color)
		}
		l.record(line, ctx.Errors[0].Message, string(ctx.Errors[0].Code))
		return false
	}

	text := resultText(ctx)
	if l.Color {
		fmt.Fprintln(l.Out, blue(text))
	} else {
		fmt.Fprintln(l.Out, text)
	}
	l.record(line, text, "")
	return false
}

func (l *Loop) record(input, output, code string) {
	if l.Recorder == nil {
		return
	}
	if err := l.Recorder.Record(l.Context, input, output, code); err != nil && l.Session.Logger != nil {
		l.Session.Logger.Warn("transcript write failed", "error", err)
	}
}

func resultText(ctx *pipeline.PipelineContext) string {
	if val, ok := ctx.Result.(evaluator.Value); ok {
		return val.Inspect()
	}
	return ""
}

func blue(s string) string { return "\x1b[94m" + s + "\x1b[0m" }
