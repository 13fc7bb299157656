// Package lispy embeds the interpreter in Go programs.
//
//	it := lispy.New()
//	it.Eval("(define sq (lambda (n) (* n n)))")
//	v, err := it.Eval("(sq 7)") // int32(49)
package lispy

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/funvibe/lispy/internal/config"
	"github.com/funvibe/lispy/internal/diagnostics"
	"github.com/funvibe/lispy/internal/repl"
)

// Interpreter is a single session. It is not safe for concurrent use.
type Interpreter struct {
	session    *repl.Session
	marshaller *Marshaller
}

type Option func(*config.Config)

// WithDynamicScoping makes closures resolve free variables in their
// caller's scope instead of the scope they were created in.
func WithDynamicScoping() Option {
	return func(c *config.Config) { c.Scoping = config.ScopingDynamic }
}

func New(opts ...Option) *Interpreter {
	cfg := config.Default()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Interpreter{
		session:    repl.NewSession(cfg),
		marshaller: NewMarshaller(),
	}
}

// Eval evaluates one expression and converts the result to Go.
func (it *Interpreter) Eval(src string) (interface{}, error) {
	val, err := it.session.Eval(src)
	if err != nil {
		return nil, err
	}
	return it.marshaller.FromValue(val)
}

// Set defines name in the global scope.
func (it *Interpreter) Set(name string, val interface{}) error {
	v, err := it.marshaller.ToValue(val)
	if err != nil {
		return fmt.Errorf("lispy: set %s: %w", name, err)
	}
	it.session.Env.Define(name, v)
	return nil
}

// Get returns the global binding of name converted to Go.
func (it *Interpreter) Get(name string) (interface{}, bool, error) {
	val, ok := it.session.Env.Lookup(name)
	if !ok {
		return nil, false, nil
	}
	goVal, err := it.marshaller.FromValue(val)
	return goVal, true, err
}

// Span returns the byte range of src an Eval error refers to.
func Span(err error) (start, end int, ok bool) {
	var d *diagnostics.DiagnosticError
	if !errors.As(err, &d) {
		return 0, 0, false
	}
	return d.Span.Start, d.Span.End, true
}

// FormatError renders err with a caret under the offending part of src.
func FormatError(src string, err error) string {
	var buf bytes.Buffer
	diagnostics.Render(&buf, src, diagnostics.FromError(err), false)
	return buf.String()
}
