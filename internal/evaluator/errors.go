package evaluator

import (
	"fmt"

	"github.com/funvibe/lispy/internal/diagnostics"
	"github.com/funvibe/lispy/internal/token"
)

type ErrorKind int

const (
	InvalidArguments ErrorKind = iota
	DivisionByZero
	CarNotApplicable
	SymbolNotFound
)

var errorKindNames = [...]string{
	InvalidArguments: "InvalidArguments",
	DivisionByZero:   "DivisionByZero",
	CarNotApplicable: "CarNotApplicable",
	SymbolNotFound:   "SymbolNotFound",
}

func (k ErrorKind) String() string { return errorKindNames[k] }

// Error is a runtime failure of a single expression.
type Error struct {
	Kind ErrorKind
	// Name is the unresolved symbol for SymbolNotFound.
	Name string
	// Detail refines InvalidArguments.
	Detail string
	Span   token.Span
}

func (e *Error) Error() string {
	switch e.Kind {
	case InvalidArguments:
		if e.Detail != "" {
			return "invalid arguments: " + e.Detail
		}
		return "invalid arguments"
	case DivisionByZero:
		return "division by zero"
	case CarNotApplicable:
		return "car not applicable"
	}
	return fmt.Sprintf("symbol not found: %s", e.Name)
}

func (e *Error) Code() diagnostics.ErrorCode {
	switch e.Kind {
	case InvalidArguments:
		return diagnostics.ErrR001
	case DivisionByZero:
		return diagnostics.ErrR002
	case CarNotApplicable:
		return diagnostics.ErrR003
	}
	return diagnostics.ErrR004
}

func (e *Error) Pos() token.Span { return e.Span }

func newError(kind ErrorKind, span token.Span) *Error {
	return &Error{Kind: kind, Span: span}
}

func invalidArguments(span token.Span, format string, a ...interface{}) *Error {
	return &Error{Kind: InvalidArguments, Detail: fmt.Sprintf(format, a...), Span: span}
}
