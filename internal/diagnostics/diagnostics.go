// Package diagnostics turns errors from every pipeline stage into
// located, coded diagnostics and renders them with a caret view of the
// offending source.
package diagnostics

import (
	"errors"
	"fmt"

	"github.com/funvibe/lispy/internal/token"
)

type ErrorCode string

const (
	// Lexer
	ErrL001 ErrorCode = "L001" // invalid character

	// Parser
	ErrP001 ErrorCode = "P001" // unexpected token
	ErrP002 ErrorCode = "P002" // not an expression
	ErrP003 ErrorCode = "P003" // not an operator
	ErrP004 ErrorCode = "P004" // unclosed open paren
	ErrP005 ErrorCode = "P005" // redundant expression
	ErrP006 ErrorCode = "P006" // unexpected end of input

	// Runtime
	ErrR001 ErrorCode = "R001" // invalid arguments
	ErrR002 ErrorCode = "R002" // division by zero
	ErrR003 ErrorCode = "R003" // car not applicable
	ErrR004 ErrorCode = "R004" // symbol not found

	ErrInternal ErrorCode = "X000"
)

// Coded is implemented by the typed errors of the lexer, parser and
// evaluator.
type Coded interface {
	error
	Code() ErrorCode
	Pos() token.Span
}

type DiagnosticError struct {
	Code    ErrorCode
	Span    token.Span
	Message string
	File    string
	Err     error
}

func (e *DiagnosticError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s: [%s] error at %s: %s", e.File, e.Code, e.Span, e.Message)
	}
	return fmt.Sprintf("[%s] error at %s: %s", e.Code, e.Span, e.Message)
}

func (e *DiagnosticError) Unwrap() error { return e.Err }

func NewError(code ErrorCode, span token.Span, format string, args ...interface{}) *DiagnosticError {
	return &DiagnosticError{Code: code, Span: span, Message: fmt.Sprintf(format, args...)}
}

// FromError wraps err into a DiagnosticError. Errors that are not Coded
// become internal diagnostics without a location.
func FromError(err error) *DiagnosticError {
	if err == nil {
		return nil
	}
	var d *DiagnosticError
	if errors.As(err, &d) {
		return d
	}
	var c Coded
	if errors.As(err, &c) {
		return &DiagnosticError{Code: c.Code(), Span: c.Pos(), Message: c.Error(), Err: err}
	}
	return &DiagnosticError{Code: ErrInternal, Message: err.Error(), Err: err}
}
