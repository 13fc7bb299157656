package lexer

import (
	"fmt"

	"github.com/funvibe/lispy/internal/diagnostics"
	"github.com/funvibe/lispy/internal/token"
)

type ErrorKind int

const (
	InvalidChar ErrorKind = iota
)

type Error struct {
	Kind ErrorKind
	Char byte
	Span token.Span
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid char %q", rune(e.Char))
}

func (e *Error) Code() diagnostics.ErrorCode { return diagnostics.ErrL001 }
func (e *Error) Pos() token.Span             { return e.Span }
