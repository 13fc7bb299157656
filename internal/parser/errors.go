package parser

import (
	"fmt"

	"github.com/funvibe/lispy/internal/diagnostics"
	"github.com/funvibe/lispy/internal/token"
)

type ErrorKind int

const (
	UnexpectedToken ErrorKind = iota
	NotExpression
	NotOperator
	UnclosedOpenParen
	RedundantExpression
	Eof
)

var kindNames = [...]string{
	UnexpectedToken:     "UnexpectedToken",
	NotExpression:       "NotExpression",
	NotOperator:         "NotOperator",
	UnclosedOpenParen:   "UnclosedOpenParen",
	RedundantExpression: "RedundantExpression",
	Eof:                 "Eof",
}

func (k ErrorKind) String() string { return kindNames[k] }

var kindCodes = [...]diagnostics.ErrorCode{
	UnexpectedToken:     diagnostics.ErrP001,
	NotExpression:       diagnostics.ErrP002,
	NotOperator:         diagnostics.ErrP003,
	UnclosedOpenParen:   diagnostics.ErrP004,
	RedundantExpression: diagnostics.ErrP005,
	Eof:                 diagnostics.ErrP006,
}

type Error struct {
	Kind  ErrorKind
	Token token.Token // zero for Eof
	Span  token.Span
}

func newError(kind ErrorKind, tok token.Token) *Error {
	return &Error{Kind: kind, Token: tok, Span: tok.Span}
}

func (e *Error) Error() string {
	switch e.Kind {
	case UnexpectedToken:
		return fmt.Sprintf("'%s' is not expected", e.Token.Lexeme)
	case NotExpression:
		return fmt.Sprintf("'%s' is not a start of expression", e.Token.Lexeme)
	case NotOperator:
		return fmt.Sprintf("'%s' is not an operator", e.Token.Lexeme)
	case UnclosedOpenParen:
		return fmt.Sprintf("expected ')' to close the list, found '%s'", e.Token.Lexeme)
	case RedundantExpression:
		return fmt.Sprintf("expression starting at '%s' is redundant", e.Token.Lexeme)
	}
	return "unexpected end of input"
}

func (e *Error) Code() diagnostics.ErrorCode { return kindCodes[e.Kind] }
func (e *Error) Pos() token.Span             { return e.Span }
