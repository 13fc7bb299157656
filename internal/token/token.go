package token

import "fmt"

type TokenType string

const (
	ILLEGAL = "ILLEGAL"
	EOF     = "EOF"

	NUMBER = "NUMBER"
	SYMBOL = "SYMBOL"

	// Operators
	PLUS     = "+"
	MINUS    = "-"
	ASTERISK = "*"
	SLASH    = "/"
	LT       = "<"
	EQ       = "="
	GT       = ">"
	AND      = "&"
	OR       = "|"
	BANG     = "!"
	CARET    = "^"

	// Delimiters
	QUOTE  = "'"
	DOT    = "."
	LPAREN = "("
	RPAREN = ")"
)

// Span is a half-open byte range [Start, End) into the source line.
type Span struct {
	Start int
	End   int
}

// Merge returns the smallest span covering both s and other.
func (s Span) Merge(other Span) Span {
	return Span{Start: min(s.Start, other.Start), End: max(s.End, other.End)}
}

func (s Span) Len() int { return s.End - s.Start }

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}

type Token struct {
	Type    TokenType
	Lexeme  string
	Literal interface{} // uint32 for NUMBER, string for SYMBOL
	Span    Span
}

func (t Token) String() string {
	return t.Lexeme
}

// IsOperator reports whether the token is one of the single-character
// operator atoms.
func (t Token) IsOperator() bool {
	_, ok := operators[t.Type]
	return ok
}

var operators = map[TokenType]struct{}{
	PLUS: {}, MINUS: {}, ASTERISK: {}, SLASH: {},
	LT: {}, EQ: {}, GT: {},
	AND: {}, OR: {}, BANG: {}, CARET: {},
}

// LookupSingle maps a delimiter or operator byte to its token type.
func LookupSingle(ch byte) (TokenType, bool) {
	switch ch {
	case '+':
		return PLUS, true
	case '-':
		return MINUS, true
	case '*':
		return ASTERISK, true
	case '/':
		return SLASH, true
	case '<':
		return LT, true
	case '=':
		return EQ, true
	case '>':
		return GT, true
	case '&':
		return AND, true
	case '|':
		return OR, true
	case '!':
		return BANG, true
	case '^':
		return CARET, true
	case '\'':
		return QUOTE, true
	case '.':
		return DOT, true
	case '(':
		return LPAREN, true
	case ')':
		return RPAREN, true
	}
	return ILLEGAL, false
}
