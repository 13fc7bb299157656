package lexer

import (
	"strconv"

	"github.com/funvibe/lispy/internal/token"
)

type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
}

func New(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
}

// NextToken returns the next token. Bytes outside the alphabet come back
// as ILLEGAL tokens; Tokens turns them into errors.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	start := l.position
	if l.position >= len(l.input) {
		return token.Token{Type: token.EOF, Span: token.Span{Start: start, End: start}}
	}

	switch {
	case isDigit(l.ch):
		lexeme := l.readWhile(isDigit)
		return token.Token{
			Type:    token.NUMBER,
			Lexeme:  lexeme,
			Literal: parseNumber(lexeme),
			Span:    token.Span{Start: start, End: l.position},
		}
	case isSymbolStart(l.ch):
		lexeme := l.readWhile(isSymbolPart)
		return token.Token{
			Type:    token.SYMBOL,
			Lexeme:  lexeme,
			Literal: lexeme,
			Span:    token.Span{Start: start, End: l.position},
		}
	}

	ch := l.ch
	l.readChar()
	tt, ok := token.LookupSingle(ch)
	if !ok {
		tt = token.ILLEGAL
	}
	return token.Token{Type: tt, Lexeme: string(ch), Span: token.Span{Start: start, End: start + 1}}
}

// Tokens lexes the whole input. The EOF token is not included.
func (l *Lexer) Tokens() ([]token.Token, error) {
	var tokens []token.Token
	for {
		tok := l.NextToken()
		switch tok.Type {
		case token.EOF:
			return tokens, nil
		case token.ILLEGAL:
			return tokens, &Error{Kind: InvalidChar, Char: tok.Lexeme[0], Span: tok.Span}
		}
		tokens = append(tokens, tok)
	}
}

// Lex is shorthand for New(input).Tokens().
func Lex(input string) ([]token.Token, error) {
	return New(input).Tokens()
}

func (l *Lexer) skipWhitespace() {
	for l.position < len(l.input) && isWhitespace(l.ch) {
		l.readChar()
	}
}

func (l *Lexer) readWhile(pred func(byte) bool) string {
	start := l.position
	for l.position < len(l.input) && pred(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// parseNumber keeps the low 32 bits of literals that overflow uint32.
func parseNumber(lexeme string) uint32 {
	n, err := strconv.ParseUint(lexeme, 10, 32)
	if err == nil {
		return uint32(n)
	}
	var acc uint32
	for i := 0; i < len(lexeme); i++ {
		acc = acc*10 + uint32(lexeme[i]-'0')
	}
	return acc
}

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isSymbolStart(ch byte) bool {
	return isLetter(ch)
}

func isSymbolPart(ch byte) bool {
	return isLetter(ch) || isDigit(ch) || ch == '?'
}
