package parser

import (
	"github.com/funvibe/lispy/internal/ast"
	"github.com/funvibe/lispy/internal/token"
)

// Parser is a recursive-descent parser over a lexed token slice.
//
//	list : "(" pair | "'" list | ATOM
//	pair : ")" | list cdr
//	cdr  : ")" | "." list ")" | list cdr
type Parser struct {
	tokens []token.Token
	pos    int
	// end is the offset reported for errors at end of input.
	end int
}

func New(tokens []token.Token) *Parser {
	p := &Parser{tokens: tokens}
	if n := len(tokens); n > 0 {
		p.end = tokens[n-1].Span.End
	}
	return p
}

// SetSourceLength makes end-of-input errors point just past the source
// rather than just past the last token.
func (p *Parser) SetSourceLength(n int) {
	if n > p.end {
		p.end = n
	}
}

// Parse parses exactly one expression; trailing tokens are an error.
func (p *Parser) Parse() (ast.Node, error) {
	node, err := p.parseList()
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.tokens) {
		tok := p.tokens[p.pos]
		last := p.tokens[len(p.tokens)-1]
		return nil, &Error{
			Kind:  RedundantExpression,
			Token: tok,
			Span:  token.Span{Start: tok.Span.Start, End: last.Span.End},
		}
	}
	return node, nil
}

// Parse parses a single expression from an already lexed token slice.
func Parse(tokens []token.Token) (ast.Node, error) {
	return New(tokens).Parse()
}

func (p *Parser) peek() (token.Token, bool) {
	if p.pos >= len(p.tokens) {
		return token.Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *Parser) next() (token.Token, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
	}
	return tok, ok
}

func (p *Parser) eof() error {
	return &Error{Kind: Eof, Span: token.Span{Start: p.end, End: p.end + 1}}
}

func (p *Parser) parseList() (ast.Node, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, p.eof()
	}
	switch tok.Type {
	case token.LPAREN:
		p.pos++
		return p.parsePair(tok)
	case token.QUOTE:
		p.pos++
		quoted, err := p.parseList()
		if err != nil {
			return nil, err
		}
		return &ast.Quote{Token: tok, Quoted: quoted}, nil
	}
	return p.parseAtom()
}

func (p *Parser) parseAtom() (ast.Node, error) {
	tok, ok := p.next()
	if !ok {
		return nil, p.eof()
	}
	switch {
	case tok.Type == token.NUMBER:
		return &ast.Number{Token: tok, Value: tok.Literal.(uint32)}, nil
	case tok.Type == token.SYMBOL:
		return &ast.Symbol{Token: tok, Name: tok.Lexeme}, nil
	case tok.IsOperator():
		return &ast.Operator{Token: tok}, nil
	case tok.Type == token.RPAREN:
		return nil, newError(UnexpectedToken, tok)
	}
	return nil, newError(NotExpression, tok)
}

func (p *Parser) parsePair(open token.Token) (ast.Node, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, p.eof()
	}
	switch tok.Type {
	case token.RPAREN:
		p.pos++
		return &ast.Nil{Span: open.Span.Merge(tok.Span)}, nil
	case token.DOT:
		return nil, newError(NotOperator, tok)
	}
	car, err := p.parseList()
	if err != nil {
		return nil, err
	}
	cdr, end, err := p.parseCdr()
	if err != nil {
		return nil, err
	}
	return &ast.Pair{Car: car, Cdr: cdr, Span: token.Span{Start: open.Span.Start, End: end}}, nil
}

// parseCdr returns the tail and the end offset of its closing paren.
func (p *Parser) parseCdr() (ast.Node, int, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, 0, p.eof()
	}
	switch tok.Type {
	case token.RPAREN:
		p.pos++
		return &ast.Nil{Span: tok.Span}, tok.Span.End, nil
	case token.DOT:
		p.pos++
		tail, err := p.parseList()
		if err != nil {
			return nil, 0, err
		}
		closing, ok := p.next()
		if !ok {
			return nil, 0, p.eof()
		}
		if closing.Type != token.RPAREN {
			return nil, 0, newError(UnclosedOpenParen, closing)
		}
		return tail, closing.Span.End, nil
	}
	car, err := p.parseList()
	if err != nil {
		return nil, 0, err
	}
	cdr, end, err := p.parseCdr()
	if err != nil {
		return nil, 0, err
	}
	return &ast.Pair{Car: car, Cdr: cdr, Span: token.Span{Start: car.Pos().Start, End: end}}, end, nil
}
