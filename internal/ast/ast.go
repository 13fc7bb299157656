// Package ast defines the surface tree produced by the parser. It is the
// syntax-level shape of a program before desugaring unifies code and data
// into evaluator values.
package ast

import "github.com/funvibe/lispy/internal/token"

// Node is the base interface for all surface tree nodes.
type Node interface {
	TokenLiteral() string
	Accept(v Visitor)
	Pos() token.Span
}

// Visitor walks the surface tree.
type Visitor interface {
	VisitNumber(n *Number)
	VisitOperator(n *Operator)
	VisitSymbol(n *Symbol)
	VisitNil(n *Nil)
	VisitPair(n *Pair)
	VisitQuote(n *Quote)
}

// Number is an unsigned integer literal.
type Number struct {
	Token token.Token
	Value uint32
}

func (n *Number) Accept(v Visitor)     { v.VisitNumber(n) }
func (n *Number) TokenLiteral() string { return n.Token.Lexeme }
func (n *Number) Pos() token.Span      { return n.Token.Span }

// Operator is one of the single-character operator atoms, e.g. `+`.
type Operator struct {
	Token token.Token
}

func (o *Operator) Accept(v Visitor)     { v.VisitOperator(o) }
func (o *Operator) TokenLiteral() string { return o.Token.Lexeme }
func (o *Operator) Pos() token.Span      { return o.Token.Span }

// Symbol is a bare identifier atom.
type Symbol struct {
	Token token.Token
	Name  string
}

func (s *Symbol) Accept(v Visitor)     { v.VisitSymbol(s) }
func (s *Symbol) TokenLiteral() string { return s.Token.Lexeme }
func (s *Symbol) Pos() token.Span      { return s.Token.Span }

// Nil is the empty list, written `()` or implied by a closing paren.
type Nil struct {
	Span token.Span
}

func (n *Nil) Accept(v Visitor)     { v.VisitNil(n) }
func (n *Nil) TokenLiteral() string { return "()" }
func (n *Nil) Pos() token.Span      { return n.Span }

// Pair is a cons cell.
type Pair struct {
	Car  Node
	Cdr  Node
	Span token.Span
}

func (p *Pair) Accept(v Visitor)     { v.VisitPair(p) }
func (p *Pair) TokenLiteral() string { return "(" }
func (p *Pair) Pos() token.Span      { return p.Span }

// Quote is `'X`.
type Quote struct {
	Token  token.Token // the ' token
	Quoted Node
}

func (q *Quote) Accept(v Visitor)     { v.VisitQuote(q) }
func (q *Quote) TokenLiteral() string { return q.Token.Lexeme }
func (q *Quote) Pos() token.Span      { return q.Token.Span.Merge(q.Quoted.Pos()) }
