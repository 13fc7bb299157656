package evaluator

import (
	"strconv"
	"strings"

	"github.com/funvibe/lispy/internal/token"
)

// Number is a 32-bit signed integer.
type Number struct {
	Value int32
	Span  token.Span
}

func NewNumber(n int32, span token.Span) *Number { return &Number{Value: n, Span: span} }

func (n *Number) Type() ValueType { return NUMBER_VAL }
func (n *Number) Inspect() string { return strconv.FormatInt(int64(n.Value), 10) }
func (n *Number) Pos() token.Span { return n.Span }

// Boolean
type Boolean struct {
	Value bool
	Span  token.Span
}

func NewBoolean(b bool, span token.Span) *Boolean { return &Boolean{Value: b, Span: span} }

func (b *Boolean) Type() ValueType { return BOOLEAN_VAL }
func (b *Boolean) Inspect() string { return strconv.FormatBool(b.Value) }
func (b *Boolean) Pos() token.Span { return b.Span }

// Nil is the empty list.
type Nil struct {
	Span token.Span
}

func NewNil(span token.Span) *Nil { return &Nil{Span: span} }

func (n *Nil) Type() ValueType { return NIL_VAL }
func (n *Nil) Inspect() string { return "()" }
func (n *Nil) Pos() token.Span { return n.Span }

// Symbol
type Symbol struct {
	Name string
	Span token.Span
}

func NewSymbol(name string, span token.Span) *Symbol { return &Symbol{Name: name, Span: span} }

func (s *Symbol) Type() ValueType { return SYMBOL_VAL }
func (s *Symbol) Inspect() string { return s.Name }
func (s *Symbol) Pos() token.Span { return s.Span }

// Pair is a cons cell.
type Pair struct {
	Car  Value
	Cdr  Value
	Span token.Span
}

func NewPair(car, cdr Value, span token.Span) *Pair { return &Pair{Car: car, Cdr: cdr, Span: span} }

func (p *Pair) Type() ValueType { return PAIR_VAL }
func (p *Pair) Pos() token.Span { return p.Span }

// Inspect prints proper lists as (a b c) and improper tails as (a b . c).
func (p *Pair) Inspect() string {
	var out strings.Builder
	out.WriteString("(")
	var cur Value = p
	first := true
	for {
		pair, ok := cur.(*Pair)
		if !ok {
			break
		}
		if !first {
			out.WriteString(" ")
		}
		first = false
		out.WriteString(pair.Car.Inspect())
		cur = pair.Cdr
	}
	if _, ok := cur.(*Nil); !ok {
		out.WriteString(" . ")
		out.WriteString(cur.Inspect())
	}
	out.WriteString(")")
	return out.String()
}

// Closure is a user-defined procedure. Scope is the environment handle
// captured at creation, or NoScope when the closure runs in its caller's
// scope.
type Closure struct {
	Params []string
	Body   Value
	Scope  ScopeID
	Span   token.Span
}

func (c *Closure) Type() ValueType { return CLOSURE_VAL }
func (c *Closure) Pos() token.Span { return c.Span }
func (c *Closure) Inspect() string {
	return "#<lambda (" + strings.Join(c.Params, " ") + ")>"
}
