package prettyprinter

import (
	"bytes"
	"strconv"

	"github.com/funvibe/lispy/internal/ast"
)

// CodePrinter reconstructs source text from a surface tree. Lists print
// in list notation; only improper tails use a dot.
type CodePrinter struct {
	buf bytes.Buffer
}

func NewCodePrinter() *CodePrinter {
	return &CodePrinter{}
}

func (p *CodePrinter) String() string {
	return p.buf.String()
}

func (p *CodePrinter) VisitNumber(n *ast.Number) {
	p.buf.WriteString(strconv.FormatUint(uint64(n.Value), 10))
}

func (p *CodePrinter) VisitOperator(n *ast.Operator) {
	p.buf.WriteString(n.Token.Lexeme)
}

func (p *CodePrinter) VisitSymbol(n *ast.Symbol) {
	p.buf.WriteString(n.Name)
}

func (p *CodePrinter) VisitNil(n *ast.Nil) {
	p.buf.WriteString("()")
}

func (p *CodePrinter) VisitPair(n *ast.Pair) {
	p.buf.WriteByte('(')
	var cur ast.Node = n
	first := true
	for {
		pair, ok := cur.(*ast.Pair)
		if !ok {
			break
		}
		if !first {
			p.buf.WriteByte(' ')
		}
		first = false
		pair.Car.Accept(p)
		cur = pair.Cdr
	}
	if _, ok := cur.(*ast.Nil); !ok {
		p.buf.WriteString(" . ")
		cur.Accept(p)
	}
	p.buf.WriteByte(')')
}

func (p *CodePrinter) VisitQuote(n *ast.Quote) {
	p.buf.WriteByte('\'')
	n.Quoted.Accept(p)
}
