package prettyprinter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/funvibe/lispy/internal/ast"
)

// TreePrinter renders the surface tree one node per line, indented by
// depth, with the span of every node.
type TreePrinter struct {
	buf    bytes.Buffer
	indent int
}

func NewTreePrinter() *TreePrinter {
	return &TreePrinter{}
}

func (p *TreePrinter) String() string {
	return p.buf.String()
}

func (p *TreePrinter) line(node ast.Node, format string, args ...interface{}) {
	p.buf.WriteString(strings.Repeat("  ", p.indent))
	fmt.Fprintf(&p.buf, format, args...)
	fmt.Fprintf(&p.buf, " @%s\n", node.Pos())
}

func (p *TreePrinter) VisitNumber(n *ast.Number) {
	p.line(n, "Number(%d)", n.Value)
}

func (p *TreePrinter) VisitOperator(n *ast.Operator) {
	p.line(n, "Operator(%s)", n.Token.Lexeme)
}

func (p *TreePrinter) VisitSymbol(n *ast.Symbol) {
	p.line(n, "Symbol(%s)", n.Name)
}

func (p *TreePrinter) VisitNil(n *ast.Nil) {
	p.line(n, "Nil")
}

func (p *TreePrinter) VisitPair(n *ast.Pair) {
	p.line(n, "Pair")
	p.indent++
	n.Car.Accept(p)
	n.Cdr.Accept(p)
	p.indent--
}

func (p *TreePrinter) VisitQuote(n *ast.Quote) {
	p.line(n, "Quote")
	p.indent++
	n.Quoted.Accept(p)
	p.indent--
}
