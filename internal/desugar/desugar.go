// Package desugar converts the parser's surface tree into evaluator values,
// so that code and quoted data share one representation.
package desugar

import (
	"fmt"

	"github.com/funvibe/lispy/internal/ast"
	"github.com/funvibe/lispy/internal/config"
	"github.com/funvibe/lispy/internal/evaluator"
	"github.com/funvibe/lispy/internal/token"
)

// operatorNames maps operator atoms to the primitive they denote.
var operatorNames = map[token.TokenType]string{
	token.PLUS:     config.AddName,
	token.MINUS:    config.SubName,
	token.ASTERISK: config.MulName,
	token.SLASH:    config.DivName,
	token.LT:       config.LtName,
	token.EQ:       config.EqName,
	token.GT:       config.GtName,
	token.AND:      config.AndName,
	token.OR:       config.OrName,
	token.BANG:     config.NotName,
	token.CARET:    config.XorName,
}

// OperatorName returns the primitive name for an operator token type.
func OperatorName(tt token.TokenType) (string, bool) {
	name, ok := operatorNames[tt]
	return name, ok
}

// Desugar converts a surface tree into a value. It never fails on trees
// produced by the parser.
func Desugar(node ast.Node) evaluator.Value {
	switch n := node.(type) {
	case *ast.Number:
		return evaluator.NewNumber(int32(n.Value), n.Pos())
	case *ast.Operator:
		name, ok := operatorNames[n.Token.Type]
		if !ok {
			panic(fmt.Sprintf("desugar: unknown operator %q", n.Token.Lexeme))
		}
		return evaluator.NewSymbol(name, n.Pos())
	case *ast.Symbol:
		return evaluator.NewSymbol(n.Name, n.Pos())
	case *ast.Nil:
		return evaluator.NewNil(n.Pos())
	case *ast.Pair:
		return evaluator.NewPair(Desugar(n.Car), Desugar(n.Cdr), n.Pos())
	case *ast.Quote:
		return evaluator.NewPair(
			evaluator.NewSymbol(config.QuoteForm, n.Token.Span),
			Desugar(n.Quoted),
			n.Pos(),
		)
	}
	panic(fmt.Sprintf("desugar: unknown node %T", node))
}
