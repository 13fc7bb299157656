package desugar

import (
	"testing"

	"github.com/funvibe/lispy/internal/evaluator"
	"github.com/funvibe/lispy/internal/lexer"
	"github.com/funvibe/lispy/internal/parser"
	"github.com/funvibe/lispy/internal/token"
)

func desugarSource(t *testing.T, input string) evaluator.Value {
	t.Helper()
	tokens, err := lexer.Lex(input)
	if err != nil {
		t.Fatalf("lexer error: %v", err)
	}
	node, err := parser.Parse(tokens)
	if err != nil {
		t.Fatalf("parser error: %v", err)
	}
	return Desugar(node)
}

func TestOperatorTable(t *testing.T) {
	tests := []struct {
		input string
		name  string
	}{
		{"+", "add"},
		{"-", "sub"},
		{"*", "mul"},
		{"/", "div"},
		{"<", "lt"},
		{"=", "eq"},
		{">", "gt"},
		{"&", "and"},
		{"|", "or"},
		{"!", "not"},
		{"^", "xor"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			val := desugarSource(t, tt.input)
			sym, ok := val.(*evaluator.Symbol)
			if !ok {
				t.Fatalf("expected Symbol, got %T", val)
			}
			if sym.Name != tt.name {
				t.Errorf("name = %s, want %s", sym.Name, tt.name)
			}
			if sym.Span != (token.Span{Start: 0, End: 1}) {
				t.Errorf("span = %s, want 0-1", sym.Span)
			}
		})
	}
}

func TestDesugarForms(t *testing.T) {
	sp := token.Span{}
	num := func(n int32) evaluator.Value { return evaluator.NewNumber(n, sp) }
	sym := func(s string) evaluator.Value { return evaluator.NewSymbol(s, sp) }
	pair := func(a, b evaluator.Value) evaluator.Value { return evaluator.NewPair(a, b, sp) }
	nilv := evaluator.NewNil(sp)

	tests := []struct {
		input    string
		expected evaluator.Value
	}{
		{"7", num(7)},
		{"4294967295", num(-1)},
		{"2147483648", num(-2147483648)},
		{"foo", sym("foo")},
		{"()", nilv},
		{"(+ 1 2)", pair(sym("add"), pair(num(1), pair(num(2), nilv)))},
		{"(1 . 2)", pair(num(1), num(2))},
		{"'x", pair(sym("quote"), sym("x"))},
		{"'(1 2)", pair(sym("quote"), pair(num(1), pair(num(2), nilv)))},
		{"(car '(1))", pair(sym("car"), pair(pair(sym("quote"), pair(num(1), nilv)), nilv))},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := desugarSource(t, tt.input)
			if !evaluator.Equal(got, tt.expected) {
				t.Errorf("desugar(%q) = %s, want %s", tt.input, got.Inspect(), tt.expected.Inspect())
			}
		})
	}
}

func TestDesugarKeepsSpans(t *testing.T) {
	val := desugarSource(t, "(a 'b)")
	outer, ok := val.(*evaluator.Pair)
	if !ok {
		t.Fatalf("expected Pair, got %T", val)
	}
	if outer.Span != (token.Span{Start: 0, End: 6}) {
		t.Errorf("outer span = %s, want 0-6", outer.Span)
	}
	quoted := outer.Cdr.(*evaluator.Pair).Car.(*evaluator.Pair)
	if quoted.Span != (token.Span{Start: 3, End: 5}) {
		t.Errorf("quote span = %s, want 3-5", quoted.Span)
	}
	if head := quoted.Car.(*evaluator.Symbol); head.Span != (token.Span{Start: 3, End: 4}) {
		t.Errorf("quote head span = %s, want 3-4", head.Span)
	}
}

func TestOperatorName(t *testing.T) {
	if name, ok := OperatorName(token.PLUS); !ok || name != "add" {
		t.Errorf("OperatorName(+) = %q, %v", name, ok)
	}
	if _, ok := OperatorName(token.DOT); ok {
		t.Errorf("OperatorName(.) should not resolve")
	}
}
