package lexer

import (
	"errors"
	"testing"

	"github.com/funvibe/lispy/internal/token"
)

func TestNextToken(t *testing.T) {
	input := "(+ 12 (cons foo_1 bar?)) '(a . b) - * / < = > & | ! ^"

	tests := []struct {
		expectedType   token.TokenType
		expectedLexeme string
		expectedSpan   token.Span
	}{
		{token.LPAREN, "(", token.Span{Start: 0, End: 1}},
		{token.PLUS, "+", token.Span{Start: 1, End: 2}},
		{token.NUMBER, "12", token.Span{Start: 3, End: 5}},
		{token.LPAREN, "(", token.Span{Start: 6, End: 7}},
		{token.SYMBOL, "cons", token.Span{Start: 7, End: 11}},
		{token.SYMBOL, "foo_1", token.Span{Start: 12, End: 17}},
		{token.SYMBOL, "bar?", token.Span{Start: 18, End: 22}},
		{token.RPAREN, ")", token.Span{Start: 22, End: 23}},
		{token.RPAREN, ")", token.Span{Start: 23, End: 24}},
		{token.QUOTE, "'", token.Span{Start: 25, End: 26}},
		{token.LPAREN, "(", token.Span{Start: 26, End: 27}},
		{token.SYMBOL, "a", token.Span{Start: 27, End: 28}},
		{token.DOT, ".", token.Span{Start: 29, End: 30}},
		{token.SYMBOL, "b", token.Span{Start: 31, End: 32}},
		{token.RPAREN, ")", token.Span{Start: 32, End: 33}},
		{token.MINUS, "-", token.Span{Start: 34, End: 35}},
		{token.ASTERISK, "*", token.Span{Start: 36, End: 37}},
		{token.SLASH, "/", token.Span{Start: 38, End: 39}},
		{token.LT, "<", token.Span{Start: 40, End: 41}},
		{token.EQ, "=", token.Span{Start: 42, End: 43}},
		{token.GT, ">", token.Span{Start: 44, End: 45}},
		{token.AND, "&", token.Span{Start: 46, End: 47}},
		{token.OR, "|", token.Span{Start: 48, End: 49}},
		{token.BANG, "!", token.Span{Start: 50, End: 51}},
		{token.CARET, "^", token.Span{Start: 52, End: 53}},
		{token.EOF, "", token.Span{Start: 53, End: 53}},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q", i, tt.expectedType, tok.Type)
		}
		if tok.Lexeme != tt.expectedLexeme {
			t.Fatalf("tests[%d] - lexeme wrong. expected=%q, got=%q", i, tt.expectedLexeme, tok.Lexeme)
		}
		if tok.Span != tt.expectedSpan {
			t.Fatalf("tests[%d] - span wrong. expected=%s, got=%s", i, tt.expectedSpan, tok.Span)
		}
	}
}

func TestWhitespace(t *testing.T) {
	tokens, err := Lex(" \t1\r\n\t2 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(tokens))
	}
	if tokens[1].Span != (token.Span{Start: 6, End: 7}) {
		t.Errorf("second token span = %s, want 6-7", tokens[1].Span)
	}

	tokens, err = Lex("   ")
	if err != nil || len(tokens) != 0 {
		t.Errorf("blank input: got %d tokens, err %v", len(tokens), err)
	}
}

func TestNumberLiterals(t *testing.T) {
	tests := []struct {
		input string
		want  uint32
	}{
		{"0", 0},
		{"007", 7},
		{"2147483647", 2147483647},
		{"2147483648", 2147483648},
		{"4294967295", 4294967295},
		{"4294967296", 0},
		{"4294967301", 5},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, err := Lex(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(tokens) != 1 || tokens[0].Type != token.NUMBER {
				t.Fatalf("expected one NUMBER token, got %v", tokens)
			}
			if got := tokens[0].Literal.(uint32); got != tt.want {
				t.Errorf("literal = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSymbolBoundaries(t *testing.T) {
	// A digit run ends where a letter starts; symbols may contain digits.
	tokens, err := Lex("12ab a12 x?y")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []struct {
		typ    token.TokenType
		lexeme string
	}{
		{token.NUMBER, "12"},
		{token.SYMBOL, "ab"},
		{token.SYMBOL, "a12"},
		{token.SYMBOL, "x?y"},
	}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(tokens))
	}
	for i, w := range want {
		if tokens[i].Type != w.typ || tokens[i].Lexeme != w.lexeme {
			t.Errorf("token %d = %s %q, want %s %q", i, tokens[i].Type, tokens[i].Lexeme, w.typ, w.lexeme)
		}
	}
}

func TestInvalidChar(t *testing.T) {
	tests := []struct {
		input string
		char  byte
		span  token.Span
	}{
		{"#", '#', token.Span{Start: 0, End: 1}},
		{"(add 1 ?)", '?', token.Span{Start: 7, End: 8}},
		{"(a \"b\")", '"', token.Span{Start: 3, End: 4}},
		{"1 ;", ';', token.Span{Start: 2, End: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Lex(tt.input)
			var lexErr *Error
			if !errors.As(err, &lexErr) {
				t.Fatalf("expected *lexer.Error, got %v", err)
			}
			if lexErr.Kind != InvalidChar {
				t.Errorf("kind = %v, want InvalidChar", lexErr.Kind)
			}
			if lexErr.Char != tt.char {
				t.Errorf("char = %q, want %q", lexErr.Char, tt.char)
			}
			if lexErr.Span != tt.span {
				t.Errorf("span = %s, want %s", lexErr.Span, tt.span)
			}
			if lexErr.Code() != "L001" {
				t.Errorf("code = %s, want L001", lexErr.Code())
			}
		})
	}
}
