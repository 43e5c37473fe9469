// Package lexer_test contains integration-style tests for the Monkey lexer.
//
// Tests are organised by category:
//   - TestLexer_Delimiters: single-byte punctuation
//   - TestLexer_Operators: every operator including == and !=
//   - TestLexer_Keywords: all 7 keywords and the ident/keyword boundary
//   - TestLexer_Program: a complete snippet with let/fn/if/return
//   - TestLexer_Illegal: bytes outside the language
//   - TestLexer_EOF: EOF is final and repeats
//   - TestLexer_Position: line and column tracking across newlines
package lexer_test

import (
	"testing"

	"github.com/metaphox/monkey-lang/ast"
	"github.com/metaphox/monkey-lang/lexer"
)

// tokenCase is a single (type, literal) expectation used in table-driven tests.
type tokenCase struct {
	expectedType    ast.TokenType
	expectedLiteral string
}

// runCases calls NextToken for each case in want and fails the test on mismatch.
func runCases(t *testing.T, input string, want []tokenCase) {
	t.Helper()
	l := lexer.New(input)
	for i, tc := range want {
		tok := l.NextToken()
		if tok.Type != tc.expectedType {
			t.Errorf("case %d: type mismatch: got %s, want %s (literal %q)", i, tok.Type, tc.expectedType, tok.Literal)
		}
		if tok.Literal != tc.expectedLiteral {
			t.Errorf("case %d: literal mismatch: got %q, want %q", i, tok.Literal, tc.expectedLiteral)
		}
	}
}

func TestLexer_Delimiters(t *testing.T) {
	runCases(t, `=+(){},;`, []tokenCase{
		{ast.ASSIGN, "="},
		{ast.PLUS, "+"},
		{ast.LPAREN, "("},
		{ast.RPAREN, ")"},
		{ast.LBRACE, "{"},
		{ast.RBRACE, "}"},
		{ast.COMMA, ","},
		{ast.SEMICOLON, ";"},
		{ast.EOF, ""},
	})
}

func TestLexer_Operators(t *testing.T) {
	runCases(t, `!-/*5; 5 < 10 > 5;`, []tokenCase{
		{ast.BANG, "!"},
		{ast.MINUS, "-"},
		{ast.SLASH, "/"},
		{ast.ASTERISK, "*"},
		{ast.INT, "5"},
		{ast.SEMICOLON, ";"},
		{ast.INT, "5"},
		{ast.LT, "<"},
		{ast.INT, "10"},
		{ast.GT, ">"},
		{ast.INT, "5"},
		{ast.SEMICOLON, ";"},
		{ast.EOF, ""},
	})
}

// TestLexer_TwoCharOperators checks that == and != are never split.
func TestLexer_TwoCharOperators(t *testing.T) {
	runCases(t, `10 == 10; 10 != 9;`, []tokenCase{
		{ast.INT, "10"},
		{ast.EQ, "=="},
		{ast.INT, "10"},
		{ast.SEMICOLON, ";"},
		{ast.INT, "10"},
		{ast.NEQ, "!="},
		{ast.INT, "9"},
		{ast.SEMICOLON, ";"},
		{ast.EOF, ""},
	})
}

// TestLexer_OperatorRuns covers look-ahead that does not match: the shorter
// token is emitted and the following byte is scanned on its own.
func TestLexer_OperatorRuns(t *testing.T) {
	runCases(t, `=== !== !! =!`, []tokenCase{
		{ast.EQ, "=="},
		{ast.ASSIGN, "="},
		{ast.NEQ, "!="},
		{ast.ASSIGN, "="},
		{ast.BANG, "!"},
		{ast.BANG, "!"},
		{ast.ASSIGN, "="},
		{ast.BANG, "!"},
		{ast.EOF, ""},
	})
}

func TestLexer_Keywords(t *testing.T) {
	runCases(t, `let fn true false if else return`, []tokenCase{
		{ast.LET, "let"},
		{ast.FN, "fn"},
		{ast.TRUE, "true"},
		{ast.FALSE, "false"},
		{ast.IF, "if"},
		{ast.ELSE, "else"},
		{ast.RETURN, "return"},
		{ast.EOF, ""},
	})
}

// TestLexer_KeywordBoundary checks that keyword prefixes used as identifiers are
// not mis-classified, and that digits end an identifier.
func TestLexer_KeywordBoundary(t *testing.T) {
	runCases(t, `letter fnord _private x1 Return`, []tokenCase{
		{ast.IDENT, "letter"},
		{ast.IDENT, "fnord"},
		{ast.IDENT, "_private"},
		{ast.IDENT, "x"},
		{ast.INT, "1"},
		{ast.IDENT, "Return"},
		{ast.EOF, ""},
	})
}

func TestLexer_Program(t *testing.T) {
	input := `let five = 5;
let ten = 10;

let add = fn(x, y) {
  x + y;
};

let result = add(five, ten);
if (5 < 10) {
	return true;
} else {
	return false;
}
`
	runCases(t, input, []tokenCase{
		{ast.LET, "let"},
		{ast.IDENT, "five"},
		{ast.ASSIGN, "="},
		{ast.INT, "5"},
		{ast.SEMICOLON, ";"},
		{ast.LET, "let"},
		{ast.IDENT, "ten"},
		{ast.ASSIGN, "="},
		{ast.INT, "10"},
		{ast.SEMICOLON, ";"},
		{ast.LET, "let"},
		{ast.IDENT, "add"},
		{ast.ASSIGN, "="},
		{ast.FN, "fn"},
		{ast.LPAREN, "("},
		{ast.IDENT, "x"},
		{ast.COMMA, ","},
		{ast.IDENT, "y"},
		{ast.RPAREN, ")"},
		{ast.LBRACE, "{"},
		{ast.IDENT, "x"},
		{ast.PLUS, "+"},
		{ast.IDENT, "y"},
		{ast.SEMICOLON, ";"},
		{ast.RBRACE, "}"},
		{ast.SEMICOLON, ";"},
		{ast.LET, "let"},
		{ast.IDENT, "result"},
		{ast.ASSIGN, "="},
		{ast.IDENT, "add"},
		{ast.LPAREN, "("},
		{ast.IDENT, "five"},
		{ast.COMMA, ","},
		{ast.IDENT, "ten"},
		{ast.RPAREN, ")"},
		{ast.SEMICOLON, ";"},
		{ast.IF, "if"},
		{ast.LPAREN, "("},
		{ast.INT, "5"},
		{ast.LT, "<"},
		{ast.INT, "10"},
		{ast.RPAREN, ")"},
		{ast.LBRACE, "{"},
		{ast.RETURN, "return"},
		{ast.TRUE, "true"},
		{ast.SEMICOLON, ";"},
		{ast.RBRACE, "}"},
		{ast.ELSE, "else"},
		{ast.LBRACE, "{"},
		{ast.RETURN, "return"},
		{ast.FALSE, "false"},
		{ast.SEMICOLON, ";"},
		{ast.RBRACE, "}"},
		{ast.EOF, ""},
	})
}

func TestLexer_Illegal(t *testing.T) {
	runCases(t, "a @ \"b\" 3.5 é\x00", []tokenCase{
		{ast.IDENT, "a"},
		{ast.ILLEGAL, "@"},
		{ast.ILLEGAL, `"`},
		{ast.IDENT, "b"},
		{ast.ILLEGAL, `"`},
		{ast.INT, "3"},
		{ast.ILLEGAL, "."},
		{ast.INT, "5"},
		{ast.ILLEGAL, "\xc3"},
		{ast.ILLEGAL, "\xa9"},
		{ast.ILLEGAL, "\x00"},
		{ast.EOF, ""},
	})
}

// TestLexer_EOF verifies that EOF is emitted for empty and whitespace-only
// input and that every call after the first EOF returns EOF again.
func TestLexer_EOF(t *testing.T) {
	for _, input := range []string{"", "   \t\r\n", "x", "=="} {
		l := lexer.New(input)
		seen := 0
		for i := 0; i < 10; i++ {
			tok := l.NextToken()
			if tok.Type == ast.EOF {
				seen++
				continue
			}
			if seen > 0 {
				t.Fatalf("input %q: got %s after EOF", input, tok)
			}
		}
		if seen == 0 {
			t.Fatalf("input %q: no EOF within 10 tokens", input)
		}
	}
}

func TestLexer_Tokens(t *testing.T) {
	toks := lexer.New(`let x = 5;`).Tokens()
	want := []ast.TokenType{ast.LET, ast.IDENT, ast.ASSIGN, ast.INT, ast.SEMICOLON, ast.EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, tt := range want {
		if toks[i].Type != tt {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Type, tt)
		}
	}
}

func TestLexer_Position(t *testing.T) {
	input := "let x = 5;\n  x == 10"
	want := []struct {
		typ       ast.TokenType
		line, col int
	}{
		{ast.LET, 1, 1},
		{ast.IDENT, 1, 5},
		{ast.ASSIGN, 1, 7},
		{ast.INT, 1, 9},
		{ast.SEMICOLON, 1, 10},
		{ast.IDENT, 2, 3},
		{ast.EQ, 2, 5},
		{ast.INT, 2, 8},
		{ast.EOF, 2, 10},
	}
	l := lexer.New(input)
	for i, w := range want {
		tok := l.NextToken()
		if tok.Type != w.typ || tok.Line != w.line || tok.Col != w.col {
			t.Errorf("token %d: got %s at %d:%d, want %s at %d:%d",
				i, tok.Type, tok.Line, tok.Col, w.typ, w.line, w.col)
		}
	}
}
