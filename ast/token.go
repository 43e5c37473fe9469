// Package ast defines the token types and the Token struct used by the Monkey lexer and parser.
//
// Tokens are the smallest meaningful units of a Monkey source string. Every token carries its
// type, the exact literal text it was scanned from, and its source position (line + column).
// Position is 1-based: the first character of the input is Line 1, Col 1.
package ast

import "fmt"

// TokenType identifies the category of a scanned token.
type TokenType int

const (
	// ── Special ────────────────────────────────────────────────────────────────

	// ILLEGAL represents a byte the lexer could not recognise, e.g. '@' or '"'.
	ILLEGAL TokenType = iota
	// EOF marks the end of the input stream. The parser stops when it sees EOF.
	EOF

	// ── Literals ───────────────────────────────────────────────────────────────

	// IDENT is an identifier: [a-zA-Z_]+
	// Identifiers that match a keyword are re-classified to their keyword type
	// by the lexer before the token is returned.
	IDENT
	// INT is a decimal integer literal, e.g. 0, 42, 838383.
	INT

	// ── Operators ──────────────────────────────────────────────────────────────

	ASSIGN   // =
	PLUS     // +
	MINUS    // -
	BANG     // !
	ASTERISK // *
	SLASH    // /
	LT       // <
	GT       // >
	EQ       // ==
	NEQ      // !=

	// ── Delimiters ─────────────────────────────────────────────────────────────

	COMMA     // ,
	SEMICOLON // ;
	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }

	// ── Keywords ───────────────────────────────────────────────────────────────

	FN
	LET
	TRUE
	FALSE
	IF
	ELSE
	RETURN
)

var tokenNames = [...]string{
	ILLEGAL:   "ILLEGAL",
	EOF:       "EOF",
	IDENT:     "IDENT",
	INT:       "INT",
	ASSIGN:    "ASSIGN",
	PLUS:      "PLUS",
	MINUS:     "MINUS",
	BANG:      "BANG",
	ASTERISK:  "ASTERISK",
	SLASH:     "SLASH",
	LT:        "LT",
	GT:        "GT",
	EQ:        "EQ",
	NEQ:       "NEQ",
	COMMA:     "COMMA",
	SEMICOLON: "SEMICOLON",
	LPAREN:    "LPAREN",
	RPAREN:    "RPAREN",
	LBRACE:    "LBRACE",
	RBRACE:    "RBRACE",
	FN:        "FN",
	LET:       "LET",
	TRUE:      "TRUE",
	FALSE:     "FALSE",
	IF:        "IF",
	ELSE:      "ELSE",
	RETURN:    "RETURN",
}

// String returns the upper-case name of the token type, e.g. "IDENT" or "NEQ".
func (tt TokenType) String() string {
	if tt >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// MarshalText encodes the token type by name so JSON and YAML dumps stay readable.
func (tt TokenType) MarshalText() ([]byte, error) {
	if tt < 0 || int(tt) >= len(tokenNames) {
		return nil, fmt.Errorf("ast: unknown token type %d", int(tt))
	}
	return []byte(tokenNames[tt]), nil
}

// UnmarshalText is the inverse of MarshalText.
func (tt *TokenType) UnmarshalText(text []byte) error {
	for i, name := range tokenNames {
		if name == string(text) {
			*tt = TokenType(i)
			return nil
		}
	}
	return fmt.Errorf("ast: unknown token type %q", text)
}

// keywords maps the literal text of every Monkey keyword to its TokenType.
// The lexer consults this map when it finishes scanning an identifier.
var keywords = map[string]TokenType{
	"fn":     FN,
	"let":    LET,
	"true":   TRUE,
	"false":  FALSE,
	"if":     IF,
	"else":   ELSE,
	"return": RETURN,
}

// LookupIdent checks whether ident is a reserved keyword and returns the
// corresponding TokenType. If ident is not a keyword, IDENT is returned.
func LookupIdent(ident string) TokenType {
	if tt, ok := keywords[ident]; ok {
		return tt
	}
	return IDENT
}

// Token is a single lexical unit produced by the Monkey lexer.
//
// Fields:
//   - Type: the category of this token (see TokenType constants)
//   - Literal: the exact source text that was scanned ("" for EOF)
//   - Line: 1-based source line number
//   - Col: 1-based column of the first character of this token
type Token struct {
	Type    TokenType `json:"type" yaml:"type"`
	Literal string    `json:"literal" yaml:"literal"`
	Line    int       `json:"line" yaml:"line"`
	Col     int       `json:"col" yaml:"col"`
}

// String returns a debugging form such as `IDENT "foobar"`.
func (t Token) String() string {
	if t.Type == EOF {
		return "EOF"
	}
	return fmt.Sprintf("%s %q", t.Type, t.Literal)
}
