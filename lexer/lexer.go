// Package lexer turns Monkey source text into tokens.
//
// A [Lexer] walks the input one byte at a time and hands out one [ast.Token]
// per [Lexer.NextToken] call. Once the input runs out every call yields
// [ast.EOF]. Words are read whole and then looked up with [ast.LookupIdent],
// so keywords need no special casing here. The only operators longer than one
// byte are == and !=, which are resolved by peeking at the following byte.
package lexer

import (
	"github.com/metaphox/monkey-lang/ast"
)

// singleByte lists every token that is exactly one fixed byte long.
// '=' and '!' are missing because they may start a two-byte operator.
var singleByte = map[byte]ast.TokenType{
	',': ast.COMMA,
	';': ast.SEMICOLON,
	'(': ast.LPAREN,
	')': ast.RPAREN,
	'{': ast.LBRACE,
	'}': ast.RBRACE,
	'+': ast.PLUS,
	'-': ast.MINUS,
	'*': ast.ASTERISK,
	'/': ast.SLASH,
	'<': ast.LT,
	'>': ast.GT,
}

// Lexer is the scanning state for one source string. A Lexer is not safe for
// concurrent use.
type Lexer struct {
	input   string
	pos     int  // index of ch
	readPos int  // index of the byte after ch
	ch      byte // 0 once the input is exhausted

	line int // 1-based line of ch
	col  int // 1-based column of ch
}

// New returns a Lexer positioned on the first byte of input.
func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1}
	l.readChar()
	return l
}

// NextToken skips whitespace and returns the token that starts at the cursor.
// Bytes that cannot start any token come back as ILLEGAL tokens holding that
// single byte.
func (l *Lexer) NextToken() ast.Token {
	l.skipWhitespace()

	if tt, ok := singleByte[l.ch]; ok {
		tok := l.makeToken(tt, l.input[l.pos:l.readPos])
		l.readChar()
		return tok
	}

	var tok ast.Token
	switch l.ch {
	case 0:
		if l.pos < len(l.input) {
			// NUL inside the input rather than past its end.
			tok = l.makeToken(ast.ILLEGAL, l.input[l.pos:l.readPos])
			break
		}
		// readChar no longer moves, so this repeats on every call.
		return l.makeToken(ast.EOF, "")
	case '=':
		tok = l.twoByte('=', ast.EQ, ast.ASSIGN)
	case '!':
		tok = l.twoByte('=', ast.NEQ, ast.BANG)
	default:
		switch {
		case isLetter(l.ch):
			return l.readIdentifier()
		case isDigit(l.ch):
			return l.readNumber()
		}
		tok = l.makeToken(ast.ILLEGAL, l.input[l.pos:l.readPos])
	}

	l.readChar()
	return tok
}

// twoByte returns a pair token when the next byte is second, otherwise the
// single token for ch. The cursor is left on the last byte used.
func (l *Lexer) twoByte(second byte, pair, single ast.TokenType) ast.Token {
	if l.peekChar() != second {
		return l.makeToken(single, l.input[l.pos:l.readPos])
	}
	tok := l.makeToken(pair, l.input[l.pos:l.readPos+1])
	l.readChar()
	return tok
}

// Tokens drains the lexer and returns every remaining token, including the
// final EOF token.
func (l *Lexer) Tokens() []ast.Token {
	var toks []ast.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == ast.EOF {
			return toks
		}
	}
}

// readChar moves the cursor one byte forward. Past the end ch stays 0 and the
// cursor stops moving.
func (l *Lexer) readChar() {
	if l.readPos > len(l.input) {
		return
	}
	if l.ch == '\n' {
		l.line++
		l.col = 0
	}
	if l.readPos == len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
	l.col++
}

// peekChar is the byte after ch, or 0 at the end.
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

func (l *Lexer) makeToken(tt ast.TokenType, literal string) ast.Token {
	return ast.Token{Type: tt, Literal: literal, Line: l.line, Col: l.col}
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
		l.readChar()
	}
}

// readIdentifier consumes a word and classifies it. The cursor ends on the
// byte after the word.
func (l *Lexer) readIdentifier() ast.Token {
	tok := l.makeToken(ast.IDENT, "")
	start := l.pos
	for isLetter(l.ch) {
		l.readChar()
	}
	tok.Literal = l.input[start:l.pos]
	tok.Type = ast.LookupIdent(tok.Literal)
	return tok
}

// readNumber scans a run of decimal digits. Conversion to int64 happens in the
// parser, which reports literals that overflow.
func (l *Lexer) readNumber() ast.Token {
	tok := l.makeToken(ast.INT, "")
	start := l.pos
	for isDigit(l.ch) {
		l.readChar()
	}
	tok.Literal = l.input[start:l.pos]
	return tok
}

// isLetter reports whether b may appear in an identifier: [a-zA-Z_].
func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		b == '_'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
