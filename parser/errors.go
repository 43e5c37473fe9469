package parser

import (
	"fmt"

	"github.com/metaphox/monkey-lang/ast"
)

// UnexpectedTokenError is recorded when the peek token does not have the type
// the grammar requires at that point. Only expectPeek produces it.
type UnexpectedTokenError struct {
	Expected ast.TokenType
	Actual   ast.TokenType
	Token    ast.Token // the offending peek token
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("line %d col %d: expected %s, got %s (%q)",
		e.Token.Line, e.Token.Col, e.Expected, e.Actual, e.Token.Literal)
}

// IntegerLiteralError is recorded when an INT token does not fit in an int64.
// The literal is kept in the AST with the value 0.
type IntegerLiteralError struct {
	Literal string
	Token   ast.Token
	Err     error
}

func (e *IntegerLiteralError) Error() string {
	return fmt.Sprintf("line %d col %d: could not parse %q as integer: %v",
		e.Token.Line, e.Token.Col, e.Literal, e.Err)
}

func (e *IntegerLiteralError) Unwrap() error { return e.Err }

// NoPrefixParseFnError is recorded when an expression is expected but the
// current token cannot start one.
type NoPrefixParseFnError struct {
	Type  ast.TokenType
	Token ast.Token
}

func (e *NoPrefixParseFnError) Error() string {
	return fmt.Sprintf("line %d col %d: no prefix parse function for %s (%q)",
		e.Token.Line, e.Token.Col, e.Type, e.Token.Literal)
}
