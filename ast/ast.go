// Package ast holds the Monkey token set and the syntax tree the parser
// produces.
//
// The hierarchy is:
//
//	Node (interface)
//	  Statement (interface)
//	    LetStmt, ReturnStmt, ExprStmt
//	  Expression (interface)
//	    Identifier, IntLiteral, BoolLiteral
//	    PrefixExpr, InfixExpr, CallExpr
//
// Each node keeps the token it started at, which carries its source position.
// A Program is never modified after ParseProgram returns it.
package ast

import (
	"fmt"
	"strings"
)

// Node is the root interface for every element in the Monkey AST.
type Node interface {
	// TokenLiteral returns the literal string of the token that began this node.
	TokenLiteral() string
	// String returns a compact, fully parenthesised representation of the node.
	// It is intended for debugging and snapshot tests, not pretty-printing.
	String() string
}

// Statement is a Node that produces no value.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node that yields a value.
type Expression interface {
	Node
	expressionNode()
}

// Program is the statement list of one source string.
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

// String returns all statements concatenated, one per line.
func (p *Program) String() string {
	var out strings.Builder
	for _, s := range p.Statements {
		out.WriteString(s.String())
		out.WriteByte('\n')
	}
	return out.String()
}

// ── Statements ────────────────────────────────────────────────────────────────

// LetStmt binds a name to the value of an expression.
//
//	let x = 5;
type LetStmt struct {
	Token Token // the 'let' token
	Name  *Identifier
	Value Expression
}

func (s *LetStmt) statementNode()       {}
func (s *LetStmt) TokenLiteral() string { return s.Token.Literal }
func (s *LetStmt) String() string {
	return fmt.Sprintf("let %s = %s;", s.Name.String(), exprString(s.Value))
}

// ReturnStmt returns a value from the enclosing function.
//
//	return 10;
//	return;     (Value is nil)
type ReturnStmt struct {
	Token Token
	Value Expression
}

func (s *ReturnStmt) statementNode()       {}
func (s *ReturnStmt) TokenLiteral() string { return s.Token.Literal }
func (s *ReturnStmt) String() string {
	if s.Value == nil {
		return "return;"
	}
	return fmt.Sprintf("return %s;", s.Value.String())
}

// ExprStmt wraps an expression that appears in statement position.
type ExprStmt struct {
	Token Token // the first token of the expression
	Expr  Expression
}

func (s *ExprStmt) statementNode()       {}
func (s *ExprStmt) TokenLiteral() string { return s.Token.Literal }
func (s *ExprStmt) String() string       { return exprString(s.Expr) }

// ── Expressions ───────────────────────────────────────────────────────────────

// Identifier is a reference to a named binding.
type Identifier struct {
	Token Token
	Name  string
}

func (e *Identifier) expressionNode()      {}
func (e *Identifier) TokenLiteral() string { return e.Token.Literal }
func (e *Identifier) String() string       { return e.Name }

// IntLiteral is a decimal integer literal value.
// A literal that overflows int64 is kept with Value 0; the parser reports it.
type IntLiteral struct {
	Token Token
	Value int64
}

func (e *IntLiteral) expressionNode()      {}
func (e *IntLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *IntLiteral) String() string       { return e.Token.Literal }

// BoolLiteral is the boolean literal true or false.
type BoolLiteral struct {
	Token Token
	Value bool
}

func (e *BoolLiteral) expressionNode()      {}
func (e *BoolLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *BoolLiteral) String() string       { return e.Token.Literal }

// PrefixExpr is a unary prefix expression: !ok or -5.
type PrefixExpr struct {
	Token    Token  // the operator token
	Operator string // "!" or "-"
	Right    Expression
}

func (e *PrefixExpr) expressionNode()      {}
func (e *PrefixExpr) TokenLiteral() string { return e.Token.Literal }
func (e *PrefixExpr) String() string {
	return fmt.Sprintf("(%s%s)", e.Operator, exprString(e.Right))
}

// InfixExpr is a binary infix expression: left op right.
type InfixExpr struct {
	Token    Token // the operator token
	Left     Expression
	Operator string // "+", "-", "*", "/", "<", ">", "==", "!="
	Right    Expression
}

func (e *InfixExpr) expressionNode()      {}
func (e *InfixExpr) TokenLiteral() string { return e.Token.Literal }
func (e *InfixExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", exprString(e.Left), e.Operator, exprString(e.Right))
}

// CallExpr is a call of an expression with a list of arguments.
//
//	add(1, 2 * 3)
type CallExpr struct {
	Token    Token // the '(' token
	Function Expression
	Args     []Expression
}

func (e *CallExpr) expressionNode()      {}
func (e *CallExpr) TokenLiteral() string { return e.Token.Literal }
func (e *CallExpr) String() string {
	args := make([]string, 0, len(e.Args))
	for _, a := range e.Args {
		args = append(args, exprString(a))
	}
	return fmt.Sprintf("%s(%s)", exprString(e.Function), strings.Join(args, ", "))
}

// exprString guards against nil children left behind by error recovery.
func exprString(e Expression) string {
	if e == nil {
		return "<nil>"
	}
	return e.String()
}
