// Package parser builds a Monkey syntax tree from lexer tokens.
//
// Statements are parsed by recursive descent; expressions by precedence
// climbing in the Pratt style, where each token type owns a prefix and/or
// infix handler and a binding power.
//
//	p := parser.New(lexer.New(source))
//	prog := p.ParseProgram()
//	if err := p.Err(); err != nil { ... }
//
// Errors do not stop the parse. They are collected in source order, the
// statement they occurred in is dropped, and parsing carries on from the next
// token.
package parser

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/metaphox/monkey-lang/ast"
	"github.com/metaphox/monkey-lang/lexer"
)

// Precedence is the binding power of an operator. Levels are strictly ordered.
type Precedence int

const (
	Lowest      Precedence = iota
	Equals                 // == !=
	LessGreater            // < >
	Sum                    // + -
	Product                // * /
	Prefix                 // -x  !x
	Call                   // f(x)
)

// tokenPrecedence holds the binding power of every infix token.
var tokenPrecedence = map[ast.TokenType]Precedence{
	ast.EQ:       Equals,
	ast.NEQ:      Equals,
	ast.LT:       LessGreater,
	ast.GT:       LessGreater,
	ast.PLUS:     Sum,
	ast.MINUS:    Sum,
	ast.ASTERISK: Product,
	ast.SLASH:    Product,
	ast.LPAREN:   Call,
}

// PrecedenceOf returns the infix precedence of tt.
func PrecedenceOf(tt ast.TokenType) Precedence {
	if p, ok := tokenPrecedence[tt]; ok {
		return p
	}
	return Lowest
}

// prefixParseFn parses an expression that starts with the current token.
type prefixParseFn func() ast.Expression

// infixParseFn parses the rest of an infix expression given its left operand.
// The current token is the operator.
type infixParseFn func(left ast.Expression) ast.Expression

// Parser holds all state needed to parse one Monkey source string.
// Create one with [New] and call [Parser.ParseProgram].
type Parser struct {
	l      *lexer.Lexer
	cur    ast.Token
	peek   ast.Token
	errors []error   // accumulated parse errors, in order
	log    *slog.Logger

	prefixFns map[ast.TokenType]prefixParseFn
	infixFns  map[ast.TokenType]infixParseFn
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger makes the parser trace statement dispatch and recorded errors at
// debug level.
func WithLogger(log *slog.Logger) Option {
	return func(p *Parser) {
		p.log = log
	}
}

// New creates a Parser that reads tokens from l. The parser takes ownership
// of l. New primes the two-token lookahead and registers all parse functions.
func New(l *lexer.Lexer, opts ...Option) *Parser {
	p := &Parser{
		l:         l,
		prefixFns: make(map[ast.TokenType]prefixParseFn),
		infixFns:  make(map[ast.TokenType]infixParseFn),
	}
	for _, opt := range opts {
		opt(p)
	}

	p.registerPrefix(ast.IDENT, p.parseIdentifier)
	p.registerPrefix(ast.INT, p.parseIntLiteral)
	p.registerPrefix(ast.TRUE, p.parseBoolLiteral)
	p.registerPrefix(ast.FALSE, p.parseBoolLiteral)
	p.registerPrefix(ast.BANG, p.parsePrefixExpression)
	p.registerPrefix(ast.MINUS, p.parsePrefixExpression)
	p.registerPrefix(ast.LPAREN, p.parseGroupedExpression)

	for _, tt := range []ast.TokenType{
		ast.PLUS, ast.MINUS, ast.ASTERISK, ast.SLASH,
		ast.EQ, ast.NEQ, ast.LT, ast.GT,
	} {
		p.registerInfix(tt, p.parseInfixExpression)
	}
	p.registerInfix(ast.LPAREN, p.parseCallExpression)

		p.advance()
	p.advance()

	return p
}

// Errors returns all parse errors collected so far, in the order they were
// found. Each is one of *UnexpectedTokenError, *IntegerLiteralError or
// *NoPrefixParseFnError.
func (p *Parser) Errors() []error {
	return p.errors
}

// Err joins every collected error into one, or returns nil after a clean parse.
func (p *Parser) Err() error {
	return errors.Join(p.errors...)
}

// ParseProgram builds and returns the AST for the whole input. The returned
// program may be incomplete; check [Parser.Errors] before trusting it.
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{}
	for !p.curTokenIs(ast.EOF) {
		s := p.parseStatement()
		if s != nil {
			prog.Statements = append(prog.Statements, s)
		}
		p.advance()
	}
	return prog
}

// ── Token window ──────────────────────────────────────────────────────────────

// advance slides the two-token window one step.
func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

// expectPeek checks that the peek token matches tt. If so it advances and
// returns true; otherwise it records an *UnexpectedTokenError and returns
// false without advancing.
func (p *Parser) expectPeek(tt ast.TokenType) bool {
	if p.peekTokenIs(tt) {
		p.advance()
		return true
	}
	p.record(&UnexpectedTokenError{Expected: tt, Actual: p.peek.Type, Token: p.peek})
	return false
}

// curTokenIs reports whether the current token has the given type.
func (p *Parser) curTokenIs(tt ast.TokenType) bool { return p.cur.Type == tt }

// peekTokenIs reports whether the peek token has the given type.
func (p *Parser) peekTokenIs(tt ast.TokenType) bool { return p.peek.Type == tt }

func (p *Parser) curPrecedence() Precedence  { return PrecedenceOf(p.cur.Type) }
func (p *Parser) peekPrecedence() Precedence { return PrecedenceOf(p.peek.Type) }

// record appends err to the error list.
func (p *Parser) record(err error) {
	p.errors = append(p.errors, err)
	if p.log != nil {
		p.log.Debug("parse error", "error", err)
	}
}

func (p *Parser) registerPrefix(tt ast.TokenType, fn prefixParseFn) {
	p.prefixFns[tt] = fn
}

func (p *Parser) registerInfix(tt ast.TokenType, fn infixParseFn) {
	p.infixFns[tt] = fn
}

// ── Statements ────────────────────────────────────────────────────────────────

// parseStatement dispatches on the current token. It returns nil when the
// statement could not be parsed; the error has been recorded by then.
func (p *Parser) parseStatement() ast.Statement {
	if p.log != nil {
		p.log.Debug("statement", "token", p.cur.Type, "line", p.cur.Line, "col", p.cur.Col)
	}
	switch p.cur.Type {
	case ast.LET:
		return p.parseLetStatement()
	case ast.RETURN:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

// parseLetStatement parses `let name = expr [;]`.
func (p *Parser) parseLetStatement() ast.Statement {
	tok := p.cur // 'let'

	if !p.expectPeek(ast.IDENT) {
		return nil
	}
	name := &ast.Identifier{Token: p.cur, Name: p.cur.Literal}

	if !p.expectPeek(ast.ASSIGN) {
		return nil
	}
	p.advance() // move past '='

	value := p.parseExpression(Lowest)
	if value == nil {
		return nil
	}
	if p.peekTokenIs(ast.SEMICOLON) {
		p.advance()
	}

	return &ast.LetStmt{Token: tok, Name: name, Value: value}
}

// parseReturnStatement parses `return [expr] [;]`.
// The value is absent when 'return' is directly followed by ';' or EOF.
func (p *Parser) parseReturnStatement() ast.Statement {
	tok := p.cur // 'return'

	if p.peekTokenIs(ast.SEMICOLON) {
		p.advance()
		return &ast.ReturnStmt{Token: tok}
	}
	if p.peekTokenIs(ast.EOF) {
		return &ast.ReturnStmt{Token: tok}
	}
	p.advance() // move past 'return'

	value := p.parseExpression(Lowest)
	if value == nil {
		return nil
	}
	if p.peekTokenIs(ast.SEMICOLON) {
		p.advance()
	}

	return &ast.ReturnStmt{Token: tok, Value: value}
}

// parseExpressionStatement parses a bare expression; ';' is optional.
func (p *Parser) parseExpressionStatement() ast.Statement {
	tok := p.cur
	expr := p.parseExpression(Lowest)
	if expr == nil {
		return nil
	}
	if p.peekTokenIs(ast.SEMICOLON) {
		p.advance()
	}
	return &ast.ExprStmt{Token: tok, Expr: expr}
}

// ── Expressions ───────────────────────────────────────────────────────────────

// parseExpression parses an expression whose left neighbour binds with prec.
// Infix operators are folded in for as long as they bind tighter than prec.
func (p *Parser) parseExpression(prec Precedence) ast.Expression {
	prefix := p.prefixFns[p.cur.Type]
	if prefix == nil {
		p.record(&NoPrefixParseFnError{Type: p.cur.Type, Token: p.cur})
		return nil
	}

	left := prefix()

	for left != nil && !p.peekTokenIs(ast.SEMICOLON) && prec < p.peekPrecedence() {
		infix := p.infixFns[p.peek.Type]
		if infix == nil {
			return left
		}
		p.advance()
		left = infix(left)
	}

	return left
}

// ── Prefix handlers ───────────────────────────────────────────────────────────

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.cur, Name: p.cur.Literal}
}

// parseIntLiteral converts the literal to int64. On overflow it records an
// *IntegerLiteralError and keeps the node with Value 0 so parsing continues.
func (p *Parser) parseIntLiteral() ast.Expression {
	tok := p.cur
	val, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		p.record(&IntegerLiteralError{Literal: tok.Literal, Token: tok, Err: err})
		val = 0
	}
	return &ast.IntLiteral{Token: tok, Value: val}
}

func (p *Parser) parseBoolLiteral() ast.Expression {
	return &ast.BoolLiteral{Token: p.cur, Value: p.curTokenIs(ast.TRUE)}
}

// parsePrefixExpression handles `!expr` and `-expr`.
func (p *Parser) parsePrefixExpression() ast.Expression {
	tok := p.cur
	p.advance()
	right := p.parseExpression(Prefix)
	if right == nil {
		return nil
	}
	return &ast.PrefixExpr{Token: tok, Operator: tok.Literal, Right: right}
}

// parseGroupedExpression returns the inner expression of `(expr)`; the
// parentheses leave no node behind.
func (p *Parser) parseGroupedExpression() ast.Expression {
	p.advance() // move past '('
	expr := p.parseExpression(Lowest)
	if expr == nil {
		return nil
	}
	if !p.expectPeek(ast.RPAREN) {
		return nil
	}
	return expr
}

// ── Infix handlers ────────────────────────────────────────────────────────────

// parseInfixExpression handles all binary infix operators. Operators are
// left-associative: the right operand is parsed at the operator's own level.
func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	tok := p.cur
	prec := p.curPrecedence()
	p.advance()
	right := p.parseExpression(prec)
	if right == nil {
		return nil
	}
	return &ast.InfixExpr{Token: tok, Left: left, Operator: tok.Literal, Right: right}
}

// parseCallExpression handles `f(args...)`, triggered when '(' follows an
// expression.
func (p *Parser) parseCallExpression(fn ast.Expression) ast.Expression {
	tok := p.cur // '('
	args, ok := p.parseCallArguments()
	if !ok {
		return nil
	}
	return &ast.CallExpr{Token: tok, Function: fn, Args: args}
}

// parseCallArguments parses a comma-separated argument list. cur = '(' on
// entry, cur = ')' on successful return.
func (p *Parser) parseCallArguments() ([]ast.Expression, bool) {
	args := []ast.Expression{}
	if p.peekTokenIs(ast.RPAREN) {
		p.advance()
		return args, true
	}

	p.advance() // move to first argument
	for {
		arg := p.parseExpression(Lowest)
		if arg == nil {
			return nil, false
		}
		args = append(args, arg)
		if !p.peekTokenIs(ast.COMMA) {
			break
		}
		p.advance() // consume ','
		p.advance() // move to next argument
	}

	if !p.expectPeek(ast.RPAREN) {
		return nil, false
	}
	return args, true
}
