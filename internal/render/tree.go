package render

import (
	"fmt"

	"github.com/metaphox/monkey-lang/ast"
)

// Tree converts an AST node into nested maps and slices suitable for JSON or
// YAML encoding. Every object carries a "node" key naming its type.
func Tree(node ast.Node) any {
	switch n := node.(type) {
	case nil:
		return nil
	case *ast.Program:
		stmts := make([]any, 0, len(n.Statements))
		for _, s := range n.Statements {
			stmts = append(stmts, Tree(s))
		}
		return map[string]any{"node": "Program", "statements": stmts}
	case *ast.LetStmt:
		return map[string]any{"node": "Let", "name": n.Name.Name, "value": exprTree(n.Value), "line": n.Token.Line}
	case *ast.ReturnStmt:
		return map[string]any{"node": "Return", "value": exprTree(n.Value), "line": n.Token.Line}
	case *ast.ExprStmt:
		return map[string]any{"node": "Expression", "expression": exprTree(n.Expr), "line": n.Token.Line}
	case *ast.Identifier:
		return map[string]any{"node": "Identifier", "name": n.Name}
	case *ast.IntLiteral:
		return map[string]any{"node": "Integer", "value": n.Value}
	case *ast.BoolLiteral:
		return map[string]any{"node": "Boolean", "value": n.Value}
	case *ast.PrefixExpr:
		return map[string]any{"node": "Prefix", "operator": n.Operator, "right": exprTree(n.Right)}
	case *ast.InfixExpr:
		return map[string]any{"node": "Infix", "operator": n.Operator, "left": exprTree(n.Left), "right": exprTree(n.Right)}
	case *ast.CallExpr:
		args := make([]any, 0, len(n.Args))
		for _, a := range n.Args {
			args = append(args, exprTree(a))
		}
		return map[string]any{"node": "Call", "function": exprTree(n.Function), "arguments": args}
	default:
		return map[string]any{"node": fmt.Sprintf("%T", node)}
	}
}

// exprTree keeps a nil expression as a JSON null instead of a typed nil.
func exprTree(e ast.Expression) any {
	if e == nil {
		return nil
	}
	return Tree(e)
}
