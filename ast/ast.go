// Package ast defines the expression tree produced by the parser. Nodes
// never copy source bytes; they reference lexemes by token-table index
// (token.TokIdx), so the AST's lifetime is bound to the Token Table it
// was built from, which is in turn bound to the input buffer.
package ast

import "github.com/oarkflow/simdsql/token"

// TokIdx is a zero-based index into a token.Table.
type TokIdx = int

// Node is implemented by every AST node.
type Node interface {
	node()
}

// Expr is a SQL expression node.
type Expr interface {
	Node
	exprNode()
}

// Field is a bare or qualified column reference: Prefix is the table
// alias (absent for a bare reference), Value is the column name. Both
// are indices of Identifier tokens.
type Field struct {
	Prefix *TokIdx
	Value  TokIdx
}

func (*Field) node()     {}
func (*Field) exprNode() {}

// Star is an unqualified '*' or a qualified 't.*'.
type Star struct {
	Prefix *TokIdx
}

func (*Star) node()     {}
func (*Star) exprNode() {}

// FunctionCall is a name applied to a positional argument list. A
// COUNT(*)-style call carries a *Star as its sole argument.
type FunctionCall struct {
	Name TokIdx
	Args []Expr
}

func (*FunctionCall) node()     {}
func (*FunctionCall) exprNode() {}

// StringLiteral references a StringLiteral token.
type StringLiteral struct {
	Value TokIdx
}

func (*StringLiteral) node()     {}
func (*StringLiteral) exprNode() {}

// NumericLiteral references a Number token.
type NumericLiteral struct {
	Value TokIdx
}

func (*NumericLiteral) node()     {}
func (*NumericLiteral) exprNode() {}

// BinaryOp is a left-associative binary expression; Op is the operator's
// token kind (one of the comparison/arithmetic/logical kinds, or
// KeywordAnd/KeywordOr).
type BinaryOp struct {
	Op    token.Kind
	Left  Expr
	Right Expr
}

func (*BinaryOp) node()     {}
func (*BinaryOp) exprNode() {}

// Alias decorates any Expr with an optional trailing name, either
// explicit ("expr AS name") or implicit ("expr name").
type Alias struct {
	Name  *TokIdx
	Value Expr
}

func (*Alias) node() {}

// SelectStatement holds the column list parsed between SELECT and the
// FROM boundary. The FROM relation tree itself is future work, matching
// the reference implementation's skeleton.
type SelectStatement struct {
	Columns []*Alias
}

func (*SelectStatement) node() {}
