// Package parser implements the Pratt/precedence-climbing expression
// parser and the SELECT column-list skeleton over a token.Table. AST
// nodes are allocated out of a per-parse bump arena, matching the
// zero-net-allocation design of the table it reads from.
package parser

import (
	"unsafe"

	"github.com/oarkflow/simdsql/ast"
	"github.com/oarkflow/simdsql/perror"
	"github.com/oarkflow/simdsql/token"
)

// Parser walks a token.Table with a plain integer cursor; it holds no
// reference to the original bytes.
type Parser struct {
	tbl   *token.Table
	arena arena
}

// New returns a ready-to-use Parser. The arena allocates lazily on first
// use.
func New() *Parser { return &Parser{} }

// Parse consumes tbl from cursor 0 and returns the SELECT skeleton
// statement it describes, or the first error encountered.
func (p *Parser) Parse(tbl *token.Table) (*ast.SelectStatement, error) {
	p.tbl = tbl
	p.arena.init()
	cursor := 0
	return p.parseSelectStatement(&cursor)
}

// Reset releases the arena's slabs (beyond the first) for reuse across
// parses, avoiding repeated large allocations in a tight loop.
func (p *Parser) Reset() { p.arena.reset() }

func arenaNode[T any](a *arena, v T) *T {
	n := (*T)(a.allocPtr(unsafe.Sizeof(v)))
	*n = v
	return n
}

func (p *Parser) kindAt(c int) token.Kind {
	k, ok := p.tbl.Kind(c)
	if !ok {
		return token.Eof
	}
	return k
}

// ---- SELECT column-list skeleton ----

// selectListTerminators are the clause-starting keywords that end the
// column list; AS is never a terminator because it is consumed by
// parseAlias.
var selectListTerminators = map[token.Kind]bool{
	token.KeywordFrom:   true,
	token.KeywordWhere:  true,
	token.KeywordGroup:  true,
	token.KeywordOrder:  true,
	token.KeywordHaving: true,
	token.KeywordLimit:  true,
	token.KeywordOffset: true,
	token.KeywordUnion:  true,
}

func (p *Parser) parseSelectStatement(c *int) (*ast.SelectStatement, error) {
	if p.kindAt(*c) != token.KeywordSelect {
		return nil, perror.NewSyntaxError(*c, *c)
	}
	*c++

	stmt := &ast.SelectStatement{}
	for {
		k := p.kindAt(*c)
		if selectListTerminators[k] {
			break
		}
		if k == token.Eof || *c >= p.tbl.Len() {
			break
		}
		if k == token.Comma {
			*c++
			continue
		}
		col, err := p.parseAlias(c)
		if err != nil {
			return nil, err
		}
		stmt.Columns = arenaAppend(&p.arena, stmt.Columns, col)
	}

	if p.kindAt(*c) == token.KeywordFrom {
		*c++
	}
	return stmt, nil
}

// ---- Alias ----

func (p *Parser) parseAlias(c *int) (*ast.Alias, error) {
	value, err := p.parseExpr(c, precLowest)
	if err != nil {
		return nil, err
	}
	switch p.kindAt(*c) {
	case token.KeywordAs:
		*c++
		if p.kindAt(*c) != token.Identifier {
			return nil, perror.NewSyntaxError(*c, *c)
		}
		name := *c
		*c++
		return arenaNode(&p.arena, ast.Alias{Name: &name, Value: value}), nil
	case token.Identifier:
		name := *c
		*c++
		return arenaNode(&p.arena, ast.Alias{Name: &name, Value: value}), nil
	default:
		return arenaNode(&p.arena, ast.Alias{Value: value}), nil
	}
}

// ---- Expression parsing (Pratt / precedence climbing) ----

const precLowest = 0

// tokenPrec returns the binding precedence of k as a binary operator and
// whether k is one at all. Table from spec's fixed 6-level grammar.
func tokenPrec(k token.Kind) (int, bool) {
	switch k {
	case token.KeywordOr:
		return 1, true
	case token.KeywordAnd:
		return 2, true
	case token.Equal, token.NotEqual:
		return 3, true
	case token.Less, token.LessEqual, token.Greater, token.GreaterEqual:
		return 4, true
	case token.Plus, token.Subtract:
		return 5, true
	case token.Multiply, token.Divide, token.Mod:
		return 6, true
	default:
		return 0, false
	}
}

func (p *Parser) parseExpr(c *int, minPrec int) (ast.Expr, error) {
	left, err := p.parsePrimary(c)
	if err != nil {
		return nil, err
	}
	for {
		op := p.kindAt(*c)
		prec, ok := tokenPrec(op)
		if !ok || prec < minPrec {
			return left, nil
		}
		*c++
		right, err := p.parseExpr(c, prec+1)
		if err != nil {
			return nil, err
		}
		left = arenaNode(&p.arena, ast.BinaryOp{Op: op, Left: left, Right: right})
	}
}

func (p *Parser) parsePrimary(c *int) (ast.Expr, error) {
	switch p.kindAt(*c) {
	case token.Number:
		idx := *c
		*c++
		return arenaNode(&p.arena, ast.NumericLiteral{Value: idx}), nil
	case token.StringLiteral:
		idx := *c
		*c++
		return arenaNode(&p.arena, ast.StringLiteral{Value: idx}), nil
	case token.Multiply:
		*c++
		return arenaNode(&p.arena, ast.Star{}), nil
	case token.LeftParen:
		*c++
		inner, err := p.parseExpr(c, precLowest)
		if err != nil {
			return nil, err
		}
		if p.kindAt(*c) != token.RightParen {
			return nil, perror.NewUnexpectedToken(token.RightParen, p.kindAt(*c))
		}
		*c++
		return inner, nil
	case token.Identifier:
		return p.parseIdentifierLed(c)
	default:
		return nil, perror.NewSyntaxError(*c, *c)
	}
}

// parseIdentifierLed disambiguates FunctionCall, qualified/bare Field,
// and qualified Star by inspecting the three-token window from the
// cursor, matching the reference grammar's sum-based decision exactly:
// bare (first identifier, no dot) advances one token; qualified
// (identifier, dot, identifier-or-star) advances three; anything else
// is a syntax error.
func (p *Parser) parseIdentifierLed(c *int) (ast.Expr, error) {
	if p.kindAt(*c+1) == token.LeftParen {
		return p.parseFunctionCall(c)
	}
	if p.kindAt(*c+1) != token.Dot {
		idx := *c
		*c++
		return arenaNode(&p.arena, ast.Field{Value: idx}), nil
	}
	switch p.kindAt(*c + 2) {
	case token.Multiply:
		prefix := *c
		*c += 3
		return arenaNode(&p.arena, ast.Star{Prefix: &prefix}), nil
	case token.Identifier:
		prefix := *c
		value := *c + 2
		*c += 3
		return arenaNode(&p.arena, ast.Field{Prefix: &prefix, Value: value}), nil
	default:
		return nil, perror.NewSyntaxError(*c, *c+2)
	}
}

// parseFunctionCall requires Identifier LeftParen ... and then loops:
// parse an argument expression, a Comma continues, a RightParen
// terminates, anything else is a syntax error. The loop always attempts
// an expression on its first iteration, so empty argument lists are
// rejected (f() is a syntax error) by construction, matching the
// reference parser.
func (p *Parser) parseFunctionCall(c *int) (ast.Expr, error) {
	name := *c
	*c++
	if p.kindAt(*c) != token.LeftParen {
		return nil, perror.NewUnexpectedToken(token.LeftParen, p.kindAt(*c))
	}
	*c++

	var args []ast.Expr
	for {
		arg, err := p.parseExpr(c, precLowest)
		if err != nil {
			return nil, err
		}
		args = arenaAppend(&p.arena, args, arg)
		switch p.kindAt(*c) {
		case token.Comma:
			*c++
			continue
		case token.RightParen:
			*c++
			return arenaNode(&p.arena, ast.FunctionCall{Name: name, Args: args}), nil
		default:
			return nil, perror.NewSyntaxError(*c, *c)
		}
	}
}
