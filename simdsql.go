// Package simdsql is the façade over the tokenizer and expression
// parser: construct a Parser once, then call Parse per input text. The
// keyword matcher is built once at construction and is safe to share
// across concurrent Parse calls.
package simdsql

import (
	"unicode/utf8"

	"github.com/oarkflow/simdsql/ast"
	"github.com/oarkflow/simdsql/keyword"
	"github.com/oarkflow/simdsql/lexer"
	"github.com/oarkflow/simdsql/parser"
	"github.com/oarkflow/simdsql/perror"
	"github.com/oarkflow/simdsql/token"
)

// Re-exported so callers of this package need not import the
// subpackages directly for the common path.
type (
	Expr            = ast.Expr
	Field           = ast.Field
	Star            = ast.Star
	FunctionCall    = ast.FunctionCall
	StringLiteral   = ast.StringLiteral
	NumericLiteral  = ast.NumericLiteral
	BinaryOp        = ast.BinaryOp
	Alias           = ast.Alias
	SelectStatement = ast.SelectStatement
	TokenKind       = token.Kind
	TokenTable      = token.Table
	Error           = perror.Error
	ErrorKind       = perror.Kind
)

// Error kind constants, re-exported for callers that want to branch on
// the taxonomy without importing perror directly.
const (
	ErrInvalidUTF8     = perror.InvalidUTF8
	ErrInvalidToken    = perror.InvalidToken
	ErrSyntaxError     = perror.SyntaxError
	ErrUnexpectedToken = perror.UnexpectedToken
)

// Parser is a reusable front-end: one keyword matcher and one arena-backed
// expression parser, shared across any number of sequential Parse calls.
type Parser struct {
	kw *keyword.Matcher
	p  *parser.Parser
}

// NewParser allocates the keyword matcher once and returns a ready Parser.
func NewParser() (*Parser, error) {
	return &Parser{kw: keyword.New(), p: parser.New()}, nil
}

// Tokenize validates text as UTF-8, then runs the lexer and returns its
// Token Table, or the first lexer error.
func (p *Parser) Tokenize(text string) (*token.Table, error) {
	if !utf8.ValidString(text) {
		return nil, perror.NewInvalidUTF8()
	}
	return lexer.Tokenize([]byte(text), p.kw)
}

// Parse runs the full pipeline: UTF-8 validation, lexing, and statement
// parsing starting at cursor 0. It returns the AST or the first error,
// lexer or parser, encountered along the way.
func (p *Parser) Parse(text string) (*ast.SelectStatement, error) {
	tbl, err := p.Tokenize(text)
	if err != nil {
		return nil, err
	}
	p.p.Reset()
	return p.p.Parse(tbl)
}
