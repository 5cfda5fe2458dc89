package simdsql_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/oarkflow/simdsql"
	"github.com/oarkflow/simdsql/token"
)

func mustParse(t *testing.T, sql string) *simdsql.SelectStatement {
	t.Helper()
	p, err := simdsql.NewParser()
	require.NoError(t, err)
	stmt, err := p.Parse(sql)
	require.NoError(t, err)
	return stmt
}

func TestParseSelectStar(t *testing.T) {
	stmt := mustParse(t, "select * from a")
	require.Len(t, stmt.Columns, 1)
	star, ok := stmt.Columns[0].Value.(*simdsql.Star)
	require.True(t, ok)
	require.Nil(t, star.Prefix)
}

func TestParseQualifiedStarAndField(t *testing.T) {
	stmt := mustParse(t, "select t.*, t.c from t")
	require.Len(t, stmt.Columns, 2)

	star, ok := stmt.Columns[0].Value.(*simdsql.Star)
	require.True(t, ok)
	require.NotNil(t, star.Prefix)

	field, ok := stmt.Columns[1].Value.(*simdsql.Field)
	require.True(t, ok)
	require.NotNil(t, field.Prefix)
}

func TestParsePrecedenceAdditionOverMultiplication(t *testing.T) {
	stmt := mustParse(t, "select 1+2*4")
	require.Len(t, stmt.Columns, 1)

	top, ok := stmt.Columns[0].Value.(*simdsql.BinaryOp)
	require.True(t, ok)
	require.Equal(t, token.Plus, top.Op)

	right, ok := top.Right.(*simdsql.BinaryOp)
	require.True(t, ok)
	require.Equal(t, token.Multiply, right.Op)
}

func TestParseParenOverridesPrecedence(t *testing.T) {
	stmt := mustParse(t, "select (1+3)*6")
	require.Len(t, stmt.Columns, 1)

	top, ok := stmt.Columns[0].Value.(*simdsql.BinaryOp)
	require.True(t, ok)
	require.Equal(t, token.Multiply, top.Op)

	left, ok := top.Left.(*simdsql.BinaryOp)
	require.True(t, ok)
	require.Equal(t, token.Plus, left.Op)
}

func TestParseFunctionCallTwoArgs(t *testing.T) {
	stmt := mustParse(t, "select f('a','b')")
	require.Len(t, stmt.Columns, 1)
	call, ok := stmt.Columns[0].Value.(*simdsql.FunctionCall)
	require.True(t, ok)
	require.Len(t, call.Args, 2)
	for _, a := range call.Args {
		_, ok := a.(*simdsql.StringLiteral)
		require.True(t, ok)
	}
}

func TestParseFunctionCallTrailingCommaIsSyntaxError(t *testing.T) {
	p, err := simdsql.NewParser()
	require.NoError(t, err)
	_, err = p.Parse("select f('a',)")
	require.Error(t, err)
	perr, ok := err.(*simdsql.Error)
	require.True(t, ok)
	require.Equal(t, simdsql.ErrSyntaxError, perr.Kind)
}

func TestParseAliasForms(t *testing.T) {
	stmt := mustParse(t, "select a AS x, b y, c from t")
	require.Len(t, stmt.Columns, 3)

	require.NotNil(t, stmt.Columns[0].Name)
	require.NotNil(t, stmt.Columns[1].Name)
	require.Nil(t, stmt.Columns[2].Name)
}

func TestParseAliasAsWithoutIdentifierIsSyntaxError(t *testing.T) {
	p, err := simdsql.NewParser()
	require.NoError(t, err)
	_, err = p.Parse("select a AS from t")
	require.Error(t, err)
}

func TestParseDeterministic(t *testing.T) {
	p1, _ := simdsql.NewParser()
	p2, _ := simdsql.NewParser()
	a, err := p1.Parse("select a.b, f(x,y) z from t where a > 1")
	require.NoError(t, err)
	b, err := p2.Parse("select a.b, f(x,y) z from t where a > 1")
	require.NoError(t, err)

	require.Empty(t, cmp.Diff(a, b))
}

func TestParseInvalidUTF8(t *testing.T) {
	p, err := simdsql.NewParser()
	require.NoError(t, err)
	_, err = p.Parse("select * from a\xff\xfe")
	require.Error(t, err)
	perr, ok := err.(*simdsql.Error)
	require.True(t, ok)
	require.Equal(t, simdsql.ErrInvalidUTF8, perr.Kind)
}
