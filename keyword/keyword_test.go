package keyword_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oarkflow/simdsql/keyword"
	"github.com/oarkflow/simdsql/token"
)

func TestMatchTwoByteKeywords(t *testing.T) {
	m := keyword.New()
	k, ok := m.Match([]byte("AS"))
	require.True(t, ok)
	require.Equal(t, token.KeywordAs, k)

	k, ok = m.Match([]byte("as"))
	require.True(t, ok)
	require.Equal(t, token.KeywordAs, k)

	k, ok = m.Match([]byte("In"))
	require.True(t, ok)
	require.Equal(t, token.KeywordIn, k)
}

func TestMatchShortKeywords(t *testing.T) {
	m := keyword.New()
	cases := map[string]token.Kind{
		"SELECT":  token.KeywordSelect,
		"from":    token.KeywordFrom,
		"Where":   token.KeywordWhere,
		"group":   token.KeywordGroup,
		"having":  token.KeywordHaving,
		"BETWEEN": token.KeywordBetween,
	}
	for word, want := range cases {
		k, ok := m.Match([]byte(word))
		require.Truef(t, ok, "expected %q to match", word)
		require.Equal(t, want, k)
	}
}

func TestMatchRejectsNonKeywords(t *testing.T) {
	m := keyword.New()
	_, ok := m.Match([]byte("selectx"))
	require.False(t, ok)
	_, ok = m.Match([]byte("ab"))
	require.False(t, ok)
}

// DISTINCT is 8 bytes, one past the short matcher's 3-7 window, so it is
// never classified as a keyword: faithfully preserved from the reference
// matcher, which buckets only lengths 2 and 3-7.
func TestMatchDistinctIsUnreachable(t *testing.T) {
	m := keyword.New()
	_, ok := m.Match([]byte("DISTINCT"))
	require.False(t, ok)
}
