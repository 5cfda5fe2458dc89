// Package keyword implements the two-tier keyword matcher: an O(1) direct
// table for 2-byte keywords and a sorted packed-integer array for
// keywords of length 3-7, both probed under ASCII case folding.
package keyword

import (
	"sort"

	"github.com/oarkflow/simdsql/token"
)

// all lists the 40 reserved words in token.Kind order; New sorts them
// into the two-byte and 3-7 byte tiers by length.
var all = []struct {
	word string
	kind token.Kind
}{
	{"SELECT", token.KeywordSelect},
	{"FROM", token.KeywordFrom},
	{"WHERE", token.KeywordWhere},
	{"INSERT", token.KeywordInsert},
	{"INTO", token.KeywordInto},
	{"VALUES", token.KeywordValues},
	{"UPDATE", token.KeywordUpdate},
	{"SET", token.KeywordSet},
	{"DELETE", token.KeywordDelete},
	{"CREATE", token.KeywordCreate},
	{"TABLE", token.KeywordTable},
	{"DROP", token.KeywordDrop},
	{"ALTER", token.KeywordAlter},
	{"ADD", token.KeywordAdd},
	{"JOIN", token.KeywordJoin},
	{"ON", token.KeywordOn},
	{"AS", token.KeywordAs},
	{"AND", token.KeywordAnd},
	{"OR", token.KeywordOr},
	{"NOT", token.KeywordNot},
	{"NULL", token.KeywordNull},
	{"IS", token.KeywordIs},
	{"IN", token.KeywordIn},
	{"LIKE", token.KeywordLike},
	{"ORDER", token.KeywordOrder},
	{"BY", token.KeywordBy},
	{"GROUP", token.KeywordGroup},
	{"HAVING", token.KeywordHaving},
	{"LIMIT", token.KeywordLimit},
	{"OFFSET", token.KeywordOffset},
	{"DISTINCT", token.KeywordDistinct},
	{"UNION", token.KeywordUnion},
	{"ALL", token.KeywordAll},
	{"EXISTS", token.KeywordExists},
	{"BETWEEN", token.KeywordBetween},
	{"CASE", token.KeywordCase},
	{"WHEN", token.KeywordWhen},
	{"THEN", token.KeywordThen},
	{"ELSE", token.KeywordElse},
	{"END", token.KeywordEnd},
}

// Matcher recognizes ASCII keyword bytes under case folding. It holds no
// mutable state after construction and is safe for concurrent read-only
// use by multiple parsers.
type Matcher struct {
	twoChar [65536]token.Kind // indexed by (upper(b0)<<8)|upper(b1); zero value means "no keyword"
	keys    []uint64          // sorted, little-endian packed uppercased bytes, length 3-7
	kinds   []token.Kind      // parallel to keys
}

// New builds a Matcher from the fixed 40-keyword set. Only keywords
// of length 2 and of length 3-7 are indexed, matching the reference
// matcher exactly: an 8-byte keyword such as DISTINCT falls outside both
// tiers and is never recognized by Match, so callers that need it intact
// (for example a SELECT DISTINCT clause) must test its identifier text
// directly rather than relying on keyword classification.
func New() *Matcher {
	m := &Matcher{}
	type packed struct {
		key  uint64
		kind token.Kind
	}
	var short []packed
	for _, e := range all {
		switch {
		case len(e.word) == 2:
			idx := (uint16(e.word[0]) << 8) | uint16(e.word[1])
			m.twoChar[idx] = e.kind
		case len(e.word) > 2 && len(e.word) < 8:
			short = append(short, packed{key: packShort(e.word), kind: e.kind})
		}
	}
	sort.Slice(short, func(i, j int) bool { return short[i].key < short[j].key })
	for _, p := range short {
		m.keys = append(m.keys, p.key)
		m.kinds = append(m.kinds, p.kind)
	}
	return m
}

// Match looks up the given ASCII identifier bytes (already required to
// be alphabetic/underscore/digit run bytes by the caller) and returns
// the matching keyword kind and true on a hit.
func (m *Matcher) Match(word []byte) (token.Kind, bool) {
	switch {
	case len(word) == 2:
		idx := (uint16(toUpper(word[0])) << 8) | uint16(toUpper(word[1]))
		if k := m.twoChar[idx]; k != token.Unknown {
			return k, true
		}
		return token.Unknown, false
	case len(word) > 2 && len(word) < 8:
		key := packShortUpper(word)
		i := sort.Search(len(m.keys), func(i int) bool { return m.keys[i] >= key })
		if i < len(m.keys) && m.keys[i] == key {
			return m.kinds[i], true
		}
		return token.Unknown, false
	default:
		return token.Unknown, false
	}
}

func toUpper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 32
	}
	return b
}

// packShort packs an already-uppercase ASCII literal (used only for the
// fixed keyword table at build time) little-endian into a uint64.
func packShort(s string) uint64 {
	var v uint64
	for i := 0; i < len(s); i++ {
		v |= uint64(s[i]) << (8 * i)
	}
	return v
}

// packShortUpper uppercases each byte of word and packs it little-endian
// into a uint64, mirroring packShort for runtime probes.
func packShortUpper(word []byte) uint64 {
	var v uint64
	for i, b := range word {
		v |= uint64(toUpper(b)) << (8 * i)
	}
	return v
}
