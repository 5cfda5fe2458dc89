// Package token defines the closed token-kind enumeration and the columnar
// Token Table that the lexer writes into and the parser reads from.
package token

// Kind is the tag of a lexical token. The keyword kinds occupy a
// contiguous range starting at KeywordSelect so IsKeyword is a single
// range check instead of a second parallel array — the Token Table stays
// two sequences (kinds, positions), not three.
type Kind uint16

const (
	Unknown Kind = iota
	Eof           // ';' — statement terminator, not end-of-input
	Number
	StringLiteral
	Identifier
	Dot
	LeftParen
	RightParen
	BackSlash
	Comma
	Less
	LessEqual
	Greater
	GreaterEqual
	Equal
	NotEqual
	Plus
	Subtract
	Multiply
	Divide
	Mod

	KeywordSelect
	KeywordFrom
	KeywordWhere
	KeywordInsert
	KeywordInto
	KeywordValues
	KeywordUpdate
	KeywordSet
	KeywordDelete
	KeywordCreate
	KeywordTable
	KeywordDrop
	KeywordAlter
	KeywordAdd
	KeywordJoin
	KeywordOn
	KeywordAs
	KeywordAnd
	KeywordOr
	KeywordNot
	KeywordNull
	KeywordIs
	KeywordIn
	KeywordLike
	KeywordOrder
	KeywordBy
	KeywordGroup
	KeywordHaving
	KeywordLimit
	KeywordOffset
	KeywordDistinct
	KeywordUnion
	KeywordAll
	KeywordExists
	KeywordBetween
	KeywordCase
	KeywordWhen
	KeywordThen
	KeywordElse
	KeywordEnd

	keywordKindEnd // sentinel, not a valid token kind
)

// IsKeyword reports whether k is one of the 40 reserved-word kinds.
func (k Kind) IsKeyword() bool { return k >= KeywordSelect && k < keywordKindEnd }

var kindNames = map[Kind]string{
	Unknown:       "Unknown",
	Eof:           "Eof",
	Number:        "Number",
	StringLiteral: "StringLiteral",
	Identifier:    "Identifier",
	Dot:           "Dot",
	LeftParen:     "LeftParen",
	RightParen:    "RightParen",
	BackSlash:     "BackSlash",
	Comma:         "Comma",
	Less:          "Less",
	LessEqual:     "LessEqual",
	Greater:       "Greater",
	GreaterEqual:  "GreaterEqual",
	Equal:         "Equal",
	NotEqual:      "NotEqual",
	Plus:          "Plus",
	Subtract:      "Subtract",
	Multiply:      "Multiply",
	Divide:        "Divide",
	Mod:           "Mod",

	KeywordSelect:   "SELECT",
	KeywordFrom:     "FROM",
	KeywordWhere:    "WHERE",
	KeywordInsert:   "INSERT",
	KeywordInto:     "INTO",
	KeywordValues:   "VALUES",
	KeywordUpdate:   "UPDATE",
	KeywordSet:      "SET",
	KeywordDelete:   "DELETE",
	KeywordCreate:   "CREATE",
	KeywordTable:    "TABLE",
	KeywordDrop:     "DROP",
	KeywordAlter:    "ALTER",
	KeywordAdd:      "ADD",
	KeywordJoin:     "JOIN",
	KeywordOn:       "ON",
	KeywordAs:       "AS",
	KeywordAnd:      "AND",
	KeywordOr:       "OR",
	KeywordNot:      "NOT",
	KeywordNull:     "NULL",
	KeywordIs:       "IS",
	KeywordIn:       "IN",
	KeywordLike:     "LIKE",
	KeywordOrder:    "ORDER",
	KeywordBy:       "BY",
	KeywordGroup:    "GROUP",
	KeywordHaving:   "HAVING",
	KeywordLimit:    "LIMIT",
	KeywordOffset:   "OFFSET",
	KeywordDistinct: "DISTINCT",
	KeywordUnion:    "UNION",
	KeywordAll:      "ALL",
	KeywordExists:   "EXISTS",
	KeywordBetween:  "BETWEEN",
	KeywordCase:     "CASE",
	KeywordWhen:     "WHEN",
	KeywordThen:     "THEN",
	KeywordElse:     "ELSE",
	KeywordEnd:      "END",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}

// Span is an inclusive [Start, End] byte range into the source text.
// Single-byte tokens have Start == End.
type Span struct {
	Start int
	End   int
}

// Table is the columnar token table: two parallel ordered sequences,
// kinds and positions, indexed identically. The lexer is the table's only
// writer; the parser and AST only ever read it by index.
type Table struct {
	kinds     []Kind
	positions []Span
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{}
}

// WithCapacity returns an empty table preallocated for n tokens.
func WithCapacity(n int) *Table {
	return &Table{
		kinds:     make([]Kind, 0, n),
		positions: make([]Span, 0, n),
	}
}

// Push appends one token row and returns its index.
func (t *Table) Push(kind Kind, start, end int) int {
	t.kinds = append(t.kinds, kind)
	t.positions = append(t.positions, Span{Start: start, End: end})
	return len(t.kinds) - 1
}

// Len returns the number of rows in the table.
func (t *Table) Len() int { return len(t.kinds) }

// Kind returns the kind at row i and whether i is in range.
func (t *Table) Kind(i int) (Kind, bool) {
	if i < 0 || i >= len(t.kinds) {
		return Unknown, false
	}
	return t.kinds[i], true
}

// Position returns the span at row i and whether i is in range.
func (t *Table) Position(i int) (Span, bool) {
	if i < 0 || i >= len(t.positions) {
		return Span{}, false
	}
	return t.positions[i], true
}

// Entry returns both the kind and span at row i and whether i is in range.
func (t *Table) Entry(i int) (Kind, Span, bool) {
	k, ok := t.Kind(i)
	if !ok {
		return Unknown, Span{}, false
	}
	p, _ := t.Position(i)
	return k, p, true
}
