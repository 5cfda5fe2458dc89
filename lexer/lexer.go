// Package lexer implements the tokenizer: a byte-at-a-time dispatch loop
// whose whitespace, digit and identifier scans advance in 8-byte windows
// on platforms with wide SIMD registers (the whitespace window is tested
// with a word-at-a-time SWAR bitmask), falling back to a scalar byte loop
// everywhere else. Both paths are required to produce byte-identical
// token tables; the scalar path is the oracle.
package lexer

import (
	"golang.org/x/sys/cpu"

	"github.com/oarkflow/simdsql/charclass"
	"github.com/oarkflow/simdsql/keyword"
	"github.com/oarkflow/simdsql/token"
)

// Error is the lexer's half of the error taxonomy: a span that cannot be
// mapped to any token form. The current scanners never return it —
// unrecognized bytes become token.Unknown instead — but it is retained
// as part of the public contract for a future stricter mode.
type Error struct {
	Start, End int
}

func (e *Error) Error() string { return "invalid token" }

// Lexer scans a single UTF-8 source buffer into a token.Table. It carries
// no state beyond the cursor and is not safe for concurrent use by
// multiple goroutines against the same instance; construct one per parse.
type Lexer struct {
	src  []byte
	pos  int
	kw   *keyword.Matcher
	wide bool
}

// New constructs a Lexer over src using kw for keyword recognition. wide
// is decided once from runtime CPU feature detection: AVX2 or SSE4.2
// enables the word-at-a-time scanning paths, matching the reference
// lexer's avx2/sse4.2/scalar three-way dispatch collapsed to a two-way
// wide/scalar split (Go has no portable intrinsic-SIMD surface without
// per-architecture assembly).
func New(src []byte, kw *keyword.Matcher) *Lexer {
	return &Lexer{src: src, kw: kw, wide: cpu.X86.HasAVX2 || cpu.X86.HasSSE42}
}

// NewForced constructs a Lexer with the wide/scalar choice pinned
// explicitly, bypassing runtime feature detection. It exists for the
// differential SIMD-vs-scalar parity test the design notes call for:
// the scalar path is the oracle, and this lets a test exercise the wide
// path on hardware that may not actually have AVX2/SSE4.2.
func NewForced(src []byte, kw *keyword.Matcher, wide bool) *Lexer {
	return &Lexer{src: src, kw: kw, wide: wide}
}

// Tokenize runs the lexer to completion and returns the resulting table.
func Tokenize(src []byte, kw *keyword.Matcher) (*token.Table, error) {
	l := New(src, kw)
	return l.Run()
}

// Run drives the top-level scan loop to end of input.
func (l *Lexer) Run() (*token.Table, error) {
	tbl := token.WithCapacity(len(l.src) / 4)
	for {
		l.pos = l.skipWhitespace(l.pos)
		if l.pos >= len(l.src) {
			return tbl, nil
		}
		b := l.src[l.pos]
		switch {
		case charclass.IsQuote(b):
			kind, start, end, next := l.scanString(l.pos, b)
			tbl.Push(kind, start, end)
			l.pos = next
		case charclass.IsDigit(b):
			kind, start, end, next := l.scanNumber(l.pos)
			tbl.Push(kind, start, end)
			l.pos = next
		case charclass.IsIdentByte(b):
			kind, start, end, next := l.scanIdentifier(l.pos)
			tbl.Push(kind, start, end)
			l.pos = next
		default:
			kind, start, end, next := l.scanSymbol(l.pos)
			tbl.Push(kind, start, end)
			l.pos = next
		}
	}
}

const swarWindow = 8

// splat replicates byte b into every lane of a uint64 word.
func splat(b byte) uint64 { return 0x0101010101010101 * uint64(b) }

// hasZeroByte detects, in O(1), whether any of the 8 bytes packed into v
// is zero, setting the high bit of exactly the zero lanes. This is the
// SWAR bit trick substituting for a lane-wide SIMD equality test: XOR the
// word against a splatted target byte first, then a zero byte marks a
// match. The per-lane add cannot carry across lanes, so no lane is
// flagged because of its neighbour.
func hasZeroByte(v uint64) uint64 {
	const lo7 = 0x7f7f7f7f7f7f7f7f
	return ^(((v & lo7) + lo7) | v | lo7)
}

// le64 packs 8 bytes little-endian into a uint64.
func le64(b []byte) uint64 {
	var v uint64
	for i := 0; i < 8; i++ {
		v |= uint64(b[i]) << (8 * i)
	}
	return v
}

// skipWhitespace advances pos past a run of whitespace bytes, testing
// 8-byte windows at a time when wide is set and falling back to a scalar
// byte loop for the remainder (spec calls for 32- and 16-byte SIMD
// windows; 8-byte uint64 SWAR windows are the assembly-free Go
// equivalent here).
func (l *Lexer) skipWhitespace(pos int) int {
	src := l.src
	if l.wide {
		for pos+swarWindow <= len(src) && isAllWhitespace(src[pos:pos+swarWindow]) {
			pos += swarWindow
		}
	}
	for pos < len(src) && charclass.IsWhitespace(src[pos]) {
		pos++
	}
	return pos
}

// isAllWhitespace reports whether every byte of an 8-byte window is
// whitespace, using four parallel hasZeroByte probes OR'd together per
// lane and requiring every lane's high bit set.
func isAllWhitespace(window []byte) bool {
	word := le64(window)
	isWS := func(target byte) uint64 { return hasZeroByte(word ^ splat(target)) }
	combined := isWS(' ') | isWS('\t') | isWS('\r') | isWS('\n')
	return combined == 0x8080808080808080
}

// scanNumber greedily consumes a digit run starting at pos. end is
// inclusive at the last digit.
func (l *Lexer) scanNumber(pos int) (token.Kind, int, int, int) {
	start := pos
	end := l.digitRunEnd(pos)
	return token.Number, start, end, end + 1
}

// digitRunEnd returns the inclusive index of the last digit in a run
// starting at pos, batching 8 bytes at a time when wide.
func (l *Lexer) digitRunEnd(pos int) int {
	src := l.src
	if l.wide {
		for pos+swarWindow <= len(src) && allDigits(src[pos:pos+swarWindow]) {
			pos += swarWindow
		}
	}
	for pos < len(src) && charclass.IsDigit(src[pos]) {
		pos++
	}
	return pos - 1
}

// allDigits reports whether every byte in an 8-byte window is 0-9.
func allDigits(window []byte) bool {
	for _, b := range window {
		if !charclass.IsDigit(b) {
			return false
		}
	}
	return true
}

// scanIdentifier greedily consumes an ALP run (letters, underscore,
// digits as continuation) then consults the keyword matcher on the run
// bytes, substituting Keyword(K) on a hit.
func (l *Lexer) scanIdentifier(pos int) (token.Kind, int, int, int) {
	start := pos
	end := pos
	src := l.src
	if l.wide {
		for end+swarWindow <= len(src) && allIdentBytes(src[end:end+swarWindow]) {
			end += swarWindow
		}
	}
	for end < len(src) && charclass.IsIdentByte(src[end]) {
		end++
	}
	last := end - 1
	if k, ok := l.kw.Match(src[start:end]); ok {
		return k, start, last, end
	}
	return token.Identifier, start, last, end
}

// allIdentBytes reports whether every byte of an 8-byte window is a
// letter, underscore, or digit.
func allIdentBytes(window []byte) bool {
	for _, b := range window {
		if !charclass.IsIdentByte(b) {
			return false
		}
	}
	return true
}

// scanString finds the next quote byte at or after pos+1 whose
// immediately preceding byte is not a backslash, per the reference
// lexer's escape check: a quote preceded by '\' is skipped rather than
// treated as the terminator. Two consecutive backslashes (\\) therefore
// still shield the quote that follows them, since only the single byte
// directly before the quote is examined — this is the simple scalar
// check from the design notes, not the branchless odd/even-run variant.
// An unterminated string runs to end of input and is reported as
// Unknown.
func (l *Lexer) scanString(pos int, quote byte) (token.Kind, int, int, int) {
	start := pos
	src := l.src
	for i := pos + 1; i < len(src); i++ {
		if src[i] == quote && src[i-1] != '\\' {
			return token.StringLiteral, start, i, i + 1
		}
	}
	return token.Unknown, start, len(src) - 1, len(src)
}

// scanSymbol dispatches on the byte at pos, handling multi-byte
// punctuation (<=, <>, >=), ';' as Eof, a leading '-' on a digit as a
// single signed Number token, and all remaining single-byte forms.
func (l *Lexer) scanSymbol(pos int) (token.Kind, int, int, int) {
	src := l.src
	b := src[pos]
	var next byte
	if pos+1 < len(src) {
		next = src[pos+1]
	}
	switch b {
	case '<':
		switch next {
		case '=':
			return token.LessEqual, pos, pos + 1, pos + 2
		case '>':
			return token.NotEqual, pos, pos + 1, pos + 2
		default:
			return token.Less, pos, pos, pos + 1
		}
	case '>':
		if next == '=' {
			return token.GreaterEqual, pos, pos + 1, pos + 2
		}
		return token.Greater, pos, pos, pos + 1
	case ';':
		return token.Eof, pos, pos, pos + 1
	case '-':
		if charclass.IsDigit(next) {
			end := l.digitRunEnd(pos + 1)
			return token.Number, pos, end, end + 1
		}
		return token.Subtract, pos, pos, pos + 1
	case '.':
		return token.Dot, pos, pos, pos + 1
	case '(':
		return token.LeftParen, pos, pos, pos + 1
	case ')':
		return token.RightParen, pos, pos, pos + 1
	case '\\':
		return token.BackSlash, pos, pos, pos + 1
	case ',':
		return token.Comma, pos, pos, pos + 1
	case '=':
		return token.Equal, pos, pos, pos + 1
	case '+':
		return token.Plus, pos, pos, pos + 1
	case '*':
		return token.Multiply, pos, pos, pos + 1
	case '/':
		return token.Divide, pos, pos, pos + 1
	case '%':
		return token.Mod, pos, pos, pos + 1
	default:
		return token.Unknown, pos, pos, pos + 1
	}
}
