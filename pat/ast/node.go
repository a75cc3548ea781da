// Package ast defines the generator node tree a parsed pattern compiles to.
//
// Each node knows how to produce one instance of its governed randomness
// (GenerateOne) and how to lower itself to an equivalent expression
// (Lower). Process is the repeat-aware form, defined once over all
// variants.
package ast

// Character sets for the symbol node variants.
const (
	// Symbols is the full punctuation set drawn by '@'.
	Symbols = `!@#$%^&*()_+-=[]{}|;:'",.<>?`

	// BasicSymbols is the reduced set drawn by '$'.
	BasicSymbols = `!@#$%^&*?`
)

// Node is one unit of the parsed tree.
//
// The variant set is closed: Literal, Any, Alpha, Numeric, Symbol,
// BasicSymbol, SampleSet, Range, ASCIIRange, Group, and Root. GenerateOne
// and Lower switch over it exhaustively.
type Node interface {
	// Repeat returns how many independent instances of the node's atomic
	// output are concatenated by Process. Always >= 1.
	Repeat() int

	// SetRepeat records the repeat count from the pattern's <n> modifier.
	// It may be called at most once per node; the second call reports
	// false and leaves the count unchanged.
	SetRepeat(n int) bool

	isNode()
}

// mod carries the repeat modifier shared by every node variant.
type mod struct {
	n   int
	set bool
}

func (m *mod) Repeat() int {
	if m.n < 1 {
		return 1
	}
	return m.n
}

func (m *mod) SetRepeat(n int) bool {
	if m.set {
		return false
	}
	m.n = n
	m.set = true
	return true
}

func (m *mod) isNode() {}

// Literal emits its text verbatim.
type Literal struct {
	mod
	Text string
}

// Any emits one random ASCII character with code in [32, 127).
type Any struct {
	mod
}

// Alpha emits one random letter, a-z or A-Z depending on Upper.
type Alpha struct {
	mod
	Upper bool
}

// Numeric emits one random decimal digit.
type Numeric struct {
	mod
}

// Symbol emits one random character from the full punctuation set.
type Symbol struct {
	mod
}

// BasicSymbol emits one random character from the reduced symbol set.
type BasicSymbol struct {
	mod
}

// SampleSet emits one character chosen uniformly from Chars.
type SampleSet struct {
	mod
	Chars string
}

// Range emits a random integer rendered as decimal text. End is stored
// exclusive; construct through NewRange with inclusive bounds.
type Range struct {
	mod
	Start, End int
}

// NewRange builds a Range from inclusive bounds.
func NewRange(start, end int) *Range {
	return &Range{Start: start, End: end + 1}
}

// ASCIIRange emits one character whose code point lies between two given
// characters, inclusive. The bounds are converted to code points at
// construction; generation draws like Range and decodes the number back
// to a character. Hi is stored exclusive.
type ASCIIRange struct {
	mod
	Lo, Hi int
}

// NewASCIIRange builds an ASCIIRange from two inclusive bound characters.
func NewASCIIRange(lo, hi rune) *ASCIIRange {
	return &ASCIIRange{Lo: int(lo), Hi: int(hi) + 1}
}

// Group owns an ordered list of children. Sequential groups concatenate
// each child's full repeated output in order; choice groups generate
// exactly one child's output per instance, chosen uniformly.
type Group struct {
	mod
	Children   []Node
	Sequential bool
}

// Root is the top of every parse: a group that is always sequential.
type Root struct {
	mod
	Children []Node
}
