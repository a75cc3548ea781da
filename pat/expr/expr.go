// Package expr is the lowered form of a parsed pattern: a closed set of
// expression variants that both render to source text and evaluate against
// an entropy source.
//
// The rendered text is the emitted mini-expression language shown to the
// user; Eval interprets the same tree, so the two sides cannot drift apart.
package expr

// Expr is one lowered expression. The variant set is closed; Render and
// Eval switch over it exhaustively.
type Expr interface {
	expr()
}

// Text evaluates to a fixed string.
type Text struct {
	S string
}

// CharDraw evaluates to one character whose code point is drawn uniformly
// from the half-open range [Min, Max).
type CharDraw struct {
	Min, Max int
}

// DigitsDraw evaluates to the decimal rendering of an integer drawn
// uniformly from the half-open range [Min, Max).
type DigitsDraw struct {
	Min, Max int
}

// Sample evaluates to one character chosen uniformly from Set.
type Sample struct {
	Set string
}

// Repeat evaluates Sub N times independently and concatenates the results.
// Lowering never produces N < 2: a single instance lowers to the bare
// sub-expression instead.
type Repeat struct {
	N   int
	Sub Expr
}

// Concat evaluates each sub-expression in order and concatenates.
type Concat struct {
	Subs []Expr
}

// Pick evaluates exactly one sub-expression, chosen uniformly.
type Pick struct {
	Subs []Expr
}

func (*Text) expr()       {}
func (*CharDraw) expr()   {}
func (*DigitsDraw) expr() {}
func (*Sample) expr()     {}
func (*Repeat) expr()     {}
func (*Concat) expr()     {}
func (*Pick) expr()       {}
