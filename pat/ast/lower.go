package ast

import (
	"github.com/sbvh/patmint/pat/expr"
)

// Lower translates a node into an expression that reproduces its random
// behavior, repetition included. A repeat count of 1 lowers to the bare
// atomic expression, never a one-iteration repeat() — the emitted form
// stays minimal for the common case.
func Lower(n Node) expr.Expr {
	e := lowerOne(n)
	if rc := n.Repeat(); rc > 1 {
		return &expr.Repeat{N: rc, Sub: e}
	}
	return e
}

// lowerOne lowers the atomic (unrepeated) form of a node.
func lowerOne(n Node) expr.Expr {
	switch x := n.(type) {
	case *Literal:
		return &expr.Text{S: x.Text}
	case *Any:
		return &expr.CharDraw{Min: 32, Max: 127}
	case *Alpha:
		if x.Upper {
			return &expr.CharDraw{Min: 'A', Max: 'Z' + 1}
		}
		return &expr.CharDraw{Min: 'a', Max: 'z' + 1}
	case *Numeric:
		return &expr.CharDraw{Min: '0', Max: '9' + 1}
	case *Symbol:
		return &expr.Sample{Set: Symbols}
	case *BasicSymbol:
		return &expr.Sample{Set: BasicSymbols}
	case *SampleSet:
		return &expr.Sample{Set: x.Chars}
	case *Range:
		return &expr.DigitsDraw{Min: x.Start, Max: x.End}
	case *ASCIIRange:
		return &expr.CharDraw{Min: x.Lo, Max: x.Hi}
	case *Group:
		if x.Sequential {
			return lowerSequence(x.Children)
		}
		subs := make([]expr.Expr, len(x.Children))
		for i, c := range x.Children {
			subs[i] = Lower(c)
		}
		return &expr.Pick{Subs: subs}
	case *Root:
		return lowerSequence(x.Children)
	default:
		// The variant set is closed; reaching here is a programming error.
		return &expr.Text{}
	}
}

// lowerSequence lowers an ordered child list to a concatenation, collapsing
// the trivial shapes: no children render as the empty string, a single
// child renders bare.
func lowerSequence(children []Node) expr.Expr {
	switch len(children) {
	case 0:
		return &expr.Text{}
	case 1:
		return Lower(children[0])
	}
	subs := make([]expr.Expr, len(children))
	for i, c := range children {
		subs[i] = Lower(c)
	}
	return &expr.Concat{Subs: subs}
}
