package ast

import (
	"strconv"
	"strings"

	"github.com/sbvh/patmint/entropy"
	"github.com/sbvh/patmint/errors"
)

// GenerateOne produces one atomic instance of a node's output, not yet
// repeated. Pure with respect to program state; impure with respect to the
// entropy source.
func GenerateOne(n Node, src entropy.Source) (string, error) {
	switch x := n.(type) {
	case *Literal:
		return x.Text, nil
	case *Any:
		return string(rune(src.IntRange(32, 127))), nil
	case *Alpha:
		if x.Upper {
			return string(rune(src.IntRange('A', 'Z'+1))), nil
		}
		return string(rune(src.IntRange('a', 'z'+1))), nil
	case *Numeric:
		return string(rune(src.IntRange('0', '9'+1))), nil
	case *Symbol:
		return string(entropy.SampleOne(src, Symbols)), nil
	case *BasicSymbol:
		return string(entropy.SampleOne(src, BasicSymbols)), nil
	case *SampleSet:
		if len(x.Chars) == 0 {
			return "", errors.Wrap(errors.ErrEmptySampleSet, "sample set node")
		}
		return string(entropy.SampleOne(src, x.Chars)), nil
	case *Range:
		return strconv.Itoa(src.IntRange(x.Start, x.End)), nil
	case *ASCIIRange:
		return string(rune(src.IntRange(x.Lo, x.Hi))), nil
	case *Group:
		if x.Sequential {
			return processAll(x.Children, src)
		}
		if len(x.Children) == 0 {
			return "", errors.Wrap(errors.ErrEmptyChoice, "choice group node")
		}
		return Process(x.Children[src.IntRange(0, len(x.Children))], src)
	case *Root:
		return processAll(x.Children, src)
	default:
		return "", errors.AssertionFailedf("ast: unknown node %T", n)
	}
}

// Process generates a node's full output: GenerateOne repeated Repeat()
// times, concatenated. This is the derived operation defined once over the
// whole taxonomy, not re-specified per variant.
func Process(n Node, src entropy.Source) (string, error) {
	rc := n.Repeat()
	if rc == 1 {
		return GenerateOne(n, src)
	}
	var b strings.Builder
	for i := 0; i < rc; i++ {
		s, err := GenerateOne(n, src)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	return b.String(), nil
}

// processAll concatenates the full repeated output of each child in order.
func processAll(children []Node, src entropy.Source) (string, error) {
	var b strings.Builder
	for _, c := range children {
		s, err := Process(c, src)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	return b.String(), nil
}
