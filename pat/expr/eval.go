package expr

import (
	"strconv"
	"strings"

	"github.com/sbvh/patmint/entropy"
	"github.com/sbvh/patmint/errors"
)

// Eval interprets an expression against the given entropy source.
//
// Faults are values: evaluating pick() over an empty choice or sample("")
// over an empty set returns an error instead of drawing from an empty
// range. Callers decide whether a fault ends the turn (the compiler
// converts it into displayed text).
func Eval(e Expr, src entropy.Source) (string, error) {
	switch x := e.(type) {
	case *Text:
		return x.S, nil
	case *CharDraw:
		return string(rune(src.IntRange(x.Min, x.Max))), nil
	case *DigitsDraw:
		return strconv.Itoa(src.IntRange(x.Min, x.Max)), nil
	case *Sample:
		if len(x.Set) == 0 {
			return "", errors.Wrap(errors.ErrEmptySampleSet, "sample()")
		}
		return string(entropy.SampleOne(src, x.Set)), nil
	case *Repeat:
		var b strings.Builder
		for i := 0; i < x.N; i++ {
			s, err := Eval(x.Sub, src)
			if err != nil {
				return "", err
			}
			b.WriteString(s)
		}
		return b.String(), nil
	case *Concat:
		var b strings.Builder
		for _, sub := range x.Subs {
			s, err := Eval(sub, src)
			if err != nil {
				return "", err
			}
			b.WriteString(s)
		}
		return b.String(), nil
	case *Pick:
		if len(x.Subs) == 0 {
			return "", errors.Wrap(errors.ErrEmptyChoice, "pick()")
		}
		return Eval(x.Subs[src.IntRange(0, len(x.Subs))], src)
	default:
		return "", errors.AssertionFailedf("expr: unknown expression %T", e)
	}
}
