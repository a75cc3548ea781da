package expr

import (
	"fmt"
	"strings"
)

// Render returns the source text of an expression in the emitted
// mini-expression language:
//
//	"lit"
//	char(randInt(32, 127))
//	str(randInt(1, 6))
//	sample("abc")
//	repeat(3, sample("abc"))
//	concat("user-", str(randInt(1, 100)))
//	pick(char(randInt(97, 123)), char(randInt(48, 58)))
func Render(e Expr) string {
	var b strings.Builder
	render(&b, e)
	return b.String()
}

func render(b *strings.Builder, e Expr) {
	switch x := e.(type) {
	case *Text:
		b.WriteString(Quote(x.S))
	case *CharDraw:
		fmt.Fprintf(b, "char(randInt(%d, %d))", x.Min, x.Max)
	case *DigitsDraw:
		fmt.Fprintf(b, "str(randInt(%d, %d))", x.Min, x.Max)
	case *Sample:
		b.WriteString("sample(")
		b.WriteString(Quote(x.Set))
		b.WriteString(")")
	case *Repeat:
		fmt.Fprintf(b, "repeat(%d, ", x.N)
		render(b, x.Sub)
		b.WriteString(")")
	case *Concat:
		b.WriteString("concat(")
		for i, sub := range x.Subs {
			if i > 0 {
				b.WriteString(", ")
			}
			render(b, sub)
		}
		b.WriteString(")")
	case *Pick:
		b.WriteString("pick(")
		for i, sub := range x.Subs {
			if i > 0 {
				b.WriteString(", ")
			}
			render(b, sub)
		}
		b.WriteString(")")
	}
}

// Quote wraps s in double quotes, escaping backslashes and double quotes
// so the emitted text parses back to the identical character content.
// No other characters are escaped.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' || s[i] == '"' {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	b.WriteByte('"')
	return b.String()
}
