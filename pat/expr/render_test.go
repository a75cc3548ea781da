package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		e    Expr
		want string
	}{
		{
			name: "text",
			e:    &Text{S: "abc"},
			want: `"abc"`,
		},
		{
			name: "char draw",
			e:    &CharDraw{Min: 32, Max: 127},
			want: "char(randInt(32, 127))",
		},
		{
			name: "digits draw",
			e:    &DigitsDraw{Min: 1, Max: 6},
			want: "str(randInt(1, 6))",
		},
		{
			name: "sample",
			e:    &Sample{Set: "abc"},
			want: `sample("abc")`,
		},
		{
			name: "repeat wraps sub",
			e:    &Repeat{N: 3, Sub: &Sample{Set: "abc"}},
			want: `repeat(3, sample("abc"))`,
		},
		{
			name: "concat",
			e:    &Concat{Subs: []Expr{&Text{S: "id-"}, &DigitsDraw{Min: 0, Max: 10}}},
			want: `concat("id-", str(randInt(0, 10)))`,
		},
		{
			name: "pick",
			e:    &Pick{Subs: []Expr{&CharDraw{Min: 97, Max: 123}, &CharDraw{Min: 48, Max: 58}}},
			want: "pick(char(randInt(97, 123)), char(randInt(48, 58)))",
		},
		{
			name: "empty pick",
			e:    &Pick{},
			want: "pick()",
		},
		{
			name: "nested",
			e: &Concat{Subs: []Expr{
				&Repeat{N: 2, Sub: &Pick{Subs: []Expr{&Text{S: "x"}, &Text{S: "y"}}}},
				&Text{S: "!"},
			}},
			want: `concat(repeat(2, pick("x", "y")), "!")`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.e))
		})
	}
}

func TestQuoteEscaping(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`abc`, `"abc"`},
		{`a"b`, `"a\"b"`},
		{`a\b`, `"a\\b"`},
		{`\"`, `"\\\""`},
		{``, `""`},
		// Only backslash and double quote are escaped.
		{"tab\tand 'quote'", "\"tab\tand 'quote'\""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Quote(tt.in))
	}
}

func TestRenderSymbolSetEscaping(t *testing.T) {
	// The full punctuation set contains a double quote; the rendered
	// sample set must escape it and nothing else.
	e := &Sample{Set: `!@#$%^&*()_+-=[]{}|;:'",.<>?`}
	assert.Equal(t, `sample("!@#$%^&*()_+-=[]{}|;:'\",.<>?")`, Render(e))
}
