package ast

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbvh/patmint/entropy"
	"github.com/sbvh/patmint/errors"
)

func TestRepeatDefaultsToOne(t *testing.T) {
	n := &Literal{Text: "x"}
	assert.Equal(t, 1, n.Repeat())
}

func TestSetRepeatOnlyOnce(t *testing.T) {
	n := &Numeric{}

	require.True(t, n.SetRepeat(4))
	assert.Equal(t, 4, n.Repeat())

	assert.False(t, n.SetRepeat(9))
	assert.Equal(t, 4, n.Repeat(), "second SetRepeat must leave the count unchanged")
}

func TestGenerateOneLiteral(t *testing.T) {
	got, err := GenerateOne(&Literal{Text: "abc"}, &entropy.Fixed{})
	require.NoError(t, err)
	assert.Equal(t, "abc", got)
}

func TestGenerateOneAnyBounds(t *testing.T) {
	src := entropy.NewCrypto()

	for i := 0; i < 500; i++ {
		got, err := GenerateOne(&Any{}, src)
		require.NoError(t, err)
		require.Len(t, got, 1)
		c := got[0]
		assert.GreaterOrEqual(t, c, byte(32))
		assert.Less(t, c, byte(127))
	}
}

func TestGenerateOneAlpha(t *testing.T) {
	src := entropy.NewCrypto()

	for i := 0; i < 200; i++ {
		lower, err := GenerateOne(&Alpha{}, src)
		require.NoError(t, err)
		assert.True(t, lower[0] >= 'a' && lower[0] <= 'z', "got %q", lower)

		upper, err := GenerateOne(&Alpha{Upper: true}, src)
		require.NoError(t, err)
		assert.True(t, upper[0] >= 'A' && upper[0] <= 'Z', "got %q", upper)
	}
}

func TestGenerateOneNumeric(t *testing.T) {
	src := &entropy.Fixed{Draws: []int{0, 9}}

	got, err := GenerateOne(&Numeric{}, src)
	require.NoError(t, err)
	assert.Equal(t, "0", got)

	got, err = GenerateOne(&Numeric{}, src)
	require.NoError(t, err)
	assert.Equal(t, "9", got)
}

func TestGenerateOneSymbolSets(t *testing.T) {
	src := entropy.NewCrypto()

	for i := 0; i < 200; i++ {
		full, err := GenerateOne(&Symbol{}, src)
		require.NoError(t, err)
		assert.True(t, strings.Contains(Symbols, full), "%q not in full set", full)

		basic, err := GenerateOne(&BasicSymbol{}, src)
		require.NoError(t, err)
		assert.True(t, strings.Contains(BasicSymbols, basic), "%q not in basic set", basic)
	}
}

func TestGenerateOneSampleSet(t *testing.T) {
	src := &entropy.Fixed{Draws: []int{1}}

	got, err := GenerateOne(&SampleSet{Chars: "xyz"}, src)
	require.NoError(t, err)
	assert.Equal(t, "y", got)
}

func TestGenerateOneEmptySampleSetFaults(t *testing.T) {
	_, err := GenerateOne(&SampleSet{}, &entropy.Fixed{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrEmptySampleSet))
}

func TestRangeStoresExclusiveEnd(t *testing.T) {
	r := NewRange(1, 5)
	assert.Equal(t, 1, r.Start)
	assert.Equal(t, 6, r.End)
}

func TestRangeGeneratesInclusiveBounds(t *testing.T) {
	r := NewRange(1, 5)

	seen := make(map[string]bool)
	src := entropy.NewCrypto()
	for i := 0; i < 500; i++ {
		got, err := GenerateOne(r, src)
		require.NoError(t, err)
		seen[got] = true
	}
	for _, want := range []string{"1", "2", "3", "4", "5"} {
		assert.True(t, seen[want], "range never produced %s", want)
	}
	assert.Len(t, seen, 5)
}

func TestASCIIRange(t *testing.T) {
	r := NewASCIIRange('a', 'c')
	assert.Equal(t, int('a'), r.Lo)
	assert.Equal(t, int('c')+1, r.Hi)

	seen := make(map[string]bool)
	src := entropy.NewCrypto()
	for i := 0; i < 300; i++ {
		got, err := GenerateOne(r, src)
		require.NoError(t, err)
		seen[got] = true
	}
	assert.Equal(t, map[string]bool{"a": true, "b": true, "c": true}, seen)
}

func TestProcessRepeatsAndConcatenates(t *testing.T) {
	n := &SampleSet{Chars: "ab"}
	require.True(t, n.SetRepeat(3))

	src := &entropy.Fixed{Draws: []int{0, 1, 0}}
	got, err := Process(n, src)
	require.NoError(t, err)
	assert.Equal(t, "aba", got)
}

func TestProcessLengthIsDeterministic(t *testing.T) {
	// Output length depends only on repeat counts and literal sizes, never
	// on the draws themselves.
	n := &Group{
		Sequential: true,
		Children: []Node{
			&Literal{Text: "id-"},
			&Numeric{},
			&SampleSet{Chars: "xyz"},
		},
	}
	n.Children[2].SetRepeat(4)

	src := entropy.NewCrypto()
	for i := 0; i < 50; i++ {
		got, err := Process(n, src)
		require.NoError(t, err)
		assert.Len(t, got, len("id-")+1+4)
	}
}

func TestSequentialGroupConcatenatesInOrder(t *testing.T) {
	g := &Group{
		Sequential: true,
		Children:   []Node{&Literal{Text: "a"}, &Literal{Text: "b"}},
	}

	for i := 0; i < 10; i++ {
		got, err := Process(g, entropy.NewCrypto())
		require.NoError(t, err)
		assert.Equal(t, "ab", got)
	}
}

func TestChoiceGroupPicksExactlyOneChild(t *testing.T) {
	g := &Group{
		Children: []Node{&Alpha{}, &Numeric{}},
	}

	src := entropy.NewCrypto()
	for i := 0; i < 200; i++ {
		got, err := Process(g, src)
		require.NoError(t, err)
		require.Len(t, got, 1)
		c := got[0]
		isAlpha := c >= 'a' && c <= 'z'
		isDigit := c >= '0' && c <= '9'
		assert.True(t, isAlpha || isDigit, "got %q, want lowercase letter or digit", got)
	}
}

func TestChoiceGroupHonorsChildRepeat(t *testing.T) {
	child := &Numeric{}
	require.True(t, child.SetRepeat(3))
	g := &Group{Children: []Node{child}}

	got, err := Process(g, entropy.NewCrypto())
	require.NoError(t, err)
	assert.Len(t, got, 3, "chosen child's full repeated output is used")
}

func TestEmptyChoiceGroupFaults(t *testing.T) {
	_, err := Process(&Group{}, &entropy.Fixed{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrEmptyChoice))
}

func TestRootIsAlwaysSequential(t *testing.T) {
	r := &Root{Children: []Node{&Literal{Text: "x"}, &Literal{Text: "y"}}}

	got, err := Process(r, entropy.NewCrypto())
	require.NoError(t, err)
	assert.Equal(t, "xy", got)
}
