package entropy

import (
	"strings"
	"testing"
)

func TestCryptoIntRangeBounds(t *testing.T) {
	src := NewCrypto()

	for i := 0; i < 1000; i++ {
		got := src.IntRange(32, 127)
		if got < 32 || got >= 127 {
			t.Fatalf("IntRange(32, 127) = %d, out of range", got)
		}
	}
}

func TestCryptoIntRangeSingleValue(t *testing.T) {
	src := NewCrypto()

	// Width-1 range has only one possible draw.
	for i := 0; i < 100; i++ {
		if got := src.IntRange(7, 8); got != 7 {
			t.Fatalf("IntRange(7, 8) = %d, want 7", got)
		}
	}
}

func TestCryptoIntRangeCoversRange(t *testing.T) {
	src := NewCrypto()

	seen := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		seen[src.IntRange(0, 4)] = true
	}
	for v := 0; v < 4; v++ {
		if !seen[v] {
			t.Errorf("IntRange(0, 4) never produced %d in 2000 draws", v)
		}
	}
}

func TestSampleOneMembership(t *testing.T) {
	src := NewCrypto()
	set := "abcxyz"

	for i := 0; i < 500; i++ {
		b := SampleOne(src, set)
		if !strings.ContainsRune(set, rune(b)) {
			t.Fatalf("SampleOne returned %q, not in set %q", b, set)
		}
	}
}

func TestFixedReplaysScript(t *testing.T) {
	src := &Fixed{Draws: []int{0, 1, 2}}

	got := []int{
		src.IntRange(10, 20),
		src.IntRange(10, 20),
		src.IntRange(10, 20),
		src.IntRange(10, 20), // cycles back to the first draw
	}
	want := []int{10, 11, 12, 10}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("draw %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestFixedFoldsIntoRange(t *testing.T) {
	src := &Fixed{Draws: []int{25}}

	if got := src.IntRange(0, 10); got != 5 {
		t.Errorf("IntRange(0, 10) with draw 25 = %d, want 5", got)
	}
}

func TestFixedEmptyScriptReturnsMin(t *testing.T) {
	src := &Fixed{}

	if got := src.IntRange(42, 100); got != 42 {
		t.Errorf("IntRange with empty script = %d, want 42", got)
	}
}
