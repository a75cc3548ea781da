package entropy

// Fixed is a deterministic Source for tests. It replays the scripted draws
// in order, reducing each draw modulo the requested range width, and cycles
// back to the start when exhausted. An empty script always returns min.
type Fixed struct {
	Draws []int
	next  int
}

// IntRange returns the next scripted draw folded into [min, max).
func (f *Fixed) IntRange(min, max int) int {
	if len(f.Draws) == 0 {
		return min
	}
	d := f.Draws[f.next%len(f.Draws)]
	f.next++
	return min + d%(max-min)
}

// Reset rewinds the script to its first draw.
func (f *Fixed) Reset() {
	f.next = 0
}
