// Package sym defines canonical glyphs for patmint CLI output.
// These symbols are stable across the REPL, one-shot commands, and logs.
package sym

// Primary operation glyphs — each top-level command owns one.
const (
	Mint = "⟡" // mint — a freshly generated string
	Pat  = "≔" // pattern — the lowered source form of a pattern
	Repl = "❯" // repl — interactive prompt marker
	Am   = "≡" // am — configuration and system settings
)

// Building-block glyphs used inside messages.
const (
	OK   = "✓" // success marker
	Fail = "✗" // parse or generation failure
)

// Names maps each glyph to its canonical name, for logs and docs.
var Names = map[string]string{
	Mint: "mint",
	Pat:  "pattern",
	Repl: "repl",
	Am:   "am",
	OK:   "ok",
	Fail: "fail",
}

// Name returns the canonical name for a glyph, or "" if unknown.
func Name(glyph string) string {
	return Names[glyph]
}
