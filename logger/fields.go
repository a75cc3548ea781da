package logger

// Standard field names for consistent structured logging across patmint.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Components
	FieldComponent = "component"

	// Operations
	FieldOperation = "operation"
	FieldPattern   = "pattern"
	FieldSource    = "source"

	// Positions
	FieldOffset = "offset"

	// Timing
	FieldDurationMS = "duration_ms"

	// Errors
	FieldError = "error"

	// Counts and sizes
	FieldCount  = "count"
	FieldLength = "length"
	FieldRepeat = "repeat"

	// Symbols
	FieldSymbol = "symbol"
)
