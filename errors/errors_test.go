package errors

import (
	"testing"
)

func TestSentinelIdentity(t *testing.T) {
	wrapped := Wrap(ErrEmptyChoice, "while generating group")

	if !Is(wrapped, ErrEmptyChoice) {
		t.Error("wrapped ErrEmptyChoice should satisfy Is(ErrEmptyChoice)")
	}
	if Is(wrapped, ErrEmptySampleSet) {
		t.Error("wrapped ErrEmptyChoice should not satisfy Is(ErrEmptySampleSet)")
	}
}

func TestIsEvaluationError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"empty choice", ErrEmptyChoice, true},
		{"empty sample set wrapped", Wrap(ErrEmptySampleSet, "sample()"), true},
		{"invalid pattern", ErrInvalidPattern, false},
		{"plain error", New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsEvaluationError(tt.err); got != tt.want {
				t.Errorf("IsEvaluationError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewInvalidPatternError(t *testing.T) {
	err := NewInvalidPatternError("bad token at offset %d", 7)

	if !IsInvalidPatternError(err) {
		t.Error("NewInvalidPatternError result should satisfy IsInvalidPatternError")
	}
	if got := err.Error(); got == "" {
		t.Error("formatted message should not be empty")
	}
}

func TestHintsSurviveWrapping(t *testing.T) {
	err := WithHint(New("pattern rejected"), "escape the quote with a backslash")
	err = Wrap(err, "compile")

	hints := GetAllHints(err)
	if len(hints) != 1 || hints[0] != "escape the quote with a backslash" {
		t.Errorf("GetAllHints() = %v, want the original hint", hints)
	}
}
