// Package pat is the pattern compiler: it parses pattern text, lowers the
// resulting tree to an expression, and runs that expression to mint a
// randomized string.
package pat

import (
	"time"

	"github.com/sbvh/patmint/entropy"
	"github.com/sbvh/patmint/errors"
	"github.com/sbvh/patmint/logger"
	"github.com/sbvh/patmint/pat/ast"
	"github.com/sbvh/patmint/pat/expr"
	"github.com/sbvh/patmint/pat/parser"
)

// Result is the outcome of one compile-and-run turn.
//
// OK reports whether the *parse* stage succeeded. An evaluation fault is
// non-fatal: the fault message replaces Output and OK stays true, so a REPL
// turn that parsed cleanly is never treated as a syntax failure.
type Result struct {
	// Source is the rendered expression the pattern lowered to.
	// Empty when the parse failed.
	Source string

	// Output is the evaluated string on success, the caught evaluation
	// fault message on a runtime fault, or the caret-annotated syntax
	// fault text on a parse failure.
	Output string

	// OK is false only for parse failures.
	OK bool
}

// Display renders the observable output of a turn: on success the rendered
// source, a newline, then the evaluated string (or the caught fault
// message); on parse failure a caret line aligned to the fault index
// followed by the fault message.
func (r Result) Display() string {
	if !r.OK {
		return r.Output
	}
	return r.Source + "\n" + r.Output
}

// CompileAndRun parses pattern text, lowers it, and evaluates the lowered
// expression against the given entropy source.
func CompileAndRun(pattern string, src entropy.Source) Result {
	start := time.Now()

	root, err := parser.Parse(pattern)
	if err != nil {
		var serr *parser.SyntaxError
		if errors.As(err, &serr) {
			logger.Debugw("parse failed",
				logger.FieldPattern, pattern,
				logger.FieldOffset, serr.Offset,
				logger.FieldError, serr.Message)
			return Result{Output: serr.CaretLine() + "\n" + serr.Message}
		}
		// The parser only raises *SyntaxError; anything else is a bug.
		return Result{Output: err.Error()}
	}

	lowered := ast.Lower(root)
	source := expr.Render(lowered)

	out, evalErr := expr.Eval(lowered, src)
	if evalErr != nil {
		// Evaluation faults are converted into displayed text; the turn
		// still counts as a successful parse.
		logger.Debugw("evaluation fault",
			logger.FieldPattern, pattern,
			logger.FieldError, evalErr.Error())
		return Result{Source: source, Output: evalErr.Error(), OK: true}
	}

	logger.Debugw("pattern compiled",
		logger.FieldPattern, pattern,
		logger.FieldSource, source,
		logger.FieldLength, len(out),
		logger.FieldDurationMS, time.Since(start).Milliseconds())

	return Result{Source: source, Output: out, OK: true}
}
