// Package parser turns pattern text into a generator node tree.
//
// The scan is a single left-to-right pass over the pattern with an explicit
// stack of frames tracking nested constructs. There is no backtracking: a
// dispatch on the current character either pushes a node into the current
// frame, opens a new frame, or closes the current one.
package parser

import (
	"strconv"

	"github.com/sbvh/patmint/pat/ast"
)

// Parse compiles pattern text into a Root node, or fails with a
// *SyntaxError carrying the message and the zero-based character index at
// which the fault was detected.
func Parse(pattern string) (*ast.Root, error) {
	p := &parser{
		input: []rune(pattern),
		stack: []*frame{{kind: frameRoot}},
	}
	return p.run()
}

type parser struct {
	input []rune
	pos   int
	stack []*frame
}

func (p *parser) top() *frame {
	return p.stack[len(p.stack)-1]
}

func (p *parser) run() (*ast.Root, error) {
	for p.pos < len(p.input) {
		top := p.top()

		// A range frame owns its body: segments are raw-scanned, not
		// dispatched character by character.
		if top.kind == frameRange {
			if err := p.scanRangeSegment(); err != nil {
				return nil, err
			}
			continue
		}

		ch := p.input[p.pos]

		if top.close != 0 && ch == top.close {
			p.pos++
			p.popFrame()
			continue
		}

		switch ch {
		case '.':
			top.push(&ast.Any{})
			p.pos++
		case 'a':
			top.push(&ast.Alpha{})
			p.pos++
		case 'A':
			top.push(&ast.Alpha{Upper: true})
			p.pos++
		case '#':
			top.push(&ast.Numeric{})
			p.pos++
		case '@':
			top.push(&ast.Symbol{})
			p.pos++
		case '$':
			top.push(&ast.BasicSymbol{})
			p.pos++
		case '"':
			p.pos++
			text, err := p.consumeUntil('"')
			if err != nil {
				return nil, err
			}
			top.push(&ast.Literal{Text: text})
		case '[':
			p.pos++
			text, err := p.consumeUntil(']')
			if err != nil {
				return nil, err
			}
			top.push(&ast.SampleSet{Chars: text})
		case '<':
			if err := p.scanRepeat(); err != nil {
				return nil, err
			}
		case ':':
			p.stack = append(p.stack, &frame{kind: frameRange, close: ';', openPos: p.pos})
			p.pos++
		case '(':
			p.stack = append(p.stack, &frame{kind: frameGroup, close: ')', sequential: true, openPos: p.pos})
			p.pos++
		case '{':
			p.stack = append(p.stack, &frame{kind: frameGroup, close: '}', openPos: p.pos})
			p.pos++
		default:
			// Unrecognized characters outside a scan are no-ops.
			p.pos++
		}
	}

	if len(p.stack) > 1 {
		top := p.top()
		return nil, newSyntaxError(ErrorKindEOF, len(p.input),
			"unexpected end of pattern: construct opened at index %d is not closed", top.openPos).
			withExpected(string(top.close))
	}

	return p.stack[0].finalize().(*ast.Root), nil
}

// popFrame finalizes the current frame and pushes the resulting node into
// the parent frame.
func (p *parser) popFrame() {
	top := p.top()
	p.stack = p.stack[:len(p.stack)-1]
	p.top().push(top.finalize())
}

// consumeUntil scans raw text up to the next unescaped terminator, which is
// consumed. A backslash always escapes the immediately following character,
// which is taken verbatim regardless of whether it equals the terminator.
func (p *parser) consumeUntil(term rune) (string, error) {
	text, _, err := p.consumeUntilEither(term, 0)
	return text, err
}

// consumeUntilEither is consumeUntil over two possible terminators,
// reporting which one ended the scan. A zero alt disables the second
// terminator.
func (p *parser) consumeUntilEither(term, alt rune) (string, rune, error) {
	var out []rune
	for p.pos < len(p.input) {
		ch := p.input[p.pos]
		switch {
		case ch == '\\':
			p.pos++
			if p.pos >= len(p.input) {
				return "", 0, p.eofExpecting(term, alt)
			}
			out = append(out, p.input[p.pos])
			p.pos++
		case ch == term || (alt != 0 && ch == alt):
			p.pos++
			return string(out), ch, nil
		default:
			out = append(out, ch)
			p.pos++
		}
	}
	return "", 0, p.eofExpecting(term, alt)
}

func (p *parser) eofExpecting(term, alt rune) *SyntaxError {
	e := newSyntaxError(ErrorKindEOF, len(p.input),
		"unexpected end of pattern: expected '%c'", term).
		withExpected(string(term))
	if alt != 0 {
		e.Message = e.Message + " or '" + string(alt) + "'"
		e.withExpected(string(alt))
	}
	return e
}

// scanRepeat handles the <n> modifier: digits up to '>', applied to the
// most recently pushed sibling in the current frame.
func (p *parser) scanRepeat() error {
	openPos := p.pos
	p.pos++ // consume '<'

	var digits []rune
	for {
		if p.pos >= len(p.input) {
			return p.eofExpecting('>', 0)
		}
		ch := p.input[p.pos]
		p.pos++
		if ch == '>' {
			break
		}
		digits = append(digits, ch)
	}

	n, err := strconv.Atoi(string(digits))
	if err != nil {
		return newSyntaxError(ErrorKindRepeat, openPos+1,
			"repeat modifier %q is not an integer", string(digits))
	}
	if n < 1 {
		return newSyntaxError(ErrorKindRepeat, openPos+1,
			"repeat count must be positive, got %d", n)
	}

	sibling := p.top().last()
	if sibling == nil {
		return newSyntaxError(ErrorKindRepeat, openPos,
			"repeat modifier has no preceding node to apply to")
	}
	if !sibling.SetRepeat(n) {
		return newSyntaxError(ErrorKindRepeat, openPos,
			"repeat count is already set for the preceding node")
	}
	return nil
}

// scanRangeSegment reads one start-end segment of a range block. A segment
// terminated by ':' leaves the frame open for the next segment; ';' closes
// the block. Numeric starts build Range nodes, anything else builds an
// ASCIIRange from the first character of each bound.
func (p *parser) scanRangeSegment() error {
	segPos := p.pos

	startText, err := p.consumeUntil('-')
	if err != nil {
		return err
	}

	endText, term, err := p.consumeUntilEither(':', ';')
	if err != nil {
		return err
	}

	top := p.top()
	if start, convErr := strconv.Atoi(startText); convErr == nil {
		end, convErr := strconv.Atoi(endText)
		if convErr != nil {
			return newSyntaxError(ErrorKindRange, segPos,
				"range end %q is not an integer", endText)
		}
		top.push(ast.NewRange(start, end))
	} else {
		if startText == "" || endText == "" {
			return newSyntaxError(ErrorKindRange, segPos,
				"character range bounds must not be empty")
		}
		top.push(ast.NewASCIIRange([]rune(startText)[0], []rune(endText)[0]))
	}

	if term == ';' {
		p.popFrame()
	}
	return nil
}
