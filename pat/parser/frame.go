package parser

import (
	"github.com/sbvh/patmint/pat/ast"
)

// frameKind discriminates what a frame materializes when it closes.
type frameKind int

const (
	frameRoot  frameKind = iota // the implicit outermost frame
	frameGroup                  // ( ... ) or { ... }
	frameRange                  // : ... ;
)

// frame records one unclosed nested construct: the token that pops it, the
// node kind to build on closure, its extra construction parameters, and the
// children accumulated inside it so far.
type frame struct {
	kind       frameKind
	close      rune // token that pops this frame; 0 for the root frame
	sequential bool // for frameGroup: concatenate vs choose-one
	openPos    int  // offset of the opening token, for EOF diagnostics
	children   []ast.Node
}

func (f *frame) push(n ast.Node) {
	f.children = append(f.children, n)
}

// last returns the most recently pushed sibling, or nil.
func (f *frame) last() ast.Node {
	if len(f.children) == 0 {
		return nil
	}
	return f.children[len(f.children)-1]
}

// finalize materializes the frame into its node. A range frame holding
// exactly one segment collapses to that bare node; with more segments the
// segments are wrapped in a group that concatenates them in order.
func (f *frame) finalize() ast.Node {
	switch f.kind {
	case frameGroup:
		return &ast.Group{Children: f.children, Sequential: f.sequential}
	case frameRange:
		if len(f.children) == 1 {
			return f.children[0]
		}
		return &ast.Group{Children: f.children, Sequential: true}
	default:
		return &ast.Root{Children: f.children}
	}
}
