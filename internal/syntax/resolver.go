package syntax

import (
	"context"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/html"
)

// Resolver determines the syntax at a document offset, accounting for
// embedded regions: inside a <style> block of an HTML document the
// resolved syntax is css, inside <script> it is javascript.
type Resolver struct {
	mu     sync.Mutex
	parser *sitter.Parser
}

func NewResolver() *Resolver {
	p := sitter.NewParser()
	p.SetLanguage(html.GetLanguage())
	return &Resolver{parser: p}
}

// Resolve never fails: an unknown language id yields None and embedded
// region detection silently falls back to the outer syntax when the
// document cannot be parsed.
func (r *Resolver) Resolve(document []byte, offset int, language string) Tag {
	tag := FromLanguageID(language)
	if tag != HTML {
		return tag
	}
	if offset < 0 || offset > len(document) {
		return tag
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	tree, err := r.parser.ParseCtx(context.Background(), nil, document)
	if err != nil || tree == nil {
		return tag
	}
	defer tree.Close()

	point := pointAt(document, offset)
	node := tree.RootNode().NamedDescendantForPointRange(point, point)
	for n := node; n != nil; n = n.Parent() {
		switch n.Type() {
		case "style_element":
			if insideContent(n, offset) {
				return CSS
			}
		case "script_element":
			if insideContent(n, offset) {
				return JavaScript
			}
		}
	}
	return tag
}

// insideContent reports whether offset falls between the element's
// start_tag and end_tag, i.e. inside its raw text region.
func insideContent(n *sitter.Node, offset int) bool {
	contentStart := int(n.StartByte())
	contentEnd := int(n.EndByte())
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		switch child.Type() {
		case "start_tag":
			contentStart = int(child.EndByte())
		case "end_tag":
			contentEnd = int(child.StartByte())
		}
	}
	return offset >= contentStart && offset <= contentEnd
}

// pointAt converts a byte offset into a tree-sitter row/column Point.
func pointAt(document []byte, offset int) sitter.Point {
	if offset > len(document) {
		offset = len(document)
	}
	var row, lineStart int
	for i := 0; i < offset; i++ {
		if document[i] == '\n' {
			row++
			lineStart = i + 1
		}
	}
	return sitter.Point{Row: uint32(row), Column: uint32(offset - lineStart)}
}
