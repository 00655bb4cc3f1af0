// Package docpos converts between LSP positions (UTF-16 code units) and
// byte offsets, and splices ranged edits into document snapshots.
package docpos

import (
	"strings"
	"unicode/utf8"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Offset computes the byte offset of an LSP Position. Positions past the
// end of a line or document are clamped, never rejected.
func Offset(document string, pos protocol.Position) int {
	lines := strings.Split(document, "\n")
	if int(pos.Line) >= len(lines) {
		pos.Line = uint32(len(lines) - 1)
		pos.Character = uint32(len(lines[pos.Line]))
	}

	offset := 0
	for i := uint32(0); i < pos.Line; i++ {
		offset += len(lines[i]) + 1
	}

	// Walk runes in the target line to match the UTF-16 character count.
	var units, bytes int
	for _, r := range lines[pos.Line] {
		unitCount := 1
		if r > 0xFFFF {
			unitCount = 2
		}
		if uint32(units+unitCount) > pos.Character {
			break
		}
		units += unitCount
		bytes += utf8.RuneLen(r)
	}
	return offset + bytes
}

// Position computes the LSP Position of a byte offset.
func Position(document string, offset int) protocol.Position {
	if offset > len(document) {
		offset = len(document)
	}
	if offset < 0 {
		offset = 0
	}

	lineStart := 0
	var line uint32
	for i := 0; i < offset; i++ {
		if document[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}

	var units uint32
	for _, r := range document[lineStart:offset] {
		if r > 0xFFFF {
			units += 2
		} else {
			units++
		}
	}
	return protocol.Position{Line: line, Character: units}
}

// RangeOf converts a byte span into an LSP Range.
func RangeOf(document string, start, end int) protocol.Range {
	return protocol.Range{
		Start: Position(document, start),
		End:   Position(document, end),
	}
}

// ApplyChange splices an incremental content change into the document.
// A change without a range replaces the whole document.
func ApplyChange(document string, rng *protocol.Range, text string) string {
	if rng == nil {
		return text
	}
	start := Offset(document, rng.Start)
	end := Offset(document, rng.End)
	return document[:start] + text + document[end:]
}
