// Package extract locates the abbreviation candidate touching the cursor.
package extract

import (
	"regexp"
	"strings"

	"emmetls/internal/syntax"
)

// Candidate is an abbreviation span ready for expansion. It has no
// identity beyond the single request that produced it.
type Candidate struct {
	Abbreviation string
	Start        int // byte offset of the first abbreviation character
	End          int // byte offset of the cursor
	Syntax       syntax.Tag
}

// tagPattern matches complete opening, closing and self-closing tags.
var tagPattern = regexp.MustCompile(`<(/?)([a-zA-Z][a-zA-Z0-9:_-]*)([^<>]*?)(/?)>`)

// voidElements never take a closing counterpart in HTML.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// Extract returns the candidate ending at offset, or nil when the
// position is not a legitimate expansion site:
//   - inside an opening tag's markup (attribute region, or any "<tag ..."
//     not yet closed by ">"), even if a closing tag exists further on;
//   - inside the content of an element with no closing tag anywhere
//     forward in the document;
//   - no token ends at the cursor.
//
// Top-level text with no enclosing tag at all is a valid site.
func Extract(document string, offset int, tag syntax.Tag) *Candidate {
	if tag == syntax.None || offset < 0 || offset > len(document) {
		return nil
	}
	if tag.IsStylesheet() {
		return extractStylesheet(document, offset, tag)
	}

	if insideOpenTag(document, offset) {
		return nil
	}
	if enclosing, ok := enclosingElement(document, offset); ok {
		if !hasClosingTag(document[offset:], enclosing) {
			return nil
		}
	}

	start := scanMarkupToken(document, offset)
	abbr := document[start:offset]

	// A token scanned back to a "<" swallowed the enclosing tag's name
	// ("<div>img" scans to "div>img"); drop through the first ">".
	if start > 0 && document[start-1] == '<' {
		if cut := strings.IndexByte(abbr, '>'); cut >= 0 {
			start += cut + 1
			abbr = abbr[cut+1:]
		}
	}

	if !validMarkupAbbreviation(abbr) {
		return nil
	}
	return &Candidate{Abbreviation: abbr, Start: start, End: offset, Syntax: tag}
}

// insideOpenTag reports whether the cursor sits inside tag markup: after
// a "<" that has not been closed by ">" yet.
func insideOpenTag(document string, offset int) bool {
	for i := offset - 1; i >= 0; i-- {
		switch document[i] {
		case '>':
			return false
		case '<':
			if i+1 >= len(document) {
				return true
			}
			next := document[i+1]
			return next == '/' || next == '!' || isNameStart(next)
		}
	}
	return false
}

// enclosingElement returns the innermost element open at offset.
func enclosingElement(document string, offset int) (string, bool) {
	var stack []string
	for _, m := range tagPattern.FindAllStringSubmatchIndex(document[:offset], -1) {
		closing := m[3] > m[2] // "</..." group
		name := strings.ToLower(document[m[4]:m[5]])
		selfClosed := m[9] > m[8] // trailing "/"

		switch {
		case closing:
			for n := len(stack) - 1; n >= 0; n-- {
				if stack[n] == name {
					stack = stack[:n]
					break
				}
			}
		case selfClosed || voidElements[name]:
			// no closing counterpart expected
		default:
			stack = append(stack, name)
		}
	}
	if len(stack) == 0 {
		return "", false
	}
	return stack[len(stack)-1], true
}

func hasClosingTag(rest, name string) bool {
	lower := strings.ToLower(rest)
	needle := "</" + name
	for from := 0; ; {
		i := strings.Index(lower[from:], needle)
		if i < 0 {
			return false
		}
		after := from + i + len(needle)
		// "</p" must not match "</pre>".
		if after >= len(lower) {
			return true
		}
		switch lower[after] {
		case '>', ' ', '\t', '\n', '\r':
			return true
		}
		from += i + 1
	}
}

// markupTokenChars are the characters an abbreviation may contain beyond
// letters and digits.
const markupTokenChars = ".#*>+^[](){}$@!%:;,='\"/-_"

func scanMarkupToken(document string, offset int) int {
	start := offset
	for start > 0 {
		c := document[start-1]
		if isAlphanumeric(c) || strings.IndexByte(markupTokenChars, c) >= 0 {
			start--
			continue
		}
		break
	}
	return start
}

func validMarkupAbbreviation(abbr string) bool {
	if abbr == "" {
		return false
	}
	c := abbr[0]
	return isNameStart(c) || c == '.' || c == '#' || c == '!' || c == '('
}

// stylesheetTokenChars is the reduced alphabet for declaration
// abbreviations; there are no tag boundaries to respect.
const stylesheetTokenChars = "-@!%:+$#"

func extractStylesheet(document string, offset int, tag syntax.Tag) *Candidate {
	start := offset
	for start > 0 {
		c := document[start-1]
		if isAlphanumeric(c) || strings.IndexByte(stylesheetTokenChars, c) >= 0 {
			start--
			continue
		}
		break
	}
	abbr := document[start:offset]
	if abbr == "" {
		return nil
	}
	if c := abbr[0]; !isNameStart(c) && c != '-' && c != '@' && c != '!' {
		return nil
	}
	return &Candidate{Abbreviation: abbr, Start: start, End: offset, Syntax: tag}
}

func isNameStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphanumeric(c byte) bool {
	return isNameStart(c) || (c >= '0' && c <= '9')
}
