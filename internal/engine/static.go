package engine

import (
	"context"
	"fmt"
	"strings"
)

// Static is the built-in snippet engine. It expands single-element
// abbreviations (name, classes, id, attributes, text) against a fixed
// snippet table and falls back to wrapping unknown words as a same-named
// open/close tag pair. Operator abbreviations ("ul>li*2") are rejected
// with ErrUnsupported; those belong to an external grammar engine.
type Static struct{}

func NewStatic() *Static {
	return &Static{}
}

type attribute struct {
	name  string
	value string
}

type snippet struct {
	tag   string
	attrs []attribute
	void  bool
}

// markupSnippets are elements that expand with default attributes.
var markupSnippets = map[string]snippet{
	"a":      {tag: "a", attrs: []attribute{{"href", ""}}},
	"img":    {tag: "img", attrs: []attribute{{"src", ""}, {"alt", ""}}, void: true},
	"link":   {tag: "link", attrs: []attribute{{"rel", "stylesheet"}, {"href", ""}}, void: true},
	"input":  {tag: "input", attrs: []attribute{{"type", "text"}}, void: true},
	"script": {tag: "script"},
	"iframe": {tag: "iframe", attrs: []attribute{{"src", ""}, {"frameborder", "0"}}},
	"source": {tag: "source", void: true},
	"embed":  {tag: "embed", attrs: []attribute{{"src", ""}, {"type", ""}}, void: true},
	"br":     {tag: "br", void: true},
	"hr":     {tag: "hr", void: true},
	"meta":   {tag: "meta", void: true},
	"col":    {tag: "col", void: true},
	"wbr":    {tag: "wbr", void: true},
	"track":  {tag: "track", void: true},
	"area":   {tag: "area", void: true},
	"base":   {tag: "base", attrs: []attribute{{"href", ""}}, void: true},
}

const doctypeTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<title>Document</title>
</head>
<body>

</body>
</html>`

func (e *Static) Expand(ctx context.Context, abbreviation string, opts Options) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if abbreviation == "" {
		return "", ErrInvalid
	}
	if opts.Stylesheet {
		return expandStylesheet(abbreviation)
	}
	return expandMarkup(abbreviation, opts)
}

func expandMarkup(abbr string, opts Options) (string, error) {
	if abbr == "!" || abbr == "html:5" {
		return doctypeTemplate, nil
	}
	if strings.ContainsAny(abbr, "<>^*+|()") {
		return "", ErrUnsupported
	}

	el, err := parseElement(abbr)
	if err != nil {
		return "", err
	}

	base, known := markupSnippets[el.name]
	if !known {
		base = snippet{tag: el.name}
	}

	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(base.tag)
	for _, a := range base.attrs {
		fmt.Fprintf(&b, ` %s="%s"`, a.name, a.value)
	}
	if el.id != "" {
		fmt.Fprintf(&b, ` id="%s"`, el.id)
	}
	if len(el.classes) > 0 {
		fmt.Fprintf(&b, ` %s="%s"`, opts.AttributeName, strings.Join(el.classes, " "))
	}
	for _, a := range el.attrs {
		fmt.Fprintf(&b, ` %s="%s"`, a.name, a.value)
	}

	if base.void {
		if opts.SelfClosing {
			b.WriteString("/>")
		} else {
			b.WriteString(">")
		}
		return b.String(), nil
	}

	b.WriteByte('>')
	b.WriteString(el.text)
	b.WriteString("</")
	b.WriteString(base.tag)
	b.WriteByte('>')
	return b.String(), nil
}

type element struct {
	name    string
	id      string
	classes []string
	attrs   []attribute
	text    string
}

// parseElement handles the single-element subset of the abbreviation
// syntax: name, ".class" (repeatable), "#id", "[k=v k2]", "{text}".
func parseElement(abbr string) (element, error) {
	el := element{}
	i := 0

	nameEnd := i
	for nameEnd < len(abbr) && isWordByte(abbr[nameEnd]) {
		nameEnd++
	}
	el.name = abbr[i:nameEnd]
	i = nameEnd

	for i < len(abbr) {
		switch abbr[i] {
		case '.':
			j := i + 1
			for j < len(abbr) && isWordByte(abbr[j]) {
				j++
			}
			if j == i+1 {
				return element{}, ErrInvalid
			}
			el.classes = append(el.classes, abbr[i+1:j])
			i = j
		case '#':
			j := i + 1
			for j < len(abbr) && isWordByte(abbr[j]) {
				j++
			}
			if j == i+1 {
				return element{}, ErrInvalid
			}
			el.id = abbr[i+1 : j]
			i = j
		case '[':
			j := strings.IndexByte(abbr[i:], ']')
			if j < 0 {
				return element{}, ErrInvalid
			}
			for _, field := range strings.Fields(abbr[i+1 : i+j]) {
				name, value, _ := strings.Cut(field, "=")
				value = strings.Trim(value, `"'`)
				el.attrs = append(el.attrs, attribute{name: name, value: value})
			}
			i += j + 1
		case '{':
			j := strings.IndexByte(abbr[i:], '}')
			if j < 0 {
				return element{}, ErrInvalid
			}
			el.text = abbr[i+1 : i+j]
			i += j + 1
		default:
			return element{}, ErrInvalid
		}
	}

	// ".nav" alone means an implicit div.
	if el.name == "" {
		if el.id == "" && len(el.classes) == 0 {
			return element{}, ErrInvalid
		}
		el.name = "div"
	}
	return el, nil
}

func isWordByte(c byte) bool {
	return c == '-' || c == '_' || c == ':' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
