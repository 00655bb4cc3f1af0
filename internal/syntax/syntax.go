package syntax

// Tag is the canonical syntax at a cursor position. It selects the
// abbreviation alphabet and the output profile of the expansion engine.
type Tag string

const (
	// None means no expansion is available for the language.
	None Tag = ""

	HTML       Tag = "html"
	XML        Tag = "xml"
	CSS        Tag = "css"
	SCSS       Tag = "scss"
	Less       Tag = "less"
	JavaScript Tag = "javascript"
	JSX        Tag = "javascriptreact"
	TSX        Tag = "typescriptreact"
)

// aliases maps source-level language ids onto the canonical tag that
// configuration and profiles are expressed in.
var aliases = map[string]string{
	"php":      "html",
	"xhtml":    "html",
	"vue-html": "html",
	"jade":     "html",
	"blade":    "html",
	"xsl":      "xml",
	"svg":      "xml",
	"jsx":      "javascriptreact",
	"tsx":      "typescriptreact",
	"sass":     "scss",
}

var known = map[string]Tag{
	"html":            HTML,
	"xml":             XML,
	"css":             CSS,
	"scss":            SCSS,
	"less":            Less,
	"javascript":      JavaScript,
	"javascriptreact": JSX,
	"typescriptreact": TSX,
}

// Canonical maps a language id to the canonical syntax name. Unknown
// languages map to the empty string.
func Canonical(language string) string {
	if mapped, ok := aliases[language]; ok {
		return mapped
	}
	if _, ok := known[language]; ok {
		return language
	}
	return ""
}

// FromLanguageID resolves an editor language id to a Tag, or None.
func FromLanguageID(language string) Tag {
	return Tag(Canonical(language))
}

// IsStylesheet reports whether abbreviations in this syntax expand to
// property declarations rather than markup.
func (t Tag) IsStylesheet() bool {
	switch t {
	case CSS, SCSS, Less:
		return true
	}
	return false
}

// Profile is the per-syntax output configuration handed to the engine.
type Profile struct {
	// AttributeName is the class attribute name ("class", or "className"
	// for the JSX family).
	AttributeName string
	// SelfClosing emits "/>" on empty elements (XML and JSX family).
	SelfClosing bool
	// Stylesheet selects declaration output instead of markup.
	Stylesheet bool
}

// ProfileFor returns the output profile for a resolved syntax.
func ProfileFor(tag Tag) Profile {
	switch tag {
	case JSX, TSX:
		return Profile{AttributeName: "className", SelfClosing: true}
	case XML:
		return Profile{AttributeName: "class", SelfClosing: true}
	case CSS, SCSS, Less:
		return Profile{Stylesheet: true}
	default:
		return Profile{AttributeName: "class"}
	}
}
