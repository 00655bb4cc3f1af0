package engine

import (
	"fmt"
	"strings"
)

// stylesheetSnippets are complete declaration abbreviations.
var stylesheetSnippets = map[string]string{
	"df":   "display: flex;",
	"db":   "display: block;",
	"dib":  "display: inline-block;",
	"dn":   "display: none;",
	"posa": "position: absolute;",
	"posr": "position: relative;",
	"posf": "position: fixed;",
	"pos":  "position: relative;",
	"tac":  "text-align: center;",
	"tal":  "text-align: left;",
	"tar":  "text-align: right;",
	"fwb":  "font-weight: bold;",
	"ttu":  "text-transform: uppercase;",
	"ovh":  "overflow: hidden;",
	"cf":   "color: #fff;",
	"bgn":  "background: none;",
}

// stylesheetProperties map alphabetic prefixes to property names for
// value abbreviations like "m10" or "w100p".
var stylesheetProperties = map[string]string{
	"m":  "margin",
	"mt": "margin-top",
	"mr": "margin-right",
	"mb": "margin-bottom",
	"ml": "margin-left",
	"p":  "padding",
	"pt": "padding-top",
	"pr": "padding-right",
	"pb": "padding-bottom",
	"pl": "padding-left",
	"w":  "width",
	"h":  "height",
	"t":  "top",
	"r":  "right",
	"b":  "bottom",
	"l":  "left",
	"fz": "font-size",
	"lh": "line-height",
	"bg": "background",
	"c":  "color",
	"z":  "z-index",
	"o":  "opacity",
	"bd": "border",
	"br": "border-radius",
}

// expandStylesheet resolves a declaration abbreviation: a full snippet,
// or a property prefix followed by a numeric value with an optional unit
// suffix ("p" percent, "e" em, "r" rem; bare numbers get px).
func expandStylesheet(abbr string) (string, error) {
	if decl, ok := stylesheetSnippets[abbr]; ok {
		return decl, nil
	}

	prefix := abbr
	value := ""
	for i := 0; i < len(abbr); i++ {
		if abbr[i] >= '0' && abbr[i] <= '9' {
			prefix, value = abbr[:i], abbr[i:]
			break
		}
	}

	property, ok := stylesheetProperties[prefix]
	if !ok {
		return "", ErrInvalid
	}
	if value == "" {
		return property + ": ;", nil
	}

	number := value
	unit := "px"
	switch value[len(value)-1] {
	case 'p':
		number, unit = value[:len(value)-1], "%"
	case 'e':
		number, unit = value[:len(value)-1], "em"
	case 'r':
		number, unit = value[:len(value)-1], "rem"
	}
	if number == "0" {
		return fmt.Sprintf("%s: 0;", property), nil
	}
	if strings.Trim(number, "0123456789") != "" {
		return "", ErrInvalid
	}
	return fmt.Sprintf("%s: %s%s;", property, number, unit), nil
}
