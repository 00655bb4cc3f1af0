package syntax

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanonical(t *testing.T) {
	cases := []struct {
		language string
		want     string
	}{
		{"html", "html"},
		{"php", "html"},
		{"xhtml", "html"},
		{"xsl", "xml"},
		{"svg", "xml"},
		{"jsx", "javascriptreact"},
		{"javascriptreact", "javascriptreact"},
		{"tsx", "typescriptreact"},
		{"sass", "scss"},
		{"css", "css"},
		{"gopher", ""},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, Canonical(tc.language), tc.language)
	}
}

func TestFromLanguageIDUnknownIsNone(t *testing.T) {
	require.Equal(t, None, FromLanguageID("markdown"))
	require.Equal(t, None, FromLanguageID(""))
}

func TestProfileFor(t *testing.T) {
	html := ProfileFor(HTML)
	require.Equal(t, "class", html.AttributeName)
	require.False(t, html.SelfClosing)
	require.False(t, html.Stylesheet)

	jsx := ProfileFor(JSX)
	require.Equal(t, "className", jsx.AttributeName)
	require.True(t, jsx.SelfClosing)

	tsx := ProfileFor(TSX)
	require.Equal(t, "className", tsx.AttributeName)
	require.True(t, tsx.SelfClosing)

	xml := ProfileFor(XML)
	require.Equal(t, "class", xml.AttributeName)
	require.True(t, xml.SelfClosing)

	css := ProfileFor(CSS)
	require.True(t, css.Stylesheet)
}

func TestIsStylesheet(t *testing.T) {
	require.True(t, CSS.IsStylesheet())
	require.True(t, SCSS.IsStylesheet())
	require.True(t, Less.IsStylesheet())
	require.False(t, HTML.IsStylesheet())
	require.False(t, JSX.IsStylesheet())
}
