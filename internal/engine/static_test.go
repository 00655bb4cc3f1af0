package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func htmlOptions() Options {
	return Options{Syntax: "html", AttributeName: "class", Indent: "\t"}
}

func jsxOptions() Options {
	return Options{Syntax: "javascriptreact", AttributeName: "className", SelfClosing: true, Indent: "\t"}
}

func xmlOptions() Options {
	return Options{Syntax: "xml", AttributeName: "class", SelfClosing: true, Indent: "\t"}
}

func TestExpandImgPerSyntax(t *testing.T) {
	e := NewStatic()
	ctx := context.Background()

	got, err := e.Expand(ctx, "img", htmlOptions())
	require.NoError(t, err)
	require.Equal(t, `<img src="" alt="">`, got)

	got, err = e.Expand(ctx, "img", xmlOptions())
	require.NoError(t, err)
	require.Equal(t, `<img src="" alt=""/>`, got)

	got, err = e.Expand(ctx, "img", jsxOptions())
	require.NoError(t, err)
	require.Equal(t, `<img src="" alt=""/>`, got)
}

func TestExpandClassAttributeMapping(t *testing.T) {
	e := NewStatic()
	ctx := context.Background()

	got, err := e.Expand(ctx, "ul.nav", htmlOptions())
	require.NoError(t, err)
	require.Equal(t, `<ul class="nav"></ul>`, got)

	got, err = e.Expand(ctx, "ul.nav", jsxOptions())
	require.NoError(t, err)
	require.Equal(t, `<ul className="nav"></ul>`, got)
}

func TestExpandMultipleClassesAndID(t *testing.T) {
	e := NewStatic()
	got, err := e.Expand(context.Background(), "div#page.a.b", htmlOptions())
	require.NoError(t, err)
	require.Equal(t, `<div id="page" class="a b"></div>`, got)
}

func TestExpandImplicitDiv(t *testing.T) {
	e := NewStatic()
	got, err := e.Expand(context.Background(), ".nav", htmlOptions())
	require.NoError(t, err)
	require.Equal(t, `<div class="nav"></div>`, got)
}

func TestExpandCustomAttributesAndText(t *testing.T) {
	e := NewStatic()
	got, err := e.Expand(context.Background(), `td[colspan=2]{sum}`, htmlOptions())
	require.NoError(t, err)
	require.Equal(t, `<td colspan="2">sum</td>`, got)
}

func TestExpandSnippetDefaults(t *testing.T) {
	e := NewStatic()
	ctx := context.Background()

	got, err := e.Expand(ctx, "a", htmlOptions())
	require.NoError(t, err)
	require.Equal(t, `<a href=""></a>`, got)

	got, err = e.Expand(ctx, "input", htmlOptions())
	require.NoError(t, err)
	require.Equal(t, `<input type="text">`, got)

	got, err = e.Expand(ctx, "link", htmlOptions())
	require.NoError(t, err)
	require.Equal(t, `<link rel="stylesheet" href="">`, got)

	got, err = e.Expand(ctx, "br", xmlOptions())
	require.NoError(t, err)
	require.Equal(t, `<br/>`, got)
}

func TestExpandWrapFallback(t *testing.T) {
	e := NewStatic()
	got, err := e.Expand(context.Background(), "hithere", htmlOptions())
	require.NoError(t, err)
	require.Equal(t, `<hithere></hithere>`, got)
}

func TestExpandDoctype(t *testing.T) {
	e := NewStatic()
	got, err := e.Expand(context.Background(), "!", htmlOptions())
	require.NoError(t, err)
	require.Contains(t, got, "<!DOCTYPE html>")
	require.Contains(t, got, "</html>")
}

func TestExpandOperatorsUnsupported(t *testing.T) {
	e := NewStatic()
	for _, abbr := range []string{"ul>li*2", "a+b", "div>(p>span)^em"} {
		_, err := e.Expand(context.Background(), abbr, htmlOptions())
		require.ErrorIs(t, err, ErrUnsupported, abbr)
	}
}

func TestExpandInvalidInput(t *testing.T) {
	e := NewStatic()
	for _, abbr := range []string{"", ".", "#", "td[colspan"} {
		_, err := e.Expand(context.Background(), abbr, htmlOptions())
		require.Error(t, err, "abbr %q", abbr)
	}
}

func TestExpandObservesCancellation(t *testing.T) {
	e := NewStatic()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := e.Expand(ctx, "img", htmlOptions())
	require.ErrorIs(t, err, context.Canceled)
}
