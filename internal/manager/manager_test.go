package manager

import (
	"testing"

	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

const uri = "file:///test.html"

func TestOpenAndGet(t *testing.T) {
	dm := NewDocumentManager()
	dm.Open(uri, "html", "<p></p>")

	doc, err := dm.Get(uri)
	require.NoError(t, err)
	require.Equal(t, "html", doc.Language)
	require.Equal(t, "<p></p>", doc.Text)
}

func TestGetUnknownURI(t *testing.T) {
	dm := NewDocumentManager()
	_, err := dm.Get("file:///missing.html")
	require.Error(t, err)
}

func TestReplace(t *testing.T) {
	dm := NewDocumentManager()
	dm.Open(uri, "html", "old")
	require.NoError(t, dm.Replace(uri, "new"))

	doc, _ := dm.Get(uri)
	require.Equal(t, "new", doc.Text)
	require.Equal(t, "html", doc.Language)
}

func TestApplyChangeIncremental(t *testing.T) {
	dm := NewDocumentManager()
	dm.Open(uri, "html", "hello world")

	rng := protocol.Range{
		Start: protocol.Position{Line: 0, Character: 6},
		End:   protocol.Position{Line: 0, Character: 11},
	}
	require.NoError(t, dm.ApplyChange(uri, &rng, "there"))

	doc, _ := dm.Get(uri)
	require.Equal(t, "hello there", doc.Text)
}

func TestApplyEditMirrorsServerEdit(t *testing.T) {
	dm := NewDocumentManager()
	dm.Open(uri, "html", "img")

	edit := protocol.TextEdit{
		Range: protocol.Range{
			Start: protocol.Position{Line: 0, Character: 0},
			End:   protocol.Position{Line: 0, Character: 3},
		},
		NewText: `<img src="" alt="">`,
	}
	require.NoError(t, dm.ApplyEdit(uri, edit))

	doc, _ := dm.Get(uri)
	require.Equal(t, `<img src="" alt="">`, doc.Text)
}

func TestRelease(t *testing.T) {
	dm := NewDocumentManager()
	dm.Open(uri, "html", "x")
	dm.Release(uri)

	_, err := dm.Get(uri)
	require.Error(t, err)
}
