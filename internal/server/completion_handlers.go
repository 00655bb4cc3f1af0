package server

import (
	con "context"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func (ls *Server) textDocumentCompletion(
	context *glsp.Context,
	params *protocol.CompletionParams,
) (any, error) {
	doc, err := ls.manager.Get(params.TextDocument.URI)
	if err != nil {
		// Completion on a document we never saw: nothing to offer.
		return nil, nil
	}

	// glsp does not surface $/cancelRequest; the provider still honors
	// its context for embedders that do.
	list, err := ls.completions.Provide(con.Background(), doc.Text, params.Position, doc.Language)
	if err != nil || list == nil {
		return nil, nil
	}
	return list, nil
}
