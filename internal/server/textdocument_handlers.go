package server

import (
	"fmt"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func (ls *Server) textDocumentDidOpen(
	context *glsp.Context,
	params *protocol.DidOpenTextDocumentParams,
) error {
	ls.manager.Open(
		params.TextDocument.URI,
		params.TextDocument.LanguageID,
		params.TextDocument.Text,
	)
	return nil
}

func (ls *Server) textDocumentDidChange(
	context *glsp.Context,
	params *protocol.DidChangeTextDocumentParams,
) error {
	uri := params.TextDocument.URI
	for _, raw := range params.ContentChanges {
		switch change := raw.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			if err := ls.manager.Replace(uri, change.Text); err != nil {
				return err
			}
		case protocol.TextDocumentContentChangeEvent:
			if err := ls.manager.ApplyChange(uri, change.Range, change.Text); err != nil {
				return fmt.Errorf("failed to apply change to %s: %w", uri, err)
			}
		default:
			return fmt.Errorf("unexpected change event type %T", raw)
		}
	}
	return nil
}

func (ls *Server) textDocumentDidSave(
	context *glsp.Context,
	params *protocol.DidSaveTextDocumentParams,
) error {
	if params.Text != nil {
		return ls.manager.Replace(params.TextDocument.URI, *params.Text)
	}
	return nil
}

func (ls *Server) textDocumentDidClose(
	context *glsp.Context,
	params *protocol.DidCloseTextDocumentParams,
) error {
	ls.manager.Release(params.TextDocument.URI)
	return nil
}
