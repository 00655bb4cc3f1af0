package server

import (
	con "context"
	"encoding/json"
	"fmt"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

const commandExpandAbbreviation = "emmet.expandAbbreviation"

func (ls *Server) workspaceExecuteCommand(
	context *glsp.Context,
	params *protocol.ExecuteCommandParams,
) (any, error) {
	switch params.Command {
	case commandExpandAbbreviation:
		return ls.expandAbbreviation(context, params.Arguments)
	}
	return nil, nil
}

// expandAbbreviation handles the direct-expand command. Arguments: the
// document URI and a position. Every negative outcome (no candidate,
// excluded syntax, engine rejection) leaves the document byte-for-byte
// unchanged; a positive one applies exactly one replace-span edit.
func (ls *Server) expandAbbreviation(context *glsp.Context, args []any) (any, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("%s expects [uri, position], got %d argument(s)",
			commandExpandAbbreviation, len(args))
	}
	uri, ok := args[0].(string)
	if !ok {
		return nil, fmt.Errorf("%s: first argument must be a document uri", commandExpandAbbreviation)
	}
	position, err := decodePosition(args[1])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", commandExpandAbbreviation, err)
	}

	doc, err := ls.manager.Get(uri)
	if err != nil {
		return nil, nil
	}

	edit, err := ls.invoker.Expand(con.Background(), doc.Text, position, doc.Language)
	if err != nil || edit == nil {
		return nil, nil
	}

	context.Notify("workspace/applyEdit", protocol.ApplyWorkspaceEditParams{
		Edit: protocol.WorkspaceEdit{
			Changes: map[protocol.DocumentUri][]protocol.TextEdit{
				uri: {*edit},
			},
		},
	})

	// Keep the local mirror in step with what the client will apply.
	if err := ls.manager.ApplyEdit(uri, *edit); err != nil {
		ls.log.Errorf("failed to mirror edit for %s: %s", uri, err.Error())
	}
	return edit, nil
}

func decodePosition(v any) (protocol.Position, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return protocol.Position{}, fmt.Errorf("failed to marshal position: %w", err)
	}
	var position protocol.Position
	if err := json.Unmarshal(data, &position); err != nil {
		return protocol.Position{}, fmt.Errorf("failed to unmarshal position: %w", err)
	}
	return position, nil
}
