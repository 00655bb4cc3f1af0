// Package completion exposes expansion results as LSP completion items.
package completion

import (
	"context"

	"emmetls/internal/config"
	"emmetls/internal/expand"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Provider mirrors the expansion invoker without mutating anything: the
// item's insert text is exactly the edit the invoker would have applied.
type Provider struct {
	invoker *expand.Invoker
	store   *config.Store
}

func NewProvider(invoker *expand.Invoker, store *config.Store) *Provider {
	return &Provider{invoker: invoker, store: store}
}

// Provide returns a single-item completion list, or nil when there is no
// candidate, the syntax is excluded, the style-tag capability is off, or
// the request was cancelled. It never produces partial results.
func (p *Provider) Provide(
	ctx context.Context,
	document string,
	position protocol.Position,
	language string,
) (*protocol.CompletionList, error) {
	result, err := p.invoker.Evaluate(ctx, document, position, language)
	if err != nil || result == nil {
		// Cancellation and negative results look the same to the client.
		return nil, nil
	}

	// CSS completions inside <style> are a separately flagged capability;
	// direct expansion there stays available regardless.
	if result.Embedded && result.Syntax.IsStylesheet() && !p.store.Current().StyleTagCompletions {
		return nil, nil
	}

	kind := protocol.CompletionItemKindSnippet
	format := protocol.InsertTextFormatPlainText
	detail := "Emmet abbreviation"
	documentation := result.Text

	item := protocol.CompletionItem{
		Label:            result.Candidate.Abbreviation,
		Kind:             &kind,
		Detail:           &detail,
		Documentation:    documentation,
		FilterText:       &result.Candidate.Abbreviation,
		InsertText:       &result.Text,
		InsertTextFormat: &format,
		TextEdit: protocol.TextEdit{
			Range:   result.Range,
			NewText: result.Text,
		},
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        []protocol.CompletionItem{item},
	}, nil
}
