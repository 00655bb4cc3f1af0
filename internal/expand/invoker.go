// Package expand ties the gate, extractor and engine into document edits.
package expand

import (
	"context"
	"errors"
	"strings"

	"emmetls/internal/config"
	"emmetls/internal/docpos"
	"emmetls/internal/engine"
	"emmetls/internal/extract"
	"emmetls/internal/syntax"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Invoker evaluates abbreviation expansion requests. All failure modes
// degrade to "nothing to expand": the caller sees a nil result and the
// document is left untouched.
type Invoker struct {
	resolver *syntax.Resolver
	engine   engine.Engine
	store    *config.Store
}

func NewInvoker(resolver *syntax.Resolver, eng engine.Engine, store *config.Store) *Invoker {
	return &Invoker{resolver: resolver, engine: eng, store: store}
}

// Result is one evaluated expansion: the candidate, its replace range and
// the re-indented engine output.
type Result struct {
	Candidate extract.Candidate
	Range     protocol.Range
	Text      string
	Syntax    syntax.Tag
	// Embedded is set when the resolved syntax came from an embedded
	// region rather than the document's own language (css in <style>).
	Embedded bool
}

// Evaluate runs the full pipeline without touching the document:
// configuration gate, syntax resolution, candidate extraction, engine
// call. A nil Result with a nil error is the legitimate "no candidate /
// excluded / rejected" outcome. Context cancellation is the only
// propagated error.
func (iv *Invoker) Evaluate(
	ctx context.Context,
	document string,
	position protocol.Position,
	language string,
) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if iv.store.IsExcluded(language) {
		return nil, nil
	}

	offset := docpos.Offset(document, position)
	tag := iv.resolver.Resolve([]byte(document), offset, language)
	if tag == syntax.None {
		return nil, nil
	}
	if string(tag) != syntax.Canonical(language) && iv.store.IsExcluded(string(tag)) {
		return nil, nil
	}

	candidate := extract.Extract(document, offset, tag)
	if candidate == nil {
		return nil, nil
	}

	settings := iv.store.Current()
	profile := syntax.ProfileFor(tag)
	text, err := iv.engine.Expand(ctx, candidate.Abbreviation, engine.Options{
		Syntax:        string(tag),
		AttributeName: profile.AttributeName,
		SelfClosing:   profile.SelfClosing,
		Stylesheet:    profile.Stylesheet,
		Indent:        settings.Indent,
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		// Malformed or unsupported input: silent no-op.
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &Result{
		Candidate: *candidate,
		Range:     docpos.RangeOf(document, candidate.Start, candidate.End),
		Text:      reindent(text, baseIndent(document, candidate.Start)),
		Syntax:    tag,
		Embedded:  string(tag) != syntax.Canonical(language),
	}, nil
}

// Expand produces the single replace-span edit for a direct expansion
// request, or nil when there is nothing to do.
func (iv *Invoker) Expand(
	ctx context.Context,
	document string,
	position protocol.Position,
	language string,
) (*protocol.TextEdit, error) {
	result, err := iv.Evaluate(ctx, document, position, language)
	if err != nil || result == nil {
		return nil, err
	}
	return &protocol.TextEdit{Range: result.Range, NewText: result.Text}, nil
}

// baseIndent is the leading whitespace of the line the candidate starts
// on; continuation lines of the expansion inherit it.
func baseIndent(document string, offset int) string {
	lineStart := offset
	for lineStart > 0 && document[lineStart-1] != '\n' {
		lineStart--
	}
	end := lineStart
	for end < len(document) && (document[end] == ' ' || document[end] == '\t') {
		end++
	}
	return document[lineStart:end]
}

func reindent(text, indent string) string {
	if indent == "" || !strings.Contains(text, "\n") {
		return text
	}
	return strings.ReplaceAll(text, "\n", "\n"+indent)
}
