// Package engine defines the abbreviation-expansion engine contract.
//
// The engine is a pure function from abbreviation text and per-syntax
// options to expansion text. The full Emmet operator grammar lives in an
// external engine; the server accepts any implementation of Engine.
package engine

import (
	"context"
	"errors"
)

// Options enumerate the syntax-specific output rules.
type Options struct {
	// Syntax is the canonical syntax name the abbreviation resolved to.
	Syntax string
	// AttributeName is the class attribute name ("class" or "className").
	AttributeName string
	// SelfClosing emits "/>" on empty elements.
	SelfClosing bool
	// Stylesheet selects declaration output instead of markup.
	Stylesheet bool
	// Indent is the unit for nested output lines.
	Indent string
}

// Engine turns an abbreviation into expansion text. Implementations must
// be side-effect free and safe for serial reuse.
type Engine interface {
	Expand(ctx context.Context, abbreviation string, opts Options) (string, error)
}

// ErrInvalid marks input the engine rejects as malformed. Callers treat
// it as "no expansion", never as a user-facing error.
var ErrInvalid = errors.New("invalid abbreviation")

// ErrUnsupported marks abbreviations using operators this engine does not
// implement (nesting, repetition, grouping). Same silent outcome as
// ErrInvalid for callers.
var ErrUnsupported = errors.New("unsupported abbreviation operator")
