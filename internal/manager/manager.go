package manager

import (
	"fmt"
	"sync"

	"emmetls/internal/docpos"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Document is a snapshot of an open editor document. The client owns the
// buffer; the server only mirrors its content and language id.
type Document struct {
	URI      string
	Language string
	Text     string
}

// DocumentManager tracks the open documents per URI.
type DocumentManager struct {
	mu   sync.Mutex
	docs map[string]Document
}

// NewDocumentManager creates an initialized DocumentManager.
func NewDocumentManager() *DocumentManager {
	return &DocumentManager{
		docs: make(map[string]Document),
	}
}

// Open registers (or re-registers) a document with its full content.
func (dm *DocumentManager) Open(uri, language, text string) {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	dm.docs[uri] = Document{URI: uri, Language: language, Text: text}
}

// Get returns the current snapshot for a URI.
func (dm *DocumentManager) Get(uri string) (Document, error) {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	doc, ok := dm.docs[uri]
	if !ok {
		return Document{}, fmt.Errorf("document not loaded for %s", uri)
	}
	return doc, nil
}

// Replace swaps the full content of a document.
func (dm *DocumentManager) Replace(uri, text string) error {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	doc, ok := dm.docs[uri]
	if !ok {
		return fmt.Errorf("document not loaded for %s", uri)
	}
	doc.Text = text
	dm.docs[uri] = doc
	return nil
}

// ApplyChange splices an incremental content change into the document.
func (dm *DocumentManager) ApplyChange(uri string, rng *protocol.Range, text string) error {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	doc, ok := dm.docs[uri]
	if !ok {
		return fmt.Errorf("document not loaded for %s", uri)
	}
	doc.Text = docpos.ApplyChange(doc.Text, rng, text)
	dm.docs[uri] = doc
	return nil
}

// ApplyEdit splices a server-produced TextEdit into the local mirror, so
// follow-up requests see the same content the client will after applying
// the workspace edit.
func (dm *DocumentManager) ApplyEdit(uri string, edit protocol.TextEdit) error {
	return dm.ApplyChange(uri, &edit.Range, edit.NewText)
}

// Release forgets a closed document.
func (dm *DocumentManager) Release(uri string) {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	delete(dm.docs, uri)
}
