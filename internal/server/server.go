package server

import (
	"emmetls/internal/completion"
	"emmetls/internal/config"
	"emmetls/internal/engine"
	"emmetls/internal/expand"
	"emmetls/internal/manager"
	"emmetls/internal/syntax"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
)

const lsName = "emmetls"

var version = "0.1.0"

type Server struct {
	handler     *protocol.Handler
	manager     *manager.DocumentManager
	store       *config.Store
	invoker     *expand.Invoker
	completions *completion.Provider
	log         commonlog.Logger
}

func NewServer() (*server.Server, error) {
	return NewServerWithEngine(engine.NewStatic())
}

// NewServerWithEngine wires the LSP surface around any expansion engine.
// The shipped binary uses the built-in snippet engine; embedders may hand
// in a full grammar engine.
func NewServerWithEngine(eng engine.Engine) (*server.Server, error) {
	ls := newLanguageServer(eng)
	return server.NewServer(ls.handler, lsName, false), nil
}

func newLanguageServer(eng engine.Engine) *Server {
	ls := &Server{
		manager: manager.NewDocumentManager(),
		store:   config.NewStore(),
		log:     commonlog.GetLogger(lsName),
	}
	ls.invoker = expand.NewInvoker(syntax.NewResolver(), eng, ls.store)
	ls.completions = completion.NewProvider(ls.invoker, ls.store)

	ls.handler = &protocol.Handler{
		Initialize:                      ls.initialize,
		Initialized:                     ls.initialized,
		Shutdown:                        ls.shutdown,
		SetTrace:                        ls.setTrace,
		TextDocumentDidOpen:             ls.textDocumentDidOpen,
		TextDocumentDidChange:           ls.textDocumentDidChange,
		TextDocumentDidSave:             ls.textDocumentDidSave,
		TextDocumentDidClose:            ls.textDocumentDidClose,
		TextDocumentCompletion:          ls.textDocumentCompletion,
		WorkspaceDidChangeConfiguration: ls.workspaceDidChangeConfiguration,
		WorkspaceExecuteCommand:         ls.workspaceExecuteCommand,
	}

	return ls
}
