package server

import (
	"emmetls/internal/config"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func (ls *Server) initialize(
	context *glsp.Context,
	params *protocol.InitializeParams,
) (any, error) {
	if params.InitializationOptions != nil {
		cfg, err := config.Load(params.InitializationOptions)
		if err != nil {
			ls.log.Errorf("invalid initializationOptions: %s", err.Error())
		} else {
			ls.store.Replace(cfg)
		}
	}

	syncKind := protocol.TextDocumentSyncKindIncremental
	capabilities := ls.handler.CreateServerCapabilities()
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: &protocol.True,
		Change:    &syncKind,
		Save:      &protocol.SaveOptions{IncludeText: &protocol.True},
	}
	capabilities.CompletionProvider = &protocol.CompletionOptions{
		TriggerCharacters: []string{".", "#", ">", "*", "!", ":"},
	}
	capabilities.ExecuteCommandProvider = &protocol.ExecuteCommandOptions{
		Commands: []string{commandExpandAbbreviation},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &version,
		},
	}, nil
}

func (ls *Server) initialized(
	context *glsp.Context,
	params *protocol.InitializedParams,
) error {
	ls.log.Info("Client initialized.")
	return nil
}

func (ls *Server) shutdown(context *glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (ls *Server) setTrace(context *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *Server) workspaceDidChangeConfiguration(
	context *glsp.Context,
	params *protocol.DidChangeConfigurationParams,
) error {
	cfg, err := config.Load(params.Settings)
	if err != nil {
		ls.log.Errorf("invalid configuration: %s", err.Error())
		return nil
	}
	ls.store.Replace(cfg)
	ls.log.Infof("Configuration reloaded, %d language(s) excluded.", len(cfg.ExcludeLanguages))
	return nil
}
