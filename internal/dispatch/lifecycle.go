package dispatch

import (
	"encoding/json"

	"github.com/logos-lang/logos-go/internal/utils"
)

func handleInitialize(state *State, raw json.RawMessage) (any, error) {
	var params InitializeParams
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &params); err != nil {
			return nil, invalidParams(err)
		}
	}

	state.lockMutating()
	if params.RootURI != nil {
		state.WorkspaceRoot = utils.UriToPath(*params.RootURI)
	}
	state.Initialized = true
	state.unlockMutating()

	return InitializeResult{
		Capabilities: Capabilities{
			TextDocumentSyncKind:    1,
			CompletionTriggerChars:  completionTriggerCharacters,
			HoverProvider:           true,
			DefinitionProvider:      true,
			ReferencesProvider:      true,
			DocumentSymbolProvider:  true,
			WorkspaceSymbolProvider: true,
			RenameProvider:          true,
			PrepareRenameProvider:   true,
			DiagnosticProvider:      true,
			RefactorProvider:        true,
		},
	}, nil
}

func handleInitialized(_ *State, _ json.RawMessage) (any, error) {
	return nil, nil
}

func handleShutdown(state *State, _ json.RawMessage) (any, error) {
	state.lockMutating()
	state.Initialized = false
	state.unlockMutating()
	return nil, nil
}
