package dispatch

import (
	"encoding/json"

	"github.com/logos-lang/logos-go/internal/extract"
	"github.com/logos-lang/logos-go/internal/symbol"
)

func handleDidOpen(state *State, raw json.RawMessage) (any, error) {
	var params DidOpenParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, invalidParams(err)
	}

	state.lockMutating()
	defer state.unlockMutating()

	state.Documents.Open(params.TextDocument.URI, params.TextDocument.LanguageID, params.TextDocument.Text)
	reindex(state, params.TextDocument.URI, params.TextDocument.LanguageID, params.TextDocument.Text)
	return nil, nil
}

func handleDidChange(state *State, raw json.RawMessage) (any, error) {
	var params DidChangeParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, invalidParams(err)
	}
	if len(params.ContentChanges) == 0 {
		return nil, nil
	}

	state.lockMutating()
	defer state.unlockMutating()

	uri := params.TextDocument.URI
	text := params.ContentChanges[len(params.ContentChanges)-1].Text
	state.Documents.SetContent(uri, text)

	doc, ok := state.Documents.Get(uri)
	if !ok {
		return nil, nil
	}
	reindex(state, uri, doc.LanguageID, text)
	return nil, nil
}

func handleDidClose(state *State, raw json.RawMessage) (any, error) {
	var params DidCloseParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, invalidParams(err)
	}

	state.lockMutating()
	defer state.unlockMutating()

	state.Documents.Close(params.TextDocument.URI)
	state.Symbols.RemoveDocument(params.TextDocument.URI)
	state.Todos.RemoveDocument(params.TextDocument.URI)
	return nil, nil
}

// reindex atomically replaces uri's derived state after a document
// mutation: the content and derived state (symbol index, TODO index) are
// rebuilt together before the next request is serviced. Caller holds
// state.mu.
func reindex(state *State, uri, languageID, content string) {
	lang, ok := extract.FromString(languageID)
	var symbols []*symbol.Symbol
	if ok {
		res, err := extract.Extract(lang, []byte(content))
		if err == nil {
			symbols = res.Symbols
		}
	}
	state.Symbols.IndexDocument(uri, symbols)
	state.Todos.IndexDocument(uri, languageID, content)
}

func handleDocumentSymbol(state *State, raw json.RawMessage) (any, error) {
	var params DocumentSymbolParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, invalidParams(err)
	}

	state.lockReading()
	defer state.unlockReading()
	return state.Symbols.GetDocumentSymbols(params.TextDocument.URI), nil
}

func handleDiagnostic(state *State, raw json.RawMessage) (any, error) {
	var params DocumentSymbolParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, invalidParams(err)
	}

	state.lockReading()
	doc, ok := state.Documents.Get(params.TextDocument.URI)
	state.unlockReading()
	if !ok {
		return []symbol.Diagnostic{}, nil
	}

	lang, ok := extract.FromString(doc.LanguageID)
	if !ok {
		return []symbol.Diagnostic{}, nil
	}
	res, err := extract.Extract(lang, []byte(doc.Content()))
	if err != nil {
		return []symbol.Diagnostic{}, nil
	}
	return res.Diagnostics, nil
}

func handleWorkspaceSymbol(state *State, raw json.RawMessage) (any, error) {
	var params WorkspaceSymbolParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, invalidParams(err)
	}

	state.lockReading()
	defer state.unlockReading()
	return state.Symbols.Search(params.Query), nil
}
