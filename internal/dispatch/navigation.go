package dispatch

import (
	"encoding/json"

	"github.com/logos-lang/logos-go/internal/extract"
	"github.com/logos-lang/logos-go/internal/scope"
)

// resolverFor re-extracts uri's symbol tree and builds a scope.Resolver
// over it. Requests are served one at a time, so paying extraction cost
// per navigation call keeps derived state always fresh without a
// separate cache to invalidate.
func resolverFor(state *State, uri string) (*scope.Resolver, bool) {
	doc, ok := state.Documents.Get(uri)
	if !ok {
		return nil, false
	}
	lang, ok := extract.FromString(doc.LanguageID)
	if !ok {
		return nil, false
	}
	res, err := extract.Extract(lang, []byte(doc.Content()))
	if err != nil {
		return nil, false
	}
	tree := scope.FromSymbols(res.Symbols)
	return scope.NewResolver(tree, res.Symbols), true
}

func handleDefinition(state *State, raw json.RawMessage) (any, error) {
	var params TextDocumentPositionParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, invalidParams(err)
	}

	state.lockReading()
	defer state.unlockReading()

	resolver, ok := resolverFor(state, params.TextDocument.URI)
	if !ok {
		return nil, nil
	}
	sym, ok := resolver.FindSymbolAt(params.Position)
	if !ok {
		return nil, nil
	}
	def, ok := resolver.FindDefinition(sym.Name, params.Position)
	if !ok {
		return nil, nil
	}
	return Location{URI: params.TextDocument.URI, Range: def.SelectionRange}, nil
}

func handleReferences(state *State, raw json.RawMessage) (any, error) {
	var params ReferenceParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, invalidParams(err)
	}

	state.lockReading()
	defer state.unlockReading()

	resolver, ok := resolverFor(state, params.TextDocument.URI)
	if !ok {
		return []Location{}, nil
	}
	sym, ok := resolver.FindSymbolAt(params.Position)
	if !ok {
		return []Location{}, nil
	}

	var out []Location
	for _, r := range resolver.FindReferences(sym) {
		out = append(out, Location{URI: params.TextDocument.URI, Range: r})
	}
	return out, nil
}

func handlePrepareRename(state *State, raw json.RawMessage) (any, error) {
	var params TextDocumentPositionParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, invalidParams(err)
	}

	state.lockReading()
	defer state.unlockReading()

	resolver, ok := resolverFor(state, params.TextDocument.URI)
	if !ok {
		return nil, nil
	}
	sym, ok := resolver.FindSymbolAt(params.Position)
	if !ok {
		return nil, nil
	}
	return sym.SelectionRange, nil
}

// handleRename returns, for every currently open document, an edit on the
// selection range of each extracted symbol whose name equals that of the
// symbol at the given position. Only declarations the extractors produce
// are renamed; other textual uses of the name (calls, imports) get no edit.
func handleRename(state *State, raw json.RawMessage) (any, error) {
	var params RenameParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, invalidParams(err)
	}

	state.lockReading()
	defer state.unlockReading()

	resolver, ok := resolverFor(state, params.TextDocument.URI)
	if !ok {
		return nil, nil
	}
	sym, ok := resolver.FindSymbolAt(params.Position)
	if !ok {
		return nil, nil
	}

	changes := make(map[string][]TextEdit)
	for _, uri := range state.Documents.URIs() {
		r, ok := resolverFor(state, uri)
		if !ok {
			continue
		}
		for _, match := range r.SearchSymbols(sym.Name) {
			if match.Name != sym.Name {
				continue
			}
			changes[uri] = append(changes[uri], TextEdit{Range: match.SelectionRange, NewText: params.NewName})
		}
	}

	return WorkspaceEdit{Changes: changes}, nil
}
