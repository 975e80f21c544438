package dispatch

import (
	"encoding/json"
	"fmt"

	"github.com/logos-lang/logos-go/internal/extract"
)

// handleHover reports the symbol at the cursor, if any, as a markdown
// "**name** (Kind)" string scoped to its selection range.
func handleHover(state *State, raw json.RawMessage) (any, error) {
	var params TextDocumentPositionParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, invalidParams(err)
	}

	state.lockReading()
	defer state.unlockReading()

	sym, ok := state.Symbols.FindAtPosition(params.TextDocument.URI, params.Position)
	if !ok {
		return nil, nil
	}
	return HoverResult{
		Contents: MarkupContent{
			Kind:  "markdown",
			Value: fmt.Sprintf("**%s** (%s)", sym.Name, sym.Kind),
		},
		Range: sym.SelectionRange,
	}, nil
}

// handleCompletion offers the open document's language keywords followed
// by its indexed symbols; it never looks beyond the current document, so
// callers on an unopened URI get an empty, complete list rather than an
// error.
func handleCompletion(state *State, raw json.RawMessage) (any, error) {
	var params TextDocumentPositionParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, invalidParams(err)
	}

	state.lockReading()
	defer state.unlockReading()

	doc, ok := state.Documents.Get(params.TextDocument.URI)
	if !ok {
		return CompletionList{Items: []CompletionItem{}}, nil
	}

	var items []CompletionItem
	if lang, ok := extract.FromString(doc.LanguageID); ok {
		for _, kw := range lang.Keywords() {
			items = append(items, CompletionItem{Label: kw, Kind: 14, Detail: "keyword"})
		}
	}
	for _, sym := range state.Symbols.GetDocumentSymbols(params.TextDocument.URI) {
		items = append(items, CompletionItem{
			Label:  sym.Name,
			Kind:   sym.Kind.ToCompletionKind(),
			Detail: sym.Kind.String(),
		})
	}

	return CompletionList{IsIncomplete: false, Items: items}, nil
}
