package dispatch

import (
	"encoding/json"

	"github.com/logos-lang/logos-go/internal/extract"
	"github.com/logos-lang/logos-go/internal/refactor"
)

// RefactorActionResult describes one available (or unavailable) action.
type RefactorActionResult struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	Kind              string `json:"kind"`
	IsAvailable       bool   `json:"isAvailable"`
	UnavailableReason string `json:"unavailableReason,omitempty"`
}

func handleGetRefactorActions(state *State, raw json.RawMessage) (any, error) {
	var params RefactorParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, invalidParams(err)
	}

	state.lockReading()
	doc, ok := state.Documents.Get(params.TextDocument.URI)
	state.unlockReading()
	if !ok {
		return []RefactorActionResult{}, nil
	}
	_, ok = extract.FromString(doc.LanguageID)
	if !ok {
		return []RefactorActionResult{}, nil
	}

	return []RefactorActionResult{
		{ID: "extractVariable", Title: "Extract variable", Kind: "extract.variable", IsAvailable: true},
		{ID: "extractMethod", Title: "Extract method", Kind: "extract.method", IsAvailable: true},
		{ID: "safeDelete", Title: "Safe delete", Kind: "refactor.delete", IsAvailable: true},
	}, nil
}

// RefactorResult is the uniform {success, edits, description,
// generatedCode?, error?} envelope every refactor operation returns.
type RefactorResult struct {
	Success       bool       `json:"success"`
	Edits         []TextEdit `json:"edits,omitempty"`
	Description   string     `json:"description,omitempty"`
	GeneratedCode string     `json:"generatedCode,omitempty"`
	Error         string     `json:"error,omitempty"`
}

func buildContext(state *State, uri string, r refactor.Context) (refactor.Context, bool) {
	doc, ok := state.Documents.Get(uri)
	if !ok {
		return refactor.Context{}, false
	}
	lang, ok := extract.FromString(doc.LanguageID)
	if !ok {
		return refactor.Context{}, false
	}
	res, _ := extract.Extract(lang, []byte(doc.Content()))
	r.URI = uri
	r.Content = doc.Content()
	r.Language = lang
	r.Symbols = res.Symbols
	return r, true
}

func toTextEdits(edits []refactor.Edit) []TextEdit {
	out := make([]TextEdit, len(edits))
	for i, e := range edits {
		out[i] = TextEdit{Range: e.Range, NewText: e.NewText}
	}
	return out
}

func handleExtractVariable(state *State, raw json.RawMessage) (any, error) {
	var params ExtractVariableParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, invalidParams(err)
	}

	state.lockReading()
	defer state.unlockReading()

	ctx, ok := buildContext(state, params.TextDocument.URI, refactor.Context{Selection: params.Range})
	if !ok {
		return RefactorResult{Success: false, Error: "Document not found"}, nil
	}

	res, err := refactor.ExtractVariable(ctx, params.VariableName)
	if err != nil {
		return RefactorResult{Success: false, Error: err.Error()}, nil
	}
	return RefactorResult{
		Success:       true,
		Edits:         toTextEdits(res.Edits),
		Description:   res.Description,
		GeneratedCode: res.GeneratedCode,
	}, nil
}

func handleExtractMethod(state *State, raw json.RawMessage) (any, error) {
	var params ExtractMethodParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, invalidParams(err)
	}

	state.lockReading()
	defer state.unlockReading()

	ctx, ok := buildContext(state, params.TextDocument.URI, refactor.Context{Selection: params.Range})
	if !ok {
		return RefactorResult{Success: false, Error: "Document not found"}, nil
	}

	res, err := refactor.ExtractMethod(ctx, params.MethodName)
	if err != nil {
		return RefactorResult{Success: false, Error: err.Error()}, nil
	}
	return RefactorResult{
		Success:       true,
		Edits:         toTextEdits(res.Edits),
		Description:   res.Description,
		GeneratedCode: res.GeneratedCode,
	}, nil
}

// SafeDeleteAnalysisResult is the wire shape of a safe-delete dry run.
type SafeDeleteAnalysisResult struct {
	CanDelete  bool       `json:"canDelete"`
	SymbolName string     `json:"symbolName,omitempty"`
	Usages     []Location `json:"usages,omitempty"`
	Error      string     `json:"error,omitempty"`
}

func openDocuments(state *State) []refactor.OpenDocument {
	uris := state.Documents.URIs()
	out := make([]refactor.OpenDocument, 0, len(uris))
	for _, uri := range uris {
		if doc, ok := state.Documents.Get(uri); ok {
			out = append(out, refactor.OpenDocument{URI: uri, Content: doc.Content()})
		}
	}
	return out
}

func handleCanSafeDelete(state *State, raw json.RawMessage) (any, error) {
	var params RefactorParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, invalidParams(err)
	}

	state.lockReading()
	defer state.unlockReading()

	ctx, ok := buildContext(state, params.TextDocument.URI, refactor.Context{Selection: params.Range})
	if !ok {
		return SafeDeleteAnalysisResult{CanDelete: false, Error: "Document not found"}, nil
	}

	analysis, err := refactor.AnalyzeSafeDelete(ctx, openDocuments(state))
	if err != nil {
		return SafeDeleteAnalysisResult{CanDelete: false, Error: err.Error()}, nil
	}

	usages := make([]Location, len(analysis.Usages))
	for i, u := range analysis.Usages {
		usages[i] = Location{URI: u.URI, Range: u.Range}
	}
	return SafeDeleteAnalysisResult{
		CanDelete:  analysis.CanDelete,
		SymbolName: analysis.SymbolName,
		Usages:     usages,
	}, nil
}

func handleSafeDelete(state *State, raw json.RawMessage) (any, error) {
	var params RefactorParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, invalidParams(err)
	}

	state.lockReading()
	defer state.unlockReading()

	ctx, ok := buildContext(state, params.TextDocument.URI, refactor.Context{Selection: params.Range})
	if !ok {
		return RefactorResult{Success: false, Error: "Document not found"}, nil
	}

	res, err := refactor.SafeDelete(ctx, openDocuments(state))
	if err != nil {
		return RefactorResult{Success: false, Error: err.Error()}, nil
	}
	return RefactorResult{Success: true, Edits: toTextEdits(res.Edits), Description: res.Description}, nil
}
