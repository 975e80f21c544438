package dispatch

import (
	"encoding/json"

	"github.com/logos-lang/logos-go/internal/extract"
	"github.com/logos-lang/logos-go/internal/symbol"
	"github.com/logos-lang/logos-go/internal/todo"
	"github.com/logos-lang/logos-go/internal/unused"
)

// TodoItemResult is one todo.Item on the wire, URI-qualified.
type TodoItemResult struct {
	URI      string `json:"uri"`
	Kind     string `json:"kind"`
	Text     string `json:"text"`
	Author   string `json:"author"`
	Priority int    `json:"priority"`
	Line     int    `json:"line"`
}

func handleGetTodoItems(state *State, raw json.RawMessage) (any, error) {
	var params DocumentSymbolParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, invalidParams(err)
	}

	state.lockReading()
	defer state.unlockReading()
	items := state.Todos.GetDocumentTodos(params.TextDocument.URI)
	return toTodoResults(params.TextDocument.URI, items), nil
}

func handleGetAllTodoItems(state *State, _ json.RawMessage) (any, error) {
	state.lockReading()
	defer state.unlockReading()

	all := state.Todos.GetAllTodos()
	out := make([]TodoItemResult, 0, len(all))
	for _, ut := range all {
		out = append(out, toTodoResult(ut.URI, ut.Item))
	}
	return out, nil
}

func toTodoResults(uri string, items []todo.Item) []TodoItemResult {
	out := make([]TodoItemResult, 0, len(items))
	for _, item := range items {
		out = append(out, toTodoResult(uri, item))
	}
	return out
}

func toTodoResult(uri string, item todo.Item) TodoItemResult {
	return TodoItemResult{
		URI:      uri,
		Kind:     item.Kind.String(),
		Text:     item.Text,
		Author:   item.Author,
		Priority: item.Priority,
		Line:     item.Line,
	}
}

// TodoStats is a total todo count plus a per-kind breakdown.
type TodoStats struct {
	Total      int            `json:"total"`
	CountByKind map[string]int `json:"countByKind"`
}

func handleGetTodoStats(state *State, _ json.RawMessage) (any, error) {
	state.lockReading()
	defer state.unlockReading()

	counts := state.Todos.CountByKind()
	byKind := make(map[string]int, len(counts))
	for k, v := range counts {
		byKind[k.String()] = v
	}
	return TodoStats{Total: state.Todos.TodoCount(), CountByKind: byKind}, nil
}

func handleGetUnusedSymbols(state *State, raw json.RawMessage) (any, error) {
	var params DocumentSymbolParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, invalidParams(err)
	}

	state.lockReading()
	defer state.unlockReading()

	doc, ok := state.Documents.Get(params.TextDocument.URI)
	if !ok {
		return []unused.Item{}, nil
	}
	lang, ok := extract.FromString(doc.LanguageID)
	if !ok {
		return []unused.Item{}, nil
	}
	res, err := extract.Extract(lang, []byte(doc.Content()))
	if err != nil {
		return []unused.Item{}, nil
	}
	return unused.Analyze(res.Symbols, doc.Content()), nil
}

// FileRelationsResult is a document's import/export/call/extends graph,
// the cross-document signal JavaScript/TypeScript definition resolution
// needs beyond its own symbol tree. Other languages return an all-empty
// result, the same way extract.ExtractRich leaves their rich fields unset.
type FileRelationsResult struct {
	Imports   []symbol.Import       `json:"imports"`
	Exports   []symbol.Export       `json:"exports"`
	Calls     []symbol.Call         `json:"calls"`
	Relations []symbol.TypeRelation `json:"relations"`
}

func handleGetFileRelations(state *State, raw json.RawMessage) (any, error) {
	var params DocumentSymbolParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, invalidParams(err)
	}

	state.lockReading()
	defer state.unlockReading()

	doc, ok := state.Documents.Get(params.TextDocument.URI)
	if !ok {
		return FileRelationsResult{}, nil
	}
	lang, ok := extract.FromString(doc.LanguageID)
	if !ok {
		return FileRelationsResult{}, nil
	}
	rich, _, err := extract.ExtractRich(lang, []byte(doc.Content()))
	if err != nil {
		return FileRelationsResult{}, nil
	}
	return FileRelationsResult{
		Imports:   rich.Imports,
		Exports:   rich.Exports,
		Calls:     rich.Calls,
		Relations: rich.Relations,
	}, nil
}
