// Package embed exposes the language service as synchronous, string-in/
// string-out entry points suitable for an embedded sandboxed runtime
// (e.g. a WASM host calling into this module) that cannot speak framed
// JSON-RPC. It wraps the same dispatcher operations as plain methods
// returning JSON strings instead of wire-framed responses.
package embed

import (
	"encoding/json"

	"github.com/logos-lang/logos-go/internal/dispatch"
	"github.com/logos-lang/logos-go/internal/position"
)

// Service is one long-lived value wrapping a dispatch.Dispatcher, called
// directly by host code rather than over a socket.
type Service struct {
	d *dispatch.Dispatcher
}

// NewService constructs a ready-to-use, already-initialized service —
// an embedded host has no separate initialize handshake to perform.
func NewService() *Service {
	d := dispatch.New()
	_, _ = d.Dispatch("initialize", nil)
	return &Service{d: d}
}

// OpenDocument registers a document with the service.
func (s *Service) OpenDocument(uri, content, languageID string) {
	params, _ := json.Marshal(dispatch.DidOpenParams{
		TextDocument: dispatch.TextDocumentItem{URI: uri, LanguageID: languageID, Text: content},
	})
	_, _ = s.d.Dispatch("textDocument/didOpen", params)
}

// UpdateDocument replaces a document's content wholesale.
func (s *Service) UpdateDocument(uri, content string) {
	params, _ := json.Marshal(dispatch.DidChangeParams{
		TextDocument:   dispatch.VersionedTextDocumentIdentifier{URI: uri},
		ContentChanges: []dispatch.ContentChangeEvent{{Text: content}},
	})
	_, _ = s.d.Dispatch("textDocument/didChange", params)
}

// CloseDocument drops a document and its derived index entries.
func (s *Service) CloseDocument(uri string) {
	params, _ := json.Marshal(dispatch.DidCloseParams{TextDocument: dispatch.TextDocumentIdentifier{URI: uri}})
	_, _ = s.d.Dispatch("textDocument/didClose", params)
}

// GetDefinition returns a JSON string (or the literal "null") for the
// definition location at line/column, instead of a typed result.
func (s *Service) GetDefinition(uri string, line, column uint32) string {
	return s.callJSON("textDocument/definition", dispatch.TextDocumentPositionParams{
		TextDocument: dispatch.TextDocumentIdentifier{URI: uri},
		Position:     position.Position{Line: line, Character: column},
	})
}

// GetDocumentSymbols returns a document's indexed symbol tree as JSON.
func (s *Service) GetDocumentSymbols(uri string) string {
	return s.callJSON("textDocument/documentSymbol", dispatch.DocumentSymbolParams{
		TextDocument: dispatch.TextDocumentIdentifier{URI: uri},
	})
}

// GetDiagnostics returns a document's parse diagnostics as JSON.
func (s *Service) GetDiagnostics(uri string) string {
	return s.callJSON("textDocument/diagnostic", dispatch.DocumentSymbolParams{
		TextDocument: dispatch.TextDocumentIdentifier{URI: uri},
	})
}

// SearchSymbols searches the workspace symbol index by prefix.
func (s *Service) SearchSymbols(query string) string {
	return s.callJSON("workspace/symbol", dispatch.WorkspaceSymbolParams{Query: query})
}

// GetHover returns the hover contents for the symbol at line/column, if
// any, as JSON.
func (s *Service) GetHover(uri string, line, column uint32) string {
	return s.callJSON("textDocument/hover", dispatch.TextDocumentPositionParams{
		TextDocument: dispatch.TextDocumentIdentifier{URI: uri},
		Position:     position.Position{Line: line, Character: column},
	})
}

// GetCompletions returns keyword and symbol completions for the document
// at uri as JSON.
func (s *Service) GetCompletions(uri string, line, column uint32) string {
	return s.callJSON("textDocument/completion", dispatch.TextDocumentPositionParams{
		TextDocument: dispatch.TextDocumentIdentifier{URI: uri},
		Position:     position.Position{Line: line, Character: column},
	})
}

// GetFileRelations returns a document's import/export/call/extends graph
// as JSON, empty for languages with no richer adapter.
func (s *Service) GetFileRelations(uri string) string {
	return s.callJSON("logos/getFileRelations", dispatch.DocumentSymbolParams{
		TextDocument: dispatch.TextDocumentIdentifier{URI: uri},
	})
}

// GetTodoItems and GetUnusedSymbols surface the logos/* extension
// analyses to the embedded host the same way the dispatcher does for
// the daemon transport.
func (s *Service) GetTodoItems(uri string) string {
	return s.callJSON("logos/getTodoItems", dispatch.DocumentSymbolParams{
		TextDocument: dispatch.TextDocumentIdentifier{URI: uri},
	})
}

func (s *Service) GetUnusedSymbols(uri string) string {
	return s.callJSON("logos/getUnusedSymbols", dispatch.DocumentSymbolParams{
		TextDocument: dispatch.TextDocumentIdentifier{URI: uri},
	})
}

// ExtractVariable and ExtractMethod surface the refactor engine.
func (s *Service) ExtractVariable(uri string, r position.Range, name string) string {
	return s.callJSON("logos/extractVariable", dispatch.ExtractVariableParams{
		TextDocument: dispatch.TextDocumentIdentifier{URI: uri}, Range: r, VariableName: name,
	})
}

func (s *Service) ExtractMethod(uri string, r position.Range, name string) string {
	return s.callJSON("logos/extractMethod", dispatch.ExtractMethodParams{
		TextDocument: dispatch.TextDocumentIdentifier{URI: uri}, Range: r, MethodName: name,
	})
}

func (s *Service) callJSON(method string, params any) string {
	raw, err := json.Marshal(params)
	if err != nil {
		return "null"
	}
	result, err := s.d.Dispatch(method, raw)
	if err != nil {
		return "null"
	}
	out, err := json.Marshal(result)
	if err != nil {
		return "null"
	}
	return string(out)
}

// SupportedLanguages reports every language identifier extract.Extract
// recognizes, letting an embedding host validate languageId up front.
func SupportedLanguages() []string {
	return []string{"python", "go", "rust", "c", "cpp", "java", "javascript", "typescript"}
}
