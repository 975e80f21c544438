package dispatch

import "github.com/logos-lang/logos-go/internal/position"

// TextDocumentIdentifier names an open document by URI.
type TextDocumentIdentifier struct {
	URI string `json:"uri"`
}

// TextDocumentItem is the payload `didOpen` hands over.
type TextDocumentItem struct {
	URI        string `json:"uri"`
	LanguageID string `json:"languageId"`
	Version    uint32 `json:"version"`
	Text       string `json:"text"`
}

// VersionedTextDocumentIdentifier names a document plus the version the
// following change applies to.
type VersionedTextDocumentIdentifier struct {
	URI     string `json:"uri"`
	Version uint32 `json:"version"`
}

// ContentChangeEvent is one full-document replacement; the server only
// supports full-content document sync, no incremental ranges over the
// wire.
type ContentChangeEvent struct {
	Text string `json:"text"`
}

// DidOpenParams is `textDocument/didOpen`'s payload.
type DidOpenParams struct {
	TextDocument TextDocumentItem `json:"textDocument"`
}

// DidChangeParams is `textDocument/didChange`'s payload.
type DidChangeParams struct {
	TextDocument   VersionedTextDocumentIdentifier `json:"textDocument"`
	ContentChanges []ContentChangeEvent            `json:"contentChanges"`
}

// DidCloseParams is `textDocument/didClose`'s payload.
type DidCloseParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

// TextDocumentPositionParams is the common {uri, position} shape used by
// hover/definition/prepareRename.
type TextDocumentPositionParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Position     position.Position      `json:"position"`
}

// ReferenceParams adds the include-declaration flag to a position query.
type ReferenceParams struct {
	TextDocumentPositionParams
	Context ReferenceContext `json:"context"`
}

// ReferenceContext carries the includeDeclaration flag.
type ReferenceContext struct {
	IncludeDeclaration bool `json:"includeDeclaration"`
}

// RenameParams is `textDocument/rename`'s payload.
type RenameParams struct {
	TextDocumentPositionParams
	NewName string `json:"newName"`
}

// MarkupContent is hover's rendered-text payload.
type MarkupContent struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

// HoverResult is `textDocument/hover`'s response shape.
type HoverResult struct {
	Contents MarkupContent  `json:"contents"`
	Range    position.Range `json:"range"`
}

// CompletionItem is one suggestion in a completion list.
type CompletionItem struct {
	Label  string `json:"label"`
	Kind   uint32 `json:"kind"`
	Detail string `json:"detail"`
}

// CompletionList is `textDocument/completion`'s response shape.
type CompletionList struct {
	IsIncomplete bool             `json:"isIncomplete"`
	Items        []CompletionItem `json:"items"`
}

// WorkspaceSymbolParams carries the search query.
type WorkspaceSymbolParams struct {
	Query string `json:"query"`
}

// DocumentSymbolParams carries just a URI.
type DocumentSymbolParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

// RefactorParams is the {textDocument, range} shape shared by
// getRefactorActions/canSafeDelete/safeDelete.
type RefactorParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Range        position.Range         `json:"range"`
}

// ExtractVariableParams adds the new variable's name to RefactorParams.
type ExtractVariableParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Range        position.Range         `json:"range"`
	VariableName string                 `json:"variableName"`
}

// ExtractMethodParams adds the new method's name to RefactorParams.
type ExtractMethodParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Range        position.Range         `json:"range"`
	MethodName   string                 `json:"methodName"`
}

// TextEdit is a single (range, replacement text) pair on the wire.
type TextEdit struct {
	Range   position.Range `json:"range"`
	NewText string         `json:"newText"`
}

// WorkspaceEdit groups edits by URI, as returned by rename.
type WorkspaceEdit struct {
	Changes map[string][]TextEdit `json:"changes"`
}

// Location pairs a URI with a range, as returned by references/definition.
type Location struct {
	URI   string         `json:"uri"`
	Range position.Range `json:"range"`
}

// InitializeParams is the lifecycle-opening payload.
type InitializeParams struct {
	ProcessID *int    `json:"processId"`
	RootURI   *string `json:"rootUri"`
}

// InitializeResult announces the capabilities envelope.
type InitializeResult struct {
	Capabilities Capabilities `json:"capabilities"`
}

// Capabilities enumerates the features initialize advertises to the
// client.
type Capabilities struct {
	TextDocumentSyncKind     int      `json:"textDocumentSyncKind"` // 1 = full
	CompletionTriggerChars   []string `json:"completionTriggerCharacters"`
	HoverProvider            bool     `json:"hoverProvider"`
	DefinitionProvider       bool     `json:"definitionProvider"`
	ReferencesProvider       bool     `json:"referencesProvider"`
	DocumentSymbolProvider   bool     `json:"documentSymbolProvider"`
	WorkspaceSymbolProvider  bool     `json:"workspaceSymbolProvider"`
	RenameProvider           bool     `json:"renameProvider"`
	PrepareRenameProvider    bool     `json:"prepareRenameProvider"`
	DiagnosticProvider       bool     `json:"diagnosticProvider"`
	RefactorProvider         bool     `json:"refactorProvider"`
}

var completionTriggerCharacters = []string{".", ":", "<", "\"", "'", "/", "@", "{", "("}
