package dispatch

import (
	"encoding/json"
	"testing"

	"github.com/logos-lang/logos-go/internal/symbol"
)

func TestDispatchRejectsBeforeInitialize(t *testing.T) {
	d := New()
	_, err := d.Dispatch("textDocument/documentSymbol", nil)
	if err == nil {
		t.Fatal("expected an error before initialize")
	}
	de, ok := err.(*Error)
	if !ok || de.Code != ServerNotInitialized {
		t.Fatalf("expected ServerNotInitialized, got %v", err)
	}
}

func TestDispatchUnknownMethod(t *testing.T) {
	d := New()
	initialize(t, d)

	_, err := d.Dispatch("logos/doesNotExist", nil)
	de, ok := err.(*Error)
	if !ok || de.Code != MethodNotFound {
		t.Fatalf("expected MethodNotFound, got %v", err)
	}
}

func TestDispatchOpenAndDocumentSymbol(t *testing.T) {
	d := New()
	initialize(t, d)

	openParams := DidOpenParams{TextDocument: TextDocumentItem{
		URI:        "file:///a.go",
		LanguageID: "go",
		Text:       "package main\n\nfunc main() {}\n",
	}}
	raw, err := json.Marshal(openParams)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := d.Dispatch("textDocument/didOpen", raw); err != nil {
		t.Fatalf("didOpen failed: %v", err)
	}

	symParams, err := json.Marshal(DocumentSymbolParams{TextDocument: TextDocumentIdentifier{URI: "file:///a.go"}})
	if err != nil {
		t.Fatal(err)
	}
	result, err := d.Dispatch("textDocument/documentSymbol", symParams)
	if err != nil {
		t.Fatalf("documentSymbol failed: %v", err)
	}
	symbols, ok := result.([]symbol.Indexed)
	if !ok {
		t.Fatalf("expected []symbol.Indexed, got %T", result)
	}
	found := false
	for _, s := range symbols {
		if s.Name == "main" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected to find main function among document symbols")
	}
}

func TestDispatchCloseRemovesSymbols(t *testing.T) {
	d := New()
	initialize(t, d)

	openParams, _ := json.Marshal(DidOpenParams{TextDocument: TextDocumentItem{
		URI:        "file:///b.go",
		LanguageID: "go",
		Text:       "package main\n\nfunc helper() {}\n",
	}})
	if _, err := d.Dispatch("textDocument/didOpen", openParams); err != nil {
		t.Fatal(err)
	}

	closeParams, _ := json.Marshal(DidCloseParams{TextDocument: TextDocumentIdentifier{URI: "file:///b.go"}})
	if _, err := d.Dispatch("textDocument/didClose", closeParams); err != nil {
		t.Fatal(err)
	}

	symParams, _ := json.Marshal(DocumentSymbolParams{TextDocument: TextDocumentIdentifier{URI: "file:///b.go"}})
	result, err := d.Dispatch("textDocument/documentSymbol", symParams)
	if err != nil {
		t.Fatal(err)
	}
	symbols, _ := result.([]symbol.Indexed)
	if len(symbols) != 0 {
		t.Fatalf("expected no symbols after close, got %d", len(symbols))
	}
}

func initialize(t *testing.T, d *Dispatcher) {
	t.Helper()
	params, err := json.Marshal(InitializeParams{})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := d.Dispatch("initialize", params); err != nil {
		t.Fatalf("initialize failed: %v", err)
	}
}
