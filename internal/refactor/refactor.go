// Package refactor implements the extract-variable, extract-method, and
// safe-delete operations as Validate -> Plan -> Emit pipelines.
package refactor

import (
	"github.com/logos-lang/logos-go/internal/extract"
	"github.com/logos-lang/logos-go/internal/position"
	"github.com/logos-lang/logos-go/internal/symbol"
)

// Context is the input every refactor operation shares: the document being
// edited, the user's selection, and (for safe-delete) the symbol tree
// already extracted for it.
type Context struct {
	URI       string
	Content   string
	Selection position.Range
	Language  extract.Language
	Symbols   []*symbol.Symbol
}

// Edit is a single (range, replacement text) pair.
type Edit struct {
	Range   position.Range
	NewText string
}

// Result is the uniform shape every refactor operation returns on
// success.
type Result struct {
	Edits         []Edit
	Description   string
	GeneratedCode string
}

// OpenDocument is one workspace document visible to cross-document
// operations like safe-delete.
type OpenDocument struct {
	URI     string
	Content string
}

// Location is a usage site: a URI plus the range within it.
type Location struct {
	URI   string
	Range position.Range
}
