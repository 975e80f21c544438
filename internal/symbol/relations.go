package symbol

import "github.com/logos-lang/logos-go/internal/position"

// ImportedItem is a single named import within an Import record.
type ImportedItem struct {
	Name  string
	Alias string // empty when not aliased
}

// Import is a JS/TS import clause, produced by the richer TypeScript and
// JavaScript adapters only.
type Import struct {
	ModulePath string
	Items      []ImportedItem
	TypeOnly   bool
	Range      position.Range
}

// Export is a JS/TS export clause.
type Export struct {
	Name       string
	IsDefault  bool
	FromModule string // non-empty for re-exports
	Range      position.Range
}

// Call records a call or new-expression.
type Call struct {
	CalleeName    string // simple name
	QualifiedName string // optional qualified form, may be empty
	IsNew         bool
	Range         position.Range
}

// TypeRelation records an extends/implements edge between named types.
type TypeRelation struct {
	Kind       RelationKind
	FromType   string
	ToType     string
	Range      position.Range
}

// RelationKind distinguishes extends from implements edges.
type RelationKind int

const (
	RelationExtends RelationKind = iota + 1
	RelationImplements
)

// RichExtraction bundles the additional JS/TS-only analyses alongside the
// ordinary symbol tree.
type RichExtraction struct {
	Symbols   []*Symbol
	Imports   []Import
	Exports   []Export
	Calls     []Call
	Relations []TypeRelation
}
