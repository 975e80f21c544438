package scope

import (
	"strings"

	"github.com/logos-lang/logos-go/internal/position"
	"github.com/logos-lang/logos-go/internal/symbol"
)

// Resolver answers positional and name-based symbol queries against a
// document's symbol tree and its derived scope tree.
type Resolver struct {
	tree    *Tree
	symbols []*symbol.Symbol
}

// NewResolver pairs a scope tree with the symbol tree it was built from.
func NewResolver(tree *Tree, symbols []*symbol.Symbol) *Resolver {
	return &Resolver{tree: tree, symbols: symbols}
}

// FindSymbolAt returns the deepest symbol whose selection range contains
// pos; failing that, the deepest symbol whose full range contains it.
func (r *Resolver) FindSymbolAt(pos position.Position) (*symbol.Symbol, bool) {
	if s, ok := findByRange(r.symbols, pos, func(s *symbol.Symbol) position.Range { return s.SelectionRange }); ok {
		return s, true
	}
	return findByRange(r.symbols, pos, func(s *symbol.Symbol) position.Range { return s.Range })
}

// findByRange returns the deepest symbol whose range (by the chosen range
// accessor) contains pos, checking a symbol's descendants before the symbol
// itself, so a nested match is found even when its ancestors' ranges (e.g.
// their selection ranges) do not contain pos.
func findByRange(symbols []*symbol.Symbol, pos position.Position, rangeOf func(*symbol.Symbol) position.Range) (*symbol.Symbol, bool) {
	for _, s := range symbols {
		if child, ok := findByRange(s.Children, pos, rangeOf); ok {
			return child, true
		}
		if rangeOf(s).Contains(pos) {
			return s, true
		}
	}
	return nil, false
}

// FindDefinition walks from the innermost scope at fromPosition outward
// through the parent chain, returning the first symbol whose selection
// range starts inside the current scope and whose name matches exactly.
func (r *Resolver) FindDefinition(name string, fromPosition position.Position) (*symbol.Symbol, bool) {
	scopeID, ok := r.tree.ScopeAt(fromPosition)
	if !ok {
		return nil, false
	}
	return r.searchScopesForDefinition(name, scopeID)
}

func (r *Resolver) searchScopesForDefinition(name string, scopeID int) (*symbol.Symbol, bool) {
	s, ok := r.tree.GetScope(scopeID)
	if !ok {
		return nil, false
	}
	if sym, ok := firstDeclaredIn(r.symbols, name, s.Range); ok {
		return sym, true
	}
	if s.Parent >= 0 {
		return r.searchScopesForDefinition(name, s.Parent)
	}
	return nil, false
}

// firstDeclaredIn searches symbols and their descendants in source order for
// the first one named name whose selection range starts inside scopeRange.
func firstDeclaredIn(symbols []*symbol.Symbol, name string, scopeRange position.Range) (*symbol.Symbol, bool) {
	for _, sym := range symbols {
		if sym.Name == name && scopeRange.Contains(sym.SelectionRange.Start) {
			return sym, true
		}
		if found, ok := firstDeclaredIn(sym.Children, name, scopeRange); ok {
			return found, true
		}
	}
	return nil, false
}

// FindReferences returns the locations treated as references to sym.
// This conflates declarations with references: any name-equal symbol
// anywhere in the tree counts, not just binding occurrences.
func (r *Resolver) FindReferences(sym *symbol.Symbol) []position.Range {
	var out []position.Range
	collectByName(r.symbols, sym.Name, &out)
	return out
}

func collectByName(symbols []*symbol.Symbol, name string, out *[]position.Range) {
	for _, s := range symbols {
		if s.Name == name {
			*out = append(*out, s.SelectionRange)
		}
		collectByName(s.Children, name, out)
	}
}

// SearchSymbols recursively matches query (lowercased, substring) against
// every symbol's lowercased name.
func (r *Resolver) SearchSymbols(query string) []*symbol.Symbol {
	lower := strings.ToLower(query)
	var out []*symbol.Symbol
	searchRecursive(r.symbols, lower, &out)
	return out
}

func searchRecursive(symbols []*symbol.Symbol, query string, out *[]*symbol.Symbol) {
	for _, s := range symbols {
		if strings.Contains(strings.ToLower(s.Name), query) {
			*out = append(*out, s)
		}
		searchRecursive(s.Children, query, out)
	}
}
