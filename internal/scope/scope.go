// Package scope builds a lexical scope tree from a document's symbol
// tree and resolves positions and names against it.
package scope

import (
	"github.com/logos-lang/logos-go/internal/position"
	"github.com/logos-lang/logos-go/internal/symbol"
)

// Scope is one lexical region: a range, an optional owning symbol name, a
// parent link, and the dense IDs of its children.
type Scope struct {
	ID       int
	Parent   int // -1 for the root
	Range    position.Range
	Name     string
	Children []int
}

// Tree is a ScopeTree: scopes addressed by dense integer ID, assigned in
// creation order.
type Tree struct {
	scopes []Scope
	root   int // -1 if empty
}

// FromSymbols builds a root scope spanning the bounding range of the
// top-level symbols, then recursively adds a child scope for every symbol
// that itself has children.
func FromSymbols(symbols []*symbol.Symbol) *Tree {
	t := &Tree{root: -1}
	if len(symbols) == 0 {
		return t
	}

	minStart := symbols[0].Range.Start
	maxEnd := symbols[0].Range.End
	for _, s := range symbols[1:] {
		if s.Range.Start.Less(minStart) {
			minStart = s.Range.Start
		}
		if maxEnd.Less(s.Range.End) {
			maxEnd = s.Range.End
		}
	}

	rootID := t.addScope(Scope{Parent: -1, Range: position.NewRange(minStart, maxEnd)})
	t.root = rootID
	t.addScopesFromSymbols(symbols, rootID)
	return t
}

func (t *Tree) addScopesFromSymbols(symbols []*symbol.Symbol, parentID int) {
	for _, s := range symbols {
		if len(s.Children) == 0 {
			continue
		}
		scopeID := t.addScope(Scope{Parent: parentID, Range: s.Range, Name: s.Name})
		t.scopes[parentID].Children = append(t.scopes[parentID].Children, scopeID)
		t.addScopesFromSymbols(s.Children, scopeID)
	}
}

func (t *Tree) addScope(s Scope) int {
	id := len(t.scopes)
	s.ID = id
	t.scopes = append(t.scopes, s)
	return id
}

// GetScope returns the scope with the given ID.
func (t *Tree) GetScope(id int) (Scope, bool) {
	if id < 0 || id >= len(t.scopes) {
		return Scope{}, false
	}
	return t.scopes[id], true
}

// Root returns the root scope's ID, or -1 if the tree is empty.
func (t *Tree) Root() int { return t.root }

// ScopeAt returns the innermost scope containing position, descending from
// the root through whichever child's range also contains it.
func (t *Tree) ScopeAt(pos position.Position) (int, bool) {
	if t.root < 0 {
		return -1, false
	}
	return t.findScopeAt(t.root, pos)
}

func (t *Tree) findScopeAt(scopeID int, pos position.Position) (int, bool) {
	s, ok := t.GetScope(scopeID)
	if !ok || !s.Range.Contains(pos) {
		return -1, false
	}
	for _, childID := range s.Children {
		if inner, ok := t.findScopeAt(childID, pos); ok {
			return inner, true
		}
	}
	return scopeID, true
}
