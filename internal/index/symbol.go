package index

import (
	"strings"
	"sync"

	"github.com/logos-lang/logos-go/internal/position"
	"github.com/logos-lang/logos-go/internal/symbol"
)

// SymbolIndex owns, per URI, a flattened symbol list plus a shared inverted
// prefix index over every indexed name. Mutating operations take an
// exclusive lock; reads take a shared one.
type SymbolIndex struct {
	mu       sync.RWMutex
	byURI    map[string][]symbol.Indexed
	inverted *invertedIndex
}

// NewSymbolIndex returns an empty index.
func NewSymbolIndex() *SymbolIndex {
	return &SymbolIndex{
		byURI:    make(map[string][]symbol.Indexed),
		inverted: newInvertedIndex(),
	}
}

// IndexDocument replaces uri's entry, removing its old inverted-index
// contributions before adding the new ones.
func (idx *SymbolIndex) IndexDocument(uri string, symbols []*symbol.Symbol) {
	flat := symbol.Flatten(uri, symbols)

	idx.mu.Lock()
	defer idx.mu.Unlock()
	if old, ok := idx.byURI[uri]; ok {
		for _, s := range old {
			idx.inverted.remove(s.Name, uri)
		}
	}
	idx.byURI[uri] = flat
	for _, s := range flat {
		idx.inverted.add(s.Name, uri)
	}
}

// RemoveDocument drops uri's symbol list and every inverted-index
// contribution it made.
func (idx *SymbolIndex) RemoveDocument(uri string) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	old, ok := idx.byURI[uri]
	if !ok {
		return
	}
	for _, s := range old {
		idx.inverted.remove(s.Name, uri)
	}
	delete(idx.byURI, uri)
}

// GetDocumentSymbols returns uri's flattened symbol list in source order.
func (idx *SymbolIndex) GetDocumentSymbols(uri string) []symbol.Indexed {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return append([]symbol.Indexed(nil), idx.byURI[uri]...)
}

// FindAtPosition returns the innermost symbol in uri whose selection range
// (preferred) or full range (fallback) contains pos, breaking ties toward
// the smaller range.
func (idx *SymbolIndex) FindAtPosition(uri string, pos position.Position) (symbol.Indexed, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	var best symbol.Indexed
	var bestSpan int64
	found := false
	consider := func(s symbol.Indexed, r position.Range) {
		if !r.Contains(pos) {
			return
		}
		span := rangeSpan(r)
		if !found || span < bestSpan {
			best, bestSpan, found = s, span, true
		}
	}

	for _, s := range idx.byURI[uri] {
		consider(s, s.SelectionRange)
	}
	if found {
		return best, true
	}
	for _, s := range idx.byURI[uri] {
		consider(s, s.Range)
	}
	return best, found
}

func rangeSpan(r position.Range) int64 {
	lines := int64(r.End.Line) - int64(r.Start.Line)
	chars := int64(r.End.Character) - int64(r.Start.Character)
	return lines*1_000_000 + chars
}

// Search returns indexed symbols whose lowercased name contains query.
// Queries shorter than two characters return nothing. The inverted index
// first narrows the candidates to documents holding at least one name that
// begins with query, and only those documents are scanned, so a name that
// merely contains query in a document where no name begins with it is not
// returned.
func (idx *SymbolIndex) Search(query string) []symbol.Indexed {
	if len(query) < 2 {
		return nil
	}
	lower := strings.ToLower(query)

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	var out []symbol.Indexed
	for _, uri := range idx.inverted.urisForPrefix(lower) {
		for _, s := range idx.byURI[uri] {
			if strings.Contains(strings.ToLower(s.Name), lower) {
				out = append(out, s)
			}
		}
	}
	return out
}
