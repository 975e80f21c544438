package index

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/logos-lang/logos-go/internal/position"
	"github.com/logos-lang/logos-go/internal/symbol"
)

func sym(name string, kind symbol.Kind, startLine, endLine uint32) *symbol.Symbol {
	r := position.FromCoords(startLine, 0, endLine, 0)
	return &symbol.Symbol{
		Name:           name,
		Kind:           kind,
		Range:          r,
		SelectionRange: position.FromCoords(startLine, 0, startLine, uint32(len(name))),
	}
}

func TestIndexDocumentAndSearch(t *testing.T) {
	idx := NewSymbolIndex()
	idx.IndexDocument("a.py", []*symbol.Symbol{sym("handleRequest", symbol.KindFunction, 0, 2)})
	idx.IndexDocument("b.py", []*symbol.Symbol{sym("other", symbol.KindFunction, 0, 2)})

	assert.Len(t, idx.Search("han"), 1)
	assert.Empty(t, idx.Search("h"))
	assert.Equal(t, "handleRequest", idx.Search("han")[0].Name)
}

func TestRemoveDocumentClearsInvertedIndex(t *testing.T) {
	idx := NewSymbolIndex()
	idx.IndexDocument("a.py", []*symbol.Symbol{sym("handleRequest", symbol.KindFunction, 0, 2)})
	idx.RemoveDocument("a.py")

	assert.Empty(t, idx.Search("han"))
	assert.Empty(t, idx.GetDocumentSymbols("a.py"))
}

func TestIndexDocumentReplacesOldEntries(t *testing.T) {
	idx := NewSymbolIndex()
	idx.IndexDocument("a.py", []*symbol.Symbol{sym("handleRequest", symbol.KindFunction, 0, 2)})
	idx.IndexDocument("a.py", []*symbol.Symbol{sym("other", symbol.KindFunction, 0, 2)})

	assert.Empty(t, idx.Search("han"))
	assert.Len(t, idx.Search("oth"), 1)
}

func TestFindAtPositionPrefersSelectionRangeAndSmallerSpan(t *testing.T) {
	idx := NewSymbolIndex()
	outer := sym("Outer", symbol.KindClass, 0, 10)
	inner := sym("inner", symbol.KindMethod, 2, 4)
	idx.IndexDocument("a.go", []*symbol.Symbol{outer, inner})

	found, ok := idx.FindAtPosition("a.go", position.New(3, 0))
	assert.True(t, ok)
	assert.Equal(t, "inner", found.Name)
}

func TestSearchRequiresMinimumQueryLength(t *testing.T) {
	idx := NewSymbolIndex()
	idx.IndexDocument("a.py", []*symbol.Symbol{sym("x", symbol.KindVariable, 0, 0)})
	assert.Nil(t, idx.Search(""))
	assert.Nil(t, idx.Search("a"))
}
