package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logos-lang/logos-go/internal/position"
	"github.com/logos-lang/logos-go/internal/symbol"
)

func buildSymbols() []*symbol.Symbol {
	method := &symbol.Symbol{
		Name:           "greet",
		Kind:           symbol.KindMethod,
		Range:          position.FromCoords(1, 4, 3, 5),
		SelectionRange: position.FromCoords(1, 8, 1, 13),
	}
	class := &symbol.Symbol{
		Name:           "Greeter",
		Kind:           symbol.KindClass,
		Range:          position.FromCoords(0, 0, 4, 1),
		SelectionRange: position.FromCoords(0, 6, 0, 13),
		Children:       []*symbol.Symbol{method},
	}
	return []*symbol.Symbol{class}
}

func TestFromSymbolsBuildsNestedScopes(t *testing.T) {
	tree := FromSymbols(buildSymbols())
	root, ok := tree.GetScope(tree.Root())
	require.True(t, ok)
	assert.Len(t, root.Children, 1)

	child, ok := tree.GetScope(root.Children[0])
	require.True(t, ok)
	assert.Equal(t, "Greeter", child.Name)
}

func TestScopeAtFindsInnermostScope(t *testing.T) {
	tree := FromSymbols(buildSymbols())
	id, ok := tree.ScopeAt(position.New(2, 0))
	require.True(t, ok)
	s, _ := tree.GetScope(id)
	assert.Equal(t, "Greeter", s.Name)
}

func TestFindSymbolAtPrefersSelectionRange(t *testing.T) {
	symbols := buildSymbols()
	tree := FromSymbols(symbols)
	resolver := NewResolver(tree, symbols)

	s, ok := resolver.FindSymbolAt(position.New(1, 10))
	require.True(t, ok)
	assert.Equal(t, "greet", s.Name)
}

func TestFindDefinitionWalksScopeChainOutward(t *testing.T) {
	symbols := buildSymbols()
	tree := FromSymbols(symbols)
	resolver := NewResolver(tree, symbols)

	s, ok := resolver.FindDefinition("Greeter", position.New(2, 0))
	require.True(t, ok)
	assert.Equal(t, "Greeter", s.Name)
}

func TestSearchSymbolsMatchesSubstringCaseInsensitively(t *testing.T) {
	symbols := buildSymbols()
	tree := FromSymbols(symbols)
	resolver := NewResolver(tree, symbols)

	results := resolver.SearchSymbols("gree")
	assert.Len(t, results, 2)
}
