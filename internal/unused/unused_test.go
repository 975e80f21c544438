package unused

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logos-lang/logos-go/internal/position"
	"github.com/logos-lang/logos-go/internal/symbol"
)

func TestAnalyzeFlagsSingleOccurrenceDeclarations(t *testing.T) {
	content := "def helper():\n    pass\n\ndef used():\n    used()\n"
	symbols := []*symbol.Symbol{
		{Name: "helper", Kind: symbol.KindFunction, Range: position.FromCoords(0, 0, 1, 8)},
		{Name: "used", Kind: symbol.KindFunction, Range: position.FromCoords(3, 0, 4, 9)},
	}

	items := Analyze(symbols, content)
	require.Len(t, items, 1)
	assert.Equal(t, "helper", items[0].Name)
	assert.True(t, items[0].CanRemove)
	require.NotNil(t, items[0].FixAction)
}

func TestAnalyzeSkipsUnderscorePrefixedNames(t *testing.T) {
	content := "x = _ignored\n"
	symbols := []*symbol.Symbol{{Name: "_ignored", Kind: symbol.KindVariable, Range: position.FromCoords(0, 4, 0, 12)}}
	assert.Empty(t, Analyze(symbols, content))
}

func TestParametersAreNeverAutoRemovable(t *testing.T) {
	content := "func f(unusedParam int) {}\n"
	symbols := []*symbol.Symbol{{Name: "unusedParam", Kind: symbol.KindParameter, Range: position.FromCoords(0, 7, 0, 23)}}

	items := Analyze(symbols, content)
	require.Len(t, items, 1)
	assert.False(t, items[0].CanRemove)
	assert.Nil(t, items[0].FixAction)
}

func TestExportedFunctionsAreNotAutoRemovable(t *testing.T) {
	content := "func Exported() {}\n"
	symbols := []*symbol.Symbol{{Name: "Exported", Kind: symbol.KindFunction, Range: position.FromCoords(0, 0, 0, 19)}}

	items := Analyze(symbols, content)
	require.Len(t, items, 1)
	assert.False(t, items[0].CanRemove)
}
