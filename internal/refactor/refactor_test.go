package refactor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logos-lang/logos-go/internal/extract"
	"github.com/logos-lang/logos-go/internal/position"
	"github.com/logos-lang/logos-go/internal/symbol"
)

func TestExtractVariableProducesDeclarationAndReplacement(t *testing.T) {
	content := "result = compute(a, b)\n"
	ctx := Context{
		URI:       "a.py",
		Content:   content,
		Selection: position.FromCoords(0, 9, 0, 22),
		Language:  extract.Python,
	}

	res, err := ExtractVariable(ctx, "value")
	require.NoError(t, err)
	require.Len(t, res.Edits, 2)
	assert.Equal(t, "value = compute(a, b)\n", res.Edits[0].NewText)
	assert.Equal(t, "value", res.Edits[1].NewText)
}

func TestExtractVariableRejectsEmptySelection(t *testing.T) {
	ctx := Context{
		URI:       "a.py",
		Content:   "x = 1\n",
		Selection: position.FromCoords(0, 1, 0, 1),
		Language:  extract.Python,
	}
	_, err := ExtractVariable(ctx, "y")
	assert.ErrorIs(t, err, ErrEmptySelection)
}

func TestExtractVariableRejectsUnbalancedExpression(t *testing.T) {
	ctx := Context{
		URI:       "a.py",
		Content:   "x = (1 + 2\n",
		Selection: position.FromCoords(0, 4, 0, 10),
		Language:  extract.Python,
	}
	_, err := ExtractVariable(ctx, "y")
	assert.ErrorIs(t, err, ErrUnbalancedExpression)
}

func TestExtractVariableRejectsInvalidIdentifier(t *testing.T) {
	ctx := Context{URI: "a.py", Content: "x = 1\n", Selection: position.FromCoords(0, 4, 0, 5), Language: extract.Python}
	_, err := ExtractVariable(ctx, "1bad")
	assert.ErrorIs(t, err, ErrInvalidIdentifier)
}

func TestSafeDeleteBlockedByUsageElsewhere(t *testing.T) {
	aContent := "export function foo() {}\n"
	bContent := "import { foo } from './a';\nfoo();\n"

	fooSymbol := &symbol.Symbol{
		Name:           "foo",
		Kind:           symbol.KindFunction,
		Range:          position.FromCoords(0, 0, 0, 25),
		SelectionRange: position.FromCoords(0, 16, 0, 19),
	}

	ctx := Context{
		URI:       "a.ts",
		Content:   aContent,
		Selection: position.FromCoords(0, 16, 0, 16),
		Language:  extract.TypeScript,
		Symbols:   []*symbol.Symbol{fooSymbol},
	}
	openDocs := []OpenDocument{
		{URI: "a.ts", Content: aContent},
		{URI: "b.ts", Content: bContent},
	}

	_, err := SafeDelete(ctx, openDocs)
	require.Error(t, err)
	var inUse *SymbolInUseError
	require.True(t, errors.As(err, &inUse))
	assert.Len(t, inUse.Usages, 2)
}

func TestSafeDeleteSucceedsWhenUnused(t *testing.T) {
	content := "function onlyHere() {}\n"
	sym := &symbol.Symbol{
		Name:           "onlyHere",
		Kind:           symbol.KindFunction,
		Range:          position.FromCoords(0, 0, 0, 23),
		SelectionRange: position.FromCoords(0, 9, 0, 17),
	}
	ctx := Context{
		URI:       "a.ts",
		Content:   content,
		Selection: position.FromCoords(0, 9, 0, 9),
		Language:  extract.TypeScript,
		Symbols:   []*symbol.Symbol{sym},
	}
	openDocs := []OpenDocument{{URI: "a.ts", Content: content}}

	res, err := SafeDelete(ctx, openDocs)
	require.NoError(t, err)
	require.Len(t, res.Edits, 1)
	assert.Equal(t, "", res.Edits[0].NewText)
}
