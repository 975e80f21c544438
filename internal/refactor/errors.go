package refactor

import (
	"errors"
	"fmt"
	"strings"
)

// Validate-stage failures are non-retryable and carry a message.
var (
	ErrEmptySelection           = errors.New("selection is empty")
	ErrCrossesStatementBoundary = errors.New("selection contains a statement terminator")
	ErrUnbalancedExpression     = errors.New("selection is not a balanced expression")
	ErrInvalidSelection         = errors.New("selection cannot be resolved in the document")
	ErrInvalidIdentifier        = errors.New("name is not a valid identifier")
	ErrSelectionNotWholeLines   = errors.New("selection must span whole lines starting at the first non-whitespace column")
	ErrAmbiguousExtraction      = errors.New("selection has more than one inferred return value")
	ErrUnsupportedLanguage      = errors.New("unsupported language")
	ErrSymbolNotFound           = errors.New("no declaration found at the selection")
)

// SymbolInUseError is safe-delete's structured failure: the declaration
// has usages outside its own range, so no edits are produced.
type SymbolInUseError struct {
	Usages []Location
}

func (e *SymbolInUseError) Error() string {
	locs := make([]string, len(e.Usages))
	for i, u := range e.Usages {
		locs[i] = fmt.Sprintf("%s:%d:%d", u.URI, u.Range.Start.Line+1, u.Range.Start.Character+1)
	}
	return "Symbol is still in use at: " + strings.Join(locs, ", ")
}
