package refactor

import (
	"fmt"
	"strings"

	"github.com/logos-lang/logos-go/internal/document"
	"github.com/logos-lang/logos-go/internal/position"
)

// ExtractVariable runs the Validate -> Plan -> Emit pipeline for binding
// a selected expression to a new local variable.
func ExtractVariable(ctx Context, newName string) (Result, error) {
	if !isValidIdentifier(newName) {
		return Result{}, ErrInvalidIdentifier
	}

	doc := document.New(ctx.URI, ctx.Language.String(), ctx.Content)

	selected, ok := doc.TextInRange(ctx.Selection)
	if !ok {
		return Result{}, ErrInvalidSelection
	}
	trimmed := strings.TrimSpace(selected)
	if trimmed == "" {
		return Result{}, ErrEmptySelection
	}
	if containsStatementTerminator(trimmed) {
		return Result{}, ErrCrossesStatementBoundary
	}
	if !isBalanced(trimmed) {
		return Result{}, ErrUnbalancedExpression
	}

	// Plan: the enclosing statement is taken to be the line the selection
	// starts on. A statement that begins on an earlier line is not detected;
	// the declaration always goes directly above the selection's line.
	stmtLine := int(ctx.Selection.Start.Line)
	lineText, ok := doc.Line(stmtLine)
	if !ok {
		return Result{}, ErrInvalidSelection
	}
	indent := leadingWhitespace(lineText)

	// Emit.
	declaration := indent + declarationLine(ctx.Language, newName, trimmed)
	insertAt := position.New(uint32(stmtLine), 0)
	insertRange := position.NewRange(insertAt, insertAt)

	edits := []Edit{
		{Range: insertRange, NewText: declaration},
		{Range: ctx.Selection, NewText: newName},
	}

	return Result{
		Edits:         edits,
		Description:   fmt.Sprintf("Extract variable '%s'", newName),
		GeneratedCode: declaration,
	}, nil
}
