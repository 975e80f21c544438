package refactor

import (
	"regexp"
	"strings"

	"github.com/logos-lang/logos-go/internal/document"
	"github.com/logos-lang/logos-go/internal/position"
	"github.com/logos-lang/logos-go/internal/scope"
)

// SafeDeleteAnalysis is the result of the dry-run "can I delete this"
// check, surfaced to callers as `logos/canSafeDelete`.
type SafeDeleteAnalysis struct {
	CanDelete  bool
	SymbolName string
	Usages     []Location
	Warnings   []string
}

// AnalyzeSafeDelete identifies the declaration at ctx.Selection, then
// gathers every textual usage of its name across openDocs, excluding
// occurrences inside the declaration's own range.
func AnalyzeSafeDelete(ctx Context, openDocs []OpenDocument) (SafeDeleteAnalysis, error) {
	decl, ok := findDeclarationAt(ctx)
	if !ok {
		return SafeDeleteAnalysis{}, ErrSymbolNotFound
	}

	pattern := regexp.MustCompile(`\b` + regexp.QuoteMeta(decl.Name) + `\b`)
	var usages []Location

	for _, od := range openDocs {
		doc := document.New(od.URI, "", od.Content)
		for _, m := range pattern.FindAllStringIndex(od.Content, -1) {
			start := doc.PositionAt(m[0])
			end := doc.PositionAt(m[1])
			r := position.NewRange(start, end)
			if od.URI == ctx.URI && decl.Range.ContainsRange(r) {
				continue
			}
			usages = append(usages, Location{URI: od.URI, Range: r})
		}
	}

	return SafeDeleteAnalysis{
		CanDelete:  len(usages) == 0,
		SymbolName: decl.Name,
		Usages:     usages,
	}, nil
}

// SafeDelete runs the full Validate -> Plan -> Emit pipeline: Validate
// rejects a missing declaration, Plan rejects outstanding usages with
// SymbolInUseError, Emit never fails.
func SafeDelete(ctx Context, openDocs []OpenDocument) (Result, error) {
	analysis, err := AnalyzeSafeDelete(ctx, openDocs)
	if err != nil {
		return Result{}, err
	}
	if !analysis.CanDelete {
		return Result{}, &SymbolInUseError{Usages: analysis.Usages}
	}

	decl, _ := findDeclarationAt(ctx)
	doc := document.New(ctx.URI, ctx.Language.String(), ctx.Content)
	deleteRange := expandDeleteRange(doc, decl.Range)

	return Result{
		Edits:       []Edit{{Range: deleteRange, NewText: ""}},
		Description: "Delete '" + decl.Name + "'",
	}, nil
}

func findDeclarationAt(ctx Context) (*symbolRef, bool) {
	tree := scope.FromSymbols(ctx.Symbols)
	resolver := scope.NewResolver(tree, ctx.Symbols)
	sym, ok := resolver.FindSymbolAt(ctx.Selection.Start)
	if !ok {
		return nil, false
	}
	return &symbolRef{Name: sym.Name, Range: sym.Range}, true
}

// symbolRef is the minimal view safe-delete needs from a *symbol.Symbol,
// kept separate so this package does not need to know about Kind/Detail.
type symbolRef struct {
	Name  string
	Range position.Range
}

// expandDeleteRange extends a declaration's range to swallow one leading
// blank line and its own trailing newline.
func expandDeleteRange(doc *document.Document, r position.Range) position.Range {
	startLine := r.Start.Line
	if startLine > 0 {
		if prev, ok := doc.Line(int(startLine) - 1); ok && strings.TrimSpace(prev) == "" {
			startLine--
		}
	}
	newStart := position.New(startLine, 0)

	endLine := r.End.Line
	totalLines := uint32(doc.LineCount())
	var newEnd position.Position
	if endLine+1 < totalLines {
		newEnd = position.New(endLine+1, 0)
	} else if lastLine, ok := doc.Line(int(endLine)); ok {
		newEnd = position.New(endLine, uint32(len([]rune(lastLine))))
	} else {
		newEnd = r.End
	}

	return position.NewRange(newStart, newEnd)
}
