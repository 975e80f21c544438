// Package unused flags declarations that never appear again in their own
// document's text.
package unused

import (
	"regexp"
	"strings"

	"github.com/logos-lang/logos-go/internal/position"
	"github.com/logos-lang/logos-go/internal/symbol"
)

// Item reports one declaration with exactly one textual occurrence — the
// declaration itself.
type Item struct {
	Kind      symbol.Kind
	Name      string
	Range     position.Range
	CanRemove bool
	FixAction *FixAction
}

// FixAction describes the removal edit a caller may apply.
type FixAction struct {
	Range              position.Range
	RemoveLeadingBlank bool
}

// autoRemovableKinds are safe to delete outright once flagged unused.
var autoRemovableKinds = map[symbol.Kind]bool{
	symbol.KindVariable: true,
	symbol.KindConstant: true,
}

// conditionallyRemovableKinds are safe to delete only when non-exported
// (lower-case leading rune, by convention across these languages).
var conditionallyRemovableKinds = map[symbol.Kind]bool{
	symbol.KindFunction: true,
	symbol.KindMethod:   true,
}

// Analyze walks symbols (a flat or nested list — children are visited too)
// and content, reporting every declaration whose identifier occurs exactly
// once in content under a word-boundary match, skipping names starting
// with "_".
func Analyze(symbols []*symbol.Symbol, content string) []Item {
	var items []Item
	walk(symbols, content, &items)
	return items
}

func walk(symbols []*symbol.Symbol, content string, items *[]Item) {
	for _, s := range symbols {
		if !strings.HasPrefix(s.Name, "_") && occurrences(content, s.Name) == 1 {
			*items = append(*items, buildItem(s))
		}
		walk(s.Children, content, items)
	}
}

func buildItem(s *symbol.Symbol) Item {
	item := Item{Kind: s.Kind, Name: s.Name, Range: s.Range}

	switch {
	case s.Kind == symbol.KindParameter:
		item.CanRemove = false
	case autoRemovableKinds[s.Kind]:
		item.CanRemove = true
	case conditionallyRemovableKinds[s.Kind]:
		item.CanRemove = !isExported(s.Name)
	default:
		item.CanRemove = false
	}

	if item.CanRemove {
		item.FixAction = &FixAction{Range: s.Range, RemoveLeadingBlank: true}
	}
	return item
}

// isExported treats a leading uppercase rune as an export marker, the
// convention shared by Go, and close enough for the other seven languages'
// PascalCase-exported-API idiom to serve as a conservative signal.
func isExported(name string) bool {
	if name == "" {
		return false
	}
	r := []rune(name)[0]
	return r >= 'A' && r <= 'Z'
}

var identifierBoundary = `\b`

func occurrences(content, name string) int {
	if name == "" {
		return 0
	}
	pattern, err := regexp.Compile(identifierBoundary + regexp.QuoteMeta(name) + identifierBoundary)
	if err != nil {
		return 0
	}
	return len(pattern.FindAllStringIndex(content, -1))
}
