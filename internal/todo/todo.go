// Package todo scans document text for TODO-style comments and keeps a
// per-URI index of the items found, mirroring internal/index's layout.
package todo

import (
	"regexp"
	"strings"

	"github.com/logos-lang/logos-go/internal/position"
)

// Kind classifies a recognized comment tag.
type Kind int

const (
	KindTodo Kind = iota
	KindFixme
	KindHack
	KindXxx
	KindNote
	KindBug
	KindOptimize
	KindCustom
)

var kindNames = map[Kind]string{
	KindTodo:     "todo",
	KindFixme:    "fixme",
	KindHack:     "hack",
	KindXxx:      "xxx",
	KindNote:     "note",
	KindBug:      "bug",
	KindOptimize: "optimize",
	KindCustom:   "custom",
}

func (k Kind) String() string { return kindNames[k] }

var tagKinds = map[string]Kind{
	"TODO":     KindTodo,
	"FIXME":    KindFixme,
	"HACK":     KindHack,
	"XXX":      KindXxx,
	"NOTE":     KindNote,
	"BUG":      KindBug,
	"OPTIMIZE": KindOptimize,
}

// Item is one recognized comment-tag occurrence.
type Item struct {
	Kind     Kind
	Text     string
	Author   string
	Priority int
	Line     int
	Range    position.Range
}

// tagPattern matches the recognized tag shape: an all-caps tag word,
// TAG(author)?[:-]? !!message, with an optional !/!! priority prefix. The
// tag itself is matched case-sensitively — lowercase comment prose never
// qualifies as a tag.
var tagPattern = regexp.MustCompile(`^([A-Z][A-Z0-9]+)(?:\(([^)]*)\))?\s*[:\-]?\s*(!{1,2})?\s*(.*)$`)

// commentPrefixes maps a language identifier to its single-line comment
// markers; block comments are handled separately in Scan. "#" covers
// Python, "//" covers every C-family, Java, Go, Rust, JavaScript and
// TypeScript descendant.
var commentPrefixes = map[string][]string{
	"python":     {"#"},
	"c":          {"//"},
	"cpp":        {"//"},
	"java":       {"//"},
	"go":         {"//"},
	"rust":       {"//"},
	"javascript": {"//"},
	"typescript": {"//"},
}

// linePrefixesFor returns languageID's recognized single-line markers, or
// both known markers if languageID is unset/unknown — a mixed-comment-style
// file still scans cleanly.
func linePrefixesFor(languageID string) []string {
	if prefixes, ok := commentPrefixes[languageID]; ok {
		return prefixes
	}
	return []string{"#", "//"}
}

// Scan walks content line by line, recognizing single-line comment prefixes
// for languageID plus any `/* ... */` block — each line the block spans is
// scanned on its own, so a block yields at most one item per line — and
// returns every recognized tag occurrence.
func Scan(languageID, content string) []Item {
	lines := strings.Split(content, "\n")
	var items []Item

	inBlock := false
	for lineNo, line := range lines {
		text, isComment := commentBodyForLine(languageID, line, &inBlock)
		if !isComment {
			continue
		}
		if item, ok := parseTag(text, lineNo); ok {
			items = append(items, item)
		}
	}
	return items
}

// commentBodyForLine extracts the comment payload of a line, if any, given
// the language's line-comment prefixes and tracking block-comment state.
func commentBodyForLine(languageID, line string, inBlock *bool) (string, bool) {
	trimmed := strings.TrimSpace(line)

	if *inBlock {
		if idx := strings.Index(trimmed, "*/"); idx >= 0 {
			*inBlock = false
			return trimmed[:idx], true
		}
		return trimmed, true
	}

	if idx := strings.Index(trimmed, "/*"); idx >= 0 {
		rest := trimmed[idx+2:]
		if end := strings.Index(rest, "*/"); end >= 0 {
			return rest[:end], true
		}
		*inBlock = true
		return rest, true
	}

	for _, prefix := range linePrefixesFor(languageID) {
		if idx := strings.Index(trimmed, prefix); idx >= 0 {
			return trimmed[idx+len(prefix):], true
		}
	}
	return "", false
}

// parseTag matches tagPattern against a comment body and builds an Item if
// the leading word is a recognized (or custom) tag shape.
func parseTag(body string, line int) (Item, bool) {
	body = strings.TrimSpace(body)
	m := tagPattern.FindStringSubmatch(body)
	if m == nil {
		return Item{}, false
	}
	tag := m[1]
	kind, known := tagKinds[tag]
	if !known {
		kind = KindCustom
	}

	priority := 0
	switch m[3] {
	case "!":
		priority = 1
	case "!!":
		priority = 2
	}

	r := position.FromCoords(uint32(line), 0, uint32(line), uint32(len(body)))
	return Item{
		Kind:     kind,
		Text:     strings.TrimSpace(m[4]),
		Author:   m[2],
		Priority: priority,
		Line:     line,
		Range:    r,
	}, true
}
