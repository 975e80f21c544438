package refactor

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/logos-lang/logos-go/internal/document"
	"github.com/logos-lang/logos-go/internal/position"
)

var identifierToken = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*`)

// commonKeywords excludes language keywords from the conservative textual
// parameter/return inference. A single shared set kept deliberately
// small: false negatives here only mean a keyword gets offered as a
// (harmless, unused) parameter name.
var commonKeywords = map[string]bool{
	"if": true, "else": true, "for": true, "while": true, "return": true,
	"def": true, "func": true, "function": true, "fn": true, "let": true,
	"var": true, "const": true, "class": true, "struct": true, "impl": true,
	"true": true, "false": true, "nil": true, "null": true, "none": true,
	"break": true, "continue": true, "import": true, "from": true,
	"public": true, "private": true, "static": true, "void": true, "int": true,
	"new": true, "this": true, "self": true, "pub": true, "mut": true,
}

// ExtractMethod runs the Validate -> Plan -> Emit pipeline for pulling a
// whole-line selection out into a new method or function.
func ExtractMethod(ctx Context, newName string) (Result, error) {
	if !isValidIdentifier(newName) {
		return Result{}, ErrInvalidIdentifier
	}

	doc := document.New(ctx.URI, ctx.Language.String(), ctx.Content)

	startLine, ok := doc.Line(int(ctx.Selection.Start.Line))
	if !ok {
		return Result{}, ErrInvalidSelection
	}
	if strings.TrimSpace(startLine) == "" {
		return Result{}, ErrSelectionNotWholeLines
	}
	if int(ctx.Selection.Start.Character) != runeIndexOfFirstNonSpace(startLine) {
		return Result{}, ErrSelectionNotWholeLines
	}
	if ctx.Selection.End.Character != 0 && int(ctx.Selection.End.Line) == int(ctx.Selection.Start.Line) {
		return Result{}, ErrSelectionNotWholeLines
	}

	blockText, ok := doc.TextInRange(ctx.Selection)
	if !ok {
		return Result{}, ErrInvalidSelection
	}
	lines := splitBlockLines(blockText)
	if len(lines) == 0 {
		return Result{}, ErrEmptySelection
	}

	indent := leadingWhitespace(startLine)
	params, writes := inferParamsAndWrites(lines)

	afterBlock := textAfter(ctx.Content, doc, ctx.Selection.End)
	var returns string
	returnCandidates := 0
	for _, w := range writes {
		if identifierUsedAfter(afterBlock, w) {
			returnCandidates++
			if returns == "" {
				returns = w
			}
		}
	}
	if returnCandidates > 1 {
		return Result{}, ErrAmbiguousExtraction
	}

	dedented := dedentLines(lines, indent)
	functionDef := functionTemplate(ctx.Language, newName, params, returns, dedented)
	callLine := indent + callTemplate(ctx.Language, newName, params, returns) + "\n"

	insertAt := position.New(uint32(doc.LineCount()), 0)
	if doc.LineCount() > 0 {
		insertAt = position.New(uint32(doc.LineCount()-1), 0)
	}

	edits := []Edit{
		{Range: ctx.Selection, NewText: callLine},
		{Range: position.NewRange(insertAt, insertAt), NewText: "\n" + functionDef},
	}

	return Result{
		Edits:         edits,
		Description:   fmt.Sprintf("Extract method '%s'", newName),
		GeneratedCode: functionDef,
	}, nil
}

func runeIndexOfFirstNonSpace(s string) int {
	for i, r := range s {
		if r != ' ' && r != '\t' {
			return i
		}
	}
	return len(s)
}

func splitBlockLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

func dedentLines(lines []string, indent string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = strings.TrimPrefix(l, indent)
	}
	return out
}

// inferParamsAndWrites scans the block token by token: an identifier read
// before any assignment to it becomes a parameter; an identifier on the
// left side of `=` is recorded as a write candidate.
func inferParamsAndWrites(lines []string) (params, writes []string) {
	seenWrite := map[string]bool{}
	seenParam := map[string]bool{}
	for _, line := range lines {
		eqIdx := assignmentIndex(line)
		if eqIdx >= 0 {
			lhs := strings.TrimSpace(line[:eqIdx])
			if identifierToken.MatchString(lhs) && identifierToken.FindString(lhs) == lhs {
				if !commonKeywords[lhs] && !seenWrite[lhs] {
					seenWrite[lhs] = true
					writes = append(writes, lhs)
				}
			}
		}
		for _, tok := range identifierToken.FindAllString(line, -1) {
			if commonKeywords[tok] || seenWrite[tok] || seenParam[tok] {
				continue
			}
			seenParam[tok] = true
			params = append(params, tok)
		}
	}
	return params, writes
}

func assignmentIndex(line string) int {
	for i := 0; i < len(line); i++ {
		if line[i] != '=' {
			continue
		}
		if i+1 < len(line) && line[i+1] == '=' {
			i++
			continue
		}
		if i > 0 && (line[i-1] == '=' || line[i-1] == '!' || line[i-1] == '<' || line[i-1] == '>') {
			continue
		}
		return i
	}
	return -1
}

func textAfter(content string, doc *document.Document, after position.Position) string {
	offset, ok := doc.OffsetAt(after)
	if !ok {
		return ""
	}
	if offset >= len(content) {
		return ""
	}
	return content[offset:]
}

func identifierUsedAfter(text, name string) bool {
	pattern := regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\b`)
	return pattern.MatchString(text)
}
