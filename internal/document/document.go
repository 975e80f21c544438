// Package document implements the mutable text-buffer model: per-URI
// content with a cached line-offset table and UTF-16 column conversions.
package document

import (
	"sort"
	"unicode/utf8"

	"github.com/logos-lang/logos-go/internal/position"
)

// Document is a single open text buffer.
type Document struct {
	URI        string
	LanguageID string
	Version    uint32

	content     string
	lineOffsets []int // byte offset of the start of each line
}

// New opens a document at version 0.
func New(uri, languageID, content string) *Document {
	d := &Document{URI: uri, LanguageID: languageID}
	d.setContentLocked(content)
	return d
}

// Content returns the full buffer text.
func (d *Document) Content() string { return d.content }

// LineCount reports the number of lines the offset cache tracks.
func (d *Document) LineCount() int { return len(d.lineOffsets) }

// SetContent replaces the buffer wholesale and bumps the version.
func (d *Document) SetContent(content string) {
	d.setContentLocked(content)
	d.Version++
}

func (d *Document) setContentLocked(content string) {
	d.content = content
	d.lineOffsets = computeLineOffsets(content)
}

func computeLineOffsets(content string) []int {
	offsets := make([]int, 1, 16)
	offsets[0] = 0
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			offsets = append(offsets, i+1)
		}
	}
	return offsets
}

// Line returns the content of line n without its trailing newline.
func (d *Document) Line(n int) (string, bool) {
	if n < 0 || n >= len(d.lineOffsets) {
		return "", false
	}
	start := d.lineOffsets[n]
	end := len(d.content)
	if n+1 < len(d.lineOffsets) {
		next := d.lineOffsets[n+1]
		if next > 0 && d.content[next-1] == '\n' {
			end = next - 1
		} else {
			end = next
		}
	}
	return d.content[start:end], true
}

// OffsetAt converts a Position to a byte offset. It fails (false) if the
// line is out of range; otherwise the column is clamped to the end of
// the line rather than failing.
func (d *Document) OffsetAt(pos position.Position) (int, bool) {
	line := int(pos.Line)
	if line < 0 || line >= len(d.lineOffsets) {
		return 0, false
	}
	lineStart := d.lineOffsets[line]
	lineEnd := len(d.content)
	if line+1 < len(d.lineOffsets) {
		lineEnd = d.lineOffsets[line+1] - 1 // stop before the line's '\n'
	}
	lineContent := d.content[lineStart:lineEnd]

	col := uint32(0)
	byteOffset := 0
	for byteOffset < len(lineContent) {
		if col >= pos.Character {
			break
		}
		r, size := utf8.DecodeRuneInString(lineContent[byteOffset:])
		col += position.RuneLenUTF16(r)
		byteOffset += size
	}
	return lineStart + byteOffset, true
}

// PositionAt converts a byte offset to a Position, clamping the offset to
// the document length.
func (d *Document) PositionAt(offset int) position.Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(d.content) {
		offset = len(d.content)
	}

	line := sort.Search(len(d.lineOffsets), func(i int) bool {
		return d.lineOffsets[i] > offset
	}) - 1
	if line < 0 {
		line = 0
	}

	lineStart := d.lineOffsets[line]
	lineContent := d.content[lineStart:offset]

	var col uint32
	for _, r := range lineContent {
		col += position.RuneLenUTF16(r)
	}
	return position.New(uint32(line), col)
}

// ApplyChange replaces the text in range with text, recomputing offsets and
// bumping the version. Unresolved endpoints degrade to "replace everything
// outside the known region", matching common editor-client behavior.
func (d *Document) ApplyChange(r position.Range, text string) {
	start, ok := d.OffsetAt(r.Start)
	if !ok {
		start = 0
	}
	end, ok := d.OffsetAt(r.End)
	if !ok {
		end = len(d.content)
	}
	if start > end {
		start, end = end, start
	}

	var b []byte
	b = append(b, d.content[:start]...)
	b = append(b, text...)
	b = append(b, d.content[end:]...)
	d.setContentLocked(string(b))
	d.Version++
}

// TextInRange returns the text of r, or false if either endpoint is
// unresolvable.
func (d *Document) TextInRange(r position.Range) (string, bool) {
	start, ok := d.OffsetAt(r.Start)
	if !ok {
		return "", false
	}
	end, ok := d.OffsetAt(r.End)
	if !ok {
		return "", false
	}
	if start > end {
		return "", false
	}
	return d.content[start:end], true
}
