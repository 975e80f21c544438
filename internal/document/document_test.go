package document

import (
	"testing"

	"github.com/logos-lang/logos-go/internal/position"
)

func TestLineAndOffsetAt(t *testing.T) {
	doc := New("file:///a.go", "go", "line one\nline two\nline three")

	line, ok := doc.Line(1)
	if !ok || line != "line two" {
		t.Fatalf("expected line 1 to be %q, got %q (ok=%v)", "line two", line, ok)
	}

	offset, ok := doc.OffsetAt(position.New(1, 5))
	if !ok {
		t.Fatal("expected OffsetAt to succeed")
	}
	if doc.Content()[offset:offset+3] != "two" {
		t.Fatalf("expected offset to point at 'two', got %q", doc.Content()[offset:offset+3])
	}
}

func TestOffsetAtClampsPastLineEnd(t *testing.T) {
	doc := New("file:///a.go", "go", "short\nlines")
	offset, ok := doc.OffsetAt(position.New(0, 1000))
	if !ok {
		t.Fatal("expected OffsetAt to succeed even with an out-of-range column")
	}
	if offset != len("short") {
		t.Fatalf("expected column to clamp to end of line, got offset %d", offset)
	}
}

func TestOffsetAtInvalidLine(t *testing.T) {
	doc := New("file:///a.go", "go", "one line only")
	if _, ok := doc.OffsetAt(position.New(5, 0)); ok {
		t.Fatal("expected out-of-range line to fail")
	}
}

func TestSetContentBumpsVersion(t *testing.T) {
	doc := New("file:///a.go", "go", "v0")
	if doc.Version != 0 {
		t.Fatalf("expected initial version 0, got %d", doc.Version)
	}
	doc.SetContent("v1")
	if doc.Version != 1 {
		t.Fatalf("expected version to bump to 1, got %d", doc.Version)
	}
	if doc.Content() != "v1" {
		t.Fatalf("expected content to update, got %q", doc.Content())
	}
}

func TestStoreOpenGetClose(t *testing.T) {
	s := NewStore()
	s.Open("file:///a.go", "go", "package main")

	doc, ok := s.Get("file:///a.go")
	if !ok || doc.Content() != "package main" {
		t.Fatal("expected to retrieve the opened document")
	}

	s.Close("file:///a.go")
	if _, ok := s.Get("file:///a.go"); ok {
		t.Fatal("expected document to be gone after Close")
	}
}
