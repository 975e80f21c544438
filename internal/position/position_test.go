package position

import "testing"

func TestRangeContainsPoint(t *testing.T) {
	r := FromCoords(1, 2, 1, 8)
	if !r.Contains(New(1, 2)) {
		t.Fatal("expected start to be contained")
	}
	if r.Contains(New(1, 8)) {
		t.Fatal("end is exclusive and should not be contained")
	}
	if r.Contains(New(1, 1)) {
		t.Fatal("position before start should not be contained")
	}
	if !r.Contains(New(1, 5)) {
		t.Fatal("expected midpoint to be contained")
	}
}

func TestRangeContainsZeroWidthSelf(t *testing.T) {
	p := New(3, 4)
	r := NewRange(p, p)
	if !r.Contains(p) {
		t.Fatal("zero-width range should contain its own point")
	}
	if r.Contains(New(3, 5)) {
		t.Fatal("zero-width range should not contain any other point")
	}
}

func TestRangeContainsRange(t *testing.T) {
	outer := FromCoords(0, 0, 10, 0)
	inner := FromCoords(2, 0, 3, 0)
	if !outer.ContainsRange(inner) {
		t.Fatal("expected outer to contain inner")
	}
	if inner.ContainsRange(outer) {
		t.Fatal("inner should not contain outer")
	}
}

func TestUnion(t *testing.T) {
	a := FromCoords(1, 0, 2, 0)
	b := FromCoords(0, 5, 1, 5)
	u := Union(a, b)
	if u.Start != New(0, 5) || u.End != New(2, 0) {
		t.Fatalf("unexpected union: %+v", u)
	}
}

func TestRuneLenUTF16(t *testing.T) {
	if RuneLenUTF16('a') != 1 {
		t.Fatal("ASCII rune should be 1 UTF-16 code unit")
	}
	if RuneLenUTF16('\U0001F600') != 2 {
		t.Fatal("astral rune should be a surrogate pair (2 code units)")
	}
}

func TestPositionOrdering(t *testing.T) {
	a := New(1, 5)
	b := New(1, 10)
	c := New(2, 0)
	if !a.Less(b) {
		t.Fatal("a should sort before b")
	}
	if !b.Less(c) {
		t.Fatal("b should sort before c")
	}
	if c.Less(a) {
		t.Fatal("c should not sort before a")
	}
	if !a.LessEqual(a) {
		t.Fatal("a should be less-equal to itself")
	}
}
