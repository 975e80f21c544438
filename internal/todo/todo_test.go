package todo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanAggregatesMixedCommentStyles(t *testing.T) {
	content := "# TODO(alice): refactor\n// FIXME !! crash\n"
	items := Scan("text", content)

	require.Len(t, items, 2)
	assert.Equal(t, KindTodo, items[0].Kind)
	assert.Equal(t, "alice", items[0].Author)
	assert.Equal(t, 0, items[0].Priority)
	assert.Equal(t, 0, items[0].Line)

	assert.Equal(t, KindFixme, items[1].Kind)
	assert.Equal(t, 2, items[1].Priority)
	assert.Equal(t, 1, items[1].Line)
}

func TestScanBlockCommentSpansMultipleLines(t *testing.T) {
	content := "/* TODO: fix\n   this later */\n"
	items := Scan("c", content)
	require.Len(t, items, 1)
	assert.Equal(t, KindTodo, items[0].Kind)
	assert.Equal(t, 0, items[0].Line)
}

func TestScanIgnoresNonTagComments(t *testing.T) {
	items := Scan("go", "// just a regular comment\n")
	assert.Empty(t, items)
}

func TestScanRecognizesCustomTagShape(t *testing.T) {
	items := Scan("python", "# REVIEWME: please check\n")
	require.Len(t, items, 1)
	assert.Equal(t, KindCustom, items[0].Kind)
}

func TestIndexCountByKindAndGetAllTodos(t *testing.T) {
	idx := NewIndex()
	idx.IndexDocument("a.py", "python", "# TODO: one\n# FIXME: two\n")
	idx.IndexDocument("b.py", "python", "# TODO: three\n")

	counts := idx.CountByKind()
	assert.Equal(t, 2, counts[KindTodo])
	assert.Equal(t, 1, counts[KindFixme])
	assert.Equal(t, 3, idx.TodoCount())
	assert.Len(t, idx.GetAllTodos(), 3)

	idx.RemoveDocument("a.py")
	assert.Equal(t, 1, idx.TodoCount())
}
