package application

import (
	"testing"

	"github.com/cadrebook/cadrebook-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostList() *List[domain.Post] {
	return NewList(func(p domain.Post) int64 { return int64(p.ID) })
}

func TestListReplaceUnknownIDIsNoOp(t *testing.T) {
	l := newPostList()
	l.Set([]domain.Post{{ID: 1}, {ID: 2}})

	notified := false
	cancel := l.Subscribe(func([]domain.Post) { notified = true })
	defer cancel()

	// A late resolution for an entity that left the view is discarded.
	ok := l.Replace(domain.Post{ID: 99, Content: "ghost"})

	assert.False(t, ok)
	assert.False(t, notified)
	assert.Equal(t, 2, l.Len())
	_, found := l.Get(99)
	assert.False(t, found)
}

func TestListReplaceIDSwapsProvisionalForCanonical(t *testing.T) {
	l := newPostList()
	l.Set([]domain.Post{{ID: -1, Content: "draft"}, {ID: 5}})

	ok := l.ReplaceID(-1, domain.Post{ID: 42, Content: "draft"})
	require.True(t, ok)

	snapshot := l.Snapshot()
	assert.Equal(t, domain.PostID(42), snapshot[0].ID)
	_, found := l.Get(-1)
	assert.False(t, found)
}

func TestListRemoveReturnsIndex(t *testing.T) {
	l := newPostList()
	l.Set([]domain.Post{{ID: 1}, {ID: 2}, {ID: 3}})

	removed, index, ok := l.Remove(2)
	require.True(t, ok)
	assert.Equal(t, domain.PostID(2), removed.ID)
	assert.Equal(t, 1, index)
	assert.Equal(t, 2, l.Len())

	_, _, ok = l.Remove(2)
	assert.False(t, ok)
}

func TestListInsertAtClampsIndex(t *testing.T) {
	l := newPostList()
	l.Set([]domain.Post{{ID: 1}, {ID: 2}})

	// The list may have shrunk since the index was captured.
	l.InsertAt(10, domain.Post{ID: 3})
	assert.Equal(t, domain.PostID(3), l.Snapshot()[2].ID)

	l.InsertAt(-4, domain.Post{ID: 0})
	assert.Equal(t, domain.PostID(0), l.Snapshot()[0].ID)
}

func TestListSubscribeReceivesCopies(t *testing.T) {
	l := newPostList()

	var last []domain.Post
	cancel := l.Subscribe(func(items []domain.Post) { last = items })
	defer cancel()

	l.Set([]domain.Post{{ID: 1, Content: "a"}})
	require.Len(t, last, 1)

	// Mutating the delivered slice does not leak into the list.
	last[0].Content = "tampered"
	got, ok := l.Get(1)
	require.True(t, ok)
	assert.Equal(t, "a", got.Content)
}

func TestListSubscribeCancel(t *testing.T) {
	l := newPostList()

	calls := 0
	cancel := l.Subscribe(func([]domain.Post) { calls++ })

	l.Append(domain.Post{ID: 1})
	cancel()
	l.Append(domain.Post{ID: 2})

	assert.Equal(t, 1, calls)
}

func TestListPrependAndFind(t *testing.T) {
	l := newPostList()
	l.Append(domain.Post{ID: 1, Content: "first"})
	l.Prepend(domain.Post{ID: 2, Content: "second"})

	snapshot := l.Snapshot()
	require.Len(t, snapshot, 2)
	assert.Equal(t, domain.PostID(2), snapshot[0].ID)

	got, ok := l.Find(func(p domain.Post) bool { return p.Content == "first" })
	require.True(t, ok)
	assert.Equal(t, domain.PostID(1), got.ID)
}
