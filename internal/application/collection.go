package application

import "sync"

// List is an ordered, observable entity collection. The presentation side
// owns one list per view; the mutation layer publishes entity states into it
// and subscribers are notified synchronously after every change.
//
// Replace ignores ids the list no longer contains, so a late resolution of a
// mutation on an entity that has since left the view is discarded instead of
// resurrecting it.
type List[E any] struct {
	mu      sync.Mutex
	id      func(E) int64
	items   []E
	subs    map[int]func([]E)
	nextSub int
}

func NewList[E any](id func(E) int64) *List[E] {
	return &List[E]{
		id:   id,
		subs: map[int]func([]E){},
	}
}

// Subscribe registers a change observer and returns its cancel func.
// Observers receive a copy of the full sequence after each change.
func (l *List[E]) Subscribe(fn func([]E)) (cancel func()) {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := l.nextSub
	l.nextSub++
	l.subs[key] = fn

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.subs, key)
	}
}

func (l *List[E]) Snapshot() []E {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]E(nil), l.items...)
}

func (l *List[E]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

func (l *List[E]) Get(id int64) (E, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, item := range l.items {
		if l.id(item) == id {
			return item, true
		}
	}
	var zero E
	return zero, false
}

// Find returns the first item matching pred.
func (l *List[E]) Find(pred func(E) bool) (E, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, item := range l.items {
		if pred(item) {
			return item, true
		}
	}
	var zero E
	return zero, false
}

func (l *List[E]) Set(items []E) {
	l.mu.Lock()
	l.items = append([]E(nil), items...)
	l.notifyLocked()
}

func (l *List[E]) Prepend(item E) {
	l.mu.Lock()
	l.items = append([]E{item}, l.items...)
	l.notifyLocked()
}

func (l *List[E]) Append(item E) {
	l.mu.Lock()
	l.items = append(l.items, item)
	l.notifyLocked()
}

// Replace swaps the stored item carrying the same id. Unknown ids are a
// no-op and report false.
func (l *List[E]) Replace(item E) bool {
	return l.ReplaceID(l.id(item), item)
}

// ReplaceID swaps the stored item with the given id for a new item, which
// may carry a different id. Used to swap a provisional entity for the
// server-assigned canonical one.
func (l *List[E]) ReplaceID(id int64, item E) bool {
	l.mu.Lock()

	for i := range l.items {
		if l.id(l.items[i]) == id {
			l.items[i] = item
			l.notifyLocked()
			return true
		}
	}

	l.mu.Unlock()
	return false
}

// Remove drops the item with the given id, returning it along with the
// index it occupied so a failed delete can be reversed in place.
func (l *List[E]) Remove(id int64) (E, int, bool) {
	l.mu.Lock()

	for i := range l.items {
		if l.id(l.items[i]) == id {
			removed := l.items[i]
			l.items = append(l.items[:i], l.items[i+1:]...)
			l.notifyLocked()
			return removed, i, true
		}
	}

	l.mu.Unlock()
	var zero E
	return zero, 0, false
}

// InsertAt places item at index, clamped to the current bounds. A delete
// rollback reinserts at the original index rather than appending at the end.
func (l *List[E]) InsertAt(index int, item E) {
	l.mu.Lock()

	if index < 0 {
		index = 0
	}
	if index > len(l.items) {
		index = len(l.items)
	}
	l.items = append(l.items[:index], append([]E{item}, l.items[index:]...)...)
	l.notifyLocked()
}

// notifyLocked snapshots the sequence and observer set, releases the lock,
// and invokes observers synchronously. Callers must hold l.mu.
func (l *List[E]) notifyLocked() {
	snapshot := append([]E(nil), l.items...)
	subs := make([]func([]E), 0, len(l.subs))
	for _, fn := range l.subs {
		subs = append(subs, fn)
	}
	l.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}
