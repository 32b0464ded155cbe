package optimistic

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/redhub-app/redhub-cli/internal/common"
)

// List mirrors one remote collection (favorites, moderation queue, article
// list, user list) in memory. Each mutation follows the same protocol:
//
//  1. apply the local change immediately,
//  2. issue the gateway call,
//  3. on success keep the change (updates adopt the server's canonical value),
//  4. on failure restore the affected entry exactly as it was and push one
//     error notification.
//
// Rollback is entry-granular, so concurrent mutations on disjoint entries
// never clobber each other; mutations on the same entry serialize on a
// per-entry lock so a second mutation waits for the first's resolution.
//
// The list owns its data independently of any view. A view torn down while
// a call is in flight changes nothing: reconciliation always runs against
// the list itself.
type List[T any] struct {
	id       func(T) string
	notifier *Notifier

	mu    sync.Mutex
	items []T

	lockMu sync.Mutex
	locks  map[string]*entryLock
}

type entryLock struct {
	mu   sync.Mutex
	refs int
}

// NewList builds an empty list. id extracts an entry's identity, notifier
// receives one error per failed mutation.
func NewList[T any](id func(T) string, notifier *Notifier) *List[T] {
	return &List[T]{
		id:       id,
		notifier: notifier,
		locks:    make(map[string]*entryLock),
	}
}

// Replace swaps the whole list content, typically after a fresh fetch.
func (l *List[T]) Replace(items []T) {
	l.mu.Lock()
	l.items = slices.Clone(items)
	l.mu.Unlock()
}

// Items returns a copy of the current content.
func (l *List[T]) Items() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.items)
}

// Len reports the current number of entries.
func (l *List[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

// Get looks an entry up by id.
func (l *List[T]) Get(entryID string) (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, it := range l.items {
		if l.id(it) == entryID {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Remove optimistically removes the entry, then reconciles with call. On
// failure the entry is reinserted at its original position.
func (l *List[T]) Remove(ctx context.Context, op, entryID string, call func(ctx context.Context) error) error {
	unlock := l.lockEntry(entryID)
	defer unlock()

	l.mu.Lock()
	idx := slices.IndexFunc(l.items, func(it T) bool { return l.id(it) == entryID })
	if idx < 0 {
		l.mu.Unlock()
		return fmt.Errorf("%s: entry %s: %w", op, entryID, common.ErrNotFound)
	}
	removed := l.items[idx]
	l.items = slices.Delete(slices.Clone(l.items), idx, idx+1)
	l.mu.Unlock()

	if err := call(ctx); err != nil {
		l.mu.Lock()
		at := min(idx, len(l.items))
		l.items = slices.Insert(slices.Clone(l.items), at, removed)
		l.mu.Unlock()
		l.notifier.Error(fmt.Sprintf("%s failed: %s", op, err))
		return err
	}
	return nil
}

// Add optimistically appends the entry, then reconciles with call. On
// failure the entry is removed again.
func (l *List[T]) Add(ctx context.Context, op string, item T, call func(ctx context.Context) error) error {
	entryID := l.id(item)
	unlock := l.lockEntry(entryID)
	defer unlock()

	l.mu.Lock()
	l.items = append(slices.Clone(l.items), item)
	l.mu.Unlock()

	if err := call(ctx); err != nil {
		l.mu.Lock()
		if idx := slices.IndexFunc(l.items, func(it T) bool { return l.id(it) == entryID }); idx >= 0 {
			l.items = slices.Delete(slices.Clone(l.items), idx, idx+1)
		}
		l.mu.Unlock()
		l.notifier.Error(fmt.Sprintf("%s failed: %s", op, err))
		return err
	}
	return nil
}

// Update optimistically replaces the entry with updated, then reconciles
// with call. On success the server's canonical value (when returned)
// replaces the optimistic one; on failure the prior value is restored.
func (l *List[T]) Update(ctx context.Context, op, entryID string, updated T, call func(ctx context.Context) (*T, error)) error {
	unlock := l.lockEntry(entryID)
	defer unlock()

	l.mu.Lock()
	idx := slices.IndexFunc(l.items, func(it T) bool { return l.id(it) == entryID })
	if idx < 0 {
		l.mu.Unlock()
		return fmt.Errorf("%s: entry %s: %w", op, entryID, common.ErrNotFound)
	}
	prior := l.items[idx]
	l.items = slices.Clone(l.items)
	l.items[idx] = updated
	l.mu.Unlock()

	canonical, err := call(ctx)
	l.mu.Lock()
	idx = slices.IndexFunc(l.items, func(it T) bool { return l.id(it) == entryID })
	if idx >= 0 {
		switch {
		case err != nil:
			l.items = slices.Clone(l.items)
			l.items[idx] = prior
		case canonical != nil:
			l.items = slices.Clone(l.items)
			l.items[idx] = *canonical
		}
	}
	l.mu.Unlock()

	if err != nil {
		l.notifier.Error(fmt.Sprintf("%s failed: %s", op, err))
		return err
	}
	return nil
}

// lockEntry serializes mutations touching the same entry. The returned
// function releases the lock and garbage-collects it when unused.
func (l *List[T]) lockEntry(entryID string) func() {
	l.lockMu.Lock()
	el, ok := l.locks[entryID]
	if !ok {
		el = &entryLock{}
		l.locks[entryID] = el
	}
	el.refs++
	l.lockMu.Unlock()

	el.mu.Lock()

	return func() {
		el.mu.Unlock()
		l.lockMu.Lock()
		el.refs--
		if el.refs == 0 {
			delete(l.locks, entryID)
		}
		l.lockMu.Unlock()
	}
}
