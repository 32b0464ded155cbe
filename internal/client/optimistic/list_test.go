package optimistic

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/redhub-app/redhub-cli/internal/common"
)

type item struct {
	ID    string
	Title string
}

func newItemList(n *Notifier) *List[item] {
	return NewList(func(it item) string { return it.ID }, n)
}

func TestList_RemoveCommitsOnSuccess(t *testing.T) {
	n := NewNotifier()
	l := newItemList(n)
	l.Replace([]item{{ID: "a"}, {ID: "b"}})

	err := l.Remove(context.Background(), "remove favorite", "b", func(ctx context.Context) error {
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []item{{ID: "a"}}, l.Items())
	require.Zero(t, n.Len(), "successful mutations produce no notification")
}

func TestList_RemoveAppliesBeforeCall(t *testing.T) {
	l := newItemList(NewNotifier())
	l.Replace([]item{{ID: "a"}, {ID: "b"}})

	var duringCall []item
	err := l.Remove(context.Background(), "remove favorite", "b", func(ctx context.Context) error {
		duringCall = l.Items()
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []item{{ID: "a"}}, duringCall, "optimistic apply must precede the network call")
}

func TestList_RemoveRollsBackOnFailure(t *testing.T) {
	n := NewNotifier()
	l := newItemList(n)
	before := []item{{ID: "a", Title: "A"}, {ID: "b", Title: "B"}}
	l.Replace(before)

	boom := errors.New("server error (status 500)")
	err := l.Remove(context.Background(), "remove favorite", "b", func(ctx context.Context) error {
		return boom
	})
	require.ErrorIs(t, err, boom)

	require.Equal(t, before, l.Items(), "list must be restored identical to its pre-mutation snapshot")

	notes := n.Drain()
	require.Len(t, notes, 1, "exactly one error notification per failed mutation")
	require.Equal(t, LevelError, notes[0].Level)
	require.Contains(t, notes[0].Message, "remove favorite")
}

func TestList_RemoveRestoresOriginalPosition(t *testing.T) {
	l := newItemList(NewNotifier())
	before := []item{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	l.Replace(before)

	_ = l.Remove(context.Background(), "delete article", "b", func(ctx context.Context) error {
		return errors.New("boom")
	})
	require.Equal(t, before, l.Items())
}

func TestList_RemoveMissingEntry(t *testing.T) {
	n := NewNotifier()
	l := newItemList(n)
	l.Replace([]item{{ID: "a"}})

	called := false
	err := l.Remove(context.Background(), "delete article", "nope", func(ctx context.Context) error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, common.ErrNotFound)
	require.False(t, called, "no call is issued when there is nothing to apply")
}

func TestList_AddRollsBackOnFailure(t *testing.T) {
	n := NewNotifier()
	l := newItemList(n)
	before := []item{{ID: "a"}}
	l.Replace(before)

	err := l.Add(context.Background(), "add favorite", item{ID: "b"}, func(ctx context.Context) error {
		return errors.New("forbidden")
	})
	require.Error(t, err)
	require.Equal(t, before, l.Items())
	require.Equal(t, 1, n.Len())
}

func TestList_AddCommitsOnSuccess(t *testing.T) {
	l := newItemList(NewNotifier())
	l.Replace([]item{{ID: "a"}})

	require.NoError(t, l.Add(context.Background(), "add favorite", item{ID: "b"}, func(ctx context.Context) error {
		return nil
	}))
	require.Equal(t, []item{{ID: "a"}, {ID: "b"}}, l.Items())
}

func TestList_UpdateAdoptsCanonicalValue(t *testing.T) {
	l := newItemList(NewNotifier())
	l.Replace([]item{{ID: "a", Title: "old"}})

	canonical := item{ID: "a", Title: "server-normalized"}
	err := l.Update(context.Background(), "update article", "a", item{ID: "a", Title: "optimistic"},
		func(ctx context.Context) (*item, error) {
			return &canonical, nil
		})
	require.NoError(t, err)
	require.Equal(t, []item{canonical}, l.Items())
}

func TestList_UpdateKeepsOptimisticWhenNoCanonical(t *testing.T) {
	l := newItemList(NewNotifier())
	l.Replace([]item{{ID: "a", Title: "old"}})

	err := l.Update(context.Background(), "update article", "a", item{ID: "a", Title: "optimistic"},
		func(ctx context.Context) (*item, error) {
			return nil, nil
		})
	require.NoError(t, err)
	require.Equal(t, []item{{ID: "a", Title: "optimistic"}}, l.Items())
}

func TestList_UpdateRollsBackOnFailure(t *testing.T) {
	n := NewNotifier()
	l := newItemList(n)
	before := []item{{ID: "a", Title: "old"}}
	l.Replace(before)

	err := l.Update(context.Background(), "update article", "a", item{ID: "a", Title: "optimistic"},
		func(ctx context.Context) (*item, error) {
			return nil, errors.New("validation")
		})
	require.Error(t, err)
	require.Equal(t, before, l.Items())
	require.Equal(t, 1, n.Len())
}

func TestList_SameEntryMutationsSerialize(t *testing.T) {
	l := newItemList(NewNotifier())
	l.Replace([]item{{ID: "a", Title: "v0"}})

	firstInCall := make(chan struct{})
	release := make(chan struct{})

	go func() {
		_ = l.Update(context.Background(), "update article", "a", item{ID: "a", Title: "v1"},
			func(ctx context.Context) (*item, error) {
				close(firstInCall)
				<-release
				return nil, errors.New("late failure")
			})
	}()

	<-firstInCall

	secondDone := make(chan struct{})
	go func() {
		_ = l.Update(context.Background(), "update article", "a", item{ID: "a", Title: "v2"},
			func(ctx context.Context) (*item, error) {
				return nil, nil
			})
		close(secondDone)
	}()

	select {
	case <-secondDone:
		t.Fatal("second mutation on the same entry must wait for the first's resolution")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)

	select {
	case <-secondDone:
	case <-time.After(time.Second):
		t.Fatal("second mutation never ran after the first resolved")
	}

	// first rolled back to v0, then second applied v2
	got, ok := l.Get("a")
	require.True(t, ok)
	require.Equal(t, "v2", got.Title)
}

func TestList_DisjointEntriesAreIndependent(t *testing.T) {
	n := NewNotifier()
	l := newItemList(n)
	l.Replace([]item{{ID: "a"}, {ID: "b"}})

	aInCall := make(chan struct{})
	releaseA := make(chan struct{})
	aDone := make(chan struct{})

	go func() {
		// removal of "a" will fail and roll back
		_ = l.Remove(context.Background(), "delete article", "a", func(ctx context.Context) error {
			close(aInCall)
			<-releaseA
			return errors.New("boom")
		})
		close(aDone)
	}()

	<-aInCall

	// while "a" is in flight, a disjoint mutation on "b" completes on its own
	require.NoError(t, l.Remove(context.Background(), "delete article", "b", func(ctx context.Context) error {
		return nil
	}))

	close(releaseA)
	<-aDone

	// the rollback of "a" must not resurrect "b"
	items := l.Items()
	require.Len(t, items, 1)
	require.Equal(t, "a", items[0].ID)
}
