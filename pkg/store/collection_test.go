package store_test

import (
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "dogroom/pkg/errors"
	"dogroom/pkg/store"
)

type note struct {
	ID    string `msgpack:"id"`
	Title string `msgpack:"title"`
	Count int    `msgpack:"count"`
}

func (n note) RecordID() string { return n.ID }

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func newNotes(t *testing.T, s *store.Store) *store.Collection[note] {
	t.Helper()
	c, err := store.NewCollection[note](s, "note")
	require.NoError(t, err)
	return c
}

func TestCreateThenGetRoundTrips(t *testing.T) {
	notes := newNotes(t, newTestStore(t))

	created, err := notes.Create(note{ID: "n1", Title: "hello", Count: 3})
	require.NoError(t, err)

	got, err := notes.Get(created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)

	exists, err := notes.Exists("n1")
	require.NoError(t, err)
	require.True(t, exists)
}

func TestGetMissingReturnsNotFound(t *testing.T) {
	notes := newNotes(t, newTestStore(t))

	_, err := notes.Get("nope")
	require.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))

	exists, err := notes.Exists("nope")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestCreateDuplicateFails(t *testing.T) {
	notes := newNotes(t, newTestStore(t))

	_, err := notes.Create(note{ID: "n1", Title: "first"})
	require.NoError(t, err)

	_, err = notes.Create(note{ID: "n1", Title: "second"})
	require.True(t, apperrors.IsCode(err, apperrors.CodeAlreadyExists))

	// The failed create left the original untouched.
	got, err := notes.Get("n1")
	require.NoError(t, err)
	require.Equal(t, "first", got.Title)

	all, err := notes.All()
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestCreateEmptyIDRejected(t *testing.T) {
	notes := newNotes(t, newTestStore(t))

	_, err := notes.Create(note{Title: "anonymous"})
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}

func TestListWalkEnumeratesExactlyOnce(t *testing.T) {
	notes := newNotes(t, newTestStore(t))

	const total = 25
	for i := 0; i < total; i++ {
		_, err := notes.Create(note{ID: fmt.Sprintf("n%02d", i), Count: i})
		require.NoError(t, err)
	}

	for _, limit := range []int{1, 3, 7, 10, 25, 100} {
		t.Run(fmt.Sprintf("limit_%d", limit), func(t *testing.T) {
			seen := map[string]int{}
			var order []string
			cursor := ""
			for {
				page, err := notes.List(cursor, limit)
				require.NoError(t, err)
				require.LessOrEqual(t, len(page.Items), limit)
				for _, item := range page.Items {
					seen[item.ID]++
					order = append(order, item.ID)
				}
				if page.Next == nil {
					break
				}
				cursor = *page.Next
			}

			require.Len(t, seen, total)
			for id, count := range seen {
				require.Equal(t, 1, count, "record %s returned %d times", id, count)
			}
			// Insertion order is preserved across page boundaries.
			for i := 1; i < len(order); i++ {
				require.Less(t, order[i-1], order[i])
			}
		})
	}
}

func TestListInvalidInputs(t *testing.T) {
	notes := newNotes(t, newTestStore(t))

	_, err := notes.List("", 0)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))

	_, err = notes.List("not-a-cursor", 5)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}

func TestListEmptyCollection(t *testing.T) {
	notes := newNotes(t, newTestStore(t))

	page, err := notes.List("", 10)
	require.NoError(t, err)
	require.Empty(t, page.Items)
	require.Nil(t, page.Next)
}

func TestCursorStableAcrossCalls(t *testing.T) {
	notes := newNotes(t, newTestStore(t))
	for i := 0; i < 6; i++ {
		_, err := notes.Create(note{ID: fmt.Sprintf("n%d", i)})
		require.NoError(t, err)
	}

	first, err := notes.List("", 2)
	require.NoError(t, err)
	require.NotNil(t, first.Next)

	// Re-issuing the same cursor against an unchanged index yields the
	// same page.
	a, err := notes.List(*first.Next, 2)
	require.NoError(t, err)
	b, err := notes.List(*first.Next, 2)
	require.NoError(t, err)
	require.Equal(t, a.Items, b.Items)
}

func TestEnsureSeedIsIdempotent(t *testing.T) {
	notes := newNotes(t, newTestStore(t))

	seed := []note{
		{ID: "s1", Title: "one"},
		{ID: "s2", Title: "two"},
		{ID: "s3", Title: "three"},
	}

	for i := 0; i < 3; i++ {
		require.NoError(t, notes.EnsureSeed(seed))
	}

	all, err := notes.All()
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func TestEnsureSeedConcurrent(t *testing.T) {
	notes := newNotes(t, newTestStore(t))

	seed := []note{{ID: "s1"}, {ID: "s2"}}

	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- notes.EnsureSeed(seed)
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	all, err := notes.All()
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestMutateMissingReturnsNotFound(t *testing.T) {
	notes := newNotes(t, newTestStore(t))

	_, err := notes.Mutate("nope", func(n note) (note, error) { return n, nil })
	require.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
}

func TestMutateErrorLeavesStateUnchanged(t *testing.T) {
	notes := newNotes(t, newTestStore(t))
	_, err := notes.Create(note{ID: "n1", Count: 7})
	require.NoError(t, err)

	_, err = notes.Mutate("n1", func(n note) (note, error) {
		n.Count = 99
		return n, apperrors.Conflict("rejected")
	})
	require.True(t, apperrors.IsCode(err, apperrors.CodeConflict))

	got, err := notes.Get("n1")
	require.NoError(t, err)
	require.Equal(t, 7, got.Count)
}

func TestConcurrentMutateLosesNoUpdate(t *testing.T) {
	notes := newNotes(t, newTestStore(t))
	_, err := notes.Create(note{ID: "counter", Count: 5})
	require.NoError(t, err)

	const workers = 10
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := notes.Mutate("counter", func(n note) (note, error) {
				n.Count++
				return n, nil
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	got, err := notes.Get("counter")
	require.NoError(t, err)
	require.Equal(t, 5+workers, got.Count)
}

func TestCreateIfGuardRejectsWithoutPartialWrite(t *testing.T) {
	notes := newNotes(t, newTestStore(t))
	_, err := notes.Create(note{ID: "n1"})
	require.NoError(t, err)

	_, err = notes.CreateIf(note{ID: "n2"}, func(existing []note) error {
		require.Len(t, existing, 1)
		return apperrors.Conflict("no room")
	})
	require.True(t, apperrors.IsCode(err, apperrors.CodeConflict))

	exists, err := notes.Exists("n2")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestCollectionsAreIndependent(t *testing.T) {
	s := newTestStore(t)
	notes := newNotes(t, s)
	drafts, err := store.NewCollection[note](s, "draft")
	require.NoError(t, err)

	_, err = notes.Create(note{ID: "x"})
	require.NoError(t, err)
	_, err = drafts.Create(note{ID: "x"})
	require.NoError(t, err)

	all, err := drafts.All()
	require.NoError(t, err)
	require.Len(t, all, 1)
}
