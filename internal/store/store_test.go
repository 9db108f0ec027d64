package store

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type record struct {
	ID    string `json:"id"`
	Count int    `json:"count"`
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(t.TempDir())
	require.NoError(t, err)
	return st
}

func TestOpen_RequiresDirectory(t *testing.T) {
	_, err := Open("")
	require.Error(t, err)
}

func TestCollection_SeedOnMissingPersists(t *testing.T) {
	st := newTestStore(t)
	col := NewCollection(st, "records", func() []record {
		return []record{{ID: "seed", Count: 1}}
	})

	got, err := col.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, []record{{ID: "seed", Count: 1}}, got)

	// The seed document must now exist on disk.
	data, err := os.ReadFile(filepath.Join(st.dir, "records.json"))
	require.NoError(t, err)
	require.Contains(t, string(data), `"seed"`)
}

func TestCollection_SaveLoadRoundTrip(t *testing.T) {
	st := newTestStore(t)
	col := NewCollection(st, "records", func() []record { return nil })

	want := []record{{ID: "a", Count: 2}, {ID: "b", Count: 5}}
	require.NoError(t, col.Save(context.Background(), want))

	got, err := col.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestCollection_CorruptDocumentLeftOnDisk(t *testing.T) {
	st := newTestStore(t)
	col := NewCollection(st, "records", func() []record { return []record{} })

	corrupt := []byte(`{"not": "a list"`)
	path := filepath.Join(st.dir, "records.json")
	require.NoError(t, os.WriteFile(path, corrupt, 0o644))

	got, err := col.Load(context.Background())
	require.NoError(t, err)
	require.Empty(t, got)

	// Load must not overwrite the corrupt file.
	after, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, corrupt, after)
}

func TestCollection_UpdateAbortsWithoutWriteOnError(t *testing.T) {
	st := newTestStore(t)
	col := NewCollection(st, "records", func() []record { return nil })
	require.NoError(t, col.Save(context.Background(), []record{{ID: "keep", Count: 1}}))

	_, err := col.Update(context.Background(), func(recs []record) ([]record, error) {
		return nil, os.ErrPermission
	})
	require.ErrorIs(t, err, os.ErrPermission)

	got, err := col.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, []record{{ID: "keep", Count: 1}}, got)
}

func TestCollection_ConcurrentUpdatesNeverLost(t *testing.T) {
	st := newTestStore(t)
	col := NewCollection(st, "counter", func() []record {
		return []record{{ID: "c", Count: 0}}
	})

	const writers = 20
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func() {
			defer wg.Done()
			_, err := col.Update(context.Background(), func(recs []record) ([]record, error) {
				recs[0].Count++
				return recs, nil
			})
			require.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := col.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, writers, got[0].Count)
}

func TestCollection_CancelledContext(t *testing.T) {
	st := newTestStore(t)
	col := NewCollection(st, "records", func() []record { return nil })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := col.Load(ctx)
	require.ErrorIs(t, err, context.Canceled)

	require.ErrorIs(t, col.Save(ctx, nil), context.Canceled)

	_, err = col.Update(ctx, func(recs []record) ([]record, error) { return recs, nil })
	require.ErrorIs(t, err, context.Canceled)
}
