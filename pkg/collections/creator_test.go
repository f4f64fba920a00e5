package collections

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWriter records create-or-update calls and can fail on chosen ids.
type fakeWriter struct {
	calls  []createCall
	failOn map[string]error
}

type createCall struct {
	id           string
	friendlyName string
	parentID     string
}

func (f *fakeWriter) CreateOrUpdate(ctx context.Context, id, friendlyName, parentID string) error {
	if err, ok := f.failOn[id]; ok {
		return err
	}
	f.calls = append(f.calls, createCall{id, friendlyName, parentID})
	return nil
}

func baseDir() *Directory {
	return NewDirectory([]Record{
		{ID: "root01", FriendlyName: "Root"},
		{ID: "fin99", FriendlyName: "Finance", ParentID: "root01"},
	})
}

func TestEnsurePath(t *testing.T) {
	t.Run("creates segments parent before child", func(t *testing.T) {
		w := &fakeWriter{}
		res, err := EnsurePath(context.Background(), w, baseDir(), "Root", "A/B/C", nil)
		require.NoError(t, err)

		require.Len(t, w.calls, 3)
		assert.Equal(t, createCall{"A", "A", "root01"}, w.calls[0])
		assert.Equal(t, createCall{"B", "B", "A"}, w.calls[1])
		assert.Equal(t, createCall{"C", "C", "B"}, w.calls[2])

		assert.Equal(t, []string{"A", "B", "C"}, res.Created)
		assert.Empty(t, res.Skipped)
	})

	t.Run("start resolves by id too", func(t *testing.T) {
		w := &fakeWriter{}
		_, err := EnsurePath(context.Background(), w, baseDir(), "fin99", "X", nil)
		require.NoError(t, err)
		require.Len(t, w.calls, 1)
		assert.Equal(t, "fin99", w.calls[0].parentID)
	})

	t.Run("unknown start fails", func(t *testing.T) {
		w := &fakeWriter{}
		_, err := EnsurePath(context.Background(), w, baseDir(), "Nowhere", "A", nil)
		require.Error(t, err)

		var notFound *StartCollectionNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "Nowhere", notFound.Value)
		assert.Contains(t, err.Error(), "collection admin")
		assert.Empty(t, w.calls)
	})

	t.Run("existing segments are skipped", func(t *testing.T) {
		w := &fakeWriter{}
		res, err := EnsurePath(context.Background(), w, baseDir(), "Root", "Finance/Invoices", nil)
		require.NoError(t, err)

		require.Len(t, w.calls, 1)
		assert.Equal(t, createCall{"Invoices", "Invoices", "fin99"}, w.calls[0])
		assert.Equal(t, []string{"fin99"}, res.Skipped)
		assert.Equal(t, []string{"Invoices"}, res.Created)
	})

	t.Run("idempotent with refreshed directory", func(t *testing.T) {
		// First run creates A and B.
		w := &fakeWriter{}
		_, err := EnsurePath(context.Background(), w, baseDir(), "Root", "A/B", nil)
		require.NoError(t, err)
		require.Len(t, w.calls, 2)

		// Simulate a refreshed snapshot that now contains A and B.
		refreshed := NewDirectory([]Record{
			{ID: "root01", FriendlyName: "Root"},
			{ID: "fin99", FriendlyName: "Finance", ParentID: "root01"},
			{ID: "A", FriendlyName: "A", ParentID: "root01"},
			{ID: "B", FriendlyName: "B", ParentID: "A"},
		})

		w2 := &fakeWriter{}
		res, err := EnsurePath(context.Background(), w2, refreshed, "Root", "A/B", nil)
		require.NoError(t, err)
		assert.Empty(t, w2.calls)
		assert.Empty(t, res.Created)
		assert.Equal(t, []string{"A", "B"}, res.Skipped)
	})

	t.Run("failure aborts remaining segments", func(t *testing.T) {
		w := &fakeWriter{failOn: map[string]error{"B": fmt.Errorf("boom")}}
		res, err := EnsurePath(context.Background(), w, baseDir(), "Root", "A/B/C", nil)
		require.Error(t, err)

		var pathErr *PathError
		require.ErrorAs(t, err, &pathErr)
		assert.Equal(t, "B", pathErr.SegmentID)
		assert.ErrorContains(t, pathErr.Err, "boom")

		// A was created, C never attempted, no rollback.
		require.Len(t, w.calls, 1)
		assert.Equal(t, "A", w.calls[0].id)
		assert.Equal(t, []string{"A"}, res.Created)
	})

	t.Run("spaced segment created with stripped id", func(t *testing.T) {
		w := &fakeWriter{}
		_, err := EnsurePath(context.Background(), w, baseDir(), "Root", "My Data", nil)
		require.NoError(t, err)
		require.Len(t, w.calls, 1)
		assert.Equal(t, createCall{"MyData", "My Data", "root01"}, w.calls[0])
	})
}

func TestEnsurePaths(t *testing.T) {
	t.Run("paths run independently", func(t *testing.T) {
		w := &fakeWriter{failOn: map[string]error{"Bad": fmt.Errorf("denied")}}
		results, err := EnsurePaths(context.Background(), w, baseDir(), "Root",
			[]string{"Bad/Child", "Good"}, nil)
		require.Error(t, err)

		// The second path still ran.
		require.Len(t, results, 2)
		assert.Empty(t, results[0].Created)
		assert.Equal(t, []string{"Good"}, results[1].Created)
	})

	t.Run("shared new parent stays parent-before-child", func(t *testing.T) {
		w := &fakeWriter{}
		_, err := EnsurePaths(context.Background(), w, baseDir(), "Root",
			[]string{"Shared/One", "Shared/Two"}, nil)
		require.NoError(t, err)

		// Shared is issued before each of its children; the repeated
		// create-or-update is harmless.
		require.Len(t, w.calls, 4)
		assert.Equal(t, "Shared", w.calls[0].id)
		assert.Equal(t, "One", w.calls[1].id)
		assert.Equal(t, "Shared", w.calls[2].id)
		assert.Equal(t, "Two", w.calls[3].id)
	})

	t.Run("no paths no calls", func(t *testing.T) {
		w := &fakeWriter{}
		results, err := EnsurePaths(context.Background(), w, baseDir(), "Root", nil, nil)
		require.NoError(t, err)
		assert.Empty(t, results)
		assert.Empty(t, w.calls)
	})
}
