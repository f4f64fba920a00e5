package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePath(t *testing.T) {
	dir := NewDirectory([]Record{
		{ID: "root01", FriendlyName: "Root"},
		{ID: "fin99", FriendlyName: "Finance", ParentID: "root01"},
	})

	t.Run("all new segments chain parents", func(t *testing.T) {
		resolved, err := ResolvePath(dir, "root01", "A/B/C")
		require.NoError(t, err)
		require.Len(t, resolved, 3)

		assert.Equal(t, Resolved{ID: "A", FriendlyName: "A", ParentID: "root01"}, resolved[0])
		assert.Equal(t, Resolved{ID: "B", FriendlyName: "B", ParentID: "A"}, resolved[1])
		assert.Equal(t, Resolved{ID: "C", FriendlyName: "C", ParentID: "B"}, resolved[2])
	})

	t.Run("existing friendly name resolves to canonical id", func(t *testing.T) {
		resolved, err := ResolvePath(dir, "root01", "Finance/Invoices")
		require.NoError(t, err)
		require.Len(t, resolved, 2)

		assert.True(t, resolved[0].Exists)
		assert.Equal(t, "fin99", resolved[0].ID)
		// The new child's parent is the canonical id, not the label.
		assert.False(t, resolved[1].Exists)
		assert.Equal(t, "fin99", resolved[1].ParentID)
	})

	t.Run("existing id used as-is", func(t *testing.T) {
		resolved, err := ResolvePath(dir, "root01", "fin99")
		require.NoError(t, err)
		require.Len(t, resolved, 1)
		assert.True(t, resolved[0].Exists)
		assert.Equal(t, "fin99", resolved[0].ID)
	})

	t.Run("segments are trimmed and empties dropped", func(t *testing.T) {
		resolved, err := ResolvePath(dir, "root01", " A / B //")
		require.NoError(t, err)
		require.Len(t, resolved, 2)
		assert.Equal(t, "A", resolved[0].ID)
		assert.Equal(t, "B", resolved[1].ID)
	})

	t.Run("spaced name keeps label, strips id", func(t *testing.T) {
		resolved, err := ResolvePath(dir, "root01", "My Data Assets")
		require.NoError(t, err)
		require.Len(t, resolved, 1)
		assert.Equal(t, "MyDataAssets", resolved[0].ID)
		assert.Equal(t, "My Data Assets", resolved[0].FriendlyName)
	})

	t.Run("duplicate working ids fail the path", func(t *testing.T) {
		_, err := ResolvePath(dir, "root01", "My Data/MyData")
		require.Error(t, err)

		var dup *DuplicateSegmentIdentifierError
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, "MyData", dup.WorkingID)
		assert.Equal(t, "MyData", dup.Segment)
	})

	t.Run("empty path resolves to nothing", func(t *testing.T) {
		resolved, err := ResolvePath(dir, "root01", " / ")
		require.NoError(t, err)
		assert.Empty(t, resolved)
	})
}

func TestResolvePath_IDBeatsFriendlyName(t *testing.T) {
	// "abc123" is both a real id and another collection's friendly
	// name; the id match must win.
	dir := NewDirectory([]Record{
		{ID: "abc123", FriendlyName: "Finance"},
		{ID: "fin99", FriendlyName: "abc123"},
	})

	resolved, err := ResolvePath(dir, "abc123", "abc123")
	require.NoError(t, err)
	require.Len(t, resolved, 1)
	assert.Equal(t, "abc123", resolved[0].ID)
}
