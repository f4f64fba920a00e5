package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromMap(t *testing.T) {
	t.Run("decodes a raw entity", func(t *testing.T) {
		e, err := FromMap(map[string]interface{}{
			"typeName": "azure_sql_table",
			"guid":     "-1",
			"attributes": map[string]interface{}{
				"qualifiedName": "mssql://srv/db/schema/tbl",
				"name":          "tbl",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "azure_sql_table", e.TypeName)
		assert.Equal(t, "-1", e.GUID)
		assert.Equal(t, "tbl", e.Attributes["name"])
	})

	t.Run("missing typeName is rejected", func(t *testing.T) {
		_, err := FromMap(map[string]interface{}{"guid": "-1"})
		assert.Error(t, err)
	})
}

func TestSinglePayload(t *testing.T) {
	e := &Entity{TypeName: "azure_sql_table", GUID: "-1"}
	payload, err := SinglePayload(e)
	require.NoError(t, err)

	// referredEntities must be present even when empty, matching the
	// wire shape the API expects.
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"referredEntities":{}`)
	assert.Contains(t, string(data), `"typeName":"azure_sql_table"`)
}

func TestBulkPayload(t *testing.T) {
	t.Run("wraps entities", func(t *testing.T) {
		payload, err := BulkPayload([]*Entity{
			{TypeName: "a", GUID: "-1"},
			{TypeName: "b", GUID: "-2"},
		})
		require.NoError(t, err)
		entities, ok := payload["entities"].([]*Entity)
		require.True(t, ok)
		assert.Len(t, entities, 2)
	})

	t.Run("empty batch is rejected", func(t *testing.T) {
		_, err := BulkPayload(nil)
		assert.Error(t, err)
	})

	t.Run("invalid entity names its index", func(t *testing.T) {
		_, err := BulkPayload([]*Entity{{TypeName: "a"}, {}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "entity 1")
	})
}
