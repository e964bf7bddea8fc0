package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRecordsQuery(t *testing.T) {
	query, args, err := buildRecordsQuery("group_acme_corp", 9, 5)
	require.NoError(t, err)

	assert.Contains(t, query, "FROM group_acme_corp")
	assert.Contains(t, query, "LEFT JOIN categories ON group_acme_corp.category_id = categories.id")
	assert.Contains(t, query, "categories.name AS category")
	assert.Contains(t, query, "ORDER BY group_acme_corp.myconveyor_id ASC")
	assert.Contains(t, query, "group_acme_corp.equipment_id = $1")
	assert.Contains(t, query, "group_acme_corp.location_id = $2")

	// squirrel orders Eq keys alphabetically: equipment_id before location_id
	require.Len(t, args, 2)
	assert.Equal(t, uint64(5), args[0])
	assert.Equal(t, uint64(9), args[1])
}

func TestBuildRecordsQuery_SelectsFullColumnSet(t *testing.T) {
	query, _, err := buildRecordsQuery("group_", 1, 1)
	require.NoError(t, err)

	for _, col := range recordColumns {
		assert.Contains(t, query, "group_."+col)
	}
}

func TestBuildRecordsQuery_EmptyCompanyYieldsLiteralGroupTable(t *testing.T) {
	// An absent or empty company name resolves to the literal table "group_".
	// Preserved source behavior; the query is built and fails at the store.
	query, _, err := buildRecordsQuery("group_", 9, 5)
	require.NoError(t, err)
	assert.Contains(t, query, "FROM group_")
}
