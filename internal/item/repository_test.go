package item

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/share-it-backend/internal/pkg/pagination"
)

func TestBuildSearchQuery(t *testing.T) {
	sql, args, err := buildListQuery(searchFilter("drill"), pagination.Page{Number: 1, Size: 10}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "WHERE (available = $1 AND (name ILIKE $2 OR description ILIKE $3))")
	assert.Contains(t, sql, "ORDER BY created_at ASC, id ASC LIMIT 10 OFFSET 10")
	assert.Equal(t, []interface{}{true, "%drill%", "%drill%"}, args)
}

func TestBuildListByOwnerQuery(t *testing.T) {
	sql, args, err := buildListQuery(ownerFilter("owner"), pagination.Page{Number: 0, Size: 5}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "request_id, created_at, count(*) OVER() AS total_count")
	assert.Contains(t, sql, "FROM public.items WHERE owner_id = $1")
	assert.Contains(t, sql, "LIMIT 5 OFFSET 0")
	assert.Equal(t, []interface{}{"owner"}, args)
}

func TestBuildMatchQueryForCount(t *testing.T) {
	sql, args, err := pagination.CountQuery(buildMatchQuery(searchFilter("saw"))).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT count(*) FROM (SELECT id FROM public.items "+
			"WHERE (available = $1 AND (name ILIKE $2 OR description ILIKE $3))) AS matched",
		sql)
	assert.Equal(t, []interface{}{true, "%saw%", "%saw%"}, args)
}

func TestBuildListByRequestsQuery(t *testing.T) {
	sql, args, err := buildListByRequestsQuery([]string{"r1", "r2"}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "FROM public.items WHERE request_id IN ($1,$2)")
	assert.Contains(t, sql, "ORDER BY created_at ASC, id ASC")
	assert.Equal(t, []interface{}{"r1", "r2"}, args)
}
