package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/share-it-backend/internal/pkg/pagination"
)

func TestBuildListQuery(t *testing.T) {
	sql, args, err := buildListQuery(pagination.Page{Number: 2, Size: 10}).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT id, email, name, password_hash, created_at, count(*) OVER() AS total_count FROM public.users "+
			"ORDER BY created_at ASC, id ASC LIMIT 10 OFFSET 20",
		sql)
	assert.Empty(t, args)
}
