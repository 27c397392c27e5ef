package db

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inspection-system/pkg/types"
)

var testSortMap = map[string]string{
	"id":     "t.id",
	"name":   "t.name",
	"status": "t.status",
}

func toSQL(t *testing.T, params types.ListParams) string {
	t.Helper()
	builder := sq.Select("t.id").From("things t")
	sql, _, err := ApplyListParams(builder, params, testSortMap, "name", "t.id").ToSql()
	require.NoError(t, err)
	return sql
}

func TestApplyListParams(t *testing.T) {
	t.Run("whitelisted column", func(t *testing.T) {
		sql := toSQL(t, types.ListParams{Sort: "status", Direction: "DESC"})
		assert.Equal(t, "SELECT t.id FROM things t ORDER BY t.status DESC, t.id DESC", sql)
	})

	t.Run("unknown column falls back to default", func(t *testing.T) {
		sql := toSQL(t, types.ListParams{Sort: "id; DROP TABLE things"})
		assert.Equal(t, "SELECT t.id FROM things t ORDER BY t.name ASC, t.id ASC", sql)
	})

	t.Run("tie breaker not repeated", func(t *testing.T) {
		sql := toSQL(t, types.ListParams{Sort: "id"})
		assert.Equal(t, "SELECT t.id FROM things t ORDER BY t.id ASC", sql)
	})

	t.Run("pagination", func(t *testing.T) {
		sql := toSQL(t, types.ListParams{
			WithPagination: true,
			Window:         types.PageWindow{Page: 3, Limit: 10, Offset: 20},
		})
		assert.Equal(t, "SELECT t.id FROM things t ORDER BY t.name ASC, t.id ASC LIMIT 10 OFFSET 20", sql)
	})
}
