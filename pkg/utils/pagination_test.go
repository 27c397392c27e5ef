package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inspection-system/pkg/types"
)

func TestPaginate(t *testing.T) {
	tests := []struct {
		name                  string
		page, perPage, maxPer int
		want                  types.PageWindow
	}{
		{"first page", 1, 10, 100, types.PageWindow{Page: 1, Limit: 10, Offset: 0}},
		{"third page", 3, 10, 100, types.PageWindow{Page: 3, Limit: 10, Offset: 20}},
		{"per page above max", 2, 500, 100, types.PageWindow{Page: 2, Limit: 100, Offset: 100}},
		{"zero page", 0, 10, 100, types.PageWindow{Page: 1, Limit: 10, Offset: 0}},
		{"negative page", -5, 10, 100, types.PageWindow{Page: 1, Limit: 10, Offset: 0}},
		{"zero per page", 2, 0, 100, types.PageWindow{Page: 2, Limit: 1, Offset: 1}},
		{"invalid max", 1, 500, 0, types.PageWindow{Page: 1, Limit: MaxPerPage, Offset: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Paginate(tt.page, tt.perPage, tt.maxPer))
		})
	}
}

func TestPaginateWindowIsBounded(t *testing.T) {
	for page := -3; page <= 20; page++ {
		for perPage := -3; perPage <= 150; perPage += 7 {
			w := Paginate(page, perPage, 100)
			assert.GreaterOrEqual(t, w.Limit, uint64(1))
			assert.LessOrEqual(t, w.Limit, uint64(100))
			assert.Equal(t, (w.Page-1)*w.Limit, w.Offset)
		}
	}
}

func TestPaginateHugePageKeepsOffsetInBigint(t *testing.T) {
	for _, perPage := range []int{1, 7, 100} {
		for _, page := range []int{math.MaxInt64, math.MaxInt64 / 2, 184467440737095517} {
			w := Paginate(page, perPage, 100)
			assert.LessOrEqual(t, w.Offset, uint64(math.MaxInt64), "page=%d per_page=%d", page, perPage)
			assert.Equal(t, (w.Page-1)*w.Limit, w.Offset, "page=%d per_page=%d", page, perPage)
		}
	}

	w := Paginate(math.MaxInt64, 100, 100)
	assert.Equal(t, types.PageWindow{Page: 92233720368547759, Limit: 100, Offset: 9223372036854775800}, w)

	_, ok := NewPageInfo(25, w)
	assert.False(t, ok)
}

func TestNewPageInfo(t *testing.T) {
	t.Run("middle page", func(t *testing.T) {
		info, ok := NewPageInfo(25, Paginate(2, 10, 100))
		require.True(t, ok)
		assert.Equal(t, uint64(25), info.Items)
		assert.Equal(t, uint64(3), info.Pages)
		require.NotNil(t, info.Next)
		require.NotNil(t, info.Prev)
		assert.Equal(t, uint64(3), *info.Next)
		assert.Equal(t, uint64(1), *info.Prev)
	})

	t.Run("last page has no next", func(t *testing.T) {
		info, ok := NewPageInfo(25, Paginate(3, 10, 100))
		require.True(t, ok)
		assert.Nil(t, info.Next)
		require.NotNil(t, info.Prev)
	})

	t.Run("first page has no prev", func(t *testing.T) {
		info, ok := NewPageInfo(10, Paginate(1, 10, 100))
		require.True(t, ok)
		assert.Equal(t, uint64(1), info.Pages)
		assert.Nil(t, info.Next)
		assert.Nil(t, info.Prev)
	})

	t.Run("page beyond last", func(t *testing.T) {
		_, ok := NewPageInfo(25, Paginate(4, 10, 100))
		assert.False(t, ok)
	})

	t.Run("empty collection", func(t *testing.T) {
		_, ok := NewPageInfo(0, Paginate(1, 10, 100))
		assert.False(t, ok)
	})
}

func TestNewPageInfoPagesCoverItems(t *testing.T) {
	for total := uint64(1); total <= 60; total++ {
		for limit := 1; limit <= 12; limit++ {
			info, ok := NewPageInfo(total, Paginate(1, limit, 100))
			require.True(t, ok)
			assert.GreaterOrEqual(t, info.Pages*uint64(limit), total)
			assert.Less(t, (info.Pages-1)*uint64(limit), total)
		}
	}
}

func TestEmptyPageInfo(t *testing.T) {
	info := EmptyPageInfo()
	assert.Equal(t, uint64(1), info.Page)
	assert.Equal(t, uint64(0), info.Pages)
	assert.Nil(t, info.Next)
	assert.Nil(t, info.Prev)
}
