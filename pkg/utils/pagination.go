package utils

import (
	"math"

	"inspection-system/pkg/types"
)

const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// Paginate переводит page/per_page в LIMIT/OFFSET. Ошибок не бывает: значения вне диапазона
// прижимаются к границам. OFFSET не превышает math.MaxInt64 (bigint в Postgres), поэтому page
// ограничен сверху; такая страница всё равно окажется за пределами коллекции.
func Paginate(page, perPage, maxPerPage int) types.PageWindow {
	if maxPerPage < 1 {
		maxPerPage = MaxPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 1
	}
	if maxPage := uint64(math.MaxInt64)/uint64(perPage) + 1; uint64(page) > maxPage {
		page = int(maxPage)
	}

	return types.PageWindow{
		Page:   uint64(page),
		Limit:  uint64(perPage),
		Offset: uint64(page-1) * uint64(perPage),
	}
}

// NewPageInfo строит метаданные страницы. ok == false означает, что запрошенной страницы нет
// (page > pages), в том числе для пустой коллекции.
func NewPageInfo(totalItems uint64, window types.PageWindow) (types.PageInfo, bool) {
	limit := window.Limit
	if limit == 0 {
		limit = 1
	}
	pages := (totalItems + limit - 1) / limit

	if window.Page > pages {
		return types.PageInfo{}, false
	}

	info := types.PageInfo{
		Items: totalItems,
		Page:  window.Page,
		Pages: pages,
	}
	if next := window.Page + 1; next <= pages {
		info.Next = &next
	}
	if window.Page > 1 {
		prev := window.Page - 1
		info.Prev = &prev
	}
	return info, true
}

// EmptyPageInfo - первая страница пустой коллекции: pages = 0, соседних страниц нет.
func EmptyPageInfo() types.PageInfo {
	return types.PageInfo{Items: 0, Page: 1, Pages: 0}
}
