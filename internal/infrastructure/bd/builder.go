package db

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"inspection-system/pkg/types"
)

// ApplyListParams добавляет ORDER BY и LIMIT/OFFSET. Колонка сортировки берётся только из
// allowedMap; неизвестный ключ заменяется на defaultSort. Для стабильного порядка страниц
// последним ключом всегда идёт tieBreaker.
func ApplyListParams(builder sq.SelectBuilder, params types.ListParams, allowedMap map[string]string, defaultSort, tieBreaker string) sq.SelectBuilder {
	dbCol, ok := allowedMap[params.Sort]
	if !ok {
		dbCol = allowedMap[defaultSort]
	}

	sqlDir := "ASC"
	if strings.ToLower(params.Direction) == "desc" {
		sqlDir = "DESC"
	}

	if dbCol != "" {
		builder = builder.OrderBy(fmt.Sprintf("%s %s", dbCol, sqlDir))
	}
	if tieBreaker != "" && tieBreaker != dbCol {
		builder = builder.OrderBy(fmt.Sprintf("%s %s", tieBreaker, sqlDir))
	}

	if params.WithPagination && params.Window.Limit > 0 {
		builder = builder.Limit(params.Window.Limit).Offset(params.Window.Offset)
	}

	return builder
}
