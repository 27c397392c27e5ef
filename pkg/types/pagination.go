package types

// PageWindow - окно выборки для LIMIT/OFFSET.
type PageWindow struct {
	Page   uint64 `json:"page"`
	Limit  uint64 `json:"limit"`
	Offset uint64 `json:"offset"`
}

// PageInfo описывает страницу результата. Next/Prev равны nil, если такой страницы нет.
type PageInfo struct {
	Items uint64  `json:"items"`
	Page  uint64  `json:"page"`
	Pages uint64  `json:"pages"`
	Next  *uint64 `json:"next"`
	Prev  *uint64 `json:"prev"`
}
