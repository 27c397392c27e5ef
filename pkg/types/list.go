package types

// ListParams - параметры выборки списка: сортировка и окно страницы.
// Sort - ключ из белого списка репозитория, а не имя колонки.
type ListParams struct {
	Sort           string
	Direction      string
	Window         PageWindow
	WithPagination bool
}
