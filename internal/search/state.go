package search

// FilterState — неизменяемое состояние фильтра: выбранные значения фасетов
// и позиция пагинации. Каждая мутация возвращает новое значение, поэтому
// состояние можно безопасно передавать между горутинами без блокировок.
type FilterState struct {
	selections map[FacetID]int64
	page       int
	pageSize   int
}

// NewFilterState возвращает пустое состояние: ничего не выбрано, первая страница.
func NewFilterState(pageSize int) FilterState {
	if pageSize < 1 {
		pageSize = 1
	}
	return FilterState{
		selections: map[FacetID]int64{},
		page:       1,
		pageSize:   pageSize,
	}
}

// SetFacet выбирает значение фасета или снимает выбор (option == nil).
// Если значение изменилось, все транзитивные потомки фасета сбрасываются
// в том же обновлении, а страница возвращается к первой. Фасеты, не
// связанные с данным иерархией, не затрагиваются.
func (s FilterState) SetFacet(id FacetID, option *int64) (FilterState, error) {
	if !Known(id) {
		return s, ErrUnknownFacet
	}

	current, selected := s.selections[id]
	if option == nil && !selected {
		return s, nil
	}
	if option != nil && selected && current == *option {
		return s, nil
	}

	next := s.clone()
	if option == nil {
		delete(next.selections, id)
	} else {
		next.selections[id] = *option
	}
	for _, descendant := range Descendants(id) {
		delete(next.selections, descendant)
	}
	next.page = 1

	return next, nil
}

// SetPage устанавливает страницу, не трогая выбор фасетов. Значения меньше
// единицы приводятся к первой странице.
func (s FilterState) SetPage(page int) FilterState {
	if page < 1 {
		page = 1
	}
	next := s.clone()
	next.page = page
	return next
}

// ResetAll снимает выбор со всех фасетов и возвращает первую страницу.
func (s FilterState) ResetAll() FilterState {
	return NewFilterState(s.pageSize)
}

// Selection возвращает выбранное значение фасета, если оно есть.
func (s FilterState) Selection(id FacetID) (int64, bool) {
	v, ok := s.selections[id]
	return v, ok
}

func (s FilterState) Page() int {
	return s.page
}

func (s FilterState) PageSize() int {
	return s.pageSize
}

func (s FilterState) clone() FilterState {
	selections := make(map[FacetID]int64, len(s.selections))
	for k, v := range s.selections {
		selections[k] = v
	}
	return FilterState{
		selections: selections,
		page:       s.page,
		pageSize:   s.pageSize,
	}
}
