package service

import (
	"context"
	"fmt"

	"mooza/internal/domain"
	"mooza/internal/repository"
	"mooza/internal/search"
)

type facetSelection struct {
	Facet search.FacetID
	Value *int64
}

// requestSelections раскладывает запрос по фасетам в порядке иерархии:
// предки раньше потомков, иначе установка родителя стёрла бы уже
// применённый выбор потомка.
func requestSelections(req domain.SearchRequest) []facetSelection {
	return []facetSelection{
		{search.FacetField, req.FieldID},
		{search.FacetProfession, req.ProfessionID},
		{search.FacetService, req.ServiceID},
		{search.FacetGenre, req.GenreID},
		{search.FacetWorkFormat, req.WorkFormatID},
		{search.FacetEmploymentType, req.EmploymentTypeID},
		{search.FacetSkillLevel, req.SkillLevelID},
		{search.FacetAvailability, req.AvailabilityID},
	}
}

// filterStateFromRequest собирает состояние фильтра из параметров запроса.
func filterStateFromRequest(req domain.SearchRequest, pageSize int) (search.FilterState, error) {
	state := search.NewFilterState(pageSize)

	for _, sel := range requestSelections(req) {
		if sel.Value == nil {
			continue
		}
		next, err := state.SetFacet(sel.Facet, sel.Value)
		if err != nil {
			return state, fmt.Errorf("ошибка применения фасета %s: %w", sel.Facet, err)
		}
		state = next
	}

	if req.Page > 0 {
		state = state.SetPage(req.Page)
	}

	return state, nil
}

// validateSelections проверяет, что каждое выбранное значение принадлежит
// справочнику своего фасета.
func validateSelections(ctx context.Context, catalog repository.CatalogRepository, req domain.SearchRequest) error {
	for _, sel := range requestSelections(req) {
		if sel.Value == nil {
			continue
		}
		exists, err := catalog.OptionExists(ctx, sel.Facet, *sel.Value)
		if err != nil {
			return fmt.Errorf("ошибка проверки значения фасета %s: %w", sel.Facet, err)
		}
		if !exists {
			return domain.ErrInvalidOption
		}
	}

	return nil
}
