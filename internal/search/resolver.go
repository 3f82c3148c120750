package search

import (
	"context"

	"mooza/internal/domain"
)

// Scope ограничивает список значений фасета выбором в вышестоящем фасете.
type Scope struct {
	Facet    FacetID
	OptionID int64
}

// CatalogSource отдаёт значения справочника фасета с учётом области
// видимости. Для неизвестного ключа области источник обязан вернуть
// пустой список, а не ошибку.
type CatalogSource interface {
	Options(ctx context.Context, facet FacetID, scope *Scope) ([]domain.Option, error)
}

// Resolver определяет, какие фасеты доступны при текущем состоянии фильтра,
// и загружает их значения, ограниченные выбором вышестоящих фасетов.
type Resolver struct {
	catalog CatalogSource
}

func NewResolver(catalog CatalogSource) *Resolver {
	return &Resolver{catalog: catalog}
}

// OptionsFor возвращает доступность фасета и его значения. Корневые фасеты
// доступны всегда и отдаются целиком. Зависимый фасет доступен, когда выбран
// хотя бы один из его ключей области видимости; действует первый выбранный
// ключ в порядке приоритета.
func (r *Resolver) OptionsFor(ctx context.Context, facet FacetID, s FilterState) (bool, []domain.Option, error) {
	if !Known(facet) {
		return false, nil, ErrUnknownFacet
	}

	keys := ScopeKeys(facet)
	if len(keys) == 0 {
		options, err := r.catalog.Options(ctx, facet, nil)
		if err != nil {
			return true, nil, err
		}
		return true, options, nil
	}

	for _, key := range keys {
		value, ok := s.Selection(key)
		if !ok {
			continue
		}
		options, err := r.catalog.Options(ctx, facet, &Scope{Facet: key, OptionID: value})
		if err != nil {
			return true, nil, err
		}
		return true, options, nil
	}

	return false, nil, nil
}
