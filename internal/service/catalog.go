package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"mooza/internal/domain"
	"mooza/internal/search"
)

// CatalogServiceImpl отдаёт значения фасетов для построения интерфейса
// фильтров. Зависимый фасет недоступен, пока не выбран ни один из его
// вышестоящих фасетов.
type CatalogServiceImpl struct {
	resolver *search.Resolver
	logger   *zap.Logger
}

func NewCatalogService(source search.CatalogSource, logger *zap.Logger) *CatalogServiceImpl {
	return &CatalogServiceImpl{
		resolver: search.NewResolver(source),
		logger:   logger,
	}
}

func (s *CatalogServiceImpl) Options(ctx context.Context, facet search.FacetID, scope domain.SearchRequest) (*domain.OptionList, error) {
	if !search.Known(facet) {
		return nil, errors.New("неизвестный фасет")
	}

	state, err := filterStateFromRequest(scope, 1)
	if err != nil {
		s.logger.Error("ошибка разбора области видимости фасета", zap.String("facet", string(facet)), zap.Error(err))
		return nil, errors.New("ошибка при получении значений фасета")
	}

	enabled, options, err := s.resolver.OptionsFor(ctx, facet, state)
	if err != nil {
		s.logger.Error("ошибка загрузки значений фасета", zap.String("facet", string(facet)), zap.Error(err))
		return nil, errors.New("ошибка при получении значений фасета")
	}

	if options == nil {
		options = []domain.Option{}
	}

	return &domain.OptionList{
		Enabled: enabled,
		Options: options,
	}, nil
}
