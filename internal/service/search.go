package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"mooza/config"
	"mooza/internal/domain"
	"mooza/internal/repository"
	"mooza/internal/search"
)

// SearchServiceImpl выполняет фасетный поиск музыкантов: проверяет выбранные
// значения, компилирует состояние фильтра в дескриптор и исполняет его через
// хранилище — страница выдачи и точный подсчёт с одними и теми же предикатами.
type SearchServiceImpl struct {
	searchRepo  repository.SearchRepository
	catalogRepo repository.CatalogRepository
	cfg         config.SearchConfig
	logger      *zap.Logger
}

func NewSearchService(searchRepo repository.SearchRepository, catalogRepo repository.CatalogRepository, cfg config.SearchConfig, logger *zap.Logger) *SearchServiceImpl {
	return &SearchServiceImpl{
		searchRepo:  searchRepo,
		catalogRepo: catalogRepo,
		cfg:         cfg,
		logger:      logger,
	}
}

func (s *SearchServiceImpl) Search(ctx context.Context, userID int64, req domain.SearchRequest) (*domain.SearchResponse, error) {
	if err := validateSelections(ctx, s.catalogRepo, req); err != nil {
		if errors.Is(err, domain.ErrInvalidOption) {
			return nil, domain.ErrInvalidOption
		}
		s.logger.Error("ошибка проверки параметров поиска", zap.Error(err))
		return nil, domain.ErrSearchUnavailable
	}

	state, err := filterStateFromRequest(req, s.pageSize(req.Limit))
	if err != nil {
		s.logger.Error("ошибка разбора параметров поиска", zap.Error(err))
		return nil, domain.ErrSearchUnavailable
	}

	descriptor := search.Compile(state, req.Query, userID)

	totalCount, err := s.searchRepo.Count(ctx, descriptor)
	if err != nil {
		s.logger.Error("ошибка подсчёта результатов поиска", zap.Error(err))
		return nil, domain.ErrSearchUnavailable
	}

	results := []domain.SearchResult{}
	if totalCount > 0 {
		results, err = s.searchRepo.List(ctx, descriptor)
		if err != nil {
			s.logger.Error("ошибка получения результатов поиска", zap.Error(err))
			return nil, domain.ErrSearchUnavailable
		}
	}

	pageSize := state.PageSize()
	totalPages := 0
	if totalCount > 0 {
		totalPages = (totalCount + pageSize - 1) / pageSize
	}

	return &domain.SearchResponse{
		Results: results,
		Pagination: domain.Pagination{
			Page:       state.Page(),
			Limit:      pageSize,
			TotalCount: totalCount,
			TotalPages: totalPages,
		},
	}, nil
}

func (s *SearchServiceImpl) pageSize(requested int) int {
	if requested <= 0 {
		return s.cfg.DefaultPageSize
	}
	if requested > s.cfg.MaxPageSize {
		return s.cfg.MaxPageSize
	}
	return requested
}
