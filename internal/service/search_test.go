package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mooza/config"
	"mooza/internal/domain"
	"mooza/internal/search"
)

type fakeSearchRepo struct {
	results  []domain.SearchResult
	total    int
	listErr  error
	countErr error

	lastList  *search.QueryDescriptor
	lastCount *search.QueryDescriptor
}

func (f *fakeSearchRepo) List(ctx context.Context, q search.QueryDescriptor) ([]domain.SearchResult, error) {
	f.lastList = &q
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.results, nil
}

func (f *fakeSearchRepo) Count(ctx context.Context, q search.QueryDescriptor) (int, error) {
	f.lastCount = &q
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.total, nil
}

type fakeCatalogRepo struct {
	valid map[search.FacetID]map[int64]bool
	err   error
}

func (f *fakeCatalogRepo) Options(ctx context.Context, facet search.FacetID, scope *search.Scope) ([]domain.Option, error) {
	return nil, nil
}

func (f *fakeCatalogRepo) OptionExists(ctx context.Context, facet search.FacetID, optionID int64) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.valid[facet][optionID], nil
}

func newTestSearchService(searchRepo *fakeSearchRepo, catalogRepo *fakeCatalogRepo) *SearchServiceImpl {
	cfg := config.SearchConfig{DefaultPageSize: 20, MaxPageSize: 100}
	return NewSearchService(searchRepo, catalogRepo, cfg, zap.NewNop())
}

func allValidCatalog() *fakeCatalogRepo {
	valid := make(map[search.FacetID]map[int64]bool)
	for _, facet := range search.AllFacets() {
		valid[facet] = map[int64]bool{1: true, 2: true, 3: true}
	}
	return &fakeCatalogRepo{valid: valid}
}

func TestSearchService_InvalidOption(t *testing.T) {
	catalogRepo := allValidCatalog()
	catalogRepo.valid[search.FacetGenre] = map[int64]bool{}
	svc := newTestSearchService(&fakeSearchRepo{}, catalogRepo)

	genreID := int64(99)
	_, err := svc.Search(context.Background(), 1, domain.SearchRequest{GenreID: &genreID})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidOption)
}

func TestSearchService_StoreFailure(t *testing.T) {
	searchRepo := &fakeSearchRepo{countErr: errors.New("connection refused")}
	svc := newTestSearchService(searchRepo, allValidCatalog())

	_, err := svc.Search(context.Background(), 1, domain.SearchRequest{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSearchUnavailable)
}

func TestSearchService_EmptyResultIsNotError(t *testing.T) {
	searchRepo := &fakeSearchRepo{total: 0}
	svc := newTestSearchService(searchRepo, allValidCatalog())

	resp, err := svc.Search(context.Background(), 1, domain.SearchRequest{Query: "несуществующий"})

	require.NoError(t, err)
	assert.Empty(t, resp.Results)
	assert.Equal(t, 0, resp.Pagination.TotalCount)
	assert.Equal(t, 0, resp.Pagination.TotalPages)
	// При пустой выдаче страница в хранилище не запрашивается.
	assert.Nil(t, searchRepo.lastList)
}

func TestSearchService_Pagination(t *testing.T) {
	searchRepo := &fakeSearchRepo{
		results: []domain.SearchResult{{ID: 2}, {ID: 3}},
		total:   45,
	}
	svc := newTestSearchService(searchRepo, allValidCatalog())

	resp, err := svc.Search(context.Background(), 1, domain.SearchRequest{Page: 3, Limit: 10})

	require.NoError(t, err)
	assert.Equal(t, 3, resp.Pagination.Page)
	assert.Equal(t, 10, resp.Pagination.Limit)
	assert.Equal(t, 45, resp.Pagination.TotalCount)
	assert.Equal(t, 5, resp.Pagination.TotalPages)

	require.NotNil(t, searchRepo.lastList)
	assert.Equal(t, 20, searchRepo.lastList.Offset)
	assert.Equal(t, 10, searchRepo.lastList.Limit)
}

func TestSearchService_LimitClamped(t *testing.T) {
	searchRepo := &fakeSearchRepo{total: 1, results: []domain.SearchResult{{ID: 2}}}
	svc := newTestSearchService(searchRepo, allValidCatalog())

	resp, err := svc.Search(context.Background(), 1, domain.SearchRequest{Limit: 100500})

	require.NoError(t, err)
	assert.Equal(t, 100, resp.Pagination.Limit)
}

func TestSearchService_DefaultLimit(t *testing.T) {
	searchRepo := &fakeSearchRepo{total: 1, results: []domain.SearchResult{{ID: 2}}}
	svc := newTestSearchService(searchRepo, allValidCatalog())

	resp, err := svc.Search(context.Background(), 1, domain.SearchRequest{})

	require.NoError(t, err)
	assert.Equal(t, 20, resp.Pagination.Limit)
}

func TestSearchService_ExcludesRequestingUser(t *testing.T) {
	searchRepo := &fakeSearchRepo{total: 1, results: []domain.SearchResult{{ID: 2}}}
	svc := newTestSearchService(searchRepo, allValidCatalog())

	_, err := svc.Search(context.Background(), 42, domain.SearchRequest{})

	require.NoError(t, err)
	require.NotNil(t, searchRepo.lastCount)
	assert.Equal(t, int64(42), searchRepo.lastCount.ExcludeUserID)
}

func TestSearchService_CountAndListShareDescriptor(t *testing.T) {
	searchRepo := &fakeSearchRepo{total: 2, results: []domain.SearchResult{{ID: 2}, {ID: 3}}}
	svc := newTestSearchService(searchRepo, allValidCatalog())

	fieldID := int64(1)
	serviceID := int64(2)
	_, err := svc.Search(context.Background(), 1, domain.SearchRequest{
		FieldID:   &fieldID,
		ServiceID: &serviceID,
		Query:     "гитарист",
	})

	require.NoError(t, err)
	require.NotNil(t, searchRepo.lastCount)
	require.NotNil(t, searchRepo.lastList)
	assert.Equal(t, searchRepo.lastCount.Predicates, searchRepo.lastList.Predicates)
	assert.Equal(t, searchRepo.lastCount.TextQuery, searchRepo.lastList.TextQuery)
}
