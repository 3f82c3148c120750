package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mooza/internal/domain"
)

// fakeCatalog хранит справочник в памяти: значения фасетов и привязку
// каждого значения к родительскому.
type fakeCatalog struct {
	options map[FacetID][]domain.Option
	parents map[FacetID]map[int64]int64 // фасет -> значение -> значение родителя
	fields  map[int64]int64             // профессия -> сфера, для области "услуги по сфере"
}

func (c *fakeCatalog) Options(ctx context.Context, facet FacetID, scope *Scope) ([]domain.Option, error) {
	all := c.options[facet]
	if scope == nil {
		return all, nil
	}

	var out []domain.Option
	for _, opt := range all {
		parent, ok := c.parents[facet][opt.ID]
		if !ok {
			continue
		}
		switch {
		case scope.Facet == FacetField && facet == FacetService:
			// услуги по сфере: через сферу профессии
			if c.fields[parent] == scope.OptionID {
				out = append(out, opt)
			}
		default:
			if parent == scope.OptionID {
				out = append(out, opt)
			}
		}
	}
	return out, nil
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		options: map[FacetID][]domain.Option{
			FacetField: {
				{ID: 1, Name: "Продакшн"},
				{ID: 2, Name: "Исполнительство"},
			},
			FacetProfession: {
				{ID: 10, Name: "Продюсер"},
				{ID: 11, Name: "Звукорежиссёр"},
				{ID: 20, Name: "Вокалист"},
			},
			FacetService: {
				{ID: 100, Name: "Сведение"},
				{ID: 101, Name: "Мастеринг"},
				{ID: 200, Name: "Запись вокала"},
			},
			FacetGenre: {
				{ID: 1000, Name: "Рок"},
				{ID: 1001, Name: "Хип-хоп"},
				{ID: 2000, Name: "Джаз"},
			},
			FacetWorkFormat: {
				{ID: 1, Name: "Онлайн"},
				{ID: 2, Name: "Офлайн"},
			},
		},
		parents: map[FacetID]map[int64]int64{
			FacetProfession: {10: 1, 11: 1, 20: 2},
			FacetService:    {100: 10, 101: 10, 200: 20},
			FacetGenre:      {1000: 100, 1001: 100, 2000: 200},
		},
		fields: map[int64]int64{10: 1, 11: 1, 20: 2},
	}
}

func TestOptionsForRootFacetAlwaysEnabled(t *testing.T) {
	r := NewResolver(newFakeCatalog())
	s := NewFilterState(20)

	enabled, options, err := r.OptionsFor(context.Background(), FacetField, s)
	require.NoError(t, err)
	assert.True(t, enabled)
	assert.Len(t, options, 2)

	// Независимые фасеты не ограничиваются выбором других фасетов.
	s, _ = s.SetFacet(FacetField, ptr(1))
	enabled, options, err = r.OptionsFor(context.Background(), FacetWorkFormat, s)
	require.NoError(t, err)
	assert.True(t, enabled)
	assert.Len(t, options, 2)
}

func TestOptionsForDependentFacetDisabledWithoutParent(t *testing.T) {
	r := NewResolver(newFakeCatalog())
	s := NewFilterState(20)

	enabled, options, err := r.OptionsFor(context.Background(), FacetProfession, s)
	require.NoError(t, err)
	assert.False(t, enabled)
	assert.Empty(t, options)

	enabled, _, err = r.OptionsFor(context.Background(), FacetGenre, s)
	require.NoError(t, err)
	assert.False(t, enabled)
}

func TestOptionsForNarrowing(t *testing.T) {
	r := NewResolver(newFakeCatalog())
	ctx := context.Background()

	s := NewFilterState(20)
	s, _ = s.SetFacet(FacetField, ptr(1))
	s, _ = s.SetFacet(FacetProfession, ptr(10))
	s, _ = s.SetFacet(FacetService, ptr(100))

	// Жанры ограничены выбранной услугой, чужие услуги не подмешиваются.
	enabled, options, err := r.OptionsFor(ctx, FacetGenre, s)
	require.NoError(t, err)
	require.True(t, enabled)
	require.Len(t, options, 2)
	assert.Equal(t, "Рок", options[0].Name)
	assert.Equal(t, "Хип-хоп", options[1].Name)
}

func TestOptionsForServiceDualScoping(t *testing.T) {
	r := NewResolver(newFakeCatalog())
	ctx := context.Background()

	// Выбрана только сфера: услуги всех профессий этой сферы.
	s := NewFilterState(20)
	s, _ = s.SetFacet(FacetField, ptr(1))

	enabled, options, err := r.OptionsFor(ctx, FacetService, s)
	require.NoError(t, err)
	require.True(t, enabled)
	require.Len(t, options, 2)
	assert.Equal(t, int64(100), options[0].ID)
	assert.Equal(t, int64(101), options[1].ID)

	// Выбор профессии сужает тот же список до её услуг.
	s, _ = s.SetFacet(FacetProfession, ptr(20))
	enabled, options, err = r.OptionsFor(ctx, FacetService, s)
	require.NoError(t, err)
	require.True(t, enabled)
	require.Len(t, options, 1)
	assert.Equal(t, int64(200), options[0].ID)
}

func TestOptionsForStaleScopeReturnsEmptyList(t *testing.T) {
	r := NewResolver(newFakeCatalog())
	s := NewFilterState(20)
	s, _ = s.SetFacet(FacetField, ptr(999)) // сферы с таким id нет в справочнике

	enabled, options, err := r.OptionsFor(context.Background(), FacetProfession, s)
	require.NoError(t, err)
	assert.True(t, enabled)
	assert.Empty(t, options)
}

func TestOptionsForUnknownFacet(t *testing.T) {
	r := NewResolver(newFakeCatalog())

	_, _, err := r.OptionsFor(context.Background(), FacetID("city"), NewFilterState(20))
	assert.ErrorIs(t, err, ErrUnknownFacet)
}
