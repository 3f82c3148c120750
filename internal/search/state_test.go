package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v int64) *int64 {
	return &v
}

func TestSetFacetCascadeResetsAllDescendants(t *testing.T) {
	s := NewFilterState(20)

	s, err := s.SetFacet(FacetField, ptr(1))
	require.NoError(t, err)
	s, err = s.SetFacet(FacetProfession, ptr(10))
	require.NoError(t, err)
	s, err = s.SetFacet(FacetService, ptr(100))
	require.NoError(t, err)
	s, err = s.SetFacet(FacetGenre, ptr(1000))
	require.NoError(t, err)

	// Смена сферы сбрасывает профессию, услугу и жанр за одно обновление.
	s, err = s.SetFacet(FacetField, ptr(2))
	require.NoError(t, err)

	v, ok := s.Selection(FacetField)
	require.True(t, ok)
	assert.Equal(t, int64(2), v)

	for _, facet := range []FacetID{FacetProfession, FacetService, FacetGenre} {
		_, ok := s.Selection(facet)
		assert.False(t, ok, "фасет %s должен быть сброшен", facet)
	}
	assert.Equal(t, 1, s.Page())
}

func TestSetFacetClearAncestorClearsDescendants(t *testing.T) {
	s := NewFilterState(20)

	s, _ = s.SetFacet(FacetField, ptr(1))
	s, _ = s.SetFacet(FacetProfession, ptr(10))
	s, _ = s.SetFacet(FacetService, ptr(100))
	s, _ = s.SetFacet(FacetGenre, ptr(1000))

	s, err := s.SetFacet(FacetField, nil)
	require.NoError(t, err)

	for _, facet := range AllFacets() {
		_, ok := s.Selection(facet)
		assert.False(t, ok, "после сброса сферы фасет %s не должен быть выбран", facet)
	}
}

func TestSetFacetDoesNotTouchUnrelatedFacets(t *testing.T) {
	s := NewFilterState(20)

	s, _ = s.SetFacet(FacetWorkFormat, ptr(3))
	s, _ = s.SetFacet(FacetSkillLevel, ptr(4))
	s, _ = s.SetFacet(FacetField, ptr(1))
	s, _ = s.SetFacet(FacetField, ptr(2))

	v, ok := s.Selection(FacetWorkFormat)
	require.True(t, ok)
	assert.Equal(t, int64(3), v)

	v, ok = s.Selection(FacetSkillLevel)
	require.True(t, ok)
	assert.Equal(t, int64(4), v)
}

func TestSetFacetSameValueIsNoop(t *testing.T) {
	s := NewFilterState(20)

	s, _ = s.SetFacet(FacetField, ptr(1))
	s, _ = s.SetFacet(FacetProfession, ptr(10))
	s = s.SetPage(3)

	// Повторный выбор того же значения не сбрасывает ни потомков, ни страницу.
	s, err := s.SetFacet(FacetField, ptr(1))
	require.NoError(t, err)

	_, ok := s.Selection(FacetProfession)
	assert.True(t, ok)
	assert.Equal(t, 3, s.Page())
}

func TestSetFacetResetsPage(t *testing.T) {
	s := NewFilterState(20)
	s = s.SetPage(5)

	s, err := s.SetFacet(FacetAvailability, ptr(7))
	require.NoError(t, err)
	assert.Equal(t, 1, s.Page())
}

func TestSetFacetUnknownFacet(t *testing.T) {
	s := NewFilterState(20)

	_, err := s.SetFacet(FacetID("city"), ptr(1))
	assert.ErrorIs(t, err, ErrUnknownFacet)
}

func TestSetPageClamped(t *testing.T) {
	s := NewFilterState(20)

	assert.Equal(t, 1, s.SetPage(0).Page())
	assert.Equal(t, 1, s.SetPage(-5).Page())
	assert.Equal(t, 7, s.SetPage(7).Page())
}

func TestResetAllIdempotent(t *testing.T) {
	s := NewFilterState(20)
	s, _ = s.SetFacet(FacetField, ptr(1))
	s, _ = s.SetFacet(FacetWorkFormat, ptr(2))
	s = s.SetPage(4)

	once := s.ResetAll()
	twice := once.ResetAll()

	for _, facet := range AllFacets() {
		_, ok := once.Selection(facet)
		assert.False(t, ok)
		_, ok = twice.Selection(facet)
		assert.False(t, ok)
	}
	assert.Equal(t, 1, once.Page())
	assert.Equal(t, once, twice)
}

func TestMutationsDoNotAliasPreviousState(t *testing.T) {
	base := NewFilterState(20)
	base, _ = base.SetFacet(FacetField, ptr(1))

	_, err := base.SetFacet(FacetProfession, ptr(10))
	require.NoError(t, err)

	// Исходное состояние не должно измениться после производной мутации.
	_, ok := base.Selection(FacetProfession)
	assert.False(t, ok)
}

func TestDescendants(t *testing.T) {
	tests := []struct {
		facet FacetID
		want  []FacetID
	}{
		{FacetField, []FacetID{FacetProfession, FacetService, FacetGenre}},
		{FacetProfession, []FacetID{FacetService, FacetGenre}},
		{FacetService, []FacetID{FacetGenre}},
		{FacetGenre, nil},
		{FacetWorkFormat, nil},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Descendants(tt.facet), "потомки %s", tt.facet)
	}
}
