package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileSplitsJoinTargets(t *testing.T) {
	s := NewFilterState(20)
	s, _ = s.SetFacet(FacetField, ptr(1))
	s, _ = s.SetFacet(FacetProfession, ptr(10))
	s, _ = s.SetFacet(FacetService, ptr(100))
	s, _ = s.SetFacet(FacetGenre, ptr(1000))
	s, _ = s.SetFacet(FacetWorkFormat, ptr(2))

	q := Compile(s, "", 42)

	require.Len(t, q.Predicates, 5)
	assert.Equal(t, Predicate{Target: TargetUser, Column: "field_id", Value: 1}, q.Predicates[0])
	assert.Equal(t, Predicate{Target: TargetUser, Column: "profession_id", Value: 10}, q.Predicates[1])
	assert.Equal(t, Predicate{Target: TargetSearchProfile, Column: "service_id", Value: 100}, q.Predicates[2])
	assert.Equal(t, Predicate{Target: TargetSearchProfile, Column: "genre_id", Value: 1000}, q.Predicates[3])
	assert.Equal(t, Predicate{Target: TargetSearchProfile, Column: "work_format_id", Value: 2}, q.Predicates[4])
}

func TestCompileDeterministic(t *testing.T) {
	s := NewFilterState(20)
	// Порядок выбора фасетов пользователем не влияет на порядок предикатов.
	s, _ = s.SetFacet(FacetAvailability, ptr(5))
	s, _ = s.SetFacet(FacetField, ptr(1))
	s, _ = s.SetFacet(FacetWorkFormat, ptr(3))
	s = s.SetPage(2)

	first := Compile(s, "ivan", 42)
	second := Compile(s, "ivan", 42)

	assert.Equal(t, first, second)
	assert.Equal(t, "field_id", first.Predicates[0].Column)
	assert.Equal(t, "work_format_id", first.Predicates[1].Column)
	assert.Equal(t, "availability_id", first.Predicates[2].Column)
}

func TestCompileSelfExclusion(t *testing.T) {
	s := NewFilterState(20)

	q := Compile(s, "", 42)
	assert.Equal(t, int64(42), q.ExcludeUserID)

	s, _ = s.SetFacet(FacetGenre, ptr(1))
	q = Compile(s, "query", 7)
	assert.Equal(t, int64(7), q.ExcludeUserID)
}

func TestCompilePagination(t *testing.T) {
	s := NewFilterState(25)

	q := Compile(s, "", 1)
	assert.Equal(t, 0, q.Offset)
	assert.Equal(t, 25, q.Limit)

	q = Compile(s.SetPage(3), "", 1)
	assert.Equal(t, 50, q.Offset)
	assert.Equal(t, 25, q.Limit)
}

func TestCompileTextQueryNormalized(t *testing.T) {
	s := NewFilterState(20)

	assert.Empty(t, Compile(s, "", 1).TextQuery)
	assert.Empty(t, Compile(s, "   ", 1).TextQuery)
	assert.Equal(t, "ivan", Compile(s, "  ivan ", 1).TextQuery)
}

func TestCompileTextQueryCombinedWithFacets(t *testing.T) {
	s := NewFilterState(20)
	s, _ = s.SetFacet(FacetField, ptr(1))

	q := Compile(s, "ivan", 42)

	// Текстовый фильтр и предикат по сфере не подавляют друг друга.
	require.Len(t, q.Predicates, 1)
	assert.Equal(t, TargetUser, q.Predicates[0].Target)
	assert.Equal(t, "field_id", q.Predicates[0].Column)
	assert.Equal(t, "ivan", q.TextQuery)
}
