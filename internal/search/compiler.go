package search

import (
	"strings"
)

// JoinTarget — сущность, к колонке которой относится предикат. Сфера и
// профессия — атрибуты самого пользователя, остальные фасеты живут в его
// поисковой анкете; для вызывающего это один плоский набор фильтров.
type JoinTarget string

const (
	TargetUser          JoinTarget = "users"
	TargetSearchProfile JoinTarget = "search_profiles"
)

type Predicate struct {
	Target JoinTarget
	Column string
	Value  int64
}

// QueryDescriptor — скомпилированная, независимая от хранилища форма
// состояния фильтра. Повторная компиляция одного и того же состояния
// обязана давать структурно идентичный дескриптор.
type QueryDescriptor struct {
	Predicates    []Predicate
	TextQuery     string // пустая строка — текстового фильтра нет
	ExcludeUserID int64
	Offset        int
	Limit         int
}

var facetColumns = map[FacetID]Predicate{
	FacetField:          {Target: TargetUser, Column: "field_id"},
	FacetProfession:     {Target: TargetUser, Column: "profession_id"},
	FacetService:        {Target: TargetSearchProfile, Column: "service_id"},
	FacetGenre:          {Target: TargetSearchProfile, Column: "genre_id"},
	FacetWorkFormat:     {Target: TargetSearchProfile, Column: "work_format_id"},
	FacetEmploymentType: {Target: TargetSearchProfile, Column: "employment_type_id"},
	FacetSkillLevel:     {Target: TargetSearchProfile, Column: "skill_level_id"},
	FacetAvailability:   {Target: TargetSearchProfile, Column: "availability_id"},
}

// Compile переводит состояние фильтра в дескриптор запроса. Каждый выбранный
// фасет даёт ровно один предикат равенства, порядок предикатов фиксирован
// порядком фасетов. Запрашивающий пользователь всегда исключается из выдачи.
func Compile(s FilterState, textQuery string, excludeUserID int64) QueryDescriptor {
	predicates := make([]Predicate, 0, len(s.selections))
	for _, facet := range facetOrder {
		value, ok := s.Selection(facet)
		if !ok {
			continue
		}
		p := facetColumns[facet]
		p.Value = value
		predicates = append(predicates, p)
	}

	return QueryDescriptor{
		Predicates:    predicates,
		TextQuery:     strings.TrimSpace(textQuery),
		ExcludeUserID: excludeUserID,
		Offset:        (s.page - 1) * s.pageSize,
		Limit:         s.pageSize,
	}
}
