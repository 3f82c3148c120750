package search

import (
	"errors"
)

// FacetID — идентификатор измерения фильтрации.
type FacetID string

const (
	FacetField          FacetID = "field"
	FacetProfession     FacetID = "profession"
	FacetService        FacetID = "service"
	FacetGenre          FacetID = "genre"
	FacetWorkFormat     FacetID = "work_format"
	FacetEmploymentType FacetID = "employment_type"
	FacetSkillLevel     FacetID = "skill_level"
	FacetAvailability   FacetID = "availability"
)

var ErrUnknownFacet = errors.New("неизвестный фасет")

// facetOrder задаёт единый порядок обхода фасетов: предки раньше потомков.
// От него зависит детерминированность компиляции запроса.
var facetOrder = []FacetID{
	FacetField,
	FacetProfession,
	FacetService,
	FacetGenre,
	FacetWorkFormat,
	FacetEmploymentType,
	FacetSkillLevel,
	FacetAvailability,
}

type facetNode struct {
	// parent — основной ключ области видимости; пустой у корневых фасетов.
	parent FacetID
	// altScopes — запасные ключи области видимости в порядке убывания
	// приоритета. Услуга может ограничиваться профессией, а если та не
	// выбрана — сферой напрямую.
	altScopes []FacetID
}

var hierarchy = map[FacetID]facetNode{
	FacetField:          {},
	FacetProfession:     {parent: FacetField},
	FacetService:        {parent: FacetProfession, altScopes: []FacetID{FacetField}},
	FacetGenre:          {parent: FacetService},
	FacetWorkFormat:     {},
	FacetEmploymentType: {},
	FacetSkillLevel:     {},
	FacetAvailability:   {},
}

// Known сообщает, объявлен ли фасет в таксономии.
func Known(id FacetID) bool {
	_, ok := hierarchy[id]
	return ok
}

// AllFacets возвращает фасеты в каноническом порядке.
func AllFacets() []FacetID {
	out := make([]FacetID, len(facetOrder))
	copy(out, facetOrder)
	return out
}

// Parent возвращает родительский фасет, если он есть.
func Parent(id FacetID) (FacetID, bool) {
	node, ok := hierarchy[id]
	if !ok || node.parent == "" {
		return "", false
	}
	return node.parent, true
}

// ScopeKeys возвращает ключи области видимости фасета в порядке приоритета:
// сначала родитель, затем запасные ключи. Пусто для корневых фасетов.
func ScopeKeys(id FacetID) []FacetID {
	node, ok := hierarchy[id]
	if !ok || node.parent == "" {
		return nil
	}
	keys := make([]FacetID, 0, 1+len(node.altScopes))
	keys = append(keys, node.parent)
	keys = append(keys, node.altScopes...)
	return keys
}

// Descendants возвращает всех транзитивных потомков фасета в каноническом
// порядке. Потомство считается только по родительским рёбрам: запасные
// ключи видимости дополнительных потомков не порождают.
func Descendants(id FacetID) []FacetID {
	var out []FacetID
	for _, candidate := range facetOrder {
		if isAncestor(id, candidate) {
			out = append(out, candidate)
		}
	}
	return out
}

func isAncestor(ancestor, id FacetID) bool {
	for {
		parent, ok := Parent(id)
		if !ok {
			return false
		}
		if parent == ancestor {
			return true
		}
		id = parent
	}
}
