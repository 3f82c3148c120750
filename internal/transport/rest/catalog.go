package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mooza/internal/domain"
	"mooza/internal/search"
)

// getFacets отдаёт перечень фасетов в порядке их иерархии, чтобы клиент
// мог построить интерфейс фильтров, не зашивая список у себя.
func (h *Handler) getFacets(c *gin.Context) {
	facets := search.AllFacets()

	type facetInfo struct {
		ID        search.FacetID   `json:"id"`
		DependsOn []search.FacetID `json:"depends_on,omitempty"`
	}

	result := make([]facetInfo, 0, len(facets))
	for _, facet := range facets {
		result = append(result, facetInfo{
			ID:        facet,
			DependsOn: search.ScopeKeys(facet),
		})
	}

	successResponse(c, http.StatusOK, result)
}

// getFacetOptions отдаёт значения фасета. Для зависимого фасета выбор
// вышестоящих фасетов передаётся теми же query-параметрами, что и в поиске;
// без него фасет возвращается недоступным с пустым списком.
func (h *Handler) getFacetOptions(c *gin.Context) {
	facet := search.FacetID(c.Param("facet"))
	if !search.Known(facet) {
		notFoundResponse(c, "неизвестный фасет")
		return
	}

	var scope domain.SearchRequest
	if err := c.ShouldBindQuery(&scope); err != nil {
		badRequestResponse(c, "неверные параметры запроса")
		return
	}

	options, err := h.services.Catalog.Options(c.Request.Context(), facet, scope)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	successResponse(c, http.StatusOK, options)
}
