package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mooza/internal/domain"
)

func (h *Handler) search(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	var req domain.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.logger.Warn("неверные параметры поиска", zap.Error(err))
		badRequestResponse(c, "неверные параметры запроса")
		return
	}

	resp, err := h.services.Search.Search(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidOption):
			badRequestResponse(c, err.Error())
		case errors.Is(err, domain.ErrSearchUnavailable):
			serviceUnavailableResponse(c, err.Error())
		default:
			errorResponse(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	successResponse(c, http.StatusOK, resp)
}
