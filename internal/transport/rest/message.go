package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mooza/internal/domain"
)

func (h *Handler) sendMessage(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	var input domain.SendMessageDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	id, err := h.services.Message.Send(c.Request.Context(), userID, input)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	createdResponse(c, map[string]interface{}{
		"id": id,
	})
}

func (h *Handler) getDialogs(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	dialogs, err := h.services.Message.Dialogs(c.Request.Context(), userID)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	successResponse(c, http.StatusOK, dialogs)
}

func (h *Handler) getUnreadCount(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	count, err := h.services.Message.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	successResponse(c, http.StatusOK, map[string]interface{}{
		"unread_count": count,
	})
}

func (h *Handler) getMessageHistory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	peerID, err := strconv.ParseInt(c.Param("peerId"), 10, 64)
	if err != nil {
		badRequestResponse(c, "некорректный ID собеседника")
		return
	}

	limit, offset := parseLimitOffset(c)

	messages, total, err := h.services.Message.History(c.Request.Context(), userID, peerID, limit, offset)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	page := offset/limit + 1
	paginatedSuccessResponse(c, messages, total, page, limit)
}

func (h *Handler) markMessagesRead(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	peerID, err := strconv.ParseInt(c.Param("peerId"), 10, 64)
	if err != nil {
		badRequestResponse(c, "некорректный ID собеседника")
		return
	}

	if err := h.services.Message.MarkRead(c.Request.Context(), userID, peerID); err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	messageResponse(c, http.StatusOK, "сообщения прочитаны")
}
