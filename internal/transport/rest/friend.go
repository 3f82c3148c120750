package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mooza/internal/domain"
)

func (h *Handler) getFriends(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	limit, offset := parseLimitOffset(c)

	friends, total, err := h.services.Friend.ListFriends(c.Request.Context(), userID, limit, offset)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	page := offset/limit + 1
	paginatedSuccessResponse(c, friends, total, page, limit)
}

func (h *Handler) getFriendRequests(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	incoming := c.DefaultQuery("direction", "incoming") != "outgoing"
	limit, offset := parseLimitOffset(c)

	requests, total, err := h.services.Friend.ListRequests(c.Request.Context(), userID, incoming, limit, offset)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	page := offset/limit + 1
	paginatedSuccessResponse(c, requests, total, page, limit)
}

func (h *Handler) sendFriendRequest(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	var input domain.CreateFriendRequestDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	id, err := h.services.Friend.SendRequest(c.Request.Context(), userID, input)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	createdResponse(c, map[string]interface{}{
		"id": id,
	})
}

func (h *Handler) acceptFriendRequest(c *gin.Context) {
	h.respondFriendRequest(c, true)
}

func (h *Handler) declineFriendRequest(c *gin.Context) {
	h.respondFriendRequest(c, false)
}

func (h *Handler) respondFriendRequest(c *gin.Context, accept bool) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	friendshipID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "некорректный ID заявки")
		return
	}

	if accept {
		err = h.services.Friend.Accept(c.Request.Context(), userID, friendshipID)
	} else {
		err = h.services.Friend.Decline(c.Request.Context(), userID, friendshipID)
	}
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	messageResponse(c, http.StatusOK, "заявка обработана")
}

func (h *Handler) removeFriend(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	friendshipID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "некорректный ID записи")
		return
	}

	if err := h.services.Friend.Remove(c.Request.Context(), userID, friendshipID); err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	noContentResponse(c)
}

func parseLimitOffset(c *gin.Context) (int, int) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 {
		limit = 20
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	return limit, offset
}
