package api

import (
	"net/http"
	"strconv"

	resdto "groupbuy-service/internal/handler/dto/response"
	"groupbuy-service/internal/handler/httperr"
	"groupbuy-service/internal/usecase/commands"
	"groupbuy-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type GroupBuyHandler struct {
	cmds commands.GroupBuyCommands
	q    queries.GroupBuyQueries
}

func NewGroupBuyHandler(cmds commands.GroupBuyCommands, q queries.GroupBuyQueries) *GroupBuyHandler {
	return &GroupBuyHandler{cmds: cmds, q: q}
}

// @Summary Get group buy
// @Tags group-buys
// @Produce json
// @Param id path string true "Group buy ID"
// @Success 200 {object} resdto.GroupBuyResponse
// @Failure 404 {object} httperr.Response
// @Router /group-buys/{id} [get]
func (h *GroupBuyHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, "Failed to load group buy")
		return
	}
	c.JSON(http.StatusOK, resdto.GroupBuyResponse{GroupBuy: view})
}

// @Summary Join group buy
// @Tags group-buys
// @Produce json
// @Security BearerAuth
// @Param id path string true "Group buy ID"
// @Success 200 {object} resdto.GroupBuyResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /group-buys/{id}/join [post]
func (h *GroupBuyHandler) Join(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.cmds.Join(c.Request.Context(), id, userID)
	if err != nil {
		httperr.Abort(c, err, "Join failed")
		return
	}
	c.JSON(http.StatusOK, resdto.GroupBuyResponse{GroupBuy: view})
}

// @Summary List chat messages
// @Description Members only, newest first
// @Tags group-buys
// @Produce json
// @Security BearerAuth
// @Param id path string true "Group buy ID"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.ChatMessagesResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /group-buys/{id}/messages [get]
func (h *GroupBuyHandler) Messages(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.Query("limit"))

	msgs, err := h.q.ListChatMessages(c.Request.Context(), id, userID, limit)
	if err != nil {
		httperr.Abort(c, err, "Failed to load messages")
		return
	}
	c.JSON(http.StatusOK, resdto.ChatMessagesResponse{Messages: msgs})
}
