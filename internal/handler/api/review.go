package api

import (
	"net/http"

	reqdto "groupbuy-service/internal/handler/dto/request"
	resdto "groupbuy-service/internal/handler/dto/response"
	"groupbuy-service/internal/handler/httperr"
	"groupbuy-service/internal/usecase/commands"
	"groupbuy-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	cmds commands.ReviewCommands
	q    queries.ReviewQueries
}

func NewReviewHandler(cmds commands.ReviewCommands, q queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{cmds: cmds, q: q}
}

// @Summary Submit review
// @Description Review another member of a completed group buy
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReviewRequest true "Create review request"
// @Success 201 {object} resdto.CreateReviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if !requireActor(c, req.ReviewerID) {
		return
	}

	result, err := h.cmds.Submit(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Abort(c, err, "Create review failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.CreateReviewResponse{
		Message:  "Review submitted successfully",
		ReviewID: result.ReviewID.String(),
	})
}

// @Summary List reviews received by a user
// @Tags reviews
// @Produce json
// @Param id path string true "User ID"
// @Param limit query int false "Page size"
// @Param after query string false "Cursor"
// @Success 200 {object} resdto.ReviewListResponse
// @Failure 400 {object} httperr.Response
// @Router /users/{id}/reviews [get]
func (h *ReviewHandler) ListByUser(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var query reqdto.ListReviewsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	items, next, err := h.q.ListByUser(c.Request.Context(), userID, &queries.Cursor{After: query.After}, query.Limit)
	if err != nil {
		httperr.Abort(c, err, "Failed to list reviews")
		return
	}
	res, err := resdto.FromReviewList(items, next)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get rating stats
// @Tags reviews
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} queries.RatingStatsView
// @Failure 404 {object} httperr.Response
// @Router /users/{id}/rating [get]
func (h *ReviewHandler) RatingStats(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	stats, err := h.q.GetRatingStats(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err, "Failed to load rating stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}
