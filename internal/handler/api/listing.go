package api

import (
	"net/http"

	reqdto "groupbuy-service/internal/handler/dto/request"
	resdto "groupbuy-service/internal/handler/dto/response"
	"groupbuy-service/internal/handler/httperr"
	"groupbuy-service/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ListingHandler struct {
	cmds commands.ListingCommands
}

func NewListingHandler(cmds commands.ListingCommands) *ListingHandler {
	return &ListingHandler{cmds: cmds}
}

// @Summary Stage a listing draft
// @Description Stores the proposed listing server-side and returns a one-time token
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateListingDraftRequest true "Draft"
// @Success 201 {object} resdto.ListingDraftResponse
// @Failure 400 {object} httperr.Response
// @Router /listing-drafts [post]
func (h *ListingHandler) CreateDraft(c *gin.Context) {
	var req reqdto.CreateListingDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	token, expiresAt, err := h.cmds.MintDraft(c.Request.Context(), req.ToDomain())
	if err != nil {
		httperr.Abort(c, err, "Failed to stage listing")
		return
	}
	c.JSON(http.StatusCreated, resdto.ListingDraftResponse{Token: token, ExpiresAt: expiresAt})
}

// @Summary Create listing from a draft token
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateListingRequest true "Create listing request"
// @Success 201 {object} resdto.CreateListingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /listings [post]
func (h *ListingHandler) Create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req reqdto.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.CreateListing(c.Request.Context(), req.ToInput(userID))
	if err != nil {
		httperr.Abort(c, err, "Create listing failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.CreateListingResponse{
		Message:    "Listing created successfully",
		ListingID:  result.ListingID.String(),
		GroupBuyID: result.GroupBuyID.String(),
	})
}
