package api

import (
	"net/http"

	reqdto "groupbuy-service/internal/handler/dto/request"
	resdto "groupbuy-service/internal/handler/dto/response"
	"groupbuy-service/internal/handler/httperr"
	"groupbuy-service/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PurchaseRequestHandler struct {
	cmds commands.PurchaseRequestCommands
}

func NewPurchaseRequestHandler(cmds commands.PurchaseRequestCommands) *PurchaseRequestHandler {
	return &PurchaseRequestHandler{cmds: cmds}
}

// @Summary Create purchase request
// @Description Organizer opens payment collection for a full group buy
// @Tags purchase-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePurchaseRequestRequest true "Create purchase request"
// @Success 201 {object} resdto.PurchaseRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /purchase-requests [post]
func (h *PurchaseRequestHandler) Create(c *gin.Context) {
	var req reqdto.CreatePurchaseRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if !requireActor(c, req.OrganizerID) {
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Abort(c, err, "Create purchase request failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.PurchaseRequestResponse{Success: true, PurchaseRequest: view})
}

// @Summary Apply purchase request action
// @Description submit_payment, upload_organizer_proof, approve_purchase or reject_purchase
// @Tags purchase-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PurchaseRequestActionRequest true "Action request"
// @Success 200 {object} resdto.PurchaseRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /purchase-requests [patch]
func (h *PurchaseRequestHandler) Apply(c *gin.Context) {
	var req reqdto.PurchaseRequestActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if !requireActor(c, req.UserID) {
		return
	}

	view, err := h.cmds.Apply(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Abort(c, err, "Purchase request action failed")
		return
	}
	c.JSON(http.StatusOK, resdto.PurchaseRequestResponse{Success: true, PurchaseRequest: view})
}
