package api

import (
	"errors"
	"mime/multipart"
	"net/http"

	resdto "groupbuy-service/internal/handler/dto/response"
	"groupbuy-service/internal/handler/httperr"
	"groupbuy-service/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errMissingFile = errors.New("file is required")

type UploadProofHandler struct {
	cmds    commands.ProofCommands
	maxSize int64
}

func NewUploadProofHandler(cmds commands.ProofCommands, maxSize int64) *UploadProofHandler {
	return &UploadProofHandler{cmds: cmds, maxSize: maxSize}
}

// @Summary Upload proof of purchase
// @Description Organizer uploads a receipt image or PDF, the returned URL goes into upload_organizer_proof
// @Tags purchase-requests
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Receipt"
// @Param groupBuyId formData string true "Group buy ID"
// @Param organizerId formData string true "Organizer ID"
// @Success 200 {object} resdto.UploadProofResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /upload-proof [post]
func (h *UploadProofHandler) Upload(c *gin.Context) {
	// leave room for the other form fields
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxSize+1<<20)
	if err := c.Request.ParseMultipartForm(h.maxSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) || errors.Is(err, multipart.ErrMessageTooLarge) {
			httperr.Abort(c, commands.ErrFileTooLarge, "Upload failed")
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid multipart form", nil)
		return
	}

	groupBuyID, err := uuid.Parse(c.PostForm("groupBuyId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid groupBuyId", nil)
		return
	}
	organizerID, err := uuid.Parse(c.PostForm("organizerId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid organizerId", nil)
		return
	}
	if !requireActor(c, organizerID) {
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.Join(errMissingFile, err), "File is required", nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unreadable file", nil)
		return
	}
	defer func() { _ = f.Close() }()

	result, err := h.cmds.Upload(c.Request.Context(), commands.UploadProofInput{
		GroupBuyID:  groupBuyID,
		OrganizerID: organizerID,
		Body:        f,
	})
	if err != nil {
		httperr.Abort(c, err, "Upload failed")
		return
	}
	c.JSON(http.StatusOK, resdto.UploadProofResponse{Success: true, URL: result.URL})
}
