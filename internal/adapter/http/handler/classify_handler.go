package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Pravhesh/GrievAI/internal/usecase"
)

// ClassifyHandler handles grievance classification requests
type ClassifyHandler struct {
	classifyUC usecase.ClassifyUsecase
}

// NewClassifyHandler creates a new classify handler
func NewClassifyHandler(classifyUC usecase.ClassifyUsecase) *ClassifyHandler {
	return &ClassifyHandler{classifyUC: classifyUC}
}

// ClassifyTextRequest is the body of POST /classify
type ClassifyTextRequest struct {
	Text string `json:"text"`
}

// ClassifyImageRequest is the body of POST /classify_image
type ClassifyImageRequest struct {
	ImageURL string `json:"image_url"`
}

// ClassifyText handles POST /classify
func (h *ClassifyHandler) ClassifyText(c *gin.Context) {
	var req ClassifyTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondDetail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.classifyUC.ClassifyText(c.Request.Context(), req.Text)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ClassifyImage handles POST /classify_image
func (h *ClassifyHandler) ClassifyImage(c *gin.Context) {
	var req ClassifyImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondDetail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.classifyUC.ClassifyImage(c.Request.Context(), req.ImageURL)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
