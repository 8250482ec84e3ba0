package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"evcharge-dashboard-server/internal/services"
	"evcharge-dashboard-server/internal/utils"
	"github.com/gin-gonic/gin"
)

type ComplaintHandler struct {
	complaints *services.ComplaintService
}

type ComplaintCreateRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email"`
	Issue string `json:"issue" binding:"required"`
}

type ComplaintUpdateRequest struct {
	Status *string `json:"status"`
}

func NewComplaintHandler(complaints *services.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{complaints: complaints}
}

func (h *ComplaintHandler) List(c *gin.Context) {
	items, err := h.complaints.List(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondOK(c, items)
}

func (h *ComplaintHandler) Create(c *gin.Context) {
	var req ComplaintCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, "name & issue required")
		return
	}

	created, err := h.complaints.Create(c.Request.Context(), req.Name, req.Email, req.Issue)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondCreated(c, created)
}

func (h *ComplaintHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, utils.NewAppError(http.StatusNotFound, "NOT_FOUND", "complaint not found", nil))
		return
	}

	// The body is optional; a PATCH without a status still refreshes
	// updated_at.
	var req ComplaintUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondValidationError(c, err.Error())
		return
	}

	updated, err := h.complaints.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondOK(c, updated)
}

func (h *ComplaintHandler) Delete(c *gin.Context) {
	// Delete is idempotent: an unknown or unparseable id removes nothing and
	// still reports success.
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondOK(c, gin.H{"success": true})
		return
	}

	if err := h.complaints.Delete(c.Request.Context(), id); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondOK(c, gin.H{"success": true})
}
