package handlers

import (
	"encoding/json"

	"github.com/gin-gonic/gin"

	"github.com/disha-labs/disha-backend/internal/http/response"
	"github.com/disha-labs/disha-backend/internal/services"
)

type ProgressHandler struct {
	progressService services.ProgressService
}

func NewProgressHandler(progressService services.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

func (ph *ProgressHandler) List(c *gin.Context) {
	entries, err := ph.progressService.List(c.Request.Context())
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, entries)
}

func (ph *ProgressHandler) Summary(c *gin.Context) {
	summary, err := ph.progressService.Summary(c.Request.Context())
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, summary)
}

func (ph *ProgressHandler) Upsert(c *gin.Context) {
	questType := c.Param("quest_type")
	var req struct {
		Status   *string         `json:"status"`
		Points   *int            `json:"points"`
		Metadata json.RawMessage `json:"metadata"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, 400, "invalid_request", err)
		return
	}
	entry, err := ph.progressService.Upsert(c.Request.Context(), questType, services.ProgressUpdate{
		Status:   req.Status,
		Points:   req.Points,
		Metadata: req.Metadata,
	})
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, entry)
}
