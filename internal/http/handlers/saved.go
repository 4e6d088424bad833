package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/disha-labs/disha-backend/internal/http/response"
	"github.com/disha-labs/disha-backend/internal/services"
)

type SavedItemHandler struct {
	savedItemService services.SavedItemService
}

func NewSavedItemHandler(savedItemService services.SavedItemService) *SavedItemHandler {
	return &SavedItemHandler{savedItemService: savedItemService}
}

func (sh *SavedItemHandler) List(c *gin.Context) {
	items, err := sh.savedItemService.List(c.Request.Context(), c.Query("item_type"))
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, items)
}

func (sh *SavedItemHandler) Save(c *gin.Context) {
	var req struct {
		ItemType string `json:"item_type"`
		ItemID   string `json:"item_id"`
		Notes    string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, 400, "invalid_request", err)
		return
	}
	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		response.RespondError(c, 400, "invalid_item_id", err)
		return
	}
	item, err := sh.savedItemService.Save(c.Request.Context(), req.ItemType, itemID, req.Notes)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondCreated(c, item)
}

func (sh *SavedItemHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, 400, "invalid_id", err)
		return
	}
	if err := sh.savedItemService.Delete(c.Request.Context(), id); err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"deleted": true})
}
