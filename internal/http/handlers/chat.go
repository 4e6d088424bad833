package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/disha-labs/disha-backend/internal/http/response"
	"github.com/disha-labs/disha-backend/internal/services"
)

type ChatHandler struct {
	chatService services.ChatService
}

func NewChatHandler(chatService services.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

func (ch *ChatHandler) CreateConversation(c *gin.Context) {
	var req struct {
		Title    string `json:"title"`
		Language string `json:"language"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, 400, "invalid_request", err)
		return
	}
	conversation, err := ch.chatService.CreateConversation(c.Request.Context(), req.Title, req.Language)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondCreated(c, conversation)
}

func (ch *ChatHandler) ListConversations(c *gin.Context) {
	conversations, err := ch.chatService.ListConversations(c.Request.Context(), queryLimit(c))
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, conversations)
}

func (ch *ChatHandler) GetConversation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, 400, "invalid_id", err)
		return
	}
	conversation, err := ch.chatService.GetConversation(c.Request.Context(), id)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, conversation)
}

func (ch *ChatHandler) RenameConversation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, 400, "invalid_id", err)
		return
	}
	var req struct {
		Title string `json:"title"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, 400, "invalid_request", err)
		return
	}
	conversation, err := ch.chatService.RenameConversation(c.Request.Context(), id, req.Title)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, conversation)
}

func (ch *ChatHandler) DeleteConversation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, 400, "invalid_id", err)
		return
	}
	if err := ch.chatService.DeleteConversation(c.Request.Context(), id); err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"deleted": true})
}

func (ch *ChatHandler) ListMessages(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, 400, "invalid_id", err)
		return
	}
	var after time.Time
	if raw := c.Query("after"); raw != "" {
		after, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			response.RespondError(c, 400, "invalid_after", err)
			return
		}
	}
	messages, err := ch.chatService.ListMessages(c.Request.Context(), id, after, queryLimit(c))
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, messages)
}

func (ch *ChatHandler) AppendMessage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, 400, "invalid_id", err)
		return
	}
	var req struct {
		Content string `json:"content"`
		IsUser  *bool  `json:"is_user"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, 400, "invalid_request", err)
		return
	}
	isUser := true
	if req.IsUser != nil {
		isUser = *req.IsUser
	}
	message, err := ch.chatService.AppendMessage(c.Request.Context(), id, req.Content, isUser)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondCreated(c, message)
}
