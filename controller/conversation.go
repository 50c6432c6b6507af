package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"convo-backend/logic"
	"convo-backend/models"
	"convo-backend/pkg/apperrors"
)

// ConversationController handles HTTP requests
type ConversationController struct {
	convoLogic   *logic.ConversationLogic
	messageLogic *logic.MessageLogic
}

func NewConversationController(
	convoLogic *logic.ConversationLogic,
	messageLogic *logic.MessageLogic,
) *ConversationController {
	return &ConversationController{
		convoLogic:   convoLogic,
		messageLogic: messageLogic,
	}
}

// CreateConversation handles POST /conversations
func (c *ConversationController) CreateConversation(ctx *gin.Context) {
	type Request struct {
		UserID *int64 `json:"userId" binding:"required"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, bindError(err))
		return
	}

	convo, err := c.convoLogic.CreateConversation(*req.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, convo.Project(models.ConversationDefaultFields))
}

// GetConversations handles GET /conversations
func (c *ConversationController) GetConversations(ctx *gin.Context) {
	type Query struct {
		UserID *int64 `form:"userId"`
		listQuery
	}
	var q Query
	if err := ctx.ShouldBindQuery(&q); err != nil {
		respondError(ctx, bindError(err))
		return
	}

	convos, err := c.convoLogic.QueryConversations(q.UserID, q.options())
	if err != nil {
		respondError(ctx, err)
		return
	}

	out := make([]map[string]any, len(convos))
	for i := range convos {
		out[i] = convos[i].Project(models.ConversationDefaultFields)
	}
	ctx.JSON(http.StatusOK, out)
}

// GetConversation handles GET /conversations/:conversationId
func (c *ConversationController) GetConversation(ctx *gin.Context) {
	id, err := idParam(ctx, "conversationId")
	if err != nil {
		respondError(ctx, err)
		return
	}

	convo, err := c.convoLogic.GetConversationByID(id, models.ConversationDefaultFields)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, convo.Project(models.ConversationDefaultFields))
}

// GetConversationMessages handles GET /conversations/:conversationId/messages
func (c *ConversationController) GetConversationMessages(ctx *gin.Context) {
	id, err := idParam(ctx, "conversationId")
	if err != nil {
		respondError(ctx, err)
		return
	}

	messages, err := c.messageLogic.GetConversationMessages(id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	out := make([]map[string]any, len(messages))
	for i := range messages {
		out[i] = messages[i].Project(models.MessageDefaultFields)
	}
	ctx.JSON(http.StatusOK, out)
}

// UpdateConversation handles PATCH /conversations/:conversationId
func (c *ConversationController) UpdateConversation(ctx *gin.Context) {
	id, err := idParam(ctx, "conversationId")
	if err != nil {
		respondError(ctx, err)
		return
	}

	type Request struct {
		UserID *int64 `json:"userId"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, bindError(err))
		return
	}
	if req.UserID == nil {
		respondError(ctx, apperrors.Validation("update body must contain at least one field"))
		return
	}

	convo, err := c.convoLogic.UpdateConversationByID(id, req.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, convo.Project(models.ConversationDefaultFields))
}

// DeleteConversation handles DELETE /conversations/:conversationId
func (c *ConversationController) DeleteConversation(ctx *gin.Context) {
	id, err := idParam(ctx, "conversationId")
	if err != nil {
		respondError(ctx, err)
		return
	}

	if err := c.convoLogic.DeleteConversationByID(id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
