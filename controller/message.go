package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"convo-backend/logic"
	"convo-backend/models"
	"convo-backend/pkg/apperrors"
)

// MessageController handles HTTP requests
type MessageController struct {
	messageLogic *logic.MessageLogic
}

func NewMessageController(messageLogic *logic.MessageLogic) *MessageController {
	return &MessageController{messageLogic: messageLogic}
}

// CreateMessage handles POST /messages
func (c *MessageController) CreateMessage(ctx *gin.Context) {
	type Request struct {
		ConversationID *int64 `json:"conversationId" binding:"required"`
		UserID         *int64 `json:"userId" binding:"required"`
		MessageText    string `json:"messageText" binding:"required"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, bindError(err))
		return
	}

	msg, err := c.messageLogic.CreateMessage(*req.ConversationID, *req.UserID, req.MessageText)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, msg.Project(models.MessageDefaultFields))
}

// GetMessages handles GET /messages
func (c *MessageController) GetMessages(ctx *gin.Context) {
	type Query struct {
		ConversationID *int64 `form:"conversationId"`
		UserID         *int64 `form:"userId"`
		listQuery
	}
	var q Query
	if err := ctx.ShouldBindQuery(&q); err != nil {
		respondError(ctx, bindError(err))
		return
	}

	messages, err := c.messageLogic.QueryMessages(q.ConversationID, q.UserID, q.options())
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

// GetMessage handles GET /messages/:messageId
func (c *MessageController) GetMessage(ctx *gin.Context) {
	id, err := idParam(ctx, "messageId")
	if err != nil {
		respondError(ctx, err)
		return
	}

	msg, err := c.messageLogic.GetMessageByID(id, models.MessageDefaultFields)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, msg.Project(models.MessageDefaultFields))
}

// UpdateMessage handles PATCH /messages/:messageId
func (c *MessageController) UpdateMessage(ctx *gin.Context) {
	id, err := idParam(ctx, "messageId")
	if err != nil {
		respondError(ctx, err)
		return
	}

	type Request struct {
		MessageText *string `json:"messageText"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, bindError(err))
		return
	}
	if req.MessageText == nil {
		respondError(ctx, apperrors.Validation("update body must contain at least one field"))
		return
	}

	msg, err := c.messageLogic.UpdateMessageByID(id, req.MessageText)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, msg.Project(models.MessageDefaultFields))
}

// DeleteMessage handles DELETE /messages/:messageId
func (c *MessageController) DeleteMessage(ctx *gin.Context) {
	id, err := idParam(ctx, "messageId")
	if err != nil {
		respondError(ctx, err)
		return
	}

	if err := c.messageLogic.DeleteMessageByID(id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
