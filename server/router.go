// Package server assembles the gin engine: the per-request pipeline is
// request-id → sanitize → auth → authorize → controller, with the first
// two global and the auth pair bound per route group.
package server

import (
	"github.com/gin-gonic/gin"

	"convo-backend/config"
	"convo-backend/controller"
	"convo-backend/middleware"
)

// Controllers groups the handlers the router mounts.
type Controllers struct {
	Auth         *controller.AuthController
	User         *controller.UserController
	Conversation *controller.ConversationController
	Message      *controller.MessageController
}

// NewRouter builds the gin engine with all v1 routes.
func NewRouter(cfg *config.Config, roles config.RoleCapabilities, ctrl Controllers) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(middleware.Sanitize())

	v1 := r.Group("/v1")

	v1.POST("/auth/login", ctrl.Auth.Login)

	auth := middleware.Auth(cfg.JWT.Secret, roles)

	users := v1.Group("/users", auth)
	{
		users.GET("", middleware.Authorize(roles, config.CapGetUsers), ctrl.User.GetUsers)
		users.GET("/:userId",
			middleware.Authorize(roles, config.CapGetUsers, middleware.AllowSelfParam("userId")),
			ctrl.User.GetUser)
	}

	convos := v1.Group("/conversations", auth)
	{
		convos.POST("", middleware.Authorize(roles, config.CapManageConversations), ctrl.Conversation.CreateConversation)
		convos.GET("", middleware.Authorize(roles, config.CapGetConversations), ctrl.Conversation.GetConversations)
		convos.GET("/:conversationId", middleware.Authorize(roles, config.CapGetConversations), ctrl.Conversation.GetConversation)
		convos.GET("/:conversationId/messages", middleware.Authorize(roles, config.CapGetConversations), ctrl.Conversation.GetConversationMessages)
		convos.PATCH("/:conversationId", middleware.Authorize(roles, config.CapManageConversations), ctrl.Conversation.UpdateConversation)
		convos.DELETE("/:conversationId", middleware.Authorize(roles, config.CapManageConversations), ctrl.Conversation.DeleteConversation)
	}

	messages := v1.Group("/messages", auth)
	{
		messages.POST("", middleware.Authorize(roles, config.CapManageMessages), ctrl.Message.CreateMessage)
		messages.GET("", middleware.Authorize(roles, config.CapGetMessages), ctrl.Message.GetMessages)
		messages.GET("/:messageId", middleware.Authorize(roles, config.CapGetMessages), ctrl.Message.GetMessage)
		messages.PATCH("/:messageId", middleware.Authorize(roles, config.CapManageMessages), ctrl.Message.UpdateMessage)
		messages.DELETE("/:messageId", middleware.Authorize(roles, config.CapManageMessages), ctrl.Message.DeleteMessage)
	}

	return r
}
