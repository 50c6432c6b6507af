package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"convo-backend/config"
	"convo-backend/logic"
	"convo-backend/middleware"
	"convo-backend/models"
	"convo-backend/pkg/apperrors"
)

// AuthController issues bearer tokens for the rest of the API.
type AuthController struct {
	userLogic *logic.UserLogic
	secret    string
	expiry    time.Duration
}

func NewAuthController(userLogic *logic.UserLogic, cfg *config.Config) *AuthController {
	return &AuthController{
		userLogic: userLogic,
		secret:    cfg.JWT.Secret,
		expiry:    cfg.TokenExpiry(),
	}
}

// Login handles POST /auth/login
func (c *AuthController) Login(ctx *gin.Context) {
	type Request struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, bindError(err))
		return
	}

	user, err := c.userLogic.Authenticate(req.Email, req.Password)
	if err != nil {
		respondError(ctx, err)
		return
	}

	token, err := middleware.GenerateToken(c.secret, c.expiry, user.ID, user.Role)
	if err != nil {
		respondError(ctx, apperrors.Internal("failed to sign token", err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user.Project(models.UserDefaultFields),
	})
}
