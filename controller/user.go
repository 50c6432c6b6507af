package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"convo-backend/logic"
	"convo-backend/models"
)

// UserController handles HTTP requests
type UserController struct {
	userLogic *logic.UserLogic
}

func NewUserController(userLogic *logic.UserLogic) *UserController {
	return &UserController{userLogic: userLogic}
}

// GetUsers handles GET /users
func (c *UserController) GetUsers(ctx *gin.Context) {
	var q listQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		respondError(ctx, bindError(err))
		return
	}

	users, err := c.userLogic.QueryUsers(q.options())
	if err != nil {
		respondError(ctx, err)
		return
	}

	out := make([]map[string]any, len(users))
	for i := range users {
		out[i] = users[i].Project(models.UserDefaultFields)
	}
	ctx.JSON(http.StatusOK, out)
}

// GetUser handles GET /users/:userId
func (c *UserController) GetUser(ctx *gin.Context) {
	id, err := idParam(ctx, "userId")
	if err != nil {
		respondError(ctx, err)
		return
	}

	user, err := c.userLogic.GetUserByID(id, models.UserDefaultFields)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user.Project(models.UserDefaultFields))
}
