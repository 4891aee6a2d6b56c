package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aria/be/internal/auth"
)

type ControllerImpl struct {
	service Service
}

func NewControllerImpl(service Service) *ControllerImpl {
	return &ControllerImpl{service: service}
}

func (c *ControllerImpl) Register(ctx *gin.Context) {
	var req CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	if err := c.service.CreateUser(ctx.Request.Context(), &req); err != nil {
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"username": req.Username})
}

func (c *ControllerImpl) Me(ctx *gin.Context) {
	res, err := c.service.GetUser(ctx.Request.Context(), GetUserRequest{ID: auth.UserID(ctx)})
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, res)
}

func (c *ControllerImpl) RegisterRoutes(router *gin.Engine, authed *gin.RouterGroup) {
	router.POST("/register", c.Register)
	authed.GET("/users/me", c.Me)
}
