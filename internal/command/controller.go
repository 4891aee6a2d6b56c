package command

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"aria/be/internal/auth"
)

type ControllerImpl struct {
	service Service
}

func NewControllerImpl(service Service) *ControllerImpl {
	return &ControllerImpl{service: service}
}

func (c *ControllerImpl) List(ctx *gin.Context) {
	commands, err := c.service.List(ctx.Request.Context(), auth.UserID(ctx))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list commands"})
		return
	}
	ctx.JSON(http.StatusOK, commands)
}

func (c *ControllerImpl) Create(ctx *gin.Context) {
	var req CreateCommandRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	res, err := c.service.Create(ctx.Request.Context(), auth.UserID(ctx), req)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, res)
}

func (c *ControllerImpl) Update(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid command id"})
		return
	}

	var req UpdateCommandRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	if err := c.service.Update(ctx.Request.Context(), auth.UserID(ctx), id, req); err != nil {
		if errors.Is(err, ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (c *ControllerImpl) Delete(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid command id"})
		return
	}

	if err := c.service.Delete(ctx.Request.Context(), auth.UserID(ctx), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete command"})
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (c *ControllerImpl) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/commands", c.List)
	rg.POST("/commands", c.Create)
	rg.PUT("/commands/:id", c.Update)
	rg.DELETE("/commands/:id", c.Delete)
}
