package avatar

import (
	"errors"
	"io"
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

func (c *ControllerImpl) Generate(ctx *gin.Context) {
	var req GenerateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	res, err := c.service.Generate(ctx.Request.Context(), auth.UserID(ctx), req)
	if err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "failed to generate avatar"})
		return
	}
	ctx.JSON(http.StatusCreated, res)
}

func (c *ControllerImpl) Upload(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "missing file field"})
		return
	}
	if file.Size > MaxUploadBytes {
		ctx.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image exceeds upload limit"})
		return
	}

	f, err := file.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "unreadable upload"})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxUploadBytes+1))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "unreadable upload"})
		return
	}

	res, err := c.service.Upload(ctx.Request.Context(), auth.UserID(ctx), file.Header.Get("Content-Type"), data)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, res)
}

func (c *ControllerImpl) Current(ctx *gin.Context) {
	a, err := c.service.Current(ctx.Request.Context(), auth.UserID(ctx))
	if err != nil {
		if errors.Is(err, ErrNoAvatar) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load avatar"})
		return
	}
	ctx.Data(http.StatusOK, a.ContentType, a.Data)
}

func (c *ControllerImpl) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/avatar/generate", c.Generate)
	rg.POST("/avatar", c.Upload)
	rg.GET("/avatar", c.Current)
}
