package speech

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ControllerImpl struct {
	service Service
}

func NewControllerImpl(service Service) *ControllerImpl {
	return &ControllerImpl{service: service}
}

func (c *ControllerImpl) Synthesize(ctx *gin.Context) {
	var req SynthesizeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	audio, err := c.service.Synthesize(ctx.Request.Context(), req)
	if err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "failed to synthesize speech"})
		return
	}
	ctx.Data(http.StatusOK, "audio/mpeg", audio)
}

func (c *ControllerImpl) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/speech", c.Synthesize)
}
