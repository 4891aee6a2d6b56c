package chat

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"aria/be/internal/auth"
	"aria/be/internal/llm"
)

type ChatController struct {
	chatService *ChatService
}

func NewChatController(chatService *ChatService) *ChatController {
	return &ChatController{chatService: chatService}
}

func (cc *ChatController) ChatStream(ctx *gin.Context) {
	var request ChatRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	err := cc.chatService.StreamChatResponse(ctx.Request.Context(), auth.UserID(ctx), request, ctx.Writer)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			// Client disconnected, no need to send error response
			log.Println("Client disconnected during streaming")
			return
		}

		var transportErr *llm.TransportError
		if errors.As(err, &transportErr) {
			// Nothing streamed yet; the client rolls back its placeholder
			// message and shows the failure.
			log.Printf("Upstream request failed: %v", transportErr)
			ctx.JSON(http.StatusBadGateway, gin.H{"error": "completion service unavailable"})
			return
		}

		// Mid-stream faults land here after partial content went out; the
		// connection just ends and the client keeps what it has.
		log.Printf("Service error: %v", err)
		if !ctx.Writer.Written() {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to stream response"})
		}
		return
	}
}

func (cc *ChatController) ListConversations(ctx *gin.Context) {
	summaries, err := cc.chatService.ListConversations(ctx.Request.Context(), auth.UserID(ctx))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list conversations"})
		return
	}
	ctx.JSON(http.StatusOK, summaries)
}

func (cc *ChatController) GetConversation(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid conversation id"})
		return
	}

	conversation, err := cc.chatService.GetConversation(ctx.Request.Context(), auth.UserID(ctx), id)
	if err != nil {
		if errors.Is(err, ErrConversationNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load conversation"})
		return
	}
	ctx.JSON(http.StatusOK, conversation)
}

func (cc *ChatController) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/chat/completions", cc.ChatStream)
	rg.GET("/conversations", cc.ListConversations)
	rg.GET("/conversations/:id", cc.GetConversation)
}
