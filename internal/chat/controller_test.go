package chat

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"aria/be/internal/llm"
)

func streamRequest(t *testing.T, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(rec)
	ctx.Request = httptest.NewRequest(http.MethodPost, "/chat/completions", strings.NewReader(body))
	return ctx, rec
}

func TestChatStreamBadRequestIsJSON(t *testing.T) {
	controller := NewChatController(newService(&fakeProvider{}, &fakeMemories{}, &fakeCommands{}, &fakeRepo{}))

	ctx, rec := streamRequest(t, "{not json")
	controller.ChatStream(ctx)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
}

func TestChatStreamUpstreamFailureIsJSON(t *testing.T) {
	provider := &fakeProvider{err: &llm.TransportError{StatusCode: 503, Body: "down"}}
	controller := NewChatController(newService(provider, &fakeMemories{}, &fakeCommands{}, &fakeRepo{}))

	ctx, rec := streamRequest(t, `{"messages":[{"role":"user","content":"hi"}]}`)
	controller.ChatStream(ctx)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
}
