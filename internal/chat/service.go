package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"aria/be/internal/llm"
	"aria/be/internal/sse"
)

const personaPrompt = `You are Aria, a personal assistant. Be concise and helpful.
Use what you know about the user when it is relevant, and say so when you do not know something.`

const maxTitleLen = 80

// ChatService runs one assistant turn: system prompt from memories, custom
// command expansion, streamed completion relayed to the client as SSE, and
// transcript persistence once the turn completes.
type ChatService struct {
	aiProvider llm.AIProvider
	memories   MemorySource
	commands   CommandExpander
	repo       Repository
	model      string
}

func NewChatService(aiProvider llm.AIProvider, memories MemorySource, commands CommandExpander, repo Repository, model string) *ChatService {
	return &ChatService{
		aiProvider: aiProvider,
		memories:   memories,
		commands:   commands,
		repo:       repo,
		model:      model,
	}
}

func (cs *ChatService) StreamChatResponse(ctx context.Context, userID int, req ChatRequest, w io.Writer) error {
	if len(req.Messages) == 0 {
		return errors.New("no messages in request")
	}

	conversationID := uuid.New()
	if req.ConversationID != "" {
		parsed, err := uuid.Parse(req.ConversationID)
		if err != nil {
			return fmt.Errorf("invalid conversation id: %w", err)
		}
		conversationID = parsed
	}

	userMessage := req.Messages[len(req.Messages)-1].Content
	llmMessages, err := cs.buildMessages(ctx, userID, req.Messages)
	if err != nil {
		return err
	}

	model := req.Model
	if model == "" {
		model = cs.model
	}

	chunks, err := cs.aiProvider.StreamComplete(ctx, llm.CompletionRequest{
		Messages: llmMessages,
		Model:    model,
	})
	if err != nil {
		return err
	}

	// The response switches to an event stream only now that the upstream
	// accepted the request; earlier failures go back as plain JSON.
	if rw, ok := w.(http.ResponseWriter); ok {
		header := rw.Header()
		header.Set("Content-Type", "text/event-stream")
		header.Set("Cache-Control", "no-cache")
		header.Set("Connection", "keep-alive")
	}

	var assembled strings.Builder
	for chunk := range chunks {
		if chunk.Err != nil {
			// Mid-stream fault: everything already written stays on the
			// client; the turn is not persisted.
			return chunk.Err
		}
		if chunk.Done {
			fmt.Fprintf(w, "data: %s\n\n", sse.DoneSentinel)
			if flusher, ok := w.(http.Flusher); ok {
				flusher.Flush()
			}
			cs.persistTurn(ctx, userID, conversationID, userMessage, assembled.String())
			return nil
		}

		assembled.WriteString(chunk.Content)
		resp := StreamResponse{
			Choices: []Choice{{Delta: Delta{Content: chunk.Content}}},
		}
		if err := writeSSEResponse(w, resp); err != nil {
			return err
		}
	}
	return nil
}

// buildMessages prepends the persona + memories system prompt and expands a
// leading /command in the final user message.
func (cs *ChatService) buildMessages(ctx context.Context, userID int, messages []Message) ([]llm.Message, error) {
	system := personaPrompt
	contents, err := cs.memories.ListContents(ctx, userID)
	if err != nil {
		// Memories are an enrichment; a failed load should not kill the turn.
		log.Printf("Failed to load memories for user %d: %v", userID, err)
	} else if len(contents) > 0 {
		var b strings.Builder
		b.WriteString(system)
		b.WriteString("\n\nThings you know about the user:\n")
		for _, content := range contents {
			b.WriteString("- ")
			b.WriteString(content)
			b.WriteString("\n")
		}
		system = b.String()
	}

	llmMessages := make([]llm.Message, 0, len(messages)+1)
	llmMessages = append(llmMessages, llm.Message{Role: "system", Content: system})
	for _, msg := range messages {
		role := msg.Role
		if role != "assistant" && role != "system" {
			role = "user"
		}
		llmMessages = append(llmMessages, llm.Message{Role: role, Content: msg.Content})
	}

	last := &llmMessages[len(llmMessages)-1]
	if expanded, ok := cs.expandCommand(ctx, userID, last.Content); ok {
		last.Content = expanded
	}
	return llmMessages, nil
}

func (cs *ChatService) expandCommand(ctx context.Context, userID int, content string) (string, bool) {
	if !strings.HasPrefix(content, "/") {
		return "", false
	}
	name, input, _ := strings.Cut(content, " ")

	expanded, ok, err := cs.commands.Expand(ctx, userID, name, input)
	if err != nil {
		log.Printf("Failed to expand command %q for user %d: %v", name, userID, err)
		return "", false
	}
	return expanded, ok
}

// persistTurn is skipped for an abandoned stream: a canceled turn leaves no
// side effects behind.
func (cs *ChatService) persistTurn(ctx context.Context, userID int, conversationID uuid.UUID, userMsg, assistantMsg string) {
	if ctx.Err() != nil {
		return
	}
	if err := cs.repo.SaveTurn(ctx, userID, conversationID, userMsg, assistantMsg); err != nil {
		// The response already streamed; losing the transcript is logged,
		// not surfaced.
		log.Printf("Failed to persist chat turn for user %d: %v", userID, err)
	}
}

func (cs *ChatService) ListConversations(ctx context.Context, userID int) ([]ConversationSummary, error) {
	return cs.repo.ListConversations(ctx, userID)
}

func (cs *ChatService) GetConversation(ctx context.Context, userID int, id uuid.UUID) (*Conversation, error) {
	return cs.repo.GetConversation(ctx, userID, id)
}

func writeSSEResponse(w io.Writer, resp StreamResponse) error {
	jsonData, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to marshal SSE response: %w", err)
	}

	if _, err := fmt.Fprintf(w, "data: %s\n\n", jsonData); err != nil {
		return fmt.Errorf("failed to write SSE message: %w", err)
	}

	// If the writer supports flushing (like http.ResponseWriter), flush it
	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}

	return nil
}

func titleFromMessage(msg string) string {
	msg = strings.TrimSpace(msg)
	runes := []rune(msg)
	if len(runes) <= maxTitleLen {
		return msg
	}
	return string(runes[:maxTitleLen])
}
