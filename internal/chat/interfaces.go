package chat

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Messages       []Message `json:"messages" binding:"required"`
	ConversationID string    `json:"conversation_id,omitempty"`
	Model          string    `json:"model,omitempty"`
}

// StreamResponse is one SSE frame sent to the browser; same wire shape the
// upstream completion endpoints use, so the frontend assembler is identical
// either way.
type StreamResponse struct {
	Choices []Choice `json:"choices"`
}

type Choice struct {
	Delta        Delta  `json:"delta"`
	FinishReason string `json:"finish_reason,omitempty"`
}

type Delta struct {
	Content string `json:"content"`
}

type StoredMessage struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Role      string    `db:"role" json:"role"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type ConversationSummary struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type Conversation struct {
	ConversationSummary
	Messages []StoredMessage `json:"messages"`
}

type Repository interface {
	SaveTurn(ctx context.Context, userID int, conversationID uuid.UUID, userMsg, assistantMsg string) error
	ListConversations(ctx context.Context, userID int) ([]ConversationSummary, error)
	GetConversation(ctx context.Context, userID int, id uuid.UUID) (*Conversation, error)
}

// MemorySource supplies the user's saved memories for the system prompt.
type MemorySource interface {
	ListContents(ctx context.Context, userID int) ([]string, error)
}

// CommandExpander resolves /name invocations against the user's custom
// commands.
type CommandExpander interface {
	Expand(ctx context.Context, userID int, name, input string) (string, bool, error)
}
