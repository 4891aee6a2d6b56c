package chat

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"aria/be/internal/db"
)

var ErrConversationNotFound = errors.New("conversation not found")

type RepositoryImpl struct {
	db *db.ADb
}

func NewRepositoryImpl(db *db.ADb) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

// SaveTurn stores one user/assistant exchange. The conversation row is
// created on first use; reusing another user's conversation id is rejected.
func (r *RepositoryImpl) SaveTurn(ctx context.Context, userID int, conversationID uuid.UUID, userMsg, assistantMsg string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO conversation (id, user_id, title) VALUES ($1, $2, $3) ON CONFLICT (id) DO NOTHING",
		conversationID, userID, titleFromMessage(userMsg)); err != nil {
		return err
	}

	var owner int
	if err := tx.GetContext(ctx, &owner,
		"SELECT user_id FROM conversation WHERE id = $1", conversationID); err != nil {
		return err
	}
	if owner != userID {
		return fmt.Errorf("conversation %s does not belong to user %d", conversationID, userID)
	}

	for _, m := range []StoredMessage{
		{ID: uuid.New(), Role: "user", Content: userMsg},
		{ID: uuid.New(), Role: "assistant", Content: assistantMsg},
	} {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO message (id, conversation_id, role, content) VALUES ($1, $2, $3, $4)",
			m.ID, conversationID, m.Role, m.Content); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *RepositoryImpl) ListConversations(ctx context.Context, userID int) ([]ConversationSummary, error) {
	var summaries []ConversationSummary
	err := r.db.SelectContext(ctx, &summaries,
		"SELECT id, title, created_at FROM conversation WHERE user_id = $1 ORDER BY created_at DESC", userID)
	return summaries, err
}

func (r *RepositoryImpl) GetConversation(ctx context.Context, userID int, id uuid.UUID) (*Conversation, error) {
	var conversation Conversation
	err := r.db.GetContext(ctx, &conversation.ConversationSummary,
		"SELECT id, title, created_at FROM conversation WHERE id = $1 AND user_id = $2", id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConversationNotFound
	}
	if err != nil {
		return nil, err
	}

	err = r.db.SelectContext(ctx, &conversation.Messages,
		"SELECT id, role, content, created_at FROM message WHERE conversation_id = $1 ORDER BY created_at", id)
	if err != nil {
		return nil, err
	}
	return &conversation, nil
}
