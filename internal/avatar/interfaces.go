package avatar

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Service interface {
	Generate(ctx context.Context, userID int, req GenerateRequest) (*AvatarResponse, error)
	Upload(ctx context.Context, userID int, contentType string, data []byte) (*AvatarResponse, error)
	Current(ctx context.Context, userID int) (*Avatar, error)
}

type Repository interface {
	Save(ctx context.Context, a *Avatar) error
	LatestByUser(ctx context.Context, userID int) (Avatar, error)
}

type Avatar struct {
	ID          uuid.UUID `db:"id" json:"id"`
	UserID      int       `db:"user_id" json:"-"`
	ContentType string    `db:"content_type" json:"content_type"`
	Data        []byte    `db:"data" json:"-"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type GenerateRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

type AvatarResponse struct {
	ID          uuid.UUID `json:"id"`
	ContentType string    `json:"content_type"`
	CreatedAt   time.Time `json:"created_at"`
}
