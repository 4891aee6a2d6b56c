package memory

import (
	"context"
	"time"
)

type Service interface {
	List(ctx context.Context, userID int) ([]MemoryResponse, error)
	ListContents(ctx context.Context, userID int) ([]string, error)
	Create(ctx context.Context, userID int, req CreateMemoryRequest) (*MemoryResponse, error)
	Update(ctx context.Context, userID, id int, req UpdateMemoryRequest) error
	Delete(ctx context.Context, userID, id int) error
}

type Repository interface {
	ListByUser(ctx context.Context, userID int) ([]Memory, error)
	Create(ctx context.Context, m *Memory) error
	Update(ctx context.Context, userID, id int, content string) (bool, error)
	Delete(ctx context.Context, userID, id int) (bool, error)
}

type Memory struct {
	ID        int       `db:"id" json:"id"`
	UserID    int       `db:"user_id" json:"-"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type CreateMemoryRequest struct {
	Content string `json:"content" binding:"required"`
}

type UpdateMemoryRequest struct {
	Content string `json:"content" binding:"required"`
}

type MemoryResponse struct {
	ID        int       `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
