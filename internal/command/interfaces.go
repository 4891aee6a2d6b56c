package command

import (
	"context"
	"time"
)

type Service interface {
	List(ctx context.Context, userID int) ([]CommandResponse, error)
	Create(ctx context.Context, userID int, req CreateCommandRequest) (*CommandResponse, error)
	Update(ctx context.Context, userID, id int, req UpdateCommandRequest) error
	Delete(ctx context.Context, userID, id int) error

	// Expand resolves a /name invocation against the user's commands.
	// ok is false when no such command exists; the caller then sends the
	// message through untouched.
	Expand(ctx context.Context, userID int, name, input string) (expanded string, ok bool, err error)
}

type Repository interface {
	ListByUser(ctx context.Context, userID int) ([]CustomCommand, error)
	GetByName(ctx context.Context, userID int, name string) (CustomCommand, error)
	Create(ctx context.Context, c *CustomCommand) error
	Update(ctx context.Context, userID, id int, name, prompt string) (bool, error)
	Delete(ctx context.Context, userID, id int) (bool, error)
}

type CustomCommand struct {
	ID        int       `db:"id" json:"id"`
	UserID    int       `db:"user_id" json:"-"`
	Name      string    `db:"name" json:"name"`
	Prompt    string    `db:"prompt" json:"prompt"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type CreateCommandRequest struct {
	Name   string `json:"name" binding:"required"`
	Prompt string `json:"prompt" binding:"required"`
}

type UpdateCommandRequest struct {
	Name   string `json:"name" binding:"required"`
	Prompt string `json:"prompt" binding:"required"`
}

type CommandResponse struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Prompt    string    `json:"prompt"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
