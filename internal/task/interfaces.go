package task

import (
	"context"
	"time"
)

type Service interface {
	List(ctx context.Context, userID int) ([]TaskResponse, error)
	Create(ctx context.Context, userID int, req CreateTaskRequest) (*TaskResponse, error)
	Update(ctx context.Context, userID, id int, req UpdateTaskRequest) error
	Delete(ctx context.Context, userID, id int) error
}

type Repository interface {
	ListByUser(ctx context.Context, userID int) ([]Task, error)
	GetByUser(ctx context.Context, userID, id int) (Task, error)
	Create(ctx context.Context, t *Task) error
	Update(ctx context.Context, t *Task) (bool, error)
	Delete(ctx context.Context, userID, id int) (bool, error)
}

type Task struct {
	ID        int       `db:"id" json:"id"`
	UserID    int       `db:"user_id" json:"-"`
	Title     string    `db:"title" json:"title"`
	Done      bool      `db:"done" json:"done"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type CreateTaskRequest struct {
	Title string `json:"title" binding:"required"`
}

// UpdateTaskRequest carries only the fields to change; nil means keep.
type UpdateTaskRequest struct {
	Title *string `json:"title"`
	Done  *bool   `json:"done"`
}

type TaskResponse struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
