package task

import (
	"context"

	"aria/be/internal/db"
)

type RepositoryImpl struct {
	db *db.ADb
}

func NewRepositoryImpl(db *db.ADb) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) ListByUser(ctx context.Context, userID int) ([]Task, error) {
	var tasks []Task
	err := r.db.SelectContext(ctx, &tasks,
		"SELECT id, user_id, title, done, created_at, updated_at FROM task WHERE user_id = $1 ORDER BY created_at", userID)
	return tasks, err
}

func (r *RepositoryImpl) GetByUser(ctx context.Context, userID, id int) (Task, error) {
	var t Task
	err := r.db.GetContext(ctx, &t,
		"SELECT id, user_id, title, done, created_at, updated_at FROM task WHERE id = $1 AND user_id = $2", id, userID)
	return t, err
}

func (r *RepositoryImpl) Create(ctx context.Context, t *Task) error {
	return r.db.GetContext(ctx, t,
		`INSERT INTO task (user_id, title) VALUES ($1, $2)
		 RETURNING id, user_id, title, done, created_at, updated_at`,
		t.UserID, t.Title)
}

func (r *RepositoryImpl) Update(ctx context.Context, t *Task) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		"UPDATE task SET title = $1, done = $2, updated_at = now() WHERE id = $3 AND user_id = $4",
		t.Title, t.Done, t.ID, t.UserID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *RepositoryImpl) Delete(ctx context.Context, userID, id int) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM task WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
