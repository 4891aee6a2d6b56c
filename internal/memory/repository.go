package memory

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

func (r *RepositoryImpl) ListByUser(ctx context.Context, userID int) ([]Memory, error) {
	var memories []Memory
	err := r.db.SelectContext(ctx, &memories,
		"SELECT id, user_id, content, created_at, updated_at FROM memory WHERE user_id = $1 ORDER BY created_at", userID)
	return memories, err
}

func (r *RepositoryImpl) Create(ctx context.Context, m *Memory) error {
	return r.db.GetContext(ctx, m,
		`INSERT INTO memory (user_id, content) VALUES ($1, $2)
		 RETURNING id, user_id, content, created_at, updated_at`,
		m.UserID, m.Content)
}

func (r *RepositoryImpl) Update(ctx context.Context, userID, id int, content string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		"UPDATE memory SET content = $1, updated_at = now() WHERE id = $2 AND user_id = $3",
		content, id, userID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *RepositoryImpl) Delete(ctx context.Context, userID, id int) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM memory WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
