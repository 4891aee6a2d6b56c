package command

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

func (r *RepositoryImpl) ListByUser(ctx context.Context, userID int) ([]CustomCommand, error) {
	var commands []CustomCommand
	err := r.db.SelectContext(ctx, &commands,
		"SELECT id, user_id, name, prompt, created_at, updated_at FROM custom_command WHERE user_id = $1 ORDER BY name", userID)
	return commands, err
}

func (r *RepositoryImpl) GetByName(ctx context.Context, userID int, name string) (CustomCommand, error) {
	var c CustomCommand
	err := r.db.GetContext(ctx, &c,
		"SELECT id, user_id, name, prompt, created_at, updated_at FROM custom_command WHERE user_id = $1 AND name = $2",
		userID, name)
	return c, err
}

func (r *RepositoryImpl) Create(ctx context.Context, c *CustomCommand) error {
	return r.db.GetContext(ctx, c,
		`INSERT INTO custom_command (user_id, name, prompt) VALUES ($1, $2, $3)
		 RETURNING id, user_id, name, prompt, created_at, updated_at`,
		c.UserID, c.Name, c.Prompt)
}

func (r *RepositoryImpl) Update(ctx context.Context, userID, id int, name, prompt string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		"UPDATE custom_command SET name = $1, prompt = $2, updated_at = now() WHERE id = $3 AND user_id = $4",
		name, prompt, id, userID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *RepositoryImpl) Delete(ctx context.Context, userID, id int) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM custom_command WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
