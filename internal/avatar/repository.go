package avatar

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

func (r *RepositoryImpl) Save(ctx context.Context, a *Avatar) error {
	return r.db.GetContext(ctx, &a.CreatedAt,
		`INSERT INTO avatar (id, user_id, content_type, data) VALUES ($1, $2, $3, $4)
		 RETURNING created_at`,
		a.ID, a.UserID, a.ContentType, a.Data)
}

func (r *RepositoryImpl) LatestByUser(ctx context.Context, userID int) (Avatar, error) {
	var a Avatar
	err := r.db.GetContext(ctx, &a,
		`SELECT id, user_id, content_type, data, created_at FROM avatar
		 WHERE user_id = $1 ORDER BY created_at DESC LIMIT 1`, userID)
	return a, err
}
