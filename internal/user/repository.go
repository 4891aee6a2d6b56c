package user

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

func (r *RepositoryImpl) GetById(ctx context.Context, id int) (User, error) {
	var user User
	err := r.db.GetContext(ctx, &user,
		"SELECT id, realname, username, password, role FROM user_account WHERE id = $1", id)
	return user, err
}

func (r *RepositoryImpl) GetByUsername(ctx context.Context, username string) (User, error) {
	var user User
	err := r.db.GetContext(ctx, &user,
		"SELECT id, realname, username, password, role FROM user_account WHERE username = $1", username)
	return user, err
}

func (r *RepositoryImpl) Create(ctx context.Context, user *User) error {
	return r.db.GetContext(ctx, &user.ID,
		"INSERT INTO user_account (username, password, realname, role) VALUES ($1, $2, $3, $4) RETURNING id",
		user.Username, user.Password, user.Realname, user.Role)
}
