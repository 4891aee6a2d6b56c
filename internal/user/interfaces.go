package user

import "context"

type Service interface {
	GetUser(ctx context.Context, req GetUserRequest) (*GetUserResponse, error)
	CreateUser(ctx context.Context, req *CreateUserRequest) error
}

type Repository interface {
	GetById(ctx context.Context, id int) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	Create(ctx context.Context, user *User) error
}

type GetUserResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Realname string `json:"realname"`
}

type GetUserRequest struct {
	ID       int    `json:"id" form:"id" uri:"id"`
	Username string `json:"username" form:"username" uri:"username"`
}

type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Realname string `json:"realname"`
}

type Role string

const (
	Member Role = "member"
	Admin  Role = "admin"
)
