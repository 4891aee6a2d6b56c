package user

import (
	"context"
	"database/sql"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"aria/be/internal/auth"
)

var ErrNotFound = errors.New("user not found")

type ServiceImpl struct {
	repo Repository
}

func NewServiceImpl(repo Repository) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) GetUser(ctx context.Context, req GetUserRequest) (*GetUserResponse, error) {
	user, err := s.lookup(ctx, req)
	if err != nil {
		return nil, err
	}
	return &GetUserResponse{
		ID:       user.ID,
		Username: user.Username,
		Realname: user.Realname,
	}, nil
}

func (s *ServiceImpl) CreateUser(ctx context.Context, req *CreateUserRequest) error {
	existing, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return errors.New("failed to check if user exists")
	}
	if existing != (User{}) {
		return errors.New("user already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return errors.New("failed to hash password")
	}

	user := &User{
		Username: req.Username,
		Password: string(hashedPassword),
		Realname: req.Realname,
		Role:     Member,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return errors.New("failed to create user")
	}
	return nil
}

// Credential implements auth.CredentialStore.
func (s *ServiceImpl) Credential(ctx context.Context, username string) (auth.Credential, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return auth.Credential{}, ErrNotFound
	}
	return auth.Credential{
		ID:       user.ID,
		Username: user.Username,
		Password: user.Password,
		Role:     string(user.Role),
	}, nil
}

func (s *ServiceImpl) lookup(ctx context.Context, req GetUserRequest) (User, error) {
	if req.ID != 0 {
		user, err := s.repo.GetById(ctx, req.ID)
		if err == nil {
			return user, nil
		}
	}
	if req.Username != "" {
		user, err := s.repo.GetByUsername(ctx, req.Username)
		if err == nil {
			return user, nil
		}
	}
	return User{}, ErrNotFound
}
