package memory

import (
	"context"
	"errors"
	"strings"
)

var ErrNotFound = errors.New("memory not found")

type ServiceImpl struct {
	repo Repository
}

func NewServiceImpl(repo Repository) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) List(ctx context.Context, userID int) ([]MemoryResponse, error) {
	memories, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	responses := make([]MemoryResponse, 0, len(memories))
	for _, m := range memories {
		responses = append(responses, toResponse(m))
	}
	return responses, nil
}

// ListContents returns just the memory texts, oldest first; the chat
// service folds them into the system prompt.
func (s *ServiceImpl) ListContents(ctx context.Context, userID int) ([]string, error) {
	memories, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	contents := make([]string, 0, len(memories))
	for _, m := range memories {
		contents = append(contents, m.Content)
	}
	return contents, nil
}

func (s *ServiceImpl) Create(ctx context.Context, userID int, req CreateMemoryRequest) (*MemoryResponse, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, errors.New("memory content is empty")
	}

	m := &Memory{UserID: userID, Content: content}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	res := toResponse(*m)
	return &res, nil
}

func (s *ServiceImpl) Update(ctx context.Context, userID, id int, req UpdateMemoryRequest) error {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return errors.New("memory content is empty")
	}

	ok, err := s.repo.Update(ctx, userID, id, content)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (s *ServiceImpl) Delete(ctx context.Context, userID, id int) error {
	ok, err := s.repo.Delete(ctx, userID, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func toResponse(m Memory) MemoryResponse {
	return MemoryResponse{
		ID:        m.ID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
