package task

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

var ErrNotFound = errors.New("task not found")

type ServiceImpl struct {
	repo Repository
}

func NewServiceImpl(repo Repository) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) List(ctx context.Context, userID int) ([]TaskResponse, error) {
	tasks, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	responses := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		responses = append(responses, toResponse(t))
	}
	return responses, nil
}

func (s *ServiceImpl) Create(ctx context.Context, userID int, req CreateTaskRequest) (*TaskResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, errors.New("task title is empty")
	}

	t := &Task{UserID: userID, Title: title}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	res := toResponse(*t)
	return &res, nil
}

func (s *ServiceImpl) Update(ctx context.Context, userID, id int, req UpdateTaskRequest) error {
	if req.Title == nil && req.Done == nil {
		return errors.New("nothing to update")
	}

	t, err := s.repo.GetByUser(ctx, userID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return errors.New("task title is empty")
		}
		t.Title = title
	}
	if req.Done != nil {
		t.Done = *req.Done
	}

	ok, err := s.repo.Update(ctx, &t)
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

func toResponse(t Task) TaskResponse {
	return TaskResponse{
		ID:        t.ID,
		Title:     t.Title,
		Done:      t.Done,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
