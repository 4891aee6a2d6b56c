package task

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	tasks map[int]Task
	next  int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{tasks: make(map[int]Task), next: 1}
}

func (f *fakeRepository) ListByUser(_ context.Context, userID int) ([]Task, error) {
	var out []Task
	for _, t := range f.tasks {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeRepository) GetByUser(_ context.Context, userID, id int) (Task, error) {
	t, ok := f.tasks[id]
	if !ok || t.UserID != userID {
		return Task{}, sql.ErrNoRows
	}
	return t, nil
}

func (f *fakeRepository) Create(_ context.Context, t *Task) error {
	t.ID = f.next
	f.next++
	f.tasks[t.ID] = *t
	return nil
}

func (f *fakeRepository) Update(_ context.Context, t *Task) (bool, error) {
	existing, ok := f.tasks[t.ID]
	if !ok || existing.UserID != t.UserID {
		return false, nil
	}
	f.tasks[t.ID] = *t
	return true, nil
}

func (f *fakeRepository) Delete(_ context.Context, userID, id int) (bool, error) {
	t, ok := f.tasks[id]
	if !ok || t.UserID != userID {
		return false, nil
	}
	delete(f.tasks, id)
	return true, nil
}

func TestToggleDone(t *testing.T) {
	repo := newFakeRepository()
	service := NewServiceImpl(repo)
	ctx := context.Background()

	created, err := service.Create(ctx, 1, CreateTaskRequest{Title: "water plants"})
	require.NoError(t, err)
	assert.False(t, created.Done)

	done := true
	require.NoError(t, service.Update(ctx, 1, created.ID, UpdateTaskRequest{Done: &done}))
	assert.True(t, repo.tasks[created.ID].Done)
	assert.Equal(t, "water plants", repo.tasks[created.ID].Title)

	done = false
	require.NoError(t, service.Update(ctx, 1, created.ID, UpdateTaskRequest{Done: &done}))
	assert.False(t, repo.tasks[created.ID].Done)
}

func TestUpdateScopedToOwner(t *testing.T) {
	repo := newFakeRepository()
	service := NewServiceImpl(repo)
	ctx := context.Background()

	created, err := service.Create(ctx, 1, CreateTaskRequest{Title: "mine"})
	require.NoError(t, err)

	done := true
	err = service.Update(ctx, 2, created.ID, UpdateTaskRequest{Done: &done})
	assert.ErrorIs(t, err, ErrNotFound)

	err = service.Delete(ctx, 2, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateValidation(t *testing.T) {
	service := NewServiceImpl(newFakeRepository())

	_, err := service.Create(context.Background(), 1, CreateTaskRequest{Title: "   "})
	assert.Error(t, err)
}

func TestUpdateNothingToDo(t *testing.T) {
	service := NewServiceImpl(newFakeRepository())

	err := service.Update(context.Background(), 1, 1, UpdateTaskRequest{})
	assert.EqualError(t, err, "nothing to update")
}
