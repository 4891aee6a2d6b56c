package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	memories []Memory
	next     int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{next: 1}
}

func (f *fakeRepository) ListByUser(_ context.Context, userID int) ([]Memory, error) {
	var out []Memory
	for _, m := range f.memories {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeRepository) Create(_ context.Context, m *Memory) error {
	m.ID = f.next
	f.next++
	f.memories = append(f.memories, *m)
	return nil
}

func (f *fakeRepository) Update(_ context.Context, userID, id int, content string) (bool, error) {
	for i, m := range f.memories {
		if m.ID == id && m.UserID == userID {
			f.memories[i].Content = content
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepository) Delete(_ context.Context, userID, id int) (bool, error) {
	for i, m := range f.memories {
		if m.ID == id && m.UserID == userID {
			f.memories = append(f.memories[:i], f.memories[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func TestListContentsKeepsOrder(t *testing.T) {
	repo := newFakeRepository()
	service := NewServiceImpl(repo)
	ctx := context.Background()

	for _, content := range []string{"likes tea", "allergic to peanuts", "works remote"} {
		_, err := service.Create(ctx, 1, CreateMemoryRequest{Content: content})
		require.NoError(t, err)
	}
	_, err := service.Create(ctx, 2, CreateMemoryRequest{Content: "someone else's"})
	require.NoError(t, err)

	contents, err := service.ListContents(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"likes tea", "allergic to peanuts", "works remote"}, contents)
}

func TestCreateTrimsAndValidates(t *testing.T) {
	repo := newFakeRepository()
	service := NewServiceImpl(repo)
	ctx := context.Background()

	created, err := service.Create(ctx, 1, CreateMemoryRequest{Content: "  likes tea  "})
	require.NoError(t, err)
	assert.Equal(t, "likes tea", created.Content)

	_, err = service.Create(ctx, 1, CreateMemoryRequest{Content: "   "})
	assert.Error(t, err)
}

func TestUpdateScopedToOwner(t *testing.T) {
	repo := newFakeRepository()
	service := NewServiceImpl(repo)
	ctx := context.Background()

	created, err := service.Create(ctx, 1, CreateMemoryRequest{Content: "mine"})
	require.NoError(t, err)

	err = service.Update(ctx, 2, created.ID, UpdateMemoryRequest{Content: "stolen"})
	assert.ErrorIs(t, err, ErrNotFound)

	err = service.Delete(ctx, 2, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, service.Update(ctx, 1, created.ID, UpdateMemoryRequest{Content: "still mine"}))
	assert.Equal(t, "still mine", repo.memories[0].Content)
}
