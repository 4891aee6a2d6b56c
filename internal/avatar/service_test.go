package avatar

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	data []byte
	err  error
}

func (f *fakeGenerator) GenerateImage(_ context.Context, _ string) ([]byte, error) {
	return f.data, f.err
}

type fakeRepo struct {
	saved []Avatar
}

func (f *fakeRepo) Save(_ context.Context, a *Avatar) error {
	f.saved = append(f.saved, *a)
	return nil
}

func (f *fakeRepo) LatestByUser(_ context.Context, userID int) (Avatar, error) {
	for i := len(f.saved) - 1; i >= 0; i-- {
		if f.saved[i].UserID == userID {
			return f.saved[i], nil
		}
	}
	return Avatar{}, sql.ErrNoRows
}

func TestGenerate(t *testing.T) {
	repo := &fakeRepo{}
	service := NewServiceImpl(&fakeGenerator{data: []byte("png-bytes")}, repo)

	res, err := service.Generate(context.Background(), 1, GenerateRequest{Prompt: "a friendly robot"})
	require.NoError(t, err)
	assert.Equal(t, "image/png", res.ContentType)
	require.Len(t, repo.saved, 1)
	assert.Equal(t, []byte("png-bytes"), repo.saved[0].Data)
}

func TestGenerateEmptyPrompt(t *testing.T) {
	service := NewServiceImpl(&fakeGenerator{}, &fakeRepo{})

	_, err := service.Generate(context.Background(), 1, GenerateRequest{Prompt: "  "})
	assert.Error(t, err)
}

func TestGeneratePropagatesProviderError(t *testing.T) {
	service := NewServiceImpl(&fakeGenerator{err: errors.New("quota exceeded")}, &fakeRepo{})

	_, err := service.Generate(context.Background(), 1, GenerateRequest{Prompt: "x"})
	assert.EqualError(t, err, "quota exceeded")
}

func TestUploadValidation(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		data        []byte
		wantErr     bool
	}{
		{"png accepted", "image/png", []byte("x"), false},
		{"jpeg accepted", "image/jpeg", []byte("x"), false},
		{"gif rejected", "image/gif", []byte("x"), true},
		{"empty rejected", "image/png", nil, true},
		{"oversized rejected", "image/png", bytes.Repeat([]byte("x"), MaxUploadBytes+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewServiceImpl(&fakeGenerator{}, &fakeRepo{})
			_, err := service.Upload(context.Background(), 1, tt.contentType, tt.data)
			if (err != nil) != tt.wantErr {
				t.Errorf("Upload error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCurrent(t *testing.T) {
	repo := &fakeRepo{}
	service := NewServiceImpl(&fakeGenerator{}, repo)

	_, err := service.Current(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNoAvatar)

	_, err = service.Upload(context.Background(), 1, "image/png", []byte("first"))
	require.NoError(t, err)
	_, err = service.Upload(context.Background(), 1, "image/png", []byte("second"))
	require.NoError(t, err)

	current, err := service.Current(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), current.Data)
}
