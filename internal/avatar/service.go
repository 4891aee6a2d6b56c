package avatar

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"aria/be/internal/llm"
)

var ErrNoAvatar = errors.New("no avatar set")

// MaxUploadBytes caps uploaded avatar images.
const MaxUploadBytes = 2 << 20

var allowedContentTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/webp": true,
}

type ServiceImpl struct {
	generator llm.ImageGenerator
	repo      Repository
}

func NewServiceImpl(generator llm.ImageGenerator, repo Repository) *ServiceImpl {
	return &ServiceImpl{generator: generator, repo: repo}
}

func (s *ServiceImpl) Generate(ctx context.Context, userID int, req GenerateRequest) (*AvatarResponse, error) {
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		return nil, errors.New("avatar prompt is empty")
	}

	data, err := s.generator.GenerateImage(ctx, prompt)
	if err != nil {
		return nil, err
	}

	// The image endpoint returns PNG for b64 responses.
	return s.store(ctx, userID, "image/png", data)
}

func (s *ServiceImpl) Upload(ctx context.Context, userID int, contentType string, data []byte) (*AvatarResponse, error) {
	if !allowedContentTypes[contentType] {
		return nil, errors.New("unsupported image type: " + contentType)
	}
	if len(data) == 0 {
		return nil, errors.New("empty image upload")
	}
	if len(data) > MaxUploadBytes {
		return nil, errors.New("image exceeds upload limit")
	}
	return s.store(ctx, userID, contentType, data)
}

func (s *ServiceImpl) Current(ctx context.Context, userID int) (*Avatar, error) {
	a, err := s.repo.LatestByUser(ctx, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoAvatar
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *ServiceImpl) store(ctx context.Context, userID int, contentType string, data []byte) (*AvatarResponse, error) {
	a := &Avatar{
		ID:          uuid.New(),
		UserID:      userID,
		ContentType: contentType,
		Data:        data,
	}
	if err := s.repo.Save(ctx, a); err != nil {
		return nil, err
	}
	return &AvatarResponse{ID: a.ID, ContentType: a.ContentType, CreatedAt: a.CreatedAt}, nil
}
