package command

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"
)

var ErrNotFound = errors.New("command not found")

// inputPlaceholder marks where the invocation's free text lands inside the
// stored prompt template.
const inputPlaceholder = "{input}"

var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{0,31}$`)

type ServiceImpl struct {
	repo Repository
}

func NewServiceImpl(repo Repository) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) List(ctx context.Context, userID int) ([]CommandResponse, error) {
	commands, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	responses := make([]CommandResponse, 0, len(commands))
	for _, c := range commands {
		responses = append(responses, toResponse(c))
	}
	return responses, nil
}

func (s *ServiceImpl) Create(ctx context.Context, userID int, req CreateCommandRequest) (*CommandResponse, error) {
	name, prompt, err := normalize(req.Name, req.Prompt)
	if err != nil {
		return nil, err
	}

	c := &CustomCommand{UserID: userID, Name: name, Prompt: prompt}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	res := toResponse(*c)
	return &res, nil
}

func (s *ServiceImpl) Update(ctx context.Context, userID, id int, req UpdateCommandRequest) error {
	name, prompt, err := normalize(req.Name, req.Prompt)
	if err != nil {
		return err
	}

	ok, err := s.repo.Update(ctx, userID, id, name, prompt)
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

func (s *ServiceImpl) Expand(ctx context.Context, userID int, name, input string) (string, bool, error) {
	name = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), "/")
	if name == "" {
		return "", false, nil
	}

	c, err := s.repo.GetByName(ctx, userID, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}

	input = strings.TrimSpace(input)
	if strings.Contains(c.Prompt, inputPlaceholder) {
		return strings.ReplaceAll(c.Prompt, inputPlaceholder, input), true, nil
	}
	if input == "" {
		return c.Prompt, true, nil
	}
	return c.Prompt + "\n\n" + input, true, nil
}

func normalize(name, prompt string) (string, string, error) {
	name = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), "/")
	if !namePattern.MatchString(name) {
		return "", "", errors.New("command name must be 1-32 lowercase letters, digits or dashes")
	}
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", "", errors.New("command prompt is empty")
	}
	return name, prompt, nil
}

func toResponse(c CustomCommand) CommandResponse {
	return CommandResponse{
		ID:        c.ID,
		Name:      c.Name,
		Prompt:    c.Prompt,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
