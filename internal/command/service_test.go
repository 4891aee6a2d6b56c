package command

import (
	"context"
	"database/sql"
	"testing"
)

type fakeRepository struct {
	commands map[string]CustomCommand
}

func (f *fakeRepository) ListByUser(_ context.Context, _ int) ([]CustomCommand, error) {
	return nil, nil
}

func (f *fakeRepository) GetByName(_ context.Context, userID int, name string) (CustomCommand, error) {
	c, ok := f.commands[name]
	if !ok || c.UserID != userID {
		return CustomCommand{}, sql.ErrNoRows
	}
	return c, nil
}

func (f *fakeRepository) Create(_ context.Context, c *CustomCommand) error {
	f.commands[c.Name] = *c
	return nil
}

func (f *fakeRepository) Update(_ context.Context, _, _ int, _, _ string) (bool, error) {
	return false, nil
}

func (f *fakeRepository) Delete(_ context.Context, _, _ int) (bool, error) {
	return false, nil
}

func TestExpand(t *testing.T) {
	repo := &fakeRepository{commands: map[string]CustomCommand{
		"summarize": {UserID: 1, Name: "summarize", Prompt: "Summarize the following text:\n{input}"},
		"standup":   {UserID: 1, Name: "standup", Prompt: "Write my standup update."},
	}}
	service := NewServiceImpl(repo)

	tests := []struct {
		name    string
		userID  int
		command string
		input   string
		want    string
		wantOK  bool
	}{
		{
			name:    "placeholder substitution",
			userID:  1,
			command: "summarize",
			input:   "the meeting notes",
			want:    "Summarize the following text:\nthe meeting notes",
			wantOK:  true,
		},
		{
			name:    "leading slash and case folded",
			userID:  1,
			command: "/Summarize",
			input:   "x",
			want:    "Summarize the following text:\nx",
			wantOK:  true,
		},
		{
			name:    "no placeholder appends input",
			userID:  1,
			command: "standup",
			input:   "focus on the release",
			want:    "Write my standup update.\n\nfocus on the release",
			wantOK:  true,
		},
		{
			name:    "no placeholder no input",
			userID:  1,
			command: "standup",
			input:   "",
			want:    "Write my standup update.",
			wantOK:  true,
		},
		{
			name:    "unknown command",
			userID:  1,
			command: "unknown",
			input:   "x",
			wantOK:  false,
		},
		{
			name:    "other users command invisible",
			userID:  2,
			command: "summarize",
			input:   "x",
			wantOK:  false,
		},
		{
			name:    "empty name",
			userID:  1,
			command: "/",
			input:   "x",
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := service.Expand(context.Background(), tt.userID, tt.command, tt.input)
			if err != nil {
				t.Fatalf("Expand failed: %v", err)
			}
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("expanded = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name    string
		command string
		wantErr bool
	}{
		{"plain", "summarize", false},
		{"slash stripped", "/summarize", false},
		{"dashes ok", "daily-standup", false},
		{"spaces rejected", "my command", true},
		{"empty rejected", "", true},
		{"too long rejected", "abcdefghijklmnopqrstuvwxyz0123456789", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := normalize(tt.command, "prompt")
			if (err != nil) != tt.wantErr {
				t.Errorf("normalize(%q) error = %v, wantErr %v", tt.command, err, tt.wantErr)
			}
		})
	}
}
