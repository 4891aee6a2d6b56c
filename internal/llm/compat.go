package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"aria/be/internal/sse"
)

// maxErrorBody caps how much of a failed response body is read back into
// the error message.
const maxErrorBody = 64 * 1024

// CompatProvider talks to any OpenAI-compatible chat completions endpoint
// over plain HTTP. Streaming responses are decoded with the sse.Assembler,
// so chunk boundaries from the wire never corrupt or drop a fragment.
type CompatProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewCompatProvider(baseURL, apiKey string, client *http.Client) *CompatProvider {
	if client == nil {
		client = http.DefaultClient
	}
	return &CompatProvider{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		client:  client,
	}
}

type compatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
	Stream   bool      `json:"stream,omitempty"`
}

type compatResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

func (p *CompatProvider) Complete(ctx context.Context, req CompletionRequest) (Message, error) {
	resp, err := p.post(ctx, compatRequest{Model: req.Model, Messages: req.Messages})
	if err != nil {
		return Message{}, err
	}
	defer resp.Body.Close()

	var out compatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Message{}, fmt.Errorf("failed to decode completion response: %w", err)
	}
	if len(out.Choices) == 0 {
		return Message{}, errors.New("no choices found")
	}
	return out.Choices[0].Message, nil
}

func (p *CompatProvider) StreamComplete(ctx context.Context, req CompletionRequest) (<-chan StreamChunk, error) {
	resp, err := p.post(ctx, compatRequest{Model: req.Model, Messages: req.Messages, Stream: true})
	if err != nil {
		// Request never produced a stream; the caller rolls back any
		// placeholder state it set up for this turn.
		return nil, err
	}

	chunks := make(chan StreamChunk)
	go func() {
		defer close(chunks)
		defer resp.Body.Close()

		_, err := sse.Consume(ctx, resp.Body, func(fragment string) {
			emit(ctx, chunks, StreamChunk{Content: fragment})
		})
		if err != nil {
			emit(ctx, chunks, StreamChunk{Err: err})
			return
		}
		emit(ctx, chunks, StreamChunk{Done: true})
	}()

	return chunks, nil
}

func (p *CompatProvider) post(ctx context.Context, body compatRequest) (*http.Response, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "text/event-stream")
	if p.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errorBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		resp.Body.Close()
		return nil, &TransportError{StatusCode: resp.StatusCode, Body: string(errorBody)}
	}
	return resp, nil
}
