package llm

import (
	"context"
	"fmt"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type CompletionRequest struct {
	Messages []Message
	Model    string
}

// StreamChunk is one increment of a streamed completion. Done marks the end
// of the stream; Err reports a mid-stream fault after which no further
// chunks arrive (content already delivered stays valid).
type StreamChunk struct {
	Content string
	Done    bool
	Err     error
}

type AIProvider interface {
	Complete(ctx context.Context, req CompletionRequest) (Message, error)
	StreamComplete(ctx context.Context, req CompletionRequest) (<-chan StreamChunk, error)
}

// emit delivers one chunk to the consumer, or reports false once the
// context is canceled. A consumer that stops ranging the channel cancels
// its context, so producers must never block on a bare send.
func emit(ctx context.Context, chunks chan<- StreamChunk, chunk StreamChunk) bool {
	select {
	case chunks <- chunk:
		return true
	case <-ctx.Done():
		return false
	}
}

// ImageGenerator produces raw image bytes for an avatar prompt.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) ([]byte, error)
}

// SpeechSynthesizer turns text into audio bytes.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, input, voice string) ([]byte, error)
}

// TransportError is a request that failed before any streaming began: the
// connection could not be established or the endpoint answered with a
// non-success status. No partial content exists when this is returned.
type TransportError struct {
	StatusCode int
	Body       string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("completion endpoint returned status %d: %s", e.StatusCode, e.Body)
}
