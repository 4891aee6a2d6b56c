package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, chunks <-chan StreamChunk) (string, bool, error) {
	t.Helper()
	var content string
	var done bool
	var streamErr error
	for chunk := range chunks {
		if chunk.Err != nil {
			streamErr = chunk.Err
			continue
		}
		if chunk.Done {
			done = true
			continue
		}
		content += chunk.Content
	}
	return content, done, streamErr
}

func TestCompatStreamComplete(t *testing.T) {
	// The payload for "wor" is deliberately flushed in two pieces to force
	// a chunk boundary inside the JSON.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "text/event-stream")
		flusher := w.(http.Flusher)

		fmt.Fprint(w, ":keep-alive\n\n")
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\"Hello \"}}]}\n\n")
		flusher.Flush()
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\"")
		flusher.Flush()
		fmt.Fprint(w, ":{\"content\":\"wor\"}}]}\n\n")
		flusher.Flush()
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\"ld\"}}]}\n\n")
		fmt.Fprint(w, "data: [DONE]\n\n")
		flusher.Flush()
	}))
	defer srv.Close()

	provider := NewCompatProvider(srv.URL, "test-key", srv.Client())
	chunks, err := provider.StreamComplete(context.Background(), CompletionRequest{
		Model:    "test-model",
		Messages: []Message{{Role: "user", Content: "hi"}},
	})
	require.NoError(t, err)

	content, done, streamErr := collect(t, chunks)
	require.NoError(t, streamErr)
	assert.True(t, done)
	assert.Equal(t, "Hello world", content)
}

func TestCompatStreamCompleteTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	provider := NewCompatProvider(srv.URL, "", srv.Client())
	_, err := provider.StreamComplete(context.Background(), CompletionRequest{Model: "test-model"})

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, http.StatusServiceUnavailable, transportErr.StatusCode)
	assert.Contains(t, transportErr.Body, "model overloaded")
}

func TestCompatStreamCompleteKeepsPartialOnMidStreamFault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\"partial\"}}]}\n\n")
		w.(http.Flusher).Flush()

		// Kill the connection without sending [DONE].
		hj, ok := w.(http.Hijacker)
		require.True(t, ok)
		conn, _, err := hj.Hijack()
		require.NoError(t, err)
		conn.Close()
	}))
	defer srv.Close()

	provider := NewCompatProvider(srv.URL, "", srv.Client())
	chunks, err := provider.StreamComplete(context.Background(), CompletionRequest{Model: "test-model"})
	require.NoError(t, err)

	content, done, streamErr := collect(t, chunks)
	assert.Equal(t, "partial", content)
	assert.False(t, done)

	// An abrupt close without a terminating chunk surfaces either as EOF
	// (treated as end of stream) or as a read error; content stays.
	if streamErr != nil {
		assert.False(t, errors.Is(streamErr, context.Canceled))
	}
}

func TestCompatStreamCompleteConsumerWalksAway(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		flusher := w.(http.Flusher)
		for i := 0; i < 100; i++ {
			fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\"x\"}}]}\n\n")
			flusher.Flush()
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	provider := NewCompatProvider(srv.URL, "", srv.Client())
	chunks, err := provider.StreamComplete(ctx, CompletionRequest{Model: "test-model"})
	require.NoError(t, err)

	// Take one chunk, then stop ranging and cancel, the way a handler
	// bails out when the client disconnects mid-stream.
	<-chunks
	cancel()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if !strings.Contains(goroutineStacks(), "StreamComplete.func") {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("producer goroutine still blocked after consumer abandoned the stream")
}

func goroutineStacks() string {
	buf := make([]byte, 1<<20)
	return string(buf[:runtime.Stack(buf, true)])
}

func TestCompatComplete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"choices":[{"message":{"role":"assistant","content":"pong"}}]}`)
	}))
	defer srv.Close()

	provider := NewCompatProvider(srv.URL, "", srv.Client())
	msg, err := provider.Complete(context.Background(), CompletionRequest{Model: "test-model"})
	require.NoError(t, err)
	assert.Equal(t, "pong", msg.Content)
	assert.Equal(t, "assistant", msg.Role)
}
