package llm

import (
	"context"
	"encoding/base64"
	"errors"
	"io"

	"github.com/sashabaranov/go-openai"
)

type OpenAIProvider struct {
	client *openai.Client
}

func NewOpenAIProvider(client *openai.Client) *OpenAIProvider {
	return &OpenAIProvider{client: client}
}

func (p *OpenAIProvider) Complete(ctx context.Context, req CompletionRequest) (Message, error) {
	res, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    req.Model,
		Messages: toOpenAIMessages(req.Messages),
	})
	if err != nil {
		return Message{}, err
	}
	if len(res.Choices) == 0 {
		return Message{}, errors.New("no choices found")
	}
	return fromOpenAIMessage(res.Choices[0].Message), nil
}

func (p *OpenAIProvider) StreamComplete(ctx context.Context, req CompletionRequest) (<-chan StreamChunk, error) {
	stream, err := p.client.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model:    req.Model,
		Messages: toOpenAIMessages(req.Messages),
	})
	if err != nil {
		return nil, err
	}

	chunks := make(chan StreamChunk)
	go func() {
		defer close(chunks)
		defer stream.Close()

		for {
			response, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				emit(ctx, chunks, StreamChunk{Done: true})
				return
			}
			if err != nil {
				emit(ctx, chunks, StreamChunk{Err: err})
				return
			}

			if len(response.Choices) > 0 {
				if !emit(ctx, chunks, StreamChunk{Content: response.Choices[0].Delta.Content}) {
					return
				}
			}
		}
	}()

	return chunks, nil
}

// GenerateImage asks the image endpoint for a single square avatar and
// returns the decoded bytes.
func (p *OpenAIProvider) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	res, err := p.client.CreateImage(ctx, openai.ImageRequest{
		Prompt:         prompt,
		Model:          openai.CreateImageModelDallE3,
		N:              1,
		Size:           openai.CreateImageSize1024x1024,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	})
	if err != nil {
		return nil, err
	}
	if len(res.Data) == 0 {
		return nil, errors.New("no image data returned")
	}
	return base64.StdEncoding.DecodeString(res.Data[0].B64JSON)
}

// Synthesize renders input as speech (mp3 bytes).
func (p *OpenAIProvider) Synthesize(ctx context.Context, input, voice string) ([]byte, error) {
	if voice == "" {
		voice = string(openai.VoiceAlloy)
	}
	res, err := p.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model: openai.TTSModel1,
		Input: input,
		Voice: openai.SpeechVoice(voice),
	})
	if err != nil {
		return nil, err
	}
	defer res.Close()
	return io.ReadAll(res)
}

// ------------------Private helper function------------------

func toOpenAIMessage(msg Message) openai.ChatCompletionMessage {
	return openai.ChatCompletionMessage{
		Role:    msg.Role,
		Content: msg.Content,
	}
}

func fromOpenAIMessage(msg openai.ChatCompletionMessage) Message {
	return Message{
		Role:    msg.Role,
		Content: msg.Content,
	}
}

func toOpenAIMessages(messages []Message) []openai.ChatCompletionMessage {
	result := make([]openai.ChatCompletionMessage, len(messages))
	for i, msg := range messages {
		result[i] = toOpenAIMessage(msg)
	}
	return result
}
