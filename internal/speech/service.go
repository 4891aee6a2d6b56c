package speech

import (
	"context"
	"errors"
	"strings"

	"aria/be/internal/llm"
)

// maxInputLen mirrors the upstream TTS input limit.
const maxInputLen = 4096

type ServiceImpl struct {
	synthesizer llm.SpeechSynthesizer
}

func NewServiceImpl(synthesizer llm.SpeechSynthesizer) *ServiceImpl {
	return &ServiceImpl{synthesizer: synthesizer}
}

func (s *ServiceImpl) Synthesize(ctx context.Context, req SynthesizeRequest) ([]byte, error) {
	input := strings.TrimSpace(req.Input)
	if input == "" {
		return nil, errors.New("speech input is empty")
	}
	if len(input) > maxInputLen {
		return nil, errors.New("speech input too long")
	}
	return s.synthesizer.Synthesize(ctx, input, req.Voice)
}
