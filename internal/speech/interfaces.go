package speech

import "context"

type Service interface {
	Synthesize(ctx context.Context, req SynthesizeRequest) ([]byte, error)
}

type SynthesizeRequest struct {
	Input string `json:"input" binding:"required"`
	Voice string `json:"voice,omitempty"`
}
