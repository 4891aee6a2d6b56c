package sse

import (
	"context"
	"errors"
	"io"
)

const readChunkSize = 4096

// Consume drives an Assembler over r until the [DONE] sentinel or EOF,
// invoking onFragment for each content fragment as it completes. The
// returned message always carries whatever content accumulated, including
// on a mid-stream transport error: the caller keeps the partial turn and
// surfaces the error separately.
func Consume(ctx context.Context, r io.Reader, onFragment func(string)) (AssembledMessage, error) {
	return consume(ctx, NewAssembler(), r, onFragment)
}

func consume(ctx context.Context, asm *Assembler, r io.Reader, onFragment func(string)) (AssembledMessage, error) {
	buf := make([]byte, readChunkSize)

	for !asm.Done() {
		if err := ctx.Err(); err != nil {
			// An abandoned stream terminates like any other.
			asm.Finish()
			return asm.Message(), err
		}

		n, err := r.Read(buf)
		if n > 0 {
			fragments, ingestErr := asm.Ingest(buf[:n])
			if ingestErr != nil {
				return asm.Message(), ingestErr
			}
			if onFragment != nil {
				for _, f := range fragments {
					onFragment(f)
				}
			}
		}
		if err != nil {
			asm.Finish()
			if errors.Is(err, io.EOF) {
				return asm.Message(), nil
			}
			return asm.Message(), err
		}
	}
	return asm.Message(), nil
}
