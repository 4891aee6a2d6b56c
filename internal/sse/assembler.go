// Package sse decodes OpenAI-style text/event-stream responses chunk by
// chunk. The transport hands the Assembler arbitrarily sized byte chunks;
// the Assembler reassembles lines and JSON payloads that were split across
// chunk boundaries and emits the content fragments in arrival order.
package sse

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

// State tracks the lifecycle of one response stream. There is no
// transition out of StateDone.
type State int

const (
	StateIdle State = iota
	StateStreaming
	StateDone
)

// DoneSentinel is the terminal payload: producers write it last and the
// Assembler stops at it.
const DoneSentinel = "[DONE]"

const (
	dataPrefix = "data:"

	// maxHeldLine caps the size of a line held back for re-parsing (or
	// still waiting for its newline). A line that grows past this is not
	// a boundary-split payload, it is garbage; it gets dropped so one bad
	// line cannot stall or bloat the stream.
	maxHeldLine = 1 << 20

	// maxParseRetries caps how many times a pushed-back line is retried
	// after new chunks arrive before it is dropped as malformed.
	maxParseRetries = 8
)

// ErrDone is returned by Ingest once the stream has terminated.
var ErrDone = errors.New("sse: ingest after stream done")

// RoleAssistant is the fixed role tag of every assembled message.
const RoleAssistant = "assistant"

// AssembledMessage is the cumulative content of one response turn.
type AssembledMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type deltaPayload struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
}

// Assembler consumes one event stream. Not safe for concurrent use; each
// in-flight response owns its own Assembler.
type Assembler struct {
	buf     []byte
	content strings.Builder
	state   State
	retries int
}

func NewAssembler() *Assembler {
	return &Assembler{}
}

// Ingest appends one transport chunk and returns the content fragments it
// completed, in arrival order. Splitting the buffer only at '\n' means a
// multi-byte rune cut in half by a chunk boundary stays buffered until its
// remaining bytes arrive, so no line is ever interpreted mid-rune.
func (a *Assembler) Ingest(chunk []byte) ([]string, error) {
	if a.state == StateDone {
		return nil, ErrDone
	}
	a.state = StateStreaming
	a.buf = append(a.buf, chunk...)

	var fragments []string
	for {
		nl := bytes.IndexByte(a.buf, '\n')
		if nl < 0 {
			// No complete line. Drop an oversized partial rather than
			// buffering it forever.
			if len(a.buf) > maxHeldLine {
				a.buf = nil
			}
			break
		}
		line := bytes.TrimSuffix(a.buf[:nl], []byte("\r"))
		rest := a.buf[nl+1:]

		if len(line) == 0 || line[0] == ':' || !bytes.HasPrefix(line, []byte(dataPrefix)) {
			a.buf = rest
			continue
		}

		payload := bytes.TrimSpace(line[len(dataPrefix):])
		if string(payload) == DoneSentinel {
			a.state = StateDone
			a.buf = nil
			break
		}

		var delta deltaPayload
		if err := json.Unmarshal(payload, &delta); err != nil {
			if a.retries >= maxParseRetries || len(line) > maxHeldLine {
				// Never going to parse; drop the line and move on.
				a.retries = 0
				a.buf = rest
				continue
			}
			// Assume the payload was split across a chunk boundary: push
			// the line back (newline restored) and wait for more data.
			a.retries++
			held := make([]byte, 0, len(line)+1+len(rest))
			held = append(held, line...)
			held = append(held, '\n')
			held = append(held, rest...)
			a.buf = held
			break
		}
		a.retries = 0
		a.buf = rest

		if len(delta.Choices) == 0 {
			continue
		}
		if c := delta.Choices[0].Delta.Content; c != "" {
			a.content.WriteString(c)
			fragments = append(fragments, c)
		}
	}
	return fragments, nil
}

// Finish marks end of stream on transport EOF. A buffered partial line can
// never complete, so it is discarded silently.
func (a *Assembler) Finish() {
	a.state = StateDone
	a.buf = nil
}

func (a *Assembler) Done() bool {
	return a.state == StateDone
}

func (a *Assembler) State() State {
	return a.state
}

// Message returns the response assembled so far. After Finish (or the
// [DONE] sentinel) the content is final.
func (a *Assembler) Message() AssembledMessage {
	return AssembledMessage{Role: RoleAssistant, Content: a.content.String()}
}
