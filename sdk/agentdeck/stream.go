package agentdeck

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
)

// Known StreamEvent discriminators. Any other value is treated as an
// incremental event and delivered through OnChunk.
const (
	EventToken    = "token"
	EventError    = "error"
	EventComplete = "complete"
)

// StreamEvent is one event decoded from a message stream. Content carries
// partial assistant text for incremental events, the error message for
// EventError, and the final payload for EventComplete.
type StreamEvent struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// StreamHandlers receive the decoded events of one stream. OnChunk fires
// zero or more times; after that exactly one of OnError or OnComplete fires
// and the stream stops. Nil handlers are skipped.
type StreamHandlers struct {
	OnChunk    func(StreamEvent)
	OnError    func(error)
	OnComplete func(StreamEvent)
}

func (h StreamHandlers) chunk(event StreamEvent) {
	if h.OnChunk != nil {
		h.OnChunk(event)
	}
}

func (h StreamHandlers) fail(err error) {
	if h.OnError != nil {
		h.OnError(err)
	}
}

func (h StreamHandlers) complete(event StreamEvent) {
	if h.OnComplete != nil {
		h.OnComplete(event)
	}
}

const eventPrefix = "data: "

// streamDecoder turns raw byte chunks into StreamEvent callbacks. It buffers
// bytes rather than decoded text: chunk boundaries may split a multi-byte
// UTF-8 sequence, and '\n' never occurs inside one, so splitting the byte
// buffer on '\n' keeps partial sequences intact until their line completes.
//
// The decoder owns exactly one stream: once a terminal event is seen, done
// is set and every later byte is ignored.
type streamDecoder struct {
	buf      []byte
	handlers StreamHandlers
	done     bool
}

// feed appends a chunk and processes every complete line in the buffer.
// The bytes after the last '\n' stay buffered for the next chunk.
func (d *streamDecoder) feed(p []byte) {
	if d.done {
		return
	}
	d.buf = append(d.buf, p...)

	for !d.done {
		idx := bytes.IndexByte(d.buf, '\n')
		if idx < 0 {
			return
		}
		line := string(d.buf[:idx])
		d.buf = d.buf[idx+1:]
		d.handleLine(line)
	}
}

// handleLine processes one complete line. Lines without the event prefix,
// including blank lines, are ignored. A line whose payload fails to parse is
// dropped; one malformed event must not kill the session.
func (d *streamDecoder) handleLine(line string) {
	line = strings.TrimSuffix(line, "\r")
	if !strings.HasPrefix(line, eventPrefix) {
		return
	}

	var event StreamEvent
	if err := json.Unmarshal([]byte(line[len(eventPrefix):]), &event); err != nil {
		log.Printf("agentdeck: dropping malformed stream event: %v", err)
		return
	}

	switch event.Type {
	case EventError:
		d.done = true
		d.handlers.fail(errors.New(event.Content))
	case EventComplete:
		d.done = true
		d.handlers.complete(event)
	default:
		d.handlers.chunk(event)
	}
}

// doStreamRequest issues a streaming request and decodes the response line
// by line. Every outcome, including request failures, is delivered through
// h; the method returns once the stream is done. Cancelling ctx stops the
// read loop without any further callbacks.
func (c *Client) doStreamRequest(ctx context.Context, method, path string, body interface{}, h StreamHandlers) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			h.fail(fmt.Errorf("marshal request body: %w", err))
			return
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		h.fail(fmt.Errorf("create request: %w", err))
		return
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	// Streams outlive any request timeout; their lifetime is governed by ctx.
	streamClient := &http.Client{}
	resp, err := streamClient.Do(req)
	if err != nil {
		if ctx.Err() == nil {
			h.fail(fmt.Errorf("do request: %w", err))
		}
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		h.fail(apiError(resp.StatusCode, bodyBytes))
		return
	}

	dec := &streamDecoder{handlers: h}
	buf := make([]byte, 4096)

	for !dec.done {
		n, err := resp.Body.Read(buf)
		if n > 0 {
			dec.feed(buf[:n])
		}
		if err != nil {
			if dec.done || ctx.Err() != nil {
				return
			}
			if err == io.EOF {
				// End of stream with no terminal event. This is a quiet end,
				// not an error: the deliberate contract is that only "error"
				// and "complete" events produce terminal callbacks. Callers
				// that must detect truncation can treat a missing OnComplete
				// as such.
				return
			}
			h.fail(fmt.Errorf("read stream: %w", err))
			return
		}
	}
}
