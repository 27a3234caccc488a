package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// RequestRecord is one logged LLM round trip.
type RequestRecord struct {
	Timestamp    time.Time `json:"timestamp"`
	Purpose      string    `json:"purpose"`
	SessionID    string    `json:"session_id,omitempty"`
	Model        string    `json:"model"`
	InputTokens  int       `json:"input_tokens"`
	OutputTokens int       `json:"output_tokens"`
	LatencyMs    int64     `json:"latency_ms"`
	Success      bool      `json:"success"`
	Error        string    `json:"error,omitempty"`
	Request      string    `json:"request,omitempty"`
	Response     string    `json:"response,omitempty"`
}

// RequestLog appends request records to a JSON-lines file.
type RequestLog struct {
	mu sync.Mutex
	f  *os.File
}

// OpenRequestLog opens (creating if needed) the log file at path.
func OpenRequestLog(path string) (*RequestLog, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("open request log: %w", err)
	}
	return &RequestLog{f: f}, nil
}

// Append writes one record. Errors are returned but callers are expected to
// treat logging as best effort.
func (l *RequestLog) Append(rec RequestRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_, err = l.f.Write(append(data, '\n'))
	return err
}

// Close closes the underlying file.
func (l *RequestLog) Close() error {
	return l.f.Close()
}

// LoggingProvider is a decorator that records every LLM request.
type LoggingProvider struct {
	inner Provider
	log   *RequestLog
}

// WithLogging wraps a Provider with request logging.
func WithLogging(p Provider, log *RequestLog) Provider {
	return &LoggingProvider{inner: p, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	rec := RequestRecord{
		Timestamp: start,
		Purpose:   PurposeFrom(ctx),
		SessionID: SessionIDFrom(ctx),
		Model:     l.inner.ModelID(),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
		Request:   serializeRequest(req),
	}

	if resp != nil {
		rec.InputTokens = resp.Usage.InputTokens
		rec.OutputTokens = resp.Usage.OutputTokens
		rec.Model = resp.Model
		rec.Response = string(resp.Content)
	}
	if err != nil {
		rec.Error = err.Error()
	}

	// Log the request but never fail the call over a logging problem.
	if logErr := l.log.Append(rec); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM request: %v\n", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// serializeRequest builds a readable representation of the LLM request.
func serializeRequest(req Request) string {
	var b []byte

	appendSection := func(label, body string) {
		b = append(b, '[')
		b = append(b, label...)
		b = append(b, "]\n"...)
		b = append(b, body...)
		b = append(b, "\n\n"...)
	}

	if req.System != "" {
		appendSection("system", req.System)
	}
	for _, m := range req.Messages {
		appendSection(string(m.Role), m.Content)
	}
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			appendSection("schema: "+req.Schema.Name, string(def))
		}
	}

	return string(b)
}
