// Package langfuse records coach traces, model generations and user scores
// through the Langfuse ingestion API. An unconfigured client is a no-op.
package langfuse

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/blaisecz/nutrition-coach/internal/logger"
	"github.com/google/uuid"
)

const (
	ingestionPath = "/api/public/ingestion"
	sendTimeout   = 5 * time.Second
)

// Trace names used by the coach.
const (
	TraceDietPlan     = "diet-plan"
	TraceMealAnalysis = "meal-analysis"
)

// ScoreUserRating is the score name used for user feedback.
const ScoreUserRating = "user_rating"

// Observation levels. The coach marks fallback results as warnings.
const (
	LevelDefault = "DEFAULT"
	LevelWarning = "WARNING"
)

// ErrMissingTraceID is returned when a score does not reference a trace.
var ErrMissingTraceID = errors.New("langfuse score requires a trace ID")

// Client is the interface for Langfuse operations.
type Client interface {
	// IsEnabled returns true if Langfuse is configured and enabled.
	IsEnabled() bool
	// CreateTrace records a trace, plus its generation when one is given, and returns the trace ID.
	CreateTrace(ctx context.Context, in TraceInput) (string, error)
	// CreateScore attaches a score to an existing trace.
	CreateScore(ctx context.Context, in ScoreInput) error
}

// TraceInput describes one coach operation.
type TraceInput struct {
	ID       string // generated when empty
	UserID   string
	Name     string // TraceDietPlan or TraceMealAnalysis
	Input    any
	Output   any
	Tags     []string
	Metadata map[string]any

	// Generation is the model call behind the operation, if any.
	Generation *Generation
}

// Generation is a single model call nested under a trace.
type Generation struct {
	Name          string
	Model         string
	StartTime     time.Time
	EndTime       time.Time
	Input         any
	Output        any
	Level         string
	StatusMessage string
}

// ScoreInput attaches a numeric rating to a trace.
type ScoreInput struct {
	TraceID string
	Name    string // defaults to ScoreUserRating
	Value   float64
	Comment string
}

// Config holds Langfuse client configuration.
type Config struct {
	BaseURL     string
	PublicKey   string
	SecretKey   string
	Environment string

	// HTTPClient overrides the default client with a 10s timeout.
	HTTPClient *http.Client
}

type client struct {
	endpoint    string
	publicKey   string
	secretKey   string
	environment string
	enabled     bool
	httpClient  *http.Client
}

// NewClient creates a Langfuse client. Missing URL or keys give a disabled client.
func NewClient(cfg Config) Client {
	var missing string
	switch {
	case cfg.BaseURL == "":
		missing = "LANGFUSE_BASE_URL"
	case cfg.PublicKey == "":
		missing = "LANGFUSE_PUBLIC_KEY"
	case cfg.SecretKey == "":
		missing = "LANGFUSE_SECRET_KEY"
	}
	if missing != "" {
		logger.Info("langfuse disabled", "reason", missing+" is empty")
	} else {
		logger.Info("langfuse enabled", "base_url", cfg.BaseURL, "env", cfg.Environment)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	return &client{
		endpoint:    strings.TrimSuffix(cfg.BaseURL, "/") + ingestionPath,
		publicKey:   cfg.PublicKey,
		secretKey:   cfg.SecretKey,
		environment: cfg.Environment,
		enabled:     missing == "",
		httpClient:  httpClient,
	}
}

func (c *client) IsEnabled() bool {
	return c.enabled
}

func (c *client) CreateTrace(ctx context.Context, in TraceInput) (string, error) {
	if !c.enabled {
		return "", nil
	}

	traceID := in.ID
	if traceID == "" {
		traceID = uuid.NewString()
	}

	metadata := in.Metadata
	if c.environment != "" {
		if metadata == nil {
			metadata = make(map[string]any, 1)
		}
		metadata["environment"] = c.environment
	}

	events := []ingestionEvent{newEvent("trace-create", traceBody{
		ID:       traceID,
		Name:     in.Name,
		UserID:   in.UserID,
		Input:    in.Input,
		Output:   in.Output,
		Tags:     in.Tags,
		Metadata: metadata,
	})}

	if g := in.Generation; g != nil {
		name := g.Name
		if name == "" {
			name = in.Name
		}
		level := g.Level
		if level == "" {
			level = LevelDefault
		}
		events = append(events, newEvent("generation-create", generationBody{
			ID:            uuid.NewString(),
			TraceID:       traceID,
			Name:          name,
			Model:         g.Model,
			StartTime:     formatTime(g.StartTime),
			EndTime:       formatTime(g.EndTime),
			Input:         g.Input,
			Output:        g.Output,
			Level:         level,
			StatusMessage: g.StatusMessage,
		}))
	}

	go c.deliver(events, "trace")
	return traceID, nil
}

func (c *client) CreateScore(ctx context.Context, in ScoreInput) error {
	if !c.enabled {
		return nil
	}
	if in.TraceID == "" {
		return ErrMissingTraceID
	}
	if in.Name == "" {
		in.Name = ScoreUserRating
	}

	go c.deliver([]ingestionEvent{newEvent("score-create", scoreBody{
		ID:      uuid.NewString(),
		TraceID: in.TraceID,
		Name:    in.Name,
		Value:   in.Value,
		Comment: in.Comment,
	})}, "score")
	return nil
}

// deliver runs off the request path, so failures are only logged.
func (c *client) deliver(events []ingestionEvent, kind string) {
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	if err := c.sendBatch(ctx, events); err != nil {
		logger.Warn("langfuse delivery failed", "event", kind, "count", len(events), "err", err)
	}
}

func (c *client) sendBatch(ctx context.Context, events []ingestionEvent) error {
	body, err := json.Marshal(batchPayload{Batch: events})
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.publicKey, c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("ingestion failed with status %d", resp.StatusCode)
	}

	// 207 reports per-event outcomes
	var result batchResult
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&result); err == nil && len(result.Errors) > 0 {
		return fmt.Errorf("ingestion rejected %d of %d events: %s", len(result.Errors), len(events), result.Errors[0].Message)
	}
	return nil
}

func newEvent(kind string, body any) ingestionEvent {
	return ingestionEvent{
		ID:        uuid.NewString(),
		Type:      kind,
		Timestamp: formatTime(time.Now()),
		Body:      body,
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

type batchPayload struct {
	Batch []ingestionEvent `json:"batch"`
}

type batchResult struct {
	Errors []struct {
		ID      string `json:"id"`
		Status  int    `json:"status"`
		Message string `json:"message"`
	} `json:"errors"`
}

type ingestionEvent struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
	Body      any    `json:"body"`
}

type traceBody struct {
	ID       string         `json:"id"`
	Name     string         `json:"name,omitempty"`
	UserID   string         `json:"userId,omitempty"`
	Input    any            `json:"input,omitempty"`
	Output   any            `json:"output,omitempty"`
	Tags     []string       `json:"tags,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

type generationBody struct {
	ID            string `json:"id"`
	TraceID       string `json:"traceId"`
	Name          string `json:"name,omitempty"`
	Model         string `json:"model,omitempty"`
	StartTime     string `json:"startTime,omitempty"`
	EndTime       string `json:"endTime,omitempty"`
	Input         any    `json:"input,omitempty"`
	Output        any    `json:"output,omitempty"`
	Level         string `json:"level,omitempty"`
	StatusMessage string `json:"statusMessage,omitempty"`
}

type scoreBody struct {
	ID      string  `json:"id"`
	TraceID string  `json:"traceId"`
	Name    string  `json:"name"`
	Value   float64 `json:"value"`
	Comment string  `json:"comment,omitempty"`
}
