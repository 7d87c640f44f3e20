package langfuse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/blaisecz/nutrition-coach/internal/logger"
)

// Prompt sources, in lookup order.
const (
	PromptSourceLangfuse = "langfuse"
	PromptSourceCache    = "cache"
	PromptSourceBuiltin  = "builtin"
)

const promptFetchTimeout = 5 * time.Second

// PromptLoaderConfig describes where a named system prompt may come from.
type PromptLoaderConfig struct {
	BaseURL   string
	PublicKey string
	SecretKey string

	PromptName  string
	PromptLabel string
	SavePath    string

	// Fallback is returned when neither Langfuse nor the local file has the prompt.
	Fallback string
}

// Prompt is a resolved system prompt.
type Prompt struct {
	Name    string
	Text    string
	Source  string
	Version int
	// Model is set when the Langfuse prompt config pins a model.
	Model string
}

var errLangfuseDisabled = errors.New("langfuse integration disabled")

// CachePath returns the local cache file for a named prompt inside dir.
func CachePath(dir, promptName string) string {
	if dir == "" || promptName == "" {
		return ""
	}
	return filepath.Join(dir, promptName+".txt")
}

// LoadPrompt resolves a prompt from Langfuse, then the local cache, then the built-in fallback.
// A prompt fetched from Langfuse refreshes the cache.
func LoadPrompt(ctx context.Context, cfg PromptLoaderConfig) (Prompt, error) {
	if cfg.PromptName != "" {
		prompt, err := fetchPrompt(ctx, cfg)
		if err == nil {
			if err := writeCache(cfg.SavePath, prompt.Text); err != nil {
				logger.Warn("failed to cache prompt locally", "prompt", cfg.PromptName, "err", err)
			}
			logger.Info("prompt loaded", "prompt", cfg.PromptName, "source", prompt.Source, "version", prompt.Version)
			return prompt, nil
		}
		if !errors.Is(err, errLangfuseDisabled) {
			logger.Warn("langfuse prompt fetch failed", "prompt", cfg.PromptName, "err", err)
		}
	}

	text, err := readCache(cfg.SavePath)
	if err == nil && strings.TrimSpace(text) != "" {
		return Prompt{Name: cfg.PromptName, Text: text, Source: PromptSourceCache}, nil
	}
	if cfg.Fallback != "" {
		logger.Debug("using built-in prompt", "prompt", cfg.PromptName)
		return Prompt{Name: cfg.PromptName, Text: cfg.Fallback, Source: PromptSourceBuiltin}, nil
	}
	if err == nil {
		err = fmt.Errorf("local prompt file %s is empty", cfg.SavePath)
	}
	return Prompt{}, err
}

type promptResponse struct {
	Name    string          `json:"name"`
	Version int             `json:"version"`
	Type    string          `json:"type"`
	Prompt  json.RawMessage `json:"prompt"`
	Config  struct {
		Model string `json:"model"`
	} `json:"config"`
}

func fetchPrompt(ctx context.Context, cfg PromptLoaderConfig) (Prompt, error) {
	if cfg.BaseURL == "" || cfg.PublicKey == "" || cfg.SecretKey == "" {
		return Prompt{}, errLangfuseDisabled
	}

	endpoint, err := promptURL(cfg.BaseURL, cfg.PromptName, cfg.PromptLabel)
	if err != nil {
		return Prompt{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, promptFetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Prompt{}, fmt.Errorf("create prompt request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(cfg.PublicKey, cfg.SecretKey)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return Prompt{}, fmt.Errorf("call Langfuse prompt API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return Prompt{}, fmt.Errorf("Langfuse prompt API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var pr promptResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return Prompt{}, fmt.Errorf("decode Langfuse prompt response: %w", err)
	}

	text, err := pr.text()
	if err != nil {
		return Prompt{}, err
	}
	if strings.TrimSpace(text) == "" {
		return Prompt{}, fmt.Errorf("Langfuse prompt %q is empty", cfg.PromptName)
	}

	return Prompt{
		Name:    cfg.PromptName,
		Text:    text,
		Source:  PromptSourceLangfuse,
		Version: pr.Version,
		Model:   pr.Config.Model,
	}, nil
}

func promptURL(baseURL, name, label string) (string, error) {
	parsed, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return "", fmt.Errorf("invalid LANGFUSE_BASE_URL: %w", err)
	}
	parsed.Path = strings.TrimSuffix(parsed.Path, "/") + "/api/public/v2/prompts/" + url.PathEscape(name)
	if label != "" {
		parsed.RawQuery = url.Values{"label": {label}}.Encode()
	}
	return parsed.String(), nil
}

// text renders text prompts as-is and chat prompts as "ROLE: content" blocks.
func (pr promptResponse) text() (string, error) {
	switch pr.Type {
	case "", "text":
		var s string
		if err := json.Unmarshal(pr.Prompt, &s); err != nil {
			return "", fmt.Errorf("parse text prompt: %w", err)
		}
		return s, nil
	case "chat":
		var messages []chatMessage
		if err := json.Unmarshal(pr.Prompt, &messages); err != nil {
			return "", fmt.Errorf("parse chat prompt: %w", err)
		}
		blocks := make([]string, 0, len(messages))
		for _, m := range messages {
			if block := m.block(); block != "" {
				blocks = append(blocks, block)
			}
		}
		return strings.Join(blocks, "\n\n"), nil
	default:
		return "", fmt.Errorf("unsupported prompt type %q", pr.Type)
	}
}

type chatMessage struct {
	Type    string `json:"type"`
	Role    string `json:"role"`
	Content string `json:"content"`
	Name    string `json:"name"`
}

func (m chatMessage) block() string {
	content := m.Content
	if m.Type == "placeholder" {
		if m.Name == "" {
			return ""
		}
		content = "{{" + m.Name + "}}"
	}
	if content == "" {
		return ""
	}
	role := m.Role
	if role == "" {
		role = "message"
	}
	return strings.ToUpper(role) + ": " + content
}

func readCache(path string) (string, error) {
	if path == "" {
		return "", errors.New("no local prompt file configured")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read local prompt file: %w", err)
	}
	return string(data), nil
}

// writeCache replaces the cache file atomically so readers never see a partial prompt.
func writeCache(path, prompt string) error {
	if path == "" {
		return nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(prompt); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
