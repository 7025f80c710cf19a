package langfuse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/blaisecz/fitbit-sleep/internal/logging"
	"go.uber.org/zap"
)

// PromptConfig names a prompt managed in Langfuse.
type PromptConfig struct {
	BaseURL   string
	PublicKey string
	SecretKey string

	Name  string
	Label string

	HTTPClient *http.Client
	Logger     *zap.Logger
}

var errPromptDisabled = errors.New("langfuse prompt management disabled")

// LoadPrompt fetches the named prompt from Langfuse. When no prompt is named,
// Langfuse is not configured, or the fetch fails, fallback is returned.
func LoadPrompt(ctx context.Context, cfg PromptConfig, fallback string) string {
	logger := logging.OrNop(cfg.Logger)

	prompt, err := fetchPrompt(ctx, cfg)
	switch {
	case err == nil && strings.TrimSpace(prompt) != "":
		logger.Info("using managed prompt", zap.String("name", cfg.Name), zap.String("label", cfg.Label))
		return prompt
	case err != nil && !errors.Is(err, errPromptDisabled):
		logger.Warn("prompt fetch failed, using built-in prompt", zap.String("name", cfg.Name), zap.Error(err))
	}
	return fallback
}

func fetchPrompt(ctx context.Context, cfg PromptConfig) (string, error) {
	if cfg.Name == "" || !(Config{BaseURL: cfg.BaseURL, PublicKey: cfg.PublicKey, SecretKey: cfg.SecretKey}).enabled() {
		return "", errPromptDisabled
	}

	parsed, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/"))
	if err != nil {
		return "", fmt.Errorf("invalid LANGFUSE_BASE_URL: %w", err)
	}
	parsed.Path = strings.TrimSuffix(parsed.Path, "/") + "/api/public/v2/prompts/" + cfg.Name
	if cfg.Label != "" {
		query := parsed.Query()
		query.Set("label", cfg.Label)
		parsed.RawQuery = query.Encode()
	}

	requestCtx, cancel := context.WithTimeout(ctx, asyncTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, http.MethodGet, parsed.String(), nil)
	if err != nil {
		return "", fmt.Errorf("create prompt request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(cfg.PublicKey, cfg.SecretKey)

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call prompt API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("prompt API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var promptResp struct {
		Type   string          `json:"type"`
		Prompt json.RawMessage `json:"prompt"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&promptResp); err != nil {
		return "", fmt.Errorf("decode prompt response: %w", err)
	}

	switch promptResp.Type {
	case "", "text":
		var text string
		if err := json.Unmarshal(promptResp.Prompt, &text); err != nil {
			return "", fmt.Errorf("parse text prompt: %w", err)
		}
		return text, nil
	case "chat":
		var messages []chatPromptMessage
		if err := json.Unmarshal(promptResp.Prompt, &messages); err != nil {
			return "", fmt.Errorf("parse chat prompt: %w", err)
		}
		return systemMessages(messages), nil
	default:
		return "", fmt.Errorf("unsupported prompt type %q", promptResp.Type)
	}
}

type chatPromptMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// systemMessages joins the system role messages of a chat prompt. The user
// message is always built from the report, so other roles are ignored.
func systemMessages(messages []chatPromptMessage) string {
	var parts []string
	for _, msg := range messages {
		if msg.Role == "system" && msg.Content != "" {
			parts = append(parts, msg.Content)
		}
	}
	return strings.Join(parts, "\n\n")
}
