package langfuse

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// PromptConfig locates the coaching system prompt in Langfuse and its local cache.
type PromptConfig struct {
	Config
	Name      string
	Label     string
	CachePath string
}

var errPromptSourceDisabled = errors.New("langfuse prompt source disabled")

// LoadPrompt fetches the named prompt from Langfuse and caches it on disk.
// When Langfuse is unreachable or unconfigured the cached copy is returned.
func LoadPrompt(ctx context.Context, cfg PromptConfig, logger *zap.Logger) (string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	prompt, err := fetchPrompt(ctx, cfg)
	switch {
	case err == nil:
		if cacheErr := writeCache(cfg.CachePath, prompt); cacheErr != nil {
			logger.Warn("prompt cache write failed", zap.String("path", cfg.CachePath), zap.Error(cacheErr))
		}
		return prompt, nil
	case !errors.Is(err, errPromptSourceDisabled):
		logger.Warn("prompt fetch failed, using cache", zap.String("prompt", cfg.Name), zap.Error(err))
	}

	return readCache(cfg.CachePath)
}

func fetchPrompt(ctx context.Context, cfg PromptConfig) (string, error) {
	if cfg.Name == "" || !cfg.enabled() {
		return "", errPromptSourceDisabled
	}

	endpoint, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/"))
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	endpoint = endpoint.JoinPath("api", "public", "v2", "prompts", cfg.Name)
	if cfg.Label != "" {
		endpoint.RawQuery = url.Values{"label": {cfg.Label}}.Encode()
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return "", fmt.Errorf("create prompt request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(cfg.PublicKey, cfg.SecretKey)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("prompt request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read prompt response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("prompt api returned %d", resp.StatusCode)
	}

	return promptText(body)
}

// promptText extracts text from a text or chat prompt document. Chat
// messages are joined as "ROLE: content" blocks.
func promptText(doc []byte) (string, error) {
	if !gjson.ValidBytes(doc) {
		return "", errors.New("prompt response is not valid json")
	}

	parsed := gjson.ParseBytes(doc)
	prompt := parsed.Get("prompt")

	switch kind := parsed.Get("type").String(); kind {
	case "", "text":
		if prompt.Type != gjson.String {
			return "", errors.New("text prompt is not a string")
		}
		return prompt.String(), nil
	case "chat":
		var blocks []string
		for _, msg := range prompt.Array() {
			content := msg.Get("content").String()
			if msg.Get("type").String() == "placeholder" {
				content = ""
				if name := msg.Get("name").String(); name != "" {
					content = "{{" + name + "}}"
				}
			}
			if content == "" {
				continue
			}
			role := msg.Get("role").String()
			if role == "" {
				role = "message"
			}
			blocks = append(blocks, strings.ToUpper(role)+": "+content)
		}
		return strings.Join(blocks, "\n\n"), nil
	default:
		return "", fmt.Errorf("unsupported prompt type %q", kind)
	}
}

func readCache(path string) (string, error) {
	if path == "" {
		return "", errors.New("no prompt cache configured")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read prompt cache: %w", err)
	}
	return string(data), nil
}

func writeCache(path, prompt string) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(prompt), 0o600)
}
