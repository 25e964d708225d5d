package translation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/text/language"

	"cordwain/internal/domain/ticket"
	"cordwain/internal/shared/config"
	"cordwain/internal/shared/logger"
)

// Client calls the external machine-translation service. Callers treat
// every failure as non-fatal; a comment is stored with a blank variant
// rather than blocked.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	logger     logger.Interface
}

func NewClient(cfg *config.TranslationConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger.NewLogger().With("component", "translation"),
	}
}

type translateRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

type translateResponse struct {
	Translation string `json:"translation"`
}

func (c *Client) Translate(ctx context.Context, text string, source, target ticket.Language) (string, error) {
	if c.endpoint == "" {
		return "", fmt.Errorf("translation service is not configured")
	}
	if !source.IsValid() || !target.IsValid() {
		return "", fmt.Errorf("invalid language pair: %s -> %s", source, target)
	}

	// The service expects BCP 47 tags.
	payload, err := json.Marshal(translateRequest{
		Text:       text,
		SourceLang: languageTag(source),
		TargetLang: languageTag(target),
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal translation request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create translation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("translation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("translation service returned status %d: %s", resp.StatusCode, string(body))
	}

	var result translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode translation response: %w", err)
	}

	return result.Translation, nil
}

func languageTag(lang ticket.Language) string {
	tag, err := language.Parse(string(lang))
	if err != nil {
		return string(lang)
	}
	return tag.String()
}
