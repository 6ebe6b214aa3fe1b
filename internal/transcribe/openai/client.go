package openai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hajime-ito/catalog-extractor/internal/entity"
)

// Client calls the OpenAI chat completions API with image content.
type Client struct {
	cfg Config
	h   *http.Client
	log *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	cfg = cfg.withDefaults()
	return &Client{
		cfg: cfg,
		h:   &http.Client{Timeout: cfg.Timeout},
		log: logger,
	}
}

// Transcribe renders one image file into catalog text plus any structured
// products the model managed to read directly.
func (c *Client) Transcribe(ctx context.Context, path string, language string) (entity.Transcription, error) {
	rid := uuid.NewString()
	start := time.Now()

	raw, err := os.ReadFile(path)
	if err != nil {
		return entity.Transcription{}, fmt.Errorf("read image: %w", err)
	}
	dataURL := fmt.Sprintf("data:%s;base64,%s", mimeForExt(filepath.Ext(path)), base64.StdEncoding.EncodeToString(raw))

	c.log.Info("vision.transcribe.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"file", filepath.Base(path),
		"bytes", len(raw),
	)

	body := map[string]any{
		"model":       c.cfg.Model,
		"temperature": c.cfg.Temperature,
		"max_tokens":  c.cfg.MaxTokens,
		"messages": []map[string]any{
			{"role": "system", "content": systemPrompt(language)},
			{
				"role": "user",
				"content": []map[string]any{
					{"type": "text", "text": userPrompt()},
					{"type": "image_url", "image_url": map[string]any{"url": dataURL, "detail": "high"}},
				},
			},
		},
	}

	respBody, err := c.post(ctx, c.cfg.BaseURL+"/chat/completions", body)
	if err != nil {
		c.log.Error("vision.transcribe.http_error", "req_id", rid, "error", err)
		return entity.Transcription{}, err
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		c.log.Error("vision.transcribe.decode_error", "req_id", rid, "error", err)
		return entity.Transcription{}, fmt.Errorf("decode response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		c.log.Error("vision.transcribe.no_choices", "req_id", rid)
		return entity.Transcription{}, fmt.Errorf("no choices in response")
	}

	tr, err := ParseReply(parsed.Choices[0].Message.Content)
	if err != nil {
		c.log.Error("vision.transcribe.parse_error", "req_id", rid, "error", err)
		return entity.Transcription{}, err
	}
	tr.Language = language
	tr.Pages = 1
	tr.Method = "openai_vision"

	c.log.Info("vision.transcribe.ok",
		"req_id", rid,
		"chars", len(tr.Text),
		"products", len(tr.Products),
		"confidence", tr.Confidence,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return tr, nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(mustJSON(body)))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.h.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http post: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("api status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}
	return respBody, nil
}

func mustJSON(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}

func mimeForExt(ext string) string {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "png":
		return "image/png"
	case "gif":
		return "image/gif"
	case "webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}
