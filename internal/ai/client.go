package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mcamargo/lexgym/internal/logger"
	"github.com/mcamargo/lexgym/internal/models"
)

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *logger.Logger
}

func New(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.Default().WithPrefix("ai"),
	}
}

func (c *Client) post(ctx context.Context, path string, body any) (*http.Response, error) {
	log := logger.FromContext(ctx).WithPrefix("ai")

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		log.Error("failed to create request: %v", err)
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("request to %s failed: %v", path, err)
		return nil, err
	}
	log.Debug("response from %s received in %v, status=%d", path, time.Since(start), resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		resp.Body.Close()
		log.Error("request to %s failed: status=%d, body=%s", path, resp.StatusCode, string(body))
		return nil, fmt.Errorf("%s status %d: %s", path, resp.StatusCode, string(body))
	}
	return resp, nil
}

func (c *Client) Generate(ctx context.Context, req GenerateRequest) (*GeneratedContent, error) {
	log := logger.FromContext(ctx).WithPrefix("ai").WithField("module", req.Module)
	log.Debug("generating content: kind=%s", req.Kind)

	resp, err := c.post(ctx, "/v1/generate", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out GeneratedContent
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		log.Error("failed to decode generate response: %v", err)
		return nil, err
	}
	log.Info("generated %s content (%d bytes)", out.Module, len(out.Payload))
	return &out, nil
}

func (c *Client) EnrichWord(ctx context.Context, word string) (*models.Enrichment, error) {
	log := logger.FromContext(ctx).WithPrefix("ai").WithField("word", word)
	log.Debug("requesting word enrichment")

	resp, err := c.post(ctx, "/v1/enrich", map[string]string{"word": word})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out models.Enrichment
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		log.Error("failed to decode enrichment response: %v", err)
		return nil, err
	}
	log.Info("enrichment received for word %q", word)
	return &out, nil
}

func (c *Client) SynthesizeSpeech(ctx context.Context, text, voice string) ([]byte, error) {
	log := logger.FromContext(ctx).WithPrefix("ai").WithField("voice", voice)
	log.Debug("synthesizing speech for %d characters", len(text))

	resp, err := c.post(ctx, "/v1/speech", map[string]string{"text": text, "voice": voice})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("failed to read audio response: %v", err)
		return nil, err
	}
	log.Info("synthesized %d bytes of audio", len(audio))
	return audio, nil
}
