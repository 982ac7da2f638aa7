// Package scriptgen is the client for the hosted narration script
// generation service.
package scriptgen

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/tourcue/tourcue/ai"
)

const serviceName = "script-generation"

// Config configures the script generation client.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration // default 60 seconds
}

// Client calls the script generation endpoint over HTTP.
type Client struct {
	cfg    Config
	client *http.Client
}

// NewClient creates a new script generation client.
func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}

	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

type generateRequest struct {
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	Text string `json:"text"`
}

// Generate produces narration text for the given prompt.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(generateRequest{Prompt: prompt})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.cfg.BaseURL+"/v1/scripts",
		bytes.NewReader(payload),
	)
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", ai.ClassifyTransport(serviceName, err)
	}

	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", ai.ClassifyStatus(serviceName, resp.StatusCode)
	}

	var parsed generateResponse

	if err = json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", ai.BadPayload(serviceName)
	}

	return parsed.Text, nil
}
