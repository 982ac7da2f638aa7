// Package sfx is the client for the hosted sound effect generation
// service.
package sfx

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/tourcue/tourcue/ai"
)

const serviceName = "sound-effects"

// Config configures the sound effect client.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration // default 2 minutes
}

// Client calls the sound effect endpoint over HTTP.
type Client struct {
	cfg    Config
	client *http.Client
}

// NewClient creates a new sound effect client.
func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Minute
	}

	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

type generateRequest struct {
	Description string  `json:"description"`
	Duration    float64 `json:"duration_seconds"`
}

// Generate produces an audio effect matching the description, targeting
// the given duration in seconds.
func (c *Client) Generate(
	ctx context.Context,
	description string,
	seconds float64,
) ([]byte, error) {
	payload, err := json.Marshal(generateRequest{
		Description: description,
		Duration:    seconds,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.cfg.BaseURL+"/v1/effects",
		bytes.NewReader(payload),
	)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, ai.ClassifyTransport(serviceName, err)
	}

	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, ai.ClassifyStatus(serviceName, resp.StatusCode)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, ai.BadPayload(serviceName)
	}

	return audio, nil
}
