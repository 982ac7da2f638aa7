// Package tts is the client for the hosted text-to-speech service.
package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/tourcue/tourcue/ai"
)

const serviceName = "text-to-speech"

// Config configures the text-to-speech client.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration // default 2 minutes
}

// VoiceSettings tunes delivery for a synthesis request. Zero values use
// the service defaults.
type VoiceSettings struct {
	Stability       float64 `json:"stability,omitempty"`
	SimilarityBoost float64 `json:"similarity_boost,omitempty"`
	Style           float64 `json:"style,omitempty"`
}

// Client calls the synthesis endpoint over HTTP.
type Client struct {
	cfg    Config
	client *http.Client
}

// NewClient creates a new text-to-speech client.
func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Minute
	}

	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

type synthesizeRequest struct {
	Text     string        `json:"text"`
	Voice    string        `json:"voice"`
	Settings VoiceSettings `json:"voice_settings"`
}

// Synthesize converts text into spoken audio bytes using the given voice.
func (c *Client) Synthesize(
	ctx context.Context,
	text, voice string,
	settings VoiceSettings,
) ([]byte, error) {
	payload, err := json.Marshal(synthesizeRequest{
		Text:     text,
		Voice:    voice,
		Settings: settings,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.cfg.BaseURL+"/v1/speech",
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
