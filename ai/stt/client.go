// Package stt is the client for the hosted speech-to-text service.
package stt

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/tourcue/tourcue/ai"
)

const serviceName = "speech-to-text"

// Config configures the speech-to-text client.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration // default 2 minutes
}

// Client calls the transcription endpoint over HTTP.
type Client struct {
	cfg    Config
	client *http.Client
}

// NewClient creates a new speech-to-text client.
func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Minute
	}

	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

type transcribeResponse struct {
	Text string `json:"text"`
}

// Transcribe uploads raw audio and returns the transcript text.
func (c *Client) Transcribe(
	ctx context.Context,
	audio io.Reader,
	filename string,
) (string, error) {
	var body bytes.Buffer

	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}

	if _, err = io.Copy(part, audio); err != nil {
		return "", err
	}

	if err = writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.cfg.BaseURL+"/v1/transcripts",
		&body,
	)
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", ai.ClassifyTransport(serviceName, err)
	}

	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", ai.ClassifyStatus(serviceName, resp.StatusCode)
	}

	var parsed transcribeResponse

	if err = json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", ai.BadPayload(serviceName)
	}

	return parsed.Text, nil
}
