// Package music builds and validates music cue requests. There is no live
// music generation API; requests are archived locally and exported as data
// for whoever produces the cue.
package music

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/tourcue/tourcue/internal/models"
)

var (
	errEmptyPrompt = errors.New(
		"a music request needs a prompt describing the cue",
	)

	errInvalidDuration = errors.New(
		"the target duration must be greater than zero",
	)
)

// NewRequest validates the brief and returns an archivable music request.
func NewRequest(
	prompt string,
	seconds float64,
	style, mood string,
) (*models.MusicRequest, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, errEmptyPrompt
	}

	if seconds <= 0 {
		return nil, errInvalidDuration
	}

	return &models.MusicRequest{
		CreatedAt: time.Now(),
		Prompt:    prompt,
		Duration:  seconds,
		Style:     strings.TrimSpace(style),
		Mood:      strings.TrimSpace(mood),
	}, nil
}

// ExportJSON renders music requests as an indented JSON document for
// hand-off.
func ExportJSON(requests []*models.MusicRequest) ([]byte, error) {
	return json.MarshalIndent(requests, "", "  ")
}
