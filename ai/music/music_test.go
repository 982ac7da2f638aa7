package music_test

import (
	"encoding/json"
	"testing"

	"github.com/tourcue/tourcue/ai/music"
	"github.com/tourcue/tourcue/internal/models"
)

func TestNewRequest(t *testing.T) {
	req, err := music.NewRequest(
		"  Slow strings under the narration  ",
		45,
		"orchestral",
		"calm",
	)
	if err != nil {
		t.Fatal(err)
	}

	if req.Prompt != "Slow strings under the narration" {
		t.Errorf("prompt = %q", req.Prompt)
	}

	if req.Duration != 45 {
		t.Errorf("duration = %v, want 45", req.Duration)
	}

	if req.CreatedAt.IsZero() {
		t.Error("CreatedAt is not set")
	}
}

func TestNewRequestValidation(t *testing.T) {
	table := []struct {
		name    string
		prompt  string
		seconds float64
	}{
		{"empty prompt", "", 30},
		{"whitespace prompt", "   ", 30},
		{"zero duration", "a cue", 0},
		{"negative duration", "a cue", -5},
	}

	for _, tc := range table {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := music.NewRequest(tc.prompt, tc.seconds, "", ""); err == nil {
				t.Error("expected an error, got none")
			}
		})
	}
}

func TestExportJSON(t *testing.T) {
	requests := []*models.MusicRequest{
		{Prompt: "Entrance theme", Duration: 30, Style: "ambient"},
		{Prompt: "Exit sting", Duration: 5},
	}

	b, err := music.ExportJSON(requests)
	if err != nil {
		t.Fatal(err)
	}

	var decoded []*models.MusicRequest

	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}

	if len(decoded) != 2 {
		t.Fatalf("decoded %d requests, want 2", len(decoded))
	}

	if decoded[0].Prompt != "Entrance theme" {
		t.Errorf("prompt = %q", decoded[0].Prompt)
	}
}
