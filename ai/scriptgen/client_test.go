package scriptgen_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tourcue/tourcue/ai"
	"github.com/tourcue/tourcue/ai/scriptgen"
)

func TestGenerate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/v1/scripts" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}

			var payload struct {
				Prompt string `json:"prompt"`
			}

			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
				t.Fatalf("decoding request: %v", err)
			}

			if payload.Prompt != "describe the rotunda" {
				t.Errorf("prompt = %q", payload.Prompt)
			}

			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"text":"The rotunda rises forty metres above you."}`)
		},
	))
	defer server.Close()

	client := scriptgen.NewClient(scriptgen.Config{
		BaseURL: server.URL,
		APIKey:  "secret",
	})

	text, err := client.Generate(context.Background(), "describe the rotunda")
	if err != nil {
		t.Fatal(err)
	}

	if text != "The rotunda rises forty metres above you." {
		t.Errorf("script = %q", text)
	}
}

func TestGenerateServerFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		},
	))
	defer server.Close()

	client := scriptgen.NewClient(scriptgen.Config{BaseURL: server.URL})

	_, err := client.Generate(context.Background(), "prompt")

	if !errors.Is(err, ai.ErrServer) {
		t.Errorf("error = %v, want %v", err, ai.ErrServer)
	}

	var classified *ai.Error
	if !errors.As(err, &classified) {
		t.Fatalf("error %v is not an *ai.Error", err)
	}

	if classified.Status != http.StatusBadGateway {
		t.Errorf("status = %d, want %d", classified.Status, http.StatusBadGateway)
	}
}
