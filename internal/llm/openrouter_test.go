package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOpenRouterProvider_AttributionHeaders(t *testing.T) {
	var got http.Header
	var model any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		model = body["model"]
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatCompletion("ok", "stop"))
	}))
	t.Cleanup(server.Close)

	p, err := NewOpenRouterProvider(OpenRouterConfig{
		APIKey:  "sk-or-test",
		Model:   "gpt-mini",
		BaseURL: server.URL,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "hi"}}}); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if got.Get("X-Title") != "LearningHub" {
		t.Errorf("X-Title = %q", got.Get("X-Title"))
	}
	if got.Get("HTTP-Referer") == "" {
		t.Error("missing HTTP-Referer")
	}
	if got.Get("Authorization") != "Bearer sk-or-test" {
		t.Errorf("Authorization = %q", got.Get("Authorization"))
	}
	// OpenRouter IDs are not remapped through the OpenAI friendly names.
	if model != "gpt-mini" {
		t.Errorf("model sent = %v, want gpt-mini", model)
	}
	if p.Name() != ProviderOpenRouter {
		t.Errorf("Name = %q", p.Name())
	}
}

func TestNewOpenRouterProvider_RequiresKey(t *testing.T) {
	if _, err := NewOpenRouterProvider(OpenRouterConfig{Model: "google/gemini-2.5-flash"}); err == nil {
		t.Fatal("expected error for empty API key")
	}
}
