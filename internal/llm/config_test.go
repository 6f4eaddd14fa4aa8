package llm

import (
	"strings"
	"testing"
)

func clearLLMEnv(t *testing.T) {
	t.Helper()
	for _, b := range envBindings {
		t.Setenv(envPrefix+b.name, "")
	}
	for _, k := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}
}

func TestConfigFromEnv(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("LEARNINGHUB_LLM_PROVIDER", "OpenAI")
	t.Setenv("LEARNINGHUB_OPENAI_API_KEY", "sk-test")
	t.Setenv("LEARNINGHUB_OPENAI_BASE_URL", "http://localhost:8080/v1")

	cfg := ConfigFromEnv()
	if cfg.Provider != ProviderOpenAI {
		t.Errorf("Provider = %q, want %q", cfg.Provider, ProviderOpenAI)
	}
	if cfg.OpenAI.APIKey != "sk-test" {
		t.Errorf("OpenAI.APIKey = %q", cfg.OpenAI.APIKey)
	}
	if cfg.OpenAI.BaseURL != "http://localhost:8080/v1" {
		t.Errorf("OpenAI.BaseURL = %q", cfg.OpenAI.BaseURL)
	}
	if cfg.OpenAI.Model != "gpt-mini" {
		t.Errorf("OpenAI.Model = %q, want default", cfg.OpenAI.Model)
	}
}

func TestResolveConfig_FallsBackToDiscovery(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")

	cfg, err := ResolveConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Provider != ProviderAnthropic || cfg.Anthropic.APIKey != "sk-ant" {
		t.Errorf("cfg = %+v, want discovered anthropic", cfg)
	}
}

func TestResolveConfig_NothingSet(t *testing.T) {
	clearLLMEnv(t)

	_, err := ResolveConfig()
	if err == nil {
		t.Fatal("expected error when no key is configured")
	}
	if !strings.Contains(err.Error(), "LEARNINGHUB_ANTHROPIC_API_KEY") {
		t.Errorf("error = %v, want mention of LEARNINGHUB_ANTHROPIC_API_KEY", err)
	}
}

func TestConfig_Override(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Override("openrouter", "meta-llama/llama-3-8b", "https://gw.example/v1")

	if cfg.Provider != ProviderOpenRouter {
		t.Errorf("Provider = %q", cfg.Provider)
	}
	if cfg.OpenRouter.Model != "meta-llama/llama-3-8b" {
		t.Errorf("OpenRouter.Model = %q", cfg.OpenRouter.Model)
	}
	if cfg.OpenRouter.BaseURL != "https://gw.example/v1" {
		t.Errorf("OpenRouter.BaseURL = %q", cfg.OpenRouter.BaseURL)
	}
	if cfg.Anthropic.Model != "claude-haiku" {
		t.Errorf("Anthropic.Model = %q, should be untouched", cfg.Anthropic.Model)
	}

	cfg.Override("", "", "")
	if cfg.Provider != ProviderOpenRouter {
		t.Errorf("empty override changed provider to %q", cfg.Provider)
	}
}

func TestConfig_OverrideBaseURLPerProvider(t *testing.T) {
	tests := []struct {
		provider string
		get      func(Config) string
	}{
		{ProviderAnthropic, func(c Config) string { return c.Anthropic.BaseURL }},
		{ProviderGemini, func(c Config) string { return c.Gemini.BaseURL }},
		{ProviderOpenAI, func(c Config) string { return c.OpenAI.BaseURL }},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.Override(tt.provider, "", "http://proxy.local")
		if got := tt.get(cfg); got != "http://proxy.local" {
			t.Errorf("%s base URL = %q, want http://proxy.local", tt.provider, got)
		}
	}
}
