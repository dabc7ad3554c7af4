package llm

import "testing"

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("DIFFUSED_LLM_PROVIDER", "openai")
	t.Setenv("DIFFUSED_OPENAI_API_KEY", "sk-test")
	t.Setenv("DIFFUSED_OPENAI_MODEL", "gpt-4o")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("Provider = %q, want openai", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" {
		t.Errorf("APIKey = %q, want sk-test", cfg.OpenAI.APIKey)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("Model = %q, want gpt-4o", cfg.OpenAI.Model)
	}
	// Untouched sections keep defaults.
	if cfg.Anthropic.Model != "claude-haiku" {
		t.Errorf("Anthropic.Model = %q, want default", cfg.Anthropic.Model)
	}
}

func TestDiscoverConfigPriority(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "ak")
	t.Setenv("OPENAI_API_KEY", "ok")
	t.Setenv("GEMINI_API_KEY", "")

	cfg, found := DiscoverConfig()
	if !found {
		t.Fatal("expected a discovered config")
	}
	if cfg.Provider != "anthropic" {
		t.Errorf("Provider = %q, want anthropic (highest priority)", cfg.Provider)
	}
}

func TestDiscoverConfigNone(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	if _, found := DiscoverConfig(); found {
		t.Error("expected no discovered config with no keys set")
	}
}

func TestValidateRequiresKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "anthropic"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error with missing anthropic key")
	}

	cfg.Anthropic.APIKey = "ak"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate with key: %v", err)
	}
}

func TestValidateMockNeedsNoKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate(mock): %v", err)
	}
}

func TestValidateUnknownProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "bard"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestResolveModelPassthrough(t *testing.T) {
	if got := resolveModel("claude-haiku", anthropicModels); got != "claude-haiku-4-5-20251001" {
		t.Errorf("resolveModel friendly = %q", got)
	}
	if got := resolveModel("some-direct-id", anthropicModels); got != "some-direct-id" {
		t.Errorf("resolveModel passthrough = %q", got)
	}
}
