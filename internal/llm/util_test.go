package llm

import (
	"testing"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "json code block",
			input:    "```json\n{\"role\": \"Engineer\"}\n```",
			expected: `{"role": "Engineer"}`,
		},
		{
			name:     "generic code block",
			input:    "```\n{\"role\": \"Engineer\"}\n```",
			expected: `{"role": "Engineer"}`,
		},
		{
			name:     "code block with language identifier",
			input:    "```javascript\n{\"role\": \"Engineer\"}\n```",
			expected: `{"role": "Engineer"}`,
		},
		{
			name:     "plain JSON untouched",
			input:    `{"role": "Engineer"}`,
			expected: `{"role": "Engineer"}`,
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "  \n{\"role\": \"Engineer\"}\n  ",
			expected: `{"role": "Engineer"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CleanJSONBlock(tt.input)
			if result != tt.expected {
				t.Errorf("CleanJSONBlock() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestGetModel_FallbackChain(t *testing.T) {
	cfg := &Config{
		Provider: ProviderGemini,
		Models:   map[ModelTier]string{TierStandard: "gemini-2.5-flash"},
	}

	if got := cfg.GetModel(TierAdvanced); got != "gemini-2.5-flash" {
		t.Errorf("GetModel(TierAdvanced) = %q, want fallback to standard", got)
	}
}

func TestWithModel_DoesNotMutate(t *testing.T) {
	base := DefaultConfig()
	derived := base.WithModel(TierAdvanced, "gemini-exp")

	if base.GetModel(TierAdvanced) == "gemini-exp" {
		t.Error("WithModel mutated the base config")
	}
	if derived.GetModel(TierAdvanced) != "gemini-exp" {
		t.Error("WithModel did not apply the override")
	}
}
