package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_KnownKeys(t *testing.T) {
	for _, key := range []string{"search", "skills-gap", "interview-prep", "career-strategy"} {
		t.Run(key, func(t *testing.T) {
			prompt, err := Get("tasks.json", key)
			require.NoError(t, err)
			assert.NotEmpty(t, prompt)
		})
	}
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := Get("tasks.json", "does-not-exist")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist")
}

func TestGet_UnknownFile(t *testing.T) {
	_, err := Get("missing.json", "search")
	assert.Error(t, err)
}

func TestMustGet_PanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("tasks.json", "nope")
	})
}

func TestFormat(t *testing.T) {
	template := "Search for {{.Role}} in {{.Location}}."
	result := Format(template, map[string]string{
		"Role":     "Data Scientist",
		"Location": "New York",
	})
	assert.Equal(t, "Search for Data Scientist in New York.", result)
}

func TestFormat_SearchTemplate(t *testing.T) {
	template := MustGet("tasks.json", "search")
	result := Format(template, map[string]string{
		"Role":        "Go Developer",
		"Location":    "Austin",
		"ResultCount": "5",
		"Listings":    "Title: Go Developer\n---",
	})

	assert.Contains(t, result, "Go Developer")
	assert.Contains(t, result, "Austin")
	assert.False(t, strings.Contains(result, "{{."), "all placeholders should be substituted")
}
