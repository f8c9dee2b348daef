package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPrompt(t *testing.T) {
	prompt, err := BuildPrompt("Photosynthesis", 7)
	require.NoError(t, err)

	assert.Contains(t, prompt, `"Photosynthesis"`)
	assert.Contains(t, prompt, "Create a 7-slide revision deck")
	assert.Contains(t, prompt, "EXACTLY 7 slides")
	assert.Contains(t, prompt, `"slides"`)
	assert.Contains(t, prompt, "overview|core_concepts|active_recall|examples|exam_tips")
}

func TestBuildRetryPrompt(t *testing.T) {
	prompt, err := BuildRetryPrompt("Photosynthesis", 4)
	require.NoError(t, err)

	assert.Contains(t, prompt, "RETURN JSON ONLY.")
	assert.Contains(t, prompt, "EXACTLY 4 slides")
	assert.Contains(t, prompt, "TOPIC: Photosynthesis")
}

func TestRetryPromptIsTerser(t *testing.T) {
	primary, err := BuildPrompt("Thermodynamics", 5)
	require.NoError(t, err)
	retry, err := BuildRetryPrompt("Thermodynamics", 5)
	require.NoError(t, err)

	assert.Less(t, len(retry), len(primary))
}
