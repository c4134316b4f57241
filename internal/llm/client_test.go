package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptedClientReturnsResponsesInOrder(t *testing.T) {
	c := &ScriptedClient{Responses: []string{"first", "second"}}

	resp, err := c.Complete(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "first", resp)

	resp, err = c.Complete(context.Background(), "p2")
	require.NoError(t, err)
	assert.Equal(t, "second", resp)

	// Exhausted scripts return empty, not an error.
	resp, err = c.Complete(context.Background(), "p3")
	require.NoError(t, err)
	assert.Empty(t, resp)

	assert.Equal(t, []string{"p1", "p2", "p3"}, c.Calls)
}

func TestScriptedClientError(t *testing.T) {
	boom := errors.New("boom")
	c := &ScriptedClient{Err: boom}

	_, err := c.Complete(context.Background(), "p")
	assert.ErrorIs(t, err, boom)
	assert.Len(t, c.Calls, 1, "prompt recorded even on failure")
}

func TestNewGeminiClientRequiresAPIKey(t *testing.T) {
	_, err := NewGeminiClient(GeminiConfig{})
	assert.Error(t, err)
}

func TestNewGeminiClientDefaultsModel(t *testing.T) {
	c, err := NewGeminiClient(GeminiConfig{APIKey: "test-key"})
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.5-flash", c.Model())

	c, err = NewGeminiClient(GeminiConfig{APIKey: "test-key", Model: "gemini-2.5-pro"})
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.5-pro", c.Model())
}
