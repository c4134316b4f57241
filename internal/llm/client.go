// Package llm wraps the external text-completion service. The core only
// needs a prompt-in, text-out call; provider details stay behind
// CompletionClient.
package llm

import "context"

// CompletionClient defines the interface for completion providers.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ScriptedClient returns canned responses in order. It stands in for the
// real service in tests.
type ScriptedClient struct {
	Responses []string
	Err       error
	Calls     []string

	next int
}

// Complete records the prompt and returns the next scripted response.
func (c *ScriptedClient) Complete(_ context.Context, prompt string) (string, error) {
	c.Calls = append(c.Calls, prompt)
	if c.Err != nil {
		return "", c.Err
	}
	if c.next >= len(c.Responses) {
		return "", nil
	}
	resp := c.Responses[c.next]
	c.next++
	return resp, nil
}
