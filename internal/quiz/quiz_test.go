package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionBank(t *testing.T) {
	qs := Questions()
	require.Len(t, qs, 2)

	assert.Equal(t, "decision-style", qs[0].ID)
	assert.Equal(t, "How do you typically make decisions?", qs[0].Prompt)
	require.Len(t, qs[0].Choices, 3)

	assert.Equal(t, "risk-tolerance", qs[1].ID)
	assert.Equal(t, "What's your risk tolerance?", qs[1].Prompt)
	require.Len(t, qs[1].Choices, 3)

	// Every choice value maps onto the closed enums.
	for _, c := range qs[0].Choices {
		_, err := ParseStyle(c.Value)
		assert.NoError(t, err, c.Value)
	}
	for _, c := range qs[1].Choices {
		_, err := ParseRisk(c.Value)
		assert.NoError(t, err, c.Value)
	}
}

func TestParseStyle(t *testing.T) {
	style, err := ParseStyle("intuitive")
	require.NoError(t, err)
	assert.Equal(t, StyleIntuitive, style)

	_, err = ParseStyle("reckless")
	assert.Error(t, err)
	_, err = ParseStyle("")
	assert.Error(t, err)
}

func TestParseRisk(t *testing.T) {
	risk, err := ParseRisk("adventurous")
	require.NoError(t, err)
	assert.Equal(t, RiskAdventurous, risk)

	_, err = ParseRisk("wild")
	assert.Error(t, err)
}

func TestAnswersComplete(t *testing.T) {
	var a Answers
	assert.False(t, a.Complete())
	a.DecisionStyle = StyleAnalytical
	assert.False(t, a.Complete())
	a.RiskTolerance = RiskConservative
	assert.True(t, a.Complete())
}
