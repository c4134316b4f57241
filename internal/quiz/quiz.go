// Package quiz defines the personality quiz: the question bank shown to the
// user and the answers that personalize every analysis prompt.
package quiz

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Style is how the user prefers to reach decisions.
type Style string

const (
	StyleAnalytical    Style = "analytical"
	StyleIntuitive     Style = "intuitive"
	StyleCollaborative Style = "collaborative"
)

// Risk is the user's appetite for risk.
type Risk string

const (
	RiskConservative Risk = "conservative"
	RiskModerate     Risk = "moderate"
	RiskAdventurous  Risk = "adventurous"
)

// Answers holds the user's quiz results. Zero values mean unanswered.
// Answers are set once per session and reused in every analysis prompt.
type Answers struct {
	DecisionStyle Style
	RiskTolerance Risk
}

// Complete reports whether both questions have been answered.
func (a Answers) Complete() bool {
	return a.DecisionStyle != "" && a.RiskTolerance != ""
}

// Choice is one selectable answer to a question.
type Choice struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

// Question is one quiz question with its fixed set of choices.
type Question struct {
	ID      string   `yaml:"id"`
	Prompt  string   `yaml:"prompt"`
	Choices []Choice `yaml:"choices"`
}

type questionBank struct {
	Questions []Question `yaml:"questions"`
}

//go:embed questions.yaml
var questionsYAML []byte

var questions []Question

func init() {
	var bank questionBank
	if err := yaml.Unmarshal(questionsYAML, &bank); err != nil {
		panic(fmt.Sprintf("quiz: invalid embedded question bank: %v", err))
	}
	questions = bank.Questions
}

// Questions returns the question bank in display order. Callers must not
// mutate the returned slice.
func Questions() []Question {
	return questions
}

// ParseStyle maps a choice value to a Style.
func ParseStyle(v string) (Style, error) {
	switch Style(v) {
	case StyleAnalytical, StyleIntuitive, StyleCollaborative:
		return Style(v), nil
	}
	return "", fmt.Errorf("unknown decision style %q", v)
}

// ParseRisk maps a choice value to a Risk.
func ParseRisk(v string) (Risk, error) {
	switch Risk(v) {
	case RiskConservative, RiskModerate, RiskAdventurous:
		return Risk(v), nil
	}
	return "", fmt.Errorf("unknown risk tolerance %q", v)
}
