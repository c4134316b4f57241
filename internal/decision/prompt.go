package decision

import (
	"fmt"
	"strings"
)

// noneProvided is substituted for empty pros/cons so the model does not
// mistake a blank field for truncated input.
const noneProvided = "None provided"

// Profile carries the quiz answers that personalize every analysis prompt.
type Profile struct {
	DecisionStyle string
	RiskTolerance string
}

// BuildPrompt assembles the single prompt string sent to the completion
// service: the decision, its options, the user profile, and the instruction
// requesting a summary plus recommendations.
func BuildPrompt(in *Input, p Profile) string {
	var b strings.Builder

	b.WriteString("Analyze this decision:\n")
	fmt.Fprintf(&b, "Title: %s\n", in.Title)
	fmt.Fprintf(&b, "Description: %s\n", in.Description)
	b.WriteString("Options:\n")
	for _, opt := range in.Options {
		pros := opt.Pros
		if pros == "" {
			pros = noneProvided
		}
		cons := opt.Cons
		if cons == "" {
			cons = noneProvided
		}
		fmt.Fprintf(&b, "Option: %s\n", opt.Title)
		fmt.Fprintf(&b, "Pros: %s\n", pros)
		fmt.Fprintf(&b, "Cons: %s\n", cons)
	}
	b.WriteString("\nUser Profile:\n")
	fmt.Fprintf(&b, "Decision Style: %s\n", p.DecisionStyle)
	fmt.Fprintf(&b, "Risk Tolerance: %s\n", p.RiskTolerance)
	b.WriteString("\nPlease provide:\n")
	b.WriteString("1. A summary of the decision\n")
	b.WriteString("2. A list of recommendations based on the user's decision style and risk tolerance")

	return b.String()
}

// ParseAnalysis turns a raw completion response into an Analysis. The
// contract with the service is line-oriented: the first non-blank line is
// the summary, every other non-blank line is one recommendation, kept
// verbatim. A response with no non-blank lines yields a zero Analysis.
func ParseAnalysis(response string) Analysis {
	var lines []string
	for _, line := range strings.Split(response, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return Analysis{}
	}
	return Analysis{
		Summary:         lines[0],
		Recommendations: lines[1:],
	}
}
