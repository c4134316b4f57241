package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"clarity/internal/quiz"
	"clarity/internal/session"
)

// View renders the active screen.
func (m Model) View() string {
	var body string
	switch m.state.Screen() {
	case session.ScreenSignIn:
		body = m.viewSignIn()
	case session.ScreenSignUp:
		body = m.viewSignUp()
	case session.ScreenQuiz:
		body = m.viewQuiz()
	case session.ScreenDashboard:
		body = m.viewDashboard()
	case session.ScreenDecision:
		body = m.viewDecision()
	case session.ScreenAnalysis:
		body = m.viewAnalysis()
	}

	card := m.styles.Card.Render(body)
	footer := m.styles.Footer.Render("tab: next field • enter: select • ctrl+c: quit")
	content := lipgloss.JoinVertical(lipgloss.Left, card, footer)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// errorLine renders the inline error banner, empty when there is none.
func (m Model) errorLine() string {
	if msg := m.state.Message(); msg != "" {
		return m.styles.Error.Render(msg) + "\n\n"
	}
	return ""
}

func (m Model) button(label string, slot int) string {
	if m.focus == slot {
		return m.styles.ButtonFocus.Render(label)
	}
	return m.styles.Button.Render(label)
}

func (m Model) link(label string, slot int) string {
	if m.focus == slot {
		return m.styles.ButtonFocus.Render(label)
	}
	return m.styles.Link.Render(label)
}

func (m Model) viewSignIn() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Welcome Back"))
	b.WriteString("\n\n")
	b.WriteString(m.errorLine())
	b.WriteString(m.emailInput.View())
	b.WriteString("\n")
	b.WriteString(m.passwordInput.View())
	b.WriteString("\n\n")
	b.WriteString(m.button("Sign In", signInFocusSubmit))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Muted.Render("Don't have an account? "))
	b.WriteString(m.link("Sign Up", signInFocusSwitch))
	return b.String()
}

func (m Model) viewSignUp() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Create Account"))
	b.WriteString("\n\n")
	b.WriteString(m.errorLine())
	b.WriteString(m.nameInput.View())
	b.WriteString("\n")
	b.WriteString(m.emailInput.View())
	b.WriteString("\n")
	b.WriteString(m.passwordInput.View())
	b.WriteString("\n\n")
	b.WriteString(m.button("Sign Up", signUpFocusSubmit))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Muted.Render("Already have an account? "))
	b.WriteString(m.link("Sign In", signUpFocusSwitch))
	return b.String()
}

func (m Model) viewQuiz() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Personality Quiz"))
	b.WriteString("\n\n")
	b.WriteString(m.errorLine())

	for q, question := range quiz.Questions() {
		label := m.styles.Label.Render(question.Prompt)
		if m.focus == q {
			label = m.styles.ChoiceSelected.Render("» ") + label
		}
		b.WriteString(label)
		b.WriteString("\n")
		for i, choice := range question.Choices {
			line := fmt.Sprintf("%d. %s", i+1, choice.Label)
			marker := "[ ] "
			if m.quizChosen[q] && m.quizChoice[q] == i {
				marker = "[x] "
			}
			if m.focus == q && m.quizCursor[q] == i {
				line = m.styles.ChoiceSelected.Render(marker + line)
			} else {
				line = m.styles.Choice.Render(marker + line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(m.button("Complete Quiz", quizFocusSubmit))
	return b.String()
}

func (m Model) viewDashboard() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Your Dashboard"))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Label.Render("Your Personality Profile"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Decision Style: %s\n", m.state.Quiz.DecisionStyle)
	fmt.Fprintf(&b, "Risk Tolerance: %s\n", m.state.Quiz.RiskTolerance)
	b.WriteString("\n")

	b.WriteString(m.styles.Label.Render("Recent Decisions"))
	b.WriteString("\n")
	records := m.state.History.Records()
	if len(records) == 0 {
		b.WriteString(m.styles.Muted.Render("No decisions yet."))
		b.WriteString("\n")
	}
	for _, rec := range records {
		fmt.Fprintf(&b, "%s  %s\n", m.styles.Body.Render(rec.Title), m.styles.Muted.Render(rec.Date))
	}
	b.WriteString("\n")

	b.WriteString(m.button("New Decision", 0))
	return b.String()
}

func (m Model) viewDecision() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Make a Decision"))
	b.WriteString("\n\n")
	b.WriteString(m.errorLine())

	b.WriteString(m.titleInput.View())
	b.WriteString("\n")
	b.WriteString(m.descInput.View())
	b.WriteString("\n\n")

	b.WriteString(m.styles.Label.Render("Options"))
	b.WriteString("\n")
	for i := range m.optInputs {
		b.WriteString(m.optInputs[i].title.View())
		b.WriteString("\n")
		b.WriteString(m.optInputs[i].pros.View())
		b.WriteString("\n")
		b.WriteString(m.optInputs[i].cons.View())
		b.WriteString("\n\n")
	}

	b.WriteString(m.button("Add Another Option", m.decisionAddFocus()))
	b.WriteString("  ")
	if m.state.Busy() {
		b.WriteString(m.styles.Spinner.Render(m.spinner.View()) + " Analyzing...")
	} else {
		b.WriteString(m.button("Get AI Analysis", m.decisionAnalyzeFocus()))
	}
	return b.String()
}

func (m Model) viewAnalysis() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("AI Analysis Results"))
	b.WriteString("\n\n")

	b.WriteString(m.renderAnalysis())
	b.WriteString("\n")
	b.WriteString(m.button("Back to Dashboard", 0))
	return b.String()
}

// renderAnalysis builds the markdown for the current result and renders it
// through glamour, falling back to the raw markdown without a renderer.
func (m Model) renderAnalysis() string {
	md := m.analysisMarkdown()
	if m.renderer == nil {
		return md
	}
	out, err := m.renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}

func (m Model) analysisMarkdown() string {
	var b strings.Builder
	b.WriteString("## Decision Summary\n\n")
	result := m.state.Result
	if result == nil || result.Summary == "" {
		// No usable result yet; the screen still has to render.
		b.WriteString("Analysis in progress...\n")
	} else {
		b.WriteString(result.Summary)
		b.WriteString("\n")
	}
	b.WriteString("\n## Recommendations\n\n")
	if result != nil {
		for _, rec := range result.Recommendations {
			fmt.Fprintf(&b, "- %s\n", rec)
		}
	}
	return b.String()
}
