// Package tui implements the interactive decision coach: six screens
// (sign-in, sign-up, quiz, dashboard, decision entry, analysis) sequenced by
// the session state machine, with the completion call as the only
// background operation.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"clarity/cmd/clarity/ui"
	"clarity/internal/logging"
	"clarity/internal/session"
)

// NewModel creates the initial model on the sign-in screen.
func NewModel(cfg Config) Model {
	styles := ui.NewStyles(ui.ThemeByName(cfg.Theme))

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	glamourStyle := "light"
	if styles.Theme.IsDark {
		glamourStyle = "dark"
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(glamourStyle),
		glamour.WithWordWrap(76),
	)
	if err != nil {
		renderer = nil // fall back to plain text rendering
	}

	m := Model{
		state:    session.New(),
		client:   cfg.Client,
		styles:   styles,
		renderer: renderer,
		spinner:  sp,

		nameInput:     newInput("Full Name", 64, false),
		emailInput:    newInput("Email", 64, false),
		passwordInput: newInput("Password", 64, true),

		titleInput: newInput("Decision Title", 80, false),
		descInput:  newArea("Describe your situation...", 4),
	}
	m.optInputs = []optionInputs{newOptionInputs(0)}
	m.applyFocus()
	return m
}

func newInput(placeholder string, limit int, secret bool) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 40
	if secret {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '•'
	}
	return in
}

func newArea(placeholder string, height int) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.SetWidth(44)
	ta.SetHeight(height)
	ta.ShowLineNumbers = false
	return ta
}

func newOptionInputs(index int) optionInputs {
	return optionInputs{
		title: newInput(fmt.Sprintf("Option %d Title", index+1), 80, false),
		pros:  newArea("Pros", 2),
		cons:  newArea("Cons", 2),
	}
}

// Init starts the spinner ticker.
func (m Model) Init() tea.Cmd {
	logging.UI("starting interactive session %s", m.state.ID)
	return m.spinner.Tick
}

// analyzeCmd issues the completion call off the update loop. The busy guard
// was acquired by BeginAnalysis; analysisDoneMsg hands the outcome back so
// FinishAnalysis can release it on the event thread.
func (m Model) analyzeCmd(prompt string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		logging.API("analysis prompt: %d bytes", len(prompt))
		response, err := client.Complete(context.Background(), prompt)
		return analysisDoneMsg{response: response, err: err}
	}
}

// Run launches the interactive program.
func Run(cfg Config) error {
	p := tea.NewProgram(NewModel(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
