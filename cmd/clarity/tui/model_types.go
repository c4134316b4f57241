package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/glamour"

	"clarity/cmd/clarity/ui"
	"clarity/internal/llm"
	"clarity/internal/session"
)

// Config holds configuration for initializing the interactive UI.
type Config struct {
	Client llm.CompletionClient
	Theme  string
}

// optionInputs groups the three widgets editing one decision option.
type optionInputs struct {
	title textinput.Model
	pros  textarea.Model
	cons  textarea.Model
}

// Model is the main model for the interactive decision coach. All domain
// state lives in the session.State; the model only owns widgets and focus.
type Model struct {
	state  *session.State
	client llm.CompletionClient

	styles   ui.Styles
	renderer *glamour.TermRenderer
	spinner  spinner.Model

	width  int
	height int

	// Focus is an index into the active screen's focus order (inputs
	// first, then buttons). It resets whenever the screen changes.
	focus int

	// Auth form. The same widgets back both the sign-in and sign-up
	// screens so typed values survive toggling between them.
	nameInput     textinput.Model
	emailInput    textinput.Model
	passwordInput textinput.Model

	// Quiz: the highlighted choice per question, the choice actually picked,
	// and whether one has been picked at all. Highlighting alone does not
	// answer a question, and moving the cursor never moves the answer.
	quizCursor [2]int
	quizChoice [2]int
	quizChosen [2]bool

	// Decision form.
	titleInput textinput.Model
	descInput  textarea.Model
	optInputs  []optionInputs
}

// Messages for tea updates
type (
	// analysisDoneMsg carries the completion call outcome back onto the
	// update loop, where FinishAnalysis releases the busy guard.
	analysisDoneMsg struct {
		response string
		err      error
	}
)
