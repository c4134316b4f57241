package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"clarity/internal/logging"
	"clarity/internal/quiz"
	"clarity/internal/session"
)

// Focus slots shared by several screens. Screen-specific slots are computed
// from these bases.
const (
	signInFocusEmail = iota
	signInFocusPassword
	signInFocusSubmit
	signInFocusSwitch
)

const (
	signUpFocusName = iota
	signUpFocusEmail
	signUpFocusPassword
	signUpFocusSubmit
	signUpFocusSwitch
)

const (
	quizFocusStyle = iota
	quizFocusRisk
	quizFocusSubmit
)

// Decision screen: title, description, then three slots per option, then
// the add-option and analyze buttons.
const decisionFixedFields = 2

func (m Model) decisionAddFocus() int     { return decisionFixedFields + 3*len(m.optInputs) }
func (m Model) decisionAnalyzeFocus() int { return m.decisionAddFocus() + 1 }

// focusCount returns how many focusable slots the active screen has.
func (m Model) focusCount() int {
	switch m.state.Screen() {
	case session.ScreenSignIn:
		return 4
	case session.ScreenSignUp:
		return 5
	case session.ScreenQuiz:
		return 3
	case session.ScreenDecision:
		return m.decisionAnalyzeFocus() + 1
	default: // dashboard and analysis have a single button
		return 1
	}
}

// Update is the single event loop. All state mutation happens here; the
// completion call is the only work that runs off this loop.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case analysisDoneMsg:
		// Releases the busy guard on every path, success or failure.
		if err := m.state.FinishAnalysis(msg.response, msg.err); err != nil {
			logging.API("analysis failed: %v", msg.err)
			return m, nil
		}
		logging.Session("analysis recorded, history length %d", m.state.History.Len())
		return m.enterScreen(), nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		// While an analysis is in flight every other action is disabled,
		// so a second submission cannot start.
		if m.state.Busy() {
			return m, nil
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Tab order is uniform across screens; textareas keep Tab for focus
	// movement rather than literal tabs.
	switch msg.Type {
	case tea.KeyTab:
		return m.moveFocus(1), nil
	case tea.KeyShiftTab:
		return m.moveFocus(-1), nil
	}

	switch m.state.Screen() {
	case session.ScreenSignIn:
		return m.handleSignInKey(msg)
	case session.ScreenSignUp:
		return m.handleSignUpKey(msg)
	case session.ScreenQuiz:
		return m.handleQuizKey(msg)
	case session.ScreenDashboard:
		return m.handleDashboardKey(msg)
	case session.ScreenDecision:
		return m.handleDecisionKey(msg)
	case session.ScreenAnalysis:
		return m.handleAnalysisKey(msg)
	}
	return m, nil
}

func (m Model) handleSignInKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		switch m.focus {
		case signInFocusEmail, signInFocusPassword:
			return m.moveFocus(1), nil
		case signInFocusSubmit:
			if err := m.state.Login(m.emailInput.Value(), m.passwordInput.Value()); err != nil {
				return m, nil
			}
			logging.Session("login, entering quiz")
			return m.enterScreen(), nil
		case signInFocusSwitch:
			m.state.ShowSignUp()
			return m.enterScreen(), nil
		}
	}
	return m.updateFocusedWidget(msg)
}

func (m Model) handleSignUpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		switch m.focus {
		case signUpFocusName, signUpFocusEmail, signUpFocusPassword:
			return m.moveFocus(1), nil
		case signUpFocusSubmit:
			err := m.state.SignUp(m.emailInput.Value(), m.passwordInput.Value(), m.nameInput.Value())
			if err != nil {
				return m, nil
			}
			logging.Session("signup, entering quiz")
			return m.enterScreen(), nil
		case signUpFocusSwitch:
			m.state.ShowSignIn()
			return m.enterScreen(), nil
		}
	}
	return m.updateFocusedWidget(msg)
}

func (m Model) handleQuizKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.focus == quizFocusSubmit {
		if msg.Type == tea.KeyEnter {
			if err := m.state.SubmitQuiz(); err != nil {
				return m, nil
			}
			logging.Session("quiz complete: %s / %s",
				m.state.Quiz.DecisionStyle, m.state.Quiz.RiskTolerance)
			return m.enterScreen(), nil
		}
		return m, nil
	}

	q := m.focus // 0 = decision style, 1 = risk tolerance
	choices := quiz.Questions()[q].Choices

	switch msg.Type {
	case tea.KeyUp:
		if m.quizCursor[q] > 0 {
			m.quizCursor[q]--
		}
		return m, nil
	case tea.KeyDown:
		if m.quizCursor[q] < len(choices)-1 {
			m.quizCursor[q]++
		}
		return m, nil
	case tea.KeyEnter, tea.KeySpace:
		return m.chooseQuizAnswer(q, m.quizCursor[q]), nil
	case tea.KeyRunes:
		// Digit shortcuts mirror the numbered choice list.
		if n, err := strconv.Atoi(string(msg.Runes)); err == nil && n >= 1 && n <= len(choices) {
			m.quizCursor[q] = n - 1
			return m.chooseQuizAnswer(q, n-1), nil
		}
	}
	return m, nil
}

// chooseQuizAnswer records a choice. Highlighting alone never answers a
// question; the gate stays closed until both answers are explicitly chosen.
func (m Model) chooseQuizAnswer(q, choice int) Model {
	value := quiz.Questions()[q].Choices[choice].Value
	switch q {
	case 0:
		style, err := quiz.ParseStyle(value)
		if err != nil {
			return m
		}
		m.state.SetDecisionStyle(style)
	case 1:
		risk, err := quiz.ParseRisk(value)
		if err != nil {
			return m
		}
		m.state.SetRiskTolerance(risk)
	}
	m.quizChoice[q] = choice
	m.quizChosen[q] = true
	return m
}

func (m Model) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter || (msg.Type == tea.KeyRunes && string(msg.Runes) == "n") {
		m.state.NewDecision()
		return m.enterScreen(), nil
	}
	return m, nil
}

func (m Model) handleDecisionKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		switch m.focus {
		case 0: // title input: Enter advances like the auth forms
			return m.moveFocus(1), nil
		case m.decisionAddFocus():
			return m.addOption(), nil
		case m.decisionAnalyzeFocus():
			return m.startAnalysis()
		}
		// Enter inside a textarea falls through and inserts a newline.
	}
	return m.updateFocusedWidget(msg)
}

// addOption grows the draft and its widgets together.
func (m Model) addOption() Model {
	m.state.Draft.AddOption()
	m.optInputs = append(m.optInputs, newOptionInputs(len(m.optInputs)))
	// Land on the new option's title field.
	m.focus = decisionFixedFields + 3*(len(m.optInputs)-1)
	m.applyFocus()
	return m
}

// startAnalysis validates, acquires the busy guard and launches the
// completion call in the background.
func (m Model) startAnalysis() (tea.Model, tea.Cmd) {
	prompt, ok, err := m.state.BeginAnalysis()
	if err != nil || !ok {
		return m, nil
	}
	return m, tea.Batch(m.spinner.Tick, m.analyzeCmd(prompt))
}

func (m Model) handleAnalysisKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter || (msg.Type == tea.KeyRunes && string(msg.Runes) == "b") {
		m.state.BackToDashboard()
		return m.enterScreen(), nil
	}
	return m, nil
}

// moveFocus cycles focus across the active screen's slots.
func (m Model) moveFocus(delta int) Model {
	count := m.focusCount()
	m.focus = (m.focus + delta + count) % count
	m.applyFocus()
	return m
}

// enterScreen resets focus after a screen transition.
func (m Model) enterScreen() Model {
	m.focus = 0
	m.applyFocus()
	return m
}

// applyFocus blurs every widget, then focuses the one the current slot
// addresses (button slots focus nothing).
func (m *Model) applyFocus() {
	m.nameInput.Blur()
	m.emailInput.Blur()
	m.passwordInput.Blur()
	m.titleInput.Blur()
	m.descInput.Blur()
	for i := range m.optInputs {
		m.optInputs[i].title.Blur()
		m.optInputs[i].pros.Blur()
		m.optInputs[i].cons.Blur()
	}

	switch m.state.Screen() {
	case session.ScreenSignIn:
		switch m.focus {
		case signInFocusEmail:
			m.emailInput.Focus()
		case signInFocusPassword:
			m.passwordInput.Focus()
		}
	case session.ScreenSignUp:
		switch m.focus {
		case signUpFocusName:
			m.nameInput.Focus()
		case signUpFocusEmail:
			m.emailInput.Focus()
		case signUpFocusPassword:
			m.passwordInput.Focus()
		}
	case session.ScreenDecision:
		switch {
		case m.focus == 0:
			m.titleInput.Focus()
		case m.focus == 1:
			m.descInput.Focus()
		case m.focus >= decisionFixedFields && m.focus < m.decisionAddFocus():
			opt := (m.focus - decisionFixedFields) / 3
			switch (m.focus - decisionFixedFields) % 3 {
			case 0:
				m.optInputs[opt].title.Focus()
			case 1:
				m.optInputs[opt].pros.Focus()
			case 2:
				m.optInputs[opt].cons.Focus()
			}
		}
	}
}

// updateFocusedWidget forwards a key to the focused widget and pushes the
// new value into the session state through its typed mutators.
func (m Model) updateFocusedWidget(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.state.Screen() {
	case session.ScreenSignIn, session.ScreenSignUp:
		m.nameInput, _ = m.nameInput.Update(msg)
		m.emailInput, _ = m.emailInput.Update(msg)
		m.passwordInput, cmd = m.passwordInput.Update(msg)
		return m, cmd

	case session.ScreenDecision:
		switch {
		case m.focus == 0:
			m.titleInput, cmd = m.titleInput.Update(msg)
			m.state.Draft.SetTitle(m.titleInput.Value())
		case m.focus == 1:
			m.descInput, cmd = m.descInput.Update(msg)
			m.state.Draft.SetDescription(m.descInput.Value())
		case m.focus >= decisionFixedFields && m.focus < m.decisionAddFocus():
			opt := (m.focus - decisionFixedFields) / 3
			switch (m.focus - decisionFixedFields) % 3 {
			case 0:
				m.optInputs[opt].title, cmd = m.optInputs[opt].title.Update(msg)
				_ = m.state.Draft.SetOptionTitle(opt, m.optInputs[opt].title.Value())
			case 1:
				m.optInputs[opt].pros, cmd = m.optInputs[opt].pros.Update(msg)
				_ = m.state.Draft.SetOptionPros(opt, m.optInputs[opt].pros.Value())
			case 2:
				m.optInputs[opt].cons, cmd = m.optInputs[opt].cons.Update(msg)
				_ = m.state.Draft.SetOptionCons(opt, m.optInputs[opt].cons.Value())
			}
		}
		return m, cmd
	}

	return m, nil
}
