// Package session owns the per-session UI state and the screen state
// machine: which screen is active, which actions are legal from it, and the
// gates (auth, quiz, analyzer) that guard each transition. The state object
// is explicit and passed around; there are no package-level globals, so
// every transition is unit-testable without a terminal.
package session

import (
	"context"

	"github.com/google/uuid"

	"clarity/internal/decision"
	"clarity/internal/llm"
	"clarity/internal/quiz"
)

// Screen identifies the single active screen. The six values form a closed
// set; transitions happen only inside the action methods below.
type Screen int

const (
	ScreenSignIn Screen = iota
	ScreenSignUp
	ScreenQuiz
	ScreenDashboard
	ScreenDecision
	ScreenAnalysis
)

// String returns the display name for each screen.
func (s Screen) String() string {
	names := []string{"sign-in", "sign-up", "quiz", "dashboard", "decision", "analysis"}
	if int(s) < len(names) {
		return names[s]
	}
	return "unknown"
}

// Credentials is the auth form. All state stays in memory for the session.
type Credentials struct {
	Email    string
	Password string
	Name     string
}

// State is the whole per-session UI state. Actions mutate it on the single
// event-processing thread; the only blocking step, the completion call, is
// split into BeginAnalysis/FinishAnalysis so the caller can run it off the
// update loop while the busy guard stays owned by the state.
type State struct {
	ID       string
	LoggedIn bool

	Creds   Credentials
	Quiz    quiz.Answers
	Draft   *decision.Input
	History decision.History

	// Result is the analysis currently on display, nil when none exists
	// yet. The analysis screen shows a placeholder while it is nil.
	Result *decision.Analysis

	screen  Screen
	busy    bool
	message string
}

// New returns the state a fresh session starts in: signed out, on the
// sign-in screen, with an empty one-option decision draft.
func New() *State {
	return &State{
		ID:    uuid.NewString(),
		Draft: decision.NewInput(),
	}
}

// Screen returns the active screen.
func (s *State) Screen() Screen { return s.screen }

// Busy reports whether an analysis call is in flight. While true the
// analyze action is disabled.
func (s *State) Busy() bool { return s.busy }

// Message returns the inline error message for the active screen, empty
// when there is none.
func (s *State) Message() string { return s.message }

// ShowSignUp switches the unauthenticated view to the sign-up form.
func (s *State) ShowSignUp() {
	if s.screen == ScreenSignIn {
		s.screen = ScreenSignUp
		s.message = ""
	}
}

// ShowSignIn switches the unauthenticated view to the sign-in form.
func (s *State) ShowSignIn() {
	if s.screen == ScreenSignUp {
		s.screen = ScreenSignIn
		s.message = ""
	}
}

// Login accepts any non-empty credentials and enters the quiz. There is no
// credential verification; a real authenticator would slot in here.
func (s *State) Login(email, password string) error {
	if s.screen != ScreenSignIn || s.LoggedIn {
		return nil
	}
	if email == "" || password == "" {
		return s.fail(&ValidationError{Message: "Please fill in all fields"})
	}
	s.Creds.Email = email
	s.Creds.Password = password
	s.LoggedIn = true
	s.screen = ScreenQuiz
	s.message = ""
	return nil
}

// SignUp accepts any non-empty account details and enters the quiz.
func (s *State) SignUp(email, password, name string) error {
	if s.screen != ScreenSignUp || s.LoggedIn {
		return nil
	}
	if email == "" || password == "" || name == "" {
		return s.fail(&ValidationError{Message: "Please fill in all fields"})
	}
	s.Creds = Credentials{Email: email, Password: password, Name: name}
	s.LoggedIn = true
	s.screen = ScreenQuiz
	s.message = ""
	return nil
}

// SetDecisionStyle records the first quiz answer.
func (s *State) SetDecisionStyle(v quiz.Style) { s.Quiz.DecisionStyle = v }

// SetRiskTolerance records the second quiz answer.
func (s *State) SetRiskTolerance(v quiz.Risk) { s.Quiz.RiskTolerance = v }

// SubmitQuiz enters the dashboard once both questions are answered. The
// answers persist for the rest of the session and feed every analysis
// prompt.
func (s *State) SubmitQuiz() error {
	if s.screen != ScreenQuiz {
		return nil
	}
	if !s.Quiz.Complete() {
		return s.fail(&ValidationError{Message: "Please answer all questions"})
	}
	s.screen = ScreenDashboard
	s.message = ""
	return nil
}

// NewDecision opens the decision form from the dashboard. The draft is kept
// across visits; options accumulate and are never removed.
func (s *State) NewDecision() {
	if s.screen == ScreenDashboard {
		s.screen = ScreenDecision
		s.message = ""
	}
}

// BackToDashboard leaves the analysis screen. The history is not touched;
// re-rendering an analysis never appends a record.
func (s *State) BackToDashboard() {
	if s.screen == ScreenAnalysis {
		s.screen = ScreenDashboard
		s.message = ""
	}
}

// BeginAnalysis validates the draft and acquires the busy guard, returning
// the assembled prompt. Callers must pair every successful BeginAnalysis
// with exactly one FinishAnalysis, on success and on failure alike, so the
// guard can never be left stuck. A second call while busy is a no-op
// returning ok=false.
func (s *State) BeginAnalysis() (prompt string, ok bool, err error) {
	if s.screen != ScreenDecision || s.busy {
		return "", false, nil
	}
	if !s.Draft.Complete() {
		return "", false, s.fail(&ValidationError{Message: "Please fill in all required fields"})
	}
	s.busy = true
	s.message = ""
	prompt = decision.BuildPrompt(s.Draft, decision.Profile{
		DecisionStyle: string(s.Quiz.DecisionStyle),
		RiskTolerance: string(s.Quiz.RiskTolerance),
	})
	return prompt, true, nil
}

// FinishAnalysis releases the busy guard and applies the outcome of the
// completion call. On failure the screen and history are left untouched and
// a generic retry message is surfaced. On success the parsed analysis is
// recorded in the history and the analysis screen opens.
func (s *State) FinishAnalysis(response string, callErr error) error {
	s.busy = false
	if callErr != nil {
		return s.fail(&ServiceError{Message: "Analysis failed. Please try again.", Err: callErr})
	}

	analysis := decision.ParseAnalysis(response)
	s.Result = &analysis
	s.History.Append(decision.NewRecord(s.Draft.Title, analysis))
	s.screen = ScreenAnalysis
	s.message = ""
	return nil
}

// Analyze runs the full analyze action synchronously: validate, call the
// completion service, parse, record. The interactive UI uses the Begin/
// Finish halves instead so the call can run off the update loop.
func (s *State) Analyze(ctx context.Context, client llm.CompletionClient) error {
	prompt, ok, err := s.BeginAnalysis()
	if err != nil || !ok {
		return err
	}
	response, callErr := client.Complete(ctx, prompt)
	return s.FinishAnalysis(response, callErr)
}

// fail surfaces an error as the inline message and returns it unchanged.
func (s *State) fail(err error) error {
	s.message = err.Error()
	return err
}
