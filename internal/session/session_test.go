package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clarity/internal/llm"
	"clarity/internal/quiz"
)

func newQuizDone(t *testing.T) *State {
	t.Helper()
	s := New()
	require.NoError(t, s.Login("a@b.c", "pw"))
	s.SetDecisionStyle(quiz.StyleAnalytical)
	s.SetRiskTolerance(quiz.RiskModerate)
	require.NoError(t, s.SubmitQuiz())
	return s
}

// newDraftReady returns a state on the decision screen with a complete
// two-option draft matching the canonical example.
func newDraftReady(t *testing.T) *State {
	t.Helper()
	s := newQuizDone(t)
	s.NewDecision()
	s.Draft.SetTitle("Move cities")
	s.Draft.SetDescription("Job offer in another city")
	require.NoError(t, s.Draft.SetOptionTitle(0, "Stay"))
	require.NoError(t, s.Draft.SetOptionPros(0, "stable"))
	s.Draft.AddOption()
	require.NoError(t, s.Draft.SetOptionTitle(1, "Move"))
	require.NoError(t, s.Draft.SetOptionCons(1, "costly"))
	return s
}

func TestNewStartsSignedOut(t *testing.T) {
	s := New()
	assert.Equal(t, ScreenSignIn, s.Screen())
	assert.False(t, s.LoggedIn)
	assert.NotEmpty(t, s.ID)
	require.NotNil(t, s.Draft)
	assert.Len(t, s.Draft.Options, 1)
}

func TestLoginValidation(t *testing.T) {
	cases := []struct {
		name            string
		email, password string
	}{
		{"empty email", "", "pw"},
		{"empty password", "a@b.c", ""},
		{"both empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := New()
			err := s.Login(tc.email, tc.password)
			require.Error(t, err)
			assert.True(t, IsValidation(err))
			assert.False(t, s.LoggedIn)
			assert.Equal(t, ScreenSignIn, s.Screen())
			assert.Equal(t, "Please fill in all fields", s.Message())
		})
	}
}

func TestLoginSucceedsWithAnyNonEmptyInput(t *testing.T) {
	s := New()
	require.NoError(t, s.Login("a@b.c", "anything"))
	assert.True(t, s.LoggedIn)
	assert.Equal(t, ScreenQuiz, s.Screen())
	assert.Empty(t, s.Message())
}

func TestSignUpValidation(t *testing.T) {
	s := New()
	s.ShowSignUp()
	require.Equal(t, ScreenSignUp, s.Screen())

	err := s.SignUp("a@b.c", "pw", "")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.False(t, s.LoggedIn)
	assert.Equal(t, ScreenSignUp, s.Screen())

	require.NoError(t, s.SignUp("a@b.c", "pw", "Ada"))
	assert.True(t, s.LoggedIn)
	assert.Equal(t, ScreenQuiz, s.Screen())
	assert.Equal(t, "Ada", s.Creds.Name)
}

func TestAuthTogglePreservesNothingButScreen(t *testing.T) {
	s := New()
	s.ShowSignUp()
	assert.Equal(t, ScreenSignUp, s.Screen())
	s.ShowSignIn()
	assert.Equal(t, ScreenSignIn, s.Screen())

	// Toggles are no-ops away from the auth screens.
	require.NoError(t, s.Login("a@b.c", "pw"))
	s.ShowSignUp()
	assert.Equal(t, ScreenQuiz, s.Screen())
}

func TestActionsOutsideSourceScreenAreNoOps(t *testing.T) {
	s := New()

	// Not on the quiz screen yet.
	require.NoError(t, s.SubmitQuiz())
	assert.Equal(t, ScreenSignIn, s.Screen())

	s.NewDecision()
	assert.Equal(t, ScreenSignIn, s.Screen())

	s.BackToDashboard()
	assert.Equal(t, ScreenSignIn, s.Screen())

	// Login on the sign-up screen is a no-op, not an error.
	s.ShowSignUp()
	require.NoError(t, s.Login("a@b.c", "pw"))
	assert.False(t, s.LoggedIn)
}

func TestLoginOnlySucceedsOnce(t *testing.T) {
	s := New()
	require.NoError(t, s.Login("a@b.c", "pw"))
	require.Equal(t, ScreenQuiz, s.Screen())

	// A second login cannot fire: the screen has moved on.
	require.NoError(t, s.Login("other@b.c", "pw2"))
	assert.Equal(t, "a@b.c", s.Creds.Email)
}

func TestSubmitQuizRequiresBothAnswers(t *testing.T) {
	s := New()
	require.NoError(t, s.Login("a@b.c", "pw"))

	err := s.SubmitQuiz()
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Equal(t, ScreenQuiz, s.Screen())
	assert.Equal(t, "Please answer all questions", s.Message())

	s.SetDecisionStyle(quiz.StyleIntuitive)
	err = s.SubmitQuiz()
	require.Error(t, err)
	assert.Equal(t, ScreenQuiz, s.Screen())

	s.SetRiskTolerance(quiz.RiskAdventurous)
	require.NoError(t, s.SubmitQuiz())
	assert.Equal(t, ScreenDashboard, s.Screen())
}

func TestAnalyzeValidation(t *testing.T) {
	s := newQuizDone(t)
	s.NewDecision()
	require.Equal(t, ScreenDecision, s.Screen())

	s.Draft.SetTitle("Move cities")
	s.Draft.SetDescription("details")
	// The single option still has an empty title.
	client := &llm.ScriptedClient{Responses: []string{"unused"}}
	err := s.Analyze(context.Background(), client)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Equal(t, ScreenDecision, s.Screen())
	assert.Zero(t, s.History.Len())
	assert.Empty(t, client.Calls, "no external call before validation passes")
	assert.False(t, s.Busy())
	assert.Equal(t, "Please fill in all required fields", s.Message())
}

func TestAnalyzeSuccess(t *testing.T) {
	s := newDraftReady(t)
	client := &llm.ScriptedClient{Responses: []string{"Summary line\nRec one\nRec two"}}

	require.NoError(t, s.Analyze(context.Background(), client))

	assert.Equal(t, ScreenAnalysis, s.Screen())
	require.NotNil(t, s.Result)
	assert.Equal(t, "Summary line", s.Result.Summary)
	assert.Equal(t, []string{"Rec one", "Rec two"}, s.Result.Recommendations)

	require.Equal(t, 1, s.History.Len())
	rec := s.History.Records()[0]
	assert.Equal(t, "Move cities", rec.Title)
	assert.Equal(t, time.Now().Format("1/2/2006"), rec.Date)
	assert.Equal(t, *s.Result, rec.Analysis)
	assert.NotEmpty(t, rec.ID)
	assert.False(t, s.Busy())
}

func TestAnalyzePromptContents(t *testing.T) {
	s := newDraftReady(t)
	client := &llm.ScriptedClient{Responses: []string{"ok"}}
	require.NoError(t, s.Analyze(context.Background(), client))

	require.Len(t, client.Calls, 1)
	prompt := client.Calls[0]
	assert.Contains(t, prompt, "Title: Move cities")
	assert.Contains(t, prompt, "Option: Stay")
	assert.Contains(t, prompt, "Pros: stable")
	assert.Contains(t, prompt, "Cons: None provided")
	assert.Contains(t, prompt, "Pros: None provided")
	assert.Contains(t, prompt, "Decision Style: analytical")
	assert.Contains(t, prompt, "Risk Tolerance: moderate")
}

func TestAnalyzeServiceFailure(t *testing.T) {
	s := newDraftReady(t)
	client := &llm.ScriptedClient{Err: errors.New("boom")}

	err := s.Analyze(context.Background(), client)
	require.Error(t, err)
	assert.True(t, IsService(err))

	assert.Equal(t, ScreenDecision, s.Screen())
	assert.Zero(t, s.History.Len())
	assert.False(t, s.Busy(), "busy guard released on the failure path")
	assert.Equal(t, "Analysis failed. Please try again.", s.Message())
	assert.Nil(t, s.Result)
}

func TestAnalyzeEmptyResponse(t *testing.T) {
	s := newDraftReady(t)
	client := &llm.ScriptedClient{Responses: []string{"  \n\n \n"}}

	require.NoError(t, s.Analyze(context.Background(), client))
	assert.Equal(t, ScreenAnalysis, s.Screen())
	require.NotNil(t, s.Result)
	assert.Empty(t, s.Result.Summary)
	assert.Empty(t, s.Result.Recommendations)
	assert.Equal(t, 1, s.History.Len())
}

func TestBeginAnalysisGuardsConcurrentSubmissions(t *testing.T) {
	s := newDraftReady(t)

	prompt, ok, err := s.BeginAnalysis()
	require.NoError(t, err)
	require.True(t, ok)
	require.NotEmpty(t, prompt)
	assert.True(t, s.Busy())

	// A second attempt while busy is a no-op.
	_, ok, err = s.BeginAnalysis()
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.FinishAnalysis("Summary", nil))
	assert.False(t, s.Busy())
	assert.Equal(t, 1, s.History.Len())
}

func TestBackToDashboardDoesNotTouchHistory(t *testing.T) {
	s := newDraftReady(t)
	client := &llm.ScriptedClient{Responses: []string{"Summary\nRec"}}
	require.NoError(t, s.Analyze(context.Background(), client))
	require.Equal(t, 1, s.History.Len())

	s.BackToDashboard()
	assert.Equal(t, ScreenDashboard, s.Screen())
	assert.Equal(t, 1, s.History.Len())

	// Result stays on display state; only a new analyze appends.
	require.NotNil(t, s.Result)
}
