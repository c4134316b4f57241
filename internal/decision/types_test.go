package decision

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInputStartsWithOneEmptyOption(t *testing.T) {
	in := NewInput()
	require.Len(t, in.Options, 1)
	assert.Equal(t, Option{}, in.Options[0])
	assert.False(t, in.Complete())
}

func TestAddOptionPreservesPriorEntries(t *testing.T) {
	in := NewInput()
	require.NoError(t, in.SetOptionTitle(0, "first"))

	const n = 5
	for i := 0; i < n; i++ {
		in.AddOption()
	}
	require.Len(t, in.Options, n+1)
	assert.Equal(t, "first", in.Options[0].Title)
	for i := 1; i <= n; i++ {
		assert.Equal(t, Option{}, in.Options[i])
	}
}

func TestOptionMutatorsBoundsChecked(t *testing.T) {
	in := NewInput()

	for _, i := range []int{-1, 1, 99} {
		assert.Error(t, in.SetOptionTitle(i, "x"))
		assert.Error(t, in.SetOptionPros(i, "x"))
		assert.Error(t, in.SetOptionCons(i, "x"))
	}
	// Nothing was corrupted by the rejected writes.
	assert.Equal(t, Option{}, in.Options[0])

	require.NoError(t, in.SetOptionTitle(0, "Stay"))
	require.NoError(t, in.SetOptionPros(0, "stable"))
	require.NoError(t, in.SetOptionCons(0, "boring"))
	assert.Equal(t, Option{Title: "Stay", Pros: "stable", Cons: "boring"}, in.Options[0])
}

func TestComplete(t *testing.T) {
	in := NewInput()
	in.SetTitle("Move cities")
	assert.False(t, in.Complete(), "description missing")
	in.SetDescription("details")
	assert.False(t, in.Complete(), "option title missing")
	require.NoError(t, in.SetOptionTitle(0, "Stay"))
	assert.True(t, in.Complete())

	in.AddOption()
	assert.False(t, in.Complete(), "new option needs a title")
}

func TestNewRecord(t *testing.T) {
	a := Analysis{Summary: "s", Recommendations: []string{"r"}}
	rec := NewRecord("Move cities", a)
	assert.Equal(t, "Move cities", rec.Title)
	assert.Equal(t, a, rec.Analysis)
	assert.Equal(t, time.Now().Format("1/2/2006"), rec.Date)
	assert.NotEmpty(t, rec.ID)
}

func TestHistoryAppendOnly(t *testing.T) {
	var h History
	assert.Zero(t, h.Len())

	h.Append(NewRecord("a", Analysis{Summary: "1"}))
	h.Append(NewRecord("b", Analysis{Summary: "2"}))
	require.Equal(t, 2, h.Len())
	assert.Equal(t, "a", h.Records()[0].Title)
	assert.Equal(t, "b", h.Records()[1].Title)
}
