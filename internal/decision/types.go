// Package decision holds the decision draft the user fills in, the analysis
// returned by the completion service, and the session's decision history.
// Everything here is plain in-memory state; nothing is persisted.
package decision

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Option is one candidate answer to a decision. Title is required before
// analysis; pros and cons are free text and may stay empty.
type Option struct {
	Title string
	Pros  string
	Cons  string
}

// Input is the decision draft being edited. It always contains at least one
// option; options are appended, never removed.
type Input struct {
	Title       string
	Description string
	Options     []Option
}

// NewInput returns a draft with a single empty option, matching the state a
// fresh decision form starts in.
func NewInput() *Input {
	return &Input{Options: []Option{{}}}
}

// AddOption appends an empty option to the draft.
func (in *Input) AddOption() {
	in.Options = append(in.Options, Option{})
}

// SetTitle sets the decision title.
func (in *Input) SetTitle(v string) { in.Title = v }

// SetDescription sets the decision description.
func (in *Input) SetDescription(v string) { in.Description = v }

// SetOptionTitle sets the title of the option at index i.
func (in *Input) SetOptionTitle(i int, v string) error {
	if err := in.checkIndex(i); err != nil {
		return err
	}
	in.Options[i].Title = v
	return nil
}

// SetOptionPros sets the pros text of the option at index i.
func (in *Input) SetOptionPros(i int, v string) error {
	if err := in.checkIndex(i); err != nil {
		return err
	}
	in.Options[i].Pros = v
	return nil
}

// SetOptionCons sets the cons text of the option at index i.
func (in *Input) SetOptionCons(i int, v string) error {
	if err := in.checkIndex(i); err != nil {
		return err
	}
	in.Options[i].Cons = v
	return nil
}

func (in *Input) checkIndex(i int) error {
	if i < 0 || i >= len(in.Options) {
		return fmt.Errorf("option index %d out of range (have %d options)", i, len(in.Options))
	}
	return nil
}

// Complete reports whether the draft satisfies the analyzer preconditions:
// non-empty title and description, and a non-empty title on every option.
func (in *Input) Complete() bool {
	if in.Title == "" || in.Description == "" {
		return false
	}
	for _, opt := range in.Options {
		if opt.Title == "" {
			return false
		}
	}
	return true
}

// Analysis is the parsed completion response. It is immutable after
// creation. Summary may be empty when the service returned nothing usable;
// display code must tolerate that.
type Analysis struct {
	Summary         string
	Recommendations []string
}

// Record pairs a completed decision with its analysis. Records are appended
// to the history once per successful analysis and never removed.
type Record struct {
	ID       string
	Title    string
	Date     string // local calendar date at analysis time
	Analysis Analysis
}

// NewRecord builds a history record for the given title and analysis,
// stamped with today's date.
func NewRecord(title string, a Analysis) Record {
	return Record{
		ID:       uuid.NewString(),
		Title:    title,
		Date:     time.Now().Format("1/2/2006"),
		Analysis: a,
	}
}

// History is the append-only list of completed analyses for this session.
type History struct {
	records []Record
}

// Append adds a record to the history.
func (h *History) Append(r Record) {
	h.records = append(h.records, r)
}

// Records returns the records oldest-first. Callers must not mutate the
// returned slice contents.
func (h *History) Records() []Record {
	return h.records
}

// Len returns the number of records.
func (h *History) Len() int {
	return len(h.records)
}
