package flow

import "errors"

// QuoteStep identifies a position in the quote request flow.
type QuoteStep int

// Quote flow steps, in order.
const (
	StepDetails QuoteStep = iota
	StepBudget
	StepDeadline
	StepSubmitted
)

var (
	// ErrEmptyInput is returned when a step is advanced with no input.
	ErrEmptyInput = errors.New("input required for this step")
	// ErrQuoteSubmitted is returned when advancing past submission.
	ErrQuoteSubmitted = errors.New("quote request already submitted")
	// ErrQuoteIncomplete is returned when the result is read early.
	ErrQuoteIncomplete = errors.New("quote request not submitted")
)

// QuoteDetails is the accumulated quote request input.
type QuoteDetails struct {
	Details  string `json:"details"`
	Budget   string `json:"budget"`
	Deadline string `json:"deadline"`
}

// QuoteFlow gates each forward transition on a non-empty input for the
// current step. The flow knows nothing about delivery; the caller takes the
// result on submission.
type QuoteFlow struct {
	step QuoteStep
	form QuoteDetails
}

// NewQuoteFlow starts at the details step.
func NewQuoteFlow() *QuoteFlow {
	return &QuoteFlow{step: StepDetails}
}

// Step returns the current step.
func (f *QuoteFlow) Step() QuoteStep {
	return f.step
}

// Advance records input for the current step and moves forward.
func (f *QuoteFlow) Advance(input string) error {
	if f.step == StepSubmitted {
		return ErrQuoteSubmitted
	}
	if input == "" {
		return ErrEmptyInput
	}

	switch f.step {
	case StepDetails:
		f.form.Details = input
	case StepBudget:
		f.form.Budget = input
	case StepDeadline:
		f.form.Deadline = input
	}
	f.step++
	return nil
}

// Result returns the accumulated input once the flow reached submission.
func (f *QuoteFlow) Result() (QuoteDetails, error) {
	if f.step != StepSubmitted {
		return QuoteDetails{}, ErrQuoteIncomplete
	}
	return f.form, nil
}
