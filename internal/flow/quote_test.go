package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuoteFlow_HappyPath(t *testing.T) {
	f := NewQuoteFlow()
	assert.Equal(t, StepDetails, f.Step())

	assert.NoError(t, f.Advance("5 silk suits need delicate dry cleaning"))
	assert.Equal(t, StepBudget, f.Step())

	assert.NoError(t, f.Advance("100"))
	assert.Equal(t, StepDeadline, f.Step())

	assert.NoError(t, f.Advance("2026-09-15"))
	assert.Equal(t, StepSubmitted, f.Step())

	form, err := f.Result()
	assert.NoError(t, err)
	assert.Equal(t, QuoteDetails{
		Details:  "5 silk suits need delicate dry cleaning",
		Budget:   "100",
		Deadline: "2026-09-15",
	}, form)
}

func TestQuoteFlow_GatesEachStepOnInput(t *testing.T) {
	f := NewQuoteFlow()

	assert.ErrorIs(t, f.Advance(""), ErrEmptyInput)
	assert.Equal(t, StepDetails, f.Step())

	assert.NoError(t, f.Advance("details"))
	assert.ErrorIs(t, f.Advance(""), ErrEmptyInput)
	assert.Equal(t, StepBudget, f.Step())

	assert.NoError(t, f.Advance("50"))
	assert.ErrorIs(t, f.Advance(""), ErrEmptyInput)
	assert.Equal(t, StepDeadline, f.Step())
}

func TestQuoteFlow_Terminal(t *testing.T) {
	f := NewQuoteFlow()
	assert.NoError(t, f.Advance("details"))
	assert.NoError(t, f.Advance("50"))
	assert.NoError(t, f.Advance("tomorrow"))

	assert.ErrorIs(t, f.Advance("more"), ErrQuoteSubmitted)
}

func TestQuoteFlow_ResultBeforeSubmission(t *testing.T) {
	f := NewQuoteFlow()
	assert.NoError(t, f.Advance("details"))

	_, err := f.Result()
	assert.ErrorIs(t, err, ErrQuoteIncomplete)
}
