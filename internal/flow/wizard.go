package flow

import (
	"errors"

	apperrors "sellquick/internal/errors"
	"sellquick/internal/model"
)

// WizardStep identifies a position in the intake wizard.
type WizardStep int

// Wizard steps, in order. There is no backward transition.
const (
	StepSelectCategory WizardStep = iota
	StepSelectPriority
	StepSelectBudget
	StepComplete
)

var (
	// ErrEmptySelection is returned when a step receives an empty value.
	ErrEmptySelection = errors.New("selection must not be empty")
	// ErrWizardComplete is returned when selecting past the final step.
	ErrWizardComplete = errors.New("wizard already complete")
	// ErrWizardIncomplete is returned when answers are read before completion.
	ErrWizardIncomplete = errors.New("wizard not complete")
)

// WizardAnswers is the accumulated three-field answer object.
type WizardAnswers struct {
	Category string       `json:"category"`
	Priority string       `json:"priority"`
	Budget   model.Budget `json:"budget"`
}

// IntakeWizard walks a user through category, priority and budget. Each
// selection immediately advances one step; reaching StepComplete makes the
// answers available.
type IntakeWizard struct {
	step    WizardStep
	answers WizardAnswers
}

// NewIntakeWizard starts at the category step.
func NewIntakeWizard() *IntakeWizard {
	return &IntakeWizard{step: StepSelectCategory}
}

// Step returns the current step.
func (w *IntakeWizard) Step() WizardStep {
	return w.step
}

// Select records the value for the current step and advances.
func (w *IntakeWizard) Select(value string) error {
	if w.step == StepComplete {
		return ErrWizardComplete
	}
	if value == "" {
		return ErrEmptySelection
	}

	switch w.step {
	case StepSelectCategory:
		w.answers.Category = value
	case StepSelectPriority:
		w.answers.Priority = value
	case StepSelectBudget:
		if !model.Budget(value).Valid() {
			return apperrors.ErrInvalidBudgetRange
		}
		w.answers.Budget = model.Budget(value)
	}
	w.step++
	return nil
}

// Answers returns the accumulated answers once the wizard is complete.
func (w *IntakeWizard) Answers() (WizardAnswers, error) {
	if w.step != StepComplete {
		return WizardAnswers{}, ErrWizardIncomplete
	}
	return w.answers, nil
}
