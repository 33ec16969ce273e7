package services

import (
	"context"

	"github.com/applipro/entretiens/modules/interviews/domain/aggregates/wizard"
)

// WizardMachine drives one walk through the four wizard steps for a single
// interview. It holds the authoritative in-memory document and advances or
// retreats one step at a time, clamped at both ends.
//
// Edits follow an apply-then-persist-then-display protocol: the mutation runs
// on a copy, the copy is persisted, and only a successful persist replaces
// the displayed document. A failed save therefore never shows state that the
// store does not hold.
type WizardMachine struct {
	svc  *WizardService
	step wizard.Step
	doc  wizard.Document
}

// NewWizardMachine loads the interview's document and starts at the
// collaborator preparation step.
func NewWizardMachine(ctx context.Context, svc *WizardService, interviewID string) (*WizardMachine, error) {
	doc, err := svc.Load(ctx, interviewID)
	if err != nil {
		return nil, err
	}
	return &WizardMachine{
		svc:  svc,
		step: wizard.StepCollaboratorPrep,
		doc:  doc,
	}, nil
}

func (m *WizardMachine) Step() wizard.Step         { return m.step }
func (m *WizardMachine) Document() wizard.Document { return m.doc }

// GoNext advances one step and reports whether the step changed.
func (m *WizardMachine) GoNext() bool {
	next := m.step.Next()
	moved := next != m.step
	m.step = next
	return moved
}

// GoPrev retreats one step and reports whether the step changed.
func (m *WizardMachine) GoPrev() bool {
	prev := m.step.Prev()
	moved := prev != m.step
	m.step = prev
	return moved
}

// Apply runs the mutation on a copy of the document, persists the result and
// swaps it in on success. On failure the in-memory document is unchanged.
func (m *WizardMachine) Apply(ctx context.Context, mutate func(*wizard.Document)) error {
	next := m.doc.Clone()
	mutate(&next)
	next.InterviewID = m.doc.InterviewID

	if err := m.svc.Save(ctx, m.doc, next); err != nil {
		return err
	}
	m.doc = next
	return nil
}
