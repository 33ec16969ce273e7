package interview

import (
	"github.com/applipro/entretiens/modules/interviews/domain/entities/staff"
)

// WithDetails is an interview joined with its resolved collaborator and
// manager. This denormalized shape is what the record store persists and what
// views display. The snapshots are taken when the record is written; later
// fixture edits do not reach already-persisted records (snapshot-on-write).
type WithDetails struct {
	interview    Interview
	collaborator staff.Collaborator
	manager      staff.Manager
}

func NewWithDetails(itv Interview, collaborator staff.Collaborator, manager staff.Manager) WithDetails {
	return WithDetails{
		interview:    itv,
		collaborator: collaborator,
		manager:      manager,
	}
}

func (w WithDetails) Interview() Interview            { return w.interview }
func (w WithDetails) Collaborator() staff.Collaborator { return w.collaborator }
func (w WithDetails) Manager() staff.Manager           { return w.manager }
func (w WithDetails) ID() string                       { return w.interview.ID() }
func (w WithDetails) Status() Status                   { return w.interview.Status() }
func (w WithDetails) Type() Type                       { return w.interview.Type() }
func (w WithDetails) IsZero() bool                     { return w.interview.IsZero() }

// WithStatus returns a copy with the status replaced and the patch applied.
// Every other field, the update stamp included, is carried over as is. Used
// by the status-simulation path.
func (w WithDetails) WithStatus(status Status, patch StatusPatch) WithDetails {
	itv := w.interview
	if patch.ActualDate != nil {
		itv.actualDate = *patch.ActualDate
	}
	if patch.ClearActualDate {
		itv.actualDate = ""
	}
	if patch.Location != nil {
		itv.location = *patch.Location
	}
	if patch.Summary != nil {
		itv.summary = *patch.Summary
	}
	itv.status = status
	return WithDetails{
		interview:    itv,
		collaborator: w.collaborator,
		manager:      w.manager,
	}
}

// StatusPatch carries the side fields a status transition may rewrite.
// A nil pointer leaves the field alone; ClearActualDate wins over ActualDate.
type StatusPatch struct {
	ActualDate      *string
	ClearActualDate bool
	Location        *string
	Summary         *string
}
