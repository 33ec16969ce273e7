// Package interview holds the review interview aggregate: one scheduled or
// completed performance review between a collaborator and a manager.
package interview

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("interview not found")

type Status string

const (
	StatusPending   Status = "en_attente"
	StatusScheduled Status = "planifie"
	StatusCompleted Status = "realise"
	StatusPostponed Status = "reporte"
	StatusCancelled Status = "annule"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusScheduled, StatusCompleted, StatusPostponed, StatusCancelled:
		return true
	}
	return false
}

type Type string

const (
	TypeOnboarding Type = "integration"
	TypeFollowUp   Type = "suivi"
	TypeReview     Type = "bilan"
	TypeOther      Type = "autre"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeOnboarding, TypeFollowUp, TypeReview, TypeOther:
		return true
	}
	return false
}

// Interview is the record itself. Planned and actual dates are opaque form
// strings (the legacy dataset mixes ISO dates and free text), while creation
// and update stamps are real timestamps.
type Interview struct {
	id             string
	collaboratorID string
	managerID      string
	typ            Type
	status         Status
	plannedDate    string
	actualDate     string
	location       string
	notes          string
	objectives     string
	summary        string
	createdAt      time.Time
	updatedAt      time.Time
}

func New(collaboratorID, managerID string, typ Type, status Status, plannedDate string, opts ...Option) Interview {
	now := time.Now()
	itv := Interview{
		id:             NewID(),
		collaboratorID: strings.TrimSpace(collaboratorID),
		managerID:      strings.TrimSpace(managerID),
		typ:            typ,
		status:         status,
		plannedDate:    strings.TrimSpace(plannedDate),
		createdAt:      now,
		updatedAt:      now,
	}
	for _, opt := range opts {
		opt(&itv)
	}
	return itv
}

// NewID returns a fresh record identifier. Identifiers used to be derived
// from the list length, which collides as soon as two divergent local copies
// both append; a UUID suffix removes that.
func NewID() string {
	return "ent-" + uuid.NewString()
}

func Hydrate(
	id string,
	collaboratorID string,
	managerID string,
	typ Type,
	status Status,
	plannedDate string,
	actualDate string,
	location string,
	notes string,
	objectives string,
	summary string,
	createdAt time.Time,
	updatedAt time.Time,
) Interview {
	return Interview{
		id:             id,
		collaboratorID: collaboratorID,
		managerID:      managerID,
		typ:            typ,
		status:         status,
		plannedDate:    plannedDate,
		actualDate:     actualDate,
		location:       location,
		notes:          notes,
		objectives:     objectives,
		summary:        summary,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

type Option func(*Interview)

func WithActualDate(actualDate string) Option {
	return func(i *Interview) { i.actualDate = actualDate }
}

func WithLocation(location string) Option {
	return func(i *Interview) { i.location = location }
}

func WithNotes(notes string) Option {
	return func(i *Interview) { i.notes = notes }
}

func WithObjectives(objectives string) Option {
	return func(i *Interview) { i.objectives = objectives }
}

func WithSummary(summary string) Option {
	return func(i *Interview) { i.summary = summary }
}

func WithTimestamps(createdAt, updatedAt time.Time) Option {
	return func(i *Interview) {
		i.createdAt = createdAt
		i.updatedAt = updatedAt
	}
}

func (i Interview) ID() string             { return i.id }
func (i Interview) CollaboratorID() string { return i.collaboratorID }
func (i Interview) ManagerID() string      { return i.managerID }
func (i Interview) Type() Type             { return i.typ }
func (i Interview) Status() Status         { return i.status }
func (i Interview) PlannedDate() string    { return i.plannedDate }
func (i Interview) ActualDate() string     { return i.actualDate }
func (i Interview) Location() string       { return i.location }
func (i Interview) Notes() string          { return i.notes }
func (i Interview) Objectives() string     { return i.objectives }
func (i Interview) Summary() string        { return i.summary }
func (i Interview) CreatedAt() time.Time   { return i.createdAt }
func (i Interview) UpdatedAt() time.Time   { return i.updatedAt }
func (i Interview) IsZero() bool           { return i.id == "" }
