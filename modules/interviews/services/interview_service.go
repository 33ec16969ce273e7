package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	gerrors "github.com/go-faster/errors"

	"github.com/applipro/entretiens/modules/interviews/domain/aggregates/interview"
	"github.com/applipro/entretiens/modules/interviews/domain/entities/staff"
	"github.com/applipro/entretiens/pkg/eventbus"
)

var (
	ErrUnknownCollaborator = gerrors.New("unknown collaborator")
	ErrUnknownManager      = gerrors.New("unknown manager")
)

// ValidationError carries the per-field inline messages a rejected form
// submission produces.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

// StaffDirectory resolves the reference people a record snapshots at write
// time. The fixture dataset implements it.
type StaffDirectory interface {
	CollaboratorByID(id string) (staff.Collaborator, bool, error)
	ManagerByID(id string) (staff.Manager, bool, error)
}

type InterviewService struct {
	repo      interview.Repository
	directory StaffDirectory
	publisher eventbus.EventBus
}

func NewInterviewService(repo interview.Repository, directory StaffDirectory, publisher eventbus.EventBus) *InterviewService {
	return &InterviewService{
		repo:      repo,
		directory: directory,
		publisher: publisher,
	}
}

func (s *InterviewService) GetAll(ctx context.Context) ([]interview.WithDetails, error) {
	return s.repo.All(ctx)
}

func (s *InterviewService) GetByID(ctx context.Context, id string) (interview.WithDetails, error) {
	return s.repo.GetByID(ctx, id)
}

// Find filters the collection in memory, keeping storage order. Each filter
// dimension is conjunctive and an empty value matches everything.
func (s *InterviewService) Find(ctx context.Context, params *interview.FindParams) ([]interview.WithDetails, error) {
	list, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	if params == nil {
		return list, nil
	}

	q := strings.ToLower(strings.TrimSpace(params.Q))
	out := make([]interview.WithDetails, 0, len(list))
	for _, record := range list {
		if params.Status != "" && record.Status() != params.Status {
			continue
		}
		if params.Type != "" && record.Type() != params.Type {
			continue
		}
		if q != "" && !matchesQuery(record, q) {
			continue
		}
		out = append(out, record)
	}
	return out, nil
}

// The search box matches the collaborator name, the collaborator email and
// the manager name. Nothing else.
func matchesQuery(record interview.WithDetails, q string) bool {
	return strings.Contains(strings.ToLower(record.Collaborator().FullName()), q) ||
		strings.Contains(strings.ToLower(record.Collaborator().Email()), q) ||
		strings.Contains(strings.ToLower(record.Manager().FullName()), q)
}

func (s *InterviewService) Create(ctx context.Context, data *interview.CreateDTO) (interview.WithDetails, error) {
	if fields, ok := data.Ok(); !ok {
		return interview.WithDetails{}, &ValidationError{Fields: fields}
	}

	record, err := s.snapshot(data.ToEntity())
	if err != nil {
		return interview.WithDetails{}, err
	}
	if _, err := s.repo.Upsert(ctx, record); err != nil {
		return interview.WithDetails{}, err
	}
	s.publisher.Publish(interview.CreatedEvent{Data: *data, Result: record})
	return record, nil
}

func (s *InterviewService) Update(ctx context.Context, id string, data *interview.UpdateDTO) (interview.WithDetails, error) {
	if fields, ok := data.Ok(); !ok {
		return interview.WithDetails{}, &ValidationError{Fields: fields}
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return interview.WithDetails{}, err
	}

	// The edit form re-submits staff IDs, so the snapshots are re-resolved.
	record, err := s.snapshot(data.ToEntity(existing.Interview(), time.Now()))
	if err != nil {
		return interview.WithDetails{}, err
	}
	if _, err := s.repo.Upsert(ctx, record); err != nil {
		return interview.WithDetails{}, err
	}
	s.publisher.Publish(interview.UpdatedEvent{Data: *data, Result: record})
	return record, nil
}

// SimulateStatus plays a manager-side status transition on the record.
// Completing sets the actual date to today, postponing clears it, any other
// status leaves the date alone. An unknown ID changes nothing.
func (s *InterviewService) SimulateStatus(ctx context.Context, id string, status interview.Status) ([]interview.WithDetails, error) {
	patch := interview.StatusPatch{}
	switch status {
	case interview.StatusCompleted:
		today := time.Now().Format("2006-01-02")
		patch.ActualDate = &today
	case interview.StatusPostponed:
		patch.ClearActualDate = true
	}

	list, err := s.repo.UpdateStatus(ctx, id, status, patch)
	if err != nil {
		return nil, err
	}
	for _, record := range list {
		if record.ID() == id {
			s.publisher.Publish(interview.StatusChangedEvent{ID: id, Status: status, Result: record})
			break
		}
	}
	return list, nil
}

func (s *InterviewService) snapshot(entity interview.Interview) (interview.WithDetails, error) {
	collaborator, found, err := s.directory.CollaboratorByID(entity.CollaboratorID())
	if err != nil {
		return interview.WithDetails{}, err
	}
	if !found {
		return interview.WithDetails{}, gerrors.Wrapf(ErrUnknownCollaborator, "id %q", entity.CollaboratorID())
	}
	manager, found, err := s.directory.ManagerByID(entity.ManagerID())
	if err != nil {
		return interview.WithDetails{}, err
	}
	if !found {
		return interview.WithDetails{}, gerrors.Wrapf(ErrUnknownManager, "id %q", entity.ManagerID())
	}
	return interview.NewWithDetails(entity, collaborator, manager), nil
}
