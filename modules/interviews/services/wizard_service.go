package services

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/wI2L/jsondiff"

	"github.com/applipro/entretiens/modules/interviews/domain/aggregates/wizard"
	"github.com/applipro/entretiens/pkg/eventbus"
)

// WizardSeeder produces the document an interview starts from when nothing
// was persisted for it yet.
type WizardSeeder interface {
	DefaultWizardDocument(interviewID string) (wizard.Document, error)
}

type WizardService struct {
	repo      wizard.Repository
	seeder    WizardSeeder
	publisher eventbus.EventBus
	log       *logrus.Logger
}

func NewWizardService(repo wizard.Repository, seeder WizardSeeder, publisher eventbus.EventBus, log *logrus.Logger) *WizardService {
	return &WizardService{
		repo:      repo,
		seeder:    seeder,
		publisher: publisher,
		log:       log,
	}
}

// Load returns the persisted document for the interview, falling back to the
// seeded simulation data (or an empty shell) when nothing usable is stored.
func (s *WizardService) Load(ctx context.Context, interviewID string) (wizard.Document, error) {
	fallback, err := s.seeder.DefaultWizardDocument(interviewID)
	if err != nil {
		return wizard.Document{}, err
	}
	return s.repo.GetForInterview(ctx, interviewID, fallback)
}

// Save persists the next version of the document and publishes the change.
// The field-level diff against the previous version goes to the debug log so
// a save can be audited without dumping whole documents.
func (s *WizardService) Save(ctx context.Context, previous, next wizard.Document) error {
	if err := s.repo.Save(ctx, next); err != nil {
		return err
	}

	if s.log != nil && s.log.IsLevelEnabled(logrus.DebugLevel) {
		patch, err := jsondiff.Compare(previous, next)
		if err != nil {
			s.log.WithError(err).Debug("wizard save: diff unavailable")
		} else {
			s.log.WithFields(logrus.Fields{
				"interview_id": next.InterviewID,
				"changes":      patch.String(),
			}).Debug("wizard document saved")
		}
	}

	s.publisher.Publish(wizard.SavedEvent{Result: next})
	return nil
}
