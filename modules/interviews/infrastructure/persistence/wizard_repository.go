package persistence

import (
	"context"

	gerrors "github.com/go-faster/errors"
	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"

	"github.com/applipro/entretiens/modules/interviews/domain/aggregates/wizard"
	"github.com/applipro/entretiens/modules/interviews/infrastructure/persistence/models"
	"github.com/applipro/entretiens/pkg/kvstore"
)

// KVWizardRepository persists the interview-ID → wizard document mapping as
// one JSON object blob. A save rewrites the entire mapping; two writers
// racing on the same key end with whichever write landed last, in full.
type KVWizardRepository struct {
	store kvstore.Store
	key   string
	log   *logrus.Logger
}

func NewKVWizardRepository(store kvstore.Store, key string, log *logrus.Logger) wizard.Repository {
	return &KVWizardRepository{
		store: store,
		key:   key,
		log:   log,
	}
}

func (r *KVWizardRepository) GetForInterview(ctx context.Context, interviewID string, fallback wizard.Document) (wizard.Document, error) {
	raw, found, err := r.store.Get(ctx, r.key)
	if err != nil {
		return wizard.Document{}, gerrors.Wrap(err, "load wizard mapping")
	}
	if !found {
		// First access initializes the mapping with just this document.
		if err := r.persist(ctx, map[string]models.WizardEntretien{
			interviewID: ToDBWizardDocument(fallback),
		}); err != nil {
			return wizard.Document{}, err
		}
		return fallback, nil
	}

	var mapping map[string]models.WizardEntretien
	if err := json.Unmarshal(raw, &mapping); err != nil {
		if r.log != nil {
			r.log.WithError(err).Warn("wizard store: unreadable persisted mapping, falling back")
		}
		return fallback, nil
	}

	model, ok := mapping[interviewID]
	if !ok {
		return fallback, nil
	}
	return ToDomainWizardDocument(model), nil
}

func (r *KVWizardRepository) Save(ctx context.Context, doc wizard.Document) error {
	raw, found, err := r.store.Get(ctx, r.key)
	if err != nil {
		return gerrors.Wrap(err, "load wizard mapping")
	}

	mapping := map[string]models.WizardEntretien{}
	if found {
		if err := json.Unmarshal(raw, &mapping); err != nil {
			if r.log != nil {
				r.log.WithError(err).Warn("wizard store: unreadable persisted mapping, rewriting")
			}
			mapping = map[string]models.WizardEntretien{}
		}
	}

	mapping[doc.InterviewID] = ToDBWizardDocument(doc)
	return r.persist(ctx, mapping)
}

func (r *KVWizardRepository) persist(ctx context.Context, mapping map[string]models.WizardEntretien) error {
	raw, err := json.Marshal(mapping)
	if err != nil {
		return gerrors.Wrap(err, "marshal wizard mapping")
	}
	if err := r.store.Set(ctx, r.key, raw); err != nil {
		return gerrors.Wrap(err, "save wizard mapping")
	}
	return nil
}
