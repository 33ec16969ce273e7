package persistence

import (
	"context"

	gerrors "github.com/go-faster/errors"
	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"

	"github.com/applipro/entretiens/modules/interviews/domain/aggregates/interview"
	"github.com/applipro/entretiens/modules/interviews/infrastructure/persistence/models"
	"github.com/applipro/entretiens/pkg/kvstore"
)

// KVInterviewRepository keeps the denormalized interview list as one JSON
// blob in the key/value store, with seed-then-diverge semantics: the seed
// list materializes on first read and every later read goes to the persisted
// copy, never back to the seed.
//
// Corrupted persisted content degrades to the seed list without rewriting
// the stored bytes; only true absence triggers the initial write. Store I/O
// failures (an unreachable Redis, a full disk) do propagate, they are not
// data corruption.
type KVInterviewRepository struct {
	store kvstore.Store
	key   string
	seed  []interview.WithDetails
	log   *logrus.Logger
}

func NewKVInterviewRepository(store kvstore.Store, key string, seed []interview.WithDetails, log *logrus.Logger) interview.Repository {
	return &KVInterviewRepository{
		store: store,
		key:   key,
		seed:  seed,
		log:   log,
	}
}

func (r *KVInterviewRepository) All(ctx context.Context) ([]interview.WithDetails, error) {
	raw, found, err := r.store.Get(ctx, r.key)
	if err != nil {
		return nil, gerrors.Wrap(err, "load interviews")
	}
	if !found {
		if err := r.persist(ctx, r.seed); err != nil {
			return nil, err
		}
		return r.seed, nil
	}

	var rows []models.EntretienWithDetails
	if err := json.Unmarshal(raw, &rows); err != nil {
		if r.log != nil {
			r.log.WithError(err).Warn("interview store: unreadable persisted list, falling back to seed")
		}
		return r.seed, nil
	}
	if len(rows) == 0 {
		return r.seed, nil
	}

	list := make([]interview.WithDetails, 0, len(rows))
	for _, row := range rows {
		list = append(list, ToDomainWithDetails(row))
	}
	return list, nil
}

func (r *KVInterviewRepository) Save(ctx context.Context, list []interview.WithDetails) error {
	return r.persist(ctx, list)
}

func (r *KVInterviewRepository) Upsert(ctx context.Context, record interview.WithDetails) ([]interview.WithDetails, error) {
	current, err := r.All(ctx)
	if err != nil {
		return nil, err
	}

	next := make([]interview.WithDetails, len(current))
	copy(next, current)

	replaced := false
	for i, existing := range next {
		if existing.ID() == record.ID() {
			next[i] = record
			replaced = true
			break
		}
	}
	if !replaced {
		next = append(next, record)
	}

	if err := r.persist(ctx, next); err != nil {
		return nil, err
	}
	return next, nil
}

func (r *KVInterviewRepository) UpdateStatus(ctx context.Context, id string, status interview.Status, patch interview.StatusPatch) ([]interview.WithDetails, error) {
	current, err := r.All(ctx)
	if err != nil {
		return nil, err
	}

	index := -1
	for i, existing := range current {
		if existing.ID() == id {
			index = i
			break
		}
	}
	// Unknown ID is a no-op, not an error.
	if index == -1 {
		return current, nil
	}

	next := make([]interview.WithDetails, len(current))
	copy(next, current)
	next[index] = current[index].WithStatus(status, patch)

	if err := r.persist(ctx, next); err != nil {
		return nil, err
	}
	return next, nil
}

func (r *KVInterviewRepository) GetByID(ctx context.Context, id string) (interview.WithDetails, error) {
	list, err := r.All(ctx)
	if err != nil {
		return interview.WithDetails{}, err
	}
	for _, existing := range list {
		if existing.ID() == id {
			return existing, nil
		}
	}
	return interview.WithDetails{}, interview.ErrNotFound
}

func (r *KVInterviewRepository) persist(ctx context.Context, list []interview.WithDetails) error {
	rows := make([]models.EntretienWithDetails, 0, len(list))
	for _, record := range list {
		rows = append(rows, ToDBWithDetails(record))
	}
	raw, err := json.Marshal(rows)
	if err != nil {
		return gerrors.Wrap(err, "marshal interviews")
	}
	if err := r.store.Set(ctx, r.key, raw); err != nil {
		return gerrors.Wrap(err, "save interviews")
	}
	return nil
}
