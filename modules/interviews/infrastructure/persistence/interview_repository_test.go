package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/applipro/entretiens/modules/interviews/domain/aggregates/interview"
	"github.com/applipro/entretiens/modules/interviews/domain/entities/staff"
	"github.com/applipro/entretiens/modules/interviews/infrastructure/persistence"
	"github.com/applipro/entretiens/pkg/kvstore"
)

const testListKey = "demo-entretiens-with-details-v1"

func testSeed(t *testing.T) []interview.WithDetails {
	t.Helper()
	collaborator := staff.NewCollaborator("col-1", "Martin", "Sophie", "sophie.martin@example.fr",
		staff.WithJobTitle("Agent d'exploitation"))
	manager := staff.NewManager("man-1", "Jeantet", "Pierre", "pierre.jeantet@example.fr")

	first := interview.Hydrate(
		"ent-1", "col-1", "man-1",
		interview.TypeReview, interview.StatusScheduled,
		"2025-03-15", "", "Bureau exploitation", "", "", "",
		time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC),
	)
	second := interview.Hydrate(
		"ent-2", "col-1", "man-1",
		interview.TypeFollowUp, interview.StatusPending,
		"2025-04-10", "", "", "", "", "",
		time.Date(2025, 2, 20, 10, 0, 0, 0, time.UTC),
		time.Date(2025, 2, 20, 10, 0, 0, 0, time.UTC),
	)
	return []interview.WithDetails{
		interview.NewWithDetails(first, collaborator, manager),
		interview.NewWithDetails(second, collaborator, manager),
	}
}

func newTestRepository(t *testing.T) (interview.Repository, kvstore.Store) {
	t.Helper()
	store := kvstore.NewMemoryStore()
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return persistence.NewKVInterviewRepository(store, testListKey, testSeed(t), log), store
}

func TestInterviewRepository_FirstReadPersistsSeed(t *testing.T) {
	ctx := context.Background()
	repo, store := newTestRepository(t)

	list, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "ent-1", list[0].ID())

	raw, found, err := store.Get(ctx, testListKey)
	require.NoError(t, err)
	require.True(t, found, "seed must be written on first read")
	require.NotEmpty(t, raw)

	// Later reads come from the persisted copy, not the seed.
	record, err := repo.Upsert(ctx, list[0].WithStatus(interview.StatusCancelled, interview.StatusPatch{}))
	require.NoError(t, err)
	require.Equal(t, interview.StatusCancelled, record[0].Status())

	again, err := repo.All(ctx)
	require.NoError(t, err)
	require.Equal(t, interview.StatusCancelled, again[0].Status())
}

func TestInterviewRepository_PersistedListWinsOverLaterSeed(t *testing.T) {
	ctx := context.Background()
	repo, store := newTestRepository(t)

	list, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	// A second repository over the same store carries a divergent seed. The
	// store already holds a list, so its seed never shows through.
	divergent := testSeed(t)[:1]
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	other := persistence.NewKVInterviewRepository(store, testListKey, divergent, log)

	again, err := other.All(ctx)
	require.NoError(t, err)
	require.Len(t, again, 2, "the persisted list wins over the new seed")
	require.Equal(t, "ent-1", again[0].ID())
	require.Equal(t, "ent-2", again[1].ID())
}

func TestInterviewRepository_CorruptBlobFallsBackWithoutRewrite(t *testing.T) {
	ctx := context.Background()
	repo, store := newTestRepository(t)

	require.NoError(t, store.Set(ctx, testListKey, []byte("{not json")))

	list, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2, "corrupt blob degrades to the seed")

	raw, found, err := store.Get(ctx, testListKey)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, []byte("{not json"), raw, "fallback must not repersist over the stored bytes")
}

func TestInterviewRepository_EmptyListFallsBack(t *testing.T) {
	ctx := context.Background()
	repo, store := newTestRepository(t)

	require.NoError(t, store.Set(ctx, testListKey, []byte("[]")))

	list, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	raw, _, err := store.Get(ctx, testListKey)
	require.NoError(t, err)
	require.Equal(t, []byte("[]"), raw)
}

func TestInterviewRepository_UpsertReplacesThenAppends(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepository(t)

	seed := testSeed(t)
	updated := seed[0].WithStatus(interview.StatusCompleted, interview.StatusPatch{})

	list, err := repo.Upsert(ctx, updated)
	require.NoError(t, err)
	require.Len(t, list, 2, "matching ID replaces in place")
	require.Equal(t, interview.StatusCompleted, list[0].Status())

	// Upserting the same record again is idempotent on length.
	list, err = repo.Upsert(ctx, updated)
	require.NoError(t, err)
	require.Len(t, list, 2)

	fresh := interview.New("col-1", "man-1", interview.TypeOther, interview.StatusPending, "2025-06-01")
	record := interview.NewWithDetails(fresh, seed[0].Collaborator(), seed[0].Manager())

	list, err = repo.Upsert(ctx, record)
	require.NoError(t, err)
	require.Len(t, list, 3, "unknown ID appends")
	require.Equal(t, fresh.ID(), list[2].ID())
}

func TestInterviewRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepository(t)

	actual := "2025-03-20"
	list, err := repo.UpdateStatus(ctx, "ent-1", interview.StatusCompleted, interview.StatusPatch{ActualDate: &actual})
	require.NoError(t, err)
	require.Equal(t, interview.StatusCompleted, list[0].Status())
	require.Equal(t, "2025-03-20", list[0].Interview().ActualDate())

	// Only status and the patched fields change; the rest of the record,
	// the update stamp included, stays as seeded.
	require.Equal(t, time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC), list[0].Interview().UpdatedAt())
	require.Equal(t, "2025-03-15", list[0].Interview().PlannedDate())
	require.Equal(t, "Bureau exploitation", list[0].Interview().Location())

	// Postponing clears the actual date again.
	list, err = repo.UpdateStatus(ctx, "ent-1", interview.StatusPostponed, interview.StatusPatch{ClearActualDate: true})
	require.NoError(t, err)
	require.Equal(t, interview.StatusPostponed, list[0].Status())
	require.Empty(t, list[0].Interview().ActualDate())

	persisted, err := repo.All(ctx)
	require.NoError(t, err)
	require.Equal(t, interview.StatusPostponed, persisted[0].Status())
}

func TestInterviewRepository_UpdateStatusUnknownIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepository(t)

	before, err := repo.All(ctx)
	require.NoError(t, err)

	after, err := repo.UpdateStatus(ctx, "ent-missing", interview.StatusCancelled, interview.StatusPatch{})
	require.NoError(t, err)
	require.Equal(t, len(before), len(after))
	for i := range before {
		require.Equal(t, before[i].Status(), after[i].Status())
	}
}

func TestInterviewRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepository(t)

	record, err := repo.GetByID(ctx, "ent-2")
	require.NoError(t, err)
	require.Equal(t, "ent-2", record.ID())

	_, err = repo.GetByID(ctx, "ent-missing")
	require.ErrorIs(t, err, interview.ErrNotFound)
}
