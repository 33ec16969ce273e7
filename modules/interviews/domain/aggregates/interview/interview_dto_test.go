package interview_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/applipro/entretiens/modules/interviews/domain/aggregates/interview"
)

func TestCreateDTO_Ok(t *testing.T) {
	dto := &interview.CreateDTO{}
	fields, ok := dto.Ok()
	require.False(t, ok)
	require.Equal(t, "Le collaborateur est obligatoire", fields["CollaboratorID"])
	require.Equal(t, "Le manager est obligatoire", fields["ManagerID"])
	require.Equal(t, "La date prévue est obligatoire", fields["PlannedDate"])

	dto = &interview.CreateDTO{
		CollaboratorID: "  col-1  ",
		ManagerID:      "man-1",
		PlannedDate:    "2025-06-01",
	}
	fields, ok = dto.Ok()
	require.True(t, ok, "unexpected errors: %v", fields)
	require.Empty(t, fields)
	require.Equal(t, "col-1", dto.CollaboratorID, "IDs are trimmed")
	require.Equal(t, interview.TypeOnboarding, dto.Type, "type defaults when omitted")
	require.Equal(t, interview.StatusScheduled, dto.Status, "status defaults when omitted")
}

func TestCreateDTO_RejectsUnknownEnums(t *testing.T) {
	dto := &interview.CreateDTO{
		CollaboratorID: "col-1",
		ManagerID:      "man-1",
		Type:           interview.Type("pique-nique"),
		Status:         interview.Status("perdu"),
		PlannedDate:    "2025-06-01",
	}
	fields, ok := dto.Ok()
	require.False(t, ok)
	require.Equal(t, "Type d'entretien inconnu", fields["Type"])
	require.Equal(t, "Statut d'entretien inconnu", fields["Status"])
}

func TestCreateDTO_ToEntity(t *testing.T) {
	dto := &interview.CreateDTO{
		CollaboratorID: "col-2",
		ManagerID:      "man-1",
		Type:           interview.TypeFollowUp,
		Status:         interview.StatusPending,
		PlannedDate:    "2025-05-01",
		Location:       "Atelier",
	}
	_, ok := dto.Ok()
	require.True(t, ok)

	entity := dto.ToEntity()
	require.NotEmpty(t, entity.ID())
	require.Equal(t, "col-2", entity.CollaboratorID())
	require.Equal(t, interview.TypeFollowUp, entity.Type())
	require.Equal(t, "Atelier", entity.Location())
	require.False(t, entity.CreatedAt().IsZero())

	other := dto.ToEntity()
	require.NotEqual(t, entity.ID(), other.ID(), "each entity gets its own identifier")
}

func TestUpdateDTO_ToEntityKeepsIdentity(t *testing.T) {
	existing := interview.Hydrate(
		"ent-9", "col-1", "man-1",
		interview.TypeReview, interview.StatusScheduled,
		"2025-03-01", "", "", "", "", "",
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	)

	dto := &interview.UpdateDTO{
		CollaboratorID: "col-2",
		ManagerID:      "man-2",
		Type:           interview.TypeReview,
		Status:         interview.StatusCompleted,
		PlannedDate:    "2025-03-01",
		ActualDate:     "2025-03-02",
	}
	_, ok := dto.Ok()
	require.True(t, ok)

	now := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)
	entity := dto.ToEntity(existing, now)
	require.Equal(t, "ent-9", entity.ID())
	require.Equal(t, existing.CreatedAt(), entity.CreatedAt())
	require.Equal(t, now, entity.UpdatedAt())
	require.Equal(t, "col-2", entity.CollaboratorID())
	require.Equal(t, interview.StatusCompleted, entity.Status())
	require.Equal(t, "2025-03-02", entity.ActualDate())
}
