package mappers_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/applipro/entretiens/modules/interviews/domain/aggregates/interview"
	"github.com/applipro/entretiens/modules/interviews/domain/entities/staff"
	"github.com/applipro/entretiens/modules/interviews/presentation/mappers"
)

func TestInterviewToRow(t *testing.T) {
	collaborator := staff.NewCollaborator("col-1", "Martin", "Sophie", "sophie.martin@example.fr",
		staff.WithJobTitle("Agent d'exploitation"))
	manager := staff.NewManager("man-1", "Jeantet", "Pierre", "pierre.jeantet@example.fr")
	itv := interview.Hydrate(
		"ent-1", "col-1", "man-1",
		interview.TypeReview, interview.StatusCompleted,
		"2025-03-15", "2025-03-20", "", "", "", "",
		time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 20, 17, 30, 0, 0, time.UTC),
	)

	row := mappers.InterviewToRow(interview.NewWithDetails(itv, collaborator, manager))
	require.Equal(t, "ent-1", row.ID)
	require.Equal(t, "Sophie Martin", row.CollaboratorName)
	require.Equal(t, "SM", row.CollaboratorInitials)
	require.Equal(t, "Pierre Jeantet", row.ManagerName)
	require.Equal(t, "Bilan", row.TypeLabel)
	require.Equal(t, "Réalisé", row.StatusLabel)
	require.Equal(t, "15/03/2025", row.PlannedDate)
	require.Equal(t, "20/03/2025", row.ActualDate)
	require.Equal(t, "20/03/2025", row.UpdatedAt)
}

func TestStatusAndTypeLabels(t *testing.T) {
	require.Equal(t, "En attente", mappers.StatusLabel(interview.StatusPending))
	require.Equal(t, "Planifié", mappers.StatusLabel(interview.StatusScheduled))
	require.Equal(t, "Annulé", mappers.StatusLabel(interview.StatusCancelled))
	require.Equal(t, "inconnu", mappers.StatusLabel(interview.Status("inconnu")))

	require.Equal(t, "Intégration", mappers.TypeLabel(interview.TypeOnboarding))
	require.Equal(t, "Suivi", mappers.TypeLabel(interview.TypeFollowUp))
	require.Equal(t, "autre chose", mappers.TypeLabel(interview.Type("autre chose")))
}

func TestInitials(t *testing.T) {
	require.Equal(t, "SM", mappers.Initials("Sophie", "Martin"))
	require.Equal(t, "ÉB", mappers.Initials("élodie", "bernard"))
	require.Equal(t, "K", mappers.Initials("Karim", ""))
	require.Empty(t, mappers.Initials("", ""))
}

func TestFormatDate(t *testing.T) {
	require.Equal(t, "15/03/2025", mappers.FormatDate("2025-03-15"))
	require.Equal(t, "20/03/2025", mappers.FormatDate("2025-03-20T17:30:00Z"))
	require.Equal(t, "Mars 2025", mappers.FormatDate("Mars 2025"), "free text passes through")
	require.Empty(t, mappers.FormatDate(""))
}
