package fixtures_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/applipro/entretiens/modules/interviews/domain/aggregates/interview"
	"github.com/applipro/entretiens/modules/interviews/domain/aggregates/wizard"
	"github.com/applipro/entretiens/modules/interviews/infrastructure/fixtures"
)

func TestFixtures_Load(t *testing.T) {
	collaborators, err := fixtures.Collaborators()
	require.NoError(t, err)
	require.Len(t, collaborators, 5)

	managers, err := fixtures.Managers()
	require.NoError(t, err)
	require.Len(t, managers, 2)

	interviews, err := fixtures.Interviews()
	require.NoError(t, err)
	require.Len(t, interviews, 5)
	for _, itv := range interviews {
		require.True(t, itv.Status().IsValid(), "interview %s has status %q", itv.ID(), itv.Status())
		require.True(t, itv.Type().IsValid(), "interview %s has type %q", itv.ID(), itv.Type())
	}
}

func TestFixtures_ByID(t *testing.T) {
	collaborator, found, err := fixtures.CollaboratorByID("col-1")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "Sophie Martin", collaborator.FullName())

	_, found, err = fixtures.CollaboratorByID("col-999")
	require.NoError(t, err)
	require.False(t, found)

	manager, found, err := fixtures.ManagerByID("man-2")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "Nathalie Roussel", manager.FullName())
}

func TestFixtures_InterviewsWithDetails(t *testing.T) {
	records, err := fixtures.InterviewsWithDetails()
	require.NoError(t, err)
	require.Len(t, records, 5)

	var first interview.WithDetails
	for _, record := range records {
		if record.ID() == "ent-1" {
			first = record
		}
		require.Equal(t, record.Interview().CollaboratorID(), record.Collaborator().ID())
		require.Equal(t, record.Interview().ManagerID(), record.Manager().ID())
	}
	require.False(t, first.IsZero())
	require.Equal(t, interview.StatusCompleted, first.Status())
	require.Equal(t, "Pierre Jeantet", first.Manager().FullName())
}

func TestDefaultWizardDocument_Seeded(t *testing.T) {
	doc, err := fixtures.DefaultWizardDocument("ent-1")
	require.NoError(t, err)
	require.Equal(t, "ent-1", doc.InterviewID)
	require.NotEmpty(t, doc.CollaboratorPrep.Evaluations)
	require.NotEmpty(t, doc.ManagerPrep.Strengths)
	require.Equal(t, wizard.SignaturePending, doc.Validation.CollaboratorSignature)

	// Mutating the returned document must not leak into later reads.
	doc.ManagerPrep.Strengths[0] = "changed"
	again, err := fixtures.DefaultWizardDocument("ent-1")
	require.NoError(t, err)
	require.NotEqual(t, "changed", again.ManagerPrep.Strengths[0])
}

func TestDefaultWizardDocument_Shell(t *testing.T) {
	doc, err := fixtures.DefaultWizardDocument("ent-4")
	require.NoError(t, err)
	require.Equal(t, "ent-4", doc.InterviewID)
	require.Equal(t, "Préparation non saisie côté collaborateur (données simulées).", doc.CollaboratorPrep.GeneralFeeling)
	require.Equal(t, 3, doc.CollaboratorPrep.GlobalSentiment)
	require.Empty(t, doc.CollaboratorPrep.Evaluations)
	require.Equal(t, "Préparation non saisie côté manager (données simulées).", doc.ManagerPrep.Synthesis)
	require.Equal(t, "Aucune remarque saisie (simulation).", doc.Validation.CollaboratorRemarks)
	require.Equal(t, wizard.SignaturePending, doc.Validation.ManagerValidation)
}
