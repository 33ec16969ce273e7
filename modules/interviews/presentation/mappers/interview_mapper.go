package mappers

import (
	"strings"
	"time"

	"github.com/applipro/entretiens/modules/interviews/domain/aggregates/interview"
	"github.com/applipro/entretiens/modules/interviews/presentation/viewmodels"
)

var statusLabels = map[interview.Status]string{
	interview.StatusPending:   "En attente",
	interview.StatusScheduled: "Planifié",
	interview.StatusCompleted: "Réalisé",
	interview.StatusPostponed: "Reporté",
	interview.StatusCancelled: "Annulé",
}

var typeLabels = map[interview.Type]string{
	interview.TypeOnboarding: "Intégration",
	interview.TypeFollowUp:   "Suivi",
	interview.TypeReview:     "Bilan",
	interview.TypeOther:      "Autre",
}

func StatusLabel(status interview.Status) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return string(status)
}

func TypeLabel(typ interview.Type) string {
	if label, ok := typeLabels[typ]; ok {
		return label
	}
	return string(typ)
}

func Initials(firstName, lastName string) string {
	initials := ""
	if firstName != "" {
		initials += string([]rune(firstName)[0])
	}
	if lastName != "" {
		initials += string([]rune(lastName)[0])
	}
	return strings.ToUpper(initials)
}

// FormatDate renders a stored date as dd/mm/yyyy. Stored values are either
// plain dates or RFC3339 stamps; anything else passes through unchanged, the
// dataset mixes free text into date fields.
func FormatDate(value string) string {
	if value == "" {
		return ""
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("02/01/2006")
		}
	}
	return value
}

func InterviewToRow(record interview.WithDetails) *viewmodels.InterviewRow {
	collaborator := record.Collaborator()
	manager := record.Manager()
	itv := record.Interview()
	return &viewmodels.InterviewRow{
		ID:                   itv.ID(),
		CollaboratorName:     collaborator.FullName(),
		CollaboratorInitials: Initials(collaborator.FirstName(), collaborator.LastName()),
		CollaboratorJobTitle: collaborator.JobTitle(),
		CollaboratorEmail:    collaborator.Email(),
		ManagerName:          manager.FullName(),
		TypeLabel:            TypeLabel(itv.Type()),
		StatusLabel:          StatusLabel(itv.Status()),
		PlannedDate:          FormatDate(itv.PlannedDate()),
		ActualDate:           FormatDate(itv.ActualDate()),
		UpdatedAt:            FormatDate(itv.UpdatedAt().Format(time.RFC3339)),
	}
}

func InterviewsToRows(records []interview.WithDetails) []*viewmodels.InterviewRow {
	rows := make([]*viewmodels.InterviewRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, InterviewToRow(record))
	}
	return rows
}
