package viewmodels

// InterviewRow is one line of the interview list table.
type InterviewRow struct {
	ID                   string
	CollaboratorName     string
	CollaboratorInitials string
	CollaboratorJobTitle string
	CollaboratorEmail    string
	ManagerName          string
	TypeLabel            string
	StatusLabel          string
	PlannedDate          string
	ActualDate           string
	UpdatedAt            string
}

// StepDescriptor labels one wizard step for the progress header.
type StepDescriptor struct {
	Key         string
	Label       string
	Description string
}

// FieldRemarkView is a resolved session remark: who the annotated field
// belongs to and a readable label for it.
type FieldRemarkView struct {
	Source string
	Label  string
	Remark string
}
