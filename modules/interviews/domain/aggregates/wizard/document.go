// Package wizard holds the four-section document a review walks through:
// collaborator preparation, manager preparation, live session and final
// validation. The document is plain data keyed by its interview ID; edits
// replace the whole persisted value (last writer wins, no merge).
package wizard

import "strings"

// Origin tags who asked for a training item.
type Origin string

const (
	OriginCollaborator Origin = "collaborateur"
	OriginManager      Origin = "manager"
)

// SignatureStatus tracks sign-off in the validation section.
type SignatureStatus string

const (
	SignaturePending   SignatureStatus = "en_attente"
	SignatureValidated SignatureStatus = "valide"
)

type Evaluation struct {
	Theme               string
	Score               int // 1 to 5
	CollaboratorComment string
	ManagerComment      string
}

type ThemeSentiment struct {
	Theme string
	Score int // 1 to 5
}

type Objective struct {
	Title               string
	DueDate             string // free text, "Mars 2025" style
	Progress            int    // 0 to 100, self-assessed
	CollaboratorComment string
	ManagerComment      string
}

type TrainingItem struct {
	Title   string
	Origin  Origin
	Comment string
}

type Competency struct {
	Name          string
	ExpectedLevel int
	SelfLevel     int
	Comment       string
}

type CollaboratorPrep struct {
	GeneralFeeling      string
	GlobalSentiment     int // 1 to 5
	Evaluations         []Evaluation
	SentimentByTheme    []ThemeSentiment
	PriorYearObjectives []Objective
	TrainingRequests    []TrainingItem
	Competencies        []Competency
}

type ManagerEvaluation struct {
	Theme   string
	Score   int // 1 to 5
	Comment string
}

type ManagerPrep struct {
	Synthesis        string
	Evaluations      []ManagerEvaluation
	Strengths        []string
	ImprovementAreas []string
	TrainingNeeds    string
	PreparatoryNotes string
}

type ImprovementPoint struct {
	Title   string
	DueDate string
	Remark  string
}

// Review is the end-of-interview "bilan" sub-document.
type Review struct {
	GlobalSynthesis     string
	ImprovementPoints   []ImprovementPoint
	CollaboratorRemarks string
	ManagerRemarks      string
}

type Session struct {
	NextYearObjectives []Objective
	TrainingDecisions  []TrainingItem
	SessionNotes       string
	Review             Review
	// FieldRemarks maps encoded field keys ("<category>:<index>") to manager
	// remarks on individual preparation fields. Raw strings are kept so that
	// keys from an older dataset survive a round trip even when the category
	// is unknown; use FieldKey for anything beyond storage.
	FieldRemarks map[string]string
}

type Validation struct {
	CollaboratorRemarks   string
	CollaboratorSignature SignatureStatus
	ManagerValidation     SignatureStatus
}

type Document struct {
	InterviewID      string
	CollaboratorPrep CollaboratorPrep
	ManagerPrep      ManagerPrep
	Session          Session
	Validation       Validation
}

// Clone returns a deep copy of the document. Edits work on a copy so that a
// failed persist leaves the currently displayed document untouched.
func (d Document) Clone() Document {
	out := d
	out.CollaboratorPrep.Evaluations = append([]Evaluation(nil), d.CollaboratorPrep.Evaluations...)
	out.CollaboratorPrep.SentimentByTheme = append([]ThemeSentiment(nil), d.CollaboratorPrep.SentimentByTheme...)
	out.CollaboratorPrep.PriorYearObjectives = append([]Objective(nil), d.CollaboratorPrep.PriorYearObjectives...)
	out.CollaboratorPrep.TrainingRequests = append([]TrainingItem(nil), d.CollaboratorPrep.TrainingRequests...)
	out.CollaboratorPrep.Competencies = append([]Competency(nil), d.CollaboratorPrep.Competencies...)
	out.ManagerPrep.Evaluations = append([]ManagerEvaluation(nil), d.ManagerPrep.Evaluations...)
	out.ManagerPrep.Strengths = append([]string(nil), d.ManagerPrep.Strengths...)
	out.ManagerPrep.ImprovementAreas = append([]string(nil), d.ManagerPrep.ImprovementAreas...)
	out.Session.NextYearObjectives = append([]Objective(nil), d.Session.NextYearObjectives...)
	out.Session.TrainingDecisions = append([]TrainingItem(nil), d.Session.TrainingDecisions...)
	out.Session.Review.ImprovementPoints = append([]ImprovementPoint(nil), d.Session.Review.ImprovementPoints...)
	if d.Session.FieldRemarks != nil {
		out.Session.FieldRemarks = make(map[string]string, len(d.Session.FieldRemarks))
		for key, remark := range d.Session.FieldRemarks {
			out.Session.FieldRemarks[key] = remark
		}
	}
	return out
}

// SetFieldRemark records a manager remark against a preparation field.
func (d *Document) SetFieldRemark(key FieldKey, remark string) {
	if d.Session.FieldRemarks == nil {
		d.Session.FieldRemarks = map[string]string{}
	}
	d.Session.FieldRemarks[key.String()] = remark
}

func (d Document) FieldRemark(key FieldKey) string {
	return d.Session.FieldRemarks[key.String()]
}

// RemarkCount counts non-blank field remarks, mirroring the badge shown next
// to the session step.
func (d Document) RemarkCount() int {
	n := 0
	for _, remark := range d.Session.FieldRemarks {
		if strings.TrimSpace(remark) != "" {
			n++
		}
	}
	return n
}
