package mappers

import (
	"fmt"
	"sort"

	"github.com/applipro/entretiens/modules/interviews/domain/aggregates/wizard"
	"github.com/applipro/entretiens/modules/interviews/presentation/viewmodels"
)

// StepToDescriptor returns the header texts the wizard shows for a step.
func StepToDescriptor(step wizard.Step) viewmodels.StepDescriptor {
	switch step {
	case wizard.StepCollaboratorPrep:
		return viewmodels.StepDescriptor{
			Key:         step.Key(),
			Label:       "Préparation collaborateur",
			Description: "Vue des réponses saisies par le collaborateur avant l'entretien.",
		}
	case wizard.StepManagerPrep:
		return viewmodels.StepDescriptor{
			Key:         step.Key(),
			Label:       "Préparation manager",
			Description: "Synthèse de préparation du manager : points forts, axes de progrès.",
		}
	case wizard.StepSession:
		return viewmodels.StepDescriptor{
			Key:         step.Key(),
			Label:       "Session d’entretien",
			Description: "Vue comparative et décisions prises pendant l’entretien (objectifs, formations).",
		}
	case wizard.StepValidation:
		return viewmodels.StepDescriptor{
			Key:         step.Key(),
			Label:       "Validation & signature",
			Description: "Statut de validation par les deux parties et remarques finales.",
		}
	default:
		return viewmodels.StepDescriptor{Key: step.Key()}
	}
}

func StepDescriptors() []viewmodels.StepDescriptor {
	steps := wizard.Steps()
	out := make([]viewmodels.StepDescriptor, 0, len(steps))
	for _, step := range steps {
		out = append(out, StepToDescriptor(step))
	}
	return out
}

// FieldRemarksToViews resolves every session remark of the document into a
// displayable source and label, sorted by raw key for a stable render order.
// Unknown keys survive as-is under the "Autre" source rather than being
// dropped.
func FieldRemarksToViews(doc wizard.Document) []viewmodels.FieldRemarkView {
	keys := make([]string, 0, len(doc.Session.FieldRemarks))
	for key := range doc.Session.FieldRemarks {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]viewmodels.FieldRemarkView, 0, len(keys))
	for _, key := range keys {
		source, label := resolveFieldLabel(doc, key)
		out = append(out, viewmodels.FieldRemarkView{
			Source: source,
			Label:  label,
			Remark: doc.Session.FieldRemarks[key],
		})
	}
	return out
}

func resolveFieldLabel(doc wizard.Document, raw string) (source, label string) {
	key, err := wizard.ParseFieldKey(raw)
	if err != nil {
		return "Autre", raw
	}

	prep := doc.CollaboratorPrep
	managerPrep := doc.ManagerPrep

	switch key.Category {
	case wizard.CategoryCollabFeeling:
		return "Collaborateur", "Ressenti général"
	case wizard.CategoryCollabEvaluation:
		name := ""
		if key.Index < len(prep.Evaluations) {
			name = prep.Evaluations[key.Index].Theme
		}
		return "Collaborateur", "Évaluation : " + orPosition(name, key.Index)
	case wizard.CategoryCollabObjective:
		name := ""
		if key.Index < len(prep.PriorYearObjectives) {
			name = prep.PriorYearObjectives[key.Index].Title
		}
		return "Collaborateur", "Objectif N-1 : " + orPosition(name, key.Index)
	case wizard.CategoryCollabTraining:
		name := ""
		if key.Index < len(prep.TrainingRequests) {
			name = prep.TrainingRequests[key.Index].Title
		}
		return "Collaborateur", "Besoin formation : " + orPosition(name, key.Index)
	case wizard.CategoryCollabCompetency:
		name := ""
		if key.Index < len(prep.Competencies) {
			name = prep.Competencies[key.Index].Name
		}
		return "Collaborateur", "Compétence : " + orPosition(name, key.Index)
	case wizard.CategoryManagerSynthesis:
		return "Manager", "Synthèse manager"
	case wizard.CategoryManagerEvaluation:
		name := ""
		if key.Index < len(managerPrep.Evaluations) {
			name = managerPrep.Evaluations[key.Index].Theme
		}
		return "Manager", "Évaluation : " + orPosition(name, key.Index)
	case wizard.CategoryManagerStrength:
		name := ""
		if key.Index < len(managerPrep.Strengths) {
			name = managerPrep.Strengths[key.Index]
		}
		return "Manager", "Point fort : " + orPosition(name, key.Index)
	case wizard.CategoryManagerAxis:
		name := ""
		if key.Index < len(managerPrep.ImprovementAreas) {
			name = managerPrep.ImprovementAreas[key.Index]
		}
		return "Manager", "Axe de progrès : " + orPosition(name, key.Index)
	case wizard.CategoryManagerTraining:
		return "Manager", "Besoins formation (manager)"
	case wizard.CategoryManagerNotes:
		return "Manager", "Notes préparatoires"
	default:
		return "Autre", raw
	}
}

// orPosition substitutes "#<n>" (1-based) when the indexed entry has no name.
func orPosition(name string, index int) string {
	if name != "" {
		return name
	}
	return fmt.Sprintf("#%d", index+1)
}
