// Package fixtures ships the demo dataset the application boots from. Records
// and wizard documents are embedded as JSON, validated against their schemas
// once at first access, and exposed as domain values. The dataset plays the
// role a database seed would in production.
package fixtures

import (
	"embed"
	"fmt"
	"sync"

	gerrors "github.com/go-faster/errors"
	json "github.com/goccy/go-json"
	"github.com/xeipuuv/gojsonschema"

	"github.com/applipro/entretiens/modules/interviews/domain/aggregates/interview"
	"github.com/applipro/entretiens/modules/interviews/domain/aggregates/wizard"
	"github.com/applipro/entretiens/modules/interviews/domain/entities/staff"
	"github.com/applipro/entretiens/modules/interviews/infrastructure/persistence"
	"github.com/applipro/entretiens/modules/interviews/infrastructure/persistence/models"
)

//go:embed data/*.json schema/*.schema.json
var fixtureFS embed.FS

// ErrMissingRelation reports an interview fixture pointing at a collaborator
// or manager that the dataset does not contain.
var ErrMissingRelation = gerrors.New("fixtures: interview references unknown staff")

var (
	loadOnce sync.Once
	loadErr  error

	collaborateurs []models.Collaborateur
	managers       []models.Manager
	entretiens     []models.Entretien
	wizardDocs     map[string]models.WizardEntretien
)

func loadFile(name string, out any) error {
	data, err := fixtureFS.ReadFile("data/" + name + ".json")
	if err != nil {
		return gerrors.Wrapf(err, "read fixture %q", name)
	}
	schema, err := fixtureFS.ReadFile("schema/" + name + ".schema.json")
	if err != nil {
		return gerrors.Wrapf(err, "read schema %q", name)
	}
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return gerrors.Wrapf(err, "validate fixture %q", name)
	}
	if !result.Valid() {
		return fmt.Errorf("fixture %q fails its schema: %v", name, result.Errors())
	}
	if err := json.Unmarshal(data, out); err != nil {
		return gerrors.Wrapf(err, "decode fixture %q", name)
	}
	return nil
}

func load() error {
	loadOnce.Do(func() {
		if loadErr = loadFile("collaborateurs", &collaborateurs); loadErr != nil {
			return
		}
		if loadErr = loadFile("managers", &managers); loadErr != nil {
			return
		}
		if loadErr = loadFile("entretiens", &entretiens); loadErr != nil {
			return
		}
		var docs []models.WizardEntretien
		if loadErr = loadFile("wizard_entretiens", &docs); loadErr != nil {
			return
		}
		wizardDocs = make(map[string]models.WizardEntretien, len(docs))
		for _, doc := range docs {
			wizardDocs[doc.EntretienID] = doc
		}
	})
	return loadErr
}

func Collaborators() ([]staff.Collaborator, error) {
	if err := load(); err != nil {
		return nil, err
	}
	out := make([]staff.Collaborator, 0, len(collaborateurs))
	for _, model := range collaborateurs {
		out = append(out, persistence.ToDomainCollaborator(model))
	}
	return out, nil
}

func Managers() ([]staff.Manager, error) {
	if err := load(); err != nil {
		return nil, err
	}
	out := make([]staff.Manager, 0, len(managers))
	for _, model := range managers {
		out = append(out, persistence.ToDomainManager(model))
	}
	return out, nil
}

func Interviews() ([]interview.Interview, error) {
	if err := load(); err != nil {
		return nil, err
	}
	out := make([]interview.Interview, 0, len(entretiens))
	for _, model := range entretiens {
		out = append(out, persistence.ToDomainInterview(model))
	}
	return out, nil
}

func CollaboratorByID(id string) (staff.Collaborator, bool, error) {
	if err := load(); err != nil {
		return staff.Collaborator{}, false, err
	}
	for _, model := range collaborateurs {
		if model.ID == id {
			return persistence.ToDomainCollaborator(model), true, nil
		}
	}
	return staff.Collaborator{}, false, nil
}

func ManagerByID(id string) (staff.Manager, bool, error) {
	if err := load(); err != nil {
		return staff.Manager{}, false, err
	}
	for _, model := range managers {
		if model.ID == id {
			return persistence.ToDomainManager(model), true, nil
		}
	}
	return staff.Manager{}, false, nil
}

// InterviewsWithDetails joins the interview fixtures with their staff records.
// A dangling reference fails the whole join, not just the broken record; a
// partially seeded list would silently hide data.
func InterviewsWithDetails() ([]interview.WithDetails, error) {
	if err := load(); err != nil {
		return nil, err
	}
	out := make([]interview.WithDetails, 0, len(entretiens))
	for _, model := range entretiens {
		collaborator, found, err := CollaboratorByID(model.CollaborateurID)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, gerrors.Wrapf(ErrMissingRelation, "interview %q collaborator %q", model.ID, model.CollaborateurID)
		}
		manager, found, err := ManagerByID(model.ManagerID)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, gerrors.Wrapf(ErrMissingRelation, "interview %q manager %q", model.ID, model.ManagerID)
		}
		out = append(out, interview.NewWithDetails(persistence.ToDomainInterview(model), collaborator, manager))
	}
	return out, nil
}

// Directory adapts the package-level accessors to the lookup interfaces the
// service layer depends on.
type Directory struct{}

func (Directory) CollaboratorByID(id string) (staff.Collaborator, bool, error) {
	return CollaboratorByID(id)
}

func (Directory) ManagerByID(id string) (staff.Manager, bool, error) {
	return ManagerByID(id)
}

func (Directory) DefaultWizardDocument(interviewID string) (wizard.Document, error) {
	return DefaultWizardDocument(interviewID)
}

// DefaultWizardDocument returns the simulated wizard document seeded for the
// interview, or a generic empty shell when the dataset has none. The shell
// carries explicit placeholder wording so screens show that nothing was
// entered rather than blank sections.
func DefaultWizardDocument(interviewID string) (wizard.Document, error) {
	if err := load(); err != nil {
		return wizard.Document{}, err
	}
	if model, ok := wizardDocs[interviewID]; ok {
		return persistence.ToDomainWizardDocument(model), nil
	}
	return wizard.Document{
		InterviewID: interviewID,
		CollaboratorPrep: wizard.CollaboratorPrep{
			GeneralFeeling:  "Préparation non saisie côté collaborateur (données simulées).",
			GlobalSentiment: 3,
		},
		ManagerPrep: wizard.ManagerPrep{
			Synthesis: "Préparation non saisie côté manager (données simulées).",
		},
		Session: wizard.Session{
			SessionNotes: "Notes de séance non renseignées (simulation sans données).",
			FieldRemarks: map[string]string{},
		},
		Validation: wizard.Validation{
			CollaboratorRemarks:   "Aucune remarque saisie (simulation).",
			CollaboratorSignature: wizard.SignaturePending,
			ManagerValidation:     wizard.SignaturePending,
		},
	}, nil
}
