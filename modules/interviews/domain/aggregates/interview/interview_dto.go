package interview

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// CreateDTO carries the creation form fields. Collaborator, manager and
// planned date are the only required inputs; everything else stays optional.
type CreateDTO struct {
	CollaboratorID string `validate:"required"`
	ManagerID      string `validate:"required"`
	Type           Type   `validate:"required"`
	Status         Status `validate:"required"`
	PlannedDate    string `validate:"required"`
	ActualDate     string
	Location       string
	Notes          string
	Objectives     string
	Summary        string
}

func (d *CreateDTO) Normalize() {
	d.CollaboratorID = strings.TrimSpace(d.CollaboratorID)
	d.ManagerID = strings.TrimSpace(d.ManagerID)
	d.PlannedDate = strings.TrimSpace(d.PlannedDate)
	if d.Type == "" {
		d.Type = TypeOnboarding
	}
	if d.Status == "" {
		d.Status = StatusScheduled
	}
}

// Ok validates the DTO and returns per-field inline messages. This is the
// only user-facing error path in the system.
func (d *CreateDTO) Ok() (map[string]string, bool) {
	d.Normalize()

	fieldErrors := map[string]string{}
	if errs := validate.Struct(d); errs != nil {
		for _, err := range errs.(validator.ValidationErrors) {
			fieldErrors[err.Field()] = fieldMessage(err.Field())
		}
	}
	if d.Type != "" && !d.Type.IsValid() {
		fieldErrors["Type"] = "Type d'entretien inconnu"
	}
	if d.Status != "" && !d.Status.IsValid() {
		fieldErrors["Status"] = "Statut d'entretien inconnu"
	}
	return fieldErrors, len(fieldErrors) == 0
}

func (d *CreateDTO) ToEntity() Interview {
	return New(
		d.CollaboratorID,
		d.ManagerID,
		d.Type,
		d.Status,
		d.PlannedDate,
		WithActualDate(d.ActualDate),
		WithLocation(d.Location),
		WithNotes(d.Notes),
		WithObjectives(d.Objectives),
		WithSummary(d.Summary),
	)
}

// UpdateDTO carries the edit form fields. The edit form re-submits the whole
// record, so the shape matches CreateDTO.
type UpdateDTO struct {
	CollaboratorID string `validate:"required"`
	ManagerID      string `validate:"required"`
	Type           Type   `validate:"required"`
	Status         Status `validate:"required"`
	PlannedDate    string `validate:"required"`
	ActualDate     string
	Location       string
	Notes          string
	Objectives     string
	Summary        string
}

func (d *UpdateDTO) Normalize() {
	d.CollaboratorID = strings.TrimSpace(d.CollaboratorID)
	d.ManagerID = strings.TrimSpace(d.ManagerID)
	d.PlannedDate = strings.TrimSpace(d.PlannedDate)
}

func (d *UpdateDTO) Ok() (map[string]string, bool) {
	d.Normalize()

	fieldErrors := map[string]string{}
	if errs := validate.Struct(d); errs != nil {
		for _, err := range errs.(validator.ValidationErrors) {
			fieldErrors[err.Field()] = fieldMessage(err.Field())
		}
	}
	if d.Type != "" && !d.Type.IsValid() {
		fieldErrors["Type"] = "Type d'entretien inconnu"
	}
	if d.Status != "" && !d.Status.IsValid() {
		fieldErrors["Status"] = "Statut d'entretien inconnu"
	}
	return fieldErrors, len(fieldErrors) == 0
}

// ToEntity applies the edit on top of the existing record, keeping its
// identity and creation stamp.
func (d *UpdateDTO) ToEntity(existing Interview, now time.Time) Interview {
	return Hydrate(
		existing.ID(),
		d.CollaboratorID,
		d.ManagerID,
		d.Type,
		d.Status,
		d.PlannedDate,
		d.ActualDate,
		d.Location,
		d.Notes,
		d.Objectives,
		d.Summary,
		existing.CreatedAt(),
		now,
	)
}

func fieldMessage(field string) string {
	switch field {
	case "CollaboratorID":
		return "Le collaborateur est obligatoire"
	case "ManagerID":
		return "Le manager est obligatoire"
	case "PlannedDate":
		return "La date prévue est obligatoire"
	default:
		return "Champ obligatoire"
	}
}
