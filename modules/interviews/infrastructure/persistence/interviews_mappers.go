package persistence

import (
	"time"

	"github.com/applipro/entretiens/modules/interviews/domain/aggregates/interview"
	"github.com/applipro/entretiens/modules/interviews/domain/aggregates/wizard"
	"github.com/applipro/entretiens/modules/interviews/domain/entities/staff"
	"github.com/applipro/entretiens/modules/interviews/infrastructure/persistence/models"
)

func ToDomainCollaborator(model models.Collaborateur) staff.Collaborator {
	return staff.NewCollaborator(
		model.ID,
		model.Nom,
		model.Prenom,
		model.Email,
		staff.WithJobTitle(model.Poste),
		staff.WithArrivalDate(model.DateArrivee),
		staff.WithCollaboratorAvatarURL(model.AvatarURL),
	)
}

func ToDBCollaborator(entity staff.Collaborator) models.Collaborateur {
	return models.Collaborateur{
		ID:          entity.ID(),
		Nom:         entity.LastName(),
		Prenom:      entity.FirstName(),
		Email:       entity.Email(),
		Poste:       entity.JobTitle(),
		DateArrivee: entity.ArrivalDate(),
		AvatarURL:   entity.AvatarURL(),
	}
}

func ToDomainManager(model models.Manager) staff.Manager {
	return staff.NewManager(
		model.ID,
		model.Nom,
		model.Prenom,
		model.Email,
		staff.WithManagerAvatarURL(model.AvatarURL),
	)
}

func ToDBManager(entity staff.Manager) models.Manager {
	return models.Manager{
		ID:        entity.ID(),
		Nom:       entity.LastName(),
		Prenom:    entity.FirstName(),
		Email:     entity.Email(),
		AvatarURL: entity.AvatarURL(),
	}
}

func ToDomainInterview(model models.Entretien) interview.Interview {
	return interview.Hydrate(
		model.ID,
		model.CollaborateurID,
		model.ManagerID,
		interview.Type(model.Type),
		interview.Status(model.Statut),
		model.DatePrevue,
		model.DateReelle,
		model.Lieu,
		model.Notes,
		model.Objectifs,
		model.CompteRendu,
		parseTimestamp(model.CreatedAt),
		parseTimestamp(model.UpdatedAt),
	)
}

func ToDBInterview(entity interview.Interview) models.Entretien {
	return models.Entretien{
		ID:              entity.ID(),
		CollaborateurID: entity.CollaboratorID(),
		ManagerID:       entity.ManagerID(),
		Type:            string(entity.Type()),
		Statut:          string(entity.Status()),
		DatePrevue:      entity.PlannedDate(),
		DateReelle:      entity.ActualDate(),
		Lieu:            entity.Location(),
		Notes:           entity.Notes(),
		Objectifs:       entity.Objectives(),
		CompteRendu:     entity.Summary(),
		CreatedAt:       entity.CreatedAt().Format(time.RFC3339),
		UpdatedAt:       entity.UpdatedAt().Format(time.RFC3339),
	}
}

func ToDomainWithDetails(model models.EntretienWithDetails) interview.WithDetails {
	return interview.NewWithDetails(
		ToDomainInterview(model.Entretien),
		ToDomainCollaborator(model.Collaborateur),
		ToDomainManager(model.Manager),
	)
}

func ToDBWithDetails(entity interview.WithDetails) models.EntretienWithDetails {
	return models.EntretienWithDetails{
		Entretien:     ToDBInterview(entity.Interview()),
		Collaborateur: ToDBCollaborator(entity.Collaborator()),
		Manager:       ToDBManager(entity.Manager()),
	}
}

// Legacy timestamps are RFC3339; anything unparsable maps to the zero time
// rather than failing the whole list load.
func parseTimestamp(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return t
}

func toDomainEvaluations(items []models.WizardEvaluation) []wizard.Evaluation {
	out := make([]wizard.Evaluation, 0, len(items))
	for _, item := range items {
		out = append(out, wizard.Evaluation{
			Theme:               item.Theme,
			Score:               item.Score,
			CollaboratorComment: item.CommentaireCollaborateur,
			ManagerComment:      item.CommentaireManager,
		})
	}
	return out
}

func toDBEvaluations(items []wizard.Evaluation) []models.WizardEvaluation {
	out := make([]models.WizardEvaluation, 0, len(items))
	for _, item := range items {
		out = append(out, models.WizardEvaluation{
			Theme:                    item.Theme,
			Score:                    item.Score,
			CommentaireCollaborateur: item.CollaboratorComment,
			CommentaireManager:       item.ManagerComment,
		})
	}
	return out
}

func toDomainObjectives(items []models.WizardObjectif) []wizard.Objective {
	out := make([]wizard.Objective, 0, len(items))
	for _, item := range items {
		out = append(out, wizard.Objective{
			Title:               item.Intitule,
			DueDate:             item.Echeance,
			Progress:            item.AvancementCollaborateur,
			CollaboratorComment: item.CommentaireCollaborateur,
			ManagerComment:      item.CommentaireManager,
		})
	}
	return out
}

func toDBObjectives(items []wizard.Objective) []models.WizardObjectif {
	out := make([]models.WizardObjectif, 0, len(items))
	for _, item := range items {
		out = append(out, models.WizardObjectif{
			Intitule:                 item.Title,
			Echeance:                 item.DueDate,
			AvancementCollaborateur:  item.Progress,
			CommentaireCollaborateur: item.CollaboratorComment,
			CommentaireManager:       item.ManagerComment,
		})
	}
	return out
}

func toDomainTrainingItems(items []models.WizardBesoinFormation) []wizard.TrainingItem {
	out := make([]wizard.TrainingItem, 0, len(items))
	for _, item := range items {
		out = append(out, wizard.TrainingItem{
			Title:   item.Intitule,
			Origin:  wizard.Origin(item.Origine),
			Comment: item.Commentaire,
		})
	}
	return out
}

func toDBTrainingItems(items []wizard.TrainingItem) []models.WizardBesoinFormation {
	out := make([]models.WizardBesoinFormation, 0, len(items))
	for _, item := range items {
		out = append(out, models.WizardBesoinFormation{
			Intitule:    item.Title,
			Origine:     string(item.Origin),
			Commentaire: item.Comment,
		})
	}
	return out
}

func ToDomainWizardDocument(model models.WizardEntretien) wizard.Document {
	prep := model.PreCollaborateur
	managerPrep := model.PreManager
	session := model.Session

	competencies := make([]wizard.Competency, 0, len(prep.Competences))
	for _, item := range prep.Competences {
		competencies = append(competencies, wizard.Competency{
			Name:          item.Competence,
			ExpectedLevel: item.NiveauAttendu,
			SelfLevel:     item.NiveauCollaborateur,
			Comment:       item.Commentaire,
		})
	}

	sentiments := make([]wizard.ThemeSentiment, 0, len(prep.RessentiParTheme))
	for _, item := range prep.RessentiParTheme {
		sentiments = append(sentiments, wizard.ThemeSentiment{Theme: item.Theme, Score: item.Score})
	}

	managerEvaluations := make([]wizard.ManagerEvaluation, 0, len(managerPrep.EvaluationsManager))
	for _, item := range managerPrep.EvaluationsManager {
		managerEvaluations = append(managerEvaluations, wizard.ManagerEvaluation{
			Theme:   item.Theme,
			Score:   item.Score,
			Comment: item.Commentaire,
		})
	}

	improvementPoints := make([]wizard.ImprovementPoint, 0, len(session.Bilan.PointsAmeliorer))
	for _, item := range session.Bilan.PointsAmeliorer {
		improvementPoints = append(improvementPoints, wizard.ImprovementPoint{
			Title:   item.Intitule,
			DueDate: item.Echeance,
			Remark:  item.Remarque,
		})
	}

	fieldRemarks := map[string]string{}
	for key, remark := range session.RemarquesChamps {
		fieldRemarks[key] = remark
	}

	return wizard.Document{
		InterviewID: model.EntretienID,
		CollaboratorPrep: wizard.CollaboratorPrep{
			GeneralFeeling:      prep.RessentiGeneral,
			GlobalSentiment:     prep.SentimentGlobal,
			Evaluations:         toDomainEvaluations(prep.Evaluations),
			SentimentByTheme:    sentiments,
			PriorYearObjectives: toDomainObjectives(prep.ObjectifsNMoins1),
			TrainingRequests:    toDomainTrainingItems(prep.BesoinsFormation),
			Competencies:        competencies,
		},
		ManagerPrep: wizard.ManagerPrep{
			Synthesis:        managerPrep.SyntheseManager,
			Evaluations:      managerEvaluations,
			Strengths:        append([]string(nil), managerPrep.PointsForts...),
			ImprovementAreas: append([]string(nil), managerPrep.AxesProgres...),
			TrainingNeeds:    managerPrep.BesoinsFormationManager,
			PreparatoryNotes: managerPrep.NotesPreparatoires,
		},
		Session: wizard.Session{
			NextYearObjectives: toDomainObjectives(session.ObjectifsNPlus1),
			TrainingDecisions:  toDomainTrainingItems(session.DecisionsFormation),
			SessionNotes:       session.NotesSeance,
			Review: wizard.Review{
				GlobalSynthesis:     session.Bilan.SyntheseGlobale,
				ImprovementPoints:   improvementPoints,
				CollaboratorRemarks: session.Bilan.RemarquesCollaborateur,
				ManagerRemarks:      session.Bilan.RemarquesManager,
			},
			FieldRemarks: fieldRemarks,
		},
		Validation: wizard.Validation{
			CollaboratorRemarks:   model.Validation.RemarquesCollaborateur,
			CollaboratorSignature: wizard.SignatureStatus(model.Validation.StatutSignatureCollaborateur),
			ManagerValidation:     wizard.SignatureStatus(model.Validation.StatutValidationManager),
		},
	}
}

func ToDBWizardDocument(doc wizard.Document) models.WizardEntretien {
	competences := make([]models.WizardCompetence, 0, len(doc.CollaboratorPrep.Competencies))
	for _, item := range doc.CollaboratorPrep.Competencies {
		competences = append(competences, models.WizardCompetence{
			Competence:          item.Name,
			NiveauAttendu:       item.ExpectedLevel,
			NiveauCollaborateur: item.SelfLevel,
			Commentaire:         item.Comment,
		})
	}

	sentiments := make([]models.WizardRessentiTheme, 0, len(doc.CollaboratorPrep.SentimentByTheme))
	for _, item := range doc.CollaboratorPrep.SentimentByTheme {
		sentiments = append(sentiments, models.WizardRessentiTheme{Theme: item.Theme, Score: item.Score})
	}

	managerEvaluations := make([]models.WizardEvaluationManager, 0, len(doc.ManagerPrep.Evaluations))
	for _, item := range doc.ManagerPrep.Evaluations {
		managerEvaluations = append(managerEvaluations, models.WizardEvaluationManager{
			Theme:       item.Theme,
			Score:       item.Score,
			Commentaire: item.Comment,
		})
	}

	improvementPoints := make([]models.WizardPointAmeliorer, 0, len(doc.Session.Review.ImprovementPoints))
	for _, item := range doc.Session.Review.ImprovementPoints {
		improvementPoints = append(improvementPoints, models.WizardPointAmeliorer{
			Intitule: item.Title,
			Echeance: item.DueDate,
			Remarque: item.Remark,
		})
	}

	fieldRemarks := map[string]string{}
	for key, remark := range doc.Session.FieldRemarks {
		fieldRemarks[key] = remark
	}

	return models.WizardEntretien{
		EntretienID: doc.InterviewID,
		PreCollaborateur: models.WizardPreCollaborateur{
			RessentiGeneral:  doc.CollaboratorPrep.GeneralFeeling,
			SentimentGlobal:  doc.CollaboratorPrep.GlobalSentiment,
			Evaluations:      toDBEvaluations(doc.CollaboratorPrep.Evaluations),
			RessentiParTheme: sentiments,
			ObjectifsNMoins1: toDBObjectives(doc.CollaboratorPrep.PriorYearObjectives),
			BesoinsFormation: toDBTrainingItems(doc.CollaboratorPrep.TrainingRequests),
			Competences:      competences,
		},
		PreManager: models.WizardPreManager{
			SyntheseManager:         doc.ManagerPrep.Synthesis,
			EvaluationsManager:      managerEvaluations,
			PointsForts:             append([]string(nil), doc.ManagerPrep.Strengths...),
			AxesProgres:             append([]string(nil), doc.ManagerPrep.ImprovementAreas...),
			BesoinsFormationManager: doc.ManagerPrep.TrainingNeeds,
			NotesPreparatoires:      doc.ManagerPrep.PreparatoryNotes,
		},
		Session: models.WizardSession{
			ObjectifsNPlus1:    toDBObjectives(doc.Session.NextYearObjectives),
			DecisionsFormation: toDBTrainingItems(doc.Session.TrainingDecisions),
			NotesSeance:        doc.Session.SessionNotes,
			Bilan: models.WizardBilan{
				SyntheseGlobale:        doc.Session.Review.GlobalSynthesis,
				PointsAmeliorer:        improvementPoints,
				RemarquesCollaborateur: doc.Session.Review.CollaboratorRemarks,
				RemarquesManager:       doc.Session.Review.ManagerRemarks,
			},
			RemarquesChamps: fieldRemarks,
		},
		Validation: models.WizardValidation{
			RemarquesCollaborateur:       doc.Validation.CollaboratorRemarks,
			StatutSignatureCollaborateur: string(doc.Validation.CollaboratorSignature),
			StatutValidationManager:      string(doc.Validation.ManagerValidation),
		},
	}
}
