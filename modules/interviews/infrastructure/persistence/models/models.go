// Package models holds the JSON wire shapes of the persisted blobs. Field
// names keep the legacy French keys so the stored layout stays byte-compatible
// with data exported from the original frontend's local storage.
package models

type Collaborateur struct {
	ID          string `json:"id"`
	Nom         string `json:"nom"`
	Prenom      string `json:"prenom"`
	Email       string `json:"email"`
	Poste       string `json:"poste,omitempty"`
	DateArrivee string `json:"dateArrivee,omitempty"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
}

type Manager struct {
	ID        string `json:"id"`
	Nom       string `json:"nom"`
	Prenom    string `json:"prenom"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

type Entretien struct {
	ID              string `json:"id"`
	CollaborateurID string `json:"collaborateurId"`
	ManagerID       string `json:"managerId"`
	Type            string `json:"type"`
	Statut          string `json:"statut"`
	DatePrevue      string `json:"datePrevue"`
	DateReelle      string `json:"dateReelle,omitempty"`
	Lieu            string `json:"lieu,omitempty"`
	Notes           string `json:"notes,omitempty"`
	Objectifs       string `json:"objectifs,omitempty"`
	CompteRendu     string `json:"compteRendu,omitempty"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
}

// EntretienWithDetails is the denormalized record the list blob stores.
type EntretienWithDetails struct {
	Entretien
	Collaborateur Collaborateur `json:"collaborateur"`
	Manager       Manager       `json:"manager"`
}

type WizardEvaluation struct {
	Theme                    string `json:"theme"`
	Score                    int    `json:"score"`
	CommentaireCollaborateur string `json:"commentaireCollaborateur,omitempty"`
	CommentaireManager       string `json:"commentaireManager,omitempty"`
}

type WizardRessentiTheme struct {
	Theme string `json:"theme"`
	Score int    `json:"score"`
}

type WizardObjectif struct {
	Intitule                 string `json:"intitule"`
	Echeance                 string `json:"echeance,omitempty"`
	AvancementCollaborateur  int    `json:"avancementCollaborateur,omitempty"`
	CommentaireCollaborateur string `json:"commentaireCollaborateur,omitempty"`
	CommentaireManager       string `json:"commentaireManager,omitempty"`
}

type WizardSession struct {
	ObjectifsNPlus1    []WizardObjectif        `json:"objectifsNPlus1"`
	DecisionsFormation []WizardBesoinFormation `json:"decisionsFormation"`
	NotesSeance        string                  `json:"notesSeance"`
	Bilan              WizardBilan             `json:"bilan"`
	RemarquesChamps    map[string]string       `json:"remarquesChamps"`
}

type WizardBesoinFormation struct {
	Intitule    string `json:"intitule"`
	Origine     string `json:"origine"`
	Commentaire string `json:"commentaire,omitempty"`
}

type WizardCompetence struct {
	Competence          string `json:"competence"`
	NiveauAttendu       int    `json:"niveauAttendu"`
	NiveauCollaborateur int    `json:"niveauCollaborateur"`
	Commentaire         string `json:"commentaire,omitempty"`
}

type WizardPreCollaborateur struct {
	RessentiGeneral  string                  `json:"ressentiGeneral"`
	SentimentGlobal  int                     `json:"sentimentGlobal"`
	Evaluations      []WizardEvaluation      `json:"evaluations"`
	RessentiParTheme []WizardRessentiTheme   `json:"ressentiParTheme"`
	ObjectifsNMoins1 []WizardObjectif        `json:"objectifsNMoins1"`
	BesoinsFormation []WizardBesoinFormation `json:"besoinsFormation"`
	Competences      []WizardCompetence      `json:"competences"`
}

type WizardEvaluationManager struct {
	Theme       string `json:"theme"`
	Score       int    `json:"score"`
	Commentaire string `json:"commentaire,omitempty"`
}

type WizardPreManager struct {
	SyntheseManager         string                    `json:"syntheseManager"`
	EvaluationsManager      []WizardEvaluationManager `json:"evaluationsManager"`
	PointsForts             []string                  `json:"pointsForts"`
	AxesProgres             []string                  `json:"axesProgres"`
	BesoinsFormationManager string                    `json:"besoinsFormationManager"`
	NotesPreparatoires      string                    `json:"notesPreparatoires"`
}

type WizardPointAmeliorer struct {
	Intitule string `json:"intitule"`
	Echeance string `json:"echeance,omitempty"`
	Remarque string `json:"remarque,omitempty"`
}

type WizardBilan struct {
	SyntheseGlobale        string                 `json:"syntheseGlobale"`
	PointsAmeliorer        []WizardPointAmeliorer `json:"pointsAmeliorer"`
	RemarquesCollaborateur string                 `json:"remarquesCollaborateur"`
	RemarquesManager       string                 `json:"remarquesManager"`
}

type WizardValidation struct {
	RemarquesCollaborateur       string `json:"remarquesCollaborateur"`
	StatutSignatureCollaborateur string `json:"statutSignatureCollaborateur"`
	StatutValidationManager      string `json:"statutValidationManager"`
}

type WizardEntretien struct {
	EntretienID      string                 `json:"entretienId"`
	PreCollaborateur WizardPreCollaborateur `json:"preCollaborateur"`
	PreManager       WizardPreManager       `json:"preManager"`
	Session          WizardSession          `json:"session"`
	Validation       WizardValidation       `json:"validation"`
}
