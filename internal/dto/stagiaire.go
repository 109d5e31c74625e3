package dto

// CreateStagiaireRequest creates an intern. DateNaissance uses DateLayout.
type CreateStagiaireRequest struct {
	Nom           string  `json:"nom"           binding:"required,max=100"`
	Prenom        string  `json:"prenom"        binding:"required,max=100"`
	Email         string  `json:"email"         binding:"required,email"`
	Telephone     string  `json:"telephone"     binding:"required,max=30"`
	Cin           string  `json:"cin"           binding:"required,max=30"`
	Ecole         string  `json:"ecole"         binding:"omitempty,max=150"`
	Filiere       string  `json:"filiere"       binding:"omitempty,max=150"`
	NiveauEtude   string  `json:"niveauEtude"   binding:"omitempty,max=100"`
	DateNaissance *string `json:"dateNaissance" binding:"omitempty"`
	Adresse       string  `json:"adresse"       binding:"omitempty,max=255"`
	Encadreur     *string `json:"encadreurDocumentId" binding:"omitempty,max=36"`
}

// UpdateStagiaireRequest is a merge-patch body: nil fields stay untouched.
type UpdateStagiaireRequest struct {
	Nom           *string `json:"nom"           binding:"omitempty,max=100"`
	Prenom        *string `json:"prenom"        binding:"omitempty,max=100"`
	Email         *string `json:"email"         binding:"omitempty,email"`
	Telephone     *string `json:"telephone"     binding:"omitempty,max=30"`
	Cin           *string `json:"cin"           binding:"omitempty,max=30"`
	Ecole         *string `json:"ecole"         binding:"omitempty,max=150"`
	Filiere       *string `json:"filiere"       binding:"omitempty,max=150"`
	NiveauEtude   *string `json:"niveauEtude"   binding:"omitempty,max=100"`
	DateNaissance *string `json:"dateNaissance" binding:"omitempty"`
	Adresse       *string `json:"adresse"       binding:"omitempty,max=255"`
	Statut        *string `json:"statut"        binding:"omitempty,oneof=ACTIF INACTIF"`
	Encadreur     *string `json:"encadreurDocumentId" binding:"omitempty,max=36"`
}

// StagiaireResponse is the transport representation of an intern.
// HasActiveStage is computed at read time against the injected clock.
type StagiaireResponse struct {
	Meta
	Nom                 string  `json:"nom"`
	Prenom              string  `json:"prenom"`
	Email               string  `json:"email"`
	Telephone           string  `json:"telephone"`
	Cin                 string  `json:"cin"`
	Ecole               string  `json:"ecole,omitempty"`
	Filiere             string  `json:"filiere,omitempty"`
	NiveauEtude         string  `json:"niveauEtude,omitempty"`
	DateNaissance       *string `json:"dateNaissance,omitempty"`
	Adresse             string  `json:"adresse,omitempty"`
	Statut              string  `json:"statut"`
	EncadreurDocumentID *string `json:"encadreurDocumentId,omitempty"`
	PhotoURL            *string `json:"photoUrl,omitempty"`
	ThumbnailURL        *string `json:"thumbnailUrl,omitempty"`
	MediumPhotoURL      *string `json:"mediumPhotoUrl,omitempty"`
}

// ActiveStageResponse answers GET /stagiaires/:documentId/has-active-stage.
type ActiveStageResponse struct {
	HasActiveStage bool           `json:"hasActiveStage"`
	CurrentStage   *StageResponse `json:"currentStage,omitempty"`
}
