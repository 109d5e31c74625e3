package model

import "time"

// StatutStage is the lifecycle state of an internship.
type StatutStage string

const (
	StageEnAttenteValidation StatutStage = "EN_ATTENTE_VALIDATION"
	StageValide              StatutStage = "VALIDE"
	StageRefuse              StatutStage = "REFUSE"
	StageEnCours             StatutStage = "EN_COURS"
	StageTermine             StatutStage = "TERMINE"
)

// Valid reports whether s is one of the known stage states.
func (s StatutStage) Valid() bool {
	switch s {
	case StageEnAttenteValidation, StageValide, StageRefuse, StageEnCours, StageTermine:
		return true
	}
	return false
}

// Stage maps the stages table.
type Stage struct {
	Base
	Titre       string      `gorm:"type:varchar(200);not null" json:"titre"`
	Description string      `gorm:"type:text"                  json:"description,omitempty"`
	DateDebut   time.Time   `gorm:"type:date;not null"         json:"dateDebut"`
	DateFin     time.Time   `gorm:"type:date;not null"         json:"dateFin"`
	StatutStage StatutStage `gorm:"type:varchar(30);not null;default:'EN_ATTENTE_VALIDATION';column:statut_stage" json:"statutStage"`

	EncadreurDocumentID *string `gorm:"type:varchar(36);column:encadreur_document_id" json:"-"`
	SuperieurDocumentID *string `gorm:"type:varchar(36);column:superieur_document_id" json:"-"`

	Encadreur             *Encadreur             `gorm:"foreignKey:EncadreurDocumentID;references:DocumentID" json:"encadreur,omitempty"`
	SuperieurHierarchique *SuperieurHierarchique `gorm:"foreignKey:SuperieurDocumentID;references:DocumentID" json:"superieurHierarchique,omitempty"`

	Stagiaires []Stagiaire `gorm:"many2many:stage_stagiaires;foreignKey:DocumentID;joinForeignKey:StageDocumentID;references:DocumentID;joinReferences:StagiaireDocumentID" json:"stagiaires,omitempty"`
	Taches     []Tache     `gorm:"foreignKey:StageDocumentID;references:DocumentID" json:"taches,omitempty"`
}

func (Stage) TableName() string { return "stages" }
