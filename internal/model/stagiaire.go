package model

import "time"

// Stagiaire maps the stagiaires table. Stages is the many-to-many side of
// stage_stagiaires; it is independent of the encadreur link.
type Stagiaire struct {
	Base
	Nom           string     `gorm:"type:varchar(100);not null"             json:"nom"`
	Prenom        string     `gorm:"type:varchar(100);not null"             json:"prenom"`
	Email         string     `gorm:"type:varchar(255);index;not null" json:"email"`
	Telephone     string     `gorm:"type:varchar(30);not null"              json:"telephone"`
	Cin           string     `gorm:"type:varchar(30);index;not null"  json:"cin"`
	Ecole         string     `gorm:"type:varchar(150)"                      json:"ecole,omitempty"`
	Filiere       string     `gorm:"type:varchar(150)"                      json:"filiere,omitempty"`
	NiveauEtude   string     `gorm:"type:varchar(100)"                      json:"niveauEtude,omitempty"`
	DateNaissance *time.Time `gorm:"type:date"                              json:"dateNaissance,omitempty"`
	Adresse       string     `gorm:"type:varchar(255)"                      json:"adresse,omitempty"`
	Statut        Statut     `gorm:"type:varchar(10);not null;default:'ACTIF'" json:"statut"`

	PhotoDocumentID     *string `gorm:"type:varchar(36);column:photo_document_id"     json:"-"`
	EncadreurDocumentID *string `gorm:"type:varchar(36);column:encadreur_document_id" json:"-"`

	Photo     *MediaFile `gorm:"foreignKey:PhotoDocumentID;references:DocumentID"     json:"photo,omitempty"`
	Encadreur *Encadreur `gorm:"foreignKey:EncadreurDocumentID;references:DocumentID" json:"encadreur,omitempty"`

	Stages []Stage `gorm:"many2many:stage_stagiaires;foreignKey:DocumentID;joinForeignKey:StagiaireDocumentID;references:DocumentID;joinReferences:StageDocumentID" json:"stages,omitempty"`
}

func (Stagiaire) TableName() string { return "stagiaires" }

// HasActiveStage reports whether the intern has a stage that is EN_COURS and
// whose [dateDebut, dateFin] window contains now, bounds inclusive.
// Stages must have been preloaded by the caller.
func (s *Stagiaire) HasActiveStage(now time.Time) bool {
	return s.CurrentStage(now) != nil
}

// CurrentStage returns the first stage active at now, or nil.
func (s *Stagiaire) CurrentStage(now time.Time) *Stage {
	today := now.Truncate(24 * time.Hour)
	for i := range s.Stages {
		st := &s.Stages[i]
		if st.StatutStage != StageEnCours {
			continue
		}
		if st.DateDebut.After(today) || st.DateFin.Before(today) {
			continue
		}
		return st
	}
	return nil
}
