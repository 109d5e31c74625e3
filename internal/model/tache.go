package model

import "time"

// StatutTache is the lifecycle state of a task.
type StatutTache string

const (
	TacheAFaire   StatutTache = "A_FAIRE"
	TacheEnCours  StatutTache = "EN_COURS"
	TacheTerminee StatutTache = "TERMINEE"
	TacheAnnulee  StatutTache = "ANNULEE"
)

// Valid reports whether s is one of the known task states.
func (s StatutTache) Valid() bool {
	switch s {
	case TacheAFaire, TacheEnCours, TacheTerminee, TacheAnnulee:
		return true
	}
	return false
}

// Task priorities. 1 is the highest, 3 the default.
const (
	PrioriteHaute   = 1
	PrioriteMoyenne = 2
	PrioriteBasse   = 3
)

// Tache maps the taches table.
type Tache struct {
	Base
	Titre       string      `gorm:"type:varchar(200);not null" json:"titre"`
	Description string      `gorm:"type:text"                  json:"description,omitempty"`
	DateDebut   *time.Time  `json:"dateDebut,omitempty"`
	DateFin     *time.Time  `json:"dateFin,omitempty"`
	Statut      StatutTache `gorm:"type:varchar(20);not null;default:'A_FAIRE'" json:"statut"`
	Priorite    int         `gorm:"not null;default:3"         json:"priorite"`

	StageDocumentID *string `gorm:"type:varchar(36);column:stage_document_id" json:"-"`
	Stage           *Stage  `gorm:"foreignKey:StageDocumentID;references:DocumentID" json:"stage,omitempty"`
}

func (Tache) TableName() string { return "taches" }

// PrioriteLabel returns the display label matching the numeric priority.
func (t *Tache) PrioriteLabel() string {
	switch t.Priorite {
	case PrioriteHaute:
		return "HAUTE"
	case PrioriteMoyenne:
		return "MOYENNE"
	case PrioriteBasse:
		return "BASSE"
	default:
		return "NON_DEFINIE"
	}
}

// EnRetard reports whether the task is overdue at now: a dateFin is set,
// strictly in the past, and the task is not TERMINEE. Computed on every read,
// never stored.
func (t *Tache) EnRetard(now time.Time) bool {
	return t.DateFin != nil && t.DateFin.Before(now) && t.Statut != TacheTerminee
}
