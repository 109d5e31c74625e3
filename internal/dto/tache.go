package dto

import "time"

// CreateTacheRequest creates a task attached to a stage.
type CreateTacheRequest struct {
	Titre       string     `json:"titre"       binding:"required,max=200"`
	Description string     `json:"description" binding:"omitempty"`
	DateDebut   *time.Time `json:"dateDebut"   binding:"omitempty"`
	DateFin     *time.Time `json:"dateFin"     binding:"omitempty"`
	Priorite    *int       `json:"priorite"    binding:"omitempty,oneof=1 2 3"`
	Stage       *string    `json:"stageDocumentId" binding:"omitempty,max=36"`
}

// UpdateTacheRequest is a merge-patch body. PrioriteLabel and EnRetard are
// computed fields; any value sent for them is ignored.
type UpdateTacheRequest struct {
	Titre       *string    `json:"titre"       binding:"omitempty,max=200"`
	Description *string    `json:"description" binding:"omitempty"`
	DateDebut   *time.Time `json:"dateDebut"   binding:"omitempty"`
	DateFin     *time.Time `json:"dateFin"     binding:"omitempty"`
	Statut      *string    `json:"statut"      binding:"omitempty,oneof=A_FAIRE EN_COURS TERMINEE ANNULEE"`
	Priorite    *int       `json:"priorite"    binding:"omitempty,oneof=1 2 3"`
}

// TacheResponse is the transport representation of a task. PrioriteLabel and
// EnRetard are derived at read time and never stored.
type TacheResponse struct {
	Meta
	Titre           string     `json:"titre"`
	Description     string     `json:"description,omitempty"`
	DateDebut       *time.Time `json:"dateDebut,omitempty"`
	DateFin         *time.Time `json:"dateFin,omitempty"`
	Statut          string     `json:"statut"`
	Priorite        int        `json:"priorite"`
	PrioriteLabel   string     `json:"prioriteLabel"`
	EnRetard        bool       `json:"enRetard"`
	StageDocumentID *string    `json:"stageDocumentId,omitempty"`
}
