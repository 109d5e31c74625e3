package dto

// CreateStageRequest creates an internship. Dates use DateLayout.
type CreateStageRequest struct {
	Titre                 string   `json:"titre"       binding:"required,max=200"`
	Description           string   `json:"description" binding:"omitempty"`
	DateDebut             string   `json:"dateDebut"   binding:"required"`
	DateFin               string   `json:"dateFin"     binding:"required"`
	Encadreur             *string  `json:"encadreurDocumentId"             binding:"omitempty,max=36"`
	SuperieurHierarchique *string  `json:"superieurHierarchiqueDocumentId" binding:"omitempty,max=36"`
	Stagiaires            []string `json:"stagiairesDocumentIds"           binding:"omitempty"`
}

// UpdateStageRequest is a merge-patch body. Relationship fields are excluded;
// they change through the dedicated stagiaire attach/detach operations.
type UpdateStageRequest struct {
	Titre       *string `json:"titre"       binding:"omitempty,max=200"`
	Description *string `json:"description" binding:"omitempty"`
	DateDebut   *string `json:"dateDebut"   binding:"omitempty"`
	DateFin     *string `json:"dateFin"     binding:"omitempty"`
	StatutStage *string `json:"statutStage" binding:"omitempty,oneof=EN_ATTENTE_VALIDATION VALIDE REFUSE EN_COURS TERMINE"`
}

// StageResponse is the transport representation of an internship.
type StageResponse struct {
	Meta
	Titre                           string   `json:"titre"`
	Description                     string   `json:"description,omitempty"`
	DateDebut                       string   `json:"dateDebut"`
	DateFin                         string   `json:"dateFin"`
	StatutStage                     string   `json:"statutStage"`
	EncadreurDocumentID             *string  `json:"encadreurDocumentId,omitempty"`
	SuperieurHierarchiqueDocumentID *string  `json:"superieurHierarchiqueDocumentId,omitempty"`
	StagiairesDocumentIDs           []string `json:"stagiairesDocumentIds,omitempty"`
}
