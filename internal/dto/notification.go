package dto

// CreateNotificationRequest appends an event to an account's log.
type CreateNotificationRequest struct {
	Titre                       string `json:"titre"   binding:"required,max=200"`
	Message                     string `json:"message" binding:"required"`
	Type                        string `json:"type"    binding:"required,oneof=NOUVEAU_STAGE STAGE_VALIDE STAGE_REFUSE NOUVELLE_TACHE RAPPEL_TACHE MESSAGE_IMPORTANT COMPTE_ACTIVE"`
	DocumentIDReference         string `json:"documentIdReference" binding:"omitempty,max=36"`
	TypeReference               string `json:"typeReference"       binding:"omitempty,max=50"`
	CompteUtilisateurDocumentID string `json:"compteUtilisateurDocumentId" binding:"required,max=36"`
}

// UpdateNotificationRequest is a merge-patch body.
type UpdateNotificationRequest struct {
	Titre   *string `json:"titre"   binding:"omitempty,max=200"`
	Message *string `json:"message" binding:"omitempty"`
	Lue     *bool   `json:"lue"     binding:"omitempty"`
}

// NotificationResponse is the transport representation of a notification.
type NotificationResponse struct {
	Meta
	Titre                       string `json:"titre"`
	Message                     string `json:"message"`
	Type                        string `json:"type"`
	Lue                         bool   `json:"lue"`
	DocumentIDReference         string `json:"documentIdReference,omitempty"`
	TypeReference               string `json:"typeReference,omitempty"`
	CompteUtilisateurDocumentID string `json:"compteUtilisateurDocumentId"`
}
