package model

// TypeNotification enumerates the event kinds an account can be notified of.
type TypeNotification string

const (
	NotifNouveauStage     TypeNotification = "NOUVEAU_STAGE"
	NotifStageValide      TypeNotification = "STAGE_VALIDE"
	NotifStageRefuse      TypeNotification = "STAGE_REFUSE"
	NotifNouvelleTache    TypeNotification = "NOUVELLE_TACHE"
	NotifRappelTache      TypeNotification = "RAPPEL_TACHE"
	NotifMessageImportant TypeNotification = "MESSAGE_IMPORTANT"
	NotifCompteActive     TypeNotification = "COMPTE_ACTIVE"
)

// Valid reports whether t is one of the known notification types.
func (t TypeNotification) Valid() bool {
	switch t {
	case NotifNouveauStage, NotifStageValide, NotifStageRefuse,
		NotifNouvelleTache, NotifRappelTache, NotifMessageImportant, NotifCompteActive:
		return true
	}
	return false
}

// Notification maps the notifications table: an append-only event log tied to
// one account, with an optional reference to the entity that triggered it.
type Notification struct {
	Base
	Titre   string           `gorm:"type:varchar(200);not null" json:"titre"`
	Message string           `gorm:"type:text;not null"         json:"message"`
	Type    TypeNotification `gorm:"type:varchar(30);not null"  json:"type"`
	Lue     bool             `gorm:"not null;default:false"     json:"lue"`

	DocumentIDReference         string `gorm:"type:varchar(36);column:document_id_reference" json:"documentIdReference,omitempty"`
	TypeReference               string `gorm:"type:varchar(50);column:type_reference"        json:"typeReference,omitempty"`
	CompteUtilisateurDocumentID string `gorm:"type:varchar(36);column:compte_utilisateur_document_id;index" json:"compteUtilisateurDocumentId"`
}

func (Notification) TableName() string { return "notifications" }
