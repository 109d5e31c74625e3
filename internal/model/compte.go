package model

// TypeCompte tags both the account role and the kind of person entity the
// account points back to.
type TypeCompte string

const (
	CompteAdmin     TypeCompte = "ADMIN"
	CompteEncadreur TypeCompte = "ENCADREUR"
	CompteSuperieur TypeCompte = "SUPERIEUR_HIERARCHIQUE"
	CompteStagiaire TypeCompte = "STAGIAIRE"
)

// Valid reports whether t is one of the known account types.
func (t TypeCompte) Valid() bool {
	switch t {
	case CompteAdmin, CompteEncadreur, CompteSuperieur, CompteStagiaire:
		return true
	}
	return false
}

// CompteUtilisateur maps the comptes_utilisateurs table. The entity link is a
// weak back-reference (documentId + type), not a foreign key: the account can
// be deleted independently and the person row holds no pointer back.
type CompteUtilisateur struct {
	Base
	Email            string     `gorm:"type:varchar(255);index;not null" json:"email"`
	MotDePasse       string     `gorm:"type:varchar(255);not null;column:mot_de_passe" json:"-"`
	TypeCompte       TypeCompte `gorm:"type:varchar(30);not null"              json:"typeCompte"`
	EntityDocumentID string     `gorm:"type:varchar(36);column:entity_document_id;index:idx_comptes_entity" json:"entityDocumentId,omitempty"`
	EntityType       TypeCompte `gorm:"type:varchar(30);column:entity_type;index:idx_comptes_entity"        json:"entityType,omitempty"`
	Statut           Statut     `gorm:"type:varchar(10);not null;default:'ACTIF'" json:"statut"`
}

func (CompteUtilisateur) TableName() string { return "comptes_utilisateurs" }
