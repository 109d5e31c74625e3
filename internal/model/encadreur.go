package model

// Encadreur maps the encadreurs table. The photo and supervisor links are
// resolved through document ids rather than surrogate keys so they survive
// re-imports of either side.
type Encadreur struct {
	Base
	Nom         string `gorm:"type:varchar(100);not null"             json:"nom"`
	Prenom      string `gorm:"type:varchar(100);not null"             json:"prenom"`
	Email       string `gorm:"type:varchar(255);index;not null" json:"email"`
	Telephone   string `gorm:"type:varchar(30);not null"              json:"telephone"`
	Cin         string `gorm:"type:varchar(30);index;not null"  json:"cin"`
	Fonction    string `gorm:"type:varchar(100)"                      json:"fonction,omitempty"`
	Departement string `gorm:"type:varchar(100)"                      json:"departement,omitempty"`
	Specialite  string `gorm:"type:varchar(100)"                      json:"specialite,omitempty"`
	Statut      Statut `gorm:"type:varchar(10);not null;default:'ACTIF'" json:"statut"`

	PhotoDocumentID     *string `gorm:"type:varchar(36);column:photo_document_id"     json:"-"`
	SuperieurDocumentID *string `gorm:"type:varchar(36);column:superieur_document_id" json:"-"`

	Photo                 *MediaFile             `gorm:"foreignKey:PhotoDocumentID;references:DocumentID"     json:"photo,omitempty"`
	SuperieurHierarchique *SuperieurHierarchique `gorm:"foreignKey:SuperieurDocumentID;references:DocumentID" json:"superieurHierarchique,omitempty"`

	Stagiaires []Stagiaire `gorm:"foreignKey:EncadreurDocumentID;references:DocumentID" json:"stagiaires,omitempty"`
	Stages     []Stage     `gorm:"foreignKey:EncadreurDocumentID;references:DocumentID" json:"stages,omitempty"`
}

func (Encadreur) TableName() string { return "encadreurs" }
