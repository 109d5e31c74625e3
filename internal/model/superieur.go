package model

// SuperieurHierarchique maps the superieurs_hierarchiques table.
type SuperieurHierarchique struct {
	Base
	Nom         string `gorm:"type:varchar(100);not null"             json:"nom"`
	Prenom      string `gorm:"type:varchar(100);not null"             json:"prenom"`
	Email       string `gorm:"type:varchar(255);index;not null" json:"email"`
	Telephone   string `gorm:"type:varchar(30);not null"              json:"telephone"`
	Cin         string `gorm:"type:varchar(30);index;not null"  json:"cin"`
	Fonction    string `gorm:"type:varchar(100);not null"             json:"fonction"`
	Departement string `gorm:"type:varchar(100)"                      json:"departement,omitempty"`
	Statut      Statut `gorm:"type:varchar(10);not null;default:'ACTIF'" json:"statut"`

	PhotoDocumentID *string    `gorm:"type:varchar(36);column:photo_document_id" json:"-"`
	Photo           *MediaFile `gorm:"foreignKey:PhotoDocumentID;references:DocumentID" json:"photo,omitempty"`

	Encadreurs []Encadreur `gorm:"foreignKey:SuperieurDocumentID;references:DocumentID" json:"encadreurs,omitempty"`
	Stages     []Stage     `gorm:"foreignKey:SuperieurDocumentID;references:DocumentID" json:"stages,omitempty"`
}

func (SuperieurHierarchique) TableName() string { return "superieurs_hierarchiques" }
