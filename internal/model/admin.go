package model

// Admin maps the admins table.
type Admin struct {
	Base
	Nom       string `gorm:"type:varchar(100);not null"             json:"nom"`
	Prenom    string `gorm:"type:varchar(100);not null"             json:"prenom"`
	Email     string `gorm:"type:varchar(255);index;not null" json:"email"`
	Telephone string `gorm:"type:varchar(30);not null"              json:"telephone"`
	Cin       string `gorm:"type:varchar(30);index;not null"  json:"cin"`
	Fonction  string `gorm:"type:varchar(100);default:'Administrateur'" json:"fonction"`
	Statut    Statut `gorm:"type:varchar(10);not null;default:'ACTIF'"  json:"statut"`
}

func (Admin) TableName() string { return "admins" }
