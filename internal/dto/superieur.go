package dto

// CreateSuperieurRequest creates a supervisor.
type CreateSuperieurRequest struct {
	Nom         string `json:"nom"         binding:"required,max=100"`
	Prenom      string `json:"prenom"      binding:"required,max=100"`
	Email       string `json:"email"       binding:"required,email"`
	Telephone   string `json:"telephone"   binding:"required,max=30"`
	Cin         string `json:"cin"         binding:"required,max=30"`
	Fonction    string `json:"fonction"    binding:"required,max=100"`
	Departement string `json:"departement" binding:"omitempty,max=100"`
}

// UpdateSuperieurRequest is a merge-patch body: nil fields stay untouched.
type UpdateSuperieurRequest struct {
	Nom         *string `json:"nom"         binding:"omitempty,max=100"`
	Prenom      *string `json:"prenom"      binding:"omitempty,max=100"`
	Email       *string `json:"email"       binding:"omitempty,email"`
	Telephone   *string `json:"telephone"   binding:"omitempty,max=30"`
	Cin         *string `json:"cin"         binding:"omitempty,max=30"`
	Fonction    *string `json:"fonction"    binding:"omitempty,max=100"`
	Departement *string `json:"departement" binding:"omitempty,max=100"`
	Statut      *string `json:"statut"      binding:"omitempty,oneof=ACTIF INACTIF"`
}

// SuperieurResponse is the transport representation of a supervisor.
type SuperieurResponse struct {
	Meta
	Nom            string  `json:"nom"`
	Prenom         string  `json:"prenom"`
	Email          string  `json:"email"`
	Telephone      string  `json:"telephone"`
	Cin            string  `json:"cin"`
	Fonction       string  `json:"fonction"`
	Departement    string  `json:"departement,omitempty"`
	Statut         string  `json:"statut"`
	PhotoURL       *string `json:"photoUrl,omitempty"`
	ThumbnailURL   *string `json:"thumbnailUrl,omitempty"`
	MediumPhotoURL *string `json:"mediumPhotoUrl,omitempty"`
}

// CountResponse wraps the count statistics endpoints.
type CountResponse struct {
	Count int64 `json:"count"`
}
