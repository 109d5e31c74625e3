package dto

// CreateAdminRequest creates an administrator.
type CreateAdminRequest struct {
	Nom       string `json:"nom"       binding:"required,max=100"`
	Prenom    string `json:"prenom"    binding:"required,max=100"`
	Email     string `json:"email"     binding:"required,email"`
	Telephone string `json:"telephone" binding:"required,max=30"`
	Cin       string `json:"cin"       binding:"required,max=30"`
	Fonction  string `json:"fonction"  binding:"omitempty,max=100"`
}

// UpdateAdminRequest is a merge-patch body: nil fields stay untouched.
type UpdateAdminRequest struct {
	Nom       *string `json:"nom"       binding:"omitempty,max=100"`
	Prenom    *string `json:"prenom"    binding:"omitempty,max=100"`
	Email     *string `json:"email"     binding:"omitempty,email"`
	Telephone *string `json:"telephone" binding:"omitempty,max=30"`
	Cin       *string `json:"cin"       binding:"omitempty,max=30"`
	Fonction  *string `json:"fonction"  binding:"omitempty,max=100"`
	Statut    *string `json:"statut"    binding:"omitempty,oneof=ACTIF INACTIF"`
}

// AdminResponse is the transport representation of an administrator.
type AdminResponse struct {
	Meta
	Nom       string `json:"nom"`
	Prenom    string `json:"prenom"`
	Email     string `json:"email"`
	Telephone string `json:"telephone"`
	Cin       string `json:"cin"`
	Fonction  string `json:"fonction"`
	Statut    string `json:"statut"`
}
