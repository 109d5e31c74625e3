package dto

// CreateCompteRequest creates a user account directly.
type CreateCompteRequest struct {
	Email            string `json:"email"      binding:"required,email"`
	MotDePasse       string `json:"motDePasse" binding:"required,min=6"`
	TypeCompte       string `json:"typeCompte" binding:"required,oneof=ADMIN ENCADREUR SUPERIEUR_HIERARCHIQUE STAGIAIRE"`
	EntityDocumentID string `json:"entityDocumentId" binding:"omitempty,max=36"`
}

// CreateCompteForEntityRequest creates the account backing a person entity.
type CreateCompteForEntityRequest struct {
	Email            string `json:"email"      binding:"required,email"`
	MotDePasse       string `json:"motDePasse" binding:"required"`
	TypeCompte       string `json:"typeCompte" binding:"required,oneof=ADMIN ENCADREUR SUPERIEUR_HIERARCHIQUE STAGIAIRE"`
	EntityDocumentID string `json:"entityDocumentId" binding:"required,max=36"`
}

// UpdateCompteRequest is a merge-patch body. A non-empty MotDePasse is
// re-hashed; empty leaves the stored hash untouched.
type UpdateCompteRequest struct {
	Email            *string `json:"email"      binding:"omitempty,email"`
	MotDePasse       *string `json:"motDePasse" binding:"omitempty"`
	TypeCompte       *string `json:"typeCompte" binding:"omitempty,oneof=ADMIN ENCADREUR SUPERIEUR_HIERARCHIQUE STAGIAIRE"`
	EntityDocumentID *string `json:"entityDocumentId" binding:"omitempty,max=36"`
	Statut           *string `json:"statut"     binding:"omitempty,oneof=ACTIF INACTIF"`
}

// AuthenticateRequest carries login credentials.
type AuthenticateRequest struct {
	Email      string `json:"email"    binding:"required,email"`
	MotDePasse string `json:"password" binding:"required"`
}

// UpdatePasswordRequest replaces an account password.
type UpdatePasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required"`
}

// CompteResponse is the transport representation of an account. The password
// hash is never echoed.
type CompteResponse struct {
	Meta
	Email            string `json:"email"`
	TypeCompte       string `json:"typeCompte"`
	EntityDocumentID string `json:"entityDocumentId,omitempty"`
	EntityType       string `json:"entityType,omitempty"`
	Statut           string `json:"statut"`
}

// AuthenticateResponse is the successful login payload: the account plus a
// JWT token pair for the protected routes.
type AuthenticateResponse struct {
	Compte       *CompteResponse `json:"compte"`
	AccessToken  string          `json:"accessToken"`
	RefreshToken string          `json:"refreshToken"`
}

// RefreshRequest exchanges a refresh token for a new pair.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}
