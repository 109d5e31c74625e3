package dto

// CreateEncadreurRequest creates a tutor.
type CreateEncadreurRequest struct {
	Nom                   string  `json:"nom"         binding:"required,max=100"`
	Prenom                string  `json:"prenom"      binding:"required,max=100"`
	Email                 string  `json:"email"       binding:"required,email"`
	Telephone             string  `json:"telephone"   binding:"required,max=30"`
	Cin                   string  `json:"cin"         binding:"required,max=30"`
	Fonction              string  `json:"fonction"    binding:"omitempty,max=100"`
	Departement           string  `json:"departement" binding:"omitempty,max=100"`
	Specialite            string  `json:"specialite"  binding:"omitempty,max=100"`
	SuperieurHierarchique *string `json:"superieurHierarchiqueDocumentId" binding:"omitempty,max=36"`
}

// UpdateEncadreurRequest is a merge-patch body. A non-nil supervisor id
// re-resolves the link; nil clears it (the original's update rule).
type UpdateEncadreurRequest struct {
	Nom                   *string `json:"nom"         binding:"omitempty,max=100"`
	Prenom                *string `json:"prenom"      binding:"omitempty,max=100"`
	Email                 *string `json:"email"       binding:"omitempty,email"`
	Telephone             *string `json:"telephone"   binding:"omitempty,max=30"`
	Cin                   *string `json:"cin"         binding:"omitempty,max=30"`
	Fonction              *string `json:"fonction"    binding:"omitempty,max=100"`
	Departement           *string `json:"departement" binding:"omitempty,max=100"`
	Specialite            *string `json:"specialite"  binding:"omitempty,max=100"`
	Statut                *string `json:"statut"      binding:"omitempty,oneof=ACTIF INACTIF"`
	SuperieurHierarchique *string `json:"superieurHierarchiqueDocumentId" binding:"omitempty,max=36"`
}

// EncadreurResponse is the transport representation of a tutor. The photo URL
// triplet is copied from the linked MediaFile and is empty without one.
type EncadreurResponse struct {
	Meta
	Nom                             string  `json:"nom"`
	Prenom                          string  `json:"prenom"`
	Email                           string  `json:"email"`
	Telephone                       string  `json:"telephone"`
	Cin                             string  `json:"cin"`
	Fonction                        string  `json:"fonction,omitempty"`
	Departement                     string  `json:"departement,omitempty"`
	Specialite                      string  `json:"specialite,omitempty"`
	Statut                          string  `json:"statut"`
	SuperieurHierarchiqueDocumentID *string `json:"superieurHierarchiqueDocumentId,omitempty"`
	PhotoURL                        *string `json:"photoUrl,omitempty"`
	ThumbnailURL                    *string `json:"thumbnailUrl,omitempty"`
	MediumPhotoURL                  *string `json:"mediumPhotoUrl,omitempty"`
}
