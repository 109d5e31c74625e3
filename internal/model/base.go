package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Statut is the active/inactive state shared by person entities and accounts.
// Deactivation is a soft state transition, never a row removal.
type Statut string

const (
	StatutActif   Statut = "ACTIF"
	StatutInactif Statut = "INACTIF"
)

// Valid reports whether s is one of the known statut values.
func (s Statut) Valid() bool {
	return s == StatutActif || s == StatutInactif
}

// Base carries the surrogate key, the stable external documentId and the
// audit timestamps embedded by every business model. Cross-entity references
// and API paths always use DocumentID, never ID.
type Base struct {
	ID         uint      `gorm:"primaryKey"                            json:"id"`
	DocumentID string    `gorm:"type:varchar(36);uniqueIndex;not null" json:"documentId"`
	CreatedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"    json:"createdAt"`
	UpdatedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"    json:"updatedAt"`
}

// BeforeCreate assigns a fresh documentId when the caller did not supply one.
func (b *Base) BeforeCreate(_ *gorm.DB) error {
	if b.DocumentID == "" {
		b.DocumentID = uuid.New().String()
	}
	return nil
}
