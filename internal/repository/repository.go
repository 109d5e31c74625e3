package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository aggregates every entity repository. Services receive the whole
// aggregate so multi-entity operations (the status cascade in particular) can
// run against a single transaction via BeginTx/WithTx.
type Repository struct {
	Admin        AdminRepository
	Encadreur    EncadreurRepository
	Stagiaire    StagiaireRepository
	Superieur    SuperieurRepository
	Stage        StageRepository
	Tache        TacheRepository
	Compte       CompteRepository
	Notification NotificationRepository
	Media        MediaRepository

	db *gorm.DB
}

// NewRepository wires the gorm implementations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Admin:        NewAdminRepo(db),
		Encadreur:    NewEncadreurRepo(db),
		Stagiaire:    NewStagiaireRepo(db),
		Superieur:    NewSuperieurRepo(db),
		Stage:        NewStageRepo(db),
		Tache:        NewTacheRepo(db),
		Compte:       NewCompteRepo(db),
		Notification: NewNotificationRepo(db),
		Media:        NewMediaRepo(db),
		db:           db,
	}
}

// BeginTx opens a transaction on the underlying connection.
func (r *Repository) BeginTx(ctx context.Context) (*gorm.DB, error) {
	if r.db == nil {
		return nil, nil
	}
	tx := r.db.WithContext(ctx).Begin()
	return tx, tx.Error
}

// WithTx returns a Repository whose implementations all run on tx. The
// receiver is left untouched.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	if tx == nil {
		return r
	}
	return NewRepository(tx)
}
