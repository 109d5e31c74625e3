package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Sylvio143/G-stagiaire/internal/model"
)

// EncadreurRepository is the data access surface for tutors.
type EncadreurRepository interface {
	Create(ctx context.Context, encadreur *model.Encadreur) error
	GetByDocumentID(ctx context.Context, documentID string) (*model.Encadreur, error)
	GetByEmail(ctx context.Context, email string) (*model.Encadreur, error)
	GetByCin(ctx context.Context, cin string) (*model.Encadreur, error)
	List(ctx context.Context) ([]model.Encadreur, error)
	ListByStatut(ctx context.Context, statut model.Statut) ([]model.Encadreur, error)
	ListBySuperieur(ctx context.Context, superieurDocumentID string) ([]model.Encadreur, error)
	ListByDepartement(ctx context.Context, departement string) ([]model.Encadreur, error)
	ListWithSuperieur(ctx context.Context) ([]model.Encadreur, error)
	Update(ctx context.Context, encadreur *model.Encadreur) error
	Delete(ctx context.Context, id uint) error
}

type encadreurRepo struct {
	db *gorm.DB
}

// NewEncadreurRepo creates the gorm-backed EncadreurRepository.
func NewEncadreurRepo(db *gorm.DB) EncadreurRepository {
	return &encadreurRepo{db: db}
}

func (r *encadreurRepo) Create(ctx context.Context, encadreur *model.Encadreur) error {
	return r.db.WithContext(ctx).Create(encadreur).Error
}

func (r *encadreurRepo) GetByDocumentID(ctx context.Context, documentID string) (*model.Encadreur, error) {
	var enc model.Encadreur
	err := r.db.WithContext(ctx).
		Preload("Photo").
		Where("document_id = ?", documentID).
		First(&enc).Error
	if err != nil {
		return nil, err
	}
	return &enc, nil
}

func (r *encadreurRepo) GetByEmail(ctx context.Context, email string) (*model.Encadreur, error) {
	var enc model.Encadreur
	err := r.db.WithContext(ctx).Preload("Photo").Where("email = ?", email).First(&enc).Error
	if err != nil {
		return nil, err
	}
	return &enc, nil
}

func (r *encadreurRepo) GetByCin(ctx context.Context, cin string) (*model.Encadreur, error) {
	var enc model.Encadreur
	err := r.db.WithContext(ctx).Where("cin = ?", cin).First(&enc).Error
	if err != nil {
		return nil, err
	}
	return &enc, nil
}

func (r *encadreurRepo) List(ctx context.Context) ([]model.Encadreur, error) {
	var encs []model.Encadreur
	err := r.db.WithContext(ctx).Preload("Photo").Order("created_at DESC").Find(&encs).Error
	return encs, err
}

func (r *encadreurRepo) ListByStatut(ctx context.Context, statut model.Statut) ([]model.Encadreur, error) {
	var encs []model.Encadreur
	err := r.db.WithContext(ctx).
		Preload("Photo").
		Where("statut = ?", statut).
		Order("created_at DESC").
		Find(&encs).Error
	return encs, err
}

func (r *encadreurRepo) ListBySuperieur(ctx context.Context, superieurDocumentID string) ([]model.Encadreur, error) {
	var encs []model.Encadreur
	err := r.db.WithContext(ctx).
		Preload("Photo").
		Where("superieur_document_id = ?", superieurDocumentID).
		Find(&encs).Error
	return encs, err
}

func (r *encadreurRepo) ListByDepartement(ctx context.Context, departement string) ([]model.Encadreur, error) {
	var encs []model.Encadreur
	err := r.db.WithContext(ctx).
		Preload("Photo").
		Where("departement = ?", departement).
		Find(&encs).Error
	return encs, err
}

func (r *encadreurRepo) ListWithSuperieur(ctx context.Context) ([]model.Encadreur, error) {
	var encs []model.Encadreur
	err := r.db.WithContext(ctx).
		Preload("Photo").
		Preload("SuperieurHierarchique").
		Where("superieur_document_id IS NOT NULL").
		Find(&encs).Error
	return encs, err
}

func (r *encadreurRepo) Update(ctx context.Context, encadreur *model.Encadreur) error {
	return r.db.WithContext(ctx).Save(encadreur).Error
}

func (r *encadreurRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Encadreur{}, id).Error
}
