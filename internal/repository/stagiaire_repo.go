package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Sylvio143/G-stagiaire/internal/model"
)

// StagiaireRepository is the data access surface for interns. GetWithStages
// preloads the many-to-many stage list for the active-stage checks.
type StagiaireRepository interface {
	Create(ctx context.Context, stagiaire *model.Stagiaire) error
	GetByDocumentID(ctx context.Context, documentID string) (*model.Stagiaire, error)
	GetWithStages(ctx context.Context, documentID string) (*model.Stagiaire, error)
	GetByEmail(ctx context.Context, email string) (*model.Stagiaire, error)
	GetByCin(ctx context.Context, cin string) (*model.Stagiaire, error)
	List(ctx context.Context) ([]model.Stagiaire, error)
	ListByStatut(ctx context.Context, statut model.Statut) ([]model.Stagiaire, error)
	ListByEncadreur(ctx context.Context, encadreurDocumentID string) ([]model.Stagiaire, error)
	ListByEcole(ctx context.Context, ecole string) ([]model.Stagiaire, error)
	ListByFiliere(ctx context.Context, filiere string) ([]model.Stagiaire, error)
	ListWithEncadreur(ctx context.Context) ([]model.Stagiaire, error)
	Update(ctx context.Context, stagiaire *model.Stagiaire) error
	Delete(ctx context.Context, id uint) error
}

type stagiaireRepo struct {
	db *gorm.DB
}

// NewStagiaireRepo creates the gorm-backed StagiaireRepository.
func NewStagiaireRepo(db *gorm.DB) StagiaireRepository {
	return &stagiaireRepo{db: db}
}

func (r *stagiaireRepo) Create(ctx context.Context, stagiaire *model.Stagiaire) error {
	return r.db.WithContext(ctx).Create(stagiaire).Error
}

func (r *stagiaireRepo) GetByDocumentID(ctx context.Context, documentID string) (*model.Stagiaire, error) {
	var st model.Stagiaire
	err := r.db.WithContext(ctx).
		Preload("Photo").
		Where("document_id = ?", documentID).
		First(&st).Error
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func (r *stagiaireRepo) GetWithStages(ctx context.Context, documentID string) (*model.Stagiaire, error) {
	var st model.Stagiaire
	err := r.db.WithContext(ctx).
		Preload("Photo").
		Preload("Stages").
		Where("document_id = ?", documentID).
		First(&st).Error
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func (r *stagiaireRepo) GetByEmail(ctx context.Context, email string) (*model.Stagiaire, error) {
	var st model.Stagiaire
	err := r.db.WithContext(ctx).Preload("Photo").Where("email = ?", email).First(&st).Error
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func (r *stagiaireRepo) GetByCin(ctx context.Context, cin string) (*model.Stagiaire, error) {
	var st model.Stagiaire
	err := r.db.WithContext(ctx).Where("cin = ?", cin).First(&st).Error
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func (r *stagiaireRepo) List(ctx context.Context) ([]model.Stagiaire, error) {
	var sts []model.Stagiaire
	err := r.db.WithContext(ctx).Preload("Photo").Order("created_at DESC").Find(&sts).Error
	return sts, err
}

func (r *stagiaireRepo) ListByStatut(ctx context.Context, statut model.Statut) ([]model.Stagiaire, error) {
	var sts []model.Stagiaire
	err := r.db.WithContext(ctx).
		Preload("Photo").
		Where("statut = ?", statut).
		Order("created_at DESC").
		Find(&sts).Error
	return sts, err
}

func (r *stagiaireRepo) ListByEncadreur(ctx context.Context, encadreurDocumentID string) ([]model.Stagiaire, error) {
	var sts []model.Stagiaire
	err := r.db.WithContext(ctx).
		Preload("Photo").
		Where("encadreur_document_id = ?", encadreurDocumentID).
		Find(&sts).Error
	return sts, err
}

func (r *stagiaireRepo) ListByEcole(ctx context.Context, ecole string) ([]model.Stagiaire, error) {
	var sts []model.Stagiaire
	err := r.db.WithContext(ctx).Preload("Photo").Where("ecole = ?", ecole).Find(&sts).Error
	return sts, err
}

func (r *stagiaireRepo) ListByFiliere(ctx context.Context, filiere string) ([]model.Stagiaire, error) {
	var sts []model.Stagiaire
	err := r.db.WithContext(ctx).Preload("Photo").Where("filiere = ?", filiere).Find(&sts).Error
	return sts, err
}

func (r *stagiaireRepo) ListWithEncadreur(ctx context.Context) ([]model.Stagiaire, error) {
	var sts []model.Stagiaire
	err := r.db.WithContext(ctx).
		Preload("Photo").
		Preload("Encadreur").
		Where("encadreur_document_id IS NOT NULL").
		Find(&sts).Error
	return sts, err
}

func (r *stagiaireRepo) Update(ctx context.Context, stagiaire *model.Stagiaire) error {
	return r.db.WithContext(ctx).Save(stagiaire).Error
}

func (r *stagiaireRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Stagiaire{}, id).Error
}
