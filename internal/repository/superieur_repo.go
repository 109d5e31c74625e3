package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Sylvio143/G-stagiaire/internal/model"
)

// SuperieurRepository is the data access surface for supervisors.
type SuperieurRepository interface {
	Create(ctx context.Context, superieur *model.SuperieurHierarchique) error
	GetByDocumentID(ctx context.Context, documentID string) (*model.SuperieurHierarchique, error)
	GetByEmail(ctx context.Context, email string) (*model.SuperieurHierarchique, error)
	GetByCin(ctx context.Context, cin string) (*model.SuperieurHierarchique, error)
	List(ctx context.Context) ([]model.SuperieurHierarchique, error)
	ListByStatut(ctx context.Context, statut model.Statut) ([]model.SuperieurHierarchique, error)
	ListByDepartement(ctx context.Context, departement string) ([]model.SuperieurHierarchique, error)
	ListWithPhoto(ctx context.Context) ([]model.SuperieurHierarchique, error)
	Count(ctx context.Context) (int64, error)
	CountByDepartement(ctx context.Context, departement string) (int64, error)
	Update(ctx context.Context, superieur *model.SuperieurHierarchique) error
	Delete(ctx context.Context, id uint) error
}

type superieurRepo struct {
	db *gorm.DB
}

// NewSuperieurRepo creates the gorm-backed SuperieurRepository.
func NewSuperieurRepo(db *gorm.DB) SuperieurRepository {
	return &superieurRepo{db: db}
}

func (r *superieurRepo) Create(ctx context.Context, superieur *model.SuperieurHierarchique) error {
	return r.db.WithContext(ctx).Create(superieur).Error
}

func (r *superieurRepo) GetByDocumentID(ctx context.Context, documentID string) (*model.SuperieurHierarchique, error) {
	var sup model.SuperieurHierarchique
	err := r.db.WithContext(ctx).
		Preload("Photo").
		Where("document_id = ?", documentID).
		First(&sup).Error
	if err != nil {
		return nil, err
	}
	return &sup, nil
}

func (r *superieurRepo) GetByEmail(ctx context.Context, email string) (*model.SuperieurHierarchique, error) {
	var sup model.SuperieurHierarchique
	err := r.db.WithContext(ctx).Preload("Photo").Where("email = ?", email).First(&sup).Error
	if err != nil {
		return nil, err
	}
	return &sup, nil
}

func (r *superieurRepo) GetByCin(ctx context.Context, cin string) (*model.SuperieurHierarchique, error) {
	var sup model.SuperieurHierarchique
	err := r.db.WithContext(ctx).Where("cin = ?", cin).First(&sup).Error
	if err != nil {
		return nil, err
	}
	return &sup, nil
}

func (r *superieurRepo) List(ctx context.Context) ([]model.SuperieurHierarchique, error) {
	var sups []model.SuperieurHierarchique
	err := r.db.WithContext(ctx).Preload("Photo").Order("created_at DESC").Find(&sups).Error
	return sups, err
}

func (r *superieurRepo) ListByStatut(ctx context.Context, statut model.Statut) ([]model.SuperieurHierarchique, error) {
	var sups []model.SuperieurHierarchique
	err := r.db.WithContext(ctx).
		Preload("Photo").
		Where("statut = ?", statut).
		Order("created_at DESC").
		Find(&sups).Error
	return sups, err
}

func (r *superieurRepo) ListByDepartement(ctx context.Context, departement string) ([]model.SuperieurHierarchique, error) {
	var sups []model.SuperieurHierarchique
	err := r.db.WithContext(ctx).Preload("Photo").Where("departement = ?", departement).Find(&sups).Error
	return sups, err
}

func (r *superieurRepo) ListWithPhoto(ctx context.Context) ([]model.SuperieurHierarchique, error) {
	var sups []model.SuperieurHierarchique
	err := r.db.WithContext(ctx).
		Preload("Photo").
		Where("photo_document_id IS NOT NULL").
		Find(&sups).Error
	return sups, err
}

func (r *superieurRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.SuperieurHierarchique{}).Count(&n).Error
	return n, err
}

func (r *superieurRepo) CountByDepartement(ctx context.Context, departement string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.SuperieurHierarchique{}).
		Where("departement = ?", departement).
		Count(&n).Error
	return n, err
}

func (r *superieurRepo) Update(ctx context.Context, superieur *model.SuperieurHierarchique) error {
	return r.db.WithContext(ctx).Save(superieur).Error
}

func (r *superieurRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.SuperieurHierarchique{}, id).Error
}
