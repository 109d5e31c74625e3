package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Sylvio143/G-stagiaire/internal/model"
)

// AdminRepository is the data access surface for administrators.
type AdminRepository interface {
	Create(ctx context.Context, admin *model.Admin) error
	GetByDocumentID(ctx context.Context, documentID string) (*model.Admin, error)
	GetByEmail(ctx context.Context, email string) (*model.Admin, error)
	GetByCin(ctx context.Context, cin string) (*model.Admin, error)
	List(ctx context.Context) ([]model.Admin, error)
	ListByStatut(ctx context.Context, statut model.Statut) ([]model.Admin, error)
	Update(ctx context.Context, admin *model.Admin) error
	Delete(ctx context.Context, id uint) error
}

type adminRepo struct {
	db *gorm.DB
}

// NewAdminRepo creates the gorm-backed AdminRepository.
func NewAdminRepo(db *gorm.DB) AdminRepository {
	return &adminRepo{db: db}
}

func (r *adminRepo) Create(ctx context.Context, admin *model.Admin) error {
	return r.db.WithContext(ctx).Create(admin).Error
}

func (r *adminRepo) GetByDocumentID(ctx context.Context, documentID string) (*model.Admin, error) {
	var admin model.Admin
	err := r.db.WithContext(ctx).Where("document_id = ?", documentID).First(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepo) GetByEmail(ctx context.Context, email string) (*model.Admin, error) {
	var admin model.Admin
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepo) GetByCin(ctx context.Context, cin string) (*model.Admin, error) {
	var admin model.Admin
	err := r.db.WithContext(ctx).Where("cin = ?", cin).First(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepo) List(ctx context.Context) ([]model.Admin, error) {
	var admins []model.Admin
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&admins).Error
	return admins, err
}

func (r *adminRepo) ListByStatut(ctx context.Context, statut model.Statut) ([]model.Admin, error) {
	var admins []model.Admin
	err := r.db.WithContext(ctx).Where("statut = ?", statut).Order("created_at DESC").Find(&admins).Error
	return admins, err
}

func (r *adminRepo) Update(ctx context.Context, admin *model.Admin) error {
	return r.db.WithContext(ctx).Save(admin).Error
}

func (r *adminRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Admin{}, id).Error
}
