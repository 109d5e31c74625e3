package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Sylvio143/G-stagiaire/internal/model"
)

// CompteRepository is the data access surface for user accounts. The entity
// lookups resolve the weak (entityDocumentId, entityType) back-reference.
type CompteRepository interface {
	Create(ctx context.Context, compte *model.CompteUtilisateur) error
	GetByDocumentID(ctx context.Context, documentID string) (*model.CompteUtilisateur, error)
	GetByEmail(ctx context.Context, email string) (*model.CompteUtilisateur, error)
	List(ctx context.Context) ([]model.CompteUtilisateur, error)
	ListByStatut(ctx context.Context, statut model.Statut) ([]model.CompteUtilisateur, error)
	ListByType(ctx context.Context, typeCompte model.TypeCompte) ([]model.CompteUtilisateur, error)
	ListByEntity(ctx context.Context, entityDocumentID string) ([]model.CompteUtilisateur, error)
	ListByEntityAndType(ctx context.Context, entityDocumentID string, entityType model.TypeCompte) ([]model.CompteUtilisateur, error)
	Update(ctx context.Context, compte *model.CompteUtilisateur) error
	Delete(ctx context.Context, id uint) error
}

type compteRepo struct {
	db *gorm.DB
}

// NewCompteRepo creates the gorm-backed CompteRepository.
func NewCompteRepo(db *gorm.DB) CompteRepository {
	return &compteRepo{db: db}
}

func (r *compteRepo) Create(ctx context.Context, compte *model.CompteUtilisateur) error {
	return r.db.WithContext(ctx).Create(compte).Error
}

func (r *compteRepo) GetByDocumentID(ctx context.Context, documentID string) (*model.CompteUtilisateur, error) {
	var c model.CompteUtilisateur
	err := r.db.WithContext(ctx).Where("document_id = ?", documentID).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *compteRepo) GetByEmail(ctx context.Context, email string) (*model.CompteUtilisateur, error) {
	var c model.CompteUtilisateur
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *compteRepo) List(ctx context.Context) ([]model.CompteUtilisateur, error) {
	var cs []model.CompteUtilisateur
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&cs).Error
	return cs, err
}

func (r *compteRepo) ListByStatut(ctx context.Context, statut model.Statut) ([]model.CompteUtilisateur, error) {
	var cs []model.CompteUtilisateur
	err := r.db.WithContext(ctx).Where("statut = ?", statut).Find(&cs).Error
	return cs, err
}

func (r *compteRepo) ListByType(ctx context.Context, typeCompte model.TypeCompte) ([]model.CompteUtilisateur, error) {
	var cs []model.CompteUtilisateur
	err := r.db.WithContext(ctx).Where("type_compte = ?", typeCompte).Find(&cs).Error
	return cs, err
}

func (r *compteRepo) ListByEntity(ctx context.Context, entityDocumentID string) ([]model.CompteUtilisateur, error) {
	var cs []model.CompteUtilisateur
	err := r.db.WithContext(ctx).Where("entity_document_id = ?", entityDocumentID).Find(&cs).Error
	return cs, err
}

func (r *compteRepo) ListByEntityAndType(ctx context.Context, entityDocumentID string, entityType model.TypeCompte) ([]model.CompteUtilisateur, error) {
	var cs []model.CompteUtilisateur
	err := r.db.WithContext(ctx).
		Where("entity_document_id = ? AND entity_type = ?", entityDocumentID, entityType).
		Order("created_at ASC").
		Find(&cs).Error
	return cs, err
}

func (r *compteRepo) Update(ctx context.Context, compte *model.CompteUtilisateur) error {
	return r.db.WithContext(ctx).Save(compte).Error
}

func (r *compteRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.CompteUtilisateur{}, id).Error
}
