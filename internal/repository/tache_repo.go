package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Sylvio143/G-stagiaire/internal/model"
)

// TacheRepository is the data access surface for tasks.
type TacheRepository interface {
	Create(ctx context.Context, tache *model.Tache) error
	GetByDocumentID(ctx context.Context, documentID string) (*model.Tache, error)
	List(ctx context.Context) ([]model.Tache, error)
	ListByStage(ctx context.Context, stageDocumentID string) ([]model.Tache, error)
	ListByStatut(ctx context.Context, statut model.StatutTache) ([]model.Tache, error)
	ListByStageAndStatut(ctx context.Context, stageDocumentID string, statut model.StatutTache) ([]model.Tache, error)
	ListEnRetard(ctx context.Context, now time.Time) ([]model.Tache, error)
	Update(ctx context.Context, tache *model.Tache) error
	Delete(ctx context.Context, id uint) error
}

type tacheRepo struct {
	db *gorm.DB
}

// NewTacheRepo creates the gorm-backed TacheRepository.
func NewTacheRepo(db *gorm.DB) TacheRepository {
	return &tacheRepo{db: db}
}

func (r *tacheRepo) Create(ctx context.Context, tache *model.Tache) error {
	return r.db.WithContext(ctx).Create(tache).Error
}

func (r *tacheRepo) GetByDocumentID(ctx context.Context, documentID string) (*model.Tache, error) {
	var t model.Tache
	err := r.db.WithContext(ctx).Where("document_id = ?", documentID).First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *tacheRepo) List(ctx context.Context) ([]model.Tache, error) {
	var ts []model.Tache
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&ts).Error
	return ts, err
}

func (r *tacheRepo) ListByStage(ctx context.Context, stageDocumentID string) ([]model.Tache, error) {
	var ts []model.Tache
	err := r.db.WithContext(ctx).
		Where("stage_document_id = ?", stageDocumentID).
		Order("priorite ASC, created_at DESC").
		Find(&ts).Error
	return ts, err
}

func (r *tacheRepo) ListByStatut(ctx context.Context, statut model.StatutTache) ([]model.Tache, error) {
	var ts []model.Tache
	err := r.db.WithContext(ctx).Where("statut = ?", statut).Find(&ts).Error
	return ts, err
}

func (r *tacheRepo) ListByStageAndStatut(ctx context.Context, stageDocumentID string, statut model.StatutTache) ([]model.Tache, error) {
	var ts []model.Tache
	err := r.db.WithContext(ctx).
		Where("stage_document_id = ? AND statut = ?", stageDocumentID, statut).
		Order("priorite ASC").
		Find(&ts).Error
	return ts, err
}

func (r *tacheRepo) ListEnRetard(ctx context.Context, now time.Time) ([]model.Tache, error) {
	var ts []model.Tache
	err := r.db.WithContext(ctx).
		Where("date_fin IS NOT NULL AND date_fin < ? AND statut <> ?", now, model.TacheTerminee).
		Order("date_fin ASC").
		Find(&ts).Error
	return ts, err
}

func (r *tacheRepo) Update(ctx context.Context, tache *model.Tache) error {
	return r.db.WithContext(ctx).Save(tache).Error
}

func (r *tacheRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Tache{}, id).Error
}
