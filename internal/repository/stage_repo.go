package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Sylvio143/G-stagiaire/internal/model"
)

// StageRepository is the data access surface for internships, including the
// stage↔stagiaire association maintenance.
type StageRepository interface {
	Create(ctx context.Context, stage *model.Stage) error
	GetByDocumentID(ctx context.Context, documentID string) (*model.Stage, error)
	List(ctx context.Context) ([]model.Stage, error)
	ListByStatut(ctx context.Context, statut model.StatutStage) ([]model.Stage, error)
	ListByEncadreur(ctx context.Context, encadreurDocumentID string) ([]model.Stage, error)
	ListBySuperieur(ctx context.Context, superieurDocumentID string) ([]model.Stage, error)
	ListByStagiaire(ctx context.Context, stagiaireDocumentID string) ([]model.Stage, error)
	ListWithRelations(ctx context.Context) ([]model.Stage, error)
	AddStagiaire(ctx context.Context, stage *model.Stage, stagiaire *model.Stagiaire) error
	RemoveStagiaire(ctx context.Context, stage *model.Stage, stagiaire *model.Stagiaire) error
	Update(ctx context.Context, stage *model.Stage) error
	Delete(ctx context.Context, id uint) error
}

type stageRepo struct {
	db *gorm.DB
}

// NewStageRepo creates the gorm-backed StageRepository.
func NewStageRepo(db *gorm.DB) StageRepository {
	return &stageRepo{db: db}
}

func (r *stageRepo) Create(ctx context.Context, stage *model.Stage) error {
	return r.db.WithContext(ctx).Create(stage).Error
}

func (r *stageRepo) GetByDocumentID(ctx context.Context, documentID string) (*model.Stage, error) {
	var st model.Stage
	err := r.db.WithContext(ctx).
		Preload("Stagiaires").
		Where("document_id = ?", documentID).
		First(&st).Error
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func (r *stageRepo) List(ctx context.Context) ([]model.Stage, error) {
	var sts []model.Stage
	err := r.db.WithContext(ctx).Preload("Stagiaires").Order("created_at DESC").Find(&sts).Error
	return sts, err
}

func (r *stageRepo) ListByStatut(ctx context.Context, statut model.StatutStage) ([]model.Stage, error) {
	var sts []model.Stage
	err := r.db.WithContext(ctx).
		Preload("Stagiaires").
		Where("statut_stage = ?", statut).
		Find(&sts).Error
	return sts, err
}

func (r *stageRepo) ListByEncadreur(ctx context.Context, encadreurDocumentID string) ([]model.Stage, error) {
	var sts []model.Stage
	err := r.db.WithContext(ctx).
		Preload("Stagiaires").
		Where("encadreur_document_id = ?", encadreurDocumentID).
		Find(&sts).Error
	return sts, err
}

func (r *stageRepo) ListBySuperieur(ctx context.Context, superieurDocumentID string) ([]model.Stage, error) {
	var sts []model.Stage
	err := r.db.WithContext(ctx).
		Preload("Stagiaires").
		Where("superieur_document_id = ?", superieurDocumentID).
		Find(&sts).Error
	return sts, err
}

func (r *stageRepo) ListByStagiaire(ctx context.Context, stagiaireDocumentID string) ([]model.Stage, error) {
	var sts []model.Stage
	err := r.db.WithContext(ctx).
		Preload("Stagiaires").
		Joins("JOIN stage_stagiaires ss ON ss.stage_document_id = stages.document_id").
		Where("ss.stagiaire_document_id = ?", stagiaireDocumentID).
		Find(&sts).Error
	return sts, err
}

func (r *stageRepo) ListWithRelations(ctx context.Context) ([]model.Stage, error) {
	var sts []model.Stage
	err := r.db.WithContext(ctx).
		Preload("Stagiaires").
		Preload("Encadreur").
		Preload("SuperieurHierarchique").
		Preload("Taches").
		Find(&sts).Error
	return sts, err
}

func (r *stageRepo) AddStagiaire(ctx context.Context, stage *model.Stage, stagiaire *model.Stagiaire) error {
	return r.db.WithContext(ctx).Model(stage).Association("Stagiaires").Append(stagiaire)
}

func (r *stageRepo) RemoveStagiaire(ctx context.Context, stage *model.Stage, stagiaire *model.Stagiaire) error {
	return r.db.WithContext(ctx).Model(stage).Association("Stagiaires").Delete(stagiaire)
}

func (r *stageRepo) Update(ctx context.Context, stage *model.Stage) error {
	return r.db.WithContext(ctx).Omit("Stagiaires").Save(stage).Error
}

func (r *stageRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Stage{}, id).Error
}
