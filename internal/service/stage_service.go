package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Sylvio143/G-stagiaire/internal/dto"
	"github.com/Sylvio143/G-stagiaire/internal/model"
	"github.com/Sylvio143/G-stagiaire/internal/repository"
)

var (
	ErrStageNotFound      = errors.New("stage introuvable")
	ErrStageInvalidStatut = errors.New("statut de stage invalide")
	ErrStageInvalidDates  = errors.New("la date de fin doit être postérieure à la date de début")
)

// StageService owns internships and their intern roster.
type StageService interface {
	Create(ctx context.Context, req *dto.CreateStageRequest) (*dto.StageResponse, error)
	GetByDocumentID(ctx context.Context, documentID string) (*dto.StageResponse, error)
	ListAll(ctx context.Context) ([]dto.StageResponse, error)
	ListByStatut(ctx context.Context, statut string) ([]dto.StageResponse, error)
	ListByEncadreur(ctx context.Context, encadreurDocumentID string) ([]dto.StageResponse, error)
	ListBySuperieur(ctx context.Context, superieurDocumentID string) ([]dto.StageResponse, error)
	ListByStagiaire(ctx context.Context, stagiaireDocumentID string) ([]dto.StageResponse, error)
	ListWithRelations(ctx context.Context) ([]dto.StageResponse, error)
	Update(ctx context.Context, documentID string, req *dto.UpdateStageRequest) (*dto.StageResponse, error)
	UpdateStatut(ctx context.Context, documentID, statut string) (*dto.StageResponse, error)
	AddStagiaire(ctx context.Context, documentID, stagiaireDocumentID string) (*dto.StageResponse, error)
	RemoveStagiaire(ctx context.Context, documentID, stagiaireDocumentID string) (*dto.StageResponse, error)
	Delete(ctx context.Context, documentID string) error
}

type stageService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStageService creates the StageService.
func NewStageService(repo *repository.Repository, logger *zap.Logger) StageService {
	return &stageService{repo: repo, logger: logger}
}

func (s *stageService) Create(ctx context.Context, req *dto.CreateStageRequest) (*dto.StageResponse, error) {
	debut, err := parseDate(req.DateDebut)
	if err != nil {
		return nil, err
	}
	fin, err := parseDate(req.DateFin)
	if err != nil {
		return nil, err
	}
	if fin.Before(debut) {
		return nil, ErrStageInvalidDates
	}

	stage := &model.Stage{
		Titre:       req.Titre,
		Description: req.Description,
		DateDebut:   debut,
		DateFin:     fin,
		StatutStage: model.StageEnAttenteValidation,
	}
	if req.Encadreur != nil {
		if _, err := s.repo.Encadreur.GetByDocumentID(ctx, *req.Encadreur); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrEncadreurNotFound
			}
			return nil, err
		}
		stage.EncadreurDocumentID = req.Encadreur
	}
	if req.SuperieurHierarchique != nil {
		if _, err := s.repo.Superieur.GetByDocumentID(ctx, *req.SuperieurHierarchique); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrSuperieurNotFound
			}
			return nil, err
		}
		stage.SuperieurDocumentID = req.SuperieurHierarchique
	}
	for _, sid := range req.Stagiaires {
		st, err := s.repo.Stagiaire.GetByDocumentID(ctx, sid)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrStagiaireNotFound
			}
			return nil, err
		}
		stage.Stagiaires = append(stage.Stagiaires, *st)
	}

	if err := s.repo.Stage.Create(ctx, stage); err != nil {
		s.logger.Error("création du stage échouée", zap.String("titre", req.Titre), zap.Error(err))
		return nil, err
	}
	return stageToResponse(stage), nil
}

func (s *stageService) GetByDocumentID(ctx context.Context, documentID string) (*dto.StageResponse, error) {
	stage, err := s.getStage(ctx, documentID)
	if err != nil {
		return nil, err
	}
	return stageToResponse(stage), nil
}

func (s *stageService) ListAll(ctx context.Context) ([]dto.StageResponse, error) {
	return s.list(func() ([]model.Stage, error) {
		return s.repo.Stage.List(ctx)
	})
}

func (s *stageService) ListByStatut(ctx context.Context, statut string) ([]dto.StageResponse, error) {
	st := model.StatutStage(statut)
	if !st.Valid() {
		return nil, ErrStageInvalidStatut
	}
	return s.list(func() ([]model.Stage, error) {
		return s.repo.Stage.ListByStatut(ctx, st)
	})
}

func (s *stageService) ListByEncadreur(ctx context.Context, encadreurDocumentID string) ([]dto.StageResponse, error) {
	return s.list(func() ([]model.Stage, error) {
		return s.repo.Stage.ListByEncadreur(ctx, encadreurDocumentID)
	})
}

func (s *stageService) ListBySuperieur(ctx context.Context, superieurDocumentID string) ([]dto.StageResponse, error) {
	return s.list(func() ([]model.Stage, error) {
		return s.repo.Stage.ListBySuperieur(ctx, superieurDocumentID)
	})
}

func (s *stageService) ListByStagiaire(ctx context.Context, stagiaireDocumentID string) ([]dto.StageResponse, error) {
	return s.list(func() ([]model.Stage, error) {
		return s.repo.Stage.ListByStagiaire(ctx, stagiaireDocumentID)
	})
}

func (s *stageService) ListWithRelations(ctx context.Context) ([]dto.StageResponse, error) {
	return s.list(func() ([]model.Stage, error) {
		return s.repo.Stage.ListWithRelations(ctx)
	})
}

func (s *stageService) Update(ctx context.Context, documentID string, req *dto.UpdateStageRequest) (*dto.StageResponse, error) {
	stage, err := s.getStage(ctx, documentID)
	if err != nil {
		return nil, err
	}

	if req.Titre != nil {
		stage.Titre = *req.Titre
	}
	if req.Description != nil {
		stage.Description = *req.Description
	}
	if req.DateDebut != nil {
		d, err := parseDate(*req.DateDebut)
		if err != nil {
			return nil, err
		}
		stage.DateDebut = d
	}
	if req.DateFin != nil {
		d, err := parseDate(*req.DateFin)
		if err != nil {
			return nil, err
		}
		stage.DateFin = d
	}
	if stage.DateFin.Before(stage.DateDebut) {
		return nil, ErrStageInvalidDates
	}
	if req.StatutStage != nil {
		st := model.StatutStage(*req.StatutStage)
		if !st.Valid() {
			return nil, ErrStageInvalidStatut
		}
		stage.StatutStage = st
	}

	if err := s.repo.Stage.Update(ctx, stage); err != nil {
		s.logger.Error("mise à jour du stage échouée", zap.String("documentId", documentID), zap.Error(err))
		return nil, err
	}
	return stageToResponse(stage), nil
}

func (s *stageService) UpdateStatut(ctx context.Context, documentID, statut string) (*dto.StageResponse, error) {
	st := model.StatutStage(statut)
	if !st.Valid() {
		return nil, ErrStageInvalidStatut
	}
	stage, err := s.getStage(ctx, documentID)
	if err != nil {
		return nil, err
	}
	stage.StatutStage = st
	if err := s.repo.Stage.Update(ctx, stage); err != nil {
		return nil, err
	}
	return stageToResponse(stage), nil
}

func (s *stageService) AddStagiaire(ctx context.Context, documentID, stagiaireDocumentID string) (*dto.StageResponse, error) {
	stage, err := s.getStage(ctx, documentID)
	if err != nil {
		return nil, err
	}
	st, err := s.repo.Stagiaire.GetByDocumentID(ctx, stagiaireDocumentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStagiaireNotFound
		}
		return nil, err
	}

	for i := range stage.Stagiaires {
		if stage.Stagiaires[i].DocumentID == st.DocumentID {
			return stageToResponse(stage), nil
		}
	}
	if err := s.repo.Stage.AddStagiaire(ctx, stage, st); err != nil {
		s.logger.Error("ajout du stagiaire au stage échoué",
			zap.String("stage", documentID), zap.String("stagiaire", stagiaireDocumentID), zap.Error(err))
		return nil, err
	}
	stage.Stagiaires = append(stage.Stagiaires, *st)
	return stageToResponse(stage), nil
}

func (s *stageService) RemoveStagiaire(ctx context.Context, documentID, stagiaireDocumentID string) (*dto.StageResponse, error) {
	stage, err := s.getStage(ctx, documentID)
	if err != nil {
		return nil, err
	}
	st, err := s.repo.Stagiaire.GetByDocumentID(ctx, stagiaireDocumentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStagiaireNotFound
		}
		return nil, err
	}

	if err := s.repo.Stage.RemoveStagiaire(ctx, stage, st); err != nil {
		return nil, err
	}
	kept := stage.Stagiaires[:0]
	for _, existing := range stage.Stagiaires {
		if existing.DocumentID != st.DocumentID {
			kept = append(kept, existing)
		}
	}
	stage.Stagiaires = kept
	return stageToResponse(stage), nil
}

func (s *stageService) Delete(ctx context.Context, documentID string) error {
	stage, err := s.getStage(ctx, documentID)
	if err != nil {
		return err
	}
	return s.repo.Stage.Delete(ctx, stage.ID)
}

// ── internal helpers ──

func (s *stageService) getStage(ctx context.Context, documentID string) (*model.Stage, error) {
	stage, err := s.repo.Stage.GetByDocumentID(ctx, documentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStageNotFound
		}
		return nil, err
	}
	return stage, nil
}

func (s *stageService) list(load func() ([]model.Stage, error)) ([]dto.StageResponse, error) {
	stages, err := load()
	if err != nil {
		return nil, err
	}
	result := make([]dto.StageResponse, 0, len(stages))
	for i := range stages {
		result = append(result, *stageToResponse(&stages[i]))
	}
	return result, nil
}

func stageToResponse(stage *model.Stage) *dto.StageResponse {
	var ids []string
	for i := range stage.Stagiaires {
		ids = append(ids, stage.Stagiaires[i].DocumentID)
	}
	return &dto.StageResponse{
		Meta: dto.Meta{
			ID:         stage.ID,
			DocumentID: stage.DocumentID,
			CreatedAt:  stage.CreatedAt,
			UpdatedAt:  stage.UpdatedAt,
		},
		Titre:                           stage.Titre,
		Description:                     stage.Description,
		DateDebut:                       stage.DateDebut.Format(dto.DateLayout),
		DateFin:                         stage.DateFin.Format(dto.DateLayout),
		StatutStage:                     string(stage.StatutStage),
		EncadreurDocumentID:             stage.EncadreurDocumentID,
		SuperieurHierarchiqueDocumentID: stage.SuperieurDocumentID,
		StagiairesDocumentIDs:           ids,
	}
}
