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
	ErrTacheNotFound        = errors.New("tâche introuvable")
	ErrTacheInvalidStatut   = errors.New("statut de tâche invalide")
	ErrTacheInvalidPriorite = errors.New("priorité invalide, valeurs admises 1, 2, 3")
)

// TacheService owns tasks. prioriteLabel and enRetard are computed against
// the injected clock when the response is assembled, never persisted.
type TacheService interface {
	Create(ctx context.Context, req *dto.CreateTacheRequest) (*dto.TacheResponse, error)
	GetByDocumentID(ctx context.Context, documentID string) (*dto.TacheResponse, error)
	ListAll(ctx context.Context) ([]dto.TacheResponse, error)
	ListByStage(ctx context.Context, stageDocumentID string) ([]dto.TacheResponse, error)
	ListByStatut(ctx context.Context, statut string) ([]dto.TacheResponse, error)
	ListByStageAndStatut(ctx context.Context, stageDocumentID, statut string) ([]dto.TacheResponse, error)
	ListEnRetard(ctx context.Context) ([]dto.TacheResponse, error)
	Update(ctx context.Context, documentID string, req *dto.UpdateTacheRequest) (*dto.TacheResponse, error)
	UpdateStatut(ctx context.Context, documentID, statut string) (*dto.TacheResponse, error)
	UpdatePriorite(ctx context.Context, documentID string, priorite int) (*dto.TacheResponse, error)
	Delete(ctx context.Context, documentID string) error
}

type tacheService struct {
	repo   *repository.Repository
	clock  Clock
	logger *zap.Logger
}

// NewTacheService creates the TacheService.
func NewTacheService(repo *repository.Repository, clock Clock, logger *zap.Logger) TacheService {
	return &tacheService{repo: repo, clock: clock, logger: logger}
}

func (s *tacheService) Create(ctx context.Context, req *dto.CreateTacheRequest) (*dto.TacheResponse, error) {
	t := &model.Tache{
		Titre:       req.Titre,
		Description: req.Description,
		DateDebut:   req.DateDebut,
		DateFin:     req.DateFin,
		Statut:      model.TacheAFaire,
		Priorite:    model.PrioriteBasse,
	}
	if req.Priorite != nil {
		if !validPriorite(*req.Priorite) {
			return nil, ErrTacheInvalidPriorite
		}
		t.Priorite = *req.Priorite
	}
	if req.Stage != nil {
		if _, err := s.repo.Stage.GetByDocumentID(ctx, *req.Stage); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrStageNotFound
			}
			return nil, err
		}
		t.StageDocumentID = req.Stage
	}

	if err := s.repo.Tache.Create(ctx, t); err != nil {
		s.logger.Error("création de la tâche échouée", zap.String("titre", req.Titre), zap.Error(err))
		return nil, err
	}
	return s.toResponse(t), nil
}

func (s *tacheService) GetByDocumentID(ctx context.Context, documentID string) (*dto.TacheResponse, error) {
	t, err := s.getTache(ctx, documentID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(t), nil
}

func (s *tacheService) ListAll(ctx context.Context) ([]dto.TacheResponse, error) {
	return s.list(func() ([]model.Tache, error) {
		return s.repo.Tache.List(ctx)
	})
}

func (s *tacheService) ListByStage(ctx context.Context, stageDocumentID string) ([]dto.TacheResponse, error) {
	return s.list(func() ([]model.Tache, error) {
		return s.repo.Tache.ListByStage(ctx, stageDocumentID)
	})
}

func (s *tacheService) ListByStatut(ctx context.Context, statut string) ([]dto.TacheResponse, error) {
	st := model.StatutTache(statut)
	if !st.Valid() {
		return nil, ErrTacheInvalidStatut
	}
	return s.list(func() ([]model.Tache, error) {
		return s.repo.Tache.ListByStatut(ctx, st)
	})
}

// ListByStageAndStatut returns the stage's tasks in ascending priority order,
// highest urgency first.
func (s *tacheService) ListByStageAndStatut(ctx context.Context, stageDocumentID, statut string) ([]dto.TacheResponse, error) {
	st := model.StatutTache(statut)
	if !st.Valid() {
		return nil, ErrTacheInvalidStatut
	}
	return s.list(func() ([]model.Tache, error) {
		return s.repo.Tache.ListByStageAndStatut(ctx, stageDocumentID, st)
	})
}

func (s *tacheService) ListEnRetard(ctx context.Context) ([]dto.TacheResponse, error) {
	return s.list(func() ([]model.Tache, error) {
		return s.repo.Tache.ListEnRetard(ctx, s.clock.Now())
	})
}

func (s *tacheService) Update(ctx context.Context, documentID string, req *dto.UpdateTacheRequest) (*dto.TacheResponse, error) {
	t, err := s.getTache(ctx, documentID)
	if err != nil {
		return nil, err
	}

	if req.Titre != nil {
		t.Titre = *req.Titre
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.DateDebut != nil {
		t.DateDebut = req.DateDebut
	}
	if req.DateFin != nil {
		t.DateFin = req.DateFin
	}
	if req.Statut != nil {
		st := model.StatutTache(*req.Statut)
		if !st.Valid() {
			return nil, ErrTacheInvalidStatut
		}
		t.Statut = st
	}
	if req.Priorite != nil {
		if !validPriorite(*req.Priorite) {
			return nil, ErrTacheInvalidPriorite
		}
		t.Priorite = *req.Priorite
	}

	if err := s.repo.Tache.Update(ctx, t); err != nil {
		s.logger.Error("mise à jour de la tâche échouée", zap.String("documentId", documentID), zap.Error(err))
		return nil, err
	}
	return s.toResponse(t), nil
}

func (s *tacheService) UpdateStatut(ctx context.Context, documentID, statut string) (*dto.TacheResponse, error) {
	st := model.StatutTache(statut)
	if !st.Valid() {
		return nil, ErrTacheInvalidStatut
	}
	t, err := s.getTache(ctx, documentID)
	if err != nil {
		return nil, err
	}
	t.Statut = st
	if err := s.repo.Tache.Update(ctx, t); err != nil {
		return nil, err
	}
	return s.toResponse(t), nil
}

func (s *tacheService) UpdatePriorite(ctx context.Context, documentID string, priorite int) (*dto.TacheResponse, error) {
	if !validPriorite(priorite) {
		return nil, ErrTacheInvalidPriorite
	}
	t, err := s.getTache(ctx, documentID)
	if err != nil {
		return nil, err
	}
	t.Priorite = priorite
	if err := s.repo.Tache.Update(ctx, t); err != nil {
		return nil, err
	}
	return s.toResponse(t), nil
}

func (s *tacheService) Delete(ctx context.Context, documentID string) error {
	t, err := s.getTache(ctx, documentID)
	if err != nil {
		return err
	}
	return s.repo.Tache.Delete(ctx, t.ID)
}

// ── internal helpers ──

func (s *tacheService) getTache(ctx context.Context, documentID string) (*model.Tache, error) {
	t, err := s.repo.Tache.GetByDocumentID(ctx, documentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTacheNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *tacheService) list(load func() ([]model.Tache, error)) ([]dto.TacheResponse, error) {
	taches, err := load()
	if err != nil {
		return nil, err
	}
	result := make([]dto.TacheResponse, 0, len(taches))
	for i := range taches {
		result = append(result, *s.toResponse(&taches[i]))
	}
	return result, nil
}

func (s *tacheService) toResponse(t *model.Tache) *dto.TacheResponse {
	return &dto.TacheResponse{
		Meta: dto.Meta{
			ID:         t.ID,
			DocumentID: t.DocumentID,
			CreatedAt:  t.CreatedAt,
			UpdatedAt:  t.UpdatedAt,
		},
		Titre:           t.Titre,
		Description:     t.Description,
		DateDebut:       t.DateDebut,
		DateFin:         t.DateFin,
		Statut:          string(t.Statut),
		Priorite:        t.Priorite,
		PrioriteLabel:   t.PrioriteLabel(),
		EnRetard:        t.EnRetard(s.clock.Now()),
		StageDocumentID: t.StageDocumentID,
	}
}

func validPriorite(p int) bool {
	return p == model.PrioriteHaute || p == model.PrioriteMoyenne || p == model.PrioriteBasse
}
