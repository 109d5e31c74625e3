package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Sylvio143/G-stagiaire/internal/dto"
	"github.com/Sylvio143/G-stagiaire/internal/model"
	"github.com/Sylvio143/G-stagiaire/internal/repository"
)

var (
	ErrStagiaireNotFound    = errors.New("stagiaire introuvable")
	ErrStagiaireEmailExists = errors.New("un stagiaire actif avec cet email existe déjà")
	ErrStagiaireCinExists   = errors.New("un stagiaire actif avec ce CIN existe déjà")
	ErrInvalidDate          = errors.New("date invalide, format attendu AAAA-MM-JJ")
)

// StagiaireService owns interns. HasActiveStage is evaluated against the
// injected clock so the answer is reproducible in tests.
type StagiaireService interface {
	Create(ctx context.Context, req *dto.CreateStagiaireRequest) (*dto.StagiaireResponse, error)
	GetByDocumentID(ctx context.Context, documentID string) (*dto.StagiaireResponse, error)
	GetByEmail(ctx context.Context, email string) (*dto.StagiaireResponse, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByCin(ctx context.Context, cin string) (bool, error)
	ListActifs(ctx context.Context) ([]dto.StagiaireResponse, error)
	ListAll(ctx context.Context) ([]dto.StagiaireResponse, error)
	ListByStatut(ctx context.Context, statut model.Statut) ([]dto.StagiaireResponse, error)
	ListByEncadreur(ctx context.Context, encadreurDocumentID string) ([]dto.StagiaireResponse, error)
	ListByEcole(ctx context.Context, ecole string) ([]dto.StagiaireResponse, error)
	ListByFiliere(ctx context.Context, filiere string) ([]dto.StagiaireResponse, error)
	ListWithEncadreur(ctx context.Context) ([]dto.StagiaireResponse, error)
	HasActiveStage(ctx context.Context, documentID string) (*dto.ActiveStageResponse, error)
	Update(ctx context.Context, documentID string, req *dto.UpdateStagiaireRequest) (*dto.StagiaireResponse, error)
	SetPhoto(ctx context.Context, documentID, mediaDocumentID string) (*dto.StagiaireResponse, error)
	Desactiver(ctx context.Context, documentID string) (*dto.StagiaireResponse, error)
	Activer(ctx context.Context, documentID string) (*dto.StagiaireResponse, error)
	Delete(ctx context.Context, documentID string) error
}

type stagiaireService struct {
	repo   *repository.Repository
	clock  Clock
	logger *zap.Logger
}

// NewStagiaireService creates the StagiaireService.
func NewStagiaireService(repo *repository.Repository, clock Clock, logger *zap.Logger) StagiaireService {
	return &stagiaireService{repo: repo, clock: clock, logger: logger}
}

func (s *stagiaireService) Create(ctx context.Context, req *dto.CreateStagiaireRequest) (*dto.StagiaireResponse, error) {
	if err := s.checkUnique(ctx, req.Email, req.Cin); err != nil {
		return nil, err
	}

	st := &model.Stagiaire{
		Nom:         req.Nom,
		Prenom:      req.Prenom,
		Email:       req.Email,
		Telephone:   req.Telephone,
		Cin:         req.Cin,
		Ecole:       req.Ecole,
		Filiere:     req.Filiere,
		NiveauEtude: req.NiveauEtude,
		Adresse:     req.Adresse,
		Statut:      model.StatutActif,
	}
	if req.DateNaissance != nil {
		d, err := parseDate(*req.DateNaissance)
		if err != nil {
			return nil, err
		}
		st.DateNaissance = &d
	}
	if req.Encadreur != nil {
		if err := s.resolveEncadreur(ctx, *req.Encadreur); err != nil {
			return nil, err
		}
		st.EncadreurDocumentID = req.Encadreur
	}

	if err := s.repo.Stagiaire.Create(ctx, st); err != nil {
		s.logger.Error("création du stagiaire échouée", zap.String("email", req.Email), zap.Error(err))
		return nil, err
	}
	return stagiaireToResponse(st), nil
}

func (s *stagiaireService) GetByDocumentID(ctx context.Context, documentID string) (*dto.StagiaireResponse, error) {
	st, err := s.getStagiaire(ctx, documentID)
	if err != nil {
		return nil, err
	}
	return stagiaireToResponse(st), nil
}

func (s *stagiaireService) GetByEmail(ctx context.Context, email string) (*dto.StagiaireResponse, error) {
	st, err := s.repo.Stagiaire.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStagiaireNotFound
		}
		return nil, err
	}
	return stagiaireToResponse(st), nil
}

func (s *stagiaireService) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	st, err := s.repo.Stagiaire.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return st.Statut == model.StatutActif, nil
}

func (s *stagiaireService) ExistsByCin(ctx context.Context, cin string) (bool, error) {
	st, err := s.repo.Stagiaire.GetByCin(ctx, cin)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return st.Statut == model.StatutActif, nil
}

func (s *stagiaireService) ListActifs(ctx context.Context) ([]dto.StagiaireResponse, error) {
	return s.list(func() ([]model.Stagiaire, error) {
		return s.repo.Stagiaire.ListByStatut(ctx, model.StatutActif)
	})
}

func (s *stagiaireService) ListAll(ctx context.Context) ([]dto.StagiaireResponse, error) {
	return s.list(func() ([]model.Stagiaire, error) {
		return s.repo.Stagiaire.List(ctx)
	})
}

func (s *stagiaireService) ListByStatut(ctx context.Context, statut model.Statut) ([]dto.StagiaireResponse, error) {
	return s.list(func() ([]model.Stagiaire, error) {
		return s.repo.Stagiaire.ListByStatut(ctx, statut)
	})
}

func (s *stagiaireService) ListByEncadreur(ctx context.Context, encadreurDocumentID string) ([]dto.StagiaireResponse, error) {
	return s.list(func() ([]model.Stagiaire, error) {
		return s.repo.Stagiaire.ListByEncadreur(ctx, encadreurDocumentID)
	})
}

func (s *stagiaireService) ListByEcole(ctx context.Context, ecole string) ([]dto.StagiaireResponse, error) {
	return s.list(func() ([]model.Stagiaire, error) {
		return s.repo.Stagiaire.ListByEcole(ctx, ecole)
	})
}

func (s *stagiaireService) ListByFiliere(ctx context.Context, filiere string) ([]dto.StagiaireResponse, error) {
	return s.list(func() ([]model.Stagiaire, error) {
		return s.repo.Stagiaire.ListByFiliere(ctx, filiere)
	})
}

func (s *stagiaireService) ListWithEncadreur(ctx context.Context) ([]dto.StagiaireResponse, error) {
	return s.list(func() ([]model.Stagiaire, error) {
		return s.repo.Stagiaire.ListWithEncadreur(ctx)
	})
}

func (s *stagiaireService) HasActiveStage(ctx context.Context, documentID string) (*dto.ActiveStageResponse, error) {
	st, err := s.repo.Stagiaire.GetWithStages(ctx, documentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStagiaireNotFound
		}
		return nil, err
	}

	resp := &dto.ActiveStageResponse{}
	if current := st.CurrentStage(s.clock.Now()); current != nil {
		resp.HasActiveStage = true
		resp.CurrentStage = stageToResponse(current)
	}
	return resp, nil
}

func (s *stagiaireService) Update(ctx context.Context, documentID string, req *dto.UpdateStagiaireRequest) (*dto.StagiaireResponse, error) {
	st, err := s.getStagiaire(ctx, documentID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != st.Email {
		exists, err := s.ExistsByEmail(ctx, *req.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrStagiaireEmailExists
		}
		st.Email = *req.Email
	}
	if req.Cin != nil && *req.Cin != st.Cin {
		exists, err := s.ExistsByCin(ctx, *req.Cin)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrStagiaireCinExists
		}
		st.Cin = *req.Cin
	}
	if req.Nom != nil {
		st.Nom = *req.Nom
	}
	if req.Prenom != nil {
		st.Prenom = *req.Prenom
	}
	if req.Telephone != nil {
		st.Telephone = *req.Telephone
	}
	if req.Ecole != nil {
		st.Ecole = *req.Ecole
	}
	if req.Filiere != nil {
		st.Filiere = *req.Filiere
	}
	if req.NiveauEtude != nil {
		st.NiveauEtude = *req.NiveauEtude
	}
	if req.Adresse != nil {
		st.Adresse = *req.Adresse
	}
	if req.DateNaissance != nil {
		d, err := parseDate(*req.DateNaissance)
		if err != nil {
			return nil, err
		}
		st.DateNaissance = &d
	}
	if req.Statut != nil {
		st.Statut = model.Statut(*req.Statut)
	}
	if req.Encadreur != nil {
		if err := s.resolveEncadreur(ctx, *req.Encadreur); err != nil {
			return nil, err
		}
		st.EncadreurDocumentID = req.Encadreur
	}
	st.Encadreur = nil

	if err := s.repo.Stagiaire.Update(ctx, st); err != nil {
		s.logger.Error("mise à jour du stagiaire échouée", zap.String("documentId", documentID), zap.Error(err))
		return nil, err
	}
	return stagiaireToResponse(st), nil
}

func (s *stagiaireService) SetPhoto(ctx context.Context, documentID, mediaDocumentID string) (*dto.StagiaireResponse, error) {
	st, err := s.getStagiaire(ctx, documentID)
	if err != nil {
		return nil, err
	}
	media, err := s.repo.Media.GetByDocumentID(ctx, mediaDocumentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMediaNotFound
		}
		return nil, err
	}

	st.PhotoDocumentID = &media.DocumentID
	st.Photo = media
	if err := s.repo.Stagiaire.Update(ctx, st); err != nil {
		return nil, err
	}
	return stagiaireToResponse(st), nil
}

func (s *stagiaireService) Desactiver(ctx context.Context, documentID string) (*dto.StagiaireResponse, error) {
	return s.setStatut(ctx, documentID, model.StatutInactif)
}

func (s *stagiaireService) Activer(ctx context.Context, documentID string) (*dto.StagiaireResponse, error) {
	return s.setStatut(ctx, documentID, model.StatutActif)
}

func (s *stagiaireService) Delete(ctx context.Context, documentID string) error {
	st, err := s.getStagiaire(ctx, documentID)
	if err != nil {
		return err
	}
	return s.repo.Stagiaire.Delete(ctx, st.ID)
}

// ── internal helpers ──

func (s *stagiaireService) getStagiaire(ctx context.Context, documentID string) (*model.Stagiaire, error) {
	st, err := s.repo.Stagiaire.GetByDocumentID(ctx, documentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStagiaireNotFound
		}
		return nil, err
	}
	return st, nil
}

func (s *stagiaireService) checkUnique(ctx context.Context, email, cin string) error {
	exists, err := s.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return ErrStagiaireEmailExists
	}
	exists, err = s.ExistsByCin(ctx, cin)
	if err != nil {
		return err
	}
	if exists {
		return ErrStagiaireCinExists
	}
	return nil
}

func (s *stagiaireService) resolveEncadreur(ctx context.Context, documentID string) error {
	_, err := s.repo.Encadreur.GetByDocumentID(ctx, documentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEncadreurNotFound
		}
		return err
	}
	return nil
}

func (s *stagiaireService) setStatut(ctx context.Context, documentID string, statut model.Statut) (*dto.StagiaireResponse, error) {
	st, err := s.getStagiaire(ctx, documentID)
	if err != nil {
		return nil, err
	}
	st.Statut = statut
	if err := s.repo.Stagiaire.Update(ctx, st); err != nil {
		return nil, err
	}
	if err := setLinkedCompteStatut(ctx, s.repo, st.DocumentID, model.CompteStagiaire, statut); err != nil {
		return nil, err
	}
	return stagiaireToResponse(st), nil
}

func (s *stagiaireService) list(load func() ([]model.Stagiaire, error)) ([]dto.StagiaireResponse, error) {
	sts, err := load()
	if err != nil {
		return nil, err
	}
	result := make([]dto.StagiaireResponse, 0, len(sts))
	for i := range sts {
		result = append(result, *stagiaireToResponse(&sts[i]))
	}
	return result, nil
}

func parseDate(value string) (time.Time, error) {
	d, err := time.Parse(dto.DateLayout, value)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.Format(dto.DateLayout)
	return &v
}

func stagiaireToResponse(st *model.Stagiaire) *dto.StagiaireResponse {
	photoURL, thumbURL, mediumURL := photoTriplet(st.Photo)
	return &dto.StagiaireResponse{
		Meta: dto.Meta{
			ID:         st.ID,
			DocumentID: st.DocumentID,
			CreatedAt:  st.CreatedAt,
			UpdatedAt:  st.UpdatedAt,
		},
		Nom:                 st.Nom,
		Prenom:              st.Prenom,
		Email:               st.Email,
		Telephone:           st.Telephone,
		Cin:                 st.Cin,
		Ecole:               st.Ecole,
		Filiere:             st.Filiere,
		NiveauEtude:         st.NiveauEtude,
		DateNaissance:       formatDate(st.DateNaissance),
		Adresse:             st.Adresse,
		Statut:              string(st.Statut),
		EncadreurDocumentID: st.EncadreurDocumentID,
		PhotoURL:            photoURL,
		ThumbnailURL:        thumbURL,
		MediumPhotoURL:      mediumURL,
	}
}
