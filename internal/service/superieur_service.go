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
	ErrSuperieurNotFound    = errors.New("supérieur hiérarchique introuvable")
	ErrSuperieurEmailExists = errors.New("un supérieur actif avec cet email existe déjà")
	ErrSuperieurCinExists   = errors.New("un supérieur actif avec ce CIN existe déjà")
)

// SuperieurService owns supervisors. Deactivating a supervisor does NOT
// cascade to its encadreurs; only the supervisor and its own account change.
type SuperieurService interface {
	Create(ctx context.Context, req *dto.CreateSuperieurRequest) (*dto.SuperieurResponse, error)
	GetByDocumentID(ctx context.Context, documentID string) (*dto.SuperieurResponse, error)
	GetByEmail(ctx context.Context, email string) (*dto.SuperieurResponse, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByCin(ctx context.Context, cin string) (bool, error)
	ListActifs(ctx context.Context) ([]dto.SuperieurResponse, error)
	ListAll(ctx context.Context) ([]dto.SuperieurResponse, error)
	ListByStatut(ctx context.Context, statut model.Statut) ([]dto.SuperieurResponse, error)
	ListByDepartement(ctx context.Context, departement string) ([]dto.SuperieurResponse, error)
	ListWithPhoto(ctx context.Context) ([]dto.SuperieurResponse, error)
	Count(ctx context.Context) (int64, error)
	CountByDepartement(ctx context.Context, departement string) (int64, error)
	Update(ctx context.Context, documentID string, req *dto.UpdateSuperieurRequest) (*dto.SuperieurResponse, error)
	SetPhoto(ctx context.Context, documentID, mediaDocumentID string) (*dto.SuperieurResponse, error)
	Desactiver(ctx context.Context, documentID string) (*dto.SuperieurResponse, error)
	Activer(ctx context.Context, documentID string) (*dto.SuperieurResponse, error)
	Delete(ctx context.Context, documentID string) error
}

type superieurService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSuperieurService creates the SuperieurService.
func NewSuperieurService(repo *repository.Repository, logger *zap.Logger) SuperieurService {
	return &superieurService{repo: repo, logger: logger}
}

func (s *superieurService) Create(ctx context.Context, req *dto.CreateSuperieurRequest) (*dto.SuperieurResponse, error) {
	exists, err := s.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrSuperieurEmailExists
	}
	exists, err = s.ExistsByCin(ctx, req.Cin)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrSuperieurCinExists
	}

	sup := &model.SuperieurHierarchique{
		Nom:         req.Nom,
		Prenom:      req.Prenom,
		Email:       req.Email,
		Telephone:   req.Telephone,
		Cin:         req.Cin,
		Fonction:    req.Fonction,
		Departement: req.Departement,
		Statut:      model.StatutActif,
	}

	if err := s.repo.Superieur.Create(ctx, sup); err != nil {
		s.logger.Error("création du supérieur échouée", zap.String("email", req.Email), zap.Error(err))
		return nil, err
	}
	return superieurToResponse(sup), nil
}

func (s *superieurService) GetByDocumentID(ctx context.Context, documentID string) (*dto.SuperieurResponse, error) {
	sup, err := s.getSuperieur(ctx, documentID)
	if err != nil {
		return nil, err
	}
	return superieurToResponse(sup), nil
}

func (s *superieurService) GetByEmail(ctx context.Context, email string) (*dto.SuperieurResponse, error) {
	sup, err := s.repo.Superieur.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSuperieurNotFound
		}
		return nil, err
	}
	return superieurToResponse(sup), nil
}

func (s *superieurService) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	sup, err := s.repo.Superieur.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return sup.Statut == model.StatutActif, nil
}

func (s *superieurService) ExistsByCin(ctx context.Context, cin string) (bool, error) {
	sup, err := s.repo.Superieur.GetByCin(ctx, cin)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return sup.Statut == model.StatutActif, nil
}

func (s *superieurService) ListActifs(ctx context.Context) ([]dto.SuperieurResponse, error) {
	return s.list(func() ([]model.SuperieurHierarchique, error) {
		return s.repo.Superieur.ListByStatut(ctx, model.StatutActif)
	})
}

func (s *superieurService) ListAll(ctx context.Context) ([]dto.SuperieurResponse, error) {
	return s.list(func() ([]model.SuperieurHierarchique, error) {
		return s.repo.Superieur.List(ctx)
	})
}

func (s *superieurService) ListByStatut(ctx context.Context, statut model.Statut) ([]dto.SuperieurResponse, error) {
	return s.list(func() ([]model.SuperieurHierarchique, error) {
		return s.repo.Superieur.ListByStatut(ctx, statut)
	})
}

func (s *superieurService) ListByDepartement(ctx context.Context, departement string) ([]dto.SuperieurResponse, error) {
	return s.list(func() ([]model.SuperieurHierarchique, error) {
		return s.repo.Superieur.ListByDepartement(ctx, departement)
	})
}

func (s *superieurService) ListWithPhoto(ctx context.Context) ([]dto.SuperieurResponse, error) {
	return s.list(func() ([]model.SuperieurHierarchique, error) {
		return s.repo.Superieur.ListWithPhoto(ctx)
	})
}

func (s *superieurService) Count(ctx context.Context) (int64, error) {
	return s.repo.Superieur.Count(ctx)
}

func (s *superieurService) CountByDepartement(ctx context.Context, departement string) (int64, error) {
	return s.repo.Superieur.CountByDepartement(ctx, departement)
}

func (s *superieurService) Update(ctx context.Context, documentID string, req *dto.UpdateSuperieurRequest) (*dto.SuperieurResponse, error) {
	sup, err := s.getSuperieur(ctx, documentID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != sup.Email {
		exists, err := s.ExistsByEmail(ctx, *req.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrSuperieurEmailExists
		}
		sup.Email = *req.Email
	}
	if req.Cin != nil && *req.Cin != sup.Cin {
		exists, err := s.ExistsByCin(ctx, *req.Cin)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrSuperieurCinExists
		}
		sup.Cin = *req.Cin
	}
	if req.Nom != nil {
		sup.Nom = *req.Nom
	}
	if req.Prenom != nil {
		sup.Prenom = *req.Prenom
	}
	if req.Telephone != nil {
		sup.Telephone = *req.Telephone
	}
	if req.Fonction != nil {
		sup.Fonction = *req.Fonction
	}
	if req.Departement != nil {
		sup.Departement = *req.Departement
	}
	if req.Statut != nil {
		sup.Statut = model.Statut(*req.Statut)
	}

	if err := s.repo.Superieur.Update(ctx, sup); err != nil {
		s.logger.Error("mise à jour du supérieur échouée", zap.String("documentId", documentID), zap.Error(err))
		return nil, err
	}
	return superieurToResponse(sup), nil
}

func (s *superieurService) SetPhoto(ctx context.Context, documentID, mediaDocumentID string) (*dto.SuperieurResponse, error) {
	sup, err := s.getSuperieur(ctx, documentID)
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

	sup.PhotoDocumentID = &media.DocumentID
	sup.Photo = media
	if err := s.repo.Superieur.Update(ctx, sup); err != nil {
		return nil, err
	}
	return superieurToResponse(sup), nil
}

// Desactiver only touches the supervisor and its account; its encadreurs keep
// their status.
func (s *superieurService) Desactiver(ctx context.Context, documentID string) (*dto.SuperieurResponse, error) {
	return s.setStatut(ctx, documentID, model.StatutInactif)
}

func (s *superieurService) Activer(ctx context.Context, documentID string) (*dto.SuperieurResponse, error) {
	return s.setStatut(ctx, documentID, model.StatutActif)
}

func (s *superieurService) Delete(ctx context.Context, documentID string) error {
	sup, err := s.getSuperieur(ctx, documentID)
	if err != nil {
		return err
	}
	return s.repo.Superieur.Delete(ctx, sup.ID)
}

// ── internal helpers ──

func (s *superieurService) getSuperieur(ctx context.Context, documentID string) (*model.SuperieurHierarchique, error) {
	sup, err := s.repo.Superieur.GetByDocumentID(ctx, documentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSuperieurNotFound
		}
		return nil, err
	}
	return sup, nil
}

func (s *superieurService) setStatut(ctx context.Context, documentID string, statut model.Statut) (*dto.SuperieurResponse, error) {
	sup, err := s.getSuperieur(ctx, documentID)
	if err != nil {
		return nil, err
	}
	sup.Statut = statut
	if err := s.repo.Superieur.Update(ctx, sup); err != nil {
		return nil, err
	}
	if err := setLinkedCompteStatut(ctx, s.repo, sup.DocumentID, model.CompteSuperieur, statut); err != nil {
		return nil, err
	}
	return superieurToResponse(sup), nil
}

func (s *superieurService) list(load func() ([]model.SuperieurHierarchique, error)) ([]dto.SuperieurResponse, error) {
	sups, err := load()
	if err != nil {
		return nil, err
	}
	result := make([]dto.SuperieurResponse, 0, len(sups))
	for i := range sups {
		result = append(result, *superieurToResponse(&sups[i]))
	}
	return result, nil
}

func superieurToResponse(sup *model.SuperieurHierarchique) *dto.SuperieurResponse {
	photoURL, thumbURL, mediumURL := photoTriplet(sup.Photo)
	return &dto.SuperieurResponse{
		Meta: dto.Meta{
			ID:         sup.ID,
			DocumentID: sup.DocumentID,
			CreatedAt:  sup.CreatedAt,
			UpdatedAt:  sup.UpdatedAt,
		},
		Nom:            sup.Nom,
		Prenom:         sup.Prenom,
		Email:          sup.Email,
		Telephone:      sup.Telephone,
		Cin:            sup.Cin,
		Fonction:       sup.Fonction,
		Departement:    sup.Departement,
		Statut:         string(sup.Statut),
		PhotoURL:       photoURL,
		ThumbnailURL:   thumbURL,
		MediumPhotoURL: mediumURL,
	}
}
