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
	ErrEncadreurNotFound    = errors.New("encadreur introuvable")
	ErrEncadreurEmailExists = errors.New("un encadreur actif avec cet email existe déjà")
	ErrEncadreurCinExists   = errors.New("un encadreur actif avec ce CIN existe déjà")
)

// EncadreurService owns tutors. Desactiver cascades to the tutor's interns
// and every linked account inside one transaction.
type EncadreurService interface {
	Create(ctx context.Context, req *dto.CreateEncadreurRequest) (*dto.EncadreurResponse, error)
	GetByDocumentID(ctx context.Context, documentID string) (*dto.EncadreurResponse, error)
	GetByEmail(ctx context.Context, email string) (*dto.EncadreurResponse, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByCin(ctx context.Context, cin string) (bool, error)
	ListActifs(ctx context.Context) ([]dto.EncadreurResponse, error)
	ListAll(ctx context.Context) ([]dto.EncadreurResponse, error)
	ListByStatut(ctx context.Context, statut model.Statut) ([]dto.EncadreurResponse, error)
	ListBySuperieur(ctx context.Context, superieurDocumentID string) ([]dto.EncadreurResponse, error)
	ListByDepartement(ctx context.Context, departement string) ([]dto.EncadreurResponse, error)
	ListWithSuperieur(ctx context.Context) ([]dto.EncadreurResponse, error)
	Update(ctx context.Context, documentID string, req *dto.UpdateEncadreurRequest) (*dto.EncadreurResponse, error)
	SetPhoto(ctx context.Context, documentID, mediaDocumentID string) (*dto.EncadreurResponse, error)
	Desactiver(ctx context.Context, documentID string) (*dto.EncadreurResponse, error)
	Activer(ctx context.Context, documentID string) (*dto.EncadreurResponse, error)
	Delete(ctx context.Context, documentID string) error
}

type encadreurService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEncadreurService creates the EncadreurService.
func NewEncadreurService(repo *repository.Repository, logger *zap.Logger) EncadreurService {
	return &encadreurService{repo: repo, logger: logger}
}

func (s *encadreurService) Create(ctx context.Context, req *dto.CreateEncadreurRequest) (*dto.EncadreurResponse, error) {
	if err := s.checkUnique(ctx, req.Email, req.Cin); err != nil {
		return nil, err
	}

	enc := &model.Encadreur{
		Nom:         req.Nom,
		Prenom:      req.Prenom,
		Email:       req.Email,
		Telephone:   req.Telephone,
		Cin:         req.Cin,
		Fonction:    req.Fonction,
		Departement: req.Departement,
		Specialite:  req.Specialite,
		Statut:      model.StatutActif,
	}
	if req.SuperieurHierarchique != nil {
		if err := s.resolveSuperieur(ctx, *req.SuperieurHierarchique); err != nil {
			return nil, err
		}
		enc.SuperieurDocumentID = req.SuperieurHierarchique
	}

	if err := s.repo.Encadreur.Create(ctx, enc); err != nil {
		s.logger.Error("création de l'encadreur échouée", zap.String("email", req.Email), zap.Error(err))
		return nil, err
	}
	return encadreurToResponse(enc), nil
}

func (s *encadreurService) GetByDocumentID(ctx context.Context, documentID string) (*dto.EncadreurResponse, error) {
	enc, err := s.getEncadreur(ctx, documentID)
	if err != nil {
		return nil, err
	}
	return encadreurToResponse(enc), nil
}

func (s *encadreurService) GetByEmail(ctx context.Context, email string) (*dto.EncadreurResponse, error) {
	enc, err := s.repo.Encadreur.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEncadreurNotFound
		}
		return nil, err
	}
	return encadreurToResponse(enc), nil
}

// ExistsByEmail is active-scoped: an INACTIF tutor does not block reuse of
// its email.
func (s *encadreurService) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	enc, err := s.repo.Encadreur.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return enc.Statut == model.StatutActif, nil
}

func (s *encadreurService) ExistsByCin(ctx context.Context, cin string) (bool, error) {
	enc, err := s.repo.Encadreur.GetByCin(ctx, cin)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return enc.Statut == model.StatutActif, nil
}

func (s *encadreurService) ListActifs(ctx context.Context) ([]dto.EncadreurResponse, error) {
	return s.list(func() ([]model.Encadreur, error) {
		return s.repo.Encadreur.ListByStatut(ctx, model.StatutActif)
	})
}

func (s *encadreurService) ListAll(ctx context.Context) ([]dto.EncadreurResponse, error) {
	return s.list(func() ([]model.Encadreur, error) {
		return s.repo.Encadreur.List(ctx)
	})
}

func (s *encadreurService) ListByStatut(ctx context.Context, statut model.Statut) ([]dto.EncadreurResponse, error) {
	return s.list(func() ([]model.Encadreur, error) {
		return s.repo.Encadreur.ListByStatut(ctx, statut)
	})
}

func (s *encadreurService) ListBySuperieur(ctx context.Context, superieurDocumentID string) ([]dto.EncadreurResponse, error) {
	return s.list(func() ([]model.Encadreur, error) {
		return s.repo.Encadreur.ListBySuperieur(ctx, superieurDocumentID)
	})
}

func (s *encadreurService) ListByDepartement(ctx context.Context, departement string) ([]dto.EncadreurResponse, error) {
	return s.list(func() ([]model.Encadreur, error) {
		return s.repo.Encadreur.ListByDepartement(ctx, departement)
	})
}

func (s *encadreurService) ListWithSuperieur(ctx context.Context) ([]dto.EncadreurResponse, error) {
	return s.list(func() ([]model.Encadreur, error) {
		return s.repo.Encadreur.ListWithSuperieur(ctx)
	})
}

func (s *encadreurService) Update(ctx context.Context, documentID string, req *dto.UpdateEncadreurRequest) (*dto.EncadreurResponse, error) {
	enc, err := s.getEncadreur(ctx, documentID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != enc.Email {
		exists, err := s.ExistsByEmail(ctx, *req.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrEncadreurEmailExists
		}
		enc.Email = *req.Email
	}
	if req.Cin != nil && *req.Cin != enc.Cin {
		exists, err := s.ExistsByCin(ctx, *req.Cin)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrEncadreurCinExists
		}
		enc.Cin = *req.Cin
	}
	if req.Nom != nil {
		enc.Nom = *req.Nom
	}
	if req.Prenom != nil {
		enc.Prenom = *req.Prenom
	}
	if req.Telephone != nil {
		enc.Telephone = *req.Telephone
	}
	if req.Fonction != nil {
		enc.Fonction = *req.Fonction
	}
	if req.Departement != nil {
		enc.Departement = *req.Departement
	}
	if req.Specialite != nil {
		enc.Specialite = *req.Specialite
	}
	if req.Statut != nil {
		enc.Statut = model.Statut(*req.Statut)
	}
	// Supervisor link: non-nil re-resolves, nil clears.
	if req.SuperieurHierarchique != nil {
		if err := s.resolveSuperieur(ctx, *req.SuperieurHierarchique); err != nil {
			return nil, err
		}
		enc.SuperieurDocumentID = req.SuperieurHierarchique
	} else {
		enc.SuperieurDocumentID = nil
	}
	enc.SuperieurHierarchique = nil

	if err := s.repo.Encadreur.Update(ctx, enc); err != nil {
		s.logger.Error("mise à jour de l'encadreur échouée", zap.String("documentId", documentID), zap.Error(err))
		return nil, err
	}
	return encadreurToResponse(enc), nil
}

func (s *encadreurService) SetPhoto(ctx context.Context, documentID, mediaDocumentID string) (*dto.EncadreurResponse, error) {
	enc, err := s.getEncadreur(ctx, documentID)
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

	enc.PhotoDocumentID = &media.DocumentID
	enc.Photo = media
	if err := s.repo.Encadreur.Update(ctx, enc); err != nil {
		return nil, err
	}
	return encadreurToResponse(enc), nil
}

// Desactiver sets the tutor INACTIF and cascades: its account, its interns
// and their accounts all go INACTIF in the same transaction.
func (s *encadreurService) Desactiver(ctx context.Context, documentID string) (*dto.EncadreurResponse, error) {
	enc, err := s.getEncadreur(ctx, documentID)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	txRepo := s.repo.WithTx(tx)

	if err := s.desactiverCascade(ctx, txRepo, enc); err != nil {
		if tx != nil {
			tx.Rollback()
		}
		s.logger.Error("désactivation en cascade échouée", zap.String("documentId", documentID), zap.Error(err))
		return nil, err
	}

	if tx != nil {
		if err := tx.Commit().Error; err != nil {
			return nil, err
		}
	}
	return encadreurToResponse(enc), nil
}

func (s *encadreurService) desactiverCascade(ctx context.Context, repo *repository.Repository, enc *model.Encadreur) error {
	enc.Statut = model.StatutInactif
	if err := repo.Encadreur.Update(ctx, enc); err != nil {
		return err
	}
	if err := setLinkedCompteStatut(ctx, repo, enc.DocumentID, model.CompteEncadreur, model.StatutInactif); err != nil {
		return err
	}

	stagiaires, err := repo.Stagiaire.ListByEncadreur(ctx, enc.DocumentID)
	if err != nil {
		return err
	}
	for i := range stagiaires {
		st := &stagiaires[i]
		st.Statut = model.StatutInactif
		if err := repo.Stagiaire.Update(ctx, st); err != nil {
			return err
		}
		if err := setLinkedCompteStatut(ctx, repo, st.DocumentID, model.CompteStagiaire, model.StatutInactif); err != nil {
			return err
		}
	}
	return nil
}

// Activer reactivates the tutor and its account only; interns deactivated by
// a previous cascade stay INACTIF.
func (s *encadreurService) Activer(ctx context.Context, documentID string) (*dto.EncadreurResponse, error) {
	enc, err := s.getEncadreur(ctx, documentID)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	txRepo := s.repo.WithTx(tx)

	enc.Statut = model.StatutActif
	err = txRepo.Encadreur.Update(ctx, enc)
	if err == nil {
		err = setLinkedCompteStatut(ctx, txRepo, enc.DocumentID, model.CompteEncadreur, model.StatutActif)
	}
	if err != nil {
		if tx != nil {
			tx.Rollback()
		}
		s.logger.Error("réactivation échouée", zap.String("documentId", documentID), zap.Error(err))
		return nil, err
	}

	if tx != nil {
		if err := tx.Commit().Error; err != nil {
			return nil, err
		}
	}
	return encadreurToResponse(enc), nil
}

func (s *encadreurService) Delete(ctx context.Context, documentID string) error {
	enc, err := s.getEncadreur(ctx, documentID)
	if err != nil {
		return err
	}
	return s.repo.Encadreur.Delete(ctx, enc.ID)
}

// ── internal helpers ──

func (s *encadreurService) getEncadreur(ctx context.Context, documentID string) (*model.Encadreur, error) {
	enc, err := s.repo.Encadreur.GetByDocumentID(ctx, documentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEncadreurNotFound
		}
		return nil, err
	}
	return enc, nil
}

func (s *encadreurService) checkUnique(ctx context.Context, email, cin string) error {
	exists, err := s.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return ErrEncadreurEmailExists
	}
	exists, err = s.ExistsByCin(ctx, cin)
	if err != nil {
		return err
	}
	if exists {
		return ErrEncadreurCinExists
	}
	return nil
}

func (s *encadreurService) resolveSuperieur(ctx context.Context, documentID string) error {
	_, err := s.repo.Superieur.GetByDocumentID(ctx, documentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSuperieurNotFound
		}
		return err
	}
	return nil
}

func (s *encadreurService) list(load func() ([]model.Encadreur, error)) ([]dto.EncadreurResponse, error) {
	encs, err := load()
	if err != nil {
		return nil, err
	}
	result := make([]dto.EncadreurResponse, 0, len(encs))
	for i := range encs {
		result = append(result, *encadreurToResponse(&encs[i]))
	}
	return result, nil
}

func encadreurToResponse(e *model.Encadreur) *dto.EncadreurResponse {
	photoURL, thumbURL, mediumURL := photoTriplet(e.Photo)
	return &dto.EncadreurResponse{
		Meta: dto.Meta{
			ID:         e.ID,
			DocumentID: e.DocumentID,
			CreatedAt:  e.CreatedAt,
			UpdatedAt:  e.UpdatedAt,
		},
		Nom:                             e.Nom,
		Prenom:                          e.Prenom,
		Email:                           e.Email,
		Telephone:                       e.Telephone,
		Cin:                             e.Cin,
		Fonction:                        e.Fonction,
		Departement:                     e.Departement,
		Specialite:                      e.Specialite,
		Statut:                          string(e.Statut),
		SuperieurHierarchiqueDocumentID: e.SuperieurDocumentID,
		PhotoURL:                        photoURL,
		ThumbnailURL:                    thumbURL,
		MediumPhotoURL:                  mediumURL,
	}
}
