package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Sylvio143/G-stagiaire/internal/dto"
	"github.com/Sylvio143/G-stagiaire/internal/model"
	"github.com/Sylvio143/G-stagiaire/internal/repository"
	"github.com/Sylvio143/G-stagiaire/pkg/jwt"
)

var (
	ErrCompteNotFound = errors.New("compte utilisateur introuvable")
	ErrEmailExists    = errors.New("un compte actif avec cet email existe déjà")
	// ErrEntityCompteExists guards the one-active-account-per-entity invariant.
	ErrEntityCompteExists = errors.New("un compte actif existe déjà pour cette entité")
	ErrPasswordRequired   = errors.New("le mot de passe est obligatoire")
	// ErrInvalidCredentials covers both unknown email and wrong password; the
	// two cases are deliberately indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("email ou mot de passe invalide")
)

// CompteService owns user accounts: hashing, authentication, activation and
// the weak back-reference to person entities.
type CompteService interface {
	Create(ctx context.Context, req *dto.CreateCompteRequest) (*dto.CompteResponse, error)
	CreateForEntity(ctx context.Context, req *dto.CreateCompteForEntityRequest) (*dto.CompteResponse, error)
	GetByDocumentID(ctx context.Context, documentID string) (*dto.CompteResponse, error)
	GetByEmail(ctx context.Context, email string) (*dto.CompteResponse, error)
	FindByEntity(ctx context.Context, entityDocumentID string, entityType model.TypeCompte) (*dto.CompteResponse, error)
	ListActifs(ctx context.Context) ([]dto.CompteResponse, error)
	ListAll(ctx context.Context) ([]dto.CompteResponse, error)
	ListByStatut(ctx context.Context, statut model.Statut) ([]dto.CompteResponse, error)
	ListByType(ctx context.Context, typeCompte model.TypeCompte) ([]dto.CompteResponse, error)
	ListByEntity(ctx context.Context, entityDocumentID string) ([]dto.CompteResponse, error)
	Update(ctx context.Context, documentID string, req *dto.UpdateCompteRequest) (*dto.CompteResponse, error)
	UpdatePassword(ctx context.Context, documentID, newPassword string) (*dto.CompteResponse, error)
	Authenticate(ctx context.Context, email, password string) (*dto.AuthenticateResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.AuthenticateResponse, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Desactiver(ctx context.Context, documentID string) (*dto.CompteResponse, error)
	Activer(ctx context.Context, documentID string) (*dto.CompteResponse, error)
	Delete(ctx context.Context, documentID string) error
}

type compteService struct {
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	logger *zap.Logger
}

// NewCompteService creates the CompteService.
func NewCompteService(repo *repository.Repository, jwtMgr *jwt.Manager, logger *zap.Logger) CompteService {
	return &compteService{repo: repo, jwtMgr: jwtMgr, logger: logger}
}

func (s *compteService) Create(ctx context.Context, req *dto.CreateCompteRequest) (*dto.CompteResponse, error) {
	if req.MotDePasse == "" {
		return nil, ErrPasswordRequired
	}
	if err := s.checkEmailFree(ctx, req.Email); err != nil {
		return nil, err
	}
	typeCompte := model.TypeCompte(req.TypeCompte)
	if req.EntityDocumentID != "" {
		if err := s.checkEntityFree(ctx, req.EntityDocumentID, typeCompte); err != nil {
			return nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.MotDePasse), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("hachage du mot de passe échoué", zap.Error(err))
		return nil, err
	}

	compte := &model.CompteUtilisateur{
		Email:            req.Email,
		MotDePasse:       string(hash),
		TypeCompte:       typeCompte,
		EntityDocumentID: req.EntityDocumentID,
		Statut:           model.StatutActif,
	}
	if req.EntityDocumentID != "" {
		compte.EntityType = typeCompte
	}

	if err := s.repo.Compte.Create(ctx, compte); err != nil {
		s.logger.Error("création du compte échouée", zap.String("email", req.Email), zap.Error(err))
		return nil, err
	}
	return compteToResponse(compte), nil
}

func (s *compteService) CreateForEntity(ctx context.Context, req *dto.CreateCompteForEntityRequest) (*dto.CompteResponse, error) {
	return s.Create(ctx, &dto.CreateCompteRequest{
		Email:            req.Email,
		MotDePasse:       req.MotDePasse,
		TypeCompte:       req.TypeCompte,
		EntityDocumentID: req.EntityDocumentID,
	})
}

func (s *compteService) GetByDocumentID(ctx context.Context, documentID string) (*dto.CompteResponse, error) {
	compte, err := s.getCompte(ctx, documentID)
	if err != nil {
		return nil, err
	}
	return compteToResponse(compte), nil
}

// GetByEmail only matches active accounts, mirroring the lookup used by the
// entity-creation flows.
func (s *compteService) GetByEmail(ctx context.Context, email string) (*dto.CompteResponse, error) {
	compte, err := s.repo.Compte.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompteNotFound
		}
		return nil, err
	}
	if compte.Statut != model.StatutActif {
		return nil, ErrCompteNotFound
	}
	return compteToResponse(compte), nil
}

func (s *compteService) FindByEntity(ctx context.Context, entityDocumentID string, entityType model.TypeCompte) (*dto.CompteResponse, error) {
	comptes, err := s.repo.Compte.ListByEntityAndType(ctx, entityDocumentID, entityType)
	if err != nil {
		return nil, err
	}
	for i := range comptes {
		if comptes[i].Statut == model.StatutActif {
			return compteToResponse(&comptes[i]), nil
		}
	}
	return nil, ErrCompteNotFound
}

func (s *compteService) ListActifs(ctx context.Context) ([]dto.CompteResponse, error) {
	return s.list(ctx, func() ([]model.CompteUtilisateur, error) {
		return s.repo.Compte.ListByStatut(ctx, model.StatutActif)
	})
}

func (s *compteService) ListAll(ctx context.Context) ([]dto.CompteResponse, error) {
	return s.list(ctx, func() ([]model.CompteUtilisateur, error) {
		return s.repo.Compte.List(ctx)
	})
}

func (s *compteService) ListByStatut(ctx context.Context, statut model.Statut) ([]dto.CompteResponse, error) {
	return s.list(ctx, func() ([]model.CompteUtilisateur, error) {
		return s.repo.Compte.ListByStatut(ctx, statut)
	})
}

func (s *compteService) ListByType(ctx context.Context, typeCompte model.TypeCompte) ([]dto.CompteResponse, error) {
	return s.list(ctx, func() ([]model.CompteUtilisateur, error) {
		comptes, err := s.repo.Compte.ListByType(ctx, typeCompte)
		return filterComptesActifs(comptes), err
	})
}

func (s *compteService) ListByEntity(ctx context.Context, entityDocumentID string) ([]dto.CompteResponse, error) {
	return s.list(ctx, func() ([]model.CompteUtilisateur, error) {
		comptes, err := s.repo.Compte.ListByEntity(ctx, entityDocumentID)
		return filterComptesActifs(comptes), err
	})
}

func (s *compteService) Update(ctx context.Context, documentID string, req *dto.UpdateCompteRequest) (*dto.CompteResponse, error) {
	compte, err := s.getCompte(ctx, documentID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != compte.Email {
		if err := s.checkEmailFree(ctx, *req.Email); err != nil {
			return nil, err
		}
		compte.Email = *req.Email
	}
	if req.TypeCompte != nil {
		compte.TypeCompte = model.TypeCompte(*req.TypeCompte)
	}
	if req.EntityDocumentID != nil {
		compte.EntityDocumentID = *req.EntityDocumentID
		compte.EntityType = compte.TypeCompte
	}
	if req.Statut != nil {
		compte.Statut = model.Statut(*req.Statut)
	}
	if req.MotDePasse != nil && *req.MotDePasse != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.MotDePasse), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		compte.MotDePasse = string(hash)
	}

	if err := s.repo.Compte.Update(ctx, compte); err != nil {
		s.logger.Error("mise à jour du compte échouée", zap.String("documentId", documentID), zap.Error(err))
		return nil, err
	}
	return compteToResponse(compte), nil
}

func (s *compteService) UpdatePassword(ctx context.Context, documentID, newPassword string) (*dto.CompteResponse, error) {
	if newPassword == "" {
		return nil, ErrPasswordRequired
	}
	compte, err := s.getCompte(ctx, documentID)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("hachage du mot de passe échoué", zap.Error(err))
		return nil, err
	}
	compte.MotDePasse = string(hash)

	if err := s.repo.Compte.Update(ctx, compte); err != nil {
		return nil, err
	}
	return compteToResponse(compte), nil
}

// Authenticate resolves credentials to an account plus a token pair. Unknown
// email, inactive account and wrong password all collapse into
// ErrInvalidCredentials.
func (s *compteService) Authenticate(ctx context.Context, email, password string) (*dto.AuthenticateResponse, error) {
	compte, err := s.repo.Compte.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if compte.Statut != model.StatutActif {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(compte.MotDePasse), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return s.tokenPair(compte)
}

func (s *compteService) Refresh(ctx context.Context, refreshToken string) (*dto.AuthenticateResponse, error) {
	claims, err := s.jwtMgr.ParseToken(refreshToken)
	if err != nil || claims.TokenType != jwt.TokenRefresh {
		return nil, ErrInvalidCredentials
	}
	compte, err := s.getCompte(ctx, claims.CompteDocumentID)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if compte.Statut != model.StatutActif {
		return nil, ErrInvalidCredentials
	}
	return s.tokenPair(compte)
}

func (s *compteService) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	compte, err := s.repo.Compte.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return compte.Statut == model.StatutActif, nil
}

func (s *compteService) Desactiver(ctx context.Context, documentID string) (*dto.CompteResponse, error) {
	return s.setStatut(ctx, documentID, model.StatutInactif)
}

func (s *compteService) Activer(ctx context.Context, documentID string) (*dto.CompteResponse, error) {
	return s.setStatut(ctx, documentID, model.StatutActif)
}

func (s *compteService) Delete(ctx context.Context, documentID string) error {
	compte, err := s.getCompte(ctx, documentID)
	if err != nil {
		return err
	}
	return s.repo.Compte.Delete(ctx, compte.ID)
}

// ── internal helpers ──

func (s *compteService) getCompte(ctx context.Context, documentID string) (*model.CompteUtilisateur, error) {
	compte, err := s.repo.Compte.GetByDocumentID(ctx, documentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompteNotFound
		}
		return nil, err
	}
	return compte, nil
}

func (s *compteService) checkEmailFree(ctx context.Context, email string) error {
	exists, err := s.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return ErrEmailExists
	}
	return nil
}

func (s *compteService) checkEntityFree(ctx context.Context, entityDocumentID string, entityType model.TypeCompte) error {
	_, err := s.FindByEntity(ctx, entityDocumentID, entityType)
	if err == nil {
		return ErrEntityCompteExists
	}
	if errors.Is(err, ErrCompteNotFound) {
		return nil
	}
	return err
}

func (s *compteService) setStatut(ctx context.Context, documentID string, statut model.Statut) (*dto.CompteResponse, error) {
	compte, err := s.getCompte(ctx, documentID)
	if err != nil {
		return nil, err
	}
	compte.Statut = statut
	if err := s.repo.Compte.Update(ctx, compte); err != nil {
		return nil, err
	}
	return compteToResponse(compte), nil
}

func (s *compteService) tokenPair(compte *model.CompteUtilisateur) (*dto.AuthenticateResponse, error) {
	access, err := s.jwtMgr.GenerateAccessToken(compte.DocumentID, string(compte.TypeCompte), compte.EntityDocumentID)
	if err != nil {
		return nil, err
	}
	refresh, err := s.jwtMgr.GenerateRefreshToken(compte.DocumentID, string(compte.TypeCompte), compte.EntityDocumentID)
	if err != nil {
		return nil, err
	}
	return &dto.AuthenticateResponse{
		Compte:       compteToResponse(compte),
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

func (s *compteService) list(_ context.Context, load func() ([]model.CompteUtilisateur, error)) ([]dto.CompteResponse, error) {
	comptes, err := load()
	if err != nil {
		return nil, err
	}
	result := make([]dto.CompteResponse, 0, len(comptes))
	for i := range comptes {
		result = append(result, *compteToResponse(&comptes[i]))
	}
	return result, nil
}

func filterComptesActifs(comptes []model.CompteUtilisateur) []model.CompteUtilisateur {
	actifs := comptes[:0]
	for _, c := range comptes {
		if c.Statut == model.StatutActif {
			actifs = append(actifs, c)
		}
	}
	return actifs
}

func compteToResponse(c *model.CompteUtilisateur) *dto.CompteResponse {
	return &dto.CompteResponse{
		Meta: dto.Meta{
			ID:         c.ID,
			DocumentID: c.DocumentID,
			CreatedAt:  c.CreatedAt,
			UpdatedAt:  c.UpdatedAt,
		},
		Email:            c.Email,
		TypeCompte:       string(c.TypeCompte),
		EntityDocumentID: c.EntityDocumentID,
		EntityType:       string(c.EntityType),
		Statut:           string(c.Statut),
	}
}
