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
	ErrAdminNotFound    = errors.New("administrateur introuvable")
	ErrAdminEmailExists = errors.New("un administrateur actif avec cet email existe déjà")
	ErrAdminCinExists   = errors.New("un administrateur actif avec ce CIN existe déjà")
)

// AdminService owns administrators. Admins have no dependents, so status
// changes only touch the admin and its account.
type AdminService interface {
	Create(ctx context.Context, req *dto.CreateAdminRequest) (*dto.AdminResponse, error)
	GetByDocumentID(ctx context.Context, documentID string) (*dto.AdminResponse, error)
	GetByEmail(ctx context.Context, email string) (*dto.AdminResponse, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByCin(ctx context.Context, cin string) (bool, error)
	ListActifs(ctx context.Context) ([]dto.AdminResponse, error)
	ListAll(ctx context.Context) ([]dto.AdminResponse, error)
	ListByStatut(ctx context.Context, statut model.Statut) ([]dto.AdminResponse, error)
	Update(ctx context.Context, documentID string, req *dto.UpdateAdminRequest) (*dto.AdminResponse, error)
	Desactiver(ctx context.Context, documentID string) (*dto.AdminResponse, error)
	Activer(ctx context.Context, documentID string) (*dto.AdminResponse, error)
	Delete(ctx context.Context, documentID string) error
}

type adminService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAdminService creates the AdminService.
func NewAdminService(repo *repository.Repository, logger *zap.Logger) AdminService {
	return &adminService{repo: repo, logger: logger}
}

func (s *adminService) Create(ctx context.Context, req *dto.CreateAdminRequest) (*dto.AdminResponse, error) {
	exists, err := s.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAdminEmailExists
	}
	exists, err = s.ExistsByCin(ctx, req.Cin)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAdminCinExists
	}

	fonction := req.Fonction
	if fonction == "" {
		fonction = "Administrateur"
	}
	admin := &model.Admin{
		Nom:       req.Nom,
		Prenom:    req.Prenom,
		Email:     req.Email,
		Telephone: req.Telephone,
		Cin:       req.Cin,
		Fonction:  fonction,
		Statut:    model.StatutActif,
	}

	if err := s.repo.Admin.Create(ctx, admin); err != nil {
		s.logger.Error("création de l'administrateur échouée", zap.String("email", req.Email), zap.Error(err))
		return nil, err
	}
	return adminToResponse(admin), nil
}

func (s *adminService) GetByDocumentID(ctx context.Context, documentID string) (*dto.AdminResponse, error) {
	admin, err := s.getAdmin(ctx, documentID)
	if err != nil {
		return nil, err
	}
	return adminToResponse(admin), nil
}

func (s *adminService) GetByEmail(ctx context.Context, email string) (*dto.AdminResponse, error) {
	admin, err := s.repo.Admin.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return adminToResponse(admin), nil
}

func (s *adminService) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	admin, err := s.repo.Admin.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return admin.Statut == model.StatutActif, nil
}

func (s *adminService) ExistsByCin(ctx context.Context, cin string) (bool, error) {
	admin, err := s.repo.Admin.GetByCin(ctx, cin)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return admin.Statut == model.StatutActif, nil
}

func (s *adminService) ListActifs(ctx context.Context) ([]dto.AdminResponse, error) {
	return s.list(func() ([]model.Admin, error) {
		return s.repo.Admin.ListByStatut(ctx, model.StatutActif)
	})
}

func (s *adminService) ListAll(ctx context.Context) ([]dto.AdminResponse, error) {
	return s.list(func() ([]model.Admin, error) {
		return s.repo.Admin.List(ctx)
	})
}

func (s *adminService) ListByStatut(ctx context.Context, statut model.Statut) ([]dto.AdminResponse, error) {
	return s.list(func() ([]model.Admin, error) {
		return s.repo.Admin.ListByStatut(ctx, statut)
	})
}

func (s *adminService) Update(ctx context.Context, documentID string, req *dto.UpdateAdminRequest) (*dto.AdminResponse, error) {
	admin, err := s.getAdmin(ctx, documentID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != admin.Email {
		exists, err := s.ExistsByEmail(ctx, *req.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrAdminEmailExists
		}
		admin.Email = *req.Email
	}
	if req.Cin != nil && *req.Cin != admin.Cin {
		exists, err := s.ExistsByCin(ctx, *req.Cin)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrAdminCinExists
		}
		admin.Cin = *req.Cin
	}
	if req.Nom != nil {
		admin.Nom = *req.Nom
	}
	if req.Prenom != nil {
		admin.Prenom = *req.Prenom
	}
	if req.Telephone != nil {
		admin.Telephone = *req.Telephone
	}
	if req.Fonction != nil {
		admin.Fonction = *req.Fonction
	}
	if req.Statut != nil {
		admin.Statut = model.Statut(*req.Statut)
	}

	if err := s.repo.Admin.Update(ctx, admin); err != nil {
		s.logger.Error("mise à jour de l'administrateur échouée", zap.String("documentId", documentID), zap.Error(err))
		return nil, err
	}
	return adminToResponse(admin), nil
}

func (s *adminService) Desactiver(ctx context.Context, documentID string) (*dto.AdminResponse, error) {
	return s.setStatut(ctx, documentID, model.StatutInactif)
}

func (s *adminService) Activer(ctx context.Context, documentID string) (*dto.AdminResponse, error) {
	return s.setStatut(ctx, documentID, model.StatutActif)
}

func (s *adminService) Delete(ctx context.Context, documentID string) error {
	admin, err := s.getAdmin(ctx, documentID)
	if err != nil {
		return err
	}
	return s.repo.Admin.Delete(ctx, admin.ID)
}

// ── internal helpers ──

func (s *adminService) getAdmin(ctx context.Context, documentID string) (*model.Admin, error) {
	admin, err := s.repo.Admin.GetByDocumentID(ctx, documentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return admin, nil
}

func (s *adminService) setStatut(ctx context.Context, documentID string, statut model.Statut) (*dto.AdminResponse, error) {
	admin, err := s.getAdmin(ctx, documentID)
	if err != nil {
		return nil, err
	}
	admin.Statut = statut
	if err := s.repo.Admin.Update(ctx, admin); err != nil {
		return nil, err
	}
	if err := setLinkedCompteStatut(ctx, s.repo, admin.DocumentID, model.CompteAdmin, statut); err != nil {
		return nil, err
	}
	return adminToResponse(admin), nil
}

func (s *adminService) list(load func() ([]model.Admin, error)) ([]dto.AdminResponse, error) {
	admins, err := load()
	if err != nil {
		return nil, err
	}
	result := make([]dto.AdminResponse, 0, len(admins))
	for i := range admins {
		result = append(result, *adminToResponse(&admins[i]))
	}
	return result, nil
}

func adminToResponse(a *model.Admin) *dto.AdminResponse {
	return &dto.AdminResponse{
		Meta: dto.Meta{
			ID:         a.ID,
			DocumentID: a.DocumentID,
			CreatedAt:  a.CreatedAt,
			UpdatedAt:  a.UpdatedAt,
		},
		Nom:       a.Nom,
		Prenom:    a.Prenom,
		Email:     a.Email,
		Telephone: a.Telephone,
		Cin:       a.Cin,
		Fonction:  a.Fonction,
		Statut:    string(a.Statut),
	}
}
