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
	ErrNotificationNotFound    = errors.New("notification introuvable")
	ErrNotificationInvalidType = errors.New("type de notification invalide")
)

// NotificationService owns the per-account notification log.
type NotificationService interface {
	Create(ctx context.Context, req *dto.CreateNotificationRequest) (*dto.NotificationResponse, error)
	GetByDocumentID(ctx context.Context, documentID string) (*dto.NotificationResponse, error)
	ListAll(ctx context.Context) ([]dto.NotificationResponse, error)
	ListByCompte(ctx context.Context, compteDocumentID string) ([]dto.NotificationResponse, error)
	ListByCompteNonLues(ctx context.Context, compteDocumentID string) ([]dto.NotificationResponse, error)
	ListByType(ctx context.Context, typeNotif string) ([]dto.NotificationResponse, error)
	ListByReference(ctx context.Context, typeReference, documentIDReference string) ([]dto.NotificationResponse, error)
	CountNonLues(ctx context.Context, compteDocumentID string) (int64, error)
	Count(ctx context.Context) (int64, error)
	CountByType(ctx context.Context, typeNotif string) (int64, error)
	Update(ctx context.Context, documentID string, req *dto.UpdateNotificationRequest) (*dto.NotificationResponse, error)
	MarquerLue(ctx context.Context, documentID string) (*dto.NotificationResponse, error)
	MarquerToutesLues(ctx context.Context, compteDocumentID string) error
	Delete(ctx context.Context, documentID string) error
}

type notificationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewNotificationService creates the NotificationService.
func NewNotificationService(repo *repository.Repository, logger *zap.Logger) NotificationService {
	return &notificationService{repo: repo, logger: logger}
}

func (s *notificationService) Create(ctx context.Context, req *dto.CreateNotificationRequest) (*dto.NotificationResponse, error) {
	typeNotif := model.TypeNotification(req.Type)
	if !typeNotif.Valid() {
		return nil, ErrNotificationInvalidType
	}
	if _, err := s.repo.Compte.GetByDocumentID(ctx, req.CompteUtilisateurDocumentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompteNotFound
		}
		return nil, err
	}

	n := &model.Notification{
		Titre:                       req.Titre,
		Message:                     req.Message,
		Type:                        typeNotif,
		DocumentIDReference:         req.DocumentIDReference,
		TypeReference:               req.TypeReference,
		CompteUtilisateurDocumentID: req.CompteUtilisateurDocumentID,
	}

	if err := s.repo.Notification.Create(ctx, n); err != nil {
		s.logger.Error("création de la notification échouée",
			zap.String("compte", req.CompteUtilisateurDocumentID), zap.Error(err))
		return nil, err
	}
	return notificationToResponse(n), nil
}

func (s *notificationService) GetByDocumentID(ctx context.Context, documentID string) (*dto.NotificationResponse, error) {
	n, err := s.getNotification(ctx, documentID)
	if err != nil {
		return nil, err
	}
	return notificationToResponse(n), nil
}

func (s *notificationService) ListAll(ctx context.Context) ([]dto.NotificationResponse, error) {
	return s.list(func() ([]model.Notification, error) {
		return s.repo.Notification.List(ctx)
	})
}

func (s *notificationService) ListByCompte(ctx context.Context, compteDocumentID string) ([]dto.NotificationResponse, error) {
	return s.list(func() ([]model.Notification, error) {
		return s.repo.Notification.ListByCompte(ctx, compteDocumentID)
	})
}

func (s *notificationService) ListByCompteNonLues(ctx context.Context, compteDocumentID string) ([]dto.NotificationResponse, error) {
	return s.list(func() ([]model.Notification, error) {
		return s.repo.Notification.ListByCompteNonLues(ctx, compteDocumentID)
	})
}

func (s *notificationService) ListByType(ctx context.Context, typeNotif string) ([]dto.NotificationResponse, error) {
	t := model.TypeNotification(typeNotif)
	if !t.Valid() {
		return nil, ErrNotificationInvalidType
	}
	return s.list(func() ([]model.Notification, error) {
		return s.repo.Notification.ListByType(ctx, t)
	})
}

func (s *notificationService) ListByReference(ctx context.Context, typeReference, documentIDReference string) ([]dto.NotificationResponse, error) {
	return s.list(func() ([]model.Notification, error) {
		return s.repo.Notification.ListByReference(ctx, typeReference, documentIDReference)
	})
}

func (s *notificationService) CountNonLues(ctx context.Context, compteDocumentID string) (int64, error) {
	return s.repo.Notification.CountNonLues(ctx, compteDocumentID)
}

func (s *notificationService) Count(ctx context.Context) (int64, error) {
	return s.repo.Notification.Count(ctx)
}

func (s *notificationService) CountByType(ctx context.Context, typeNotif string) (int64, error) {
	t := model.TypeNotification(typeNotif)
	if !t.Valid() {
		return 0, ErrNotificationInvalidType
	}
	return s.repo.Notification.CountByType(ctx, t)
}

func (s *notificationService) Update(ctx context.Context, documentID string, req *dto.UpdateNotificationRequest) (*dto.NotificationResponse, error) {
	n, err := s.getNotification(ctx, documentID)
	if err != nil {
		return nil, err
	}

	if req.Titre != nil {
		n.Titre = *req.Titre
	}
	if req.Message != nil {
		n.Message = *req.Message
	}
	if req.Lue != nil {
		n.Lue = *req.Lue
	}

	if err := s.repo.Notification.Update(ctx, n); err != nil {
		return nil, err
	}
	return notificationToResponse(n), nil
}

func (s *notificationService) MarquerLue(ctx context.Context, documentID string) (*dto.NotificationResponse, error) {
	n, err := s.getNotification(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if !n.Lue {
		n.Lue = true
		if err := s.repo.Notification.Update(ctx, n); err != nil {
			return nil, err
		}
	}
	return notificationToResponse(n), nil
}

func (s *notificationService) MarquerToutesLues(ctx context.Context, compteDocumentID string) error {
	return s.repo.Notification.MarquerToutesLues(ctx, compteDocumentID)
}

func (s *notificationService) Delete(ctx context.Context, documentID string) error {
	n, err := s.getNotification(ctx, documentID)
	if err != nil {
		return err
	}
	return s.repo.Notification.Delete(ctx, n.ID)
}

// ── internal helpers ──

func (s *notificationService) getNotification(ctx context.Context, documentID string) (*model.Notification, error) {
	n, err := s.repo.Notification.GetByDocumentID(ctx, documentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return n, nil
}

func (s *notificationService) list(load func() ([]model.Notification, error)) ([]dto.NotificationResponse, error) {
	notifs, err := load()
	if err != nil {
		return nil, err
	}
	result := make([]dto.NotificationResponse, 0, len(notifs))
	for i := range notifs {
		result = append(result, *notificationToResponse(&notifs[i]))
	}
	return result, nil
}

func notificationToResponse(n *model.Notification) *dto.NotificationResponse {
	return &dto.NotificationResponse{
		Meta: dto.Meta{
			ID:         n.ID,
			DocumentID: n.DocumentID,
			CreatedAt:  n.CreatedAt,
			UpdatedAt:  n.UpdatedAt,
		},
		Titre:                       n.Titre,
		Message:                     n.Message,
		Type:                        string(n.Type),
		Lue:                         n.Lue,
		DocumentIDReference:         n.DocumentIDReference,
		TypeReference:               n.TypeReference,
		CompteUtilisateurDocumentID: n.CompteUtilisateurDocumentID,
	}
}
