package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Sylvio143/G-stagiaire/internal/model"
)

// NotificationRepository is the data access surface for the per-account
// notification log.
type NotificationRepository interface {
	Create(ctx context.Context, notification *model.Notification) error
	GetByDocumentID(ctx context.Context, documentID string) (*model.Notification, error)
	List(ctx context.Context) ([]model.Notification, error)
	ListByCompte(ctx context.Context, compteDocumentID string) ([]model.Notification, error)
	ListByCompteNonLues(ctx context.Context, compteDocumentID string) ([]model.Notification, error)
	ListByType(ctx context.Context, typeNotif model.TypeNotification) ([]model.Notification, error)
	ListByReference(ctx context.Context, typeReference, documentIDReference string) ([]model.Notification, error)
	CountNonLues(ctx context.Context, compteDocumentID string) (int64, error)
	Count(ctx context.Context) (int64, error)
	CountByType(ctx context.Context, typeNotif model.TypeNotification) (int64, error)
	MarquerToutesLues(ctx context.Context, compteDocumentID string) error
	Update(ctx context.Context, notification *model.Notification) error
	Delete(ctx context.Context, id uint) error
}

type notificationRepo struct {
	db *gorm.DB
}

// NewNotificationRepo creates the gorm-backed NotificationRepository.
func NewNotificationRepo(db *gorm.DB) NotificationRepository {
	return &notificationRepo{db: db}
}

func (r *notificationRepo) Create(ctx context.Context, notification *model.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *notificationRepo) GetByDocumentID(ctx context.Context, documentID string) (*model.Notification, error) {
	var n model.Notification
	err := r.db.WithContext(ctx).Where("document_id = ?", documentID).First(&n).Error
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *notificationRepo) List(ctx context.Context) ([]model.Notification, error) {
	var ns []model.Notification
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&ns).Error
	return ns, err
}

func (r *notificationRepo) ListByCompte(ctx context.Context, compteDocumentID string) ([]model.Notification, error) {
	var ns []model.Notification
	err := r.db.WithContext(ctx).
		Where("compte_utilisateur_document_id = ?", compteDocumentID).
		Order("created_at DESC").
		Find(&ns).Error
	return ns, err
}

func (r *notificationRepo) ListByCompteNonLues(ctx context.Context, compteDocumentID string) ([]model.Notification, error) {
	var ns []model.Notification
	err := r.db.WithContext(ctx).
		Where("compte_utilisateur_document_id = ? AND lue = false", compteDocumentID).
		Order("created_at DESC").
		Find(&ns).Error
	return ns, err
}

func (r *notificationRepo) ListByType(ctx context.Context, typeNotif model.TypeNotification) ([]model.Notification, error) {
	var ns []model.Notification
	err := r.db.WithContext(ctx).Where("type = ?", typeNotif).Order("created_at DESC").Find(&ns).Error
	return ns, err
}

func (r *notificationRepo) ListByReference(ctx context.Context, typeReference, documentIDReference string) ([]model.Notification, error) {
	var ns []model.Notification
	err := r.db.WithContext(ctx).
		Where("type_reference = ? AND document_id_reference = ?", typeReference, documentIDReference).
		Find(&ns).Error
	return ns, err
}

func (r *notificationRepo) CountNonLues(ctx context.Context, compteDocumentID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("compte_utilisateur_document_id = ? AND lue = false", compteDocumentID).
		Count(&n).Error
	return n, err
}

func (r *notificationRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Notification{}).Count(&n).Error
	return n, err
}

func (r *notificationRepo) CountByType(ctx context.Context, typeNotif model.TypeNotification) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("type = ?", typeNotif).
		Count(&n).Error
	return n, err
}

func (r *notificationRepo) MarquerToutesLues(ctx context.Context, compteDocumentID string) error {
	return r.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("compte_utilisateur_document_id = ? AND lue = false", compteDocumentID).
		Update("lue", true).Error
}

func (r *notificationRepo) Update(ctx context.Context, notification *model.Notification) error {
	return r.db.WithContext(ctx).Save(notification).Error
}

func (r *notificationRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Notification{}, id).Error
}
