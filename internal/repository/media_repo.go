package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Sylvio143/G-stagiaire/internal/model"
)

// MediaRepository is the data access surface for uploaded files.
type MediaRepository interface {
	Create(ctx context.Context, media *model.MediaFile) error
	GetByDocumentID(ctx context.Context, documentID string) (*model.MediaFile, error)
	GetByName(ctx context.Context, name string) (*model.MediaFile, error)
	GetByURL(ctx context.Context, url string) (*model.MediaFile, error)
	List(ctx context.Context) ([]model.MediaFile, error)
	ListByMime(ctx context.Context, mime string) ([]model.MediaFile, error)
	ListByMimePrefix(ctx context.Context, prefix string) ([]model.MediaFile, error)
	CountByMime(ctx context.Context, mime string) (int64, error)
	Update(ctx context.Context, media *model.MediaFile) error
	Delete(ctx context.Context, id uint) error
}

type mediaRepo struct {
	db *gorm.DB
}

// NewMediaRepo creates the gorm-backed MediaRepository.
func NewMediaRepo(db *gorm.DB) MediaRepository {
	return &mediaRepo{db: db}
}

func (r *mediaRepo) Create(ctx context.Context, media *model.MediaFile) error {
	return r.db.WithContext(ctx).Create(media).Error
}

func (r *mediaRepo) GetByDocumentID(ctx context.Context, documentID string) (*model.MediaFile, error) {
	var m model.MediaFile
	err := r.db.WithContext(ctx).Where("document_id = ?", documentID).First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *mediaRepo) GetByName(ctx context.Context, name string) (*model.MediaFile, error) {
	var m model.MediaFile
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *mediaRepo) GetByURL(ctx context.Context, url string) (*model.MediaFile, error) {
	var m model.MediaFile
	err := r.db.WithContext(ctx).Where("url = ?", url).First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *mediaRepo) List(ctx context.Context) ([]model.MediaFile, error) {
	var ms []model.MediaFile
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&ms).Error
	return ms, err
}

func (r *mediaRepo) ListByMime(ctx context.Context, mime string) ([]model.MediaFile, error) {
	var ms []model.MediaFile
	err := r.db.WithContext(ctx).Where("mime = ?", mime).Find(&ms).Error
	return ms, err
}

func (r *mediaRepo) ListByMimePrefix(ctx context.Context, prefix string) ([]model.MediaFile, error) {
	var ms []model.MediaFile
	err := r.db.WithContext(ctx).Where("mime LIKE ?", prefix+"%").Find(&ms).Error
	return ms, err
}

func (r *mediaRepo) CountByMime(ctx context.Context, mime string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.MediaFile{}).Where("mime = ?", mime).Count(&n).Error
	return n, err
}

func (r *mediaRepo) Update(ctx context.Context, media *model.MediaFile) error {
	return r.db.WithContext(ctx).Save(media).Error
}

func (r *mediaRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.MediaFile{}, id).Error
}
