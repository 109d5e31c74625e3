package service

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Sylvio143/G-stagiaire/config"
	"github.com/Sylvio143/G-stagiaire/internal/dto"
	"github.com/Sylvio143/G-stagiaire/internal/model"
	"github.com/Sylvio143/G-stagiaire/internal/repository"
)

var (
	ErrMediaNotFound = errors.New("fichier média introuvable")
	ErrMediaEmpty    = errors.New("fichier vide")
	ErrMediaTooLarge = errors.New("fichier trop volumineux")
)

// MediaService owns uploaded files: the database rows and the files under the
// upload directory. Physical-file removal is best effort; a failed unlink is
// logged and the database delete proceeds.
type MediaService interface {
	Upload(ctx context.Context, fileName, contentType string, size int64, r io.Reader) (*dto.MediaFileResponse, error)
	GetByDocumentID(ctx context.Context, documentID string) (*dto.MediaFileResponse, error)
	GetByName(ctx context.Context, name string) (*dto.MediaFileResponse, error)
	ListAll(ctx context.Context) ([]dto.MediaFileResponse, error)
	ListImages(ctx context.Context) ([]dto.MediaFileResponse, error)
	ListPdfs(ctx context.Context) ([]dto.MediaFileResponse, error)
	ListByMime(ctx context.Context, mime string) ([]dto.MediaFileResponse, error)
	Stats(ctx context.Context) (*dto.MediaStatsResponse, error)
	Update(ctx context.Context, documentID string, req *dto.UpdateMediaRequest) (*dto.MediaFileResponse, error)
	Delete(ctx context.Context, documentID string) error
}

type mediaService struct {
	repo   *repository.Repository
	cfg    *config.MediaConfig
	logger *zap.Logger
}

// NewMediaService creates the MediaService.
func NewMediaService(repo *repository.Repository, cfg *config.MediaConfig, logger *zap.Logger) MediaService {
	return &mediaService{repo: repo, cfg: cfg, logger: logger}
}

func (s *mediaService) Upload(ctx context.Context, fileName, contentType string, size int64, r io.Reader) (*dto.MediaFileResponse, error) {
	if size <= 0 {
		return nil, ErrMediaEmpty
	}
	if max := s.cfg.MaxSizeMB * 1024 * 1024; max > 0 && size > max {
		return nil, ErrMediaTooLarge
	}

	ext := strings.TrimPrefix(filepath.Ext(fileName), ".")
	uniqueName := uuid.New().String()
	if ext != "" {
		uniqueName += "." + ext
	}

	if err := os.MkdirAll(s.cfg.UploadDir, 0o755); err != nil {
		return nil, err
	}
	dst, err := os.Create(filepath.Join(s.cfg.UploadDir, uniqueName))
	if err != nil {
		return nil, err
	}
	defer dst.Close()
	if _, err := io.Copy(dst, r); err != nil {
		return nil, err
	}

	media := &model.MediaFile{
		Name:     fileName,
		Ext:      ext,
		Mime:     contentType,
		Size:     float64(size) / 1024.0,
		URL:      "/" + s.cfg.UploadDir + "/" + uniqueName,
		Provider: "local",
	}
	if media.IsImage() {
		media.ThumbnailURL = "/" + s.cfg.UploadDir + "/thumb_" + uniqueName
		media.MediumURL = "/" + s.cfg.UploadDir + "/medium_" + uniqueName
	}

	if err := s.repo.Media.Create(ctx, media); err != nil {
		s.logger.Error("enregistrement du média échoué", zap.String("name", fileName), zap.Error(err))
		return nil, err
	}
	s.logger.Info("fichier téléversé",
		zap.String("documentId", media.DocumentID),
		zap.String("name", fileName),
		zap.Float64("sizeKb", media.Size))
	return mediaToResponse(media), nil
}

func (s *mediaService) GetByDocumentID(ctx context.Context, documentID string) (*dto.MediaFileResponse, error) {
	media, err := s.getMedia(ctx, documentID)
	if err != nil {
		return nil, err
	}
	return mediaToResponse(media), nil
}

func (s *mediaService) GetByName(ctx context.Context, name string) (*dto.MediaFileResponse, error) {
	media, err := s.repo.Media.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMediaNotFound
		}
		return nil, err
	}
	return mediaToResponse(media), nil
}

func (s *mediaService) ListAll(ctx context.Context) ([]dto.MediaFileResponse, error) {
	return s.list(func() ([]model.MediaFile, error) {
		return s.repo.Media.List(ctx)
	})
}

func (s *mediaService) ListImages(ctx context.Context) ([]dto.MediaFileResponse, error) {
	return s.list(func() ([]model.MediaFile, error) {
		return s.repo.Media.ListByMimePrefix(ctx, "image/")
	})
}

func (s *mediaService) ListPdfs(ctx context.Context) ([]dto.MediaFileResponse, error) {
	return s.list(func() ([]model.MediaFile, error) {
		return s.repo.Media.ListByMime(ctx, "application/pdf")
	})
}

func (s *mediaService) ListByMime(ctx context.Context, mime string) ([]dto.MediaFileResponse, error) {
	return s.list(func() ([]model.MediaFile, error) {
		return s.repo.Media.ListByMime(ctx, mime)
	})
}

func (s *mediaService) Stats(ctx context.Context) (*dto.MediaStatsResponse, error) {
	files, err := s.repo.Media.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &dto.MediaStatsResponse{TotalFiles: int64(len(files))}
	for i := range files {
		stats.TotalSizeKB += files[i].Size
		if files[i].IsImage() {
			stats.ImageCount++
		}
		if files[i].Mime == "application/pdf" {
			stats.PdfCount++
		}
	}
	stats.TotalSizeMB = stats.TotalSizeKB / 1024.0
	return stats, nil
}

func (s *mediaService) Update(ctx context.Context, documentID string, req *dto.UpdateMediaRequest) (*dto.MediaFileResponse, error) {
	media, err := s.getMedia(ctx, documentID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		media.Name = *req.Name
	}
	if req.AlternativeText != nil {
		media.AlternativeText = *req.AlternativeText
	}
	if req.Caption != nil {
		media.Caption = *req.Caption
	}

	if err := s.repo.Media.Update(ctx, media); err != nil {
		return nil, err
	}
	return mediaToResponse(media), nil
}

func (s *mediaService) Delete(ctx context.Context, documentID string) error {
	media, err := s.getMedia(ctx, documentID)
	if err != nil {
		return err
	}

	s.removePhysical(media.URL)
	if media.ThumbnailURL != "" {
		s.removePhysical(media.ThumbnailURL)
	}
	if media.MediumURL != "" {
		s.removePhysical(media.MediumURL)
	}

	return s.repo.Media.Delete(ctx, media.ID)
}

// ── internal helpers ──

func (s *mediaService) getMedia(ctx context.Context, documentID string) (*model.MediaFile, error) {
	media, err := s.repo.Media.GetByDocumentID(ctx, documentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMediaNotFound
		}
		return nil, err
	}
	return media, nil
}

func (s *mediaService) removePhysical(fileURL string) {
	path := strings.TrimPrefix(fileURL, "/")
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("suppression du fichier physique échouée",
			zap.String("path", path), zap.Error(err))
	}
}

func (s *mediaService) list(load func() ([]model.MediaFile, error)) ([]dto.MediaFileResponse, error) {
	files, err := load()
	if err != nil {
		return nil, err
	}
	result := make([]dto.MediaFileResponse, 0, len(files))
	for i := range files {
		result = append(result, *mediaToResponse(&files[i]))
	}
	return result, nil
}

func mediaToResponse(m *model.MediaFile) *dto.MediaFileResponse {
	return &dto.MediaFileResponse{
		Meta: dto.Meta{
			ID:         m.ID,
			DocumentID: m.DocumentID,
			CreatedAt:  m.CreatedAt,
			UpdatedAt:  m.UpdatedAt,
		},
		Name:            m.Name,
		AlternativeText: m.AlternativeText,
		Caption:         m.Caption,
		Width:           m.Width,
		Height:          m.Height,
		Ext:             m.Ext,
		Mime:            m.Mime,
		Size:            m.Size,
		URL:             m.URL,
		Provider:        m.Provider,
		ThumbnailURL:    m.ThumbnailURL,
		MediumURL:       m.MediumURL,
	}
}
