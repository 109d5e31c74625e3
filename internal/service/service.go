package service

import (
	"go.uber.org/zap"

	"github.com/Sylvio143/G-stagiaire/config"
	"github.com/Sylvio143/G-stagiaire/internal/repository"
	"github.com/Sylvio143/G-stagiaire/pkg/jwt"
)

// Service aggregates every business service.
type Service struct {
	Admin        AdminService
	Encadreur    EncadreurService
	Stagiaire    StagiaireService
	Superieur    SuperieurService
	Stage        StageService
	Tache        TacheService
	Compte       CompteService
	Notification NotificationService
	Media        MediaService
	Export       ExportService
}

// NewService wires every service onto the shared repository aggregate.
func NewService(cfg *config.Config, repo *repository.Repository, jwtMgr *jwt.Manager, clock Clock, logger *zap.Logger) *Service {
	return &Service{
		Admin:        NewAdminService(repo, logger),
		Encadreur:    NewEncadreurService(repo, logger),
		Stagiaire:    NewStagiaireService(repo, clock, logger),
		Superieur:    NewSuperieurService(repo, logger),
		Stage:        NewStageService(repo, logger),
		Tache:        NewTacheService(repo, clock, logger),
		Compte:       NewCompteService(repo, jwtMgr, logger),
		Notification: NewNotificationService(repo, logger),
		Media:        NewMediaService(repo, &cfg.Media, logger),
		Export:       NewExportService(repo, clock, logger),
	}
}
