package handler

import (
	"github.com/Sylvio143/G-stagiaire/internal/service"
	"github.com/Sylvio143/G-stagiaire/pkg/jwt"
	"github.com/Sylvio143/G-stagiaire/pkg/redis"
)

// Handler aggregates every HTTP handler.
type Handler struct {
	Admin        *AdminHandler
	Encadreur    *EncadreurHandler
	Stagiaire    *StagiaireHandler
	Superieur    *SuperieurHandler
	Stage        *StageHandler
	Tache        *TacheHandler
	Compte       *CompteHandler
	Notification *NotificationHandler
	Media        *MediaHandler
	Export       *ExportHandler
}

// NewHandler creates the handler aggregate.
func NewHandler(svc *service.Service, jwtMgr *jwt.Manager, rdb *redis.Client) *Handler {
	return &Handler{
		Admin:        NewAdminHandler(svc.Admin),
		Encadreur:    NewEncadreurHandler(svc.Encadreur),
		Stagiaire:    NewStagiaireHandler(svc.Stagiaire),
		Superieur:    NewSuperieurHandler(svc.Superieur),
		Stage:        NewStageHandler(svc.Stage),
		Tache:        NewTacheHandler(svc.Tache),
		Compte:       NewCompteHandler(svc.Compte, jwtMgr, rdb),
		Notification: NewNotificationHandler(svc.Notification),
		Media:        NewMediaHandler(svc.Media),
		Export:       NewExportHandler(svc.Export),
	}
}
