package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Sylvio143/G-stagiaire/config"
	"github.com/Sylvio143/G-stagiaire/internal/api/handler"
	"github.com/Sylvio143/G-stagiaire/internal/api/middleware"
	"github.com/Sylvio143/G-stagiaire/internal/model"
	"github.com/Sylvio143/G-stagiaire/pkg/jwt"
	"github.com/Sylvio143/G-stagiaire/pkg/redis"
)

// Setup builds the Gin engine with the full route table.
//
// Read-only routes are open; every mutating route sits behind JWT auth.
// Deletions are restricted to admin accounts.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// uploaded files are served as-is
	r.Static("/"+cfg.Media.UploadDir, cfg.Media.UploadDir)

	adminOnly := middleware.RoleAuth(string(model.CompteAdmin))

	api := r.Group("/api")
	if cfg.Auth.RateLimitPerMin > 0 {
		api.Use(middleware.RateLimit(rdb, cfg.Auth.RateLimitPerMin, time.Minute))
	}

	// mutating routes hang off this group
	authorized := api.Group("")
	authorized.Use(middleware.JWTAuth(jwtMgr, rdb))

	{
		// ── auth ──
		auth := api.Group("/auth")
		{
			auth.POST("/refresh", h.Compte.Refresh)
			auth.POST("/logout", h.Compte.Logout)
		}

		// ── admins ──
		admins := api.Group("/admins")
		{
			admins.GET("", h.Admin.List)
			admins.GET("/tous", h.Admin.ListAll)
			admins.GET("/inactifs", h.Admin.ListInactifs)
			admins.GET("/statut/:statut", h.Admin.ListByStatut)
			admins.GET("/email/:email", h.Admin.GetByEmail)
			admins.GET("/check-email/:email", h.Admin.CheckEmail)
			admins.GET("/check-cin/:cin", h.Admin.CheckCin)
			admins.GET("/:documentId", h.Admin.Get)
		}
		adminsW := authorized.Group("/admins")
		{
			adminsW.POST("", h.Admin.Create)
			adminsW.PUT("/:documentId", h.Admin.Update)
			adminsW.PUT("/:documentId/desactiver", adminOnly, h.Admin.Desactiver)
			adminsW.PUT("/:documentId/activer", adminOnly, h.Admin.Activer)
			adminsW.DELETE("/:documentId", adminOnly, h.Admin.Delete)
		}

		// ── encadreurs ──
		encadreurs := api.Group("/encadreurs")
		{
			encadreurs.GET("", h.Encadreur.List)
			encadreurs.GET("/tous", h.Encadreur.ListAll)
			encadreurs.GET("/inactifs", h.Encadreur.ListInactifs)
			encadreurs.GET("/statut/:statut", h.Encadreur.ListByStatut)
			encadreurs.GET("/superieur/:documentId", h.Encadreur.ListBySuperieur)
			encadreurs.GET("/departement/:departement", h.Encadreur.ListByDepartement)
			encadreurs.GET("/with-superieur", h.Encadreur.ListWithSuperieur)
			encadreurs.GET("/email/:email", h.Encadreur.GetByEmail)
			encadreurs.GET("/check-email/:email", h.Encadreur.CheckEmail)
			encadreurs.GET("/check-cin/:cin", h.Encadreur.CheckCin)
			encadreurs.GET("/:documentId", h.Encadreur.Get)
		}
		encadreursW := authorized.Group("/encadreurs")
		{
			encadreursW.POST("", h.Encadreur.Create)
			encadreursW.PUT("/:documentId", h.Encadreur.Update)
			encadreursW.PUT("/:documentId/photo/:mediaId", h.Encadreur.SetPhoto)
			encadreursW.PUT("/:documentId/desactiver", h.Encadreur.Desactiver)
			encadreursW.PUT("/:documentId/activer", h.Encadreur.Activer)
			encadreursW.DELETE("/:documentId", adminOnly, h.Encadreur.Delete)
		}

		// ── stagiaires ──
		stagiaires := api.Group("/stagiaires")
		{
			stagiaires.GET("", h.Stagiaire.List)
			stagiaires.GET("/tous", h.Stagiaire.ListAll)
			stagiaires.GET("/inactifs", h.Stagiaire.ListInactifs)
			stagiaires.GET("/statut/:statut", h.Stagiaire.ListByStatut)
			stagiaires.GET("/encadreur/:documentId", h.Stagiaire.ListByEncadreur)
			stagiaires.GET("/ecole/:ecole", h.Stagiaire.ListByEcole)
			stagiaires.GET("/filiere/:filiere", h.Stagiaire.ListByFiliere)
			stagiaires.GET("/with-encadreur", h.Stagiaire.ListWithEncadreur)
			stagiaires.GET("/email/:email", h.Stagiaire.GetByEmail)
			stagiaires.GET("/check-email/:email", h.Stagiaire.CheckEmail)
			stagiaires.GET("/check-cin/:cin", h.Stagiaire.CheckCin)
			stagiaires.GET("/:documentId", h.Stagiaire.Get)
			stagiaires.GET("/:documentId/has-active-stage", h.Stagiaire.HasActiveStage)
		}
		stagiairesW := authorized.Group("/stagiaires")
		{
			stagiairesW.POST("", h.Stagiaire.Create)
			stagiairesW.PUT("/:documentId", h.Stagiaire.Update)
			stagiairesW.PUT("/:documentId/photo/:mediaId", h.Stagiaire.SetPhoto)
			stagiairesW.PUT("/:documentId/desactiver", h.Stagiaire.Desactiver)
			stagiairesW.PUT("/:documentId/activer", h.Stagiaire.Activer)
			stagiairesW.DELETE("/:documentId", adminOnly, h.Stagiaire.Delete)
		}

		// ── superieurs hierarchiques ──
		superieurs := api.Group("/superieurs-hierarchiques")
		{
			superieurs.GET("", h.Superieur.List)
			superieurs.GET("/tous", h.Superieur.ListAll)
			superieurs.GET("/inactifs", h.Superieur.ListInactifs)
			superieurs.GET("/statut/:statut", h.Superieur.ListByStatut)
			superieurs.GET("/departement/:departement", h.Superieur.ListByDepartement)
			superieurs.GET("/with-photo", h.Superieur.ListWithPhoto)
			superieurs.GET("/stats/count", h.Superieur.Count)
			superieurs.GET("/stats/departement/:departement/count", h.Superieur.CountByDepartement)
			superieurs.GET("/email/:email", h.Superieur.GetByEmail)
			superieurs.GET("/check-email/:email", h.Superieur.CheckEmail)
			superieurs.GET("/check-cin/:cin", h.Superieur.CheckCin)
			superieurs.GET("/:documentId", h.Superieur.Get)
		}
		superieursW := authorized.Group("/superieurs-hierarchiques")
		{
			superieursW.POST("", h.Superieur.Create)
			superieursW.PUT("/:documentId", h.Superieur.Update)
			superieursW.PUT("/:documentId/photo/:mediaId", h.Superieur.SetPhoto)
			superieursW.PUT("/:documentId/desactiver", h.Superieur.Desactiver)
			superieursW.PUT("/:documentId/activer", h.Superieur.Activer)
			superieursW.DELETE("/:documentId", adminOnly, h.Superieur.Delete)
		}

		// ── stages ──
		stages := api.Group("/stages")
		{
			stages.GET("", h.Stage.List)
			stages.GET("/statut/:statut", h.Stage.ListByStatut)
			stages.GET("/encadreur/:documentId", h.Stage.ListByEncadreur)
			stages.GET("/superieur/:documentId", h.Stage.ListBySuperieur)
			stages.GET("/stagiaire/:documentId", h.Stage.ListByStagiaire)
			stages.GET("/with-relations", h.Stage.ListWithRelations)
			stages.GET("/:documentId", h.Stage.Get)
		}
		stagesW := authorized.Group("/stages")
		{
			stagesW.POST("", h.Stage.Create)
			stagesW.PUT("/:documentId", h.Stage.Update)
			stagesW.PUT("/:documentId/statut/:statut", h.Stage.UpdateStatut)
			stagesW.POST("/:documentId/stagiaires/:stagiaireId", h.Stage.AddStagiaire)
			stagesW.DELETE("/:documentId/stagiaires/:stagiaireId", h.Stage.RemoveStagiaire)
			stagesW.DELETE("/:documentId", adminOnly, h.Stage.Delete)
		}

		// ── taches ──
		taches := api.Group("/taches")
		{
			taches.GET("", h.Tache.List)
			taches.GET("/stage/:documentId", h.Tache.ListByStage)
			taches.GET("/stage/:documentId/statut/:statut", h.Tache.ListByStageAndStatut)
			taches.GET("/statut/:statut", h.Tache.ListByStatut)
			taches.GET("/en-retard", h.Tache.ListEnRetard)
			taches.GET("/:documentId", h.Tache.Get)
		}
		tachesW := authorized.Group("/taches")
		{
			tachesW.POST("", h.Tache.Create)
			tachesW.PUT("/:documentId", h.Tache.Update)
			tachesW.PUT("/:documentId/statut/:statut", h.Tache.UpdateStatut)
			tachesW.PUT("/:documentId/priorite/:priorite", h.Tache.UpdatePriorite)
			tachesW.DELETE("/:documentId", h.Tache.Delete)
		}

		// ── comptes utilisateurs ──
		comptes := api.Group("/comptes-utilisateurs")
		{
			comptes.POST("/authenticate", h.Compte.Authenticate)
			comptes.GET("", h.Compte.List)
			comptes.GET("/tous", h.Compte.ListAll)
			comptes.GET("/inactifs", h.Compte.ListInactifs)
			comptes.GET("/type/:typeCompte", h.Compte.ListByType)
			comptes.GET("/entity/:entityId", h.Compte.ListByEntity)
			comptes.GET("/entity/:entityId/type/:typeCompte", h.Compte.FindByEntity)
			comptes.GET("/email/:email", h.Compte.GetByEmail)
			comptes.GET("/check-email/:email", h.Compte.CheckEmail)
			comptes.GET("/:documentId", h.Compte.Get)
		}
		comptesW := authorized.Group("/comptes-utilisateurs")
		{
			comptesW.POST("", adminOnly, h.Compte.Create)
			comptesW.POST("/create-for-entity", adminOnly, h.Compte.CreateForEntity)
			comptesW.PUT("/:documentId", h.Compte.Update)
			comptesW.PUT("/:documentId/password", h.Compte.UpdatePassword)
			comptesW.PUT("/:documentId/desactiver", adminOnly, h.Compte.Desactiver)
			comptesW.PUT("/:documentId/activer", adminOnly, h.Compte.Activer)
			comptesW.DELETE("/:documentId", adminOnly, h.Compte.Delete)
		}

		// ── notifications ──
		notifications := api.Group("/notifications")
		{
			notifications.GET("", h.Notification.List)
			notifications.GET("/compte/:compteId", h.Notification.ListByCompte)
			notifications.GET("/compte/:compteId/non-lues", h.Notification.ListNonLues)
			notifications.GET("/compte/:compteId/count-non-lues", h.Notification.CountNonLues)
			notifications.GET("/type/:type", h.Notification.ListByType)
			notifications.GET("/reference/:typeReference/:referenceId", h.Notification.ListByReference)
			notifications.GET("/stats/count", h.Notification.Count)
			notifications.GET("/stats/type/:type/count", h.Notification.CountByType)
			notifications.GET("/:documentId", h.Notification.Get)
		}
		notificationsW := authorized.Group("/notifications")
		{
			notificationsW.POST("", h.Notification.Create)
			notificationsW.POST("/create", h.Notification.Create)
			notificationsW.PUT("/:documentId", h.Notification.Update)
			notificationsW.PUT("/:documentId/marquer-lue", h.Notification.MarquerLue)
			notificationsW.PUT("/compte/:compteId/marquer-toutes-lues", h.Notification.MarquerToutesLues)
			notificationsW.DELETE("/:documentId", h.Notification.Delete)
		}

		// ── media ──
		media := api.Group("/media")
		{
			media.GET("", h.Media.List)
			media.GET("/images", h.Media.ListImages)
			media.GET("/pdfs", h.Media.ListPdfs)
			media.GET("/mime/:mime", h.Media.ListByMime)
			media.GET("/stats", h.Media.Stats)
			media.GET("/name/:name", h.Media.GetByName)
			media.GET("/:documentId", h.Media.Get)
		}
		mediaW := authorized.Group("/media")
		{
			mediaW.POST("/upload", h.Media.Upload)
			mediaW.PUT("/:documentId", h.Media.Update)
			mediaW.DELETE("/:documentId", h.Media.Delete)
		}

		// ── export ──
		export := authorized.Group("/export")
		{
			export.GET("/stagiaires", h.Export.ExportStagiaires)
			export.GET("/stages", h.Export.ExportStages)
		}
	}

	return r
}
