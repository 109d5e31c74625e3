package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Sylvio143/G-stagiaire/config"
	"github.com/Sylvio143/G-stagiaire/internal/api/handler"
	"github.com/Sylvio143/G-stagiaire/internal/api/router"
	"github.com/Sylvio143/G-stagiaire/internal/repository"
	"github.com/Sylvio143/G-stagiaire/internal/service"
	"github.com/Sylvio143/G-stagiaire/pkg/database"
	"github.com/Sylvio143/G-stagiaire/pkg/jwt"
	applogger "github.com/Sylvio143/G-stagiaire/pkg/logger"
	"github.com/Sylvio143/G-stagiaire/pkg/redis"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "chargement de la configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "initialisation du logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("démarrage de l'application",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("connexion à la base de données impossible", zap.Error(err))
	}
	logger.Info("base de données connectée")

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("accès au sql.DB sous-jacent impossible", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("échec des migrations", zap.Error(err))
	}

	// Redis is optional: without it the token blacklist and the rate
	// limiter are disabled but the API still serves.
	rdb, err := redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("connexion Redis impossible, liste noire des tokens désactivée", zap.Error(err))
		rdb = nil
	}

	jwtMgr := jwt.NewManager(&cfg.Auth)

	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, jwtMgr, service.SystemClock(), logger)
	h := handler.NewHandler(svc, jwtMgr, rdb)

	engine := router.Setup(cfg, h, jwtMgr, rdb, logger)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("serveur HTTP démarré", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("erreur du serveur HTTP", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("signal d'arrêt reçu, arrêt en cours", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("arrêt du serveur en erreur", zap.Error(err))
	}

	if closeDB, _ := db.DB(); closeDB != nil {
		closeDB.Close()
	}
	if rdb != nil {
		rdb.Close()
	}

	logger.Info("serveur arrêté")
}
