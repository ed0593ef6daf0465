package main

import (
	"context"
	"net/http"
	"time"

	"recycleshop/config"
	"recycleshop/handlers"
	"recycleshop/logger"
	"recycleshop/repository"
	"recycleshop/service"
	"recycleshop/session"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	_ = godotenv.Load()

	logger.Init()
	defer logger.Sync()

	ctx := context.Background()
	cfg := config.LoadConfig()

	db, err := config.InitDB(ctx, cfg)
	if err != nil {
		logger.Fatal("database init failed", err)
	}
	defer func() { _ = db.Close() }()

	if err := config.EnsureSchema(ctx, db); err != nil {
		logger.Fatal("schema init failed", err)
	}

	repoImpl := repository.NewPostgresRepository(db)
	svc := service.NewService(repoImpl)

	if err := svc.EnsureCatalog(ctx); err != nil {
		logger.Fatal("catalog seeding failed", err)
	}

	sessions := session.NewManager(
		cfg.SessionSecret,
		time.Duration(cfg.SessionTTLHours)*time.Hour,
	)
	h := handlers.NewHandler(svc, sessions)

	srv := http.Server{
		Handler:      h.Router(),
		Addr:         ":" + cfg.ServerPort,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}
	logger.Info("server listening", "port", cfg.ServerPort)
	if err := srv.ListenAndServe(); err != nil {
		_ = db.Close()
		logger.Fatal("server stopped", err)
	}
}
