package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/onielsteve2003/Modern-social-media/internal/router"
	"github.com/onielsteve2003/Modern-social-media/pkg/config"
	"github.com/onielsteve2003/Modern-social-media/pkg/storage"
	"github.com/onielsteve2003/Modern-social-media/validators"
)

func main() {
	cfg := config.Load()

	db, err := config.InitDB(cfg.PostgresURL)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB()

	// Image uploads are optional: without a configured MinIO endpoint the
	// API still accepts image URLs, it just rejects multipart file uploads.
	var uploader storage.Uploader
	if cfg.MinioEndpoint != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		mc, err := storage.NewMinIOClient(ctx, storage.Options{
			Endpoint:  cfg.MinioEndpoint,
			AccessKey: cfg.MinioAccessKey,
			SecretKey: cfg.MinioSecretKey,
			Bucket:    cfg.MinioBucket,
			UseSSL:    cfg.MinioUseSSL,
		})
		if err != nil {
			log.Fatalf("Failed to connect to MinIO: %v", err)
		}
		uploader = mc
		log.Println("Connected to MinIO object storage")
	} else {
		log.Println("MINIO_ENDPOINT not set, file uploads disabled")
	}

	e := echo.New()
	e.Validator = validators.NewValidator()
	router.SetupMiddleware(e)
	router.SetupRoutes(e, db.Postgres, uploader, cfg.JWTSecret)

	log.Printf("Starting server on port %s", cfg.Port)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
