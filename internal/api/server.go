package api

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"veres-tariff/internal/app/cbr"
	"veres-tariff/internal/app/config"
	"veres-tariff/internal/app/dsn"
	"veres-tariff/internal/app/handler"
	"veres-tariff/internal/app/llm"
	"veres-tariff/internal/app/middleware"
	"veres-tariff/internal/app/redis"
	"veres-tariff/internal/app/repository"
	"veres-tariff/internal/app/storage"
	"veres-tariff/internal/pkg"
)

func StartServer() {
	log.Println("Starting server")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("ошибка чтения конфигурации: %v", err)
	}

	dsnStr := dsn.FromEnv()
	if dsnStr == "" {
		logrus.Fatal("строка подключения к БД пуста, проверьте .env")
	}

	repo, err := repository.New(dsnStr)
	if err != nil {
		logrus.Fatalf("ошибка инициализации репозитория: %v", err)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logrus.Fatalf("ошибка подключения к Redis: %v", err)
	}

	minioClient, err := storage.NewMinIOClient(
		cfg.Minio.Endpoint,
		cfg.Minio.AccessKey,
		cfg.Minio.SecretKey,
		cfg.Minio.Bucket,
		cfg.Minio.UseSSL,
	)
	if err != nil {
		logrus.Fatalf("ошибка подключения к MinIO: %v", err)
	}

	cbrClient := cbr.New(redisClient)
	llmClient := llm.New(cfg.LLM)

	apiHandler := handler.NewAPIHandler(repo, redisClient, cfg, minioClient, cbrClient, llmClient)
	authMiddleware := middleware.NewAuthMiddleware(redisClient, cfg)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	app := pkg.NewApp(cfg, router, apiHandler, authMiddleware)
	app.RunApp()

	log.Println("Server down")
}
